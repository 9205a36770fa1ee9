package model

import (
	"time"

	"gorm.io/gorm"

	"chronos.team/chronos/internal/constants"
)

type Task struct {
	ID          string             `gorm:"primaryKey;size:36" json:"id"`
	Title       string             `gorm:"not null" json:"title"`
	Description string             `gorm:"type:text" json:"description,omitempty"`
	TimeType    constants.TimeType `gorm:"type:varchar(10);not null" json:"time_type"`
	TimeValue   float64            `gorm:"not null;default:0" json:"time_value"`

	CategoryID string  `gorm:"size:36;not null" json:"category_id"`
	ProjectID  *string `gorm:"size:36;index" json:"project_id,omitempty"`

	// AssignedToID is a derived view of the first assignment, kept for rows
	// that predate the multi-assignee model. Never written independently.
	AssignedToID *string `gorm:"size:36" json:"assigned_to_id,omitempty"`
	CreatedByID  string  `gorm:"size:36;not null" json:"created_by_id"`

	Status   constants.TaskStatus `gorm:"type:varchar(20);not null" json:"status"`
	Priority constants.Priority   `gorm:"type:varchar(10)" json:"priority,omitempty"`

	StartAt     *time.Time `json:"start_at,omitempty"`
	DueAt       *time.Time `json:"due_at,omitempty"`
	SubmittedAt *time.Time `json:"submitted_at,omitempty"`
	ReviewedAt  *time.Time `json:"reviewed_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`

	// Display ordering within a day view and within a project board.
	DayOrder     int `gorm:"not null;default:0" json:"day_order"`
	ProjectOrder int `gorm:"not null;default:0" json:"project_order"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Category    *Category        `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Project     *Project         `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	Creator     *User            `gorm:"foreignKey:CreatedByID" json:"creator,omitempty"`
	Assignments []TaskAssignment `gorm:"foreignKey:TaskID" json:"assignments,omitempty"`
}

// Hours converts TimeValue into hours according to TimeType: misc values are
// minutes, daily values are already hours, long values are days multiplied by
// hoursPerDay.
func (t *Task) Hours(hoursPerDay float64) float64 {
	switch t.TimeType {
	case constants.TimeMisc:
		return t.TimeValue / 60
	case constants.TimeDaily:
		return t.TimeValue
	case constants.TimeLong:
		return t.TimeValue * hoursPerDay
	}
	return 0
}
