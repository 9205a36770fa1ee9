package model

import (
	"time"

	"gorm.io/gorm"

	"chronos.team/chronos/internal/constants"
)

// TaskAssignment links one user to one task as a responsible party. Its
// status advances independently of the parent task's status.
type TaskAssignment struct {
	ID           string                     `gorm:"primaryKey;size:36" json:"id"`
	TaskID       string                     `gorm:"size:36;not null;index:idx_task_assignee" json:"task_id"`
	AssigneeID   string                     `gorm:"size:36;not null;index:idx_task_assignee" json:"assignee_id"`
	AssignedByID string                     `gorm:"size:36;not null" json:"assigned_by_id"`
	Status       constants.AssignmentStatus `gorm:"type:varchar(20);not null" json:"status"`
	AssignedAt   time.Time                  `json:"assigned_at"`
	DeletedAt    gorm.DeletedAt             `gorm:"index" json:"-"`

	Task       *Task `gorm:"foreignKey:TaskID" json:"task,omitempty"`
	Assignee   *User `gorm:"foreignKey:AssigneeID" json:"assignee,omitempty"`
	AssignedBy *User `gorm:"foreignKey:AssignedByID" json:"assigned_by,omitempty"`
}
