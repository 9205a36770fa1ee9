package model

import (
	"time"

	"gorm.io/gorm"

	"chronos.team/chronos/internal/constants"
)

// TaskAllocation reserves a block of a user's calendar against a task.
// Date is YYYY-MM-DD; StartTime and EndTime are HH:MM within that day.
// Overlapping blocks for the same user and date are permitted.
type TaskAllocation struct {
	ID        string                     `gorm:"primaryKey;size:36" json:"id"`
	TaskID    string                     `gorm:"size:36;not null;index" json:"task_id"`
	UserID    string                     `gorm:"size:36;not null;index" json:"user_id"`
	Date      string                     `gorm:"size:10;not null;index" json:"date"`
	StartTime string                     `gorm:"size:5;not null" json:"start_time"`
	EndTime   string                     `gorm:"size:5;not null" json:"end_time"`
	Status    constants.AllocationStatus `gorm:"type:varchar(20);not null" json:"status"`
	CreatedAt time.Time                  `json:"created_at"`
	UpdatedAt time.Time                  `json:"updated_at"`
	DeletedAt gorm.DeletedAt             `gorm:"index" json:"-"`

	Task *Task `gorm:"foreignKey:TaskID" json:"task,omitempty"`
	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
