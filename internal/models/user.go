package model

import (
	"time"

	"chronos.team/chronos/internal/constants"
)

type User struct {
	ID         string         `gorm:"primaryKey;size:36" json:"id"`
	Email      string         `gorm:"uniqueIndex;not null" json:"email"`
	Name       string         `gorm:"not null" json:"name"`
	Role       constants.Role `gorm:"type:varchar(20);not null" json:"role"`
	Department string         `json:"department,omitempty"`
	Active     bool           `gorm:"not null;default:true" json:"active"`

	// Working-hours profile used by the timeline views.
	WorkDayStart string  `gorm:"size:5" json:"work_day_start"`
	WorkDayEnd   string  `gorm:"size:5" json:"work_day_end"`
	DailyHours   float64 `gorm:"not null;default:8" json:"daily_hours"`
	// HoursPerDay converts a long task's day count into hours for this user.
	HoursPerDay float64 `gorm:"not null;default:8" json:"hours_per_day"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
