package model

import (
	"strings"
	"time"

	"chronos.team/chronos/internal/constants"
)

type Announcement struct {
	ID    string `gorm:"primaryKey;size:36" json:"id"`
	Title string `gorm:"not null" json:"title"`
	Body  string `gorm:"type:text;not null" json:"body"`

	Severity constants.Severity `gorm:"type:varchar(10);not null" json:"severity"`

	// Departments is a comma-separated target list; empty means broadcast.
	Departments string     `json:"departments,omitempty"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`

	CreatedByID string    `gorm:"size:36;not null" json:"created_by_id"`
	CreatedAt   time.Time `json:"created_at"`

	Reads []AnnouncementRead `gorm:"foreignKey:AnnouncementID" json:"reads,omitempty"`
}

// TargetsDepartment reports whether the announcement is visible to the given
// department. A broadcast announcement targets everyone.
func (a *Announcement) TargetsDepartment(department string) bool {
	if a.Departments == "" {
		return true
	}
	for _, d := range strings.Split(a.Departments, ",") {
		if strings.TrimSpace(d) == department {
			return true
		}
	}
	return false
}

// Expired reports whether the announcement should be hidden as of now.
func (a *Announcement) Expired(now time.Time) bool {
	return a.ExpiresAt != nil && now.After(*a.ExpiresAt)
}

// AnnouncementRead records a single user's acknowledgement. The set only
// grows; acknowledging twice is a no-op.
type AnnouncementRead struct {
	AnnouncementID string    `gorm:"primaryKey;size:36" json:"announcement_id"`
	UserID         string    `gorm:"primaryKey;size:36" json:"user_id"`
	CreatedAt      time.Time `json:"created_at"`
}
