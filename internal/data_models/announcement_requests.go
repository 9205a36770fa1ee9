package dto

import "time"

type CreateAnnouncementRequest struct {
	Title       string     `json:"title"`
	Body        string     `json:"body"`
	Severity    string     `json:"severity"`
	Departments []string   `json:"departments"`
	ExpiresAt   *time.Time `json:"expires_at"`
}

// AnnouncementView pairs an announcement with the viewer's read state.
type AnnouncementView struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Body        string     `json:"body"`
	Severity    string     `json:"severity"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
	CreatedByID string     `json:"created_by_id"`
	CreatedAt   time.Time  `json:"created_at"`
	ReadCount   int        `json:"read_count"`
	ReadByActor bool       `json:"read_by_actor"`
}
