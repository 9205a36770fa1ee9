package model

import "time"

// Category is a globally shared goal tag. Names are unique; creation by an
// already-taken name is a conflict, not an upsert.
type Category struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Name      string    `gorm:"uniqueIndex;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
