package model

import (
	"time"

	"chronos.team/chronos/internal/constants"
)

type FeatureRequest struct {
	ID          string                  `gorm:"primaryKey;size:36" json:"id"`
	Problem     string                  `gorm:"type:text;not null" json:"problem"`
	Suggestion  string                  `gorm:"type:text" json:"suggestion,omitempty"`
	PageContext string                  `json:"page_context,omitempty"`
	Impact      constants.Impact        `gorm:"type:varchar(10);not null" json:"impact"`
	Status      constants.RequestStatus `gorm:"type:varchar(20);not null" json:"status"`
	CreatedByID string                  `gorm:"size:36;not null" json:"created_by_id"`
	CreatedAt   time.Time               `json:"created_at"`
	UpdatedAt   time.Time               `json:"updated_at"`
}
