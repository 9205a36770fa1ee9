package model

import (
	"time"

	"gorm.io/gorm"

	"chronos.team/chronos/internal/constants"
)

type Project struct {
	ID          string                  `gorm:"primaryKey;size:36" json:"id"`
	Name        string                  `gorm:"not null" json:"name"`
	Description string                  `gorm:"type:text" json:"description,omitempty"`
	OwnerID     string                  `gorm:"size:36;not null" json:"owner_id"`
	Status      constants.ProjectStatus `gorm:"type:varchar(20);not null" json:"status"`
	CreatedAt   time.Time               `json:"created_at"`
	UpdatedAt   time.Time               `json:"updated_at"`
	DeletedAt   gorm.DeletedAt          `gorm:"index" json:"-"`

	Owner *User  `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	Tasks []Task `gorm:"foreignKey:ProjectID" json:"tasks,omitempty"`
}
