package config

import (
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	model "chronos.team/chronos/internal/models"
)

func NewDatabaseClient(dsn string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}

	if err := db.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Project{},
		&model.Task{},
		&model.TaskAssignment{},
		&model.TaskAllocation{},
		&model.Announcement{},
		&model.AnnouncementRead{},
		&model.FeatureRequest{},
	); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	return db
}
