package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	model "chronos.team/chronos/internal/models"
)

type AnnouncementRepository struct {
	db *gorm.DB
}

func NewAnnouncementRepository(db *gorm.DB) *AnnouncementRepository {
	return &AnnouncementRepository{db: db}
}

func (r *AnnouncementRepository) Create(ctx context.Context, announcement *model.Announcement) error {
	return r.db.WithContext(ctx).Create(announcement).Error
}

func (r *AnnouncementRepository) FindByID(ctx context.Context, id string) (*model.Announcement, error) {
	var announcement model.Announcement
	err := r.db.WithContext(ctx).
		Preload("Reads").
		First(&announcement, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &announcement, nil
}

func (r *AnnouncementRepository) List(ctx context.Context) ([]model.Announcement, error) {
	var announcements []model.Announcement
	err := r.db.WithContext(ctx).
		Preload("Reads").
		Order("created_at desc").
		Find(&announcements).Error
	return announcements, err
}

// Acknowledge records the user's read mark. Already-acknowledged is a no-op,
// so the read set only grows.
func (r *AnnouncementRepository) Acknowledge(ctx context.Context, announcementID, userID string) error {
	read := model.AnnouncementRead{
		AnnouncementID: announcementID,
		UserID:         userID,
		CreatedAt:      time.Now().UTC(),
	}
	return r.db.WithContext(ctx).
		Where(model.AnnouncementRead{AnnouncementID: announcementID, UserID: userID}).
		FirstOrCreate(&read).Error
}
