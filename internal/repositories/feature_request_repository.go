package repository

import (
	"context"

	"gorm.io/gorm"

	model "chronos.team/chronos/internal/models"
)

type FeatureRequestRepository struct {
	db *gorm.DB
}

func NewFeatureRequestRepository(db *gorm.DB) *FeatureRequestRepository {
	return &FeatureRequestRepository{db: db}
}

func (r *FeatureRequestRepository) Create(ctx context.Context, request *model.FeatureRequest) error {
	return r.db.WithContext(ctx).Create(request).Error
}

func (r *FeatureRequestRepository) FindByID(ctx context.Context, id string) (*model.FeatureRequest, error) {
	var request model.FeatureRequest
	err := r.db.WithContext(ctx).First(&request, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *FeatureRequestRepository) List(ctx context.Context) ([]model.FeatureRequest, error) {
	var requests []model.FeatureRequest
	err := r.db.WithContext(ctx).Order("created_at desc").Find(&requests).Error
	return requests, err
}

func (r *FeatureRequestRepository) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error {
	res := r.db.WithContext(ctx).Model(&model.FeatureRequest{}).
		Where("id = ?", id).
		Updates(fields)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
