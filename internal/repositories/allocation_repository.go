package repository

import (
	"context"

	"gorm.io/gorm"

	model "chronos.team/chronos/internal/models"
)

type AllocationRepository struct {
	db *gorm.DB
}

func NewAllocationRepository(db *gorm.DB) *AllocationRepository {
	return &AllocationRepository{db: db}
}

func (r *AllocationRepository) Create(ctx context.Context, allocation *model.TaskAllocation) error {
	return r.db.WithContext(ctx).Create(allocation).Error
}

func (r *AllocationRepository) FindByID(ctx context.Context, id string) (*model.TaskAllocation, error) {
	var allocation model.TaskAllocation
	err := r.db.WithContext(ctx).First(&allocation, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &allocation, nil
}

// ListByUserRange returns the user's allocations with date inside [from, to],
// ordered for timeline rendering.
func (r *AllocationRepository) ListByUserRange(ctx context.Context, userID, from, to string) ([]model.TaskAllocation, error) {
	var allocations []model.TaskAllocation
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if from != "" {
		query = query.Where("date >= ?", from)
	}
	if to != "" {
		query = query.Where("date <= ?", to)
	}
	err := query.Order("date asc, start_time asc").Find(&allocations).Error
	return allocations, err
}

func (r *AllocationRepository) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error {
	res := r.db.WithContext(ctx).Model(&model.TaskAllocation{}).
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

func (r *AllocationRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&model.TaskAllocation{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
