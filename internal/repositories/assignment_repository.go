package repository

import (
	"context"

	"gorm.io/gorm"

	model "chronos.team/chronos/internal/models"
)

type AssignmentRepository struct {
	db *gorm.DB
}

func NewAssignmentRepository(db *gorm.DB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

// CreateBatch inserts the assignment rows and refreshes the task's derived
// legacy assignee column in the same transaction.
func (r *AssignmentRepository) CreateBatch(ctx context.Context, assignments []model.TaskAssignment, taskID string, legacyAssigneeID *string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(assignments) > 0 {
			if err := tx.Create(&assignments).Error; err != nil {
				return err
			}
		}
		if legacyAssigneeID != nil {
			if err := tx.Model(&model.Task{}).
				Where("id = ?", taskID).
				Update("assigned_to_id", *legacyAssigneeID).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *AssignmentRepository) FindByID(ctx context.Context, id string) (*model.TaskAssignment, error) {
	var assignment model.TaskAssignment
	err := r.db.WithContext(ctx).First(&assignment, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

func (r *AssignmentRepository) ListByTask(ctx context.Context, taskID string) ([]model.TaskAssignment, error) {
	var assignments []model.TaskAssignment
	err := r.db.WithContext(ctx).
		Where("task_id = ?", taskID).
		Order("assigned_at asc").
		Find(&assignments).Error
	return assignments, err
}

func (r *AssignmentRepository) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error {
	res := r.db.WithContext(ctx).Model(&model.TaskAssignment{}).
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
