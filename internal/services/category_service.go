package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"chronos.team/chronos/internal/constants"
	apperrors "chronos.team/chronos/internal/errors"
	"chronos.team/chronos/internal/metrics"
	model "chronos.team/chronos/internal/models"
	repository "chronos.team/chronos/internal/repositories"
)

type CategoryService struct {
	categories *repository.CategoryRepository
	logger     *zap.Logger
}

func NewCategoryService(categories *repository.CategoryRepository, logger *zap.Logger) *CategoryService {
	return &CategoryService{categories: categories, logger: logger}
}

func (s *CategoryService) List(ctx context.Context) ([]model.Category, error) {
	return s.categories.List(ctx)
}

// Create adds a goal tag. A taken name is a conflict, never a silent upsert.
func (s *CategoryService) Create(ctx context.Context, name string) (*model.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.Validation("name is required")
	}

	if _, err := s.categories.FindByName(ctx, name); err == nil {
		return nil, apperrors.ErrDuplicateCategory
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	category := &model.Category{
		ID:   uuid.NewString(),
		Name: name,
	}
	if err := s.categories.Create(ctx, category); err != nil {
		return nil, err
	}

	metrics.IncrementEntityWrite("category", "create")
	s.logger.Info("category created", zap.String("name", name))

	return category, nil
}

// EnsureDefaults idempotently creates the fixed organizational goal set.
func (s *CategoryService) EnsureDefaults(ctx context.Context) error {
	for _, name := range constants.CategoryNames {
		if _, err := s.categories.EnsureByName(ctx, name); err != nil {
			return err
		}
	}
	return nil
}
