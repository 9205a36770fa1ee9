package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"chronos.team/chronos/internal/cache"
	"chronos.team/chronos/internal/constants"
	dto "chronos.team/chronos/internal/data_models"
	apperrors "chronos.team/chronos/internal/errors"
	"chronos.team/chronos/internal/metrics"
	model "chronos.team/chronos/internal/models"
	repository "chronos.team/chronos/internal/repositories"
)

type ProjectService struct {
	projects   *repository.ProjectRepository
	users      *repository.UserRepository
	categories *repository.CategoryRepository
	hoursCache *cache.HoursCache
	logger     *zap.Logger
}

func NewProjectService(
	projects *repository.ProjectRepository,
	users *repository.UserRepository,
	categories *repository.CategoryRepository,
	hoursCache *cache.HoursCache,
	logger *zap.Logger,
) *ProjectService {
	return &ProjectService{
		projects:   projects,
		users:      users,
		categories: categories,
		hoursCache: hoursCache,
		logger:     logger,
	}
}

func (s *ProjectService) Create(ctx context.Context, req dto.CreateProjectRequest) (*model.Project, error) {
	project, err := s.buildProject(ctx, req.Name, req.Description, req.OwnerID)
	if err != nil {
		return nil, err
	}

	if err := s.projects.Create(ctx, project); err != nil {
		return nil, err
	}

	metrics.IncrementEntityWrite("project", "create")
	s.logger.Info("project created",
		zap.String("project_id", project.ID),
		zap.String("owner_id", project.OwnerID),
	)

	return project, nil
}

// CreateWithTasks persists a project and its drafted tasks in one
// transaction. The drafts use the batch shape the AI breakdown produces.
func (s *ProjectService) CreateWithTasks(ctx context.Context, req dto.CreateProjectWithTasksRequest) (*model.Project, []model.Task, error) {
	project, err := s.buildProject(ctx, req.Name, req.Description, req.OwnerID)
	if err != nil {
		return nil, nil, err
	}

	now := time.Now().UTC()
	tasks := make([]model.Task, 0, len(req.Tasks))
	for i, draft := range req.Tasks {
		if strings.TrimSpace(draft.Title) == "" {
			return nil, nil, apperrors.ErrTitleRequired
		}

		timeType := constants.TimeType(draft.TimeType)
		if draft.TimeType == "" {
			timeType = constants.TimeMisc
		}
		if !timeType.Valid() {
			return nil, nil, apperrors.Validation("invalid time_type")
		}
		if draft.TimeValue < 0 {
			return nil, nil, apperrors.Validation("time_value must not be negative")
		}

		categoryName := draft.Category
		if categoryName == "" {
			categoryName = constants.DefaultCategoryName
		}
		category, err := s.categories.EnsureByName(ctx, categoryName)
		if err != nil {
			return nil, nil, err
		}

		tasks = append(tasks, model.Task{
			ID:           uuid.NewString(),
			Title:        strings.TrimSpace(draft.Title),
			Description:  draft.Description,
			TimeType:     timeType,
			TimeValue:    draft.TimeValue,
			CategoryID:   category.ID,
			ProjectID:    &project.ID,
			CreatedByID:  project.OwnerID,
			Status:       constants.StatusPending,
			Priority:     constants.PriorityMedium,
			ProjectOrder: i,
			CreatedAt:    now,
		})
	}

	if err := s.projects.CreateWithTasks(ctx, project, tasks); err != nil {
		return nil, nil, err
	}

	metrics.IncrementEntityWrite("project", "create_with_tasks")
	s.logger.Info("project created with tasks",
		zap.String("project_id", project.ID),
		zap.Int("tasks", len(tasks)),
	)

	return project, tasks, nil
}

func (s *ProjectService) Get(ctx context.Context, id string) (*model.Project, error) {
	project, err := s.projects.FindByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, apperrors.ErrProjectNotFound)
	}
	return project, nil
}

func (s *ProjectService) List(ctx context.Context) ([]model.Project, error) {
	return s.projects.List(ctx)
}

func (s *ProjectService) Update(ctx context.Context, id string, req dto.UpdateProjectRequest) (*model.Project, error) {
	fields := map[string]interface{}{}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, apperrors.Validation("name is required")
		}
		fields["name"] = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Status != nil {
		status := constants.ProjectStatus(*req.Status)
		if !status.Valid() {
			return nil, apperrors.Validation("invalid status")
		}
		fields["status"] = status
	}

	if len(fields) > 0 {
		if err := s.projects.UpdateFields(ctx, id, fields); err != nil {
			return nil, mapNotFound(err, apperrors.ErrProjectNotFound)
		}
		metrics.IncrementEntityWrite("project", "update")
	}

	return s.Get(ctx, id)
}

// Delete cascades to every owned task and their assignments and allocations.
func (s *ProjectService) Delete(ctx context.Context, id string) error {
	if err := s.projects.Delete(ctx, id); err != nil {
		return mapNotFound(err, apperrors.ErrProjectNotFound)
	}

	s.hoursCache.Invalidate(ctx, id)
	metrics.IncrementEntityWrite("project", "delete")
	s.logger.Info("project deleted", zap.String("project_id", id))

	return nil
}

func (s *ProjectService) buildProject(ctx context.Context, name, description, ownerID string) (*model.Project, error) {
	if strings.TrimSpace(name) == "" {
		return nil, apperrors.Validation("name is required")
	}

	owner, err := s.users.FindByID(ctx, ownerID)
	if err != nil {
		return nil, mapNotFound(err, apperrors.ErrUserNotFound)
	}

	return &model.Project{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(name),
		Description: description,
		OwnerID:     owner.ID,
		Status:      constants.ProjectActive,
		CreatedAt:   time.Now().UTC(),
	}, nil
}
