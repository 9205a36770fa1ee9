package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"chronos.team/chronos/internal/cache"
	"chronos.team/chronos/internal/constants"
	dto "chronos.team/chronos/internal/data_models"
	apperrors "chronos.team/chronos/internal/errors"
	"chronos.team/chronos/internal/metrics"
	model "chronos.team/chronos/internal/models"
	repository "chronos.team/chronos/internal/repositories"
)

// TaskService enforces the task lifecycle: creation defaults, partial
// updates, status transitions and soft deletion with referential cleanup.
type TaskService struct {
	tasks      *repository.TaskRepository
	projects   *repository.ProjectRepository
	users      *repository.UserRepository
	categories *repository.CategoryRepository
	hoursCache *cache.HoursCache
	logger     *zap.Logger
}

func NewTaskService(
	tasks *repository.TaskRepository,
	projects *repository.ProjectRepository,
	users *repository.UserRepository,
	categories *repository.CategoryRepository,
	hoursCache *cache.HoursCache,
	logger *zap.Logger,
) *TaskService {
	return &TaskService{
		tasks:      tasks,
		projects:   projects,
		users:      users,
		categories: categories,
		hoursCache: hoursCache,
		logger:     logger,
	}
}

// Create validates and persists a task. When assignee IDs are supplied the
// assignment rows are written in the same transaction as the task, so a
// half-created task is never observable.
func (s *TaskService) Create(ctx context.Context, actorID string, req dto.CreateTaskRequest) (*model.Task, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, apperrors.ErrTitleRequired
	}

	creator, err := s.users.FindByID(ctx, actorID)
	if err != nil {
		return nil, mapNotFound(err, apperrors.ErrUserNotFound)
	}

	timeType := constants.TimeType(req.TimeType)
	if req.TimeType == "" {
		timeType = constants.TimeMisc
	}
	if !timeType.Valid() {
		return nil, apperrors.Validation("invalid time_type")
	}
	if req.TimeValue < 0 {
		return nil, apperrors.Validation("time_value must not be negative")
	}

	categoryName := req.Category
	if categoryName == "" {
		categoryName = constants.DefaultCategoryName
	}
	category, err := s.categories.EnsureByName(ctx, categoryName)
	if err != nil {
		return nil, err
	}

	if req.ProjectID != nil {
		if _, err := s.projects.FindByID(ctx, *req.ProjectID); err != nil {
			return nil, mapNotFound(err, apperrors.ErrProjectNotFound)
		}
	}

	priority := constants.Priority(req.Priority)
	if req.Priority == "" {
		priority = constants.PriorityMedium
	}
	if !priority.Valid() {
		return nil, apperrors.Validation("invalid priority")
	}

	task := &model.Task{
		ID:          uuid.NewString(),
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		TimeType:    timeType,
		TimeValue:   req.TimeValue,
		CategoryID:  category.ID,
		ProjectID:   req.ProjectID,
		CreatedByID: creator.ID,
		Status:      constants.StatusPending,
		Priority:    priority,
		StartAt:     req.StartAt,
		DueAt:       req.DueAt,
		CreatedAt:   time.Now().UTC(),
	}

	assignments, err := s.buildAssignments(ctx, task.ID, req.AssigneeIDs, creator.ID)
	if err != nil {
		return nil, err
	}
	if len(assignments) > 0 {
		task.AssignedToID = &assignments[0].AssigneeID
	}

	if err := s.tasks.Create(ctx, task, assignments); err != nil {
		return nil, err
	}

	s.invalidateProjectHours(ctx, task.ProjectID)
	metrics.IncrementEntityWrite("task", "create")
	s.logger.Info("task created",
		zap.String("task_id", task.ID),
		zap.String("created_by", creator.ID),
		zap.Int("assignments", len(assignments)),
	)

	return task, nil
}

// BatchCreate persists a list of drafts atomically, all owned by the actor
// and optionally attached to one project. The AI breakdown collaborator
// feeds this the same way a manually entered batch does.
func (s *TaskService) BatchCreate(ctx context.Context, actorID string, req dto.BatchCreateTasksRequest) ([]model.Task, error) {
	if len(req.Tasks) == 0 {
		return nil, apperrors.Validation("tasks must not be empty")
	}

	creator, err := s.users.FindByID(ctx, actorID)
	if err != nil {
		return nil, mapNotFound(err, apperrors.ErrUserNotFound)
	}

	if req.ProjectID != nil {
		if _, err := s.projects.FindByID(ctx, *req.ProjectID); err != nil {
			return nil, mapNotFound(err, apperrors.ErrProjectNotFound)
		}
	}

	tasks, err := s.draftsToTasks(ctx, req.Tasks, req.ProjectID, creator.ID)
	if err != nil {
		return nil, err
	}

	if err := s.tasks.CreateBatch(ctx, tasks); err != nil {
		return nil, err
	}

	s.invalidateProjectHours(ctx, req.ProjectID)
	metrics.IncrementEntityWrite("task", "batch_create")
	s.logger.Info("task batch created",
		zap.String("created_by", creator.ID),
		zap.Int("count", len(tasks)),
	)

	return tasks, nil
}

func (s *TaskService) Get(ctx context.Context, id string) (*model.Task, error) {
	task, err := s.tasks.FindByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, apperrors.ErrTaskNotFound)
	}
	return task, nil
}

func (s *TaskService) List(ctx context.Context) ([]model.Task, error) {
	return s.tasks.List(ctx)
}

func (s *TaskService) ListByProject(ctx context.Context, projectID string) ([]model.Task, error) {
	if _, err := s.projects.FindByID(ctx, projectID); err != nil {
		return nil, mapNotFound(err, apperrors.ErrProjectNotFound)
	}
	return s.tasks.ListByProject(ctx, projectID)
}

// Update applies only the fields present in the request. Setting status to
// completed stamps CompletedAt; moving a completed task back clears it.
func (s *TaskService) Update(ctx context.Context, id string, req dto.UpdateTaskRequest) (*model.Task, error) {
	existing, err := s.tasks.FindByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, apperrors.ErrTaskNotFound)
	}

	fields := map[string]interface{}{}

	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			return nil, apperrors.ErrTitleRequired
		}
		fields["title"] = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.TimeType != nil {
		timeType := constants.TimeType(*req.TimeType)
		if !timeType.Valid() {
			return nil, apperrors.Validation("invalid time_type")
		}
		fields["time_type"] = timeType
	}
	if req.TimeValue != nil {
		if *req.TimeValue < 0 {
			return nil, apperrors.Validation("time_value must not be negative")
		}
		fields["time_value"] = *req.TimeValue
	}
	if req.Category != nil {
		category, err := s.categories.EnsureByName(ctx, *req.Category)
		if err != nil {
			return nil, err
		}
		fields["category_id"] = category.ID
	}
	if req.Status != nil {
		status := constants.TaskStatus(*req.Status)
		if !status.Valid() {
			return nil, apperrors.Validation("invalid status")
		}
		fields["status"] = status
		if status == constants.StatusCompleted && existing.Status != constants.StatusCompleted {
			fields["completed_at"] = time.Now().UTC()
		}
		if status != constants.StatusCompleted && existing.Status == constants.StatusCompleted {
			fields["completed_at"] = nil
		}
	}
	if req.Priority != nil {
		priority := constants.Priority(*req.Priority)
		if !priority.Valid() {
			return nil, apperrors.Validation("invalid priority")
		}
		fields["priority"] = priority
	}
	if req.StartAt != nil {
		fields["start_at"] = *req.StartAt
	}
	if req.DueAt != nil {
		fields["due_at"] = *req.DueAt
	}
	if req.SubmittedAt != nil {
		fields["submitted_at"] = *req.SubmittedAt
	}
	if req.ReviewedAt != nil {
		fields["reviewed_at"] = *req.ReviewedAt
	}
	if req.DayOrder != nil {
		fields["day_order"] = *req.DayOrder
	}
	if req.ProjectOrder != nil {
		fields["project_order"] = *req.ProjectOrder
	}

	if len(fields) == 0 {
		return existing, nil
	}

	if err := s.tasks.UpdateFields(ctx, id, fields); err != nil {
		return nil, mapNotFound(err, apperrors.ErrTaskNotFound)
	}

	s.invalidateProjectHours(ctx, existing.ProjectID)
	metrics.IncrementEntityWrite("task", "update")

	return s.tasks.FindByID(ctx, id)
}

// Delete soft-deletes the task and every assignment and allocation that
// references it, in one transaction.
func (s *TaskService) Delete(ctx context.Context, id string) error {
	existing, err := s.tasks.FindByID(ctx, id)
	if err != nil {
		return mapNotFound(err, apperrors.ErrTaskNotFound)
	}

	if err := s.tasks.Delete(ctx, id); err != nil {
		return mapNotFound(err, apperrors.ErrTaskNotFound)
	}

	s.invalidateProjectHours(ctx, existing.ProjectID)
	metrics.IncrementEntityWrite("task", "delete")
	s.logger.Info("task deleted", zap.String("task_id", id))

	return nil
}

func (s *TaskService) buildAssignments(ctx context.Context, taskID string, assigneeIDs []string, assignedByID string) ([]model.TaskAssignment, error) {
	if len(assigneeIDs) == 0 {
		return nil, nil
	}

	assignees, err := s.resolveActiveUsers(ctx, assigneeIDs)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	assignments := make([]model.TaskAssignment, 0, len(assignees))
	for _, assignee := range assignees {
		assignments = append(assignments, model.TaskAssignment{
			ID:           uuid.NewString(),
			TaskID:       taskID,
			AssigneeID:   assignee.ID,
			AssignedByID: assignedByID,
			Status:       constants.AssignmentPending,
			AssignedAt:   now,
		})
	}
	return assignments, nil
}

func (s *TaskService) draftsToTasks(ctx context.Context, drafts []dto.TaskDraft, projectID *string, createdByID string) ([]model.Task, error) {
	now := time.Now().UTC()
	tasks := make([]model.Task, 0, len(drafts))

	for i, draft := range drafts {
		if strings.TrimSpace(draft.Title) == "" {
			return nil, apperrors.ErrTitleRequired
		}

		timeType := constants.TimeType(draft.TimeType)
		if draft.TimeType == "" {
			timeType = constants.TimeMisc
		}
		if !timeType.Valid() {
			return nil, apperrors.Validation("invalid time_type")
		}
		if draft.TimeValue < 0 {
			return nil, apperrors.Validation("time_value must not be negative")
		}

		categoryName := draft.Category
		if categoryName == "" {
			categoryName = constants.DefaultCategoryName
		}
		category, err := s.categories.EnsureByName(ctx, categoryName)
		if err != nil {
			return nil, err
		}

		tasks = append(tasks, model.Task{
			ID:           uuid.NewString(),
			Title:        strings.TrimSpace(draft.Title),
			Description:  draft.Description,
			TimeType:     timeType,
			TimeValue:    draft.TimeValue,
			CategoryID:   category.ID,
			ProjectID:    projectID,
			CreatedByID:  createdByID,
			Status:       constants.StatusPending,
			Priority:     constants.PriorityMedium,
			ProjectOrder: i,
			CreatedAt:    now,
		})
	}

	return tasks, nil
}

func (s *TaskService) resolveActiveUsers(ctx context.Context, ids []string) ([]model.User, error) {
	unique := dedupe(ids)
	users, err := s.users.FindByIDs(ctx, unique)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]model.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}

	resolved := make([]model.User, 0, len(unique))
	for _, id := range unique {
		user, ok := byID[id]
		if !ok {
			return nil, apperrors.ErrUserNotFound
		}
		if !user.Active {
			return nil, apperrors.ErrUserInactive
		}
		resolved = append(resolved, user)
	}
	return resolved, nil
}

func (s *TaskService) invalidateProjectHours(ctx context.Context, projectID *string) {
	if projectID != nil {
		s.hoursCache.Invalidate(ctx, *projectID)
	}
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func mapNotFound(err error, sentinel *apperrors.Exception) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return err
}
