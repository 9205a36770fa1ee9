package services

import (
	"context"
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

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// AllocationService plans blocks of a user's time against tasks and computes
// per-project hour totals. Overlapping blocks for the same user and date are
// permitted; only start < end is enforced.
type AllocationService struct {
	allocations *repository.AllocationRepository
	tasks       *repository.TaskRepository
	projects    *repository.ProjectRepository
	users       *repository.UserRepository
	hoursCache  *cache.HoursCache
	hoursPerDay float64
	logger      *zap.Logger
}

func NewAllocationService(
	allocations *repository.AllocationRepository,
	tasks *repository.TaskRepository,
	projects *repository.ProjectRepository,
	users *repository.UserRepository,
	hoursCache *cache.HoursCache,
	hoursPerDay float64,
	logger *zap.Logger,
) *AllocationService {
	return &AllocationService{
		allocations: allocations,
		tasks:       tasks,
		projects:    projects,
		users:       users,
		hoursCache:  hoursCache,
		hoursPerDay: hoursPerDay,
		logger:      logger,
	}
}

func (s *AllocationService) Create(ctx context.Context, req dto.CreateAllocationRequest) (*model.TaskAllocation, error) {
	if _, err := s.tasks.FindByID(ctx, req.TaskID); err != nil {
		return nil, mapNotFound(err, apperrors.ErrTaskNotFound)
	}
	if _, err := s.users.FindByID(ctx, req.UserID); err != nil {
		return nil, mapNotFound(err, apperrors.ErrUserNotFound)
	}

	if _, err := time.Parse(dateLayout, req.Date); err != nil {
		return nil, apperrors.Validation("date must be YYYY-MM-DD")
	}
	if err := validateTimeRange(req.StartTime, req.EndTime); err != nil {
		return nil, err
	}

	status := constants.AllocationStatus(req.Status)
	if req.Status == "" {
		status = constants.AllocationPlanned
	}
	if !status.Valid() {
		return nil, apperrors.Validation("invalid allocation status")
	}

	allocation := &model.TaskAllocation{
		ID:        uuid.NewString(),
		TaskID:    req.TaskID,
		UserID:    req.UserID,
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Status:    status,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.allocations.Create(ctx, allocation); err != nil {
		return nil, err
	}

	metrics.IncrementEntityWrite("allocation", "create")
	s.logger.Info("allocation created",
		zap.String("allocation_id", allocation.ID),
		zap.String("task_id", allocation.TaskID),
		zap.String("user_id", allocation.UserID),
		zap.String("date", allocation.Date),
	)

	return allocation, nil
}

func (s *AllocationService) Update(ctx context.Context, id string, req dto.UpdateAllocationRequest) (*model.TaskAllocation, error) {
	existing, err := s.allocations.FindByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, apperrors.ErrAllocationNotFound)
	}

	fields := map[string]interface{}{}

	if req.Date != nil {
		if _, err := time.Parse(dateLayout, *req.Date); err != nil {
			return nil, apperrors.Validation("date must be YYYY-MM-DD")
		}
		fields["date"] = *req.Date
	}

	start := existing.StartTime
	end := existing.EndTime
	if req.StartTime != nil {
		start = *req.StartTime
		fields["start_time"] = *req.StartTime
	}
	if req.EndTime != nil {
		end = *req.EndTime
		fields["end_time"] = *req.EndTime
	}
	if req.StartTime != nil || req.EndTime != nil {
		if err := validateTimeRange(start, end); err != nil {
			return nil, err
		}
	}

	if req.Status != nil {
		status := constants.AllocationStatus(*req.Status)
		if !status.Valid() {
			return nil, apperrors.Validation("invalid allocation status")
		}
		fields["status"] = status
	}

	if len(fields) == 0 {
		return existing, nil
	}

	if err := s.allocations.UpdateFields(ctx, id, fields); err != nil {
		return nil, mapNotFound(err, apperrors.ErrAllocationNotFound)
	}

	metrics.IncrementEntityWrite("allocation", "update")

	allocation, err := s.allocations.FindByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, apperrors.ErrAllocationNotFound)
	}
	return allocation, nil
}

func (s *AllocationService) Delete(ctx context.Context, id string) error {
	if err := s.allocations.Delete(ctx, id); err != nil {
		return mapNotFound(err, apperrors.ErrAllocationNotFound)
	}
	metrics.IncrementEntityWrite("allocation", "delete")
	return nil
}

// ListForUser returns the user's timeline between from and to (inclusive,
// YYYY-MM-DD, either may be empty).
func (s *AllocationService) ListForUser(ctx context.Context, userID, from, to string) ([]model.TaskAllocation, error) {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return nil, mapNotFound(err, apperrors.ErrUserNotFound)
	}
	return s.allocations.ListByUserRange(ctx, userID, from, to)
}

// AggregateByProject sums the project's live tasks in hours, converting each
// task's time value per its time type: misc minutes / 60, daily hours as-is,
// long days x hoursPerDay. Totals are cached per project until the next
// task write.
func (s *AllocationService) AggregateByProject(ctx context.Context, projectID string) (float64, error) {
	if _, err := s.projects.FindByID(ctx, projectID); err != nil {
		return 0, mapNotFound(err, apperrors.ErrProjectNotFound)
	}

	if hours, ok := s.hoursCache.Get(ctx, projectID); ok {
		return hours, nil
	}

	tasks, err := s.tasks.ListByProject(ctx, projectID)
	if err != nil {
		return 0, err
	}

	var total float64
	for i := range tasks {
		total += tasks[i].Hours(s.hoursPerDay)
	}

	s.hoursCache.Set(ctx, projectID, total)
	return total, nil
}

func validateTimeRange(start, end string) error {
	startAt, err := time.Parse(timeLayout, start)
	if err != nil {
		return apperrors.Validation("start_time must be HH:MM")
	}
	endAt, err := time.Parse(timeLayout, end)
	if err != nil {
		return apperrors.Validation("end_time must be HH:MM")
	}
	if !startAt.Before(endAt) {
		return apperrors.ErrInvalidTimeRange
	}
	return nil
}
