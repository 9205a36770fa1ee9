package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"chronos.team/chronos/internal/constants"
	apperrors "chronos.team/chronos/internal/errors"
	"chronos.team/chronos/internal/metrics"
	model "chronos.team/chronos/internal/models"
	repository "chronos.team/chronos/internal/repositories"
)

// AssignmentService manages the many-to-many link between tasks and users.
// The assignment rows are the single source of truth for "who is
// responsible"; the task's legacy AssignedToID column is a derived view of
// the first assignment.
type AssignmentService struct {
	assignments *repository.AssignmentRepository
	tasks       *repository.TaskRepository
	users       *repository.UserRepository
	logger      *zap.Logger
}

func NewAssignmentService(
	assignments *repository.AssignmentRepository,
	tasks *repository.TaskRepository,
	users *repository.UserRepository,
	logger *zap.Logger,
) *AssignmentService {
	return &AssignmentService{
		assignments: assignments,
		tasks:       tasks,
		users:       users,
		logger:      logger,
	}
}

// AssignUsers creates one pending assignment per assignee. The operation is
// idempotent per (task, assignee): an already-assigned user keeps their
// existing row and status, and only newly created assignments are returned.
func (s *AssignmentService) AssignUsers(ctx context.Context, taskID string, assigneeIDs []string, assignedByID string) ([]model.TaskAssignment, error) {
	if len(assigneeIDs) == 0 {
		return nil, apperrors.Validation("assignee_ids must not be empty")
	}

	if _, err := s.tasks.FindByID(ctx, taskID); err != nil {
		return nil, mapNotFound(err, apperrors.ErrTaskNotFound)
	}
	assigner, err := s.users.FindByID(ctx, assignedByID)
	if err != nil {
		return nil, mapNotFound(err, apperrors.ErrUserNotFound)
	}

	assignees, err := s.resolveAssignees(ctx, assigneeIDs)
	if err != nil {
		return nil, err
	}

	existing, err := s.assignments.ListByTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	alreadyAssigned := make(map[string]struct{}, len(existing))
	for _, a := range existing {
		alreadyAssigned[a.AssigneeID] = struct{}{}
	}

	now := time.Now().UTC()
	created := make([]model.TaskAssignment, 0, len(assignees))
	for _, assignee := range assignees {
		if _, ok := alreadyAssigned[assignee.ID]; ok {
			continue
		}
		created = append(created, model.TaskAssignment{
			ID:           uuid.NewString(),
			TaskID:       taskID,
			AssigneeID:   assignee.ID,
			AssignedByID: assigner.ID,
			Status:       constants.AssignmentPending,
			AssignedAt:   now,
		})
	}

	if len(created) == 0 {
		return created, nil
	}

	var legacyAssigneeID *string
	if len(existing) == 0 {
		legacyAssigneeID = &created[0].AssigneeID
	}

	if err := s.assignments.CreateBatch(ctx, created, taskID, legacyAssigneeID); err != nil {
		return nil, err
	}

	metrics.IncrementEntityWrite("assignment", "create")
	s.logger.Info("users assigned",
		zap.String("task_id", taskID),
		zap.String("assigned_by", assigner.ID),
		zap.Int("created", len(created)),
		zap.Int("skipped", len(assignees)-len(created)),
	)

	return created, nil
}

// ListAssignees returns the users currently responsible for the task. The
// structured assignment rows win; the legacy single-assignee column is only
// consulted for tasks that predate the multi-assignee model.
func (s *AssignmentService) ListAssignees(ctx context.Context, taskID string) ([]model.User, error) {
	task, err := s.tasks.FindByID(ctx, taskID)
	if err != nil {
		return nil, mapNotFound(err, apperrors.ErrTaskNotFound)
	}

	assignments, err := s.assignments.ListByTask(ctx, taskID)
	if err != nil {
		return nil, err
	}

	if len(assignments) == 0 {
		if task.AssignedToID == nil {
			return []model.User{}, nil
		}
		legacy, err := s.users.FindByID(ctx, *task.AssignedToID)
		if err != nil {
			// A dangling legacy pointer must not break the listing.
			return []model.User{}, nil
		}
		return []model.User{*legacy}, nil
	}

	ids := make([]string, 0, len(assignments))
	for _, a := range assignments {
		ids = append(ids, a.AssigneeID)
	}
	ids = dedupe(ids)

	users, err := s.users.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]model.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}
	ordered := make([]model.User, 0, len(ids))
	for _, id := range ids {
		if u, ok := byID[id]; ok {
			ordered = append(ordered, u)
		}
	}
	return ordered, nil
}

// UpdateStatus advances a single assignment independently of the parent
// task's status.
func (s *AssignmentService) UpdateStatus(ctx context.Context, id string, status string) (*model.TaskAssignment, error) {
	assignmentStatus := constants.AssignmentStatus(status)
	if !assignmentStatus.Valid() {
		return nil, apperrors.Validation("invalid assignment status")
	}

	if err := s.assignments.UpdateFields(ctx, id, map[string]interface{}{
		"status": assignmentStatus,
	}); err != nil {
		return nil, mapNotFound(err, apperrors.ErrAssignmentNotFound)
	}

	metrics.IncrementEntityWrite("assignment", "update")

	assignment, err := s.assignments.FindByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, apperrors.ErrAssignmentNotFound)
	}
	return assignment, nil
}

func (s *AssignmentService) resolveAssignees(ctx context.Context, ids []string) ([]model.User, error) {
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
