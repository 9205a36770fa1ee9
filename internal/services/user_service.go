package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"chronos.team/chronos/internal/constants"
	dto "chronos.team/chronos/internal/data_models"
	apperrors "chronos.team/chronos/internal/errors"
	"chronos.team/chronos/internal/metrics"
	model "chronos.team/chronos/internal/models"
	repository "chronos.team/chronos/internal/repositories"
)

type UserService struct {
	users  *repository.UserRepository
	logger *zap.Logger
}

func NewUserService(users *repository.UserRepository, logger *zap.Logger) *UserService {
	return &UserService{users: users, logger: logger}
}

// Create registers a user. Admin only; the seed command bootstraps the first
// admin directly through the repository.
func (s *UserService) Create(ctx context.Context, actorID string, req dto.CreateUserRequest) (*model.User, error) {
	if err := s.requireAdmin(ctx, actorID); err != nil {
		return nil, err
	}

	email := strings.TrimSpace(strings.ToLower(req.Email))
	if email == "" {
		return nil, apperrors.Validation("email is required")
	}
	if strings.TrimSpace(req.Name) == "" {
		return nil, apperrors.Validation("name is required")
	}

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, apperrors.Conflict("email already registered")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	role := constants.Role(req.Role)
	if req.Role == "" {
		role = constants.RoleUser
	}
	if !role.Valid() {
		return nil, apperrors.Validation("invalid role")
	}

	user := &model.User{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         strings.TrimSpace(req.Name),
		Role:         role,
		Department:   req.Department,
		Active:       true,
		WorkDayStart: defaultString(req.WorkDayStart, "09:00"),
		WorkDayEnd:   defaultString(req.WorkDayEnd, "17:00"),
		DailyHours:   defaultFloat(req.DailyHours, constants.DefaultDailyHours),
		HoursPerDay:  defaultFloat(req.HoursPerDay, constants.DefaultDailyHours),
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	metrics.IncrementEntityWrite("user", "create")
	s.logger.Info("user created",
		zap.String("user_id", user.ID),
		zap.String("role", string(role)),
	)

	return user, nil
}

func (s *UserService) Get(ctx context.Context, id string) (*model.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, apperrors.ErrUserNotFound)
	}
	return user, nil
}

func (s *UserService) List(ctx context.Context) ([]model.User, error) {
	return s.users.List(ctx)
}

// Update applies a partial profile update. A role change is admin-only;
// other fields may be changed by the user themself or an admin.
func (s *UserService) Update(ctx context.Context, actorID, id string, req dto.UpdateUserRequest) (*model.User, error) {
	actor, err := s.users.FindByID(ctx, actorID)
	if err != nil {
		return nil, mapNotFound(err, apperrors.ErrUserNotFound)
	}

	if actor.Role != constants.RoleAdmin && actor.ID != id {
		return nil, apperrors.ErrForbidden
	}

	fields := map[string]interface{}{}

	if req.Role != nil {
		if actor.Role != constants.RoleAdmin {
			return nil, apperrors.ErrForbidden
		}
		role := constants.Role(*req.Role)
		if !role.Valid() {
			return nil, apperrors.Validation("invalid role")
		}
		fields["role"] = role
	}
	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, apperrors.Validation("name is required")
		}
		fields["name"] = strings.TrimSpace(*req.Name)
	}
	if req.Department != nil {
		fields["department"] = *req.Department
	}
	if req.WorkDayStart != nil {
		fields["work_day_start"] = *req.WorkDayStart
	}
	if req.WorkDayEnd != nil {
		fields["work_day_end"] = *req.WorkDayEnd
	}
	if req.DailyHours != nil {
		if *req.DailyHours <= 0 {
			return nil, apperrors.Validation("daily_hours must be positive")
		}
		fields["daily_hours"] = *req.DailyHours
	}
	if req.HoursPerDay != nil {
		if *req.HoursPerDay <= 0 {
			return nil, apperrors.Validation("hours_per_day must be positive")
		}
		fields["hours_per_day"] = *req.HoursPerDay
	}

	if len(fields) > 0 {
		if err := s.users.UpdateFields(ctx, id, fields); err != nil {
			return nil, mapNotFound(err, apperrors.ErrUserNotFound)
		}
		metrics.IncrementEntityWrite("user", "update")
	}

	return s.Get(ctx, id)
}

// Deactivate flips the active flag instead of deleting the row, so history
// referencing the user stays intact. Admin only.
func (s *UserService) Deactivate(ctx context.Context, actorID, id string) error {
	if err := s.requireAdmin(ctx, actorID); err != nil {
		return err
	}

	if err := s.users.UpdateFields(ctx, id, map[string]interface{}{
		"active": false,
	}); err != nil {
		return mapNotFound(err, apperrors.ErrUserNotFound)
	}

	metrics.IncrementEntityWrite("user", "deactivate")
	s.logger.Info("user deactivated", zap.String("user_id", id))

	return nil
}

func (s *UserService) requireAdmin(ctx context.Context, actorID string) error {
	actor, err := s.users.FindByID(ctx, actorID)
	if err != nil {
		return mapNotFound(err, apperrors.ErrUserNotFound)
	}
	if actor.Role != constants.RoleAdmin {
		return apperrors.ErrForbidden
	}
	return nil
}

func defaultString(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func defaultFloat(v, fallback float64) float64 {
	if v == 0 {
		return fallback
	}
	return v
}
