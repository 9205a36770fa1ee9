package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"chronos.team/chronos/internal/constants"
	dto "chronos.team/chronos/internal/data_models"
	apperrors "chronos.team/chronos/internal/errors"
	"chronos.team/chronos/internal/metrics"
	model "chronos.team/chronos/internal/models"
	repository "chronos.team/chronos/internal/repositories"
)

type FeatureRequestService struct {
	requests *repository.FeatureRequestRepository
	users    *repository.UserRepository
	logger   *zap.Logger
}

func NewFeatureRequestService(
	requests *repository.FeatureRequestRepository,
	users *repository.UserRepository,
	logger *zap.Logger,
) *FeatureRequestService {
	return &FeatureRequestService{
		requests: requests,
		users:    users,
		logger:   logger,
	}
}

// Create files a request. Any user may file one.
func (s *FeatureRequestService) Create(ctx context.Context, actorID string, req dto.CreateFeatureRequestRequest) (*model.FeatureRequest, error) {
	actor, err := s.users.FindByID(ctx, actorID)
	if err != nil {
		return nil, mapNotFound(err, apperrors.ErrUserNotFound)
	}

	if strings.TrimSpace(req.Problem) == "" {
		return nil, apperrors.Validation("problem is required")
	}

	impact := constants.Impact(req.Impact)
	if req.Impact == "" {
		impact = constants.ImpactModerate
	}
	if !impact.Valid() {
		return nil, apperrors.Validation("invalid impact")
	}

	request := &model.FeatureRequest{
		ID:          uuid.NewString(),
		Problem:     strings.TrimSpace(req.Problem),
		Suggestion:  req.Suggestion,
		PageContext: req.PageContext,
		Impact:      impact,
		Status:      constants.RequestPending,
		CreatedByID: actor.ID,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.requests.Create(ctx, request); err != nil {
		return nil, err
	}

	metrics.IncrementEntityWrite("feature_request", "create")
	s.logger.Info("feature request created",
		zap.String("request_id", request.ID),
		zap.String("impact", string(impact)),
	)

	return request, nil
}

func (s *FeatureRequestService) List(ctx context.Context) ([]model.FeatureRequest, error) {
	return s.requests.List(ctx)
}

// UpdateStatus advances the review state. Admin/manager only.
func (s *FeatureRequestService) UpdateStatus(ctx context.Context, actorID, id, status string) (*model.FeatureRequest, error) {
	actor, err := s.users.FindByID(ctx, actorID)
	if err != nil {
		return nil, mapNotFound(err, apperrors.ErrUserNotFound)
	}
	if !actor.Role.CanReview() {
		return nil, apperrors.ErrForbidden
	}

	requestStatus := constants.RequestStatus(status)
	if !requestStatus.Valid() {
		return nil, apperrors.Validation("invalid status")
	}

	if err := s.requests.UpdateFields(ctx, id, map[string]interface{}{
		"status": requestStatus,
	}); err != nil {
		return nil, mapNotFound(err, apperrors.ErrFeatureRequestNotFound)
	}

	metrics.IncrementEntityWrite("feature_request", "update")

	request, err := s.requests.FindByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, apperrors.ErrFeatureRequestNotFound)
	}
	return request, nil
}
