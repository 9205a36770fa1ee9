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

type AnnouncementService struct {
	announcements *repository.AnnouncementRepository
	users         *repository.UserRepository
	logger        *zap.Logger
}

func NewAnnouncementService(
	announcements *repository.AnnouncementRepository,
	users *repository.UserRepository,
	logger *zap.Logger,
) *AnnouncementService {
	return &AnnouncementService{
		announcements: announcements,
		users:         users,
		logger:        logger,
	}
}

// Create publishes an announcement. Only admins and managers may publish.
func (s *AnnouncementService) Create(ctx context.Context, actorID string, req dto.CreateAnnouncementRequest) (*model.Announcement, error) {
	actor, err := s.users.FindByID(ctx, actorID)
	if err != nil {
		return nil, mapNotFound(err, apperrors.ErrUserNotFound)
	}
	if !actor.Role.CanReview() {
		return nil, apperrors.ErrForbidden
	}

	if strings.TrimSpace(req.Title) == "" {
		return nil, apperrors.ErrTitleRequired
	}
	if strings.TrimSpace(req.Body) == "" {
		return nil, apperrors.Validation("body is required")
	}

	severity := constants.Severity(req.Severity)
	if req.Severity == "" {
		severity = constants.SeverityInfo
	}
	if !severity.Valid() {
		return nil, apperrors.Validation("invalid severity")
	}

	announcement := &model.Announcement{
		ID:          uuid.NewString(),
		Title:       strings.TrimSpace(req.Title),
		Body:        req.Body,
		Severity:    severity,
		Departments: strings.Join(req.Departments, ","),
		ExpiresAt:   req.ExpiresAt,
		CreatedByID: actor.ID,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.announcements.Create(ctx, announcement); err != nil {
		return nil, err
	}

	metrics.IncrementEntityWrite("announcement", "create")
	s.logger.Info("announcement created",
		zap.String("announcement_id", announcement.ID),
		zap.String("severity", string(severity)),
		zap.String("created_by", actor.ID),
	)

	return announcement, nil
}

// ListActive returns the announcements visible to the actor: not expired and
// either broadcast or targeted at the actor's department.
func (s *AnnouncementService) ListActive(ctx context.Context, actorID string) ([]dto.AnnouncementView, error) {
	actor, err := s.users.FindByID(ctx, actorID)
	if err != nil {
		return nil, mapNotFound(err, apperrors.ErrUserNotFound)
	}

	announcements, err := s.announcements.List(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	views := make([]dto.AnnouncementView, 0, len(announcements))
	for i := range announcements {
		a := &announcements[i]
		if a.Expired(now) || !a.TargetsDepartment(actor.Department) {
			continue
		}

		readByActor := false
		for _, read := range a.Reads {
			if read.UserID == actor.ID {
				readByActor = true
				break
			}
		}

		views = append(views, dto.AnnouncementView{
			ID:          a.ID,
			Title:       a.Title,
			Body:        a.Body,
			Severity:    string(a.Severity),
			ExpiresAt:   a.ExpiresAt,
			CreatedByID: a.CreatedByID,
			CreatedAt:   a.CreatedAt,
			ReadCount:   len(a.Reads),
			ReadByActor: readByActor,
		})
	}

	return views, nil
}

// Acknowledge marks the announcement read by the actor. Repeat calls are
// no-ops.
func (s *AnnouncementService) Acknowledge(ctx context.Context, announcementID, actorID string) error {
	if _, err := s.announcements.FindByID(ctx, announcementID); err != nil {
		return mapNotFound(err, apperrors.ErrAnnouncementNotFound)
	}
	if _, err := s.users.FindByID(ctx, actorID); err != nil {
		return mapNotFound(err, apperrors.ErrUserNotFound)
	}

	if err := s.announcements.Acknowledge(ctx, announcementID, actorID); err != nil {
		return err
	}

	metrics.IncrementEntityWrite("announcement", "acknowledge")
	return nil
}
