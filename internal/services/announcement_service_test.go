package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"chronos.team/chronos/internal/constants"
	dto "chronos.team/chronos/internal/data_models"
	apperrors "chronos.team/chronos/internal/errors"
	model "chronos.team/chronos/internal/models"
)

func (e *testEnv) setDepartment(t *testing.T, userID, department string) {
	t.Helper()
	if err := e.db.Model(&model.User{}).
		Where("id = ?", userID).
		Update("department", department).Error; err != nil {
		t.Fatalf("failed to set department: %v", err)
	}
}

func TestAnnouncementService_CreateRequiresReviewer(t *testing.T) {
	env := newTestEnv(t)
	plain := env.makeUser(t, constants.RoleUser)

	_, err := env.announcements.Create(context.Background(), plain.ID, dto.CreateAnnouncementRequest{
		Title: "Nope",
		Body:  "Regular users cannot publish",
	})
	if !errors.Is(err, apperrors.ErrForbidden) {
		t.Errorf("expected ErrForbidden, got %v", err)
	}
}

func TestAnnouncementService_DepartmentTargeting(t *testing.T) {
	env := newTestEnv(t)
	manager := env.makeUser(t, constants.RoleManager)
	warehouse := env.makeUser(t, constants.RoleUser)
	marketing := env.makeUser(t, constants.RoleUser)
	env.setDepartment(t, warehouse.ID, "warehouse")
	env.setDepartment(t, marketing.ID, "marketing")
	ctx := context.Background()

	if _, err := env.announcements.Create(ctx, manager.ID, dto.CreateAnnouncementRequest{
		Title:       "Stock count",
		Body:        "Count shelves tonight",
		Departments: []string{"warehouse"},
	}); err != nil {
		t.Fatalf("failed to create targeted announcement: %v", err)
	}
	if _, err := env.announcements.Create(ctx, manager.ID, dto.CreateAnnouncementRequest{
		Title:    "All hands",
		Body:     "Friday at noon",
		Severity: "urgent",
	}); err != nil {
		t.Fatalf("failed to create broadcast announcement: %v", err)
	}

	views, err := env.announcements.ListActive(ctx, warehouse.ID)
	if err != nil {
		t.Fatalf("failed to list for warehouse: %v", err)
	}
	if len(views) != 2 {
		t.Errorf("warehouse should see 2 announcements, got %d", len(views))
	}

	views, err = env.announcements.ListActive(ctx, marketing.ID)
	if err != nil {
		t.Fatalf("failed to list for marketing: %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("marketing should only see the broadcast, got %d", len(views))
	}
	if views[0].Title != "All hands" {
		t.Errorf("expected broadcast, got %q", views[0].Title)
	}
}

func TestAnnouncementService_ExpiredAreHidden(t *testing.T) {
	env := newTestEnv(t)
	manager := env.makeUser(t, constants.RoleManager)
	reader := env.makeUser(t, constants.RoleUser)
	ctx := context.Background()

	expired := time.Now().UTC().Add(-time.Hour)
	if _, err := env.announcements.Create(ctx, manager.ID, dto.CreateAnnouncementRequest{
		Title:     "Old news",
		Body:      "Already over",
		ExpiresAt: &expired,
	}); err != nil {
		t.Fatalf("failed to create expired announcement: %v", err)
	}

	upcoming := time.Now().UTC().Add(time.Hour)
	if _, err := env.announcements.Create(ctx, manager.ID, dto.CreateAnnouncementRequest{
		Title:     "Still on",
		Body:      "Happening soon",
		ExpiresAt: &upcoming,
	}); err != nil {
		t.Fatalf("failed to create live announcement: %v", err)
	}

	views, err := env.announcements.ListActive(ctx, reader.ID)
	if err != nil {
		t.Fatalf("failed to list: %v", err)
	}
	if len(views) != 1 || views[0].Title != "Still on" {
		t.Errorf("expected only the unexpired announcement, got %v", views)
	}
}

func TestAnnouncementService_AcknowledgeIsIdempotent(t *testing.T) {
	env := newTestEnv(t)
	manager := env.makeUser(t, constants.RoleManager)
	reader := env.makeUser(t, constants.RoleUser)
	other := env.makeUser(t, constants.RoleUser)
	ctx := context.Background()

	announcement, err := env.announcements.Create(ctx, manager.ID, dto.CreateAnnouncementRequest{
		Title: "Read me",
		Body:  "Please acknowledge",
	})
	if err != nil {
		t.Fatalf("failed to create announcement: %v", err)
	}

	for i := 0; i < 3; i++ {
		if err := env.announcements.Acknowledge(ctx, announcement.ID, reader.ID); err != nil {
			t.Fatalf("acknowledge %d failed: %v", i, err)
		}
	}

	views, err := env.announcements.ListActive(ctx, reader.ID)
	if err != nil {
		t.Fatalf("failed to list for reader: %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("expected 1 announcement, got %d", len(views))
	}
	if views[0].ReadCount != 1 {
		t.Errorf("expected read count 1 after repeated acks, got %d", views[0].ReadCount)
	}
	if !views[0].ReadByActor {
		t.Error("expected announcement to be marked read for the reader")
	}

	views, err = env.announcements.ListActive(ctx, other.ID)
	if err != nil {
		t.Fatalf("failed to list for other: %v", err)
	}
	if views[0].ReadByActor {
		t.Error("other user must not inherit the reader's acknowledgement")
	}
}

func TestAnnouncementService_AcknowledgeMissing(t *testing.T) {
	env := newTestEnv(t)
	reader := env.makeUser(t, constants.RoleUser)

	err := env.announcements.Acknowledge(context.Background(), "no-such-announcement", reader.ID)
	if !errors.Is(err, apperrors.ErrAnnouncementNotFound) {
		t.Errorf("expected ErrAnnouncementNotFound, got %v", err)
	}
}
