package services

import (
	"context"
	"errors"
	"testing"

	"chronos.team/chronos/internal/constants"
	dto "chronos.team/chronos/internal/data_models"
	apperrors "chronos.team/chronos/internal/errors"
	model "chronos.team/chronos/internal/models"
)

func TestAssignmentService_AssignAndList(t *testing.T) {
	env := newTestEnv(t)
	manager := env.makeUser(t, constants.RoleManager)
	u1 := env.makeUser(t, constants.RoleUser)
	u2 := env.makeUser(t, constants.RoleUser)
	ctx := context.Background()

	task, err := env.tasks.Create(ctx, manager.ID, dto.CreateTaskRequest{Title: "Shared work"})
	if err != nil {
		t.Fatalf("failed to create task: %v", err)
	}

	created, err := env.assignments.AssignUsers(ctx, task.ID, []string{u1.ID, u2.ID}, manager.ID)
	if err != nil {
		t.Fatalf("failed to assign users: %v", err)
	}
	if len(created) != 2 {
		t.Fatalf("expected 2 new assignments, got %d", len(created))
	}

	assignees, err := env.assignments.ListAssignees(ctx, task.ID)
	if err != nil {
		t.Fatalf("failed to list assignees: %v", err)
	}

	got := map[string]bool{}
	for _, u := range assignees {
		got[u.ID] = true
	}
	if len(got) != 2 || !got[u1.ID] || !got[u2.ID] {
		t.Errorf("expected assignees {%s, %s}, got %v", u1.ID, u2.ID, got)
	}
}

func TestAssignmentService_AssignIsIdempotent(t *testing.T) {
	env := newTestEnv(t)
	manager := env.makeUser(t, constants.RoleManager)
	u1 := env.makeUser(t, constants.RoleUser)
	ctx := context.Background()

	task, err := env.tasks.Create(ctx, manager.ID, dto.CreateTaskRequest{Title: "Assign twice"})
	if err != nil {
		t.Fatalf("failed to create task: %v", err)
	}

	first, err := env.assignments.AssignUsers(ctx, task.ID, []string{u1.ID}, manager.ID)
	if err != nil {
		t.Fatalf("first assign failed: %v", err)
	}
	if len(first) != 1 {
		t.Fatalf("expected 1 assignment, got %d", len(first))
	}

	// Advance the assignment so we can verify it survives the repeat call.
	if _, err := env.assignments.UpdateStatus(ctx, first[0].ID, string(constants.AssignmentAccepted)); err != nil {
		t.Fatalf("failed to update assignment status: %v", err)
	}

	second, err := env.assignments.AssignUsers(ctx, task.ID, []string{u1.ID}, manager.ID)
	if err != nil {
		t.Fatalf("second assign failed: %v", err)
	}
	if len(second) != 0 {
		t.Errorf("expected repeat assign to create nothing, got %d", len(second))
	}

	rows, err := env.assignmentRepo.ListByTask(ctx, task.ID)
	if err != nil {
		t.Fatalf("failed to list assignments: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected exactly 1 assignment row, got %d", len(rows))
	}
	if rows[0].Status != constants.AssignmentAccepted {
		t.Errorf("repeat assign must not reset status, got %s", rows[0].Status)
	}
}

func TestAssignmentService_LegacyFallback(t *testing.T) {
	env := newTestEnv(t)
	manager := env.makeUser(t, constants.RoleManager)
	legacy := env.makeUser(t, constants.RoleUser)
	ctx := context.Background()

	task, err := env.tasks.Create(ctx, manager.ID, dto.CreateTaskRequest{Title: "Old style"})
	if err != nil {
		t.Fatalf("failed to create task: %v", err)
	}

	// Simulate a row imported before the multi-assignee model existed.
	if err := env.db.Model(&model.Task{}).
		Where("id = ?", task.ID).
		Update("assigned_to_id", legacy.ID).Error; err != nil {
		t.Fatalf("failed to set legacy assignee: %v", err)
	}

	assignees, err := env.assignments.ListAssignees(ctx, task.ID)
	if err != nil {
		t.Fatalf("failed to list assignees: %v", err)
	}
	if len(assignees) != 1 || assignees[0].ID != legacy.ID {
		t.Errorf("expected legacy fallback to return %s, got %v", legacy.ID, assignees)
	}

	// Structured assignments win once they exist.
	replacement := env.makeUser(t, constants.RoleUser)
	if _, err := env.assignments.AssignUsers(ctx, task.ID, []string{replacement.ID}, manager.ID); err != nil {
		t.Fatalf("failed to assign: %v", err)
	}

	assignees, err = env.assignments.ListAssignees(ctx, task.ID)
	if err != nil {
		t.Fatalf("failed to list assignees: %v", err)
	}
	if len(assignees) != 1 || assignees[0].ID != replacement.ID {
		t.Errorf("expected structured assignment to win, got %v", assignees)
	}
}

func TestAssignmentService_MissingTask(t *testing.T) {
	env := newTestEnv(t)
	manager := env.makeUser(t, constants.RoleManager)
	u1 := env.makeUser(t, constants.RoleUser)

	_, err := env.assignments.AssignUsers(context.Background(), "no-such-task", []string{u1.ID}, manager.ID)
	if !errors.Is(err, apperrors.ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound, got %v", err)
	}
}
