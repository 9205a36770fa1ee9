package services

import (
	"context"
	"errors"
	"testing"

	"chronos.team/chronos/internal/constants"
	dto "chronos.team/chronos/internal/data_models"
	apperrors "chronos.team/chronos/internal/errors"
)

func TestAllocationService_CreateDefaults(t *testing.T) {
	env := newTestEnv(t)
	creator := env.makeUser(t, constants.RoleUser)
	ctx := context.Background()

	task, err := env.tasks.Create(ctx, creator.ID, dto.CreateTaskRequest{Title: "Plan me"})
	if err != nil {
		t.Fatalf("failed to create task: %v", err)
	}

	allocation, err := env.allocations.Create(ctx, dto.CreateAllocationRequest{
		TaskID:    task.ID,
		UserID:    creator.ID,
		Date:      "2026-09-03",
		StartTime: "09:00",
		EndTime:   "11:30",
	})
	if err != nil {
		t.Fatalf("failed to create allocation: %v", err)
	}
	if allocation.Status != constants.AllocationPlanned {
		t.Errorf("expected planned status, got %s", allocation.Status)
	}
}

func TestAllocationService_RejectsInvalidTimeRange(t *testing.T) {
	env := newTestEnv(t)
	creator := env.makeUser(t, constants.RoleUser)
	ctx := context.Background()

	task, err := env.tasks.Create(ctx, creator.ID, dto.CreateTaskRequest{Title: "Bad range"})
	if err != nil {
		t.Fatalf("failed to create task: %v", err)
	}

	cases := []struct{ start, end string }{
		{"14:00", "13:00"},
		{"10:00", "10:00"},
	}
	for _, tc := range cases {
		_, err := env.allocations.Create(ctx, dto.CreateAllocationRequest{
			TaskID:    task.ID,
			UserID:    creator.ID,
			Date:      "2026-09-03",
			StartTime: tc.start,
			EndTime:   tc.end,
		})
		if !errors.Is(err, apperrors.ErrInvalidTimeRange) {
			t.Errorf("%s-%s: expected ErrInvalidTimeRange, got %v", tc.start, tc.end, err)
		}
	}
}

func TestAllocationService_UpdateValidatesMergedRange(t *testing.T) {
	env := newTestEnv(t)
	creator := env.makeUser(t, constants.RoleUser)
	ctx := context.Background()

	task, err := env.tasks.Create(ctx, creator.ID, dto.CreateTaskRequest{Title: "Shift me"})
	if err != nil {
		t.Fatalf("failed to create task: %v", err)
	}

	allocation, err := env.allocations.Create(ctx, dto.CreateAllocationRequest{
		TaskID:    task.ID,
		UserID:    creator.ID,
		Date:      "2026-09-03",
		StartTime: "09:00",
		EndTime:   "10:00",
	})
	if err != nil {
		t.Fatalf("failed to create allocation: %v", err)
	}

	// Moving only the start past the stored end must fail.
	lateStart := "11:00"
	_, err = env.allocations.Update(ctx, allocation.ID, dto.UpdateAllocationRequest{StartTime: &lateStart})
	if !errors.Is(err, apperrors.ErrInvalidTimeRange) {
		t.Errorf("expected ErrInvalidTimeRange, got %v", err)
	}

	newEnd := "12:00"
	updated, err := env.allocations.Update(ctx, allocation.ID, dto.UpdateAllocationRequest{EndTime: &newEnd})
	if err != nil {
		t.Fatalf("failed to extend allocation: %v", err)
	}
	if updated.EndTime != "12:00" || updated.StartTime != "09:00" {
		t.Errorf("unexpected range after update: %s-%s", updated.StartTime, updated.EndTime)
	}
}

func TestAllocationService_ListForUser(t *testing.T) {
	env := newTestEnv(t)
	worker := env.makeUser(t, constants.RoleUser)
	other := env.makeUser(t, constants.RoleUser)
	ctx := context.Background()

	task, err := env.tasks.Create(ctx, worker.ID, dto.CreateTaskRequest{Title: "Timeline"})
	if err != nil {
		t.Fatalf("failed to create task: %v", err)
	}

	for _, block := range []struct {
		userID string
		date   string
	}{
		{worker.ID, "2026-09-01"},
		{worker.ID, "2026-09-05"},
		{worker.ID, "2026-09-20"},
		{other.ID, "2026-09-05"},
	} {
		_, err := env.allocations.Create(ctx, dto.CreateAllocationRequest{
			TaskID:    task.ID,
			UserID:    block.userID,
			Date:      block.date,
			StartTime: "09:00",
			EndTime:   "10:00",
		})
		if err != nil {
			t.Fatalf("failed to create allocation: %v", err)
		}
	}

	listed, err := env.allocations.ListForUser(ctx, worker.ID, "2026-09-01", "2026-09-10")
	if err != nil {
		t.Fatalf("failed to list allocations: %v", err)
	}
	if len(listed) != 2 {
		t.Fatalf("expected 2 allocations in range, got %d", len(listed))
	}
	for _, a := range listed {
		if a.UserID != worker.ID {
			t.Errorf("unexpected user %s in listing", a.UserID)
		}
	}
}

func TestAllocationService_AggregateByProject(t *testing.T) {
	env := newTestEnv(t)
	owner := env.makeUser(t, constants.RoleUser)
	project := env.makeProject(t, owner.ID)
	ctx := context.Background()

	_, err := env.tasks.Create(ctx, owner.ID, dto.CreateTaskRequest{
		Title:     "A",
		TimeType:  "misc",
		TimeValue: 30,
		ProjectID: &project.ID,
	})
	if err != nil {
		t.Fatalf("failed to create task: %v", err)
	}
	_, err = env.tasks.Create(ctx, owner.ID, dto.CreateTaskRequest{
		Title:     "B",
		TimeType:  "daily",
		TimeValue: 2,
		ProjectID: &project.ID,
	})
	if err != nil {
		t.Fatalf("failed to create task: %v", err)
	}

	hours, err := env.allocations.AggregateByProject(ctx, project.ID)
	if err != nil {
		t.Fatalf("failed to aggregate: %v", err)
	}
	if hours != 2.5 {
		t.Errorf("expected 2.5 hours, got %v", hours)
	}

	// Deleting a task must be reflected in the next total.
	tasks, err := env.tasks.ListByProject(ctx, project.ID)
	if err != nil {
		t.Fatalf("failed to list tasks: %v", err)
	}
	for i := range tasks {
		if tasks[i].Title == "B" {
			if err := env.tasks.Delete(ctx, tasks[i].ID); err != nil {
				t.Fatalf("failed to delete task: %v", err)
			}
		}
	}

	hours, err = env.allocations.AggregateByProject(ctx, project.ID)
	if err != nil {
		t.Fatalf("failed to aggregate: %v", err)
	}
	if hours != 0.5 {
		t.Errorf("expected 0.5 hours after delete, got %v", hours)
	}
}

func TestAllocationService_AggregateMissingProject(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.allocations.AggregateByProject(context.Background(), "no-such-project")
	if !errors.Is(err, apperrors.ErrProjectNotFound) {
		t.Errorf("expected ErrProjectNotFound, got %v", err)
	}
}

func TestAllocationService_DeleteMissing(t *testing.T) {
	env := newTestEnv(t)

	err := env.allocations.Delete(context.Background(), "no-such-allocation")
	if !errors.Is(err, apperrors.ErrAllocationNotFound) {
		t.Errorf("expected ErrAllocationNotFound, got %v", err)
	}
}
