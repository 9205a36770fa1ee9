package services

import (
	"context"
	"errors"
	"testing"

	"chronos.team/chronos/internal/constants"
	dto "chronos.team/chronos/internal/data_models"
	apperrors "chronos.team/chronos/internal/errors"
)

func TestProjectService_DeleteCascades(t *testing.T) {
	env := newTestEnv(t)
	owner := env.makeUser(t, constants.RoleManager)
	assignee := env.makeUser(t, constants.RoleUser)
	project := env.makeProject(t, owner.ID)
	ctx := context.Background()

	t1, err := env.tasks.Create(ctx, owner.ID, dto.CreateTaskRequest{
		Title:       "Cascade one",
		ProjectID:   &project.ID,
		AssigneeIDs: []string{assignee.ID},
	})
	if err != nil {
		t.Fatalf("failed to create task: %v", err)
	}
	t2, err := env.tasks.Create(ctx, owner.ID, dto.CreateTaskRequest{
		Title:     "Cascade two",
		ProjectID: &project.ID,
	})
	if err != nil {
		t.Fatalf("failed to create task: %v", err)
	}

	allocation, err := env.allocations.Create(ctx, dto.CreateAllocationRequest{
		TaskID:    t1.ID,
		UserID:    assignee.ID,
		Date:      "2026-09-02",
		StartTime: "13:00",
		EndTime:   "15:00",
	})
	if err != nil {
		t.Fatalf("failed to create allocation: %v", err)
	}

	if err := env.projects.Delete(ctx, project.ID); err != nil {
		t.Fatalf("failed to delete project: %v", err)
	}

	if _, err := env.projects.Get(ctx, project.ID); !errors.Is(err, apperrors.ErrProjectNotFound) {
		t.Errorf("expected project to be gone, got %v", err)
	}
	for _, id := range []string{t1.ID, t2.ID} {
		if _, err := env.tasks.Get(ctx, id); !errors.Is(err, apperrors.ErrTaskNotFound) {
			t.Errorf("expected task %s to be gone, got %v", id, err)
		}
	}

	assignments, err := env.assignmentRepo.ListByTask(ctx, t1.ID)
	if err != nil {
		t.Fatalf("failed to list assignments: %v", err)
	}
	if len(assignments) != 0 {
		t.Errorf("expected no assignments after cascade, got %d", len(assignments))
	}
	if _, err := env.allocationRepo.FindByID(ctx, allocation.ID); err == nil {
		t.Error("expected allocation to be gone after cascade")
	}
}

func TestProjectService_DeleteMissing(t *testing.T) {
	env := newTestEnv(t)

	err := env.projects.Delete(context.Background(), "no-such-project")
	if !errors.Is(err, apperrors.ErrProjectNotFound) {
		t.Errorf("expected ErrProjectNotFound, got %v", err)
	}
}

func TestProjectService_CreateWithTasks(t *testing.T) {
	env := newTestEnv(t)
	owner := env.makeUser(t, constants.RoleUser)
	ctx := context.Background()

	project, tasks, err := env.projects.CreateWithTasks(ctx, dto.CreateProjectWithTasksRequest{
		Name:    "Launch plan",
		OwnerID: owner.ID,
		Tasks: []dto.TaskDraft{
			{Title: "Draft copy", TimeType: "daily", TimeValue: 2},
			{Title: "Print flyers", TimeType: "misc", TimeValue: 45},
		},
	})
	if err != nil {
		t.Fatalf("failed to create project with tasks: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(tasks))
	}

	listed, err := env.tasks.ListByProject(ctx, project.ID)
	if err != nil {
		t.Fatalf("failed to list project tasks: %v", err)
	}
	if len(listed) != 2 {
		t.Errorf("expected 2 tasks in project, got %d", len(listed))
	}
	for i, task := range listed {
		if task.ProjectOrder != i {
			t.Errorf("expected project order %d, got %d", i, task.ProjectOrder)
		}
	}
}

func TestProjectService_UpdatePartial(t *testing.T) {
	env := newTestEnv(t)
	owner := env.makeUser(t, constants.RoleUser)
	project := env.makeProject(t, owner.ID)
	ctx := context.Background()

	status := string(constants.ProjectCompleted)
	updated, err := env.projects.Update(ctx, project.ID, dto.UpdateProjectRequest{Status: &status})
	if err != nil {
		t.Fatalf("failed to update project: %v", err)
	}
	if updated.Status != constants.ProjectCompleted {
		t.Errorf("expected completed status, got %s", updated.Status)
	}
	if updated.Name != project.Name {
		t.Errorf("name changed unexpectedly: %s", updated.Name)
	}
}
