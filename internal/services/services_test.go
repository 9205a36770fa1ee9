package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"chronos.team/chronos/internal/cache"
	"chronos.team/chronos/internal/constants"
	dto "chronos.team/chronos/internal/data_models"
	model "chronos.team/chronos/internal/models"
	repository "chronos.team/chronos/internal/repositories"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	err = db.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Project{},
		&model.Task{},
		&model.TaskAssignment{},
		&model.TaskAllocation{},
		&model.Announcement{},
		&model.AnnouncementRead{},
		&model.FeatureRequest{},
	)
	if err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)

	return db
}

type testEnv struct {
	db *gorm.DB

	taskRepo       *repository.TaskRepository
	userRepo       *repository.UserRepository
	assignmentRepo *repository.AssignmentRepository
	allocationRepo *repository.AllocationRepository

	tasks         *TaskService
	projects      *ProjectService
	assignments   *AssignmentService
	allocations   *AllocationService
	announcements *AnnouncementService
	requests      *FeatureRequestService
	users         *UserService
	categories    *CategoryService
}

func newTestEnv(t *testing.T) *testEnv {
	db := setupTestDB(t)
	logger := zap.NewNop()
	hoursCache := cache.NewHoursCache(nil, time.Minute)

	taskRepo := repository.NewTaskRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)
	allocationRepo := repository.NewAllocationRepository(db)
	announcementRepo := repository.NewAnnouncementRepository(db)
	featureRequestRepo := repository.NewFeatureRequestRepository(db)

	return &testEnv{
		db:             db,
		taskRepo:       taskRepo,
		userRepo:       userRepo,
		assignmentRepo: assignmentRepo,
		allocationRepo: allocationRepo,

		tasks:         NewTaskService(taskRepo, projectRepo, userRepo, categoryRepo, hoursCache, logger),
		projects:      NewProjectService(projectRepo, userRepo, categoryRepo, hoursCache, logger),
		assignments:   NewAssignmentService(assignmentRepo, taskRepo, userRepo, logger),
		allocations:   NewAllocationService(allocationRepo, taskRepo, projectRepo, userRepo, hoursCache, 8, logger),
		announcements: NewAnnouncementService(announcementRepo, userRepo, logger),
		requests:      NewFeatureRequestService(featureRequestRepo, userRepo, logger),
		users:         NewUserService(userRepo, logger),
		categories:    NewCategoryService(categoryRepo, logger),
	}
}

func (e *testEnv) makeUser(t *testing.T, role constants.Role) *model.User {
	t.Helper()

	user := &model.User{
		ID:           uuid.NewString(),
		Email:        uuid.NewString() + "@chronos.local",
		Name:         "Test User",
		Role:         role,
		Active:       true,
		WorkDayStart: "09:00",
		WorkDayEnd:   "17:00",
		DailyHours:   8,
		HoursPerDay:  8,
		CreatedAt:    time.Now().UTC(),
	}
	if err := e.userRepo.Create(context.Background(), user); err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	return user
}

func (e *testEnv) makeProject(t *testing.T, ownerID string) *model.Project {
	t.Helper()

	project, err := e.projects.Create(context.Background(), dto.CreateProjectRequest{
		Name:    "Test Project",
		OwnerID: ownerID,
	})
	if err != nil {
		t.Fatalf("failed to create project: %v", err)
	}
	return project
}
