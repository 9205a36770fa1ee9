package cmd

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/redis/rueidis"
	"github.com/spf13/cobra"

	"chronos.team/chronos/internal/cache"
	config "chronos.team/chronos/internal/configs"
	httpapi "chronos.team/chronos/internal/http"
	repository "chronos.team/chronos/internal/repositories"
	"chronos.team/chronos/internal/services"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Starts the Chronos HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil {
			log.Println(".env file not found, using environment variables")
		}

		cfg := config.Load()
		logger := config.NewLogger()
		defer logger.Sync()

		database := config.NewDatabaseClient(cfg.DatabaseDSN)

		var redisClient rueidis.Client
		if cfg.CacheEnabled {
			redisClient = config.NewRedisClient(cfg.RedisAddr)
			defer redisClient.Close()
		}
		hoursCache := cache.NewHoursCache(redisClient, time.Duration(cfg.CacheTTLSeconds)*time.Second)

		taskRepo := repository.NewTaskRepository(database)
		projectRepo := repository.NewProjectRepository(database)
		userRepo := repository.NewUserRepository(database)
		categoryRepo := repository.NewCategoryRepository(database)
		assignmentRepo := repository.NewAssignmentRepository(database)
		allocationRepo := repository.NewAllocationRepository(database)
		announcementRepo := repository.NewAnnouncementRepository(database)
		featureRequestRepo := repository.NewFeatureRequestRepository(database)

		taskService := services.NewTaskService(taskRepo, projectRepo, userRepo, categoryRepo, hoursCache, logger)
		projectService := services.NewProjectService(projectRepo, userRepo, categoryRepo, hoursCache, logger)
		assignmentService := services.NewAssignmentService(assignmentRepo, taskRepo, userRepo, logger)
		allocationService := services.NewAllocationService(allocationRepo, taskRepo, projectRepo, userRepo, hoursCache, cfg.HoursPerDay, logger)
		announcementService := services.NewAnnouncementService(announcementRepo, userRepo, logger)
		featureRequestService := services.NewFeatureRequestService(featureRequestRepo, userRepo, logger)
		userService := services.NewUserService(userRepo, logger)
		categoryService := services.NewCategoryService(categoryRepo, logger)

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		e := echo.New()
		handler := httpapi.NewHandler(
			taskService,
			projectService,
			assignmentService,
			allocationService,
			announcementService,
			featureRequestService,
			userService,
			categoryService,
		)
		httpapi.Register(e, handler, cfg.RateLimit)

		go func() {
			log.Printf("HTTP server listening on %s", cfg.AppURL)
			if err := e.Start(cfg.AppURL); err != nil {
				log.Printf("server stopped: %v", err)
			}
		}()

		<-ctx.Done()

		echoCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second)
		defer cancel()
		_ = e.Shutdown(echoCtx)

		log.Println("HTTP server shut down gracefully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
