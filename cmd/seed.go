package cmd

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	config "chronos.team/chronos/internal/configs"
	"chronos.team/chronos/internal/constants"
	model "chronos.team/chronos/internal/models"
	repository "chronos.team/chronos/internal/repositories"
	"chronos.team/chronos/internal/services"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed goal categories and the initial admin user",
	Long:  "Idempotently creates the fixed goal categories and, if no admin exists yet, a bootstrap admin account",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil {
			log.Println(".env file not found, using environment variables")
		}

		cfg := config.Load()
		logger := config.NewLogger()
		defer logger.Sync()

		database := config.NewDatabaseClient(cfg.DatabaseDSN)
		categoryRepo := repository.NewCategoryRepository(database)
		userRepo := repository.NewUserRepository(database)

		ctx := context.Background()

		categoryService := services.NewCategoryService(categoryRepo, logger)
		if err := categoryService.EnsureDefaults(ctx); err != nil {
			return err
		}
		log.Printf("seeded %d goal categories", len(constants.CategoryNames))

		admins, err := userRepo.CountAdmins(ctx)
		if err != nil {
			return err
		}
		if admins > 0 {
			log.Println("admin user already present, skipping bootstrap")
			return nil
		}

		admin := &model.User{
			ID:           uuid.NewString(),
			Email:        "admin@chronos.local",
			Name:         "Administrator",
			Role:         constants.RoleAdmin,
			Active:       true,
			WorkDayStart: "09:00",
			WorkDayEnd:   "17:00",
			DailyHours:   constants.DefaultDailyHours,
			HoursPerDay:  constants.DefaultDailyHours,
			CreatedAt:    time.Now().UTC(),
		}
		if err := userRepo.Create(ctx, admin); err != nil {
			return err
		}

		log.Printf("bootstrap admin created: %s", admin.Email)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
