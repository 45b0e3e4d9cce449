package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-telegram/bot"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/luciafdez/clases_bot/internal/app"
	"github.com/luciafdez/clases_bot/internal/config"
	"github.com/luciafdez/clases_bot/internal/controller"
	"github.com/luciafdez/clases_bot/internal/repository"
	"github.com/luciafdez/clases_bot/internal/service"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment)
	defer logger.Sync()

	location, err := cfg.Location()
	if err != nil {
		logger.Fatal("Failed to load timezone", zap.Error(err))
	}
	// Date keys are derived in the reference zone process-wide.
	time.Local = location

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.DBDSN)
	if err != nil {
		logger.Fatal("Failed to create connection pool", zap.Error(err))
	}
	defer pool.Close()

	migrator, err := app.NewMigrator(pool, cfg.MigrationsPath, logger)
	if err != nil {
		logger.Fatal("Failed to create migrator", zap.Error(err))
	}
	if err := migrator.Run(ctx); err != nil {
		logger.Fatal("Failed to apply migrations", zap.Error(err))
	}
	migrator.Close()

	lessonRepo := repository.NewLessonRepository(pool)
	studentRepo := repository.NewStudentRepository(pool)
	profileRepo := repository.NewProfileRepository(pool)

	lessonService := service.NewLessonService(lessonRepo, logger)
	studentService := service.NewStudentService(studentRepo, logger)
	profileService := service.NewProfileService(profileRepo, logger)
	statsService := service.NewStatsService(lessonRepo, profileRepo, logger)

	botInstance, err := bot.New(cfg.TelegramToken)
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	botController := controller.NewBotController(
		botInstance,
		lessonService,
		studentService,
		statsService,
		profileService,
		location,
		logger,
	)

	if err := botController.RegisterHandlers(ctx); err != nil {
		logger.Fatal("Failed to register handlers", zap.Error(err))
	}

	reminder := app.NewReminder(lessonService, profileService, botController, logger)
	reminder.Start(ctx)
	defer reminder.Stop()

	logger.Info("Starting clases bot",
		zap.String("environment", cfg.Environment),
		zap.String("timezone", cfg.Timezone),
	)

	botController.Start(ctx)
}
