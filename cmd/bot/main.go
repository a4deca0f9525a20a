package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fechas/internal/config"
	"fechas/internal/handler"
	"fechas/internal/repository/postgres"
	"fechas/internal/service"

	"github.com/golang-migrate/migrate/v4"
	postgresdb "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	tele "gopkg.in/telebot.v3"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting Fechas Bot")

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	logger.Info("Configuration loaded successfully",
		zap.String("timezone", cfg.Location.String()),
		zap.Float64("reminder_rate", cfg.ReminderRate),
	)

	// Connect to database with retries
	db, err := connectDatabase(cfg.DSN(), logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connection established")

	if err := runMigrations(db, logger); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Initialize repositories
	userRepo := postgres.NewUserRepo(db)
	eventRepo := postgres.NewEventRepo(db)
	reminderLogRepo := postgres.NewReminderLogRepo(db)

	bot, err := tele.NewBot(tele.Settings{
		Token:  cfg.BotToken,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	})
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	logger.Info("Telegram bot initialized")

	// Initialize services
	clock := service.NewClock(cfg.Location)
	authService := service.NewAuthService(userRepo, cfg.BotPassword)
	eventService := service.NewEventService(eventRepo, clock)
	reminderService := service.NewReminderService(
		eventRepo,
		reminderLogRepo,
		handler.NewNotifier(bot),
		rate.NewLimiter(rate.Limit(cfg.ReminderRate), 1),
		clock,
		logger,
	)

	h := handler.NewHandler(bot, authService, eventService, logger)
	h.RegisterHandlers()

	logger.Info("Handlers registered")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go runReminderJob(ctx, reminderService, logger)

	go func() {
		logger.Info("Bot started successfully")
		bot.Start()
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan

	logger.Info("Shutdown signal received, stopping bot...")

	bot.Stop()
	cancel()

	logger.Info("Bot stopped gracefully")
}

// connectDatabase connects to PostgreSQL with retries
func connectDatabase(dsn string, logger *zap.Logger) (*sql.DB, error) {
	var db *sql.DB
	var err error

	maxRetries := 30
	retryDelay := 2 * time.Second

	for i := 0; i < maxRetries; i++ {
		db, err = sql.Open("postgres", dsn)
		if err != nil {
			logger.Warn("Failed to open database connection",
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			time.Sleep(retryDelay)
			continue
		}

		if err = db.Ping(); err != nil {
			logger.Warn("Failed to ping database",
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			db.Close()
			time.Sleep(retryDelay)
			continue
		}

		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(2)
		db.SetConnMaxLifetime(5 * time.Minute)

		return db, nil
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", maxRetries, err)
}

// runMigrations applies pending migrations from ./migrations
func runMigrations(db *sql.DB, logger *zap.Logger) error {
	driver, err := postgresdb.WithInstance(db, &postgresdb.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		return fmt.Errorf("failed to create migration instance: %w", err)
	}

	err = m.Up()
	switch {
	case err == migrate.ErrNoChange:
		logger.Info("No new migrations to apply")
	case err != nil:
		return fmt.Errorf("failed to run migrations: %w", err)
	default:
		logger.Info("Migrations applied successfully")
	}

	return nil
}

// reminderCheckInterval is how often the job looks for a new local day.
// SendReminders claims each day once, so extra checks are no-ops.
const reminderCheckInterval = time.Hour

// runReminderJob sends anniversary reminders at startup and on the first check of every local day
func runReminderJob(ctx context.Context, reminderService *service.ReminderService, logger *zap.Logger) {
	if _, err := reminderService.SendReminders(ctx); err != nil {
		logger.Error("Failed to send initial reminders", zap.Error(err))
	}

	ticker := time.NewTicker(reminderCheckInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Reminder job stopped")
			return
		case <-ticker.C:
			if _, err := reminderService.SendReminders(ctx); err != nil {
				logger.Error("Failed to send scheduled reminders", zap.Error(err))
			}
		}
	}
}
