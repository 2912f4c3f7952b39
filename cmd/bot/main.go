package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Freeeeeet/docspot/internal/app"
	"github.com/Freeeeeet/docspot/internal/config"
	"github.com/Freeeeeet/docspot/internal/controller"
	"github.com/Freeeeeet/docspot/internal/controller/common"
	"github.com/Freeeeeet/docspot/internal/controller/state"
	"github.com/Freeeeeet/docspot/internal/repository"
	"github.com/Freeeeeet/docspot/internal/service"
	"github.com/go-telegram/bot"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment, cfg.LogLevel)
	defer logger.Sync()

	logger.Info("Starting docspot bot",
		zap.String("environment", cfg.Environment),
		zap.Bool("database", cfg.UseDatabase()))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	catalog, closeCatalog, err := newDoctorCatalog(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("Failed to init doctor catalog", zap.Error(err))
	}
	defer closeCatalog()

	// Ядро
	registry := repository.NewAppointmentRegistry()
	sessions := service.NewSessionService()
	doctors := service.NewDoctorService(catalog)
	booking := service.NewBookingService(registry, sessions, doctors, logger)
	projector := service.NewProjector(registry)

	b, err := bot.New(cfg.TelegramToken)
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	botController := controller.NewBotController(b, &common.Deps{
		Booking:   booking,
		Projector: projector,
		Doctors:   doctors,
		Sessions:  sessions,
		State:     state.NewManager(),
		Logger:    logger,
	})
	if err := botController.RegisterHandlers(ctx); err != nil {
		logger.Warn("Bot commands menu not set", zap.Error(err))
	}

	scheduler := app.NewScheduler(projector, sessions, cfg.StatsInterval, logger)
	scheduler.Start(ctx)
	defer scheduler.Stop()

	if err := botController.Start(ctx); err != nil {
		logger.Error("Bot stopped with error", zap.Error(err))
	}

	logger.Info("Bot stopped")
}

// newDoctorCatalog выбирает справочник врачей: Postgres при DB_DSN, иначе встроенный список
func newDoctorCatalog(ctx context.Context, cfg *config.Config, logger *zap.Logger) (service.DoctorCatalog, func(), error) {
	if !cfg.UseDatabase() {
		logger.Info("DB_DSN not set, using built-in doctor catalog")
		return repository.NewStaticDoctorCatalog(repository.DefaultDoctors), func() {}, nil
	}

	pool, err := pgxpool.New(ctx, cfg.DBDSN)
	if err != nil {
		return nil, nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, err
	}

	migrator, err := app.NewMigrator(pool, cfg.MigrationsPath, logger)
	if err != nil {
		pool.Close()
		return nil, nil, err
	}
	defer migrator.Close()

	if err := migrator.Run(ctx); err != nil {
		pool.Close()
		return nil, nil, err
	}

	return repository.NewDoctorRepository(pool), pool.Close, nil
}
