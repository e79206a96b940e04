package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpadapter "github.com/courseflow/courseflow-backend/internal/adapter/http"
	"github.com/courseflow/courseflow-backend/internal/adapter/repository/postgres"
	"github.com/courseflow/courseflow-backend/internal/config"
	"github.com/courseflow/courseflow-backend/internal/usecase/client"
	"github.com/courseflow/courseflow-backend/internal/usecase/finance"
	"github.com/courseflow/courseflow-backend/internal/usecase/ledgerbook"
	"github.com/courseflow/courseflow-backend/internal/usecase/planner"
	"github.com/courseflow/courseflow-backend/internal/usecase/reservation"
	"github.com/courseflow/courseflow-backend/internal/usecase/seeder"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logger := config.NewLogger(cfg)
	slog.SetDefault(logger)

	// 1. Database
	db, err := postgres.NewDB(cfg.DatabaseURL)
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer db.Close()

	if err := db.RunMigrations(); err != nil {
		logger.Error("failed to run migrations", slog.Any("error", err))
		os.Exit(1)
	}

	// 2. Repositories
	entryRepo := postgres.NewLedgerEntryRepository(db)
	goalRepo := postgres.NewGoalRepository(db)
	categoryRepo := postgres.NewCategoryRepository(db)
	clientRepo := postgres.NewClientRepository(db)
	reservationRepo := postgres.NewReservationRepository(db)

	// 3. Services
	clientService := client.NewService(clientRepo)
	reservationService := reservation.NewService(reservationRepo, clientRepo)
	ledgerService := ledgerbook.NewService(entryRepo, categoryRepo, goalRepo)
	financeService := finance.NewService(entryRepo, goalRepo, categoryRepo)
	plannerService := planner.NewService(reservationRepo)

	// Seed the default categories so a fresh install is usable immediately
	categorySeeder := seeder.NewCategorySeeder(categoryRepo)
	if err := categorySeeder.Seed(context.Background()); err != nil {
		logger.Error("failed to seed categories", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("default categories seeded")

	// 4. HTTP server
	api := httpadapter.NewServer(
		logger,
		clientService,
		reservationService,
		ledgerService,
		financeService,
		plannerService,
		cfg.APIToken,
		cfg.RateLimit,
	)

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      api.Router(),
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("http server listening", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	waitForShutdown(server, logger)
}

// waitForShutdown waits for SIGTERM or SIGINT and gracefully shuts down the server
func waitForShutdown(server *http.Server, logger *slog.Logger) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	sig := <-sigChan
	logger.Info("shutting down", slog.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", slog.Any("error", err))
		return
	}
	logger.Info("http server stopped")
}
