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

	"github.com/oakfield/trackside/internal/bootstrap"
	"github.com/oakfield/trackside/internal/concurrency"
	"github.com/oakfield/trackside/internal/config"
	"github.com/oakfield/trackside/internal/database"
	"github.com/oakfield/trackside/internal/eventlog"
	"github.com/oakfield/trackside/internal/handler"
	"github.com/oakfield/trackside/internal/ledger"
	"github.com/oakfield/trackside/internal/notify"
	"github.com/oakfield/trackside/internal/race"
	"github.com/oakfield/trackside/internal/scheduler"
	"github.com/oakfield/trackside/internal/server"
	"github.com/oakfield/trackside/internal/settlement"
	"github.com/oakfield/trackside/internal/stats"
	"github.com/oakfield/trackside/internal/wager"
	"github.com/oakfield/trackside/internal/worker"
)

const shutdownTimeout = 15 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("Fatal error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// Configuration
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Logging: file plus stdout via the bootstrap logger, request-scoped
	// fields via the structured logger package.
	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		return err
	}
	defer logFile.Close()
	initLogger(cfg)

	// Database
	dbPool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		return err
	}
	defer dbPool.Close()

	// Request validation
	handler.InitValidator()

	// Event system
	eventBus, resilientPublisher, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		return err
	}

	// Repositories
	repos := bootstrap.InitializeRepositories(dbPool)

	// Services
	raceService := race.NewService(repos.Race, resilientPublisher)
	wagerService := wager.NewService(repos.Wager, repos.Race, resilientPublisher, cfg.MinStake, cfg.MaxStake)
	settlementService := settlement.NewService(repos.Settlement, resilientPublisher, concurrency.NewLockManager())
	statsService := stats.NewService(repos.Stats, repos.Wager)
	ledgerService := ledger.NewService(repos.Ledger)
	eventLogService := eventlog.NewService(repos.EventLog)

	// Optional Discord announcer
	var announcer *notify.Announcer
	if cfg.DiscordToken != "" && cfg.DiscordChannelID != "" {
		announcer, err = notify.NewAnnouncer(cfg.DiscordToken, cfg.DiscordChannelID)
		if err != nil {
			return err
		}
	} else {
		slog.Info("Discord announcer disabled, token or channel not configured")
	}

	// Event handlers
	if err := bootstrap.RegisterEventHandlers(bootstrap.EventHandlerDependencies{
		EventBus:        eventBus,
		EventLogService: eventLogService,
		Announcer:       announcer,
		Config:          cfg,
	}); err != nil {
		return err
	}

	// Background jobs: prune old persisted events on a daily cadence
	workerPool := worker.NewPool(2, 16)
	workerPool.Start()
	sched := scheduler.New(workerPool)
	sched.Schedule(24*time.Hour, worker.NewEventLogCleanupJob(eventLogService, cfg.EventRetentionDays))

	// HTTP server
	srv := server.NewServer(
		cfg.Port,
		cfg.APIKey,
		cfg.TrustedProxies,
		dbPool,
		raceService,
		wagerService,
		settlementService,
		statsService,
		ledgerService,
	)

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Wait for shutdown signal or server failure
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return err
	case s := <-sig:
		slog.Info("Shutdown signal received", "signal", s.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(ctx, bootstrap.ShutdownComponents{
		Server:             srv,
		Scheduler:          sched,
		WorkerPool:         workerPool,
		Announcer:          announcer,
		ResilientPublisher: resilientPublisher,
	})

	return nil
}
