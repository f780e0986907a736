package bootstrap

import (
	"context"
	"log/slog"

	"github.com/oakfield/trackside/internal/event"
	"github.com/oakfield/trackside/internal/notify"
	"github.com/oakfield/trackside/internal/scheduler"
	"github.com/oakfield/trackside/internal/server"
	"github.com/oakfield/trackside/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server             *server.Server
	Scheduler          *scheduler.Scheduler
	WorkerPool         *worker.Pool
	Announcer          *notify.Announcer
	ResilientPublisher *event.ResilientPublisher
}

// GracefulShutdown performs graceful shutdown of all application components.
// It shuts down in order:
// 1. HTTP server (stop accepting new requests)
// 2. Scheduler and worker pool (stop periodic jobs, drain the queue)
// 3. Discord announcer (close the gateway session)
// 4. Event publisher (flush pending events to ensure consistency)
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	// Shutdown server first (stop accepting new requests)
	if err := components.Server.Stop(ctx); err != nil {
		slog.Error(LogMsgServerForcedShutdown, "error", err)
	}

	// Stop scheduling before stopping the pool so no new jobs are enqueued
	if components.Scheduler != nil {
		components.Scheduler.Stop()
	}
	if components.WorkerPool != nil {
		components.WorkerPool.Stop()
	}

	if components.Announcer != nil {
		if err := components.Announcer.Close(); err != nil {
			slog.Error(LogMsgAnnouncerShutdownFailed, "error", err)
		}
	}

	// Shutdown resilient publisher last to flush pending events
	slog.Info(LogMsgShuttingDownEventPublisher)
	if err := components.ResilientPublisher.Shutdown(ctx); err != nil {
		slog.Error(LogMsgResilientPublisherFailed, "error", err)
	}

	slog.Info(LogMsgServerStopped)
}
