package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/oakfield/trackside/internal/config"
	"github.com/oakfield/trackside/internal/event"
	"github.com/oakfield/trackside/internal/eventlog"
	"github.com/oakfield/trackside/internal/metrics"
	"github.com/oakfield/trackside/internal/notify"
)

// EventHandlerDependencies holds the dependencies needed for event handler registration.
type EventHandlerDependencies struct {
	EventBus        event.Bus
	EventLogService eventlog.Service
	Announcer       *notify.Announcer
	Config          *config.Config
}

// RegisterEventHandlers sets up all event handlers and subscribers.
// This includes:
// - Metrics collector (for event-based metrics)
// - Event logger (persists events to database)
// - Discord announcer (optional, posts settlement results to a channel)
func RegisterEventHandlers(deps EventHandlerDependencies) error {
	// Register Metrics Collector
	metricsCollector := metrics.NewEventMetricsCollector()
	if err := metricsCollector.Register(deps.EventBus); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	slog.Info(LogMsgMetricsCollectorRegistered)

	// Subscribe Event Logger
	if err := deps.EventLogService.Subscribe(deps.EventBus); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedSubscribeEventLogger, err)
	}
	slog.Info(LogMsgEventLoggerInitialized)

	// Subscribe Discord announcer when configured
	if deps.Announcer != nil {
		deps.Announcer.Subscribe(deps.EventBus)
		slog.Info(LogMsgAnnouncerSubscribed)
	}

	return nil
}
