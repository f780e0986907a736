package worker

import (
	"context"

	"github.com/oakfield/trackside/internal/eventlog"
	"github.com/oakfield/trackside/internal/logger"
)

// EventLogCleanupJob prunes persisted events past the retention window.
// Scheduled to run periodically via the scheduler and worker pool.
type EventLogCleanupJob struct {
	service       eventlog.Service
	retentionDays int
}

// NewEventLogCleanupJob creates a cleanup job with the given retention in days
func NewEventLogCleanupJob(service eventlog.Service, retentionDays int) *EventLogCleanupJob {
	return &EventLogCleanupJob{
		service:       service,
		retentionDays: retentionDays,
	}
}

// Process removes events older than the retention period
func (j *EventLogCleanupJob) Process(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgEventLogCleanupStarting, "retention_days", j.retentionDays)

	deleted, err := j.service.CleanupOldEvents(ctx, j.retentionDays)
	if err != nil {
		return err
	}

	log.Info(LogMsgEventLogCleanupCompleted, "deleted", deleted)
	return nil
}
