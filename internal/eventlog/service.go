package eventlog

import (
	"context"

	"github.com/oakfield/trackside/internal/event"
	"github.com/oakfield/trackside/internal/logger"
)

// Service handles event logging business logic
type Service interface {
	// Subscribe registers the event logger to listen to all events
	Subscribe(bus event.Bus) error

	// CleanupOldEvents removes events older than retention period
	CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error)
}

type service struct {
	repo Repository
}

// NewService creates a new event logging service
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Subscribe registers event handlers for all event types
func (s *service) Subscribe(bus event.Bus) error {
	eventTypes := []event.Type{
		event.RaceSettled,
		event.RaceStateChanged,
		event.WagerPlaced,
		event.WagerFlagged,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, s.handleEvent)
	}

	return nil
}

// handleEvent processes and logs events to the database. Typed payloads are
// round-tripped through JSON into a map so the log schema stays uniform.
func (s *service) handleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	payload, err := event.DecodePayload[map[string]interface{}](evt.Payload)
	if err != nil {
		log.Debug(LogMsgPayloadNotSerializable, LogFieldType, evt.Type, LogFieldError, err)
		return nil
	}

	// Extract user_id if present; JSON numbers decode as float64
	var userID *int64
	if uid, ok := payload[PayloadKeyUserID].(float64); ok {
		id := int64(uid)
		userID = &id
	}

	var metadata map[string]interface{}
	if evt.Metadata != nil {
		if m, ok := evt.Metadata.(map[string]interface{}); ok {
			metadata = m
		}
	}

	if err := s.repo.LogEvent(ctx, string(evt.Type), userID, payload, metadata); err != nil {
		log.Error(LogMsgFailedToLogEvent, LogFieldError, err, LogFieldType, evt.Type)
		return err
	}

	log.Debug(LogMsgEventLogged, LogFieldType, evt.Type, LogFieldUserID, userID)
	return nil
}

// CleanupOldEvents removes events older than the retention period
func (s *service) CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error) {
	return s.repo.CleanupOldEvents(ctx, retentionDays)
}
