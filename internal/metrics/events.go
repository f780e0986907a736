package metrics

import (
	"context"

	"github.com/oakfield/trackside/internal/domain"
	"github.com/oakfield/trackside/internal/event"
	"github.com/oakfield/trackside/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	eventTypes := []event.Type{
		event.RaceSettled,
		event.WagerPlaced,
		event.WagerFlagged,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}

	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	// Always increment event counter
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.RaceSettled:
		payload, err := event.DecodePayload[domain.RaceSettledPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgPayloadDecodeFailed, "type", evt.Type, "error", err)
			return nil
		}
		RacesSettled.Inc()
		PayoutsPaid.Add(float64(payload.TotalPaidOut))
		WagersSettled.WithLabelValues(domain.ResolutionWon.String()).Add(float64(payload.WagersWon))
		WagersSettled.WithLabelValues(domain.ResolutionLost.String()).Add(float64(payload.WagersSettled - payload.WagersWon))

	case event.WagerPlaced:
		payload, err := event.DecodePayload[domain.WagerPlacedPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgPayloadDecodeFailed, "type", evt.Type, "error", err)
			return nil
		}
		WagersPlaced.WithLabelValues(payload.BetType).Inc()
		StakesCollected.Add(float64(payload.Stake))

	case event.WagerFlagged:
		WagersFlagged.Inc()
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
