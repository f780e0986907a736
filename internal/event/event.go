package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/oakfield/trackside/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if e.Metadata == nil {
		return nil
	}
	if m, ok := e.Metadata.(map[string]interface{}); ok {
		return m[key]
	}
	return nil
}

// Common event types
const (
	RaceSettled      Type = Type(domain.EventTypeRaceSettled)
	RaceStateChanged Type = Type(domain.EventTypeRaceStateChanged)
	WagerPlaced      Type = Type(domain.EventTypeWagerPlaced)
	WagerFlagged     Type = Type(domain.EventTypeWagerFlagged)
)

// Type-safe event constructors

// NewRaceSettledEvent creates a race settled event from a settlement summary
func NewRaceSettledEvent(summary domain.SettlementSummary, winningHorses []int64) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    RaceSettled,
		Payload: domain.RaceSettledPayloadV1{
			RaceID:        summary.RaceID,
			WagersSettled: summary.WagersSettled,
			WagersWon:     summary.WagersWon,
			WagersFlagged: summary.WagersFlagged,
			TotalPaidOut:  summary.TotalPaidOut,
			WinningHorses: winningHorses,
			Timestamp:     time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewRaceStateChangedEvent creates a race lifecycle transition event
func NewRaceStateChangedEvent(raceID int64, from, to domain.RaceState) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    RaceStateChanged,
		Payload: domain.RaceStateChangedPayloadV1{
			RaceID:    raceID,
			FromState: string(from),
			ToState:   string(to),
			Timestamp: time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewWagerPlacedEvent creates a wager placed event
func NewWagerPlacedEvent(w domain.Wager) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    WagerPlaced,
		Payload: domain.WagerPlacedPayloadV1{
			WagerID:         w.ID,
			UserID:          w.UserID,
			RaceID:          w.RaceID,
			BetType:         string(w.BetType),
			Stake:           w.Stake,
			PotentialPayout: w.PotentialPayout,
			Timestamp:       time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewWagerFlaggedEvent creates an event for a wager left pending for review
func NewWagerFlaggedEvent(wagerID, raceID int64, reason string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    WagerFlagged,
		Payload: domain.WagerFlaggedPayloadV1{
			WagerID:   wagerID,
			RaceID:    raceID,
			Reason:    reason,
			Timestamp: time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	// Handlers execute synchronously. A worker pool could take over here if
	// subscriber latency ever becomes a problem.
	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
