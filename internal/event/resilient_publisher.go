package event

import (
	"context"
	"sync"
	"time"

	"github.com/oakfield/trackside/internal/logger"
)

// retryEntry tracks an event making its way through the retry queue
type retryEntry struct {
	event     Event
	attempt   int
	lastError error
}

// ResilientPublisher wraps an event Bus with asynchronous retry and a
// dead-letter file for events that exhaust their retries. Publishing never
// blocks the caller on downstream failures.
type ResilientPublisher struct {
	bus        Bus
	retryQueue chan retryEntry
	maxRetries int
	retryDelay time.Duration
	deadLetter *DeadLetterWriter
	shutdown   chan struct{}
	closeOnce  sync.Once
	wg         sync.WaitGroup
}

// NewResilientPublisher creates a publisher with a background retry worker.
// Call Shutdown to drain pending retries and close the dead-letter file.
func NewResilientPublisher(bus Bus, maxRetries int, retryDelay time.Duration, deadLetterPath string) (*ResilientPublisher, error) {
	dl, err := NewDeadLetterWriter(deadLetterPath)
	if err != nil {
		return nil, err
	}

	p := &ResilientPublisher{
		bus:        bus,
		retryQueue: make(chan retryEntry, RetryQueueBufferSize),
		maxRetries: maxRetries,
		retryDelay: retryDelay,
		deadLetter: dl,
		shutdown:   make(chan struct{}),
	}

	p.wg.Add(1)
	go p.retryWorker()

	return p, nil
}

// PublishWithRetry publishes an event and, on failure, queues it for
// background retry with exponential backoff. The caller is never blocked on
// retries; events that exhaust retries or overflow the queue go to the
// dead-letter file.
func (p *ResilientPublisher) PublishWithRetry(ctx context.Context, event Event) {
	err := p.bus.Publish(ctx, event)
	if err == nil {
		return
	}

	logger.Warn(LogMsgEventPublishFailed,
		"event_type", event.Type,
		"error", err)

	entry := retryEntry{event: event, attempt: 1, lastError: err}
	select {
	case p.retryQueue <- entry:
	default:
		logger.Warn(LogMsgRetryQueueFull, "event_type", event.Type)
		if dlErr := p.deadLetter.Write(event, entry.attempt, err); dlErr != nil {
			logger.Error(LogMsgDeadLetterWriteFailed, "error", dlErr)
		}
	}
}

func (p *ResilientPublisher) retryWorker() {
	defer p.wg.Done()

	for {
		select {
		case entry := <-p.retryQueue:
			p.processRetry(entry)
		case <-p.shutdown:
			p.drainQueue()
			return
		}
	}
}

// processRetry attempts the event up to maxRetries more times with
// exponential backoff, then dead-letters it.
func (p *ResilientPublisher) processRetry(entry retryEntry) {
	ctx := context.Background()

	for attempt := 1; attempt <= p.maxRetries; attempt++ {
		select {
		case <-time.After(CalculateRetryDelay(p.retryDelay, attempt)):
		case <-p.shutdown:
			// One final immediate attempt before giving up
			if err := p.bus.Publish(ctx, entry.event); err != nil {
				entry.lastError = err
				p.writeDeadLetter(entry, attempt)
			}
			return
		}

		err := p.bus.Publish(ctx, entry.event)
		if err == nil {
			logger.Info(LogMsgEventRetrySucceeded,
				"event_type", entry.event.Type,
				"attempt", attempt)
			return
		}

		entry.lastError = err
		logger.Warn(LogMsgEventRetryFailed,
			"event_type", entry.event.Type,
			"attempt", attempt,
			"error", err)
	}

	logger.Warn(LogMsgEventRetryExhausted, "event_type", entry.event.Type)
	p.writeDeadLetter(entry, p.maxRetries+1)
}

// drainQueue gives each pending entry one last attempt during shutdown
func (p *ResilientPublisher) drainQueue() {
	ctx := context.Background()
	drained := 0

	for {
		select {
		case entry := <-p.retryQueue:
			drained++
			if err := p.bus.Publish(ctx, entry.event); err != nil {
				entry.lastError = err
				p.writeDeadLetter(entry, entry.attempt+1)
			}
		default:
			if drained > 0 {
				logger.Info(LogMsgQueueDrainedShutdown, "count", drained)
			}
			return
		}
	}
}

func (p *ResilientPublisher) writeDeadLetter(entry retryEntry, attempts int) {
	if err := p.deadLetter.Write(entry.event, attempts, entry.lastError); err != nil {
		logger.Error(LogMsgDeadLetterWriteFailed, "error", err)
	}
}

// Shutdown stops the retry worker, drains the queue and closes the
// dead-letter file. It respects the context deadline.
func (p *ResilientPublisher) Shutdown(ctx context.Context) error {
	p.closeOnce.Do(func() { close(p.shutdown) })

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return p.deadLetter.Close()
	case <-ctx.Done():
		logger.Warn(LogMsgShutdownTimeout)
		return ctx.Err()
	}
}
