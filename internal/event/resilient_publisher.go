package event

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/GardenIdle_Go/internal/logger"
)

type retryItem struct {
	event    Event
	attempts int
	lastErr  error
}

// ResilientPublisher wraps a Bus so that failed publishes are retried in the
// background with exponential backoff and finally dead-lettered.
type ResilientPublisher struct {
	inner      Bus
	maxRetries int
	baseDelay  time.Duration
	deadLetter *DeadLetterWriter

	queue     chan retryItem
	done      chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
}

// NewResilientPublisher starts a publisher with its retry worker
func NewResilientPublisher(inner Bus, maxRetries int, baseDelay time.Duration, deadLetterPath string) (*ResilientPublisher, error) {
	dlw, err := NewDeadLetterWriter(deadLetterPath)
	if err != nil {
		return nil, err
	}

	p := &ResilientPublisher{
		inner:      inner,
		maxRetries: maxRetries,
		baseDelay:  baseDelay,
		deadLetter: dlw,
		queue:      make(chan retryItem, RetryQueueBufferSize),
		done:       make(chan struct{}),
	}
	p.wg.Add(1)
	go p.retryWorker()
	return p, nil
}

// Publish delivers the event once synchronously. A failure is queued for
// retry and never reported to the caller.
func (p *ResilientPublisher) Publish(ctx context.Context, event Event) error {
	p.PublishWithRetry(ctx, event)
	return nil
}

// PublishWithRetry delivers the event, queuing it for retry on failure
func (p *ResilientPublisher) PublishWithRetry(ctx context.Context, event Event) {
	err := p.inner.Publish(ctx, event)
	if err == nil {
		return
	}

	log := logger.FromContext(ctx)
	log.Warn(LogMsgEventPublishFailed, "event_type", event.Type, "error", err)

	item := retryItem{event: event, attempts: 1, lastErr: err}
	select {
	case p.queue <- item:
	case <-p.done:
		p.writeDeadLetter(item, LogMsgEventDroppedShutdown)
	default:
		p.writeDeadLetter(item, LogMsgRetryQueueFull)
	}
}

// Subscribe delegates to the inner bus
func (p *ResilientPublisher) Subscribe(eventType Type, handler Handler) {
	p.inner.Subscribe(eventType, handler)
}

// Shutdown stops the retry worker and dead-letters anything still queued
func (p *ResilientPublisher) Shutdown(ctx context.Context) error {
	p.closeOnce.Do(func() { close(p.done) })

	stopped := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-ctx.Done():
		logger.Warn(LogMsgShutdownTimeout)
		return ctx.Err()
	}

	for {
		select {
		case item := <-p.queue:
			p.writeDeadLetter(item, LogMsgEventDroppedShutdown)
		default:
			return p.deadLetter.Close()
		}
	}
}

func (p *ResilientPublisher) retryWorker() {
	defer p.wg.Done()
	for {
		select {
		case <-p.done:
			return
		case item := <-p.queue:
			p.retry(item)
		}
	}
}

func (p *ResilientPublisher) retry(item retryItem) {
	for item.attempts <= p.maxRetries {
		select {
		case <-p.done:
			p.writeDeadLetter(item, LogMsgEventDroppedShutdown)
			return
		case <-time.After(CalculateRetryDelay(p.baseDelay, item.attempts)):
		}

		err := p.inner.Publish(context.Background(), item.event)
		if err == nil {
			logger.Info(LogMsgEventRetrySucceeded, "event_type", item.event.Type, "attempt", item.attempts)
			return
		}
		item.attempts++
		item.lastErr = err
		logger.Warn(LogMsgEventRetryFailed, "event_type", item.event.Type, "attempt", item.attempts, "error", err)
	}

	p.writeDeadLetter(item, LogMsgEventRetryExhausted)
}

func (p *ResilientPublisher) writeDeadLetter(item retryItem, reason string) {
	logger.Warn(reason, "event_type", item.event.Type, "attempts", item.attempts)
	if err := p.deadLetter.Write(item.event, item.attempts, item.lastErr); err != nil {
		logger.Error(LogMsgDeadLetterWriteFailed, "event_type", item.event.Type, "error", err)
	}
}
