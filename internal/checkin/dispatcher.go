// Package checkin runs check-in preparation next to status writes.
//
// A task is queued without waiting and handled by a worker that retries a
// bounded number of times. A prepared form ends up in the Pending registry of
// the user who asked for it. Nothing here ever blocks the caller.
package checkin

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-GroomingAgenda/internal/actorctx"
	"github.com/m04kA/SMC-GroomingAgenda/internal/domain"
)

const (
	DefaultQueueSize  = 100
	DefaultRetryLimit = 20
	DefaultRetryDelay = 30 * time.Millisecond
	MaxRetryDelay     = time.Second
)

// Task asks for a check-in form of one appointment
type Task struct {
	ID            string
	Actor         domain.Actor
	AppointmentID string
	CustomerID    string
	PetID         string
	CustomerName  string
	PetName       string
	QueuedAt      time.Time
}

// Options tune the dispatcher
type Options struct {
	QueueSize  int
	RetryLimit int
	RetryDelay time.Duration
}

// Dispatcher queues and runs check-in tasks
type Dispatcher struct {
	opener  Opener
	pending *Pending
	queue   chan Task
	limit   int
	delay   time.Duration
	logger  Logger
	metrics Metrics
}

// NewDispatcher creates a dispatcher. Call Run to start the worker.
func NewDispatcher(opener Opener, pending *Pending, opts Options, logger Logger, metrics Metrics) *Dispatcher {
	if opts.QueueSize <= 0 {
		opts.QueueSize = DefaultQueueSize
	}
	if opts.RetryLimit <= 0 {
		opts.RetryLimit = DefaultRetryLimit
	}
	if opts.RetryDelay <= 0 {
		opts.RetryDelay = DefaultRetryDelay
	}
	return &Dispatcher{
		opener:  opener,
		pending: pending,
		queue:   make(chan Task, opts.QueueSize),
		limit:   opts.RetryLimit,
		delay:   opts.RetryDelay,
		logger:  logger,
		metrics: metrics,
	}
}

// Dispatch queues a task and returns its id. A full queue drops the task.
func (d *Dispatcher) Dispatch(task Task) (string, bool) {
	if task.ID == "" {
		task.ID = uuid.NewString()
	}
	if task.QueuedAt.IsZero() {
		task.QueuedAt = time.Now()
	}

	select {
	case d.queue <- task:
		return task.ID, true
	default:
		d.logger.Warn("Checkin: queue full, dropping task for appointment %s", task.AppointmentID)
		d.observe("dropped")
		return "", false
	}
}

// Run processes tasks until ctx is done
func (d *Dispatcher) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case task := <-d.queue:
			d.handle(ctx, task)
		}
	}
}

func (d *Dispatcher) handle(ctx context.Context, task Task) {
	taskCtx := actorctx.WithActor(ctx, task.Actor)

	var lastErr error
	for attempt := 1; attempt <= d.limit; attempt++ {
		form, err := d.opener.Open(taskCtx, task)
		if err == nil && form == nil {
			err = ErrEmptyForm
		}
		if err == nil {
			form.ID = task.ID
			form.UserID = task.Actor.UserID
			d.pending.Put(*form)
			d.observe("ok")
			d.logger.Info("Checkin: form for appointment %s ready after %d attempt(s)", task.AppointmentID, attempt)
			return
		}
		lastErr = err
		d.observe("retry")

		if errors.Is(err, context.Canceled) || attempt == d.limit {
			break
		}

		select {
		case <-ctx.Done():
			d.logger.Warn("Checkin: task for appointment %s cancelled: %v", task.AppointmentID, ctx.Err())
			return
		case <-time.After(Backoff(d.delay, attempt)):
		}
	}

	d.observe("exhausted")
	d.logger.Error("Checkin: giving up on appointment %s: %v", task.AppointmentID, lastErr)
}

// Backoff returns base * 2^(attempt-1), capped at MaxRetryDelay
func Backoff(base time.Duration, attempt int) time.Duration {
	delay := base
	for i := 1; i < attempt; i++ {
		delay *= 2
		if delay >= MaxRetryDelay {
			return MaxRetryDelay
		}
	}
	if delay > MaxRetryDelay {
		return MaxRetryDelay
	}
	return delay
}

func (d *Dispatcher) observe(result string) {
	if d.metrics != nil {
		d.metrics.ObserveCheckinAttempt(result)
	}
}
