// Package worker runs the single dispatcher that applies view-state
// triggers in order. One dispatcher, not a pool: serial application is
// the invariant that keeps every dependent view consistent, and the
// per-trigger cost is small and bounded by the number of retained
// countries.
package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/okian/atlas/internal/adapters/mq/queue"
	"github.com/okian/atlas/pkg/logger"
	"github.com/okian/atlas/pkg/metrics"
)

// Applier applies one trigger: mutate the state tuple, recompute every
// dependent view-model from scratch, and publish the resulting frame.
type Applier interface {
	Apply(ctx context.Context, t queue.Trigger) error
}

// Queue defines how the dispatcher receives triggers.
type Queue interface {
	Dequeue(ctx context.Context) <-chan *queue.Trigger
}

// Dispatcher consumes triggers and drives the recompute/publish path.
type Dispatcher struct {
	queue   Queue
	applier Applier
	name    string

	// Shutdown control
	shutdown chan struct{}
	done     chan struct{}

	// Logging
	logger logger.Logger
}

// NewDispatcher creates a dispatcher with configuration options.
func NewDispatcher(q Queue, applier Applier, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		queue:    q,
		applier:  applier,
		name:     "dispatcher",
		shutdown: make(chan struct{}),
		done:     make(chan struct{}),
		logger:   logger.Get().Named("dispatcher"),
	}

	// Apply all options
	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Run consumes triggers until ctx is canceled, the queue closes, or
// Shutdown is called. Each trigger fully completes its apply before
// the next is read; the Done channel is always answered.
func (d *Dispatcher) Run(ctx context.Context) {
	defer close(d.done)

	triggers := d.queue.Dequeue(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-d.shutdown:
			return
		case t, ok := <-triggers:
			if !ok {
				return
			}
			d.apply(ctx, t)
		}
	}
}

// Shutdown gracefully stops the dispatcher.
func (d *Dispatcher) Shutdown(ctx context.Context) error {
	close(d.shutdown)

	select {
	case <-d.done:
		return nil
	case <-ctx.Done():
		d.logger.Warn(ctx, "shutdown timed out")
		return fmt.Errorf("shutdown timed out: %w", ctx.Err())
	}
}

func (d *Dispatcher) apply(ctx context.Context, t *queue.Trigger) {
	start := time.Now()
	err := d.applier.Apply(ctx, *t)
	metrics.RecordFrameLatency(float64(time.Since(start).Milliseconds()))

	if err != nil {
		metrics.RecordErrorByComponent("dispatcher", "apply_error")
		d.logger.Error(ctx, "trigger apply failed",
			logger.String("kind", string(t.Kind)),
			logger.Error(err),
		)
	}
	if t.Done != nil {
		t.Done <- err
	}
}
