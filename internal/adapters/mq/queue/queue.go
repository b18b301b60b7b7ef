// Package queue defines the contract for submitting and consuming
// view-state triggers.
//
// Triggers are the only inputs the core accepts after startup. They
// flow through a bounded in-memory queue consumed by a single
// dispatcher, which is what serializes state mutations: a trigger's
// full recompute finishes before the next trigger is applied.
package queue

import (
	"context"
	"sync"

	"github.com/okian/atlas/internal/domain/model"
	"github.com/okian/atlas/pkg/metrics"
)

// Default queue configuration constants.
const (
	defaultCapacity = 1024
)

// Kind discriminates the two trigger kinds.
type Kind string

// The two external triggers.
const (
	KindYear    Kind = "year"
	KindCountry Kind = "country"
)

// Trigger is one requested state mutation. Done receives the dispatch
// result after the trigger's frame has been published, so callers can
// block for the synchronous protocol the views rely on.
type Trigger struct {
	Kind Kind
	Year int
	Code model.Code
	Done chan error
}

// NewTrigger builds a trigger with its completion channel.
func NewTrigger(kind Kind, year int, code model.Code) *Trigger {
	return &Trigger{Kind: kind, Year: year, Code: code, Done: make(chan error, 1)}
}

// Queue provides non-blocking enqueue and channel-based dequeue.
type Queue interface {
	// Enqueue adds a trigger. Returns false if the queue is closed or
	// full and the trigger was not accepted.
	Enqueue(ctx context.Context, t *Trigger) bool

	// Dequeue returns a channel yielding triggers in submission order.
	// The channel closes when the queue is closed.
	Dequeue(ctx context.Context) <-chan *Trigger

	// Len returns the current number of queued triggers.
	Len(ctx context.Context) int

	// Close shuts the queue; no further enqueues are accepted.
	Close() error

	// IsClosed reports whether the queue has been closed.
	IsClosed() bool
}

// InMemoryQueue implements Queue with a buffered channel.
type InMemoryQueue struct {
	triggers chan *Trigger
	capacity int
	mu       sync.RWMutex
	closed   bool
}

// NewInMemoryQueue creates a queue with configuration options.
func NewInMemoryQueue(opts ...Option) *InMemoryQueue {
	q := &InMemoryQueue{
		capacity: defaultCapacity,
	}

	// Apply all options
	for _, opt := range opts {
		opt(q)
	}

	q.triggers = make(chan *Trigger, q.capacity)

	metrics.UpdateQueueCapacity(q.capacity)
	metrics.UpdateQueueSize(0)

	return q
}

// Enqueue adds a trigger to the queue.
func (q *InMemoryQueue) Enqueue(ctx context.Context, t *Trigger) bool {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.closed {
		metrics.RecordQueueEnqueueError()
		metrics.RecordErrorByComponent("queue", "closed")
		return false
	}

	select {
	case q.triggers <- t:
		metrics.UpdateQueueSize(len(q.triggers))
		return true
	case <-ctx.Done():
		metrics.RecordQueueEnqueueError()
		metrics.RecordErrorByComponent("queue", "context_cancelled")
		return false
	default:
		metrics.RecordQueueEnqueueError()
		metrics.RecordErrorByComponent("queue", "queue_full")
		return false
	}
}

// Dequeue returns the trigger channel.
func (q *InMemoryQueue) Dequeue(_ context.Context) <-chan *Trigger {
	return q.triggers
}

// Len returns the current number of queued triggers.
func (q *InMemoryQueue) Len(_ context.Context) int {
	size := len(q.triggers)
	metrics.UpdateQueueSize(size)
	return size
}

// Close shuts the queue down.
func (q *InMemoryQueue) Close() error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return nil
	}
	close(q.triggers)
	q.closed = true
	return nil
}

// IsClosed reports whether the queue has been closed.
func (q *InMemoryQueue) IsClosed() bool {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return q.closed
}
