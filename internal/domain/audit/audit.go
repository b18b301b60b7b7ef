// Package audit tracks the distinct raw country names that failed
// reconciliation, per source, for diagnostic logging. A miss is never
// an error; this recorder only makes the drop visible.
package audit

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"
)

// Recorder records distinct unresolved names.
type Recorder interface {
	// SeenAndRecord atomically checks if name was recorded and records it
	// if not. Returns true if name was already present.
	SeenAndRecord(ctx context.Context, name string) bool

	// Names returns the distinct recorded names, sorted.
	Names() []string

	Size() int64
}

// inMemoryRecorder implements Recorder with a bounded map. When the
// bound is reached further names are counted but not stored, so a
// pathological source cannot grow memory without limit.
type inMemoryRecorder struct {
	mu      sync.RWMutex
	seen    map[string]struct{}
	order   []string
	maxSize int
	size    atomic.Int64
}

// NewInMemoryRecorder creates a recorder with configuration options.
func NewInMemoryRecorder(opts ...Option) Recorder {
	r := &inMemoryRecorder{
		maxSize: 10000, // default bound
	}

	// Apply all options
	for _, opt := range opts {
		opt(r)
	}

	r.seen = make(map[string]struct{})

	return r
}

// SeenAndRecord atomically checks if name was recorded and records it if not.
func (r *inMemoryRecorder) SeenAndRecord(_ context.Context, name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.seen[name]; exists {
		return true
	}

	r.size.Add(1)
	if r.maxSize > 0 && len(r.seen) >= r.maxSize {
		// Bound reached: count the miss but drop the name itself.
		return false
	}

	r.seen[name] = struct{}{}
	r.order = append(r.order, name)
	return false
}

// Names returns the distinct recorded names, sorted for stable logging.
func (r *inMemoryRecorder) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, len(r.order))
	copy(out, r.order)
	sort.Strings(out)
	return out
}

// Size returns the number of distinct misses seen, including any past
// the storage bound.
func (r *inMemoryRecorder) Size() int64 {
	return r.size.Load()
}
