// Package country normalizes free-text country names into codes.
package country

import (
	"github.com/okian/atlas/internal/domain/audit"
	"github.com/okian/atlas/internal/domain/model"
)

// Option applies a configuration option to the Reconciler.
type Option func(*Reconciler)

// WithEntries overlays extra name-to-code entries on the built-in
// dictionary. Useful for tests and for source-specific spellings.
func WithEntries(entries map[string]model.Code) Option {
	return func(r *Reconciler) {
		if len(entries) == 0 {
			return
		}
		merged := make(map[string]model.Code, len(r.byName)+len(entries))
		for k, v := range r.byName {
			merged[k] = v
		}
		for k, v := range entries {
			merged[k] = v
		}
		r.byName = merged
	}
}

// WithMissBound caps the number of distinct miss names stored per source.
func WithMissBound(maxSize int) Option {
	return func(r *Reconciler) {
		for src := range r.misses {
			r.misses[src] = audit.NewInMemoryRecorder(audit.WithMaxSize(maxSize))
		}
	}
}
