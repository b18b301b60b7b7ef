// Package audit tracks distinct unresolved names for diagnostics.
package audit

// Option applies a configuration option to the inMemoryRecorder.
type Option func(*inMemoryRecorder)

// WithMaxSize sets the maximum number of distinct names to keep.
// If maxSize <= 0 the recorder is unbounded.
func WithMaxSize(maxSize int) Option {
	return func(r *inMemoryRecorder) {
		r.maxSize = maxSize
	}
}
