package app

import "errors"

// Sentinel kinds for service errors.
var (
	// ErrNotReady rejects triggers received before the one-time load
	// has completed. The lifecycle has exactly two states; nothing is
	// served from the uninitialized one.
	ErrNotReady = errors.New("service not ready")

	// ErrBackpressure is returned when the trigger queue is full.
	ErrBackpressure = errors.New("trigger queue full")

	// ErrUnknownCountry is returned for a code outside the retained set.
	ErrUnknownCountry = errors.New("unknown country")

	// ErrBadYear is returned for an out-of-domain year value.
	ErrBadYear = errors.New("invalid year")
)
