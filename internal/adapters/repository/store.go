// Package repository holds the immutable in-memory dataset built once
// from the three sources. The join filter lives here: a country is
// retained only when the score table and the polygon collection both
// reconciled to its code.
package repository

import (
	"context"

	"github.com/okian/atlas/internal/domain/aggregate"
	"github.com/okian/atlas/internal/domain/model"
)

// Store provides read access to the retained dataset. There are no
// writes after construction; every method is safe for concurrent use.
type Store interface {
	// Lookup resolves the observation visible at year for code, using
	// the temporal fallback policy. False means no observation exists
	// for the country at all.
	Lookup(ctx context.Context, code model.Code, year int) (model.Observation, bool)

	// Series returns a country's full observation sequence, ascending
	// by year, for the trend view.
	Series(ctx context.Context, code model.Code) []model.Observation

	// Countries returns every retained country's geometry entry,
	// sorted by code.
	Countries(ctx context.Context) []model.GeometryEntry

	// Has reports whether code survived the join filter.
	Has(ctx context.Context, code model.Code) bool

	// DisplayName returns the on-screen name carried by the polygon
	// source for code.
	DisplayName(ctx context.Context, code model.Code) (string, bool)

	// Maxima returns the dataset-wide per-factor maxima.
	Maxima(ctx context.Context) aggregate.Maxima

	// Events returns the historical-event log.
	Events(ctx context.Context) model.EventLog

	// Count returns the number of retained countries.
	Count(ctx context.Context) int
}
