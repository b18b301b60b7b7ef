package repository

import (
	"context"
	"sort"

	"github.com/okian/atlas/internal/domain/aggregate"
	"github.com/okian/atlas/internal/domain/model"
	"github.com/okian/atlas/internal/domain/series"
	"github.com/okian/atlas/pkg/logger"
	"github.com/okian/atlas/pkg/metrics"
)

// AtlasStore implements Store over structures built exactly once at
// load time. The join filter is applied in NewAtlasStore and the
// result is immutable thereafter, so reads need no locking.
type AtlasStore struct {
	index     *series.Index
	maxima    aggregate.Maxima
	events    model.EventLog
	countries []model.GeometryEntry
	names     map[model.Code]string
}

// NewAtlasStore builds the retained dataset from the three loads. An
// observation or geometry entry survives only if its code appears in
// both sources; everything else is dropped here, once.
func NewAtlasStore(ctx context.Context, observations []model.Observation, geometries []model.GeometryEntry, events model.EventLog) *AtlasStore {
	scored := make(map[model.Code]bool, len(observations))
	for _, o := range observations {
		scored[o.Code] = true
	}
	drawn := make(map[model.Code]bool, len(geometries))
	for _, g := range geometries {
		drawn[g.Code] = true
	}

	retained := make([]model.Observation, 0, len(observations))
	for _, o := range observations {
		if drawn[o.Code] {
			retained = append(retained, o)
		}
	}

	s := &AtlasStore{
		index:  series.Build(retained),
		maxima: aggregate.FactorMaxima(retained),
		events: events,
		names:  make(map[model.Code]string),
	}
	for _, g := range geometries {
		if !scored[g.Code] {
			continue
		}
		s.countries = append(s.countries, g)
		if _, ok := s.names[g.Code]; !ok {
			s.names[g.Code] = g.DisplayName
		}
	}
	sort.Slice(s.countries, func(i, j int) bool {
		return s.countries[i].Code < s.countries[j].Code
	})

	metrics.UpdateRetainedCountries(len(s.names))
	metrics.UpdateRetainedObservations(len(retained))
	logger.Get().Named("repository").Info(ctx, "dataset built",
		logger.Int("countries", len(s.names)),
		logger.Int("observations", len(retained)),
		logger.Int("dropped_observations", len(observations)-len(retained)),
	)

	return s
}

// Lookup resolves the observation visible at year for code.
func (s *AtlasStore) Lookup(_ context.Context, code model.Code, year int) (model.Observation, bool) {
	return s.index.Lookup(code, year)
}

// Series returns a country's full observation sequence.
func (s *AtlasStore) Series(_ context.Context, code model.Code) []model.Observation {
	return s.index.Series(code)
}

// Countries returns every retained geometry entry, sorted by code.
func (s *AtlasStore) Countries(_ context.Context) []model.GeometryEntry {
	return s.countries
}

// Has reports whether code survived the join filter.
func (s *AtlasStore) Has(_ context.Context, code model.Code) bool {
	_, ok := s.names[code]
	return ok
}

// DisplayName returns the polygon source's on-screen name for code.
func (s *AtlasStore) DisplayName(_ context.Context, code model.Code) (string, bool) {
	name, ok := s.names[code]
	return name, ok
}

// Maxima returns the dataset-wide per-factor maxima.
func (s *AtlasStore) Maxima(_ context.Context) aggregate.Maxima {
	return s.maxima
}

// Events returns the historical-event log.
func (s *AtlasStore) Events(_ context.Context) model.EventLog {
	return s.events
}

// Count returns the number of retained countries.
func (s *AtlasStore) Count(_ context.Context) int {
	return len(s.names)
}

// Observations returns the number of retained observations.
func (s *AtlasStore) Observations(_ context.Context) int {
	return s.index.Observations()
}
