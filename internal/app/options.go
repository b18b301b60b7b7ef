package app

import (
	"github.com/okian/atlas/internal/domain/aggregate"
	"github.com/okian/atlas/internal/domain/country"
	"github.com/okian/atlas/internal/domain/model"
	"github.com/okian/atlas/pkg/logger"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithSourcePaths sets the three source file locations.
func WithSourcePaths(scores, geometry, events string) Option {
	return func(s *Service) {
		s.scoresPath = scores
		s.geometryPath = geometry
		s.eventsPath = events
	}
}

// WithDefaultYear sets the year selected at startup.
func WithDefaultYear(year int) Option {
	return func(s *Service) {
		if year > 0 {
			s.defaultYear = year
		}
	}
}

// WithColorSteps sets the number of buckets on the rank color scale.
func WithColorSteps(steps int) Option {
	return func(s *Service) {
		if steps > 0 {
			s.colorSteps = steps
		}
	}
}

// WithQueueSize bounds the trigger queue.
func WithQueueSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.queueSize = size
		}
	}
}

// WithPeriods sets the pre/post comparison ranges.
func WithPeriods(pre, post aggregate.Range) Option {
	return func(s *Service) {
		s.prePeriod = pre
		s.postPeriod = post
	}
}

// WithReconciler sets a custom name reconciler.
func WithReconciler(r *country.Reconciler) Option {
	return func(s *Service) {
		if r != nil {
			s.reconciler = r
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithDataset preloads the three sources directly, bypassing the file
// loaders. Intended for tests.
func WithDataset(observations []model.Observation, geometries []model.GeometryEntry, events model.EventLog) Option {
	return func(s *Service) {
		s.preloaded = &preloadedData{
			observations: observations,
			geometries:   geometries,
			events:       events,
		}
	}
}
