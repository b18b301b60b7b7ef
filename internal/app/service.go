// Package app provides the core coordinator that owns the view state
// and implements the dependencies required by the HTTP API.
//
// The state tuple {selectedYear, selectedCountryCode} is mutated only
// through the two triggers, and every mutation synchronously recomputes
// a complete frame: the map fill set plus, when a country is selected,
// its full detail panel. Views are total replacements; nothing is
// patched incrementally, so no view can hold stale data.
package app

import (
	"context"
	"fmt"
	"sync"
	"time"

	triggerqueue "github.com/okian/atlas/internal/adapters/mq/queue"
	dispatch "github.com/okian/atlas/internal/adapters/mq/worker"
	repository "github.com/okian/atlas/internal/adapters/repository"
	"github.com/okian/atlas/internal/adapters/source"
	"github.com/okian/atlas/internal/domain/aggregate"
	"github.com/okian/atlas/internal/domain/country"
	"github.com/okian/atlas/internal/domain/model"
	"github.com/okian/atlas/internal/domain/types"
	"github.com/okian/atlas/pkg/logger"
	"github.com/okian/atlas/pkg/metrics"
)

// Default service configuration constants.
const (
	defaultYear       = 2024
	defaultColorSteps = 9
	defaultQueueSize  = 1024
	triggerTimeout    = 5 * time.Second
)

// viewState is the single mutable tuple driving every dependent view.
// Only the dispatcher goroutine writes it.
type viewState struct {
	year int
	code model.Code // empty until the first country selection
}

// Service implements the API dependencies for the atlas.
type Service struct {
	mu sync.RWMutex

	// Core components
	reconciler *country.Reconciler
	store      repository.Store
	queue      triggerqueue.Queue
	dispatcher *dispatch.Dispatcher

	// Configuration
	scoresPath   string
	geometryPath string
	eventsPath   string
	defaultYear  int
	colorSteps   int
	queueSize    int
	prePeriod    aggregate.Range
	postPeriod   aggregate.Range

	// Preloaded dataset for tests; bypasses the file loaders.
	preloaded *preloadedData

	// State
	started bool
	state   viewState
	frame   types.Frame

	// Observers keyed by subscription id; notified synchronously on
	// every frame publication.
	observers  map[int]func(types.Frame)
	observerID int

	// Logging
	logger logger.Logger
}

type preloadedData struct {
	observations []model.Observation
	geometries   []model.GeometryEntry
	events       model.EventLog
}

// New constructs a Service in the uninitialized state.
func New(opts ...Option) *Service {
	s := &Service{
		defaultYear: defaultYear,
		colorSteps:  defaultColorSteps,
		queueSize:   defaultQueueSize,
		prePeriod:   aggregate.Range{From: 2015, To: 2019},
		postPeriod:  aggregate.Range{From: 2020},
		observers:   make(map[int]func(types.Frame)),
	}

	// Apply all options
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start performs the one-time load of the three sources, builds the
// retained dataset, and transitions the service to ready. Any load
// failure is terminal: no partial initialization, no trigger serving.
// Start is idempotent; the transition happens at most once.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get().Named("app")
	}
	if s.reconciler == nil {
		s.reconciler = country.NewReconciler()
	}

	s.logger.Info(ctx, "loading sources...")
	loadStart := time.Now()
	data, err := s.load(ctx)
	if err != nil {
		return fmt.Errorf("source load failed: %w", err)
	}
	s.store = repository.NewAtlasStore(ctx, data.observations, data.geometries, data.events)

	s.logMisses(ctx)

	s.queue = triggerqueue.NewInMemoryQueue(triggerqueue.WithCapacity(s.queueSize))
	s.dispatcher = dispatch.NewDispatcher(s.queue, s)
	go s.dispatcher.Run(ctx)

	// Initial frame: default year, no selection.
	s.state = viewState{year: s.defaultYear}
	s.frame = s.computeFrame(ctx, s.state)

	s.started = true
	s.logger.Info(ctx, "atlas service started",
		logger.Int("countries", s.store.Count(ctx)),
		logger.Int("default_year", s.defaultYear),
		logger.Duration("load_time", time.Since(loadStart)),
	)
	return nil
}

// Stop gracefully shuts down the service. The dispatcher is drained
// outside the state lock; it may be mid-apply and need the lock to
// finish.
func (s *Service) Stop() {
	s.mu.Lock()
	if !s.started {
		s.mu.Unlock()
		return
	}
	s.started = false
	q, d := s.queue, s.dispatcher
	s.mu.Unlock()

	ctx := context.Background()
	s.logger.Info(ctx, "stopping atlas service...")

	if q != nil {
		_ = q.Close()
	}
	if d != nil {
		shutdownCtx, cancel := context.WithTimeout(ctx, triggerTimeout)
		defer cancel()
		_ = d.Shutdown(shutdownCtx)
	}

	s.logger.Info(ctx, "atlas service stopped")
}

func (s *Service) load(ctx context.Context) (*preloadedData, error) {
	if s.preloaded != nil {
		return s.preloaded, nil
	}

	observations, err := source.LoadScoresFile(ctx, s.scoresPath, s.reconciler)
	if err != nil {
		return nil, err
	}
	geometries, err := source.LoadGeometryFile(ctx, s.geometryPath, s.reconciler)
	if err != nil {
		return nil, err
	}
	events, err := source.LoadEventsFile(ctx, s.eventsPath)
	if err != nil {
		return nil, err
	}
	return &preloadedData{observations: observations, geometries: geometries, events: events}, nil
}

func (s *Service) logMisses(ctx context.Context) {
	for _, src := range []country.Source{country.SourceScores, country.SourceGeometry} {
		if misses := s.reconciler.Misses(src); len(misses) > 0 {
			s.logger.Warn(ctx, "unreconciled country names",
				logger.String("source", string(src)),
				logger.Int("count", len(misses)),
				logger.Any("names", misses),
			)
		}
	}
}

// SetYear applies the year-change trigger. The selected country is left
// untouched. The call returns after the resulting frame has been
// published, so the returned frame reflects this mutation.
func (s *Service) SetYear(ctx context.Context, year int) (types.Frame, error) {
	if year <= 0 {
		metrics.RecordTrigger(string(triggerqueue.KindYear), "rejected")
		return types.Frame{}, ErrBadYear
	}
	return s.submit(ctx, triggerqueue.NewTrigger(triggerqueue.KindYear, year, ""))
}

// SelectCountry applies the country-selection trigger. The selected
// year is left untouched. An empty code clears the selection.
func (s *Service) SelectCountry(ctx context.Context, code model.Code) (types.Frame, error) {
	s.mu.RLock()
	started := s.started
	s.mu.RUnlock()
	if !started {
		metrics.RecordTrigger(string(triggerqueue.KindCountry), "rejected")
		return types.Frame{}, ErrNotReady
	}
	if code != "" && !s.store.Has(ctx, code) {
		metrics.RecordTrigger(string(triggerqueue.KindCountry), "rejected")
		return types.Frame{}, fmt.Errorf("%w: %s", ErrUnknownCountry, code)
	}
	return s.submit(ctx, triggerqueue.NewTrigger(triggerqueue.KindCountry, 0, code))
}

func (s *Service) submit(ctx context.Context, t *triggerqueue.Trigger) (types.Frame, error) {
	s.mu.RLock()
	started := s.started
	s.mu.RUnlock()
	if !started {
		metrics.RecordTrigger(string(t.Kind), "rejected")
		return types.Frame{}, ErrNotReady
	}

	if !s.queue.Enqueue(ctx, t) {
		metrics.RecordTrigger(string(t.Kind), "rejected")
		return types.Frame{}, ErrBackpressure
	}

	select {
	case err := <-t.Done:
		if err != nil {
			metrics.RecordTrigger(string(t.Kind), "failed")
			return types.Frame{}, err
		}
	case <-ctx.Done():
		return types.Frame{}, fmt.Errorf("trigger wait: %w", ctx.Err())
	}

	metrics.RecordTrigger(string(t.Kind), "applied")
	return s.Frame(ctx), nil
}

// Apply is invoked by the dispatcher, one trigger at a time. It mutates
// the state tuple and replaces the published frame wholesale.
func (s *Service) Apply(ctx context.Context, t triggerqueue.Trigger) error {
	s.mu.Lock()
	switch t.Kind {
	case triggerqueue.KindYear:
		s.state.year = t.Year
	case triggerqueue.KindCountry:
		s.state.code = t.Code
	default:
		s.mu.Unlock()
		return fmt.Errorf("unknown trigger kind %q", t.Kind)
	}
	state := s.state
	frame := s.computeFrame(ctx, state)
	s.frame = frame

	observers := make([]func(types.Frame), 0, len(s.observers))
	for _, fn := range s.observers {
		observers = append(observers, fn)
	}
	s.mu.Unlock()

	// Synchronous fan-out: the trigger is not complete until every
	// observer has seen the replacement frame.
	for _, fn := range observers {
		fn(frame)
	}
	metrics.RecordFramePublished()
	return nil
}

// Frame returns the current published frame.
func (s *Service) Frame(_ context.Context) types.Frame {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.frame
}

// State returns the current tuple: selected year and country code
// (empty when nothing is selected).
func (s *Service) State(_ context.Context) (int, string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.year, string(s.state.code)
}

// Ready reports whether the one-time load has completed.
func (s *Service) Ready(_ context.Context) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.started
}

// Subscribe registers an observer notified on every frame publication.
// The returned function cancels the subscription.
func (s *Service) Subscribe(fn func(types.Frame)) func() {
	s.mu.Lock()
	s.observerID++
	id := s.observerID
	s.observers[id] = fn
	count := len(s.observers)
	s.mu.Unlock()

	metrics.UpdateObserverCount(count)
	return func() {
		s.mu.Lock()
		delete(s.observers, id)
		count := len(s.observers)
		s.mu.Unlock()
		metrics.UpdateObserverCount(count)
	}
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx := context.Background()
	stats := map[string]interface{}{
		"started":      s.started,
		"default_year": s.defaultYear,
	}

	if s.started {
		stats["selected_year"] = s.state.year
		stats["selected_country"] = string(s.state.code)
		stats["countries"] = s.store.Count(ctx)
		stats["queue_length"] = s.queue.Len(ctx)
		stats["observers"] = len(s.observers)
		stats["scores_name_misses"] = s.reconciler.MissCount(country.SourceScores)
		stats["geometry_name_misses"] = s.reconciler.MissCount(country.SourceGeometry)
	}

	return stats
}
