package app

import (
	"context"
	"fmt"

	geojson "github.com/paulmach/go.geojson"

	"github.com/okian/atlas/internal/domain/aggregate"
	"github.com/okian/atlas/internal/domain/model"
	"github.com/okian/atlas/internal/domain/timeline"
	"github.com/okian/atlas/internal/domain/types"
	"github.com/okian/atlas/pkg/metrics"
)

// Period labels handed to the rendering layer.
const (
	prePeriodLabel  = "2015-2019"
	postPeriodLabel = "2020+"
)

// computeFrame derives the complete view-model for a state tuple. It
// is a pure function of (state, store); callers hold whatever locking
// they need.
func (s *Service) computeFrame(ctx context.Context, state viewState) types.Frame {
	frame := types.Frame{
		Year:  state.year,
		Fills: s.mapFills(ctx, state.year),
	}
	if state.code != "" {
		frame.Country = string(state.code)
		if panel, err := s.panel(ctx, state.code, state.year); err == nil {
			frame.Panel = &panel
		}
	}
	return frame
}

// mapFills computes the per-country fill view-models for year. Every
// retained country gets exactly one fill; a country whose series
// cannot resolve any observation renders neutral.
func (s *Service) mapFills(ctx context.Context, year int) []types.MapFill {
	entries := s.store.Countries(ctx)
	total := s.store.Count(ctx)

	fills := make([]types.MapFill, 0, total)
	seen := make(map[model.Code]bool, total)
	for _, entry := range entries {
		if seen[entry.Code] {
			continue
		}
		seen[entry.Code] = true

		fill := types.MapFill{
			Code: string(entry.Code),
			Name: entry.DisplayName,
		}
		obs, ok := s.store.Lookup(ctx, entry.Code, year)
		if !ok {
			fill.Neutral = true
			fills = append(fills, fill)
			continue
		}
		fill.Year = obs.Year
		fill.Rank = obs.Rank
		fill.Ladder = obs.Ladder
		fill.ColorIndex = colorIndex(obs.Rank, total, s.colorSteps)
		fills = append(fills, fill)
	}
	return fills
}

// colorIndex buckets a rank onto the fixed color scale: rank 1 maps to
// bucket 0 (best), rank total to the last bucket (worst).
func colorIndex(rank, total, steps int) int {
	if steps < 1 {
		steps = 1
	}
	if rank < 1 || total < 1 {
		return steps - 1
	}
	idx := (rank - 1) * steps / total
	if idx >= steps {
		idx = steps - 1
	}
	return idx
}

// panel builds the full detail view-model for code at year: header,
// trend, normalized factor bars, period comparison, and event timeline.
// Recomputed from scratch on every call, never patched.
func (s *Service) panel(ctx context.Context, code model.Code, year int) (types.Panel, error) {
	name, ok := s.store.DisplayName(ctx, code)
	if !ok {
		return types.Panel{}, fmt.Errorf("%w: %s", ErrUnknownCountry, code)
	}
	metrics.RecordPanelRecompute()

	p := types.Panel{
		Code: string(code),
		Name: name,
		Year: year,
	}

	obs := s.store.Series(ctx, code)
	p.Trend = make([]types.TrendPoint, 0, len(obs))
	for _, o := range obs {
		p.Trend = append(p.Trend, types.TrendPoint{Year: o.Year, Ladder: o.Ladder})
	}

	if resolved, ok := s.store.Lookup(ctx, code, year); ok {
		p.HasObservation = true
		p.ObservationYear = resolved.Year
		p.Factors = factorBars(resolved, s.store.Maxima(ctx))
	}

	p.Periods = types.PeriodComparison{
		PreLabel:  prePeriodLabel,
		PostLabel: postPeriodLabel,
	}
	if pre, ok := aggregate.PeriodAverage(obs, s.prePeriod); ok {
		p.Periods.Pre = &pre
	}
	if post, ok := aggregate.PeriodAverage(obs, s.postPeriod); ok {
		p.Periods.Post = &post
	}
	p.Periods.HasData = p.Periods.Pre != nil || p.Periods.Post != nil

	p.Timeline = timeline.Visible(s.store.Events(ctx), code, year)

	return p, nil
}

// factorBars normalizes the six factor values of an observation against
// the dataset-wide maxima. Nil values stay nil; the bar is absent, not
// zero-length.
func factorBars(o model.Observation, maxima aggregate.Maxima) []types.FactorBar {
	bars := make([]types.FactorBar, 0, len(model.FactorKeys()))
	for _, key := range model.FactorKeys() {
		bar := types.FactorBar{
			Key:   key,
			Label: model.FactorLabels[key],
			Value: o.Factors[key],
		}
		if bar.Value != nil {
			max := maxima[key]
			if max == 0 {
				max = 1
			}
			norm := *bar.Value / max
			bar.Normalized = &norm
		}
		bars = append(bars, bar)
	}
	return bars
}

// MapFills answers GET /map: the fill set for an explicit year, or the
// selected year when year is zero.
func (s *Service) MapFills(ctx context.Context, year int) ([]types.MapFill, error) {
	s.mu.RLock()
	started := s.started
	if year == 0 {
		year = s.state.year
	}
	s.mu.RUnlock()
	if !started {
		return nil, ErrNotReady
	}
	return s.mapFills(ctx, year), nil
}

// Panel answers GET /panel/{code}: the detail view-model for an
// explicit year, or the selected year when year is zero.
func (s *Service) Panel(ctx context.Context, code model.Code, year int) (types.Panel, error) {
	s.mu.RLock()
	started := s.started
	if year == 0 {
		year = s.state.year
	}
	s.mu.RUnlock()
	if !started {
		return types.Panel{}, ErrNotReady
	}
	return s.panel(ctx, code, year)
}

// Countries answers GET /countries with the retained set.
func (s *Service) Countries(ctx context.Context) ([]types.CountrySummary, error) {
	s.mu.RLock()
	started := s.started
	s.mu.RUnlock()
	if !started {
		return nil, ErrNotReady
	}

	entries := s.store.Countries(ctx)
	out := make([]types.CountrySummary, 0, len(entries))
	seen := make(map[model.Code]bool, len(entries))
	for _, entry := range entries {
		if seen[entry.Code] {
			continue
		}
		seen[entry.Code] = true

		summary := types.CountrySummary{
			Code: string(entry.Code),
			Name: entry.DisplayName,
		}
		if obs := s.store.Series(ctx, entry.Code); len(obs) > 0 {
			summary.FirstYear = obs[0].Year
			summary.LastYear = obs[len(obs)-1].Year
			summary.Years = len(obs)
		}
		out = append(out, summary)
	}
	return out, nil
}

// Geometry answers GET /geometry: the reconciled feature collection,
// each feature tagged with its code and display name for the rendering
// layer.
func (s *Service) Geometry(ctx context.Context) (*geojson.FeatureCollection, error) {
	s.mu.RLock()
	started := s.started
	s.mu.RUnlock()
	if !started {
		return nil, ErrNotReady
	}

	fc := geojson.NewFeatureCollection()
	for _, entry := range s.store.Countries(ctx) {
		f := geojson.NewFeature(entry.Geometry)
		f.SetProperty("code", string(entry.Code))
		f.SetProperty("name", entry.DisplayName)
		fc.AddFeature(f)
	}
	return fc, nil
}
