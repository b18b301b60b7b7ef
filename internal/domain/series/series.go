// Package series builds the per-country temporal index and answers
// "observation visible at year Y" queries with the asymmetric fallback
// the map and panel views depend on.
package series

import (
	"sort"

	"github.com/okian/atlas/internal/domain/model"
	"github.com/okian/atlas/pkg/metrics"
)

// Fallback step labels for lookup metrics.
const (
	stepPrior       = "prior"
	stepBeforeFirst = "before_first"
	stepEmpty       = "empty"
)

// Index holds every retained country's observations, ascending by
// year. Built once at load time and read-only afterwards.
type Index struct {
	byCode map[model.Code][]model.Observation
	total  int
}

// Build groups observations by country and sorts each group ascending
// by year. The sort is stable: the source occasionally repeats a year
// for a country, and duplicates keep their original relative order so
// lookups can take the first match.
func Build(observations []model.Observation) *Index {
	ix := &Index{
		byCode: make(map[model.Code][]model.Observation),
		total:  len(observations),
	}
	for _, o := range observations {
		ix.byCode[o.Code] = append(ix.byCode[o.Code], o)
	}
	for code := range ix.byCode {
		group := ix.byCode[code]
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].Year < group[j].Year
		})
	}
	return ix
}

// Series returns a country's full observation sequence, ascending by
// year. The returned slice is shared; callers must not mutate it.
func (ix *Index) Series(code model.Code) []model.Observation {
	return ix.byCode[code]
}

// Codes returns every indexed country code, sorted.
func (ix *Index) Codes() []model.Code {
	codes := make([]model.Code, 0, len(ix.byCode))
	for code := range ix.byCode {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	return codes
}

// Countries returns the number of indexed countries.
func (ix *Index) Countries() int {
	return len(ix.byCode)
}

// Observations returns the total number of indexed observations.
func (ix *Index) Observations() int {
	return ix.total
}

// Lookup resolves the observation visible at queryYear for code:
//
//  1. an observation with the exact year, first match on duplicates;
//  2. otherwise the most recent observation before queryYear;
//  3. otherwise (the query year precedes all data for this country)
//     the latest observation in the series, so a too-early query still
//     displays something rather than a blank;
//  4. false only when the country has no observations at all.
func (ix *Index) Lookup(code model.Code, queryYear int) (model.Observation, bool) {
	group := ix.byCode[code]
	if len(group) == 0 {
		metrics.RecordLookupFallback(stepEmpty)
		return model.Observation{}, false
	}

	var prior *model.Observation
	for i := range group {
		if group[i].Year == queryYear {
			return group[i], true
		}
		if group[i].Year < queryYear && (prior == nil || group[i].Year > prior.Year) {
			// First occurrence of each candidate year wins, matching the
			// exact-match rule for duplicate years.
			prior = &group[i]
		}
	}
	if prior != nil {
		metrics.RecordLookupFallback(stepPrior)
		return *prior, true
	}

	// Query year precedes the whole series; fall back to the latest
	// recorded observation (first occurrence of the latest year).
	metrics.RecordLookupFallback(stepBeforeFirst)
	latest := group[len(group)-1].Year
	for i := range group {
		if group[i].Year == latest {
			return group[i], true
		}
	}
	return group[len(group)-1], true
}
