// Package aggregate derives dataset-wide factor maxima and per-country
// period averages for the detail panel.
package aggregate

import "github.com/okian/atlas/internal/domain/model"

// defaultFactorMax is the denominator used when a factor has no
// observed value anywhere, so normalization never divides by zero.
const defaultFactorMax = 1

// Maxima maps each factor key to its maximum observed value across the
// whole retained dataset. Bars normalized against these stay on a
// stable scale no matter which year or country is selected.
type Maxima map[string]float64

// FactorMaxima computes the per-factor maximum over every retained
// observation. Nil values are absent, not zero; a factor with no
// non-nil value at all defaults to 1.
func FactorMaxima(observations []model.Observation) Maxima {
	maxima := make(Maxima, len(model.FactorKeys()))
	seen := make(map[string]bool, len(model.FactorKeys()))

	for _, o := range observations {
		for _, key := range model.FactorKeys() {
			v := o.Factors[key]
			if v == nil {
				continue
			}
			if !seen[key] || *v > maxima[key] {
				maxima[key] = *v
				seen[key] = true
			}
		}
	}

	for _, key := range model.FactorKeys() {
		if !seen[key] {
			maxima[key] = defaultFactorMax
		}
	}
	return maxima
}

// Range is an inclusive year range. A zero To means unbounded above.
type Range struct {
	From int
	To   int
}

// Contains reports whether year falls inside the range.
func (r Range) Contains(year int) bool {
	if year < r.From {
		return false
	}
	return r.To == 0 || year <= r.To
}

// PeriodAverage returns the mean ladder score over observations whose
// year falls in r and whose score is non-nil. The second return is
// false when no observation qualifies; callers must render an explicit
// no-data state rather than zero.
func PeriodAverage(obs []model.Observation, r Range) (float64, bool) {
	var sum float64
	var n int
	for _, o := range obs {
		if o.Ladder == nil || !r.Contains(o.Year) {
			continue
		}
		sum += *o.Ladder
		n++
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}
