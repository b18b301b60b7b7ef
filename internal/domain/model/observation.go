// Package model contains domain models passed between layers.
package model

import geojson "github.com/paulmach/go.geojson"

// Code is the canonical ISO-3166 alpha-3 country identifier. It is the
// join key across every dataset; a row or feature without a Code never
// reaches downstream structures.
type Code string

// The six fixed factor keys contributing to the ladder score.
const (
	FactorGDP        = "gdp_per_capita"
	FactorSupport    = "social_support"
	FactorHealth     = "healthy_life_expectancy"
	FactorFreedom    = "freedom"
	FactorGenerosity = "generosity"
	FactorCorruption = "perceived_corruption"
)

// FactorKeys returns the factor keys in their fixed display order.
func FactorKeys() []string {
	return []string{
		FactorGDP,
		FactorSupport,
		FactorHealth,
		FactorFreedom,
		FactorGenerosity,
		FactorCorruption,
	}
}

// FactorLabels maps factor keys to human-readable labels handed to the
// rendering layer.
var FactorLabels = map[string]string{ //nolint:gochecknoglobals // static lookup table
	FactorGDP:        "GDP per capita",
	FactorSupport:    "Social support",
	FactorHealth:     "Healthy life expectancy",
	FactorFreedom:    "Freedom to make life choices",
	FactorGenerosity: "Generosity",
	FactorCorruption: "Perceptions of corruption",
}

// Observation is one reconciled country-year row from the tabular
// source. Numeric fields that failed to parse are nil, never zero.
type Observation struct {
	Code    Code
	Year    int
	Rank    int
	Ladder  *float64
	Factors map[string]*float64
}

// GeometryEntry pairs a reconciled country polygon with the display
// name carried by the source feature.
type GeometryEntry struct {
	Code        Code
	DisplayName string
	Geometry    *geojson.Geometry
}

// EventLog maps a country to its historical annotations, keyed by year.
type EventLog map[Code]map[int][]string
