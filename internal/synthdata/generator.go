// Package synthdata generates a small synthetic dataset in the shapes
// the service ingests: a semicolon-separated scores table with decimal
// commas, a GeoJSON world file, and an events annotation log. Country
// names are deliberately spelled the way each upstream spells them, so
// the generated files exercise the same reconciliation paths as real
// downloads.
package synthdata

import (
	"context"
	"crypto/rand"
	"math/big"
	"sort"

	"github.com/okian/atlas/pkg/logger"
)

// Constants for random number generation.
const (
	randomFloatDivisor = 1000000
)

// Value ranges for the generated observations.
const (
	ladderMin       = 2.0
	ladderRange     = 6.0
	gdpMax          = 2.2
	supportMax      = 1.6
	healthMax       = 1.1
	freedomMax      = 0.8
	generosityMax   = 0.6
	corruptionMax   = 0.5
	missingFactorPM = 0.08
	missingYearPM   = 0.12
)

// country describes one synthetic country with the two upstream
// spellings of its name.
type country struct {
	code         string
	scoresName   string
	geometryName string
	lon, lat     float64
}

// roster is the fixed set of generated countries. Spellings differ
// between the columns on purpose.
var roster = []country{
	{"USA", "United States", "United States of America", -98, 39},
	{"GBR", "United Kingdom", "United Kingdom", -2, 54},
	{"DEU", "Germany", "Germany", 10, 51},
	{"FRA", "France", "France", 2, 47},
	{"FIN", "Finland", "Finland", 26, 64},
	{"DNK", "Denmark", "Denmark", 10, 56},
	{"CZE", "Czech Republic", "Czechia", 15, 50},
	{"TUR", "Turkiye", "Turkey", 35, 39},
	{"KOR", "South Korea", "Republic of Korea", 128, 36},
	{"COD", "Congo (Kinshasa)", "Dem. Rep. Congo", 24, -2},
	{"CIV", "Ivory Coast", "Côte d'Ivoire", -6, 8},
	{"BIH", "Bosnia and Herzegovina", "Bosnia and Herz.", 18, 44},
	{"JPN", "Japan", "Japan", 138, 36},
	{"BRA", "Brazil", "Brazil", -52, -10},
	{"IND", "India", "India", 79, 22},
	{"ZAF", "South Africa", "South Africa", 24, -29},
	{"AUS", "Australia", "Australia", 134, -25},
	{"CAN", "Canada", "Canada", -96, 56},
	{"MEX", "Mexico", "Mexico", -102, 24},
	{"NOR", "Norway", "Norway", 9, 61},
}

// observation is one generated scores row before formatting.
type observation struct {
	country country
	year    int
	rank    int
	ladder  float64
	factors []*float64
}

// Dataset holds everything one generation run produced.
type Dataset struct {
	Observations []observation
	YearFrom     int
	YearTo       int
}

// getRandomFloat returns a random float64 between 0.0 and 1.0 using crypto/rand.
func getRandomFloat() float64 {
	n, _ := rand.Int(rand.Reader, big.NewInt(randomFloatDivisor))
	return float64(n.Int64()) / float64(randomFloatDivisor)
}

// Generate produces observations for every roster country across the
// year range. A small fraction of country-years is skipped and a small
// fraction of factor cells is left empty, mirroring the holes real
// tables have.
func Generate(ctx context.Context, yearFrom, yearTo int) *Dataset {
	logger.Get().Info(ctx, "generating synthetic observations",
		logger.Int("countries", len(roster)),
		logger.Int("year_from", yearFrom),
		logger.Int("year_to", yearTo))

	ds := &Dataset{YearFrom: yearFrom, YearTo: yearTo}
	for year := yearFrom; year <= yearTo; year++ {
		var rows []observation
		for _, c := range roster {
			if getRandomFloat() < missingYearPM {
				continue
			}
			rows = append(rows, observation{
				country: c,
				year:    year,
				ladder:  ladderMin + getRandomFloat()*ladderRange,
				factors: randomFactors(),
			})
		}
		// Rank within the year by ladder, best first.
		sort.Slice(rows, func(i, j int) bool { return rows[i].ladder > rows[j].ladder })
		for i := range rows {
			rows[i].rank = i + 1
		}
		ds.Observations = append(ds.Observations, rows...)
	}
	return ds
}

func randomFactors() []*float64 {
	maxima := []float64{gdpMax, supportMax, healthMax, freedomMax, generosityMax, corruptionMax}
	factors := make([]*float64, len(maxima))
	for i, m := range maxima {
		if getRandomFloat() < missingFactorPM {
			continue
		}
		v := getRandomFloat() * m
		factors[i] = &v
	}
	return factors
}
