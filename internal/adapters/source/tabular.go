// Package source loads the three external data sources. Each loader
// runs exactly once at startup; a failure is fatal because the
// visualization cannot proceed with a missing structure (misses and
// malformed cells, by contrast, are recoverable and recorded).
package source

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/okian/atlas/internal/domain/country"
	"github.com/okian/atlas/internal/domain/model"
	"github.com/okian/atlas/pkg/logger"
	"github.com/okian/atlas/pkg/metrics"
)

// The tabular source is semicolon-delimited because its numeric cells
// use a decimal comma.
const scoresSeparator = ';'

// Row outcome labels for source metrics.
const (
	outcomeRetained = "retained"
	outcomeDropped  = "dropped"
)

// Accepted header spellings, lowercased. The score table has shipped
// with several column namings over the years; the loader takes the
// first header that matches any spelling for a field.
var scoresHeaders = map[string][]string{ //nolint:gochecknoglobals // static header table
	"country": {"country name", "country", "country or region"},
	"year":    {"year"},
	"rank":    {"rank", "overall rank", "happiness rank"},
	"ladder":  {"ladder score", "score", "happiness score", "life ladder"},

	model.FactorGDP:        {"explained by: log gdp per capita", "explained by: gdp per capita", "gdp per capita", "log gdp per capita"},
	model.FactorSupport:    {"explained by: social support", "social support"},
	model.FactorHealth:     {"explained by: healthy life expectancy", "healthy life expectancy"},
	model.FactorFreedom:    {"explained by: freedom to make life choices", "freedom to make life choices", "freedom"},
	model.FactorGenerosity: {"explained by: generosity", "generosity"},
	model.FactorCorruption: {"explained by: perceptions of corruption", "perceptions of corruption", "perceived corruption"},
}

// ReadScores parses the delimited score table from r, reconciling each
// row's country name. Rows whose name does not reconcile or whose year
// or rank is malformed are dropped and counted; malformed score cells
// become nil, never zero.
func ReadScores(ctx context.Context, r io.Reader, rec *country.Reconciler) ([]model.Observation, error) {
	cr := csv.NewReader(r)
	cr.Comma = scoresSeparator
	cr.FieldsPerRecord = -1 // ragged rows are handled per-cell

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: scores header: %w", ErrParse, err)
	}
	cols, err := mapScoresHeader(header)
	if err != nil {
		return nil, err
	}

	log := logger.Get().Named("source")
	var observations []model.Observation
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: scores row: %w", ErrParse, err)
		}

		o, ok := parseScoresRow(ctx, record, cols, rec)
		if !ok {
			metrics.RecordSourceRow(string(country.SourceScores), outcomeDropped)
			continue
		}
		metrics.RecordSourceRow(string(country.SourceScores), outcomeRetained)
		observations = append(observations, o)
	}

	log.Info(ctx, "scores loaded",
		logger.Int("rows", len(observations)),
		logger.Int64("name_misses", rec.MissCount(country.SourceScores)),
	)
	return observations, nil
}

// LoadScoresFile opens path and reads it via ReadScores.
func LoadScoresFile(ctx context.Context, path string, rec *country.Reconciler) ([]model.Observation, error) {
	start := time.Now()
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: scores %q: %w", ErrOpen, path, err)
	}
	defer f.Close() //nolint:errcheck // read-only file

	obs, err := ReadScores(ctx, f, rec)
	metrics.RecordSourceLoadDuration(string(country.SourceScores), float64(time.Since(start).Milliseconds()))
	return obs, err
}

// columns holds resolved header indexes; -1 means the column is absent.
type columns struct {
	country int
	year    int
	rank    int
	ladder  int
	factors map[string]int
}

func mapScoresHeader(header []string) (columns, error) {
	cols := columns{country: -1, year: -1, rank: -1, ladder: -1, factors: make(map[string]int)}
	for key := range scoresHeaders {
		if isFactorKey(key) {
			cols.factors[key] = -1
		}
	}

	for i, h := range header {
		name := strings.ToLower(strings.TrimSpace(h))
		for key, spellings := range scoresHeaders {
			for _, s := range spellings {
				if name != s {
					continue
				}
				switch key {
				case "country":
					cols.country = i
				case "year":
					cols.year = i
				case "rank":
					cols.rank = i
				case "ladder":
					cols.ladder = i
				default:
					if cols.factors[key] == -1 {
						cols.factors[key] = i
					}
				}
			}
		}
	}

	// The join and the index cannot work without these three.
	switch {
	case cols.country == -1:
		return cols, fmt.Errorf("%w: no country column", ErrMissingColumn)
	case cols.year == -1:
		return cols, fmt.Errorf("%w: no year column", ErrMissingColumn)
	case cols.rank == -1:
		return cols, fmt.Errorf("%w: no rank column", ErrMissingColumn)
	}
	return cols, nil
}

func isFactorKey(key string) bool {
	switch key {
	case "country", "year", "rank", "ladder":
		return false
	}
	return true
}

func parseScoresRow(ctx context.Context, record []string, cols columns, rec *country.Reconciler) (model.Observation, bool) {
	code, ok := rec.Resolve(ctx, country.SourceScores, cell(record, cols.country))
	if !ok {
		return model.Observation{}, false
	}
	year, err := strconv.Atoi(strings.TrimSpace(cell(record, cols.year)))
	if err != nil {
		return model.Observation{}, false
	}
	rank, err := strconv.Atoi(strings.TrimSpace(cell(record, cols.rank)))
	if err != nil {
		return model.Observation{}, false
	}

	o := model.Observation{
		Code:    code,
		Year:    year,
		Rank:    rank,
		Ladder:  parseDecimalComma(cell(record, cols.ladder)),
		Factors: make(map[string]*float64, len(cols.factors)),
	}
	for key, idx := range cols.factors {
		o.Factors[key] = parseDecimalComma(cell(record, idx))
	}
	return o, true
}

func cell(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return record[idx]
}

// parseDecimalComma normalizes a decimal-comma cell to a decimal point
// and parses it. Unparseable cells become nil, not zero and not an
// error: absence of a metric is part of the data.
func parseDecimalComma(raw string) *float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	s = strings.ReplaceAll(s, ",", ".")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}
