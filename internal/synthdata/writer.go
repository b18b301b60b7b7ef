package synthdata

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
	geojson "github.com/paulmach/go.geojson"

	"github.com/okian/atlas/pkg/logger"
)

// Factor column headers, in the generator's factor slice order.
var factorHeaders = []string{
	"Explained by: Log GDP per capita",
	"Explained by: Social support",
	"Explained by: Healthy life expectancy",
	"Explained by: Freedom to make life choices",
	"Explained by: Generosity",
	"Explained by: Perceptions of corruption",
}

// WriteScores emits the semicolon-separated score table with decimal
// commas, the way the upstream spreadsheet exports it.
func WriteScores(ctx context.Context, ds *Dataset, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create scores file: %w", err)
	}
	defer f.Close() //nolint:errcheck // flushed below

	w := csv.NewWriter(f)
	w.Comma = ';'

	header := append([]string{"Country name", "Year", "Rank", "Ladder score"}, factorHeaders...)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write scores header: %w", err)
	}

	for _, o := range ds.Observations {
		row := []string{
			o.country.scoresName,
			strconv.Itoa(o.year),
			strconv.Itoa(o.rank),
			decimalComma(&o.ladder),
		}
		for _, v := range o.factors {
			row = append(row, decimalComma(v))
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write scores row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush scores: %w", err)
	}

	logger.Get().Info(ctx, "scores written", logger.String("path", path), logger.Int("rows", len(ds.Observations)))
	return nil
}

// decimalComma formats v with a comma as the decimal separator; nil
// becomes an empty cell.
func decimalComma(v *float64) string {
	if v == nil {
		return ""
	}
	return strings.ReplaceAll(strconv.FormatFloat(*v, 'f', 3, 64), ".", ",")
}

// WriteGeometry emits a GeoJSON FeatureCollection with one small box
// polygon per roster country, named with the geometry-side spelling.
func WriteGeometry(ctx context.Context, path string) error {
	fc := geojson.NewFeatureCollection()
	for _, c := range roster {
		poly := geojson.NewPolygonFeature([][][]float64{{
			{c.lon - 2, c.lat - 2},
			{c.lon + 2, c.lat - 2},
			{c.lon + 2, c.lat + 2},
			{c.lon - 2, c.lat + 2},
			{c.lon - 2, c.lat - 2},
		}})
		poly.SetProperty("name", c.geometryName)
		fc.AddFeature(poly)
	}

	data, err := json.MarshalIndent(fc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal geometry: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write geometry file: %w", err)
	}

	logger.Get().Info(ctx, "geometry written", logger.String("path", path), logger.Int("features", len(roster)))
	return nil
}

// events is a small curated annotation log keyed by code and year.
var events = map[string]map[string][]string{
	"USA": {
		"2016": {"Presidential election year"},
		"2020": {"Pandemic lockdowns begin", "Federal stimulus enacted"},
	},
	"GBR": {
		"2016": {"EU membership referendum"},
		"2020": {"Exit from the EU takes effect"},
	},
	"TUR": {
		"2018": {"Currency crisis"},
		"2023": {"Major earthquakes in the southeast"},
	},
	"JPN": {
		"2019": {"Imperial era changes to Reiwa"},
		"2021": {"Postponed Olympics held in Tokyo"},
	},
	"BRA": {
		"2016": {"Summer Olympics in Rio"},
	},
	"ZAF": {
		"2021": {"Civil unrest in KwaZulu-Natal"},
	},
}

// WriteEvents emits the events annotation log as JSON.
func WriteEvents(ctx context.Context, path string) error {
	data, err := json.MarshalIndent(events, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal events: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write events file: %w", err)
	}

	logger.Get().Info(ctx, "events written", logger.String("path", path), logger.Int("countries", len(events)))
	return nil
}
