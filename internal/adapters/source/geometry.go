package source

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	geojson "github.com/paulmach/go.geojson"

	"github.com/okian/atlas/internal/domain/country"
	"github.com/okian/atlas/internal/domain/model"
	"github.com/okian/atlas/pkg/logger"
	"github.com/okian/atlas/pkg/metrics"
)

// Feature property keys that may carry the display name, in preference
// order. World polygon collections are not consistent about this.
var geometryNameProps = []string{"name", "NAME", "ADMIN", "admin", "name_long", "NAME_LONG"} //nolint:gochecknoglobals // static property list

// ReadGeometry parses a GeoJSON feature collection from r and tags each
// feature with its reconciled country code. Features whose display name
// does not reconcile are dropped as recorded misses; features without a
// polygon geometry are dropped outright.
func ReadGeometry(ctx context.Context, r io.Reader, rec *country.Reconciler) ([]model.GeometryEntry, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: geometry: %w", ErrParse, err)
	}
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("%w: geometry: %w", ErrParse, err)
	}

	log := logger.Get().Named("source")
	entries := make([]model.GeometryEntry, 0, len(fc.Features))
	for _, f := range fc.Features {
		if f.Geometry == nil || (!f.Geometry.IsPolygon() && !f.Geometry.IsMultiPolygon()) {
			metrics.RecordSourceRow(string(country.SourceGeometry), outcomeDropped)
			continue
		}
		name := featureName(f)
		code, ok := rec.Resolve(ctx, country.SourceGeometry, name)
		if !ok {
			metrics.RecordSourceRow(string(country.SourceGeometry), outcomeDropped)
			continue
		}
		metrics.RecordSourceRow(string(country.SourceGeometry), outcomeRetained)
		entries = append(entries, model.GeometryEntry{
			Code:        code,
			DisplayName: strings.TrimSpace(name),
			Geometry:    f.Geometry,
		})
	}

	log.Info(ctx, "geometry loaded",
		logger.Int("features", len(entries)),
		logger.Int64("name_misses", rec.MissCount(country.SourceGeometry)),
	)
	return entries, nil
}

// LoadGeometryFile opens path and reads it via ReadGeometry.
func LoadGeometryFile(ctx context.Context, path string, rec *country.Reconciler) ([]model.GeometryEntry, error) {
	start := time.Now()
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: geometry %q: %w", ErrOpen, path, err)
	}
	defer f.Close() //nolint:errcheck // read-only file

	entries, err := ReadGeometry(ctx, f, rec)
	metrics.RecordSourceLoadDuration(string(country.SourceGeometry), float64(time.Since(start).Milliseconds()))
	return entries, err
}

func featureName(f *geojson.Feature) string {
	for _, prop := range geometryNameProps {
		if v, err := f.PropertyString(prop); err == nil && v != "" {
			return v
		}
	}
	return ""
}
