// Command make-data writes a synthetic dataset in the three source
// formats the service ingests, for local runs and demos.
package main

import (
	"context"
	"flag"
	"os"
	"path/filepath"

	"github.com/okian/atlas/internal/synthdata"
	"github.com/okian/atlas/pkg/logger"
)

// Default generation range.
const (
	defaultYearFrom = 2015
	defaultYearTo   = 2024
)

func main() {
	var (
		outDir   = flag.String("out", "data", "Output directory for the generated files")
		yearFrom = flag.Int("from", defaultYearFrom, "First year to generate")
		yearTo   = flag.Int("to", defaultYearTo, "Last year to generate")
	)
	flag.Parse()

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}
	defer logger.Sync() //nolint:errcheck // best effort on exit

	ctx := context.Background()

	if *yearTo < *yearFrom {
		logger.Get().Fatal(ctx, "year range is inverted",
			logger.Int("from", *yearFrom), logger.Int("to", *yearTo))
	}
	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		logger.Get().Fatal(ctx, "cannot create output directory", logger.Error(err))
	}

	ds := synthdata.Generate(ctx, *yearFrom, *yearTo)

	if err := synthdata.WriteScores(ctx, ds, filepath.Join(*outDir, "scores.csv")); err != nil {
		logger.Get().Fatal(ctx, "scores generation failed", logger.Error(err))
	}
	if err := synthdata.WriteGeometry(ctx, filepath.Join(*outDir, "world.geojson")); err != nil {
		logger.Get().Fatal(ctx, "geometry generation failed", logger.Error(err))
	}
	if err := synthdata.WriteEvents(ctx, filepath.Join(*outDir, "events.json")); err != nil {
		logger.Get().Fatal(ctx, "events generation failed", logger.Error(err))
	}
}
