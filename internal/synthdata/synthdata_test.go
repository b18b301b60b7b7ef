package synthdata_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/okian/atlas/internal/adapters/source"
	"github.com/okian/atlas/internal/domain/country"
	"github.com/okian/atlas/internal/synthdata"
	"github.com/okian/atlas/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	// Initialize logging for tests
	if err := logger.Init(); err != nil {
		panic(err)
	}
}

func TestRoundTrip(t *testing.T) {
	ctx := context.Background()

	Convey("Given a generated dataset written to disk", t, func() {
		dir := t.TempDir()
		scoresPath := filepath.Join(dir, "scores.csv")
		geometryPath := filepath.Join(dir, "world.geojson")
		eventsPath := filepath.Join(dir, "events.json")

		ds := synthdata.Generate(ctx, 2020, 2022)
		So(ds.Observations, ShouldNotBeEmpty)

		So(synthdata.WriteScores(ctx, ds, scoresPath), ShouldBeNil)
		So(synthdata.WriteGeometry(ctx, geometryPath), ShouldBeNil)
		So(synthdata.WriteEvents(ctx, eventsPath), ShouldBeNil)

		Convey("When loading the files through the real loaders", func() {
			rec := country.NewReconciler()

			obs, err := source.LoadScoresFile(ctx, scoresPath, rec)
			So(err, ShouldBeNil)

			geoms, err := source.LoadGeometryFile(ctx, geometryPath, rec)
			So(err, ShouldBeNil)

			events, err := source.LoadEventsFile(ctx, eventsPath)
			So(err, ShouldBeNil)

			Convey("Then every generated name reconciles", func() {
				So(rec.MissCount(country.SourceScores), ShouldEqual, 0)
				So(rec.MissCount(country.SourceGeometry), ShouldEqual, 0)
				So(obs, ShouldHaveLength, len(ds.Observations))
				So(geoms, ShouldNotBeEmpty)
				So(events, ShouldNotBeEmpty)
			})

			Convey("Then scores round-trip through the decimal comma format", func() {
				So(obs[0].Ladder, ShouldNotBeNil)
				So(*obs[0].Ladder, ShouldBeBetween, 1.9, 8.1)
			})
		})
	})
}
