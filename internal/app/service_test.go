package app_test

import (
	"context"
	"errors"
	"testing"

	"github.com/okian/atlas/internal/app"
	"github.com/okian/atlas/internal/domain/aggregate"
	"github.com/okian/atlas/internal/domain/model"
	"github.com/okian/atlas/internal/domain/types"
	"github.com/okian/atlas/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	// Initialize logging for tests
	if err := logger.Init(); err != nil {
		panic(err)
	}
}

func fp(v float64) *float64 { return &v }

func testObservations() []model.Observation {
	return []model.Observation{
		{Code: "FIN", Year: 2015, Rank: 5, Ladder: fp(7.4), Factors: map[string]*float64{model.FactorGDP: fp(1.4)}},
		{Code: "FIN", Year: 2017, Rank: 3, Ladder: fp(7.5), Factors: map[string]*float64{model.FactorGDP: fp(1.5)}},
		{Code: "FIN", Year: 2020, Rank: 1, Ladder: fp(7.8), Factors: map[string]*float64{model.FactorGDP: fp(1.6)}},
		{Code: "DNK", Year: 2020, Rank: 2, Ladder: fp(7.6), Factors: map[string]*float64{model.FactorGDP: fp(1.7)}},
		{Code: "TUR", Year: 2018, Rank: 74, Ladder: fp(5.4), Factors: map[string]*float64{}},
	}
}

func testGeometries() []model.GeometryEntry {
	return []model.GeometryEntry{
		{Code: "DNK", DisplayName: "Denmark"},
		{Code: "FIN", DisplayName: "Finland"},
		{Code: "TUR", DisplayName: "Turkey"},
		// Drawn but never scored; the join filter removes it.
		{Code: "ATA", DisplayName: "Antarctica"},
	}
}

func testEvents() model.EventLog {
	return model.EventLog{
		"TUR": {2018: {"Currency crisis"}, 2023: {"Earthquakes"}},
	}
}

func newStartedService(ctx context.Context, opts ...app.Option) *app.Service {
	base := []app.Option{
		app.WithDataset(testObservations(), testGeometries(), testEvents()),
		app.WithDefaultYear(2020),
		app.WithPeriods(aggregate.Range{From: 2015, To: 2019}, aggregate.Range{From: 2020}),
	}
	svc := app.New(append(base, opts...)...)
	So(svc.Start(ctx), ShouldBeNil)
	return svc
}

func TestServiceLifecycle(t *testing.T) {
	ctx := context.Background()

	Convey("Given an unstarted service", t, func() {
		svc := app.New(app.WithDataset(testObservations(), testGeometries(), testEvents()))

		Convey("Then reads and triggers are refused until Start", func() {
			So(svc.Ready(ctx), ShouldBeFalse)

			_, err := svc.SetYear(ctx, 2020)
			So(errors.Is(err, app.ErrNotReady), ShouldBeTrue)

			_, err = svc.MapFills(ctx, 2020)
			So(errors.Is(err, app.ErrNotReady), ShouldBeTrue)

			_, err = svc.Countries(ctx)
			So(errors.Is(err, app.ErrNotReady), ShouldBeTrue)
		})
	})

	Convey("Given a started service", t, func() {
		svc := newStartedService(ctx)
		Reset(svc.Stop)

		Convey("Then it is ready with the default year and no selection", func() {
			So(svc.Ready(ctx), ShouldBeTrue)
			year, code := svc.State(ctx)
			So(year, ShouldEqual, 2020)
			So(code, ShouldBeEmpty)
		})

		Convey("Then the initial frame covers every retained country", func() {
			frame := svc.Frame(ctx)
			So(frame.Year, ShouldEqual, 2020)
			So(frame.Fills, ShouldHaveLength, 3)
			So(frame.Panel, ShouldBeNil)
		})

		Convey("Then Start is idempotent", func() {
			So(svc.Start(ctx), ShouldBeNil)
		})

		Convey("When stopping twice", func() {
			svc.Stop()
			svc.Stop()

			Convey("Then further triggers are refused", func() {
				_, err := svc.SetYear(ctx, 2021)
				So(errors.Is(err, app.ErrNotReady), ShouldBeTrue)
			})
		})
	})
}

func TestTriggers(t *testing.T) {
	ctx := context.Background()

	Convey("Given a started service", t, func() {
		svc := newStartedService(ctx)
		Reset(svc.Stop)

		Convey("When changing the year", func() {
			frame, err := svc.SetYear(ctx, 2017)

			Convey("Then the returned frame reflects the mutation", func() {
				So(err, ShouldBeNil)
				So(frame.Year, ShouldEqual, 2017)
				year, _ := svc.State(ctx)
				So(year, ShouldEqual, 2017)
			})
		})

		Convey("When the year is invalid", func() {
			_, err := svc.SetYear(ctx, 0)
			So(errors.Is(err, app.ErrBadYear), ShouldBeTrue)
		})

		Convey("When selecting a country", func() {
			frame, err := svc.SelectCountry(ctx, "TUR")

			Convey("Then the frame carries the panel and keeps the year", func() {
				So(err, ShouldBeNil)
				So(frame.Year, ShouldEqual, 2020)
				So(frame.Country, ShouldEqual, "TUR")
				So(frame.Panel, ShouldNotBeNil)
				So(frame.Panel.Name, ShouldEqual, "Turkey")
			})
		})

		Convey("When clearing the selection with an empty code", func() {
			_, err := svc.SelectCountry(ctx, "FIN")
			So(err, ShouldBeNil)
			frame, err := svc.SelectCountry(ctx, "")

			Convey("Then the panel disappears from subsequent frames", func() {
				So(err, ShouldBeNil)
				So(frame.Country, ShouldBeEmpty)
				So(frame.Panel, ShouldBeNil)
			})
		})

		Convey("When selecting an unknown country", func() {
			_, err := svc.SelectCountry(ctx, "XXX")
			So(errors.Is(err, app.ErrUnknownCountry), ShouldBeTrue)
		})

		Convey("When selecting a country filtered out by the join", func() {
			_, err := svc.SelectCountry(ctx, "ATA")
			So(errors.Is(err, app.ErrUnknownCountry), ShouldBeTrue)
		})

		Convey("When a year change follows a selection", func() {
			_, err := svc.SelectCountry(ctx, "FIN")
			So(err, ShouldBeNil)
			frame, err := svc.SetYear(ctx, 2016)

			Convey("Then the selection survives and the panel re-resolves", func() {
				So(err, ShouldBeNil)
				So(frame.Country, ShouldEqual, "FIN")
				So(frame.Panel, ShouldNotBeNil)
				So(frame.Panel.Year, ShouldEqual, 2016)
				So(frame.Panel.ObservationYear, ShouldEqual, 2015)
			})
		})

		Convey("When an observer is subscribed", func() {
			var got []types.Frame
			cancel := svc.Subscribe(func(f types.Frame) { got = append(got, f) })

			_, err := svc.SetYear(ctx, 2018)
			So(err, ShouldBeNil)

			Convey("Then it is notified before the trigger returns", func() {
				So(got, ShouldHaveLength, 1)
				So(got[0].Year, ShouldEqual, 2018)
			})

			Convey("Then cancellation stops further notifications", func() {
				cancel()
				_, err := svc.SetYear(ctx, 2019)
				So(err, ShouldBeNil)
				So(got, ShouldHaveLength, 1)
			})
		})
	})
}

func TestReadModels(t *testing.T) {
	ctx := context.Background()

	Convey("Given a started service", t, func() {
		svc := newStartedService(ctx)
		Reset(svc.Stop)

		Convey("When fetching map fills for a specific year", func() {
			fills, err := svc.MapFills(ctx, 2020)
			So(err, ShouldBeNil)
			So(fills, ShouldHaveLength, 3)

			byCode := make(map[string]types.MapFill, len(fills))
			for _, f := range fills {
				byCode[f.Code] = f
			}

			Convey("Then exact observations fill with their own year", func() {
				So(byCode["FIN"].Year, ShouldEqual, 2020)
				So(byCode["FIN"].Rank, ShouldEqual, 1)
				So(byCode["FIN"].Neutral, ShouldBeFalse)
			})

			Convey("Then gap years fall back to the prior observation", func() {
				So(byCode["TUR"].Year, ShouldEqual, 2018)
				So(byCode["TUR"].Rank, ShouldEqual, 74)
			})

			Convey("Then better ranks get lower color buckets", func() {
				So(byCode["FIN"].ColorIndex, ShouldBeLessThan, byCode["TUR"].ColorIndex)
			})
		})

		Convey("When fetching map fills with year zero", func() {
			fills, err := svc.MapFills(ctx, 0)

			Convey("Then the selected year is used", func() {
				So(err, ShouldBeNil)
				So(fills, ShouldHaveLength, 3)
			})
		})

		Convey("When fetching a panel", func() {
			panel, err := svc.Panel(ctx, "FIN", 2020)
			So(err, ShouldBeNil)

			Convey("Then the trend covers the whole series ascending", func() {
				So(panel.Trend, ShouldHaveLength, 3)
				So(panel.Trend[0].Year, ShouldEqual, 2015)
				So(panel.Trend[2].Year, ShouldEqual, 2020)
			})

			Convey("Then factor bars are normalized against dataset maxima", func() {
				So(panel.Factors, ShouldHaveLength, len(model.FactorKeys()))
				gdp := panel.Factors[0]
				So(gdp.Key, ShouldEqual, model.FactorGDP)
				So(gdp.Value, ShouldNotBeNil)
				// Dataset maximum for GDP is Denmark's 1.7.
				So(*gdp.Normalized, ShouldAlmostEqual, 1.6/1.7)
			})

			Convey("Then both period averages are present", func() {
				So(panel.Periods.HasData, ShouldBeTrue)
				So(panel.Periods.Pre, ShouldNotBeNil)
				So(*panel.Periods.Pre, ShouldAlmostEqual, (7.4+7.5)/2)
				So(panel.Periods.Post, ShouldNotBeNil)
				So(*panel.Periods.Post, ShouldAlmostEqual, 7.8)
			})

			Convey("Then a country without annotations has an empty timeline", func() {
				So(panel.Timeline.HasEvents, ShouldBeFalse)
			})
		})

		Convey("When fetching a panel with events", func() {
			panel, err := svc.Panel(ctx, "TUR", 2020)
			So(err, ShouldBeNil)

			Convey("Then only events at or before the year are visible", func() {
				So(panel.Timeline.HasEvents, ShouldBeTrue)
				So(panel.Timeline.Entries, ShouldHaveLength, 1)
				So(panel.Timeline.Entries[0].Year, ShouldEqual, 2018)
			})
		})

		Convey("When fetching a panel for an unknown country", func() {
			_, err := svc.Panel(ctx, "XXX", 2020)
			So(errors.Is(err, app.ErrUnknownCountry), ShouldBeTrue)
		})

		Convey("When fetching the roster", func() {
			countries, err := svc.Countries(ctx)
			So(err, ShouldBeNil)

			Convey("Then it is sorted by code with year coverage", func() {
				So(countries, ShouldHaveLength, 3)
				So(countries[0].Code, ShouldEqual, "DNK")
				So(countries[1].Code, ShouldEqual, "FIN")
				So(countries[1].FirstYear, ShouldEqual, 2015)
				So(countries[1].LastYear, ShouldEqual, 2020)
				So(countries[1].Years, ShouldEqual, 3)
			})
		})

		Convey("When fetching the geometry", func() {
			fc, err := svc.Geometry(ctx)
			So(err, ShouldBeNil)

			Convey("Then every feature is tagged with code and name", func() {
				So(fc.Features, ShouldHaveLength, 3)
				code, err := fc.Features[0].PropertyString("code")
				So(err, ShouldBeNil)
				So(code, ShouldEqual, "DNK")
			})
		})

		Convey("When fetching stats", func() {
			stats := svc.GetStats()

			So(stats["started"], ShouldBeTrue)
			So(stats["countries"], ShouldEqual, 3)
			So(stats["selected_year"], ShouldEqual, 2020)
		})
	})
}
