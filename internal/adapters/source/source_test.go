package source_test

import (
	"context"
	"strings"
	"testing"

	"github.com/okian/atlas/internal/adapters/source"
	"github.com/okian/atlas/internal/domain/country"
	"github.com/okian/atlas/internal/domain/model"
	"github.com/okian/atlas/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	// Initialize logging for tests
	if err := logger.Init(); err != nil {
		panic(err)
	}
}

const scoresDoc = `Country name;Year;Rank;Ladder score;Explained by: Log GDP per capita;Explained by: Social support
Finland;2024;1;7,736;1,845
Denmark;2024;2;7,521;1,9;1,1
Atlantis;2024;3;7,1;1,0;1,0
Finland;twenty;4;6,0;1,0;1,0
Czechia;2024;bad;6,0;1,0;1,0
Turkiye;2024;94;;abc;0,9
`

func TestReadScores(t *testing.T) {
	ctx := context.Background()

	Convey("Given a semicolon table with decimal commas and dirty rows", t, func() {
		rec := country.NewReconciler()
		obs, err := source.ReadScores(ctx, strings.NewReader(scoresDoc), rec)

		So(err, ShouldBeNil)

		Convey("Then unresolvable and malformed rows are dropped", func() {
			So(obs, ShouldHaveLength, 3)
			So(rec.Misses(country.SourceScores), ShouldResemble, []string{"Atlantis"})
		})

		Convey("Then numeric cells parse through the decimal comma", func() {
			So(obs[0].Code, ShouldEqual, model.Code("FIN"))
			So(obs[0].Year, ShouldEqual, 2024)
			So(obs[0].Rank, ShouldEqual, 1)
			So(obs[0].Ladder, ShouldNotBeNil)
			So(*obs[0].Ladder, ShouldAlmostEqual, 7.736)
			So(*obs[0].Factors[model.FactorGDP], ShouldAlmostEqual, 1.845)
		})

		Convey("Then a ragged row leaves trailing factors nil, not zero", func() {
			So(obs[0].Factors[model.FactorSupport], ShouldBeNil)
		})

		Convey("Then an unparseable score cell becomes nil, not zero", func() {
			tur := obs[2]
			So(tur.Code, ShouldEqual, model.Code("TUR"))
			So(tur.Ladder, ShouldBeNil)
			So(tur.Factors[model.FactorGDP], ShouldBeNil)
			So(tur.Factors[model.FactorSupport], ShouldNotBeNil)
		})
	})

	Convey("Given a table with alternate header spellings", t, func() {
		doc := "Country or region;Year;Overall rank;Score\nFinland;2019;1;7,769\n"
		rec := country.NewReconciler()
		obs, err := source.ReadScores(ctx, strings.NewReader(doc), rec)

		So(err, ShouldBeNil)
		So(obs, ShouldHaveLength, 1)
		So(*obs[0].Ladder, ShouldAlmostEqual, 7.769)
	})

	Convey("Given a table missing a structural column", t, func() {
		doc := "Country name;Ladder score\nFinland;7,7\n"
		rec := country.NewReconciler()
		_, err := source.ReadScores(ctx, strings.NewReader(doc), rec)

		Convey("Then the load fails outright", func() {
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "year")
		})
	})
}

const geometryDoc = `{
  "type": "FeatureCollection",
  "features": [
    {"type": "Feature", "properties": {"name": "Finland"},
     "geometry": {"type": "Polygon", "coordinates": [[[24,60],[28,60],[28,66],[24,66],[24,60]]]}},
    {"type": "Feature", "properties": {"ADMIN": "United States of America"},
     "geometry": {"type": "MultiPolygon", "coordinates": [[[[ -100,30],[-90,30],[-90,40],[-100,40],[-100,30]]]]}},
    {"type": "Feature", "properties": {"name": "Atlantis"},
     "geometry": {"type": "Polygon", "coordinates": [[[0,0],[1,0],[1,1],[0,1],[0,0]]]}},
    {"type": "Feature", "properties": {"name": "Null Island"},
     "geometry": {"type": "Point", "coordinates": [0,0]}}
  ]
}`

func TestReadGeometry(t *testing.T) {
	ctx := context.Background()

	Convey("Given a feature collection with mixed properties and geometries", t, func() {
		rec := country.NewReconciler()
		entries, err := source.ReadGeometry(ctx, strings.NewReader(geometryDoc), rec)

		So(err, ShouldBeNil)

		Convey("Then only reconcilable polygon features survive", func() {
			So(entries, ShouldHaveLength, 2)
			So(entries[0].Code, ShouldEqual, model.Code("FIN"))
			So(entries[1].Code, ShouldEqual, model.Code("USA"))
		})

		Convey("Then the display name keeps the source spelling", func() {
			So(entries[1].DisplayName, ShouldEqual, "United States of America")
		})

		Convey("Then the unresolvable name is an audited miss", func() {
			So(rec.Misses(country.SourceGeometry), ShouldContain, "Atlantis")
		})
	})

	Convey("Given malformed JSON", t, func() {
		rec := country.NewReconciler()
		_, err := source.ReadGeometry(ctx, strings.NewReader("{not geojson"), rec)
		So(err, ShouldNotBeNil)
	})
}

const eventsDoc = `{
  "TUR": {"2018": ["Currency crisis"], "2023": ["Earthquakes"]},
  "usa": {"2020": ["Lockdowns", "Stimulus"]},
  "GBR": {"soon": ["Not a year"], "2016": ["Referendum"]}
}`

func TestReadEvents(t *testing.T) {
	ctx := context.Background()

	Convey("Given an annotation document with string year keys", t, func() {
		events, err := source.ReadEvents(ctx, strings.NewReader(eventsDoc))

		So(err, ShouldBeNil)

		Convey("Then years parse and codes are upcased", func() {
			So(events[model.Code("TUR")][2018], ShouldResemble, []string{"Currency crisis"})
			So(events[model.Code("USA")][2020], ShouldHaveLength, 2)
		})

		Convey("Then malformed year keys are dropped without failing the load", func() {
			So(events[model.Code("GBR")], ShouldHaveLength, 1)
			So(events[model.Code("GBR")][2016], ShouldResemble, []string{"Referendum"})
		})
	})

	Convey("Given malformed JSON", t, func() {
		_, err := source.ReadEvents(ctx, strings.NewReader("[1,2"))
		So(err, ShouldNotBeNil)
	})
}
