package aggregate_test

import (
	"testing"

	"github.com/okian/atlas/internal/domain/aggregate"
	"github.com/okian/atlas/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func fp(v float64) *float64 { return &v }

func TestFactorMaxima(t *testing.T) {
	Convey("Given observations with mixed and missing factor values", t, func() {
		observations := []model.Observation{
			{Code: "FIN", Year: 2020, Factors: map[string]*float64{
				model.FactorGDP:     fp(3),
				model.FactorSupport: nil,
			}},
			{Code: "DNK", Year: 2020, Factors: map[string]*float64{
				model.FactorGDP:     nil,
				model.FactorSupport: fp(1.2),
			}},
			{Code: "FIN", Year: 2021, Factors: map[string]*float64{
				model.FactorGDP: fp(7),
			}},
		}

		maxima := aggregate.FactorMaxima(observations)

		Convey("Then nil values are skipped, not treated as zero", func() {
			So(maxima[model.FactorGDP], ShouldEqual, 7)
			So(maxima[model.FactorSupport], ShouldEqual, 1.2)
		})

		Convey("Then factors with no value anywhere default to 1", func() {
			So(maxima[model.FactorHealth], ShouldEqual, 1)
			So(maxima[model.FactorFreedom], ShouldEqual, 1)
			So(maxima[model.FactorGenerosity], ShouldEqual, 1)
			So(maxima[model.FactorCorruption], ShouldEqual, 1)
		})
	})

	Convey("Given no observations at all", t, func() {
		maxima := aggregate.FactorMaxima(nil)

		Convey("Then every factor gets the safe denominator", func() {
			for _, key := range model.FactorKeys() {
				So(maxima[key], ShouldEqual, 1)
			}
		})
	})
}

func TestRangeContains(t *testing.T) {
	Convey("Given a bounded range", t, func() {
		r := aggregate.Range{From: 2015, To: 2019}

		So(r.Contains(2014), ShouldBeFalse)
		So(r.Contains(2015), ShouldBeTrue)
		So(r.Contains(2019), ShouldBeTrue)
		So(r.Contains(2020), ShouldBeFalse)
	})

	Convey("Given a range with no upper bound", t, func() {
		r := aggregate.Range{From: 2020}

		So(r.Contains(2019), ShouldBeFalse)
		So(r.Contains(2020), ShouldBeTrue)
		So(r.Contains(2999), ShouldBeTrue)
	})
}

func TestPeriodAverage(t *testing.T) {
	Convey("Given a series covering 2015 through 2019", t, func() {
		var obs []model.Observation
		for i, year := range []int{2015, 2016, 2017, 2018, 2019} {
			obs = append(obs, model.Observation{Code: "FIN", Year: year, Ladder: fp(float64(i + 1))})
		}

		Convey("When averaging the full window", func() {
			avg, ok := aggregate.PeriodAverage(obs, aggregate.Range{From: 2015, To: 2019})
			So(ok, ShouldBeTrue)
			So(avg, ShouldEqual, 3)
		})

		Convey("When averaging a window with no observations", func() {
			_, ok := aggregate.PeriodAverage(obs, aggregate.Range{From: 2020})

			Convey("Then the result is absent, never zero", func() {
				So(ok, ShouldBeFalse)
			})
		})
	})

	Convey("Given observations with nil ladder scores inside the window", t, func() {
		obs := []model.Observation{
			{Code: "FIN", Year: 2016, Ladder: fp(4)},
			{Code: "FIN", Year: 2017, Ladder: nil},
			{Code: "FIN", Year: 2018, Ladder: fp(6)},
		}

		avg, ok := aggregate.PeriodAverage(obs, aggregate.Range{From: 2015, To: 2019})

		Convey("Then nil scores are excluded from the mean", func() {
			So(ok, ShouldBeTrue)
			So(avg, ShouldEqual, 5)
		})
	})
}
