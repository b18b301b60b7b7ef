package timeline_test

import (
	"testing"

	"github.com/okian/atlas/internal/domain/model"
	"github.com/okian/atlas/internal/domain/timeline"
	. "github.com/smartystreets/goconvey/convey"
)

func TestVisible(t *testing.T) {
	log := model.EventLog{
		"TUR": {
			2010: {"Constitutional referendum"},
			2018: {"Currency crisis", "Snap elections"},
			2023: {"Major earthquakes in the southeast"},
		},
	}

	Convey("Given a country with annotations in 2010, 2018 and 2023", t, func() {
		Convey("When the active year sits between annotations", func() {
			tl := timeline.Visible(log, "TUR", 2012)

			Convey("Then only entries at or before the active year show, newest first", func() {
				So(tl.HasEvents, ShouldBeTrue)
				So(tl.Fallback, ShouldBeFalse)
				So(tl.Entries, ShouldHaveLength, 1)
				So(tl.Entries[0].Year, ShouldEqual, 2010)
			})
		})

		Convey("When the active year covers everything", func() {
			tl := timeline.Visible(log, "TUR", 2024)

			Convey("Then the full list shows in descending year order", func() {
				So(tl.Entries, ShouldHaveLength, 3)
				So(tl.Entries[0].Year, ShouldEqual, 2023)
				So(tl.Entries[1].Year, ShouldEqual, 2018)
				So(tl.Entries[2].Year, ShouldEqual, 2010)
			})
		})

		Convey("When the active year precedes every annotation", func() {
			tl := timeline.Visible(log, "TUR", 2005)

			Convey("Then the full list is shown and flagged as a fallback", func() {
				So(tl.HasEvents, ShouldBeTrue)
				So(tl.Fallback, ShouldBeTrue)
				So(tl.Entries, ShouldHaveLength, 3)
			})
		})

		Convey("When the active year matches an annotation exactly", func() {
			tl := timeline.Visible(log, "TUR", 2018)

			Convey("Then that entry is active with its first text as headline", func() {
				So(tl.Entries[0].Year, ShouldEqual, 2018)
				So(tl.Entries[0].IsActive, ShouldBeTrue)
				So(tl.Entries[0].Headline, ShouldEqual, "Currency crisis")
				So(tl.Entries[1].IsActive, ShouldBeFalse)
			})
		})
	})

	Convey("Given a country with no annotations", t, func() {
		tl := timeline.Visible(log, "FIN", 2020)

		Convey("Then the timeline reports no events rather than an empty filter", func() {
			So(tl.HasEvents, ShouldBeFalse)
			So(tl.Fallback, ShouldBeFalse)
			So(tl.Entries, ShouldBeEmpty)
		})
	})
}
