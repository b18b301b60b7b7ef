// Package types contains the outbound view-model types shared between
// the application core and the HTTP layer. Everything here is plain
// data handed to the rendering layer; no drawing happens server-side.
package types

// MapFill is the per-country fill instruction for the world map at the
// frame's year. ColorIndex is an ordinal bucket over rank (0 = best);
// Neutral marks countries with no observation resolvable for the year.
type MapFill struct {
	Code       string   `json:"code"`
	Name       string   `json:"name"`
	Year       int      `json:"year,omitempty"`
	Rank       int      `json:"rank,omitempty"`
	Ladder     *float64 `json:"ladder,omitempty"`
	ColorIndex int      `json:"color_index"`
	Neutral    bool     `json:"neutral"`
}

// TrendPoint is one point of a country's full ladder-score series.
type TrendPoint struct {
	Year   int      `json:"year"`
	Ladder *float64 `json:"ladder"`
}

// FactorBar is one factor value at the resolved observation, normalized
// against the dataset-wide maximum for scale-stable rendering.
type FactorBar struct {
	Key        string   `json:"key"`
	Label      string   `json:"label"`
	Value      *float64 `json:"value"`
	Normalized *float64 `json:"normalized"`
}

// PeriodComparison holds the pre/post period averages. A nil average
// means "no qualifying observation"; HasData is false only when both
// sides are nil and the panel must render an explicit no-data state.
type PeriodComparison struct {
	PreLabel  string   `json:"pre_label"`
	PostLabel string   `json:"post_label"`
	Pre       *float64 `json:"pre"`
	Post      *float64 `json:"post"`
	HasData   bool     `json:"has_data"`
}

// EventEntry is one year's worth of historical annotations. IsActive is
// set only on an exact year match; Headline is the first text of an
// active entry.
type EventEntry struct {
	Year     int      `json:"year"`
	Texts    []string `json:"texts"`
	IsActive bool     `json:"is_active"`
	Headline string   `json:"headline,omitempty"`
}

// Timeline is the filtered event view. HasEvents distinguishes "country
// has no annotations at all" from "filter matched nothing"; Fallback is
// set when the active year preceded every annotation and the full list
// is shown instead.
type Timeline struct {
	Entries   []EventEntry `json:"entries"`
	HasEvents bool         `json:"has_events"`
	Fallback  bool         `json:"fallback"`
}

// Panel is the complete detail view-model for a selected country.
type Panel struct {
	Code            string           `json:"code"`
	Name            string           `json:"name"`
	Year            int              `json:"year"`
	ObservationYear int              `json:"observation_year,omitempty"`
	HasObservation  bool             `json:"has_observation"`
	Trend           []TrendPoint     `json:"trend"`
	Factors         []FactorBar      `json:"factors"`
	Periods         PeriodComparison `json:"periods"`
	Timeline        Timeline         `json:"timeline"`
}

// Frame is one total publication of every dependent view: the map fill
// set for the selected year plus, when a country is selected, its
// panel. Frames replace each other wholesale; they are never patched.
type Frame struct {
	Year    int       `json:"year"`
	Country string    `json:"country,omitempty"`
	Fills   []MapFill `json:"fills"`
	Panel   *Panel    `json:"panel,omitempty"`
}

// CountrySummary describes one retained country for listing endpoints.
type CountrySummary struct {
	Code      string `json:"code"`
	Name      string `json:"name"`
	FirstYear int    `json:"first_year"`
	LastYear  int    `json:"last_year"`
	Years     int    `json:"years"`
}
