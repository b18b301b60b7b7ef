// Package timeline selects and orders the historical annotations
// visible for a country at the active year.
package timeline

import (
	"sort"

	"github.com/okian/atlas/internal/domain/model"
	"github.com/okian/atlas/internal/domain/types"
)

// Visible returns the event entries for code at activeYear, newest
// first. Entries are filtered to year <= activeYear; when that filter
// matches nothing the full list is returned with Fallback set, so an
// active year before every annotation still shows the timeline instead
// of an empty pane. HasEvents is false only when the country has no
// annotations at all, which is a distinct state from "filtered empty".
func Visible(log model.EventLog, code model.Code, activeYear int) types.Timeline {
	byYear := log[code]
	if len(byYear) == 0 {
		return types.Timeline{HasEvents: false}
	}

	all := make([]types.EventEntry, 0, len(byYear))
	for year, texts := range byYear {
		entry := types.EventEntry{
			Year:     year,
			Texts:    texts,
			IsActive: year == activeYear,
		}
		if entry.IsActive && len(texts) > 0 {
			entry.Headline = texts[0]
		}
		all = append(all, entry)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Year > all[j].Year })

	visible := make([]types.EventEntry, 0, len(all))
	for _, e := range all {
		if e.Year <= activeYear {
			visible = append(visible, e)
		}
	}
	if len(visible) == 0 {
		return types.Timeline{Entries: all, HasEvents: true, Fallback: true}
	}
	return types.Timeline{Entries: visible, HasEvents: true}
}
