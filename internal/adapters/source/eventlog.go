package source

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/okian/atlas/internal/domain/model"
	"github.com/okian/atlas/pkg/logger"
	"github.com/okian/atlas/pkg/metrics"
)

// Metrics source label for the event log; it is keyed by code already,
// so it never passes through the reconciler.
const eventsSource = "events"

// ReadEvents parses the historical-event document from r. The document
// maps a country code to year-keyed lists of annotation texts; year
// keys arrive as strings and are parsed here. Entries with a malformed
// year key are dropped and counted, not fatal.
func ReadEvents(ctx context.Context, r io.Reader) (model.EventLog, error) {
	var doc map[string]map[string][]string
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: events: %w", ErrParse, err)
	}

	log := logger.Get().Named("source")
	events := make(model.EventLog, len(doc))
	var entries int
	for rawCode, byYear := range doc {
		code := model.Code(strings.ToUpper(strings.TrimSpace(rawCode)))
		if code == "" {
			metrics.RecordSourceRow(eventsSource, outcomeDropped)
			continue
		}
		for rawYear, texts := range byYear {
			year, err := strconv.Atoi(strings.TrimSpace(rawYear))
			if err != nil {
				metrics.RecordSourceRow(eventsSource, outcomeDropped)
				log.Warn(ctx, "event entry with malformed year dropped",
					logger.String("code", string(code)),
					logger.String("year", rawYear),
				)
				continue
			}
			if events[code] == nil {
				events[code] = make(map[int][]string)
			}
			events[code][year] = append(events[code][year], texts...)
			metrics.RecordSourceRow(eventsSource, outcomeRetained)
			entries++
		}
	}

	log.Info(ctx, "events loaded",
		logger.Int("countries", len(events)),
		logger.Int("entries", entries),
	)
	return events, nil
}

// LoadEventsFile opens path and reads it via ReadEvents.
func LoadEventsFile(ctx context.Context, path string) (model.EventLog, error) {
	start := time.Now()
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: events %q: %w", ErrOpen, path, err)
	}
	defer f.Close() //nolint:errcheck // read-only file

	events, err := ReadEvents(ctx, f)
	metrics.RecordSourceLoadDuration(eventsSource, float64(time.Since(start).Milliseconds()))
	return events, err
}
