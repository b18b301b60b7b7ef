// Package country normalizes free-text country names from the input
// sources into canonical ISO-3166 alpha-3 codes. This is the join that
// makes two independently-sourced datasets agree on country identity.
package country

import (
	"context"
	"strings"

	"github.com/okian/atlas/internal/domain/audit"
	"github.com/okian/atlas/internal/domain/model"
	"github.com/okian/atlas/pkg/metrics"
)

// Source identifies which input a name came from, so misses can be
// audited per source.
type Source string

// Known name sources.
const (
	SourceScores   Source = "scores"
	SourceGeometry Source = "geometry"
)

// apostropheVariants are the apostrophe code points unified to U+0027
// before the second lookup. Polygon labels and score tables disagree on
// which one they use for names like "Cote d'Ivoire".
var apostropheVariants = strings.NewReplacer( //nolint:gochecknoglobals // static replacer
	"’", "'", // right single quotation mark
	"ʼ", "'", // modifier letter apostrophe
	"`", "'",
)

// Reconciler resolves raw names against a static dictionary. No fuzzy
// or edit-distance matching is performed: a name either resolves or is
// recorded as a distinct miss for the audit log.
type Reconciler struct {
	byName     map[string]model.Code
	normalized map[string]model.Code
	misses     map[Source]audit.Recorder
}

// NewReconciler creates a reconciler with configuration options.
func NewReconciler(opts ...Option) *Reconciler {
	r := &Reconciler{
		byName: dictionary,
		misses: map[Source]audit.Recorder{
			SourceScores:   audit.NewInMemoryRecorder(),
			SourceGeometry: audit.NewInMemoryRecorder(),
		},
	}

	// Apply all options
	for _, opt := range opts {
		opt(r)
	}

	// Secondary index under normalized spelling, so a raw name and its
	// dictionary form can disagree on periods or apostrophe glyphs in
	// either direction.
	r.normalized = make(map[string]model.Code, len(r.byName))
	for name, code := range r.byName {
		r.normalized[normalize(name)] = code
	}

	return r
}

// Resolve maps a raw name from src to its canonical code. The second
// return is false on a miss; a miss is a recorded diagnostic, not an
// error, and the caller must drop the row rather than default it.
func (r *Reconciler) Resolve(ctx context.Context, src Source, raw string) (model.Code, bool) {
	trimmed := strings.TrimSpace(raw)
	if code, ok := r.byName[trimmed]; ok {
		return code, true
	}
	if code, ok := r.normalized[normalize(trimmed)]; ok {
		return code, true
	}

	r.recordMiss(ctx, src, trimmed)
	return "", false
}

// Misses returns the distinct raw names from src that failed to
// resolve, sorted, for audit logging.
func (r *Reconciler) Misses(src Source) []string {
	rec, ok := r.misses[src]
	if !ok {
		return nil
	}
	return rec.Names()
}

// MissCount returns the number of distinct misses recorded for src.
func (r *Reconciler) MissCount(src Source) int64 {
	rec, ok := r.misses[src]
	if !ok {
		return 0
	}
	return rec.Size()
}

func (r *Reconciler) recordMiss(ctx context.Context, src Source, name string) {
	rec, ok := r.misses[src]
	if !ok {
		rec = audit.NewInMemoryRecorder()
		r.misses[src] = rec
	}
	if !rec.SeenAndRecord(ctx, name) {
		metrics.RecordReconcileMiss(string(src))
	}
}

// normalize strips internal period characters and unifies apostrophe
// variants, matching spellings like "Dem. Rep. Congo" and
// "Cote d’Ivoire" against their dictionary forms.
func normalize(name string) string {
	name = strings.ReplaceAll(name, ".", "")
	name = apostropheVariants.Replace(name)
	return strings.TrimSpace(name)
}
