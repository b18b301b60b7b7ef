// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
	"strconv"
)

// MapHandler handles choropleth fill requests.
type MapHandler struct {
	deps Dependencies
}

// NewMapHandler creates a new map handler.
func NewMapHandler(deps Dependencies) *MapHandler {
	return &MapHandler{deps: deps}
}

// HandleGetMap handles GET /map?year=YYYY requests. Without a year
// parameter the fills reflect the currently selected year.
func (h *MapHandler) HandleGetMap(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	year, ok := parseYearParam(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind("get_map", ErrBadRequest))
		return
	}
	fills, err := h.deps.MapFills(r.Context(), year)
	if err != nil {
		writeAppError(w, "get_map", err)
		return
	}
	writeJSON(w, http.StatusOK, fills)
}

// parseYearParam reads the optional year query parameter. A missing
// parameter yields zero, which downstream treats as "current year".
func parseYearParam(r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("year")
	if raw == "" {
		return 0, true
	}
	year, err := strconv.Atoi(raw)
	if err != nil || year <= 0 {
		return 0, false
	}
	return year, true
}
