// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
	"strings"

	"github.com/okian/atlas/internal/domain/model"
)

// PanelHandler handles detail-panel requests.
type PanelHandler struct {
	deps Dependencies
}

// NewPanelHandler creates a new panel handler.
func NewPanelHandler(deps Dependencies) *PanelHandler {
	return &PanelHandler{deps: deps}
}

// HandleGetPanel handles GET /panel/{code}?year=YYYY requests.
func (h *PanelHandler) HandleGetPanel(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	// Extract path parameter after /panel/
	code := strings.TrimPrefix(r.URL.Path, "/panel/")
	if code == "" || strings.Contains(code, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind("get_panel", ErrBadRequest))
		return
	}
	year, ok := parseYearParam(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind("get_panel", ErrBadRequest))
		return
	}
	panel, err := h.deps.Panel(r.Context(), model.Code(code), year)
	if err != nil {
		writeAppError(w, "get_panel", err)
		return
	}
	writeJSON(w, http.StatusOK, panel)
}
