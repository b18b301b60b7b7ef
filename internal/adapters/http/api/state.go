// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"

	json "github.com/goccy/go-json"

	"github.com/okian/atlas/internal/domain/model"
)

// StateHandler handles view-state reads and mutations.
type StateHandler struct {
	deps Dependencies
}

// NewStateHandler creates a new state handler.
func NewStateHandler(deps Dependencies) *StateHandler {
	return &StateHandler{deps: deps}
}

// stateResponse is the serialized view-state.
type stateResponse struct {
	Year    int    `json:"year"`
	Country string `json:"country,omitempty"`
	Ready   bool   `json:"ready"`
}

// setYearRequest is the payload for POST /state/year.
type setYearRequest struct {
	Year int `json:"year"`
}

// selectCountryRequest is the payload for POST /state/country.
type selectCountryRequest struct {
	Code string `json:"code"`
}

// HandleGetState handles GET /state requests.
func (h *StateHandler) HandleGetState(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	year, code := h.deps.State(r.Context())
	writeJSON(w, http.StatusOK, stateResponse{
		Year:    year,
		Country: code,
		Ready:   h.deps.Ready(r.Context()),
	})
}

// HandleSetYear handles POST /state/year requests. The response body is
// the frame that resulted from the change, so a caller observes its own
// mutation without a second round trip.
func (h *StateHandler) HandleSetYear(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req setYearRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind("set_year", ErrBadRequest, err))
		return
	}
	if req.Year <= 0 {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind("set_year", ErrBadRequest))
		return
	}
	frame, err := h.deps.SetYear(r.Context(), req.Year)
	if err != nil {
		writeAppError(w, "set_year", err)
		return
	}
	writeJSON(w, http.StatusOK, frame)
}

// HandleSelectCountry handles POST /state/country requests. An empty
// code clears the current selection.
func (h *StateHandler) HandleSelectCountry(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req selectCountryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind("select_country", ErrBadRequest, err))
		return
	}
	frame, err := h.deps.SelectCountry(r.Context(), model.Code(req.Code))
	if err != nil {
		writeAppError(w, "select_country", err)
		return
	}
	writeJSON(w, http.StatusOK, frame)
}
