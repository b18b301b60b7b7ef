// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
)

// CountriesHandler handles country roster and geometry requests.
type CountriesHandler struct {
	deps Dependencies
}

// NewCountriesHandler creates a new countries handler.
func NewCountriesHandler(deps Dependencies) *CountriesHandler {
	return &CountriesHandler{deps: deps}
}

// HandleGetCountries handles GET /countries requests.
func (h *CountriesHandler) HandleGetCountries(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	countries, err := h.deps.Countries(r.Context())
	if err != nil {
		writeAppError(w, "get_countries", err)
		return
	}
	writeJSON(w, http.StatusOK, countries)
}

// HandleGetGeometry handles GET /geometry requests. The payload is a
// GeoJSON FeatureCollection with code and name properties stamped on
// every feature, suitable for direct rendering by a map client.
func (h *CountriesHandler) HandleGetGeometry(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	fc, err := h.deps.Geometry(r.Context())
	if err != nil {
		writeAppError(w, "get_geometry", err)
		return
	}
	w.Header().Set("Cache-Control", "public, max-age=3600")
	writeJSON(w, http.StatusOK, fc)
}
