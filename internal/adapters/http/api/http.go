// Package api declares HTTP contracts and route registration helpers.
//
// Handlers translate between the transport and the coordinator; they
// hold no business logic. Everything they return is a view-model
// produced by the app layer.
package api

import (
	"context"
	"errors"
	"net/http"

	json "github.com/goccy/go-json"
	geojson "github.com/paulmach/go.geojson"

	"github.com/okian/atlas/internal/app"
	"github.com/okian/atlas/internal/domain/model"
	"github.com/okian/atlas/internal/domain/types"
)

// Dependencies required by HTTP handlers. Using an interface bundle
// keeps the handler layer loosely coupled to the app implementation.
type Dependencies interface {
	// The two inbound triggers. Both return the frame resulting from
	// the mutation; the call does not return until that frame has been
	// published.
	SetYear(ctx context.Context, year int) (types.Frame, error)
	SelectCountry(ctx context.Context, code model.Code) (types.Frame, error)

	// Read operations expose the current state and view-models.
	Frame(ctx context.Context) types.Frame
	State(ctx context.Context) (year int, code string)
	Ready(ctx context.Context) bool
	MapFills(ctx context.Context, year int) ([]types.MapFill, error)
	Panel(ctx context.Context, code model.Code, year int) (types.Panel, error)
	Countries(ctx context.Context) ([]types.CountrySummary, error)
	Geometry(ctx context.Context) (*geojson.FeatureCollection, error)
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler    *HealthHandler
	statsHandler     *StatsHandler
	stateHandler     *StateHandler
	mapHandler       *MapHandler
	panelHandler     *PanelHandler
	countriesHandler *CountriesHandler
	dashboardHandler *dashboardHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:    NewHealthHandler(),
		statsHandler:     NewStatsHandler(statsProvider),
		stateHandler:     NewStateHandler(deps),
		mapHandler:       NewMapHandler(deps),
		panelHandler:     NewPanelHandler(deps),
		countriesHandler: NewCountriesHandler(deps),
		dashboardHandler: newDashboardHandler(),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	// Specific paths first (most specific to least specific)
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/dashboard", s.dashboardHandler.HandleDashboard)
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/state", MetricsMiddleware(s.stateHandler.HandleGetState, "state"))
	mux.HandleFunc("/state/year", MetricsMiddleware(s.stateHandler.HandleSetYear, "state_year"))
	mux.HandleFunc("/state/country", MetricsMiddleware(s.stateHandler.HandleSelectCountry, "state_country"))
	mux.HandleFunc("/map", MetricsMiddleware(s.mapHandler.HandleGetMap, "map"))
	mux.HandleFunc("/countries", MetricsMiddleware(s.countriesHandler.HandleGetCountries, "countries"))
	mux.HandleFunc("/geometry", MetricsMiddleware(s.countriesHandler.HandleGetGeometry, "geometry"))
	mux.HandleFunc("/panel/", MetricsMiddleware(s.panelHandler.HandleGetPanel, "panel"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// writeAppError maps coordinator sentinels onto HTTP statuses.
func writeAppError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, app.ErrNotReady):
		writeError(w, http.StatusServiceUnavailable, "not_ready", Wrap(op, err))
	case errors.Is(err, app.ErrUnknownCountry):
		writeError(w, http.StatusNotFound, "not_found", Wrap(op, err))
	case errors.Is(err, app.ErrBadYear):
		writeError(w, http.StatusBadRequest, "bad_request", Wrap(op, err))
	case errors.Is(err, app.ErrBackpressure):
		writeError(w, http.StatusTooManyRequests, "backpressure", Wrap(op, err))
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
	}
}
