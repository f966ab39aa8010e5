// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/owenfield/frontoffice/internal/adapters/storage"
	"github.com/owenfield/frontoffice/internal/domain/model"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// World returns a copy of the current snapshot.
	World(ctx context.Context) (model.World, error)

	// AdvanceWeek runs one weekly transition and swaps in the result.
	AdvanceWeek(ctx context.Context) (model.World, error)

	// ResolveDecision applies the chosen option and clears the pending gate.
	ResolveDecision(ctx context.Context, optionIndex int) (model.World, error)

	// Save and load named snapshot slots.
	SaveSlot(ctx context.Context, slot string) error
	LoadSlot(ctx context.Context, slot string) (model.World, error)
	Slots(ctx context.Context) ([]storage.SlotInfo, error)
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler    *HealthHandler
	statsHandler     *StatsHandler
	stateHandler     *StateHandler
	advanceHandler   *AdvanceHandler
	decisionHandler  *DecisionHandler
	standingsHandler *StandingsHandler
	slotsHandler     *SlotsHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:    NewHealthHandler(),
		statsHandler:     NewStatsHandler(statsProvider),
		stateHandler:     NewStateHandler(deps),
		advanceHandler:   NewAdvanceHandler(deps),
		decisionHandler:  NewDecisionHandler(deps),
		standingsHandler: NewStandingsHandler(deps),
		slotsHandler:     NewSlotsHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/state", MetricsMiddleware(s.stateHandler.HandleGetState, "state"))
	mux.HandleFunc("/advance", MetricsMiddleware(s.advanceHandler.HandleAdvance, "advance"))
	mux.HandleFunc("/decision", MetricsMiddleware(s.decisionHandler.HandleDecision, "decision"))
	mux.HandleFunc("/standings", MetricsMiddleware(s.standingsHandler.HandleGetStandings, "standings"))
	mux.HandleFunc("/slots", MetricsMiddleware(s.slotsHandler.HandleSlots, "slots"))
	mux.HandleFunc("/slots/", MetricsMiddleware(s.slotsHandler.HandleSlot, "slots"))
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

// writeDomainError translates engine sentinels into HTTP statuses.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrDecisionPending):
		writeError(w, http.StatusConflict, "decision_pending", err)
	case errors.Is(err, ErrNoDecisionPending):
		writeError(w, http.StatusConflict, "no_decision_pending", err)
	case errors.Is(err, ErrInvalidOption):
		writeError(w, http.StatusBadRequest, "invalid_option", err)
	case errors.Is(err, ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", err)
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", err)
	}
}
