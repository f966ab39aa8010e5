// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	"github.com/owenfield/frontoffice/internal/domain/model"
)

// StateDependencies defines the interface for snapshot reads.
type StateDependencies interface {
	World(ctx context.Context) (model.World, error)
}

// StateHandler handles world snapshot reads.
type StateHandler struct {
	deps StateDependencies
}

// NewStateHandler creates a new state handler.
func NewStateHandler(deps StateDependencies) *StateHandler {
	return &StateHandler{deps: deps}
}

// stateResponse is the full snapshot plus derived convenience fields.
type stateResponse struct {
	model.World
	Bankrupt bool `json:"bankrupt"`
}

// HandleGetState handles GET /state requests.
func (h *StateHandler) HandleGetState(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	world, err := h.deps.World(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stateResponse{World: world, Bankrupt: world.State.Bankrupt()})
}
