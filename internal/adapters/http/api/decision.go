// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/owenfield/frontoffice/internal/domain/model"
)

// DecisionDependencies defines the interface for decision reads and
// resolutions.
type DecisionDependencies interface {
	World(ctx context.Context) (model.World, error)
	ResolveDecision(ctx context.Context, optionIndex int) (model.World, error)
}

// DecisionHandler handles the pending-decision gate.
type DecisionHandler struct {
	deps DecisionDependencies
}

// NewDecisionHandler creates a new decision handler.
func NewDecisionHandler(deps DecisionDependencies) *DecisionHandler {
	return &DecisionHandler{deps: deps}
}

// resolveRequest selects one option of the pending decision.
type resolveRequest struct {
	OptionIndex int `json:"option_index"`
}

type decisionResponse struct {
	Pending  *model.Decision `json:"pending,omitempty"`
	Resolved bool            `json:"resolved"`
}

// HandleDecision handles GET and POST /decision requests: GET reads the
// pending decision, POST resolves it with the chosen option.
func (h *DecisionHandler) HandleDecision(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		world, err := h.deps.World(r.Context())
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, decisionResponse{Pending: world.State.PendingDecision})
	case http.MethodPost:
		var req resolveRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
			return
		}
		if _, err := h.deps.ResolveDecision(r.Context(), req.OptionIndex); err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, decisionResponse{Resolved: true})
	default:
		http.NotFound(w, r)
	}
}
