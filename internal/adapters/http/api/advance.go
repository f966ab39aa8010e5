// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	"github.com/owenfield/frontoffice/internal/domain/model"
)

// AdvanceDependencies defines the interface for the weekly transition.
type AdvanceDependencies interface {
	AdvanceWeek(ctx context.Context) (model.World, error)
}

// AdvanceHandler handles week-advancement requests.
type AdvanceHandler struct {
	deps AdvanceDependencies
}

// NewAdvanceHandler creates a new advance handler.
func NewAdvanceHandler(deps AdvanceDependencies) *AdvanceHandler {
	return &AdvanceHandler{deps: deps}
}

// advanceResponse summarizes the transition for the caller; the full
// snapshot stays available on GET /state.
type advanceResponse struct {
	Week            int                  `json:"week"`
	Year            int                  `json:"year"`
	Cash            float64              `json:"cash"`
	Bankrupt        bool                 `json:"bankrupt"`
	PendingDecision *model.Decision      `json:"pending_decision,omitempty"`
	Notifications   []model.Notification `json:"notifications"`
	MatchesPlayed   int                  `json:"matches_played"`
}

// HandleAdvance handles POST /advance requests.
func (h *AdvanceHandler) HandleAdvance(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	world, err := h.deps.AdvanceWeek(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}

	played := 0
	for _, m := range world.Matches {
		if m.Week == world.State.Week && m.Year == world.State.Year {
			played++
		}
	}
	writeJSON(w, http.StatusOK, advanceResponse{
		Week:            world.State.Week,
		Year:            world.State.Year,
		Cash:            world.State.Cash,
		Bankrupt:        world.State.Bankrupt(),
		PendingDecision: world.State.PendingDecision,
		Notifications:   world.State.Notifications,
		MatchesPlayed:   played,
	})
}
