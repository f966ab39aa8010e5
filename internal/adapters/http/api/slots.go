// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/owenfield/frontoffice/internal/adapters/storage"
	"github.com/owenfield/frontoffice/internal/domain/model"
)

// SlotDependencies defines the interface for save-slot operations.
type SlotDependencies interface {
	SaveSlot(ctx context.Context, slot string) error
	LoadSlot(ctx context.Context, slot string) (model.World, error)
	Slots(ctx context.Context) ([]storage.SlotInfo, error)
}

// SlotsHandler handles save-slot listing, saving and loading.
type SlotsHandler struct {
	deps SlotDependencies
}

// NewSlotsHandler creates a new slots handler.
func NewSlotsHandler(deps SlotDependencies) *SlotsHandler {
	return &SlotsHandler{deps: deps}
}

// HandleSlots handles GET /slots requests, listing every save slot.
func (h *SlotsHandler) HandleSlots(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	slots, err := h.deps.Slots(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if slots == nil {
		slots = []storage.SlotInfo{}
	}
	writeJSON(w, http.StatusOK, slots)
}

// HandleSlot handles PUT /slots/{name} (save the current world into the
// slot) and POST /slots/{name}/load (resume from the slot).
func (h *SlotsHandler) HandleSlot(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/slots/")
	name, action, _ := strings.Cut(rest, "/")
	if name == "" {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}

	switch {
	case r.Method == http.MethodPut && action == "":
		if err := h.deps.SaveSlot(r.Context(), name); err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "saved", "slot": name})
	case r.Method == http.MethodPost && action == "load":
		world, err := h.deps.LoadSlot(r.Context(), name)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"status": "loaded",
			"slot":   name,
			"week":   world.State.Week,
			"year":   world.State.Year,
		})
	default:
		http.NotFound(w, r)
	}
}
