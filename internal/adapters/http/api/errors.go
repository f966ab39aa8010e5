package api

import (
	"errors"

	"github.com/owenfield/frontoffice/internal/adapters/storage"
	"github.com/owenfield/frontoffice/internal/domain/sim"
)

// ErrBadRequest covers malformed request payloads and parameters.
var ErrBadRequest = errors.New("bad request")

// Engine and storage sentinels the API translates into HTTP statuses.
var (
	ErrDecisionPending   = sim.ErrDecisionPending
	ErrNoDecisionPending = sim.ErrNoDecisionPending
	ErrInvalidOption     = sim.ErrInvalidOption
	ErrNotFound          = storage.ErrSlotNotFound
)
