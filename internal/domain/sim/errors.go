package sim

import "errors"

var (
	// ErrDecisionPending is returned when the caller tries to advance the
	// week while a decision is still waiting for resolution.
	ErrDecisionPending = errors.New("sim: decision pending, resolve it before advancing")
	// ErrNoDecisionPending is returned when resolving with nothing pending.
	ErrNoDecisionPending = errors.New("sim: no decision pending")
	// ErrInvalidOption is returned when the chosen option index is out of range.
	ErrInvalidOption = errors.New("sim: invalid decision option")
	// ErrUnknownAthlete is returned when a decision targets an athlete that
	// is no longer in the snapshot.
	ErrUnknownAthlete = errors.New("sim: unknown athlete")
)
