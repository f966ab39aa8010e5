// Package repository defines the world snapshot store interface and errors.
package repository

import (
	"context"

	"github.com/owenfield/frontoffice/internal/domain/model"
)

// Store provides read/swap access to the authoritative world snapshot.
type Store interface {
	// World returns a deep copy of the current snapshot.
	// Returns ErrEmptyStore before the first Swap.
	World(ctx context.Context) (model.World, error)

	// Swap atomically replaces the snapshot. The engine contract is
	// whole-bundle replacement; there is no partial apply.
	Swap(ctx context.Context, w model.World) error

	// Version returns the number of swaps applied so far.
	Version(ctx context.Context) uint64
}
