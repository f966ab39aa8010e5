package repository

import (
	"context"
	"sync"

	"github.com/owenfield/frontoffice/internal/domain/model"
	"github.com/owenfield/frontoffice/pkg/metrics"
)

// MemStore is the in-memory Store implementation. Reads hand out deep
// copies so callers can never alias the authoritative snapshot.
type MemStore struct {
	mu      sync.RWMutex
	world   model.World
	loaded  bool
	version uint64

	gauges bool
}

// Option applies a configuration option to the MemStore.
type Option func(*MemStore)

// WithWorld seeds the store with an initial snapshot.
func WithWorld(w model.World) Option {
	return func(s *MemStore) {
		s.world = w.Clone()
		s.loaded = true
	}
}

// WithGauges publishes snapshot gauges to the metrics registry on every swap.
func WithGauges() Option {
	return func(s *MemStore) {
		s.gauges = true
	}
}

// NewMemStore creates an empty in-memory snapshot store.
func NewMemStore(opts ...Option) *MemStore {
	s := &MemStore{}
	for _, opt := range opts {
		opt(s)
	}
	if s.loaded && s.gauges {
		s.publish()
	}
	return s
}

// World returns a deep copy of the current snapshot.
func (s *MemStore) World(_ context.Context) (model.World, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.loaded {
		return model.World{}, ErrEmptyStore
	}
	return s.world.Clone(), nil
}

// Swap atomically replaces the snapshot with a deep copy of w.
func (s *MemStore) Swap(_ context.Context, w model.World) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.world = w.Clone()
	s.loaded = true
	s.version++
	if s.gauges {
		s.publish()
	}
	return nil
}

// Version returns the number of swaps applied so far.
func (s *MemStore) Version(_ context.Context) uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// publish pushes snapshot gauges to the metrics registry. Callers hold mu.
func (s *MemStore) publish() {
	metrics.UpdateClock(s.world.State.Week, s.world.State.Year)
	metrics.UpdateCashBalance(s.world.State.Cash)
	metrics.UpdateReputation(s.world.State.Reputation)
	metrics.UpdateAthleteCount(len(s.world.Athletes))
	metrics.UpdateFranchiseCount(len(s.world.Franchises))
	metrics.UpdatePendingDecision(s.world.State.PendingDecision != nil)
	total := 0.0
	for _, l := range s.world.State.Loans {
		total += l.Balance
	}
	metrics.UpdateLoanOutstanding(total)
}
