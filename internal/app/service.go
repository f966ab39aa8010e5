// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	repository "github.com/owenfield/frontoffice/internal/adapters/repository"
	storage "github.com/owenfield/frontoffice/internal/adapters/storage"
	"github.com/owenfield/frontoffice/internal/domain/model"
	"github.com/owenfield/frontoffice/internal/domain/rng"
	"github.com/owenfield/frontoffice/internal/domain/sim"
	"github.com/owenfield/frontoffice/pkg/logger"
	"github.com/owenfield/frontoffice/pkg/metrics"
)

// AutosaveSlot is the reserved slot the service saves into on a timer and
// resumes from on startup.
const AutosaveSlot = "autosave"

// Service owns the authoritative world snapshot and drives the weekly
// engine on behalf of the HTTP layer.
type Service struct {
	mu sync.Mutex

	// Core components
	store repository.Store
	slots *storage.SlotStore
	orch  *sim.Orchestrator

	// Configuration
	seed             int64
	savePath         string
	autosaveInterval time.Duration
	leagueParams     sim.LeagueParams
	orchOpts         []sim.Option

	// State
	started bool
	stopCh  chan struct{}

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithSeed fixes the randomness seed; zero means time-derived.
func WithSeed(seed int64) Option {
	return func(s *Service) {
		s.seed = seed
	}
}

// WithSavePath sets the sqlite save-slot database path.
func WithSavePath(path string) Option {
	return func(s *Service) {
		if path != "" {
			s.savePath = path
		}
	}
}

// WithAutosaveInterval sets how often the world is autosaved. Zero
// disables the timer.
func WithAutosaveInterval(interval time.Duration) Option {
	return func(s *Service) {
		s.autosaveInterval = interval
	}
}

// WithLeagueParams shapes the world generated on a fresh start.
func WithLeagueParams(p sim.LeagueParams) Option {
	return func(s *Service) {
		s.leagueParams = p
	}
}

// WithOrchestratorOptions forwards options to the weekly engine.
func WithOrchestratorOptions(opts ...sim.Option) Option {
	return func(s *Service) {
		s.orchOpts = append(s.orchOpts, opts...)
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(logger logger.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		savePath:         "frontoffice.db",
		autosaveInterval: time.Minute,
		leagueParams:     sim.DefaultLeagueParams(),
		stopCh:           make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start initializes the engine, resumes the autosave slot if present and
// begins the autosave timer.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "starting front office service...")

	src := rng.NewFromTime()
	if s.seed != 0 {
		src = rng.New(s.seed)
	}
	s.orch = sim.New(src, s.orchOpts...)

	// An empty save path keeps slots in memory, so nothing survives the
	// process. The slot API stays available either way.
	path := s.savePath
	if path == "" {
		path = ":memory:"
	}
	slots, err := storage.Open(ctx, path)
	if err != nil {
		return fmt.Errorf("open save storage: %w", err)
	}
	s.slots = slots

	world, err := s.slots.Load(ctx, AutosaveSlot)
	switch {
	case err == nil:
		s.logger.Info(ctx, "resumed autosave",
			logger.Int("week", world.State.Week),
			logger.Int("year", world.State.Year),
		)
	case errors.Is(err, storage.ErrSlotNotFound):
		world = s.orch.NewWorld(s.leagueParams)
		s.logger.Info(ctx, "generated new world",
			logger.Int("franchises", len(world.Franchises)),
			logger.Int("athletes", len(world.Athletes)),
		)
	default:
		return fmt.Errorf("resume autosave: %w", err)
	}

	s.store = repository.NewMemStore(
		repository.WithWorld(world),
		repository.WithGauges(),
	)

	if s.autosaveInterval > 0 {
		go s.autosaveLoop()
	}

	s.started = true
	s.logger.Info(ctx, "front office service started",
		logger.Int64("seed", s.seed),
		logger.String("savePath", s.savePath),
	)
	return nil
}

// Stop autosaves one last time and shuts the service down.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	ctx := context.Background()
	s.logger.Info(ctx, "stopping front office service...")

	select {
	case <-s.stopCh:
	default:
		close(s.stopCh)
	}

	if world, err := s.store.World(ctx); err == nil {
		if err := s.slots.Save(ctx, AutosaveSlot, world); err != nil {
			s.logger.Warn(ctx, "final autosave failed", logger.Error(err))
		}
	}
	if err := s.slots.Close(); err != nil {
		s.logger.Warn(ctx, "closing save storage failed", logger.Error(err))
	}

	s.started = false
	s.logger.Info(ctx, "front office service stopped")
}

// autosaveLoop periodically saves the world into the autosave slot.
func (s *Service) autosaveLoop() {
	ticker := time.NewTicker(s.autosaveInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopCh:
			return
		case <-ticker.C:
			ctx := context.Background()
			world, err := s.store.World(ctx)
			if err != nil {
				continue
			}
			if err := s.slots.Save(ctx, AutosaveSlot, world); err != nil {
				s.logger.Warn(ctx, "autosave failed", logger.Error(err))
			}
		}
	}
}

// World returns a copy of the current snapshot.
func (s *Service) World(ctx context.Context) (model.World, error) {
	return s.store.World(ctx)
}

// AdvanceWeek runs one weekly transition and swaps the result in as the
// authoritative snapshot. Transitions are serialized.
func (s *Service) AdvanceWeek(ctx context.Context) (model.World, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	world, err := s.store.World(ctx)
	if err != nil {
		return model.World{}, err
	}

	start := time.Now()
	next, err := s.orch.AdvanceWeek(world)
	if err != nil {
		return model.World{}, err
	}
	metrics.RecordAdvanceLatency(float64(time.Since(start).Milliseconds()))
	metrics.RecordWeekAdvanced()
	s.recordTransition(world, next)

	if err := s.store.Swap(ctx, next); err != nil {
		return model.World{}, err
	}

	s.logger.Info(ctx, "week advanced",
		logger.Int("week", next.State.Week),
		logger.Int("year", next.State.Year),
		logger.Float64("cash", next.State.Cash),
		logger.Int("matches", len(next.Matches)-len(world.Matches)),
	)
	return next, nil
}

// recordTransition diffs the snapshots into the engine counters.
func (s *Service) recordTransition(before, after model.World) {
	for i := len(before.Matches); i < len(after.Matches); i++ {
		metrics.RecordMatchSimulated()
	}
	retired := func(w model.World) int {
		n := 0
		for _, a := range w.Athletes {
			if a.Retired {
				n++
			}
		}
		return n
	}
	for i := retired(before); i < retired(after); i++ {
		metrics.RecordAthleteRetired()
	}
	former := func(w model.World) int {
		n := 0
		for _, m := range w.State.Managers {
			if m.FormerAthlete {
				n++
			}
		}
		return n
	}
	for i := former(before); i < former(after); i++ {
		metrics.RecordManagerConverted()
	}
	// New-year graduates are the only way the athlete pool grows mid-run.
	for i := len(before.Athletes); i < len(after.Athletes); i++ {
		metrics.RecordAcademyGraduate()
	}
	if before.State.PendingDecision == nil && after.State.PendingDecision != nil {
		metrics.RecordDecisionDrawn()
	}
}

// ResolveDecision applies the chosen option of the pending decision and
// swaps in the unblocked snapshot.
func (s *Service) ResolveDecision(ctx context.Context, optionIndex int) (model.World, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	world, err := s.store.World(ctx)
	if err != nil {
		return model.World{}, err
	}
	next, err := s.orch.ResolveDecision(world, optionIndex)
	if err != nil {
		return model.World{}, err
	}
	if err := s.store.Swap(ctx, next); err != nil {
		return model.World{}, err
	}
	metrics.RecordDecisionResolved()

	s.logger.Info(ctx, "decision resolved",
		logger.Int("option", optionIndex),
	)
	return next, nil
}

// SaveSlot stores the current world into the named slot.
func (s *Service) SaveSlot(ctx context.Context, slot string) error {
	world, err := s.store.World(ctx)
	if err != nil {
		return err
	}
	if err := s.slots.Save(ctx, slot, world); err != nil {
		return err
	}
	s.logger.Info(ctx, "world saved", logger.String("slot", slot))
	return nil
}

// LoadSlot resumes the world stored in the named slot.
func (s *Service) LoadSlot(ctx context.Context, slot string) (model.World, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	world, err := s.slots.Load(ctx, slot)
	if err != nil {
		return model.World{}, err
	}
	if err := s.store.Swap(ctx, world); err != nil {
		return model.World{}, err
	}
	s.logger.Info(ctx, "world loaded",
		logger.String("slot", slot),
		logger.Int("week", world.State.Week),
		logger.Int("year", world.State.Year),
	)
	return world, nil
}

// Slots lists the stored save slots.
func (s *Service) Slots(ctx context.Context) ([]storage.SlotInfo, error) {
	return s.slots.Slots(ctx)
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	ctx := context.Background()
	stats := map[string]interface{}{
		"started": s.started,
		"seed":    s.seed,
	}
	if s.store == nil {
		return stats
	}

	world, err := s.store.World(ctx)
	if err != nil {
		return stats
	}
	stats["week"] = world.State.Week
	stats["year"] = world.State.Year
	stats["cash"] = world.State.Cash
	stats["athletes"] = len(world.Athletes)
	stats["franchises"] = len(world.Franchises)
	stats["matchesRetained"] = len(world.Matches)
	stats["decisionPending"] = world.State.PendingDecision != nil
	stats["version"] = s.store.Version(ctx)
	return stats
}
