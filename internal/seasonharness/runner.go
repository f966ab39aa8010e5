// Package seasonharness fast-forwards whole campaigns through the weekly
// engine, checking snapshot invariants along the way. It exercises the
// engine the way a long-running game would, across many seeds at once.
package seasonharness

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/owenfield/frontoffice/internal/domain/model"
	"github.com/owenfield/frontoffice/internal/domain/rng"
	"github.com/owenfield/frontoffice/internal/domain/sim"
	"github.com/owenfield/frontoffice/pkg/logger"
)

// Run executes the configured number of campaign trials concurrently and
// logs the aggregate report. A trial with invariant violations fails the
// whole run.
func Run(ctx context.Context, config *Config) error {
	start := time.Now()
	logger.Get().Info(ctx, "starting season fast-forward",
		logger.Int("trials", config.Trials),
		logger.Int("years", config.Years),
		logger.Int("workers", config.Workers),
		logger.Int64("seed", config.Seed),
	)

	results := make([]TrialResult, config.Trials)
	trials := make(chan int)
	var wg sync.WaitGroup

	for w := 0; w < config.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range trials {
				results[i] = runTrial(ctx, config, i)
			}
		}()
	}

	for i := 0; i < config.Trials; i++ {
		select {
		case <-ctx.Done():
			close(trials)
			wg.Wait()
			return fmt.Errorf("fast-forward canceled: %w", ctx.Err())
		case trials <- i:
		}
	}
	close(trials)
	wg.Wait()

	report := aggregate(results)
	logReport(ctx, config, report, results, time.Since(start))

	if report.Violations > 0 {
		return fmt.Errorf("%d invariant violations across %d trials", report.Violations, report.Trials)
	}
	return nil
}

// runTrial fast-forwards one campaign. Pending decisions are auto-resolved
// with the first option so the gate can never starve the run.
func runTrial(ctx context.Context, config *Config, trial int) TrialResult {
	seed := config.Seed + int64(trial)
	orch := sim.New(rng.New(seed))
	world := orch.NewWorld(sim.DefaultLeagueParams())

	res := TrialResult{Trial: trial, Seed: seed}
	baseAthletes := len(world.Athletes)

	weeks := config.Years * model.WeeksPerYear
	for i := 0; i < weeks; i++ {
		if ctx.Err() != nil {
			break
		}
		next, err := orch.AdvanceWeek(world)
		if err != nil {
			res.Violations = append(res.Violations, fmt.Sprintf("week %d: %v", i, err))
			break
		}
		world = next
		res.WeeksAdvanced++

		if world.State.PendingDecision != nil {
			res.Decisions++
			world, err = orch.ResolveDecision(world, 0)
			if err != nil {
				res.Violations = append(res.Violations, fmt.Sprintf("resolve week %d: %v", i, err))
				break
			}
		}
		if world.State.Bankrupt() {
			res.WentBankrupt = true
		}
		res.Violations = append(res.Violations, verifyWorld(world)...)
	}

	for _, a := range world.Athletes {
		if a.Retired {
			res.Retirements++
		}
	}
	res.Graduates = len(world.Athletes) - baseAthletes
	res.FinalCash = world.State.Cash
	res.Champion = champion(world)

	if config.Verbose {
		logger.Get().Info(ctx, "trial finished",
			logger.Int("trial", trial),
			logger.Int("weeks", res.WeeksAdvanced),
			logger.Float64("finalCash", res.FinalCash),
			logger.String("champion", res.Champion),
			logger.Int("violations", len(res.Violations)),
		)
	}
	return res
}

// champion names the professional franchise with the best current record.
func champion(w model.World) string {
	best, bestPct := "", -1.0
	for _, f := range w.Franchises {
		if f.Amateur {
			continue
		}
		if pct := f.WinPct(); pct > bestPct {
			best, bestPct = f.Name, pct
		}
	}
	return best
}
