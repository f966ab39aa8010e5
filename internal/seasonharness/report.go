package seasonharness

import (
	"context"
	"sort"
	"time"

	"github.com/owenfield/frontoffice/pkg/logger"
)

// aggregate folds trial results into one report.
func aggregate(results []TrialResult) Report {
	r := Report{
		Trials:    len(results),
		Champions: make(map[string]int),
	}
	total := 0.0
	for _, t := range results {
		r.WeeksAdvanced += t.WeeksAdvanced
		r.Decisions += t.Decisions
		r.Retirements += t.Retirements
		r.Graduates += t.Graduates
		r.Violations += len(t.Violations)
		if t.WentBankrupt {
			r.Bankruptcies++
		}
		if t.Champion != "" {
			r.Champions[t.Champion]++
		}
		total += t.FinalCash
	}
	if r.Trials > 0 {
		r.MeanFinalCash = total / float64(r.Trials)
	}
	return r
}

// logReport writes the aggregate summary, then each violation with its
// trial seed so failures can be replayed.
func logReport(ctx context.Context, config *Config, report Report, results []TrialResult, elapsed time.Duration) {
	logger.Get().Info(ctx, "fast-forward complete",
		logger.Int("trials", report.Trials),
		logger.Int("weeksAdvanced", report.WeeksAdvanced),
		logger.Int("decisions", report.Decisions),
		logger.Int("retirements", report.Retirements),
		logger.Int("graduates", report.Graduates),
		logger.Int("bankruptcies", report.Bankruptcies),
		logger.Float64("meanFinalCash", report.MeanFinalCash),
		logger.Int("violations", report.Violations),
		logger.Duration("elapsed", elapsed),
	)

	if len(report.Champions) > 0 {
		type tally struct {
			name  string
			count int
		}
		tallies := make([]tally, 0, len(report.Champions))
		for name, count := range report.Champions {
			tallies = append(tallies, tally{name, count})
		}
		sort.Slice(tallies, func(i, j int) bool { return tallies[i].count > tallies[j].count })
		top := tallies[0]
		logger.Get().Info(ctx, "most frequent champion",
			logger.String("franchise", top.name),
			logger.Int("titles", top.count),
		)
	}

	for _, t := range results {
		for _, v := range t.Violations {
			logger.Get().Error(ctx, "invariant violation",
				logger.Int("trial", t.Trial),
				logger.Int64("seed", t.Seed),
				logger.String("violation", v),
			)
		}
	}
}
