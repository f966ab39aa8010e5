package seasonharness

import (
	"fmt"
	"math"

	"github.com/owenfield/frontoffice/internal/domain/model"
	"github.com/owenfield/frontoffice/internal/domain/sim"
)

const sharePriceTolerance = 1e-6

// verifyWorld checks the snapshot invariants the engine must preserve on
// every transition. Violations are reported, not fixed.
func verifyWorld(w model.World) []string {
	var out []string

	if w.State.Week < 1 || w.State.Week > model.WeeksPerYear {
		out = append(out, fmt.Sprintf("week %d outside [1,%d]", w.State.Week, model.WeeksPerYear))
	}

	for _, a := range w.Athletes {
		if a.Rating != a.Skills.Mean() {
			out = append(out, fmt.Sprintf("athlete %s rating %d != skill mean %d", a.ID, a.Rating, a.Skills.Mean()))
		}
		if a.Injury.WeeksLeft < 0 {
			out = append(out, fmt.Sprintf("athlete %s negative injury weeks", a.ID))
		}
	}

	for _, f := range w.Franchises {
		if math.Abs(f.SharePrice-f.Valuation/model.SharePriceDivisor) > sharePriceTolerance {
			out = append(out, fmt.Sprintf("franchise %s share price %f != valuation/100", f.ID, f.SharePrice))
		}
		if f.UserShares < 0 || f.UserShares > 100 {
			out = append(out, fmt.Sprintf("franchise %s user shares %f outside [0,100]", f.ID, f.UserShares))
		}
	}

	for _, l := range w.State.Loans {
		if l.Balance < 0 {
			out = append(out, fmt.Sprintf("loan %s negative balance %f", l.ID, l.Balance))
		}
	}

	if n := len(w.State.Notifications); n > sim.DefaultNotificationCap {
		out = append(out, fmt.Sprintf("notifications %d above cap %d", n, sim.DefaultNotificationCap))
	}
	if n := len(w.Matches); n > sim.DefaultMatchHistoryCap {
		out = append(out, fmt.Sprintf("match history %d above cap %d", n, sim.DefaultMatchHistoryCap))
	}

	for _, m := range w.Matches {
		hs, as := 0, 0
		for q := 0; q < model.QuartersPerMatch; q++ {
			hs += m.HomeQuarters[q]
			as += m.AwayQuarters[q]
		}
		if hs != m.HomeScore || as != m.AwayScore {
			out = append(out, fmt.Sprintf("match %s quarter sums diverge from final score", m.ID))
		}
	}

	return out
}
