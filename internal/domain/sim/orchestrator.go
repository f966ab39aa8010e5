// Package sim is the weekly engine: a pure transition from the world
// snapshot at week N to the snapshot at week N+1.
package sim

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/owenfield/frontoffice/internal/domain/economy"
	"github.com/owenfield/frontoffice/internal/domain/facility"
	"github.com/owenfield/frontoffice/internal/domain/gen"
	"github.com/owenfield/frontoffice/internal/domain/ledger"
	"github.com/owenfield/frontoffice/internal/domain/lifecycle"
	"github.com/owenfield/frontoffice/internal/domain/lifeevent"
	"github.com/owenfield/frontoffice/internal/domain/matchsim"
	"github.com/owenfield/frontoffice/internal/domain/model"
	"github.com/owenfield/frontoffice/internal/domain/rng"
	"github.com/owenfield/frontoffice/internal/domain/types"
)

// Retention caps; oldest entries are evicted first.
const (
	DefaultNotificationCap = 30
	DefaultMatchHistoryCap = 400
)

// DefaultDecisionChance is the weekly probability of a life event firing.
const DefaultDecisionChance = 0.08

// Yearly inflation factor bounds, sampled once per new-year transition.
const (
	DefaultInflationMin = 1.03
	DefaultInflationMax = 1.07
)

// Orchestrator composes the generator, economy, lifecycle, match and
// life-event components into one atomic weekly transition. It holds no
// world state; everything is passed in and returned.
type Orchestrator struct {
	src rng.Source

	generator *gen.Generator
	economy   *economy.Updater
	lifecycle *lifecycle.Updater
	simulator *matchsim.Simulator
	drawer    *lifeevent.Drawer

	ledgerParams    ledger.Params
	decisionChance  float64
	notificationCap int
	matchHistoryCap int
	inflationMin    float64
	inflationMax    float64
	ticketPrice     float64
}

// Option applies a configuration option to the Orchestrator.
type Option func(*Orchestrator)

// WithLedgerParams overrides the weekly ledger constants.
func WithLedgerParams(p ledger.Params) Option {
	return func(o *Orchestrator) { o.ledgerParams = p }
}

// WithDecisionChance overrides the weekly life-event probability.
func WithDecisionChance(chance float64) Option {
	return func(o *Orchestrator) {
		if chance >= 0 && chance <= 1 {
			o.decisionChance = chance
		}
	}
}

// WithNotificationCap overrides the retained-notification bound.
func WithNotificationCap(n int) Option {
	return func(o *Orchestrator) {
		if n > 0 {
			o.notificationCap = n
		}
	}
}

// WithMatchHistoryCap overrides the retained-match bound.
func WithMatchHistoryCap(n int) Option {
	return func(o *Orchestrator) {
		if n > 0 {
			o.matchHistoryCap = n
		}
	}
}

// WithInflationRange overrides the yearly inflation sampling bounds.
func WithInflationRange(lo, hi float64) Option {
	return func(o *Orchestrator) {
		if lo >= 1 && hi >= lo {
			o.inflationMin, o.inflationMax = lo, hi
		}
	}
}

// WithTicketPrice overrides the league ticket price used for gate revenue.
// Applied when the economy updater is built, so it only has effect as a
// construction-time option.
func WithTicketPrice(price float64) Option {
	return func(o *Orchestrator) {
		if price > 0 {
			o.ticketPrice = price
		}
	}
}

// New creates an Orchestrator with every component drawing from the single
// injected randomness source.
func New(src rng.Source, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		src: src,
		ledgerParams: ledger.Params{
			BaseOverhead:  2000,
			RentPerLevel:  1500,
			UpkeepPerItem: 75,
			DividendYield: 0.05,
		},
		decisionChance:  DefaultDecisionChance,
		notificationCap: DefaultNotificationCap,
		matchHistoryCap: DefaultMatchHistoryCap,
		inflationMin:    DefaultInflationMin,
		inflationMax:    DefaultInflationMax,
		ticketPrice:     45,
	}
	for _, opt := range opts {
		opt(o)
	}

	o.generator = gen.NewGenerator(src)
	o.economy = economy.NewUpdater(src, o.generator, economy.WithTicketPrice(o.ticketPrice))
	o.lifecycle = lifecycle.NewUpdater(src, o.generator)
	o.simulator = matchsim.NewSimulator(src)
	o.drawer = lifeevent.NewDrawer(src)
	return o
}

// AdvanceWeek derives the week-N+1 snapshot from the week-N snapshot. The
// input world is never mutated; callers swap in the returned world whole.
// Advancing while a decision is pending is a caller error.
func (o *Orchestrator) AdvanceWeek(w model.World) (model.World, error) {
	if w.State.PendingDecision != nil {
		return model.World{}, ErrDecisionPending
	}

	next := w.Clone()

	week, year := w.State.Week+1, w.State.Year
	newYear := week > model.WeeksPerYear
	inflation := 1.0
	if newYear {
		week, year = 1, year+1
		inflation = rng.Range(o.src, o.inflationMin, o.inflationMax)
	}
	next.State.Week, next.State.Year = week, year

	// Interest is charged on the pre-accrual balances, then capitalized.
	// The rest of the ledger is settled after the economy and lifecycle
	// passes, so dividends track this week's franchise revenue and
	// commissions this week's salaries.
	interest := ledger.Interest(next.State.Loans)
	next.State.Loans = ledger.AccrueLoans(next.State.Loans)

	skipAging := o.runEconomy(&next, newYear, inflation)
	o.runLifecycle(&next, newYear, inflation, skipAging)
	o.runMatches(&next)
	o.runScouting(&next)
	o.drawDecision(&next)

	report := ledger.Compute(next.State, next.Athletes, next.Franchises, interest, o.ledgerParams)
	next.State.Cash += report.Net
	if next.State.Bankrupt() {
		o.notify(&next, "Insolvency", "The agency's debts have crossed the point of no return.", types.NoteBreaking)
	}

	o.truncate(&next)
	return next, nil
}

// runEconomy advances franchises and folds academy graduates into the
// athlete pool. Returns the IDs exempt from aging this transition.
func (o *Orchestrator) runEconomy(w *model.World, newYear bool, inflation float64) map[string]bool {
	res := o.economy.Update(w.Franchises, w.Athletes, newYear, inflation)
	w.Franchises = res.Franchises

	skipAging := make(map[string]bool, len(res.Graduates))
	fidx := model.FranchiseIndex(w.Franchises)
	for _, grad := range res.Graduates {
		w.Athletes = append(w.Athletes, grad)
		skipAging[grad.ID] = true
		if i, ok := fidx[grad.FranchiseID]; ok {
			o.notify(w, "Academy graduation",
				fmt.Sprintf("%s has graduated into the %s first team.", grad.Name, w.Franchises[i].Name),
				types.NoteInfo)
		}
	}
	return skipAging
}

// runLifecycle ages, retires and heals athletes, folding new managers and
// retirement news into the snapshot and retirees out of rosters.
func (o *Orchestrator) runLifecycle(w *model.World, newYear bool, inflation float64, skipAging map[string]bool) {
	res := o.lifecycle.Update(w.Athletes, w.Franchises, w.State.Week, w.State.Year, newYear, inflation, skipAging)
	w.Athletes = res.Athletes
	w.State.Managers = append(w.State.Managers, res.NewManagers...)
	w.State.Notifications = append(w.State.Notifications, res.Notifications...)

	if len(res.RetiredIDs) == 0 {
		return
	}
	retired := make(map[string]bool, len(res.RetiredIDs))
	for _, id := range res.RetiredIDs {
		retired[id] = true
	}
	for i := range w.Franchises {
		kept := w.Franchises[i].Roster[:0]
		for _, id := range w.Franchises[i].Roster {
			if !retired[id] {
				kept = append(kept, id)
			}
		}
		w.Franchises[i].Roster = kept
	}
}

// runMatches pairs the professional field and resolves the week's fixtures,
// crediting season stats and applying surviving injury candidates.
func (o *Orchestrator) runMatches(w *model.World) {
	if w.State.LeaguePhase != types.RegularSeason {
		return
	}

	pros := make([]int, 0, len(w.Franchises))
	for i, f := range w.Franchises {
		if !f.Amateur {
			pros = append(pros, i)
		}
	}
	o.src.Shuffle(len(pros), func(i, j int) { pros[i], pros[j] = pros[j], pros[i] })

	aidx := model.AthleteIndex(w.Athletes)
	fidx := model.FranchiseIndex(w.Franchises)
	for p := 0; p+1 < len(pros); p += 2 {
		home, away := &w.Franchises[pros[p]], &w.Franchises[pros[p+1]]
		res := o.simulator.Simulate(*home, *away, w.Athletes, aidx, w.State.Week, w.State.Year, types.MatchRegular)

		if res.Match.HomeScore > res.Match.AwayScore {
			home.Wins++
			away.Losses++
		} else {
			away.Wins++
			home.Losses++
		}
		w.Matches = append(w.Matches, res.Match)

		for _, d := range res.Deltas {
			if i, ok := aidx[d.AthleteID]; ok {
				stats := &w.Athletes[i].SeasonStats
				stats.Points += d.Points
				stats.Rebounds += d.Rebounds
				stats.Assists += d.Assists
				stats.GamesPlayed += d.GamesPlayed
			}
		}
		o.applyInjuries(w, res.Risks, aidx, fidx)
	}
}

// applyInjuries runs the medical-staff prevention check against each injury
// candidate and sidelines the athletes whose checks fail.
func (o *Orchestrator) applyInjuries(w *model.World, risks []model.InjuryRisk, aidx, fidx map[string]int) {
	for _, r := range risks {
		level := facility.MinLevel
		if i, ok := fidx[r.FranchiseID]; ok {
			level = w.Franchises[i].MedicalLevel
		}
		if o.src.Float64() < facility.MedicalRecoveryChance(level) {
			continue // medical staff caught it early
		}
		i, ok := aidx[r.AthleteID]
		if !ok {
			continue
		}
		w.Athletes[i].Injury = model.InjuryState{WeeksLeft: r.Weeks, Kind: r.Kind, Chronic: r.Chronic}
		if w.Athletes[i].IsClient {
			o.notify(w, "Injury report",
				fmt.Sprintf("%s is out for %d weeks with a %s.", w.Athletes[i].Name, r.Weeks, r.Kind),
				types.NoteInfo)
		}
	}
}

// runScouting credits the weekly scouting-point yield from the managed
// franchise's scouting department.
func (o *Orchestrator) runScouting(w *model.World) {
	if w.State.ManagedFranchiseID == "" {
		return
	}
	fidx := model.FranchiseIndex(w.Franchises)
	if i, ok := fidx[w.State.ManagedFranchiseID]; ok {
		w.State.ScoutingPoints += facility.ScoutingPointYield(w.Franchises[i].ScoutingLevel)
	}
}

// drawDecision rolls the weekly life-event gate and, on a hit, binds a
// pending decision to one rostered client.
func (o *Orchestrator) drawDecision(w *model.World) {
	if w.State.PendingDecision != nil {
		return
	}
	candidates := lifeevent.Candidates(w.Athletes)
	if len(candidates) == 0 {
		return
	}
	if o.src.Float64() >= o.decisionChance {
		return
	}
	w.State.PendingDecision = o.drawer.Draw(candidates, w.State.Week, w.State.Year)
}

// ResolveDecision applies the chosen option's effects to the targeted
// athlete and the snapshot scalars, then clears the pending decision.
func (o *Orchestrator) ResolveDecision(w model.World, optionIndex int) (model.World, error) {
	d := w.State.PendingDecision
	if d == nil {
		return model.World{}, ErrNoDecisionPending
	}
	if optionIndex < 0 || optionIndex >= len(d.Options) {
		return model.World{}, ErrInvalidOption
	}

	next := w.Clone()
	opt := next.State.PendingDecision.Options[optionIndex]

	next.State.Cash += opt.CashDelta
	next.State.Reputation += opt.ReputationDelta
	next.State.Influence += opt.InfluenceDelta

	idx := model.AthleteIndex(next.Athletes)
	i, ok := idx[d.AthleteID]
	if !ok {
		return model.World{}, ErrUnknownAthlete
	}
	a := &next.Athletes[i]
	if opt.RatingDelta != 0 {
		a.Skills.Scoring = clampAxis(a.Skills.Scoring + opt.RatingDelta)
		a.Skills.Defense = clampAxis(a.Skills.Defense + opt.RatingDelta)
		a.Skills.Playmaking = clampAxis(a.Skills.Playmaking + opt.RatingDelta)
		a.Skills.Athleticism = clampAxis(a.Skills.Athleticism + opt.RatingDelta)
		a.RecalcRating()
	}
	a.Loyalty = clampHundred(a.Loyalty + opt.LoyaltyDelta)
	a.Morale = clampHundred(a.Morale + opt.MoraleDelta)
	if opt.PotentialDelta != 0 {
		a.Potential = clampAxis(a.Potential + opt.PotentialDelta)
		if a.Potential < a.Rating {
			a.Potential = a.Rating
		}
	}

	o.notify(&next, d.Title,
		fmt.Sprintf("%s: chose to %q.", a.Name, opt.Label),
		types.NoteInfo)
	next.State.PendingDecision = nil
	o.truncate(&next)
	return next, nil
}

// notify appends a dated notification to the snapshot.
func (o *Orchestrator) notify(w *model.World, title, body string, kind types.NotificationKind) {
	w.State.Notifications = append(w.State.Notifications, model.Notification{
		ID:    uuid.NewString(),
		Week:  w.State.Week,
		Year:  w.State.Year,
		Title: title,
		Body:  body,
		Kind:  kind,
	})
}

// truncate enforces the retention caps, dropping the oldest entries.
func (o *Orchestrator) truncate(w *model.World) {
	if n := len(w.State.Notifications); n > o.notificationCap {
		w.State.Notifications = append([]model.Notification(nil), w.State.Notifications[n-o.notificationCap:]...)
	}
	if n := len(w.Matches); n > o.matchHistoryCap {
		w.Matches = append([]model.Match(nil), w.Matches[n-o.matchHistoryCap:]...)
	}
}

func clampAxis(v int) int {
	switch {
	case v < 0:
		return 0
	case v > 99:
		return 99
	}
	return v
}

func clampHundred(v int) int {
	switch {
	case v < 0:
		return 0
	case v > 100:
		return 100
	}
	return v
}
