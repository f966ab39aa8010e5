// Package economy advances franchise valuation, share price, market
// sentiment, weekly revenue and facility-driven yearly effects.
package economy

import (
	"github.com/owenfield/frontoffice/internal/domain/facility"
	"github.com/owenfield/frontoffice/internal/domain/model"
	"github.com/owenfield/frontoffice/internal/domain/rng"
	"github.com/owenfield/frontoffice/internal/domain/types"
)

// Valuation walk constants.
const (
	performanceSwing   = 0.04 // applied above/below the win-percentage bands
	fluctuationBound   = 0.01 // uniform weekly noise, plus or minus
	performanceMinGame = 10   // games before performance factor applies
	hotWinPct          = 0.70
	coldWinPct         = 0.30
)

// Trend state machine probabilities.
const (
	trendRedrawChance = 0.15 // redraw uniformly between bullish/bearish
	trendResetChance  = 0.15 // reset to stable (cumulative 0.30)
)

// attendancePerRatingPoint scales franchise rating into weekly gate volume.
const attendancePerRatingPoint = 150

// Academy graduate boost steps per level above 1.
const (
	academySkillStepPerLevel     = 3
	academyPotentialStepPerLevel = 4
)

// AthleteFactory produces homegrown athletes at academy graduation time.
type AthleteFactory interface {
	GenerateAthlete(franchiseID string, isRookie, isYouth bool) model.Athlete
}

// Updater advances the franchise economy one week at a time.
type Updater struct {
	src         rng.Source
	factory     AthleteFactory
	ticketPrice float64
}

// Option applies a configuration option to the Updater.
type Option func(*Updater)

// WithTicketPrice overrides the league-wide ticket price parameter.
func WithTicketPrice(price float64) Option {
	return func(u *Updater) {
		if price > 0 {
			u.ticketPrice = price
		}
	}
}

// NewUpdater creates an Updater drawing from src and minting academy
// graduates through factory.
func NewUpdater(src rng.Source, factory AthleteFactory, opts ...Option) *Updater {
	u := &Updater{
		src:         src,
		factory:     factory,
		ticketPrice: 45,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Result bundles the advanced franchises with any academy graduates.
// Graduates are already appended to their franchise roster.
type Result struct {
	Franchises []model.Franchise
	Graduates  []model.Athlete
}

// Update advances every franchise one week. newYear triggers the yearly
// branches: win/loss reset, inflation applied to valuations, and one
// homegrown athlete per academy franchise. The inputs are not mutated.
func (u *Updater) Update(franchises []model.Franchise, athletes []model.Athlete, newYear bool, inflation float64) Result {
	idx := model.AthleteIndex(athletes)
	out := Result{Franchises: make([]model.Franchise, len(franchises))}

	for i, f := range franchises {
		f.Roster = append([]string(nil), f.Roster...)
		rating := model.FranchiseRating(model.RosterAthletes(f, athletes, idx))

		u.moveValuation(&f, newYear, inflation)
		u.moveTrend(&f)
		u.recomputeRevenue(&f, rating)

		if newYear {
			f.Wins, f.Losses = 0, 0
			if f.AcademyLevel > 0 {
				grad := u.graduate(f)
				f.Roster = append(f.Roster, grad.ID)
				out.Graduates = append(out.Graduates, grad)
			}
		}

		out.Franchises[i] = f
	}
	return out
}

// moveValuation applies the weekly random walk and recomputes share price.
func (u *Updater) moveValuation(f *model.Franchise, newYear bool, inflation float64) {
	factor := 1 + u.performanceFactor(f) + rng.Range(u.src, -fluctuationBound, fluctuationBound)
	if newYear {
		factor *= inflation
	}
	f.Valuation *= factor
	f.RecalcSharePrice()
}

// performanceFactor rewards hot teams and punishes cold ones once enough
// games are on the books.
func (u *Updater) performanceFactor(f *model.Franchise) float64 {
	if f.GamesPlayed() < performanceMinGame {
		return 0
	}
	switch pct := f.WinPct(); {
	case pct > hotWinPct:
		return performanceSwing
	case pct < coldWinPct:
		return -performanceSwing
	default:
		return 0
	}
}

// moveTrend runs the memoryless sentiment walk biased toward persistence.
func (u *Updater) moveTrend(f *model.Franchise) {
	switch r := u.src.Float64(); {
	case r < trendRedrawChance:
		if u.src.Float64() < 0.5 {
			f.Trend = types.Bullish
		} else {
			f.Trend = types.Bearish
		}
	case r < trendRedrawChance+trendResetChance:
		f.Trend = types.Stable
	}
}

// recomputeRevenue re-derives weekly gate revenue from franchise strength,
// ticket price and the stadium facility bonus. Amateur franchises never
// accrue revenue.
func (u *Updater) recomputeRevenue(f *model.Franchise, rating int) {
	if f.Amateur {
		f.WeeklyRevenue = 0
		return
	}
	price := f.TicketPrice
	if price <= 0 {
		price = u.ticketPrice
	}
	attendance := float64(rating * attendancePerRatingPoint)
	f.WeeklyRevenue = attendance * price * facility.StadiumRevenueMultiplier(f.StadiumLevel)
}

// graduate mints one homegrown youth, boosted by the academy level.
func (u *Updater) graduate(f model.Franchise) model.Athlete {
	a := u.factory.GenerateAthlete(f.ID, false, true)
	boost := facility.AcademyBoost(f.AcademyLevel)
	if boost > 0 {
		a.Skills.Scoring = clampSkill(a.Skills.Scoring + academySkillStepPerLevel*boost)
		a.Skills.Defense = clampSkill(a.Skills.Defense + academySkillStepPerLevel*boost)
		a.Skills.Playmaking = clampSkill(a.Skills.Playmaking + academySkillStepPerLevel*boost)
		a.Skills.Athleticism = clampSkill(a.Skills.Athleticism + academySkillStepPerLevel*boost)
		a.RecalcRating()
		a.Potential = clampSkill(a.Potential + academyPotentialStepPerLevel*boost)
		if a.Potential < a.Rating {
			a.Potential = a.Rating
		}
	}
	return a
}

func clampSkill(v int) int {
	if v > 99 {
		return 99
	}
	return v
}
