// Package lifecycle ages athletes, retires them, converts retirees into
// managers and runs weekly injury recovery.
package lifecycle

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/owenfield/frontoffice/internal/domain/facility"
	"github.com/owenfield/frontoffice/internal/domain/model"
	"github.com/owenfield/frontoffice/internal/domain/rng"
	"github.com/owenfield/frontoffice/internal/domain/types"
)

// Retirement and market-value scaling thresholds.
const (
	legendRating           = 85   // breaking-news retirement coverage
	managerConversionFloor = 70   // rating above this converts into a manager
	premiumRating          = 80   // market value inflates faster above this
	premiumValueFactor     = 1.02 // extra yearly market-value multiplier
)

// Converter derives a Manager from a retiring athlete's final skills.
type Converter interface {
	ConvertAthleteToManager(a model.Athlete) model.Manager
}

// Updater runs the weekly and yearly career transitions.
type Updater struct {
	src       rng.Source
	converter Converter
}

// NewUpdater creates an Updater drawing injury-recovery rolls from src and
// minting managers through converter.
func NewUpdater(src rng.Source, converter Converter) *Updater {
	return &Updater{src: src, converter: converter}
}

// Result carries the advanced athletes plus everything the transition spawned.
type Result struct {
	Athletes      []model.Athlete
	NewManagers   []model.Manager
	Notifications []model.Notification
	RetiredIDs    []string
}

// Update advances every athlete one week. On a new year athletes age,
// contracts inflate, season stats reset and retirements fire; aging always
// precedes the retirement check within the same pass. skipAging exempts
// athletes created during this very transition (academy graduates).
// The input slice is not mutated.
func (u *Updater) Update(athletes []model.Athlete, franchises []model.Franchise, week, year int, newYear bool, inflation float64, skipAging map[string]bool) Result {
	fidx := model.FranchiseIndex(franchises)
	out := Result{Athletes: make([]model.Athlete, len(athletes))}

	for i, a := range athletes {
		if newYear && !a.Retired {
			if !skipAging[a.ID] {
				a.Age++
				a.Salary *= inflation
				a.MarketValue *= u.valueInflation(a.Rating, inflation)
			}
			a.SeasonStats = model.SeasonStats{}

			if a.Age >= a.RetirementAge {
				u.retire(&a, week, year, &out)
			}
		}

		u.recover(&a, franchises, fidx)
		out.Athletes[i] = a
	}
	return out
}

// valueInflation scales market value faster for premium athletes.
func (u *Updater) valueInflation(rating int, inflation float64) float64 {
	if rating > premiumRating {
		return inflation * premiumValueFactor
	}
	return inflation
}

// retire flags the athlete, queues the news and converts notable careers
// into the manager pool.
func (u *Updater) retire(a *model.Athlete, week, year int, out *Result) {
	a.Retired = true
	a.FranchiseID = ""
	a.Injury = model.InjuryState{}
	out.RetiredIDs = append(out.RetiredIDs, a.ID)

	out.Notifications = append(out.Notifications, model.Notification{
		ID:    uuid.NewString(),
		Week:  week,
		Year:  year,
		Title: "Retirement",
		Body:  fmt.Sprintf("%s has retired at age %d.", a.Name, a.Age),
		Kind:  types.NoteInfo,
	})
	if a.Rating >= legendRating {
		out.Notifications = append(out.Notifications, model.Notification{
			ID:    uuid.NewString(),
			Week:  week,
			Year:  year,
			Title: "A legend hangs it up",
			Body:  fmt.Sprintf("%s retires as one of the all-time greats.", a.Name),
			Kind:  types.NoteBreaking,
		})
	}

	if a.Rating > managerConversionFloor || a.IsClient {
		out.NewManagers = append(out.NewManagers, u.converter.ConvertAthleteToManager(*a))
	}
}

// recover runs the single injury-recovery path, keyed by athlete identity.
// The medical facility of the athlete's franchise may shave an extra week;
// free agents recover at the base rate.
func (u *Updater) recover(a *model.Athlete, franchises []model.Franchise, fidx map[string]int) {
	if a.Injury.WeeksLeft <= 0 {
		return
	}

	level := facility.MinLevel
	if i, ok := fidx[a.FranchiseID]; ok {
		level = franchises[i].MedicalLevel
	}

	step := 1
	if u.src.Float64() < facility.MedicalRecoveryChance(level) {
		step = 2
	}
	a.Injury.WeeksLeft -= step
	if a.Injury.WeeksLeft <= 0 {
		a.Injury.WeeksLeft = 0
		if !a.Injury.Chronic {
			a.Injury = model.InjuryState{}
		}
	}
}
