package sim

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/owenfield/frontoffice/internal/domain/model"
	"github.com/owenfield/frontoffice/internal/domain/rng"
	"github.com/owenfield/frontoffice/internal/domain/types"
)

// LeagueParams shapes the generated world.
type LeagueParams struct {
	LeagueSize   int // professional franchises, must be even
	AmateurCount int // university/feeder franchises
	RosterSize   int
	ClientCount  int // agency clients signed at generation time
	StartingCash float64
}

// DefaultLeagueParams mirrors the standard new-game setup.
func DefaultLeagueParams() LeagueParams {
	return LeagueParams{
		LeagueSize:   16,
		AmateurCount: 4,
		RosterSize:   12,
		ClientCount:  5,
		StartingCash: 150_000,
	}
}

var cityNames = []string{
	"Harbor City", "Ridgeport", "Kingsvale", "Dunmore", "Eastbrook",
	"Silver Bay", "Crownfield", "Marrow Falls", "Westhaven", "Ashford",
	"Port Loman", "Violet Hills", "Copper Creek", "Northgate", "Lakemont",
	"Redwater", "Brookhollow", "Stonereach", "Fairwind", "Caldera",
}

var teamNames = []string{
	"Breakers", "Monarchs", "Stags", "Vipers", "Comets",
	"Wardens", "Pioneers", "Talons", "Sentinels", "Drifters",
	"Cyclones", "Mariners", "Ironbacks", "Howlers", "Spectres",
	"Raptors", "Summit", "Chargers", "Gliders", "Foxes",
}

var universityNames = []string{
	"St. Aldric University", "Meridian Tech", "Calloway State", "Lakeshore College",
	"Northfield Institute", "Brampton University", "Ellsworth College", "Grandview State",
}

var conferences = [2]string{"East", "West"}
var divisions = [2]string{"Atlantic", "Pacific"}

// Franchise bootstrap ranges.
const (
	valuationMin = 4_000_000.0
	valuationMax = 12_000_000.0
	facilityMin  = 1
	facilityMax  = 3 // new worlds never start with maxed facilities
)

// veteransPerRoster is the split of the generated roster; the rest are rookies.
const veteransPerRoster = 9

// NewWorld generates a fresh consistent snapshot: a professional league, an
// amateur feeder tier, full rosters and a handful of signed clients on the
// strongest rookies.
func (o *Orchestrator) NewWorld(p LeagueParams) model.World {
	w := model.World{
		State: model.GameState{
			Week:        1,
			Year:        1,
			Cash:        p.StartingCash,
			Reputation:  10,
			Influence:   5,
			OfficeLevel: 1,
			LeaguePhase: types.RegularSeason,
			DraftPhase:  types.DraftIdle,
		},
	}

	names := make([]string, 0, len(cityNames))
	for i := range cityNames {
		names = append(names, cityNames[i]+" "+teamNames[i])
	}
	o.src.Shuffle(len(names), func(i, j int) { names[i], names[j] = names[j], names[i] })

	for i := 0; i < p.LeagueSize; i++ {
		f := o.newFranchise(nameAt(names, i), false)
		f.Conference = conferences[i%2]
		f.Division = divisions[(i/2)%2]
		o.fillRoster(&f, &w, p.RosterSize)
		w.Franchises = append(w.Franchises, f)
	}
	for i := 0; i < p.AmateurCount; i++ {
		f := o.newFranchise(nameAt(universityNames, i), true)
		o.fillRoster(&f, &w, p.RosterSize)
		w.Franchises = append(w.Franchises, f)
	}

	o.signClients(&w, p.ClientCount)
	return w
}

// newFranchise creates one franchise with randomized valuation and modest
// starting facilities. Amateur franchises never accrue revenue.
func (o *Orchestrator) newFranchise(name string, amateur bool) model.Franchise {
	f := model.Franchise{
		ID:            uuid.NewString(),
		Name:          name,
		Valuation:     rng.Range(o.src, valuationMin, valuationMax),
		TicketPrice:   o.ticketPrice,
		Trend:         types.Stable,
		StadiumLevel:  rng.IntRange(o.src, facilityMin, facilityMax),
		MedicalLevel:  rng.IntRange(o.src, facilityMin, facilityMax),
		ScoutingLevel: rng.IntRange(o.src, facilityMin, facilityMax),
		AcademyLevel:  rng.IntRange(o.src, facilityMin, facilityMax),
		Amateur:       amateur,
	}
	f.RecalcSharePrice()
	return f
}

// fillRoster generates a mixed veteran/rookie roster, or all-youth for
// amateur franchises.
func (o *Orchestrator) fillRoster(f *model.Franchise, w *model.World, size int) {
	for i := 0; i < size; i++ {
		var a model.Athlete
		switch {
		case f.Amateur:
			a = o.generator.GenerateAthlete(f.ID, false, true)
		case i < veteransPerRoster:
			a = o.generator.GenerateAthlete(f.ID, false, false)
		default:
			a = o.generator.GenerateAthlete(f.ID, true, false)
		}
		w.Athletes = append(w.Athletes, a)
		f.Roster = append(f.Roster, a.ID)
	}
}

// signClients flags the highest-potential professional rookies as agency
// clients.
func (o *Orchestrator) signClients(w *model.World, count int) {
	best := make([]int, 0, count)
	for i, a := range w.Athletes {
		if !a.IsRookie {
			continue
		}
		best = append(best, i)
	}
	// Selection sort on potential; the candidate pool is small.
	for s := 0; s < len(best) && s < count; s++ {
		top := s
		for t := s + 1; t < len(best); t++ {
			if w.Athletes[best[t]].Potential > w.Athletes[best[top]].Potential {
				top = t
			}
		}
		best[s], best[top] = best[top], best[s]
		w.Athletes[best[s]].IsClient = true
	}
}

// nameAt indexes a name pool, suffixing on wraparound so oversized leagues
// still get unique names.
func nameAt(pool []string, i int) string {
	if i < len(pool) {
		return pool[i]
	}
	return fmt.Sprintf("%s %d", pool[i%len(pool)], i/len(pool)+1)
}
