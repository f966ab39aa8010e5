// Package matchsim resolves one fixture into a final score, quarter splits,
// a box score and the stat/injury consequences for the orchestrator to apply.
package matchsim

import (
	"math"
	"sort"

	"github.com/google/uuid"

	"github.com/owenfield/frontoffice/internal/domain/model"
	"github.com/owenfield/frontoffice/internal/domain/rng"
	"github.com/owenfield/frontoffice/internal/domain/types"
)

// Quarter-score formula constants.
const (
	quarterBaseline  = 22.0
	powerPivot       = 75.0
	powerWeight      = 0.5
	powerJitterBound = 5.0 // teamPower = rating ± this
	quarterNoise     = 6.0
)

// Rotation sizes and minute bands.
const (
	rotationSize  = 10
	starterCount  = 5
	starterMinLow = 30
	starterMinHi  = 40
	benchMinLow   = 10
	benchMinHi    = 20
)

// Box-line production per skill point per minute.
const (
	pointsPerSkillMinute   = 0.30
	reboundsPerSkillMinute = 0.12
	assistsPerSkillMinute  = 0.11
	regulationMinutes      = 40.0
)

// Injury candidate parameters.
const (
	injuryChancePerAppearance = 0.02
	injuryWeeksMin            = 1
	injuryWeeksMax            = 6
	chronicChance             = 0.20 // only for injuries at the long end
)

var injuryKinds = []string{
	"ankle sprain",
	"hamstring strain",
	"knee soreness",
	"back spasms",
	"wrist fracture",
	"calf strain",
}

// Simulator resolves fixtures from an injected randomness source.
type Simulator struct {
	src rng.Source
}

// NewSimulator creates a Simulator drawing from src.
func NewSimulator(src rng.Source) *Simulator {
	return &Simulator{src: src}
}

// Result is one resolved fixture. Deltas and Risks are returned rather than
// applied so the caller stays the single writer of athlete state.
type Result struct {
	Match  model.Match
	Deltas []model.StatDelta
	Risks  []model.InjuryRisk
}

// Simulate resolves one fixture between home and away at the given week.
// Injured athletes never enter the rotation; a short-handed franchise still
// plays with whoever is left. Ties are broken in overtime, folded into the
// fourth-quarter totals so quarters always sum to the final score.
func (s *Simulator) Simulate(home, away model.Franchise, athletes []model.Athlete, idx map[string]int, week, year int, kind types.MatchKind) Result {
	homeRoster := rotation(model.RosterAthletes(home, athletes, idx))
	awayRoster := rotation(model.RosterAthletes(away, athletes, idx))

	m := model.Match{
		ID:     uuid.NewString(),
		HomeID: home.ID,
		AwayID: away.ID,
		Week:   week,
		Year:   year,
		Kind:   kind,
	}

	homePower := s.teamPower(model.FranchiseRating(homeRoster))
	awayPower := s.teamPower(model.FranchiseRating(awayRoster))
	for q := 0; q < model.QuartersPerMatch; q++ {
		m.HomeQuarters[q] = s.quarterScore(homePower)
		m.AwayQuarters[q] = s.quarterScore(awayPower)
		m.HomeScore += m.HomeQuarters[q]
		m.AwayScore += m.AwayQuarters[q]
	}
	for m.HomeScore == m.AwayScore {
		h := rng.IntRange(s.src, 4, 12)
		a := rng.IntRange(s.src, 4, 12)
		m.HomeQuarters[model.QuartersPerMatch-1] += h
		m.AwayQuarters[model.QuartersPerMatch-1] += a
		m.HomeScore += h
		m.AwayScore += a
	}

	res := Result{}
	res.Deltas = make([]model.StatDelta, 0, len(homeRoster)+len(awayRoster))
	for _, a := range homeRoster {
		s.playLine(a, &m, &res)
	}
	for _, a := range awayRoster {
		s.playLine(a, &m, &res)
	}

	m.PlayerOfMatch = playerOfMatch(m.BoxScore)
	res.Match = m
	return res
}

// teamPower perturbs the franchise rating once per side per match.
func (s *Simulator) teamPower(rating int) float64 {
	return float64(rating) + rng.Range(s.src, -powerJitterBound, powerJitterBound)
}

// quarterScore samples one side's quarter, floored at zero.
func (s *Simulator) quarterScore(power float64) int {
	raw := quarterBaseline + (power-powerPivot)*powerWeight + rng.Range(s.src, -quarterNoise, quarterNoise)
	if raw < 0 {
		return 0
	}
	return int(math.Round(raw))
}

// rotation picks the top available athletes by rating, at most ten.
func rotation(roster []model.Athlete) []model.Athlete {
	pool := make([]model.Athlete, 0, len(roster))
	for _, a := range roster {
		if a.Available() {
			pool = append(pool, a)
		}
	}
	sort.SliceStable(pool, func(i, j int) bool { return pool[i].Rating > pool[j].Rating })
	if len(pool) > rotationSize {
		pool = pool[:rotationSize]
	}
	return pool
}

// playLine simulates one athlete's minutes and production, appending the box
// line, the season-stat delta and any injury candidate.
func (s *Simulator) playLine(a model.Athlete, m *model.Match, res *Result) {
	starter := countSide(m.BoxScore, a.FranchiseID) < starterCount

	minutes := rng.IntRange(s.src, benchMinLow, benchMinHi)
	if starter {
		minutes = rng.IntRange(s.src, starterMinLow, starterMinHi)
	}
	share := float64(minutes) / regulationMinutes

	line := model.BoxLine{
		AthleteID:   a.ID,
		Name:        a.Name,
		FranchiseID: a.FranchiseID,
		Minutes:     minutes,
		Points:      produce(s.src, float64(a.Skills.Scoring), share, pointsPerSkillMinute),
		Rebounds:    produce(s.src, float64(a.Skills.Athleticism+a.Skills.Defense)/2, share, reboundsPerSkillMinute),
		Assists:     produce(s.src, float64(a.Skills.Playmaking), share, assistsPerSkillMinute),
	}
	m.BoxScore = append(m.BoxScore, line)

	res.Deltas = append(res.Deltas, model.StatDelta{
		AthleteID:   a.ID,
		Points:      line.Points,
		Rebounds:    line.Rebounds,
		Assists:     line.Assists,
		GamesPlayed: 1,
	})

	if s.src.Float64() < injuryChancePerAppearance {
		weeks := rng.IntRange(s.src, injuryWeeksMin, injuryWeeksMax)
		risk := model.InjuryRisk{
			AthleteID:   a.ID,
			FranchiseID: a.FranchiseID,
			Weeks:       weeks,
			Kind:        injuryKinds[s.src.IntN(len(injuryKinds))],
		}
		if weeks >= injuryWeeksMax-1 && s.src.Float64() < chronicChance {
			risk.Chronic = true
		}
		res.Risks = append(res.Risks, risk)
	}
}

// produce converts a skill level and minutes share into a counting stat with
// multiplicative noise.
func produce(src rng.Source, skill, share, rate float64) int {
	raw := skill * share * rate * rng.Range(src, 0.6, 1.4)
	if raw < 0 {
		return 0
	}
	return int(math.Round(raw))
}

// countSide counts box lines already attributed to one franchise.
func countSide(lines []model.BoxLine, franchiseID string) int {
	n := 0
	for _, l := range lines {
		if l.FranchiseID == franchiseID {
			n++
		}
	}
	return n
}

// playerOfMatch returns the highest scorer across both sides; ties go to the
// earlier line, matching the stable rotation order.
func playerOfMatch(lines []model.BoxLine) string {
	best, bestPoints := "", -1
	for _, l := range lines {
		if l.Points > bestPoints {
			best, bestPoints = l.AthleteID, l.Points
		}
	}
	return best
}
