// Package gen produces randomized athletes and franchise managers with
// normally distributed attributes, plus the deterministic athlete-to-manager
// conversion used at retirement.
package gen

import (
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/owenfield/frontoffice/internal/domain/model"
	"github.com/owenfield/frontoffice/internal/domain/rng"
	"github.com/owenfield/frontoffice/internal/domain/types"
)

// Skill axis bounds after sampling.
const (
	minAxis = 20
	maxAxis = 99
)

// archetype holds the normal-distribution parameters for one athlete class.
type archetype struct {
	mean   float64
	stdDev float64
	minAge int
	maxAge int
}

// Archetype parameters: youth prospects run well below rookies, rookies
// below established veterans.
var (
	youthArchetype   = archetype{mean: 52, stdDev: 5, minAge: 15, maxAge: 18}
	rookieArchetype  = archetype{mean: 70, stdDev: 4, minAge: 19, maxAge: 22}
	veteranArchetype = archetype{mean: 76, stdDev: 6, minAge: 23, maxAge: 33}
)

// axisNoiseStdDev is the per-axis spread around the sampled base skill.
const axisNoiseStdDev = 8.0

// defaultRetirementAge is fixed on the athlete at generation time.
const defaultRetirementAge = 35

// faceCount bounds the avatar token pool.
const faceCount = 24

// Generator creates fresh entities from an injected random source.
type Generator struct {
	src           rng.Source
	retirementAge int
	commissionMin float64
	commissionMax float64
}

// Option applies a configuration option to the Generator.
type Option func(*Generator)

// WithRetirementAge overrides the retirement age stamped on new athletes.
func WithRetirementAge(age int) Option {
	return func(g *Generator) {
		if age > 0 {
			g.retirementAge = age
		}
	}
}

// WithCommissionRange overrides the agent commission rate bounds.
func WithCommissionRange(minRate, maxRate float64) Option {
	return func(g *Generator) {
		if minRate > 0 && maxRate >= minRate {
			g.commissionMin = minRate
			g.commissionMax = maxRate
		}
	}
}

// NewGenerator creates a Generator drawing from src.
func NewGenerator(src rng.Source, opts ...Option) *Generator {
	g := &Generator{
		src:           src,
		retirementAge: defaultRetirementAge,
		commissionMin: 0.05,
		commissionMax: 0.10,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// boxMuller draws one normal sample with the given mean and standard
// deviation from two uniform draws.
func (g *Generator) boxMuller(mean, stdDev float64) float64 {
	u1 := g.src.Float64()
	for u1 == 0 {
		u1 = g.src.Float64()
	}
	u2 := g.src.Float64()
	z := math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
	return mean + z*stdDev
}

// clampAxis bounds one sampled skill axis.
func clampAxis(v float64) int {
	i := int(math.Round(v))
	if i < minAxis {
		return minAxis
	}
	if i > maxAxis {
		return maxAxis
	}
	return i
}

// GenerateAthlete returns a fresh athlete. franchiseID may be empty for a
// free agent. Generation always succeeds; callers bound how many they create.
func (g *Generator) GenerateAthlete(franchiseID string, isRookie, isYouth bool) model.Athlete {
	arch := veteranArchetype
	switch {
	case isYouth:
		arch = youthArchetype
	case isRookie:
		arch = rookieArchetype
	}

	base := g.boxMuller(arch.mean, arch.stdDev)
	skills := model.SkillSet{
		Scoring:     clampAxis(base + g.boxMuller(0, axisNoiseStdDev)),
		Defense:     clampAxis(base + g.boxMuller(0, axisNoiseStdDev)),
		Playmaking:  clampAxis(base + g.boxMuller(0, axisNoiseStdDev)),
		Athleticism: clampAxis(base + g.boxMuller(0, axisNoiseStdDev)),
	}

	a := model.Athlete{
		ID:            uuid.New().String(),
		Name:          g.athleteName(),
		Face:          fmt.Sprintf("face-%02d", g.src.IntN(faceCount)),
		Age:           rng.IntRange(g.src, arch.minAge, arch.maxAge),
		Position:      types.Positions()[g.src.IntN(len(types.Positions()))],
		Skills:        skills,
		Morale:        rng.IntRange(g.src, 50, 90),
		Loyalty:       rng.IntRange(g.src, 40, 90),
		FranchiseID:   franchiseID,
		IsRookie:      isRookie,
		IsYouth:       isYouth,
		RetirementAge: g.retirementAge,
	}
	a.RecalcRating()

	headroom := 99 - a.Rating
	spread := 15
	if isYouth {
		spread = 25
	}
	if spread > headroom {
		spread = headroom
	}
	a.Potential = a.Rating
	if spread > 0 {
		a.Potential += g.src.IntN(spread + 1)
	}

	a.Salary = SalaryFor(a.Rating)
	a.MarketValue = MarketValueFor(a.Rating, a.Potential)
	a.CommissionRate = rng.Range(g.src, g.commissionMin, g.commissionMax)

	return a
}

// SalaryFor maps an overall rating to an annual salary. Non-negative and
// monotonically increasing in rating by construction.
func SalaryFor(rating int) float64 {
	over := math.Max(float64(rating)-60, 0)
	return 45_000 + 600*float64(rating) + 2_000*over*over
}

// MarketValueFor maps rating and potential to a transfer market value.
// Power-law in rating above 50 with a linear potential term; non-negative
// and monotonically increasing in rating by construction.
func MarketValueFor(rating, potential int) float64 {
	over := math.Max(float64(rating)-50, 0)
	return 80_000 + 1_500*float64(rating) + 9_000*math.Pow(over, 2.2) + 6_000*float64(potential)
}

// GenerateManager returns a fresh directly generated manager.
func (g *Generator) GenerateManager(franchiseID string) model.Manager {
	coaching := model.CoachingSet{
		Tactics:    clampAxis(g.boxMuller(65, axisNoiseStdDev)),
		Coaching:   clampAxis(g.boxMuller(65, axisNoiseStdDev)),
		Leadership: clampAxis(g.boxMuller(65, axisNoiseStdDev)),
		PlayerDev:  clampAxis(g.boxMuller(65, axisNoiseStdDev)),
	}
	m := model.Manager{
		ID:          uuid.New().String(),
		Name:        g.athleteName(),
		Age:         rng.IntRange(g.src, 35, 60),
		Coaching:    coaching,
		FranchiseID: franchiseID,
	}
	m.RecalcRating()
	return m
}

// ConvertAthleteToManager derives a manager deterministically from a
// retiring athlete's final skills and personality. Given the same athlete
// the conversion is reproducible; only the new entity ID is fresh.
func ConvertAthleteToManager(a model.Athlete) model.Manager {
	coaching := model.CoachingSet{
		Tactics:    clampAxis(float64(a.Skills.Playmaking*2+a.Skills.Scoring) / 3),
		Coaching:   clampAxis(float64(a.Skills.Defense*2+a.Skills.Scoring) / 3),
		Leadership: clampAxis(float64(a.Loyalty+a.Morale) / 2),
		PlayerDev:  clampAxis(float64(a.Potential+a.Skills.Athleticism) / 2),
	}
	m := model.Manager{
		ID:              uuid.New().String(),
		Name:            a.Name,
		Age:             a.Age,
		Coaching:        coaching,
		FormerAthlete:   true,
		FormerAthleteID: a.ID,
	}
	m.RecalcRating()
	return m
}

// ConvertAthleteToManager delegates to the package-level conversion so a
// Generator can serve as the career-transition dependency.
func (g *Generator) ConvertAthleteToManager(a model.Athlete) model.Manager {
	return ConvertAthleteToManager(a)
}

// athleteName assembles a name from the pools.
func (g *Generator) athleteName() string {
	first := firstNames[g.src.IntN(len(firstNames))]
	last := lastNames[g.src.IntN(len(lastNames))]
	return first + " " + last
}
