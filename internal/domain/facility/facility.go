// Package facility holds the pure level->bonus formulas keyed off franchise
// facility tracks. Keeping them free functions makes every bonus testable
// independently of orchestration order.
package facility

import "math"

// Level bounds for every facility track.
const (
	MinLevel = 1
	MaxLevel = 5
)

// ClampLevel forces a level into [MinLevel, MaxLevel].
func ClampLevel(level int) int {
	if level < MinLevel {
		return MinLevel
	}
	if level > MaxLevel {
		return MaxLevel
	}
	return level
}

// StadiumRevenueMultiplier scales weekly gate revenue: 1 + (level-1)*0.25.
func StadiumRevenueMultiplier(level int) float64 {
	return 1 + float64(ClampLevel(level)-1)*0.25
}

// MedicalRecoveryChance is the weekly probability of an accelerated
// injury-recovery tick (or of preventing a fresh match injury): (level-1)*0.15.
// Level 1 (and free agents, treated as level 1) gets no bonus.
func MedicalRecoveryChance(level int) float64 {
	return float64(ClampLevel(level)-1) * 0.15
}

// ScoutingPointYield is the weekly scouting-point bonus: floor(level * 1.5).
func ScoutingPointYield(level int) int {
	return int(math.Floor(float64(ClampLevel(level)) * 1.5))
}

// AcademyBoost scales homegrown prospect quality: (level-1) steps applied to
// rating and potential at graduation time.
func AcademyBoost(level int) int {
	return ClampLevel(level) - 1
}
