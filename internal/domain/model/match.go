package model

import "github.com/owenfield/frontoffice/internal/domain/types"

// QuartersPerMatch is fixed; quarter scores always sum to the final score.
const QuartersPerMatch = 4

// BoxLine is one athlete's line in a match box score.
type BoxLine struct {
	AthleteID   string `json:"athlete_id"`
	Name        string `json:"name"`
	FranchiseID string `json:"franchise_id"`
	Points      int    `json:"points"`
	Rebounds    int    `json:"rebounds"`
	Assists     int    `json:"assists"`
	Minutes     int    `json:"minutes"`
}

// Match is a resolved fixture between two franchises.
type Match struct {
	ID     string          `json:"id"`
	HomeID string          `json:"home_id"`
	AwayID string          `json:"away_id"`
	Week   int             `json:"week"`
	Year   int             `json:"year"`
	Kind   types.MatchKind `json:"kind"`

	HomeScore    int                   `json:"home_score"`
	AwayScore    int                   `json:"away_score"`
	HomeQuarters [QuartersPerMatch]int `json:"home_quarters"`
	AwayQuarters [QuartersPerMatch]int `json:"away_quarters"`

	BoxScore []BoxLine `json:"box_score"`

	// PlayerOfMatch is the athlete ID of the highest scorer across both sides.
	PlayerOfMatch string `json:"player_of_match"`
}

// StatDelta is the per-athlete season-stat increment produced by one match.
// The simulator returns deltas; only the orchestrator applies them.
type StatDelta struct {
	AthleteID   string `json:"athlete_id"`
	Points      int    `json:"points"`
	Rebounds    int    `json:"rebounds"`
	Assists     int    `json:"assists"`
	GamesPlayed int    `json:"games_played"`
}

// InjuryRisk is a candidate injury produced during a match. The orchestrator
// applies it unless the franchise's medical staff prevents it.
type InjuryRisk struct {
	AthleteID   string `json:"athlete_id"`
	FranchiseID string `json:"franchise_id"`
	Weeks       int    `json:"weeks"`
	Kind        string `json:"kind"`
	Chronic     bool   `json:"chronic"`
}
