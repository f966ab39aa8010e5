// Package model contains the domain records advanced by the weekly engine.
package model

import "github.com/owenfield/frontoffice/internal/domain/types"

// SkillSet is the 4-axis skill vector, each axis in [0,99].
type SkillSet struct {
	Scoring     int `json:"scoring"`
	Defense     int `json:"defense"`
	Playmaking  int `json:"playmaking"`
	Athleticism int `json:"athleticism"`
}

// Mean returns the floored mean of the four axes.
func (s SkillSet) Mean() int {
	return (s.Scoring + s.Defense + s.Playmaking + s.Athleticism) / 4
}

// SeasonStats accumulates per-season box-score totals. Reset every new year.
type SeasonStats struct {
	Points      int `json:"points"`
	Rebounds    int `json:"rebounds"`
	Assists     int `json:"assists"`
	GamesPlayed int `json:"games_played"`
}

// InjuryState tracks an athlete's current injury, if any.
type InjuryState struct {
	WeeksLeft int    `json:"weeks_left"`
	Kind      string `json:"kind,omitempty"`
	Chronic   bool   `json:"chronic,omitempty"`
}

// Athlete is a player entity with skills, economic and lifecycle state.
// Athletes are never deleted; retired ones persist as historical records.
type Athlete struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Face string `json:"face"`

	Age      int            `json:"age"`
	Position types.Position `json:"position"`

	Skills    SkillSet `json:"skills"`
	Potential int      `json:"potential"`
	Rating    int      `json:"rating"`

	// FranchiseID is empty for free agents.
	FranchiseID string `json:"franchise_id,omitempty"`

	Salary         float64 `json:"salary"` // annual
	MarketValue    float64 `json:"market_value"`
	CommissionRate float64 `json:"commission_rate"`

	Morale  int `json:"morale"`  // [0,100]
	Loyalty int `json:"loyalty"` // [0,100]

	Injury InjuryState `json:"injury"`

	IsClient      bool `json:"is_client"`
	IsRookie      bool `json:"is_rookie"`
	IsYouth       bool `json:"is_youth"`
	Retired       bool `json:"retired"`
	RetirementAge int  `json:"retirement_age"`

	SeasonStats SeasonStats `json:"season_stats"`
}

// RecalcRating re-derives the overall rating from the skill axes.
// Must be called after every skill mutation.
func (a *Athlete) RecalcRating() {
	a.Rating = a.Skills.Mean()
}

// Injured reports whether the athlete is currently sidelined.
func (a *Athlete) Injured() bool {
	return a.Injury.WeeksLeft > 0
}

// Available reports whether the athlete can take the court.
func (a *Athlete) Available() bool {
	return !a.Retired && !a.Injured()
}

// CoachingSet is the 4-axis coaching vector of a manager.
type CoachingSet struct {
	Tactics    int `json:"tactics"`
	Coaching   int `json:"coaching"`
	Leadership int `json:"leadership"`
	PlayerDev  int `json:"player_dev"`
}

// Mean returns the floored mean of the four axes.
func (c CoachingSet) Mean() int {
	return (c.Tactics + c.Coaching + c.Leadership + c.PlayerDev) / 4
}

// Manager is a coaching entity, generated directly or converted from a
// retiring athlete.
type Manager struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Age  int    `json:"age"`

	Coaching CoachingSet `json:"coaching"`
	Rating   int         `json:"rating"`

	FranchiseID string `json:"franchise_id,omitempty"`

	FormerAthlete   bool   `json:"former_athlete,omitempty"`
	FormerAthleteID string `json:"former_athlete_id,omitempty"`
}

// RecalcRating re-derives the overall rating from the coaching axes.
func (m *Manager) RecalcRating() {
	m.Rating = m.Coaching.Mean()
}

// Scout is an agency employee surfacing prospects.
type Scout struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Rating int    `json:"rating"`
	Region string `json:"region"`
}
