package model

import (
	"sort"

	"github.com/owenfield/frontoffice/internal/domain/types"
)

// SharePriceDivisor ties share price to valuation: sharePrice = valuation/100.
const SharePriceDivisor = 100.0

// TakeoverThreshold is the user equity percentage granting takeover rights.
const TakeoverThreshold = 51.0

// Franchise is a team entity (professional or amateur) with roster,
// finances and facility levels.
type Franchise struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Conference string `json:"conference"`
	Division   string `json:"division"`

	Wins   int `json:"wins"`
	Losses int `json:"losses"`

	// Roster holds athlete IDs in rotation order.
	Roster []string `json:"roster"`

	Valuation     float64           `json:"valuation"`
	SharePrice    float64           `json:"share_price"`
	UserShares    float64           `json:"user_shares"` // equity pct [0,100]
	WeeklyRevenue float64           `json:"weekly_revenue"`
	TicketPrice   float64           `json:"ticket_price"`
	Trend         types.MarketTrend `json:"trend"`

	// Facility levels, each in [1,5].
	StadiumLevel  int `json:"stadium_level"`
	MedicalLevel  int `json:"medical_level"`
	ScoutingLevel int `json:"scouting_level"`
	AcademyLevel  int `json:"academy_level"`

	// Amateur marks non-revenue university/feeder franchises.
	Amateur bool `json:"amateur,omitempty"`
}

// RecalcSharePrice re-derives the share price from the valuation.
// Must be called after every valuation mutation.
func (f *Franchise) RecalcSharePrice() {
	f.SharePrice = f.Valuation / SharePriceDivisor
}

// GamesPlayed returns the number of fixtures resolved this season.
func (f *Franchise) GamesPlayed() int {
	return f.Wins + f.Losses
}

// WinPct returns the season win percentage, or 0 before any game.
func (f *Franchise) WinPct() float64 {
	games := f.GamesPlayed()
	if games == 0 {
		return 0
	}
	return float64(f.Wins) / float64(games)
}

// TakeoverEligible reports whether the user equity grants takeover rights.
func (f *Franchise) TakeoverEligible() bool {
	return f.UserShares >= TakeoverThreshold
}

// SoleOwner reports whether the user holds the whole franchise.
func (f *Franchise) SoleOwner() bool {
	return f.UserShares >= 100
}

// franchiseRatingPool is how many healthy athletes feed the team rating.
const franchiseRatingPool = 8

// defaultFranchiseRating covers franchises with an empty or fully injured roster.
const defaultFranchiseRating = 40

// FranchiseRating derives the team strength from the healthy top of the
// roster: the mean rating of the best eight available athletes.
func FranchiseRating(roster []Athlete) int {
	ratings := make([]int, 0, len(roster))
	for _, a := range roster {
		if a.Available() {
			ratings = append(ratings, a.Rating)
		}
	}
	if len(ratings) == 0 {
		return defaultFranchiseRating
	}
	sort.Sort(sort.Reverse(sort.IntSlice(ratings)))
	if len(ratings) > franchiseRatingPool {
		ratings = ratings[:franchiseRatingPool]
	}
	sum := 0
	for _, r := range ratings {
		sum += r
	}
	return sum / len(ratings)
}

// Loan is an agency debt with weekly compounding interest.
type Loan struct {
	ID         string  `json:"id"`
	Principal  float64 `json:"principal"`
	Balance    float64 `json:"balance"`
	WeeklyRate float64 `json:"weekly_rate"` // fraction, e.g. 0.025
	OriginWeek int     `json:"origin_week"`
	OriginYear int     `json:"origin_year"`
}
