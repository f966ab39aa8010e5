// Package lifeevent draws the random narrative decisions that interrupt
// week advancement until the caller resolves them.
package lifeevent

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/owenfield/frontoffice/internal/domain/model"
	"github.com/owenfield/frontoffice/internal/domain/rng"
)

// positiveWeight biases the pool draw; the remainder lands on the risk pool.
const positiveWeight = 0.35

// template is one narrative event before binding it to an athlete.
type template struct {
	title       string
	description string
	options     []model.DecisionOption
}

var positivePool = []template{
	{
		title:       "Sponsorship offer",
		description: "A sportswear brand wants %s as the face of its next campaign.",
		options: []model.DecisionOption{
			{Label: "Sign the deal", CashDelta: 25_000, MoraleDelta: 5},
			{Label: "Hold out for more", ReputationDelta: 2, LoyaltyDelta: -3},
			{Label: "Decline politely", LoyaltyDelta: 4},
		},
	},
	{
		title:       "National team call-up",
		description: "%s has been invited to the national team training camp.",
		options: []model.DecisionOption{
			{Label: "Send them", ReputationDelta: 4, PotentialDelta: 2, MoraleDelta: 6},
			{Label: "Keep them resting", LoyaltyDelta: -2, MoraleDelta: -4},
		},
	},
	{
		title:       "Charity gala invite",
		description: "A league charity gala wants %s on stage this weekend.",
		options: []model.DecisionOption{
			{Label: "Attend together", ReputationDelta: 3, InfluenceDelta: 2, CashDelta: -5_000},
			{Label: "Send regrets", InfluenceDelta: -1},
		},
	},
	{
		title:       "Documentary feature",
		description: "A streaming crew wants to follow %s for a behind-the-scenes series.",
		options: []model.DecisionOption{
			{Label: "Open the doors", CashDelta: 15_000, ReputationDelta: 2, MoraleDelta: -2},
			{Label: "Protect the routine", LoyaltyDelta: 3},
		},
	},
}

var negativePool = []template{
	{
		title:       "Nightclub photos",
		description: "Tabloids ran photos of %s out late before a fixture.",
		options: []model.DecisionOption{
			{Label: "Pay to bury the story", CashDelta: -20_000},
			{Label: "Issue a public apology", ReputationDelta: -2, MoraleDelta: -4},
			{Label: "Ignore it", ReputationDelta: -4, LoyaltyDelta: -2},
		},
	},
	{
		title:       "Contract dispute",
		description: "%s feels underpaid and is threatening to go public.",
		options: []model.DecisionOption{
			{Label: "Promise a raise push", CashDelta: -10_000, LoyaltyDelta: 6},
			{Label: "Talk them down", MoraleDelta: -3, LoyaltyDelta: -2},
		},
	},
	{
		title:       "Training ground bust-up",
		description: "%s clashed with a teammate and the locker room is split.",
		options: []model.DecisionOption{
			{Label: "Broker peace personally", InfluenceDelta: 1, MoraleDelta: 4, CashDelta: -2_500},
			{Label: "Let the coach handle it", MoraleDelta: -5},
		},
	},
	{
		title:       "Risky side venture",
		description: "%s wants to invest half a season's salary in a friend's startup.",
		options: []model.DecisionOption{
			{Label: "Back the venture", CashDelta: -15_000, LoyaltyDelta: 5},
			{Label: "Talk them out of it", LoyaltyDelta: -3, MoraleDelta: -2},
		},
	},
	{
		title:       "Gambling rumour",
		description: "League integrity officers are asking questions about %s.",
		options: []model.DecisionOption{
			{Label: "Hire counsel", CashDelta: -30_000, ReputationDelta: 1},
			{Label: "Cooperate quietly", ReputationDelta: -3},
		},
	},
	{
		title:       "Agent poaching attempt",
		description: "A rival agency made %s a flattering offer over dinner.",
		options: []model.DecisionOption{
			{Label: "Counter with perks", CashDelta: -8_000, LoyaltyDelta: 8},
			{Label: "Trust the relationship", LoyaltyDelta: -4},
		},
	},
	{
		title:       "Conditioning scare",
		description: "%s failed a routine conditioning screen this morning.",
		options: []model.DecisionOption{
			{Label: "Private specialist", CashDelta: -12_000, MoraleDelta: 3},
			{Label: "Team physio only", RatingDelta: -1, MoraleDelta: -2},
		},
	},
}

// Drawer samples decisions for rostered clients.
type Drawer struct {
	src rng.Source
}

// NewDrawer creates a Drawer sampling from src.
func NewDrawer(src rng.Source) *Drawer {
	return &Drawer{src: src}
}

// Draw binds one random event to one of the rostered clients and returns the
// pending decision. Candidates must be pre-filtered to active, rostered
// clients; an empty candidate list yields nil.
func (d *Drawer) Draw(candidates []model.Athlete, week, year int) *model.Decision {
	if len(candidates) == 0 {
		return nil
	}
	target := candidates[d.src.IntN(len(candidates))]

	positive := d.src.Float64() < positiveWeight
	pool := negativePool
	if positive {
		pool = positivePool
	}
	tpl := pool[d.src.IntN(len(pool))]

	opts := make([]model.DecisionOption, len(tpl.options))
	copy(opts, tpl.options)

	return &model.Decision{
		ID:          uuid.NewString(),
		AthleteID:   target.ID,
		Title:       tpl.title,
		Description: fmt.Sprintf(tpl.description, target.Name),
		Positive:    positive,
		Week:        week,
		Year:        year,
		Options:     opts,
	}
}

// Candidates filters the athlete pool down to decision-eligible clients:
// represented, not retired, and currently on a roster.
func Candidates(athletes []model.Athlete) []model.Athlete {
	out := make([]model.Athlete, 0)
	for _, a := range athletes {
		if a.IsClient && !a.Retired && a.FranchiseID != "" {
			out = append(out, a)
		}
	}
	return out
}
