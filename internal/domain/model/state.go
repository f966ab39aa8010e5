package model

import "github.com/owenfield/frontoffice/internal/domain/types"

// WeeksPerYear bounds the week counter; crossing it increments the year.
const WeeksPerYear = 52

// BankruptcyThreshold is the cash level below which the caller should start
// a recovery flow. Crossing it is a domain signal, never an engine error.
const BankruptcyThreshold = -200_000.0

// Notification is an append-only message for the presentation layer.
type Notification struct {
	ID    string                 `json:"id"`
	Week  int                    `json:"week"`
	Year  int                    `json:"year"`
	Title string                 `json:"title"`
	Body  string                 `json:"body"`
	Kind  types.NotificationKind `json:"kind"`
}

// DecisionOption is one selectable outcome of a pending decision. All deltas
// apply to the snapshot scalars or the targeted athlete on resolution.
type DecisionOption struct {
	Label           string  `json:"label"`
	CashDelta       float64 `json:"cash_delta"`
	ReputationDelta float64 `json:"reputation_delta"`
	InfluenceDelta  float64 `json:"influence_delta"`
	RatingDelta     int     `json:"rating_delta"`
	LoyaltyDelta    int     `json:"loyalty_delta"`
	MoraleDelta     int     `json:"morale_delta"`
	PotentialDelta  int     `json:"potential_delta"`
}

// Decision is a blocking life event targeting one client. Week advancement
// is refused while one is pending.
type Decision struct {
	ID          string           `json:"id"`
	AthleteID   string           `json:"athlete_id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Positive    bool             `json:"positive"`
	Week        int              `json:"week"`
	Year        int              `json:"year"`
	Options     []DecisionOption `json:"options"`
}

// GameState is the agency-side snapshot advanced together with the athlete,
// franchise and match collections.
type GameState struct {
	Week int `json:"week"` // [1, WeeksPerYear]
	Year int `json:"year"`

	Cash           float64 `json:"cash"`
	Reputation     float64 `json:"reputation"`
	Influence      float64 `json:"influence"`
	ScoutingPoints int     `json:"scouting_points"`

	OfficeLevel int `json:"office_level"`
	DecorItems  int `json:"decor_items"`

	// ManagedFranchiseID is the franchise the agency controls, if any.
	ManagedFranchiseID string `json:"managed_franchise_id,omitempty"`

	LeaguePhase types.LeaguePhase `json:"league_phase"`
	DraftPhase  types.DraftPhase  `json:"draft_phase"`

	Loans         []Loan         `json:"loans"`
	Scouts        []Scout        `json:"scouts"`
	Managers      []Manager      `json:"managers"`
	Notifications []Notification `json:"notifications"`

	PendingDecision *Decision `json:"pending_decision,omitempty"`
}

// Bankrupt reports whether cash has crossed the bankruptcy threshold.
func (g *GameState) Bankrupt() bool {
	return g.Cash <= BankruptcyThreshold
}

// World is the aggregate snapshot the orchestrator consumes and returns.
// The caller owns it and must swap in a returned World atomically.
type World struct {
	State      GameState   `json:"state"`
	Athletes   []Athlete   `json:"athletes"`
	Franchises []Franchise `json:"franchises"`
	Matches    []Match     `json:"matches"`
}

// Clone deep-copies the world so a transition never aliases its input.
func (w World) Clone() World {
	out := w

	out.Athletes = append([]Athlete(nil), w.Athletes...)
	out.Franchises = make([]Franchise, len(w.Franchises))
	for i, f := range w.Franchises {
		f.Roster = append([]string(nil), f.Roster...)
		out.Franchises[i] = f
	}
	out.Matches = make([]Match, len(w.Matches))
	for i, m := range w.Matches {
		m.BoxScore = append([]BoxLine(nil), m.BoxScore...)
		out.Matches[i] = m
	}

	out.State.Loans = append([]Loan(nil), w.State.Loans...)
	out.State.Scouts = append([]Scout(nil), w.State.Scouts...)
	out.State.Managers = append([]Manager(nil), w.State.Managers...)
	out.State.Notifications = append([]Notification(nil), w.State.Notifications...)
	if w.State.PendingDecision != nil {
		d := *w.State.PendingDecision
		d.Options = append([]DecisionOption(nil), w.State.PendingDecision.Options...)
		out.State.PendingDecision = &d
	}
	return out
}

// AthleteIndex builds an ID -> slice-position lookup over athletes.
func AthleteIndex(athletes []Athlete) map[string]int {
	idx := make(map[string]int, len(athletes))
	for i, a := range athletes {
		idx[a.ID] = i
	}
	return idx
}

// FranchiseIndex builds an ID -> slice-position lookup over franchises.
func FranchiseIndex(franchises []Franchise) map[string]int {
	idx := make(map[string]int, len(franchises))
	for i, f := range franchises {
		idx[f.ID] = i
	}
	return idx
}

// RosterAthletes resolves a franchise roster into athlete values.
func RosterAthletes(f Franchise, athletes []Athlete, idx map[string]int) []Athlete {
	out := make([]Athlete, 0, len(f.Roster))
	for _, id := range f.Roster {
		if i, ok := idx[id]; ok {
			out = append(out, athletes[i])
		}
	}
	return out
}
