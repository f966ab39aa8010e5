// Package types contains the closed enum sets shared across the engine.
package types

// Position is one of the five on-court roles.
type Position string

// Enumerated positions.
const (
	PointGuard    Position = "PG"
	ShootingGuard Position = "SG"
	SmallForward  Position = "SF"
	PowerForward  Position = "PF"
	Center        Position = "C"
)

// Positions lists every valid position in draft order.
func Positions() []Position {
	return []Position{PointGuard, ShootingGuard, SmallForward, PowerForward, Center}
}

// Valid reports whether p is a member of the closed set.
func (p Position) Valid() bool {
	switch p {
	case PointGuard, ShootingGuard, SmallForward, PowerForward, Center:
		return true
	default:
		return false
	}
}

// MarketTrend is the franchise share-market sentiment state.
type MarketTrend string

// Enumerated market trends.
const (
	Bullish MarketTrend = "BULLISH"
	Bearish MarketTrend = "BEARISH"
	Stable  MarketTrend = "STABLE"
)

// Valid reports whether t is a member of the closed set.
func (t MarketTrend) Valid() bool {
	switch t {
	case Bullish, Bearish, Stable:
		return true
	default:
		return false
	}
}

// LeaguePhase gates which fixtures the orchestrator schedules.
type LeaguePhase string

// Enumerated league phases.
const (
	RegularSeason LeaguePhase = "REGULAR_SEASON"
	Playoffs      LeaguePhase = "PLAYOFFS"
	Offseason     LeaguePhase = "OFFSEASON"
)

// Valid reports whether p is a member of the closed set.
func (p LeaguePhase) Valid() bool {
	switch p {
	case RegularSeason, Playoffs, Offseason:
		return true
	default:
		return false
	}
}

// DraftPhase tracks the yearly rookie intake flow.
type DraftPhase string

// Enumerated draft phases.
const (
	DraftIdle    DraftPhase = "IDLE"
	DraftLottery DraftPhase = "LOTTERY"
	DraftActive  DraftPhase = "ACTIVE"
)

// Valid reports whether p is a member of the closed set.
func (p DraftPhase) Valid() bool {
	switch p {
	case DraftIdle, DraftLottery, DraftActive:
		return true
	default:
		return false
	}
}

// MatchKind distinguishes fixture flavours in the match history.
type MatchKind string

// Enumerated match kinds.
const (
	MatchRegular    MatchKind = "REGULAR"
	MatchYouth      MatchKind = "YOUTH"
	MatchPlayoff    MatchKind = "PLAYOFF"
	MatchExhibition MatchKind = "EXHIBITION"
)

// Valid reports whether k is a member of the closed set.
func (k MatchKind) Valid() bool {
	switch k {
	case MatchRegular, MatchYouth, MatchPlayoff, MatchExhibition:
		return true
	default:
		return false
	}
}

// NotificationKind separates routine notes from breaking news.
type NotificationKind string

// Enumerated notification kinds.
const (
	NoteInfo     NotificationKind = "INFO"
	NoteBreaking NotificationKind = "BREAKING"
)

// Valid reports whether k is a member of the closed set.
func (k NotificationKind) Valid() bool {
	switch k {
	case NoteInfo, NoteBreaking:
		return true
	default:
		return false
	}
}
