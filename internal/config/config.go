// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - Load(ctx) layers defaults -> optional YAML file -> env vars.
// - External errors must be wrapped via this package's error helpers.
package config

// Config contains process configuration for the simulation service.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":9080".
	Addr string `koanf:"addr"`

	// Seed seeds the engine's random source. 0 derives a seed from the clock.
	Seed int64 `koanf:"seed"`

	// SavePath is the sqlite file for save slots. Empty disables persistence.
	SavePath string `koanf:"save_path"`

	// NotificationCap bounds retained notifications (oldest evicted first).
	NotificationCap int `koanf:"notification_cap"`

	// MatchHistoryCap bounds retained match records (oldest evicted first).
	MatchHistoryCap int `koanf:"match_history_cap"`

	// DecisionChance is the per-week probability of drawing a life event.
	DecisionChance float64 `koanf:"decision_chance"`

	// Ledger constants.
	BaseOverhead       float64 `koanf:"base_overhead"`
	RentPerOfficeLevel float64 `koanf:"rent_per_office_level"`
	UpkeepPerDecorItem float64 `koanf:"upkeep_per_decor_item"`
	DividendYield      float64 `koanf:"dividend_yield"`

	// InflationMin and InflationMax bound the yearly inflation factor
	// sampled once per new-year transition.
	InflationMin float64 `koanf:"inflation_min"`
	InflationMax float64 `koanf:"inflation_max"`

	// TicketPrice feeds the weekly franchise revenue formula.
	TicketPrice float64 `koanf:"ticket_price"`

	// World generation sizing.
	LeagueSize   int `koanf:"league_size"`
	AmateurCount int `koanf:"amateur_count"`
	RosterSize   int `koanf:"roster_size"`
	ClientCount  int `koanf:"client_count"`

	// StartingCash is the agency balance on a fresh world.
	StartingCash float64 `koanf:"starting_cash"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:           "info",
		Addr:               ":9080",
		Seed:               0,
		SavePath:           "frontoffice.db",
		NotificationCap:    30,
		MatchHistoryCap:    400,
		DecisionChance:     0.08,
		BaseOverhead:       2000,
		RentPerOfficeLevel: 1500,
		UpkeepPerDecorItem: 75,
		DividendYield:      0.05,
		InflationMin:       1.03,
		InflationMax:       1.07,
		TicketPrice:        45,
		LeagueSize:         16,
		AmateurCount:       4,
		RosterSize:         12,
		ClientCount:        5,
		StartingCash:       150_000,
	}
}
