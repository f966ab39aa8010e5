package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):.
//  1. defaults (New())
//  2. file (YAML) if FRONTOFFICE_CONFIG is set
//  3. env (prefix FRONTOFFICE_)
func Load(ctx context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	// Load from file if provided
	if path := os.Getenv("FRONTOFFICE_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: FRONTOFFICE_ADDR, FRONTOFFICE_DECISION_CHANCE, ...
	// Map env keys like FRONTOFFICE_MATCH_HISTORY_CAP -> match_history_cap.
	// Preserve underscores to match koanf tags on the struct.
	envProvider := env.Provider("FRONTOFFICE_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "frontoffice_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	// Unmarshal into a copy
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validate performs basic sanity checks on a loaded configuration.
func (c *Config) validate() error {
	switch {
	case c.Addr == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case c.NotificationCap < 1:
		return fmt.Errorf("%w: notification_cap must be positive", ErrInvalidConfig)
	case c.MatchHistoryCap < 1:
		return fmt.Errorf("%w: match_history_cap must be positive", ErrInvalidConfig)
	case c.DecisionChance < 0 || c.DecisionChance > 1:
		return fmt.Errorf("%w: decision_chance must be in [0,1]", ErrInvalidConfig)
	case c.InflationMin < 1 || c.InflationMax < c.InflationMin:
		return fmt.Errorf("%w: inflation bounds must satisfy 1 <= min <= max", ErrInvalidConfig)
	case c.LeagueSize < 2 || c.LeagueSize%2 != 0:
		return fmt.Errorf("%w: league_size must be an even number of franchises", ErrInvalidConfig)
	case c.RosterSize < 1:
		return fmt.Errorf("%w: roster_size must be positive", ErrInvalidConfig)
	}
	return nil
}
