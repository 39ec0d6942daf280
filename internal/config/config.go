// Package config loads matchup configuration from HCL files.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config is the full simulation configuration.
type Config struct {
	Game  GameSettings `hcl:"game,block"`
	Seats []SeatBlock  `hcl:"seat,block"`
}

// GameSettings configures the matchup harness.
type GameSettings struct {
	Games         int    `hcl:"games,optional"`
	StartingChips int    `hcl:"starting_chips,optional"`
	Decks         int    `hcl:"decks,optional"`
	Seed          int64  `hcl:"seed,optional"`
	Workers       int    `hcl:"workers,optional"`
	LogLevel      string `hcl:"log_level,optional"`
}

// SeatBlock configures one seat in the lineup.
type SeatBlock struct {
	Name     string `hcl:"name,label"`
	Strategy string `hcl:"strategy"`
	Chips    int    `hcl:"chips,optional"`
}

// Default returns the configuration used when no file is given: a
// four-seat random-versus-minimax matchup.
func Default() *Config {
	return &Config{
		Game: GameSettings{
			Games:         1000,
			StartingChips: 1000,
			Decks:         1,
			Seed:          1,
			Workers:       4,
			LogLevel:      "warn",
		},
		Seats: []SeatBlock{
			{Name: "Random1", Strategy: "random"},
			{Name: "Random2", Strategy: "random"},
			{Name: "Minimax1", Strategy: "minimax"},
			{Name: "Minimax2", Strategy: "minimax"},
		},
	}
}

// Load parses an HCL configuration file, applying defaults for anything
// left unset. A missing file name returns the defaults.
func Load(filename string) (*Config, error) {
	if filename == "" {
		cfg := Default()
		applyDefaults(cfg)
		return cfg, nil
	}
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file %q does not exist", filename)
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode config: %s", diags.Error())
	}

	applyDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	defaults := Default()
	if cfg.Game.Games == 0 {
		cfg.Game.Games = defaults.Game.Games
	}
	if cfg.Game.StartingChips == 0 {
		cfg.Game.StartingChips = defaults.Game.StartingChips
	}
	if cfg.Game.Decks == 0 {
		cfg.Game.Decks = defaults.Game.Decks
	}
	if cfg.Game.Workers == 0 {
		cfg.Game.Workers = defaults.Game.Workers
	}
	if cfg.Game.LogLevel == "" {
		cfg.Game.LogLevel = defaults.Game.LogLevel
	}
	for i := range cfg.Seats {
		if cfg.Seats[i].Chips == 0 {
			cfg.Seats[i].Chips = cfg.Game.StartingChips
		}
	}
}

// Validate rejects configurations the engine would refuse at
// construction time.
func (c *Config) Validate() error {
	if len(c.Seats) < 2 {
		return fmt.Errorf("at least 2 seats required, got %d", len(c.Seats))
	}
	if c.Game.Decks < 1 {
		return fmt.Errorf("decks must be at least 1, got %d", c.Game.Decks)
	}
	if c.Game.Games < 1 {
		return fmt.Errorf("games must be at least 1, got %d", c.Game.Games)
	}
	seen := map[string]bool{}
	for _, seat := range c.Seats {
		if seat.Name == "" {
			return fmt.Errorf("seat name must not be empty")
		}
		if seen[seat.Name] {
			return fmt.Errorf("duplicate seat name %q", seat.Name)
		}
		seen[seat.Name] = true
		switch seat.Strategy {
		case "random", "minimax", "alphabeta":
		default:
			return fmt.Errorf("seat %q has unknown strategy %q", seat.Name, seat.Strategy)
		}
		if seat.Chips < 1 {
			return fmt.Errorf("seat %q must start with chips, got %d", seat.Name, seat.Chips)
		}
	}
	return nil
}
