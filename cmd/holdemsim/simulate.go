package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lox/holdemsim/internal/config"
	"github.com/lox/holdemsim/internal/simulator"
)

// SimulateCmd runs a matchup between strategy lineups and prints the win
// tally.
type SimulateCmd struct {
	Config  string `short:"c" help:"HCL matchup configuration file" type:"existingfile" optional:""`
	Games   int    `short:"n" help:"Override the number of games"`
	Seed    int64  `help:"Override the RNG seed"`
	Workers int    `help:"Override the number of parallel workers"`
}

func (c *SimulateCmd) Run() error {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}
	if c.Games > 0 {
		cfg.Game.Games = c.Games
	}
	if c.Seed != 0 {
		cfg.Game.Seed = c.Seed
	}
	if c.Workers > 0 {
		cfg.Game.Workers = c.Workers
	}
	if cfg.Game.Seed == 0 {
		cfg.Game.Seed = time.Now().UnixNano()
	}

	level, err := log.ParseLevel(cfg.Game.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.Game.LogLevel, err)
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: level})

	lineup := make([]simulator.Seat, len(cfg.Seats))
	for i, seat := range cfg.Seats {
		lineup[i] = simulator.Seat{Name: seat.Name, Strategy: seat.Strategy, Chips: seat.Chips}
	}

	logger.Info("starting matchup", "games", cfg.Game.Games, "seats", len(lineup), "workers", cfg.Game.Workers, "seed", cfg.Game.Seed)
	started := time.Now()

	results, err := simulator.Run(simulator.Config{
		Games:   cfg.Game.Games,
		Workers: cfg.Game.Workers,
		Seed:    cfg.Game.Seed,
		Decks:   cfg.Game.Decks,
		Lineup:  lineup,
		Logger:  logger,
	})
	if err != nil {
		return err
	}

	logger.Info("matchup finished", "elapsed", time.Since(started))
	fmt.Print(results.Report())
	return nil
}
