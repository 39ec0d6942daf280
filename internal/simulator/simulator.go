// Package simulator plays many independent hands between strategy
// lineups and tallies which strategies finish as chip leaders. Each hand
// gets its own deck, pot, and seat instances; nothing is shared between
// concurrently running hands.
package simulator

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/holdemsim/internal/bot"
	"github.com/lox/holdemsim/internal/game"
	"github.com/lox/holdemsim/internal/randutil"
)

// Seat names one entrant in the lineup.
type Seat struct {
	Name     string
	Strategy string // random, minimax, alphabeta
	Chips    int
}

// Config holds a matchup configuration.
type Config struct {
	Games   int
	Workers int
	Seed    int64
	Decks   int
	Lineup  []Seat
	Logger  *log.Logger
}

// Results aggregates matchup outcomes per strategy kind. A game's win is
// split fractionally between the strategies of all chip-leading seats.
type Results struct {
	Games     int
	Wins      map[string]float64
	Showdowns int
	Folds     int
}

// Run plays cfg.Games single hands and returns the aggregated results.
func Run(cfg Config) (*Results, error) {
	if cfg.Games <= 0 {
		return nil, fmt.Errorf("games must be positive, got %d", cfg.Games)
	}
	if len(cfg.Lineup) < 2 {
		return nil, fmt.Errorf("at least 2 seats required, got %d", len(cfg.Lineup))
	}
	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}
	decks := cfg.Decks
	if decks == 0 {
		decks = 1
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	results := &Results{Games: cfg.Games, Wins: make(map[string]float64)}
	var mu sync.Mutex

	var eg errgroup.Group
	eg.SetLimit(workers)

	for i := 0; i < cfg.Games; i++ {
		gameSeed := cfg.Seed + int64(i)
		eg.Go(func() error {
			outcome, leaders, err := playOne(cfg.Lineup, gameSeed, decks, logger)
			if err != nil {
				return fmt.Errorf("game with seed %d: %w", gameSeed, err)
			}

			mu.Lock()
			defer mu.Unlock()
			for _, kind := range leaders {
				results.Wins[kind] += 1.0 / float64(len(leaders))
			}
			switch outcome {
			case game.OutcomeShowdown:
				results.Showdowns++
			case game.OutcomeFold:
				results.Folds++
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// playOne runs a single fully isolated hand and returns the strategy
// kinds of the chip-leading seats.
func playOne(lineup []Seat, seed int64, decks int, logger *log.Logger) (game.Outcome, []string, error) {
	rng := randutil.New(seed)

	seats := make([]game.SeatConfig, len(lineup))
	for i, entry := range lineup {
		strategy, err := bot.New(entry.Strategy, rng)
		if err != nil {
			return 0, nil, err
		}
		seats[i] = game.SeatConfig{Name: entry.Name, Chips: entry.Chips, Strategy: strategy}
	}

	g, err := game.NewGame(rng, seats, game.WithDecks(decks), game.WithLogger(logger))
	if err != nil {
		return 0, nil, err
	}

	result, err := g.PlayHand()
	if err != nil {
		return 0, nil, err
	}

	maxChips := 0
	for _, p := range g.Players() {
		if p.Chips > maxChips {
			maxChips = p.Chips
		}
	}
	var leaders []string
	for i, p := range g.Players() {
		if p.Chips == maxChips {
			leaders = append(leaders, lineup[i].Strategy)
		}
	}
	return result.Outcome, leaders, nil
}

// Report formats a human-readable summary of the matchup.
func (r *Results) Report() string {
	kinds := make([]string, 0, len(r.Wins))
	for kind := range r.Wins {
		kinds = append(kinds, kind)
	}
	sort.Slice(kinds, func(i, j int) bool {
		if r.Wins[kinds[i]] != r.Wins[kinds[j]] {
			return r.Wins[kinds[i]] > r.Wins[kinds[j]]
		}
		return kinds[i] < kinds[j]
	})

	var b strings.Builder
	fmt.Fprintf(&b, "Out of %d games (%d showdowns, %d won by fold):\n", r.Games, r.Showdowns, r.Folds)
	for _, kind := range kinds {
		fmt.Fprintf(&b, "  %-10s %.1f wins\n", kind, r.Wins[kind])
	}
	return b.String()
}
