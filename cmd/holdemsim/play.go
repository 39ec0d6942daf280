package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/holdemsim/internal/bot"
	"github.com/lox/holdemsim/internal/game"
	"github.com/lox/holdemsim/internal/randutil"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true)

	winnerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true)
)

// PlayCmd runs a number of hands at one table, optionally with a human
// seat prompting on stdin.
type PlayCmd struct {
	Hands      int      `short:"n" help:"Number of hands to play" default:"3"`
	Chips      int      `help:"Starting chips per seat" default:"1000"`
	Decks      int      `help:"Number of decks in the shoe" default:"1"`
	Seed       int64    `help:"RNG seed (0 = time-based)" default:"0"`
	Strategies []string `short:"s" help:"Seat strategies (random, minimax, alphabeta, human)" default:"human,random,minimax"`
	Verbose    bool     `help:"Log hand progress"`
}

func (c *PlayCmd) Run() error {
	logger := newLogger(c.Verbose)

	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := randutil.New(seed)

	if len(c.Strategies) < 2 {
		return fmt.Errorf("at least 2 seats required, got %d", len(c.Strategies))
	}

	seats := make([]game.SeatConfig, len(c.Strategies))
	for i, kind := range c.Strategies {
		name := fmt.Sprintf("%s-%d", capitalize(kind), i+1)
		var strategy game.Strategy
		if kind == "human" {
			name = "You"
			strategy = bot.NewHuman(os.Stdin, os.Stdout)
		} else {
			s, err := bot.New(kind, rng)
			if err != nil {
				return err
			}
			strategy = s
		}
		seats[i] = game.SeatConfig{Name: name, Chips: c.Chips, Strategy: strategy}
	}

	g, err := game.NewGame(rng, seats, game.WithDecks(c.Decks), game.WithLogger(logger))
	if err != nil {
		return err
	}

	fmt.Println(titleStyle.Render(" ♠ ♥ Texas Hold'em ♦ ♣ "))
	fmt.Println()

	for hand := 1; hand <= c.Hands; hand++ {
		fmt.Printf("===== Hand %d =====\n", hand)

		result, err := g.PlayHand()
		if err != nil {
			return fmt.Errorf("hand %d: %w", hand, err)
		}

		switch result.Outcome {
		case game.OutcomeFold:
			fmt.Println(winnerStyle.Render(fmt.Sprintf("%s wins %d by default", result.Winners[0], result.Pot)))
		case game.OutcomeShowdown:
			fmt.Println(winnerStyle.Render(fmt.Sprintf("%s split %d at showdown", strings.Join(result.Winners, ", "), result.Pot)))
		case game.OutcomeDead:
			fmt.Println("all seats folded, pot lost")
		}

		for _, p := range g.Players() {
			fmt.Printf("  %s: %d chips\n", p.Name, p.Chips)
		}
		fmt.Println()
	}
	return nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
