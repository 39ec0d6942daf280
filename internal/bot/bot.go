// Package bot provides the built-in decision strategies: a random
// baseline, the naive minimax and alpha-beta expected-value heuristics,
// and an interactive human prompt. Each is an independent implementation
// of the game.Strategy contract.
package bot

import (
	"fmt"

	"github.com/lox/holdemsim/internal/deck"
	"github.com/lox/holdemsim/internal/evaluator"
	"github.com/lox/holdemsim/internal/game"
)

// New constructs a strategy by name. Known kinds: random, minimax,
// alphabeta.
func New(kind string, rng Rand) (game.Strategy, error) {
	switch kind {
	case "random":
		return NewRandom(rng), nil
	case "minimax":
		return NewMinimax(), nil
	case "alphabeta":
		return NewAlphaBeta(), nil
	default:
		return nil, fmt.Errorf("unknown strategy %q", kind)
	}
}

// Rand is the subset of *rand.Rand the bots need.
type Rand interface {
	IntN(n int) int
}

// strength maps the seat's current best hand to [0, 1]. It is a fixed
// static estimate: the hand's category over the number of categories,
// with a bare pocket pair counting as One Pair before the flop. The
// search heuristics key their formulas off this number; they do not model
// future cards or opponents.
func strength(sit game.Situation) float64 {
	cards := make([]deck.Card, 0, len(sit.HoleCards)+len(sit.Community))
	cards = append(cards, sit.HoleCards...)
	cards = append(cards, sit.Community...)

	if len(cards) >= 5 {
		rank, err := evaluator.Rank(cards)
		if err != nil {
			return 0
		}
		return float64(rank.Category) / float64(evaluator.RoyalFlush)
	}

	// Before the flop only the hole cards exist: a pocket pair scores as
	// One Pair, anything else as High Card.
	category := evaluator.HighCard
	if len(cards) == 2 && cards[0].Rank == cards[1].Rank {
		category = evaluator.OnePair
	}
	return float64(category) / float64(evaluator.RoyalFlush)
}

// raiseTotal reproduces the heuristics' raise sizing: the increment is
// the call amount plus min(chips-call, max(5, call)), expressed as a
// total street commitment.
func raiseTotal(sit game.Situation) int {
	raise := sit.CallAmount
	if raise < 5 {
		raise = 5
	}
	if remaining := sit.Chips - sit.CallAmount; raise > remaining {
		raise = remaining
	}
	return sit.CurrentBet + sit.CallAmount + raise
}
