package bot

import "github.com/lox/holdemsim/internal/game"

// Minimax is the "minimax" seat behaviour: a single-ply expected-value
// heuristic over the static hand-strength estimate. The raise value is
// the minimum over the modelled opponent responses; there is no recursive
// opponent model and no search depth beyond that.
type Minimax struct{}

// NewMinimax creates a minimax strategy.
func NewMinimax() *Minimax {
	return &Minimax{}
}

// Decide picks the action with the highest expected value among fold,
// call, and raise. When calling costs the whole stack the choice
// degenerates to all-in versus fold.
func (m *Minimax) Decide(sit game.Situation) game.Decision {
	if sit.Chips <= 0 {
		return game.Decision{Action: game.Check}
	}

	s := strength(sit)

	if sit.CallAmount >= sit.Chips {
		if evalAllIn(s) >= evalFold() {
			return game.Decision{Action: game.AllIn}
		}
		return game.Decision{Action: game.Fold}
	}

	best := game.Fold
	bestValue := negInf
	for _, action := range []game.Action{game.Fold, game.Call, game.Raise} {
		value := m.valueOf(action, s)
		if value > bestValue {
			bestValue = value
			best = action
		}
	}

	switch best {
	case game.Call:
		return game.Decision{Action: game.Call}
	case game.Raise:
		return game.Decision{Action: game.Raise, Amount: raiseTotal(sit)}
	default:
		return game.Decision{Action: game.Fold}
	}
}

// valueOf scores a single action. Raising is valued pessimistically: the
// worst of the opponent folding, calling, or re-raising.
func (m *Minimax) valueOf(action game.Action, s float64) float64 {
	switch action {
	case game.Fold:
		return evalFold()
	case game.Call:
		return evalPostCall(s)
	default:
		return min3(evalOpponentFold(s), evalOpponentCall(s), evalOpponentReraise(s))
	}
}

const negInf = -1e18

// The fixed EV formulas, keyed off the static strength estimate.

func evalFold() float64 { return 0 }

func evalAllIn(s float64) float64 { return 300 * (s - 0.5) }

func evalPostCall(s float64) float64 { return 200 * (s - 0.5) }

func evalOpponentFold(s float64) float64 { return 150 + 150*(s-0.5) }

func evalOpponentCall(s float64) float64 { return 200 * (s - 0.5) }

func evalOpponentReraise(s float64) float64 { return 200*(s-0.5) - 50 }

func min3(a, b, c float64) float64 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
