package bot

import "github.com/lox/holdemsim/internal/game"

// AlphaBeta is the "alpha-beta" seat behaviour. It walks the same three
// actions as Minimax with an alpha-beta window and prunes when the window
// closes, but with a single ply of fixed formulas the pruning never
// changes the answer; the two differ in shape only.
type AlphaBeta struct{}

// NewAlphaBeta creates an alpha-beta strategy.
func NewAlphaBeta() *AlphaBeta {
	return &AlphaBeta{}
}

func (a *AlphaBeta) Decide(sit game.Situation) game.Decision {
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
	alpha, beta := negInf, -negInf
	for _, action := range []game.Action{game.Fold, game.Call, game.Raise} {
		value := a.valueOf(action, s)
		if value > bestValue {
			bestValue = value
			best = action
		}
		if value > alpha {
			alpha = value
		}
		if alpha >= beta {
			break
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

func (a *AlphaBeta) valueOf(action game.Action, s float64) float64 {
	switch action {
	case game.Fold:
		return evalFold()
	case game.Call:
		return evalPostCall(s)
	default:
		return min3(evalOpponentFold(s), evalOpponentCall(s), evalOpponentReraise(s))
	}
}
