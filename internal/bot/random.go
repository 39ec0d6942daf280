package bot

import "github.com/lox/holdemsim/internal/game"

// Random is a baseline strategy that mixes legal actions with fixed
// weights: mostly calls and checks, occasional raises, occasional folds.
// It never requests more than the seat's stack.
type Random struct {
	rng Rand
}

// NewRandom creates a random strategy.
func NewRandom(rng Rand) *Random {
	return &Random{rng: rng}
}

func (r *Random) Decide(sit game.Situation) game.Decision {
	if sit.Chips <= 0 {
		return game.Decision{Action: game.Check}
	}

	// Nothing to call: check most of the time, open for a small bet
	// occasionally.
	if sit.CallAmount <= 0 {
		if r.rng.IntN(4) == 0 {
			return game.Decision{Action: game.Raise, Amount: raiseTotal(sit)}
		}
		return game.Decision{Action: game.Check}
	}

	// Facing a bet that costs the whole stack: coin flip between calling
	// it off and folding.
	if sit.CallAmount >= sit.Chips {
		if r.rng.IntN(2) == 0 {
			return game.Decision{Action: game.AllIn}
		}
		return game.Decision{Action: game.Fold}
	}

	switch r.rng.IntN(10) {
	case 0, 1:
		return game.Decision{Action: game.Fold}
	case 2, 3, 4, 5, 6, 7:
		return game.Decision{Action: game.Call}
	default:
		return game.Decision{Action: game.Raise, Amount: raiseTotal(sit)}
	}
}
