package game

import "github.com/lox/holdemsim/internal/deck"

// Phase is a betting street. Phases strictly increase within a hand and
// reset to PreFlop at hand start.
type Phase int

const (
	PreFlop Phase = iota
	Flop
	Turn
	River
)

// String returns the string representation of a phase
func (p Phase) String() string {
	switch p {
	case PreFlop:
		return "Pre-Flop"
	case Flop:
		return "Flop"
	case Turn:
		return "Turn"
	case River:
		return "River"
	default:
		return "Unknown"
	}
}

// Action is what a strategy wants to do with its turn.
type Action int

const (
	Fold Action = iota
	Check
	Call
	Raise
	AllIn
)

// String returns the string representation of an action
func (a Action) String() string {
	switch a {
	case Fold:
		return "fold"
	case Check:
		return "check"
	case Call:
		return "call"
	case Raise:
		return "raise"
	case AllIn:
		return "all-in"
	default:
		return "unknown"
	}
}

// Decision is a strategy's answer for one turn. Amount is the total
// street commitment for a Raise; it is ignored for other actions.
type Decision struct {
	Action Action
	Amount int
}

// Situation is the read-only view a strategy decides from: the street's
// highest bet, the chips needed to call, and the seat's own cards and
// stack. Strategies never see other seats' hole cards.
type Situation struct {
	Phase      Phase
	HoleCards  []deck.Card
	Community  []deck.Card
	HighestBet int
	CallAmount int
	Pot        int
	Chips      int
	CurrentBet int
}

// Strategy is the decision contract a seat implements. Decide is a
// blocking request-response; the round suspends at the call and resumes
// when it returns. The engine reacts only to the resulting bet delta, not
// to the strategy's stated intent.
type Strategy interface {
	Decide(sit Situation) Decision
}
