package game

import "github.com/lox/holdemsim/internal/deck"

// Position is a table position tag, reassigned every hand.
type Position int

const (
	PositionNone Position = iota
	PositionDealer
	PositionSmallBlind
	PositionBigBlind
)

// String returns the string representation of a position
func (p Position) String() string {
	switch p {
	case PositionDealer:
		return "Dealer"
	case PositionSmallBlind:
		return "Small Blind"
	case PositionBigBlind:
		return "Big Blind"
	default:
		return "None"
	}
}

// Player is a seat at the table. Chips persist across hands; everything
// else is per-hand state reset by ResetForHand.
type Player struct {
	Name       string
	Chips      int
	CurrentBet int // Committed this street, not yet collected
	HoleCards  []deck.Card
	Folded     bool
	Position   Position
}

// NewPlayer creates a seat with a starting stack.
func NewPlayer(name string, chips int) *Player {
	return &Player{Name: name, Chips: chips}
}

// Fold marks the seat as folded for the rest of the hand.
func (p *Player) Fold() {
	p.Folded = true
}

// ResetForHand clears per-hand state. Chips are untouched.
func (p *Player) ResetForHand() {
	p.HoleCards = p.HoleCards[:0]
	p.CurrentBet = 0
	p.Folded = false
	p.Position = PositionNone
}

// ReceiveCard appends a hole card.
func (p *Player) ReceiveCard(c deck.Card) {
	p.HoleCards = append(p.HoleCards, c)
}

// CanAct reports whether the seat participates in betting: not folded and
// holding chips. A folded or felted seat is skipped without consuming a
// turn.
func (p *Player) CanAct() bool {
	return !p.Folded && p.Chips > 0
}
