package deck

import (
	"fmt"
	rand "math/rand/v2"
)

// ErrDeckCount is returned when a shoe is constructed with fewer than one
// deck. This is a fatal configuration error, not a recoverable condition.
var ErrDeckCount = fmt.Errorf("deck count must be at least 1")

// DeckSize is the number of cards in a single standard deck.
const DeckSize = 52

// Deck is a draw pile of one or more standard 52-card decks.
type Deck struct {
	cards []Card
	decks int
	rng   *rand.Rand
}

// New creates a single shuffled 52-card deck.
func New(rng *rand.Rand) *Deck {
	d, _ := NewShoe(rng, 1)
	return d
}

// NewShoe creates a shuffled shoe of n standard decks. A count below 1 is
// rejected with ErrDeckCount.
func NewShoe(rng *rand.Rand, n int) (*Deck, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrDeckCount, n)
	}

	d := &Deck{
		cards: make([]Card, 0, n*DeckSize),
		decks: n,
		rng:   rng,
	}
	d.fill()
	d.Shuffle()
	return d, nil
}

func (d *Deck) fill() {
	d.cards = d.cards[:0]
	for i := 0; i < d.decks; i++ {
		for suit := Spades; suit <= Clubs; suit++ {
			for rank := Two; rank <= Ace; rank++ {
				d.cards = append(d.cards, NewCard(rank, suit))
			}
		}
	}
}

// Shuffle randomizes the order of the remaining cards.
func (d *Deck) Shuffle() {
	for i := len(d.cards) - 1; i > 0; i-- {
		j := d.rng.IntN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Draw removes and returns the top card. The second return is false when
// the shoe is depleted.
func (d *Deck) Draw() (Card, bool) {
	if len(d.cards) == 0 {
		return Card{}, false
	}
	card := d.cards[0]
	d.cards = d.cards[1:]
	return card, true
}

// Remaining returns the number of cards left.
func (d *Deck) Remaining() int {
	return len(d.cards)
}

// Reset restores the shoe to its full size and reshuffles.
func (d *Deck) Reset() {
	d.fill()
	d.Shuffle()
}
