package game

import (
	"fmt"
	rand "math/rand/v2"

	"github.com/lox/holdemsim/internal/deck"
)

// Dealer wraps the draw pile for a hand: hole cards, burns, and the
// running community list.
type Dealer struct {
	shoe      *deck.Deck
	community []deck.Card
}

// NewDealer creates a dealer over a shoe of decks standard decks. A deck
// count below 1 is a fatal configuration error.
func NewDealer(rng *rand.Rand, decks int) (*Dealer, error) {
	shoe, err := deck.NewShoe(rng, decks)
	if err != nil {
		return nil, err
	}
	return &Dealer{shoe: shoe, community: make([]deck.Card, 0, 5)}, nil
}

// Community returns the community cards dealt so far this hand.
func (d *Dealer) Community() []deck.Card {
	return d.community
}

// DealHoleCards deals two hole cards to every seat in two round-robin
// passes, one card per seat per pass.
func (d *Dealer) DealHoleCards(players []*Player) error {
	for pass := 0; pass < 2; pass++ {
		for _, p := range players {
			card, ok := d.shoe.Draw()
			if !ok {
				return fmt.Errorf("deck depleted dealing hole cards")
			}
			p.ReceiveCard(card)
		}
	}
	return nil
}

// DealCommunity burns one card, then appends count cards to the
// community list.
func (d *Dealer) DealCommunity(count int) error {
	if _, ok := d.shoe.Draw(); !ok {
		return fmt.Errorf("deck depleted on burn")
	}
	for i := 0; i < count; i++ {
		card, ok := d.shoe.Draw()
		if !ok {
			return fmt.Errorf("deck depleted dealing community cards")
		}
		d.community = append(d.community, card)
	}
	return nil
}

// Reset reshuffles the full shoe and clears the community list for a new
// hand.
func (d *Dealer) Reset() {
	d.shoe.Reset()
	d.community = d.community[:0]
}
