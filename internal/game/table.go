package game

import (
	"fmt"

	"github.com/charmbracelet/log"
)

// ErrIllegalBet is returned when a requested wager violates the
// minimum-call, non-negative-increment, or chip-sufficiency rules. The bet
// is rejected before any state changes.
var ErrIllegalBet = fmt.Errorf("illegal bet")

// Table is the betting engine: it owns the pot and the street's highest
// committed amount, validates wagers, and settles the pot. It holds a
// reference to the shared seat list; it never copies seats.
type Table struct {
	players    []*Player
	pot        int
	currentBet int
	logger     *log.Logger
}

// NewTable creates a betting engine over the given seats.
func NewTable(players []*Player, logger *log.Logger) *Table {
	return &Table{players: players, logger: logger}
}

// Pot returns the current pot.
func (t *Table) Pot() int {
	return t.pot
}

// CurrentBet returns the street's highest committed amount.
func (t *Table) CurrentBet() int {
	return t.currentBet
}

// ApplyBet moves a seat's street commitment to total. The increment
// (total minus the seat's prior commitment) is taken from the seat's
// chips. A total below the street's highest bet is only legal when the
// seat is committing its entire remaining stack (a short all-in).
func (t *Table) ApplyBet(p *Player, total int) error {
	if total < p.CurrentBet {
		return fmt.Errorf("%w: %s bet %d below own committed %d", ErrIllegalBet, p.Name, total, p.CurrentBet)
	}

	increment := total - p.CurrentBet
	if increment > p.Chips {
		return fmt.Errorf("%w: %s bet %d needs %d chips, has %d", ErrIllegalBet, p.Name, total, increment, p.Chips)
	}

	if total < t.currentBet && increment != p.Chips {
		return fmt.Errorf("%w: %s bet %d below current bet %d", ErrIllegalBet, p.Name, total, t.currentBet)
	}

	p.Chips -= increment
	p.CurrentBet = total
	if total > t.currentBet {
		t.currentBet = total
	}
	return nil
}

// CollectBets moves every non-folded seat's street commitment into the
// pot. Idempotent when there is nothing to collect.
func (t *Table) CollectBets() {
	for _, p := range t.players {
		if !p.Folded && p.CurrentBet > 0 {
			t.pot += p.CurrentBet
			p.CurrentBet = 0
		}
	}
}

// ResetStreet zeroes the street's highest bet and every seat's street
// commitment. Called between phases, not between hands; the pot already
// holds prior streets' contributions.
func (t *Table) ResetStreet() {
	t.currentBet = 0
	for _, p := range t.players {
		p.CurrentBet = 0
	}
}

// ResetPot clears the pot at hand start.
func (t *Table) ResetPot() {
	t.pot = 0
}

// Distribute pays the pot out in equal integer shares. The remainder of
// an uneven split is dropped, matching the game's historical accounting;
// it is logged so the loss is visible.
func (t *Table) Distribute(winners []*Player) {
	if len(winners) == 0 {
		return
	}

	share := t.pot / len(winners)
	remainder := t.pot % len(winners)
	for _, w := range winners {
		w.Chips += share
	}
	if remainder > 0 {
		t.logger.Debug("dropped remainder chips on split pot", "remainder", remainder, "winners", len(winners))
	}
	t.pot = 0
}
