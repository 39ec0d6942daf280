package game

import (
	"fmt"
	rand "math/rand/v2"
	"os"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/lox/holdemsim/internal/deck"
	"github.com/lox/holdemsim/internal/evaluator"
)

// Outcome describes how a hand ended.
type Outcome int

const (
	// OutcomeShowdown means the hand reached showdown and the evaluator
	// picked the winners.
	OutcomeShowdown Outcome = iota
	// OutcomeFold means everyone but one seat folded before showdown.
	OutcomeFold
	// OutcomeDead means no non-folded seat remained; the pot was not
	// distributed.
	OutcomeDead
)

// String returns the string representation of an outcome
func (o Outcome) String() string {
	switch o {
	case OutcomeShowdown:
		return "showdown"
	case OutcomeFold:
		return "fold"
	case OutcomeDead:
		return "dead"
	default:
		return "unknown"
	}
}

// HandResult summarises a completed hand.
type HandResult struct {
	ID      string
	Outcome Outcome
	Winners []string
	Pot     int // Pot size at the moment of distribution
}

// SeatConfig pairs a named stack with its decision strategy.
type SeatConfig struct {
	Name     string
	Chips    int
	Strategy Strategy
}

// Game drives hands through their phases: positions, blinds, four betting
// streets, default-win short circuits, showdown, and button rotation. It
// owns the seat collection; the dealer and table operate on the same seat
// instances, never copies.
type Game struct {
	players    []*Player
	strategies []Strategy
	dealer     *Dealer
	table      *Table
	button     int
	logger     *log.Logger
}

// Option configures a Game during creation.
type Option func(*gameConfig)

type gameConfig struct {
	decks  int
	button int
	logger *log.Logger
	dealer *Dealer
}

// WithDecks sets the number of decks in the shoe. Default is 1; a count
// below 1 fails construction.
func WithDecks(n int) Option {
	return func(c *gameConfig) { c.decks = n }
}

// WithButton sets the initial button position.
func WithButton(pos int) Option {
	return func(c *gameConfig) { c.button = pos }
}

// WithLogger sets the logger. Default logs nothing an operator didn't ask
// for (stderr at the global level).
func WithLogger(logger *log.Logger) Option {
	return func(c *gameConfig) { c.logger = logger }
}

// WithDealer sets a pre-built dealer, overriding WithDecks. Used by tests
// that need a stacked shoe.
func WithDealer(d *Dealer) Option {
	return func(c *gameConfig) { c.dealer = d }
}

// NewGame creates a game over the given seats. The RNG is required so
// randomness is explicit and tests are deterministic.
func NewGame(rng *rand.Rand, seats []SeatConfig, opts ...Option) (*Game, error) {
	if len(seats) < 2 {
		return nil, fmt.Errorf("at least 2 seats required, got %d", len(seats))
	}

	cfg := &gameConfig{decks: 1}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = log.New(os.Stderr)
	}
	if cfg.button < 0 || cfg.button >= len(seats) {
		return nil, fmt.Errorf("button position %d out of range", cfg.button)
	}

	dealer := cfg.dealer
	if dealer == nil {
		var err error
		dealer, err = NewDealer(rng, cfg.decks)
		if err != nil {
			return nil, err
		}
	}

	// Two hole cards per seat, three burns, and the full board must fit
	// in the shoe; reject oversized lineups here rather than mid-deal.
	need := 2*len(seats) + 8
	if need > dealer.shoe.Remaining() {
		return nil, fmt.Errorf("%d seats need %d cards per hand, the shoe holds %d", len(seats), need, dealer.shoe.Remaining())
	}

	players := make([]*Player, len(seats))
	strategies := make([]Strategy, len(seats))
	for i, s := range seats {
		if s.Strategy == nil {
			return nil, fmt.Errorf("seat %q has no strategy", s.Name)
		}
		players[i] = NewPlayer(s.Name, s.Chips)
		strategies[i] = s.Strategy
	}

	return &Game{
		players:    players,
		strategies: strategies,
		dealer:     dealer,
		table:      NewTable(players, cfg.logger),
		button:     cfg.button,
		logger:     cfg.logger,
	}, nil
}

// Players returns the shared seat list.
func (g *Game) Players() []*Player {
	return g.players
}

// Button returns the current button position.
func (g *Game) Button() int {
	return g.button
}

// PlayHand runs one complete hand: setup, positions, blinds, the four
// betting streets with default-win checkpoints, showdown, and button
// rotation. The button rotates exactly once per hand on every exit path.
func (g *Game) PlayHand() (*HandResult, error) {
	defer g.rotateButton()

	result := &HandResult{ID: uuid.NewString()}
	g.logger.Debug("starting hand", "hand", result.ID, "button", g.button)

	g.setupHand()
	g.assignPositions()

	smallBlind, bigBlind := g.dynamicBlinds()
	if err := g.postBlinds(smallBlind, bigBlind); err != nil {
		return nil, err
	}
	g.table.CollectBets()

	if err := g.bettingRound(PreFlop); err != nil {
		return nil, err
	}
	if g.checkDefaultWinner(result) {
		return result, nil
	}

	streets := []struct {
		phase Phase
		cards int
	}{
		{Flop, 3},
		{Turn, 1},
		{River, 1},
	}
	for _, street := range streets {
		if err := g.dealer.DealCommunity(street.cards); err != nil {
			return nil, err
		}
		g.logger.Info("community cards", "phase", street.phase, "board", g.dealer.Community())

		if err := g.bettingRound(street.phase); err != nil {
			return nil, err
		}
		if g.checkDefaultWinner(result) {
			return result, nil
		}
	}

	if err := g.showdown(result); err != nil {
		return nil, err
	}
	return result, nil
}

// setupHand resets the deck, the pot, and every seat's per-hand state,
// then deals hole cards.
func (g *Game) setupHand() {
	g.dealer.Reset()
	g.table.ResetPot()
	g.table.ResetStreet()
	for _, p := range g.players {
		p.ResetForHand()
	}
	if err := g.dealer.DealHoleCards(g.players); err != nil {
		// NewGame bounds the lineup to the shoe, so a depleted deal here
		// is a construction bug, not a runtime condition.
		panic(err)
	}
	for _, p := range g.players {
		g.logger.Debug("dealt hole cards", "seat", p.Name, "cards", p.HoleCards)
	}
}

// assignPositions rotates the Dealer/SB/BB tags from the button. With two
// seats the big blind lands back on the button, matching the simplified
// table model.
func (g *Game) assignPositions() {
	n := len(g.players)
	for _, p := range g.players {
		p.Position = PositionNone
	}
	g.players[g.button].Position = PositionDealer
	g.players[(g.button+1)%n].Position = PositionSmallBlind
	g.players[(g.button+2)%n].Position = PositionBigBlind

	g.logger.Info("positions assigned",
		"dealer", g.players[g.button].Name,
		"smallBlind", g.players[(g.button+1)%n].Name,
		"bigBlind", g.players[(g.button+2)%n].Name)
}

// dynamicBlinds computes the blinds from the smallest live stack: small
// blind is 10% of it (at least 1), big blind twice that.
func (g *Game) dynamicBlinds() (int, int) {
	lowest := 0
	for _, p := range g.players {
		if p.Chips > 0 && (lowest == 0 || p.Chips < lowest) {
			lowest = p.Chips
		}
	}

	smallBlind := lowest / 10
	if smallBlind < 1 {
		smallBlind = 1
	}
	bigBlind := smallBlind * 2

	g.logger.Info("blinds set", "lowestStack", lowest, "smallBlind", smallBlind, "bigBlind", bigBlind)
	return smallBlind, bigBlind
}

// postBlinds applies the blinds as bets, small blind strictly before big
// blind regardless of seat order, capped at each poster's stack (an
// all-in blind is allowed). Posting big first would raise the street bet
// above the small blind and make the small blind's post illegal.
func (g *Game) postBlinds(smallBlind, bigBlind int) error {
	if err := g.postBlind(PositionSmallBlind, smallBlind); err != nil {
		return err
	}
	return g.postBlind(PositionBigBlind, bigBlind)
}

func (g *Game) postBlind(position Position, blind int) error {
	for _, p := range g.players {
		if p.Position != position {
			continue
		}
		amount := min(blind, p.Chips)
		if amount == 0 {
			return nil
		}
		if err := g.table.ApplyBet(p, p.CurrentBet+amount); err != nil {
			return fmt.Errorf("posting blind for %s: %w", p.Name, err)
		}
		g.logger.Info("blind posted", "seat", p.Name, "position", position, "amount", amount)
		return nil
	}
	return nil
}

// bettingRound iterates seats in order, repeating full passes until every
// active seat has matched the street's highest bet, a full pass produces
// no bet change (the stall guard for tables of all-ins), or at most one
// active seat remains. Every active seat is solicited at least once per
// street. Committed bets are then collected into the pot.
func (g *Game) bettingRound(phase Phase) error {
	g.table.ResetStreet()
	g.logger.Debug("betting round", "phase", phase, "pot", g.table.Pot())

	n := len(g.players)
	highest := 0
	start := g.firstToAct(phase)

	for {
		acted := false

		for i := 0; i < n; i++ {
			p := g.players[(start+i)%n]
			if p.Folded || p.Chips <= 0 {
				continue
			}
			// A pass only short-circuits once a bet is open and matched
			// all around; with no open bet every seat still gets its turn.
			if highest > 0 && g.allBetsMatched(highest) {
				break
			}

			previous := p.CurrentBet
			callAmount := highest - p.CurrentBet
			if err := g.solicitDecision((start+i)%n, phase, highest, callAmount); err != nil {
				return err
			}

			if !p.Folded && p.CurrentBet > previous+callAmount {
				highest = p.CurrentBet
			}
			if p.CurrentBet != previous {
				acted = true
			}
		}

		if g.allBetsMatched(highest) {
			break
		}
		if !acted {
			break
		}
		if g.countUnfolded() <= 1 {
			break
		}
	}

	g.table.CollectBets()
	return nil
}

// solicitDecision asks one seat's strategy for a decision and applies it
// through the betting engine. An illegal request is never applied
// silently: the engine falls back to a forced call when affordable,
// otherwise a forced fold.
func (g *Game) solicitDecision(idx int, phase Phase, highest, callAmount int) error {
	p := g.players[idx]
	decision := g.strategies[idx].Decide(Situation{
		Phase:      phase,
		HoleCards:  p.HoleCards,
		Community:  g.dealer.Community(),
		HighestBet: highest,
		CallAmount: callAmount,
		Pot:        g.table.Pot(),
		Chips:      p.Chips,
		CurrentBet: p.CurrentBet,
	})

	var err error
	switch decision.Action {
	case Fold:
		p.Fold()
		g.logger.Info("action", "seat", p.Name, "action", Fold)
		return nil
	case Check:
		g.logger.Info("action", "seat", p.Name, "action", Check)
		return nil
	case Call:
		total := highest
		if callAmount > p.Chips {
			total = p.CurrentBet + p.Chips // short all-in call
		}
		err = g.table.ApplyBet(p, total)
	case Raise:
		err = g.table.ApplyBet(p, decision.Amount)
	case AllIn:
		err = g.table.ApplyBet(p, p.CurrentBet+p.Chips)
	default:
		err = fmt.Errorf("%w: unknown action %d", ErrIllegalBet, decision.Action)
	}

	if err == nil {
		g.logger.Info("action", "seat", p.Name, "action", decision.Action, "bet", p.CurrentBet, "chips", p.Chips)
		return nil
	}

	// Forced fallback: call when affordable, fold otherwise.
	g.logger.Warn("rejected illegal bet", "seat", p.Name, "action", decision.Action, "amount", decision.Amount, "error", err)
	if callAmount <= p.Chips {
		if err := g.table.ApplyBet(p, highest); err != nil {
			return fmt.Errorf("forced call for %s: %w", p.Name, err)
		}
		g.logger.Info("action", "seat", p.Name, "action", Call, "forced", true)
		return nil
	}
	p.Fold()
	g.logger.Info("action", "seat", p.Name, "action", Fold, "forced", true)
	return nil
}

// firstToAct returns the seat index that opens the street: left of the
// big blind pre-flop, left of the button after.
func (g *Game) firstToAct(phase Phase) int {
	n := len(g.players)
	if phase == PreFlop {
		for i, p := range g.players {
			if p.Position == PositionBigBlind {
				return (i + 1) % n
			}
		}
	}
	return (g.button + 1) % n
}

// allBetsMatched reports whether every active seat has committed at least
// the street's highest bet. Seats that are folded or out of chips are not
// counted; an all-in seat matches by definition.
func (g *Game) allBetsMatched(highest int) bool {
	for _, p := range g.players {
		if p.Folded || p.Chips <= 0 {
			continue
		}
		if p.CurrentBet < highest {
			return false
		}
	}
	return true
}

func (g *Game) countUnfolded() int {
	count := 0
	for _, p := range g.players {
		if !p.Folded {
			count++
		}
	}
	return count
}

// checkDefaultWinner ends the hand early when at most one non-folded seat
// remains. A single survivor takes the whole pot without showdown; zero
// survivors ends the hand with no distribution.
func (g *Game) checkDefaultWinner(result *HandResult) bool {
	var survivor *Player
	unfolded := 0
	for _, p := range g.players {
		if !p.Folded {
			survivor = p
			unfolded++
		}
	}

	switch unfolded {
	case 1:
		result.Outcome = OutcomeFold
		result.Winners = []string{survivor.Name}
		result.Pot = g.table.Pot()
		g.logger.Info("won by default", "seat", survivor.Name, "pot", result.Pot)
		g.table.Distribute([]*Player{survivor})
		return true
	case 0:
		result.Outcome = OutcomeDead
		result.Pot = g.table.Pot()
		g.logger.Warn("all seats folded, pot not distributed", "pot", result.Pot)
		return true
	default:
		return false
	}
}

// showdown compares the remaining seats' best hands and splits the pot
// among the winners.
func (g *Game) showdown(result *HandResult) error {
	winners, err := g.bestAmong()
	if err != nil {
		return err
	}

	result.Outcome = OutcomeShowdown
	result.Pot = g.table.Pot()
	for _, w := range winners {
		result.Winners = append(result.Winners, w.Name)
	}
	g.logger.Info("showdown", "winners", result.Winners, "pot", result.Pot)

	g.table.Distribute(winners)
	return nil
}

// bestAmong returns every non-folded seat whose hand ranks maximal
// against the community cards, ties included. All seats folded yields an
// empty set.
func (g *Game) bestAmong() ([]*Player, error) {
	var best evaluator.HandRank
	var winners []*Player

	for _, p := range g.players {
		if p.Folded {
			continue
		}

		cards := make([]deck.Card, 0, len(p.HoleCards)+len(g.dealer.Community()))
		cards = append(cards, p.HoleCards...)
		cards = append(cards, g.dealer.Community()...)

		rank, err := evaluator.Rank(cards)
		if err != nil {
			return nil, fmt.Errorf("evaluating %s: %w", p.Name, err)
		}
		g.logger.Debug("showdown hand", "seat", p.Name, "rank", rank, "cards", cards)

		switch {
		case len(winners) == 0 || rank.Compare(best) > 0:
			best = rank
			winners = winners[:0]
			winners = append(winners, p)
		case rank.Compare(best) == 0:
			winners = append(winners, p)
		}
	}

	return winners, nil
}

// rotateButton advances the button, exactly once per hand regardless of
// how the hand exited.
func (g *Game) rotateButton() {
	g.button = (g.button + 1) % len(g.players)
}
