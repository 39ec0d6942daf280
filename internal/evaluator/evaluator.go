// Package evaluator ranks poker hands. A hand of 5 to 7 cards is scored by
// evaluating every 5-card subset and keeping the strongest, so the result
// is independent of input order and of which cards carry duplicate ranks.
package evaluator

import (
	"fmt"
	"sort"

	"github.com/lox/holdemsim/internal/deck"
)

// ErrTooFewCards is returned when fewer than 5 cards are available to
// rank. Phase sequencing should make this impossible at showdown; callers
// treat it as a fatal invariant violation.
var ErrTooFewCards = fmt.Errorf("hand evaluation requires at least 5 cards")

// Rank returns the best achievable 5-card HandRank from the given cards.
func Rank(cards []deck.Card) (HandRank, error) {
	if len(cards) < 5 {
		return HandRank{}, fmt.Errorf("%w: got %d", ErrTooFewCards, len(cards))
	}

	best := HandRank{}
	var combo [5]deck.Card
	forEachFive(cards, combo[:], 0, 0, func(five []deck.Card) {
		r := rankFive(five)
		if best.Category == 0 || r.Compare(best) > 0 {
			best = r
		}
	})
	return best, nil
}

// forEachFive visits every 5-card subset of cards.
func forEachFive(cards, combo []deck.Card, start, depth int, fn func([]deck.Card)) {
	if depth == 5 {
		fn(combo)
		return
	}
	for i := start; i <= len(cards)-(5-depth); i++ {
		combo[depth] = cards[i]
		forEachFive(cards, combo, i+1, depth+1, fn)
	}
}

// rankFive scores exactly 5 cards. Detection runs strongest-first; the
// first matching category wins.
func rankFive(cards []deck.Card) HandRank {
	ranks := make([]deck.Rank, 5)
	for i, c := range cards {
		ranks[i] = c.Rank
	}
	sort.Slice(ranks, func(i, j int) bool { return ranks[i] > ranks[j] })

	flush := true
	for _, c := range cards[1:] {
		if c.Suit != cards[0].Suit {
			flush = false
			break
		}
	}

	straightHigh, straight := straightHighCard(ranks)

	if flush && straight {
		if straightHigh == deck.Ace {
			return HandRank{Category: RoyalFlush}
		}
		return HandRank{Category: StraightFlush, Tiebreaks: []deck.Rank{straightHigh}}
	}

	counts := map[deck.Rank]int{}
	for _, r := range ranks {
		counts[r]++
	}

	// Group ranks by multiplicity, highest count first, then highest rank.
	type group struct {
		rank  deck.Rank
		count int
	}
	groups := make([]group, 0, len(counts))
	for r, n := range counts {
		groups = append(groups, group{rank: r, count: n})
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].count != groups[j].count {
			return groups[i].count > groups[j].count
		}
		return groups[i].rank > groups[j].rank
	})

	groupRanks := func() []deck.Rank {
		out := make([]deck.Rank, len(groups))
		for i, g := range groups {
			out[i] = g.rank
		}
		return out
	}

	switch {
	case groups[0].count == 4:
		// Quad rank, then best kicker.
		return HandRank{Category: FourOfAKind, Tiebreaks: groupRanks()}
	case groups[0].count == 3 && groups[1].count == 2:
		return HandRank{Category: FullHouse, Tiebreaks: groupRanks()}
	case flush:
		return HandRank{Category: Flush, Tiebreaks: ranks}
	case straight:
		return HandRank{Category: Straight, Tiebreaks: []deck.Rank{straightHigh}}
	case groups[0].count == 3:
		// Triple rank, then two kickers descending.
		return HandRank{Category: ThreeOfAKind, Tiebreaks: groupRanks()}
	case groups[0].count == 2 && groups[1].count == 2:
		// High pair, low pair, kicker.
		return HandRank{Category: TwoPair, Tiebreaks: groupRanks()}
	case groups[0].count == 2:
		// Pair rank, then three kickers descending.
		return HandRank{Category: OnePair, Tiebreaks: groupRanks()}
	default:
		return HandRank{Category: HighCard, Tiebreaks: ranks}
	}
}

// straightHighCard reports whether the descending ranks form a straight
// and its high card. The wheel A-2-3-4-5 counts as a 5-high straight; the
// Ace is low there and nowhere else.
func straightHighCard(ranks []deck.Rank) (deck.Rank, bool) {
	run := true
	for i := 0; i < 4; i++ {
		if ranks[i]-1 != ranks[i+1] {
			run = false
			break
		}
	}
	if run {
		return ranks[0], true
	}

	if ranks[0] == deck.Ace && ranks[1] == deck.Five && ranks[2] == deck.Four &&
		ranks[3] == deck.Three && ranks[4] == deck.Two {
		return deck.Five, true
	}

	return 0, false
}
