package evaluator

import "github.com/lox/holdemsim/internal/deck"

// Category is the primary strength class of a 5-card hand. Higher is
// stronger.
type Category int

const (
	HighCard Category = iota + 1
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

// String returns the readable name of the category
func (c Category) String() string {
	switch c {
	case RoyalFlush:
		return "Royal Flush"
	case StraightFlush:
		return "Straight Flush"
	case FourOfAKind:
		return "Four of a Kind"
	case FullHouse:
		return "Full House"
	case Flush:
		return "Flush"
	case Straight:
		return "Straight"
	case ThreeOfAKind:
		return "Three of a Kind"
	case TwoPair:
		return "Two Pair"
	case OnePair:
		return "One Pair"
	case HighCard:
		return "High Card"
	default:
		return "Unknown"
	}
}

// HandRank is the total-ordered key for a 5-card hand: a category plus a
// category-specific tiebreak sequence. Two ranks with equal category and
// equal tiebreaks are an exact tie.
type HandRank struct {
	Category  Category
	Tiebreaks []deck.Rank
}

// Compare returns 1 if h is stronger than other, -1 if weaker, 0 on an
// exact tie. Categories order first, then tiebreaks lexicographically.
func (h HandRank) Compare(other HandRank) int {
	if h.Category != other.Category {
		if h.Category > other.Category {
			return 1
		}
		return -1
	}

	n := len(h.Tiebreaks)
	if len(other.Tiebreaks) < n {
		n = len(other.Tiebreaks)
	}
	for i := 0; i < n; i++ {
		if h.Tiebreaks[i] != other.Tiebreaks[i] {
			if h.Tiebreaks[i] > other.Tiebreaks[i] {
				return 1
			}
			return -1
		}
	}
	return 0
}

// Equal reports whether two ranks tie exactly.
func (h HandRank) Equal(other HandRank) bool {
	return h.Compare(other) == 0
}

// String returns the category name
func (h HandRank) String() string {
	return h.Category.String()
}
