package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/holdemsim/internal/deck"
	"github.com/lox/holdemsim/internal/game"
)

// fakeRand returns a scripted sequence of values.
type fakeRand struct {
	values []int
	i      int
}

func (f *fakeRand) IntN(n int) int {
	v := f.values[f.i%len(f.values)]
	f.i++
	return v % n
}

func situation(t *testing.T, hole, community string) game.Situation {
	t.Helper()
	sit := game.Situation{Chips: 100}
	var err error
	sit.HoleCards, err = deck.ParseCards(hole)
	require.NoError(t, err)
	if community != "" {
		sit.Community, err = deck.ParseCards(community)
		require.NoError(t, err)
	}
	return sit
}

func TestNewFactory(t *testing.T) {
	for _, kind := range []string{"random", "minimax", "alphabeta"} {
		s, err := New(kind, &fakeRand{values: []int{0}})
		require.NoError(t, err, kind)
		assert.NotNil(t, s)
	}

	_, err := New("psychic", nil)
	assert.Error(t, err)
}

func TestStrength(t *testing.T) {
	tests := []struct {
		name      string
		hole      string
		community string
		want      float64
	}{
		{"unpaired hole cards", "As2c", "", 0.1},
		{"pocket pair", "QsQh", "", 0.2},
		{"high card on the flop", "2c7d", "KhTs4c", 0.1},
		{"flush", "Ah9h", "7h4h2h", 0.6},
		{"royal flush", "AsKs", "QsJsTs", 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sit := situation(t, tt.hole, tt.community)
			assert.InDelta(t, tt.want, strength(sit), 1e-9)
		})
	}
}

func TestRaiseTotal(t *testing.T) {
	tests := []struct {
		name string
		sit  game.Situation
		want int
	}{
		{
			name: "minimum open is five",
			sit:  game.Situation{Chips: 100},
			want: 5,
		},
		{
			name: "raise matches the call amount",
			sit:  game.Situation{Chips: 100, CurrentBet: 10, CallAmount: 20},
			want: 50,
		},
		{
			name: "raise is capped at the stack",
			sit:  game.Situation{Chips: 25, CallAmount: 20},
			want: 25,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, raiseTotal(tt.sit))
		})
	}
}

// The heuristic strategies share the one-ply expected-value formulas;
// minimax and alpha-beta must land on the same action for the same
// situation.
func TestHeuristicDecisions(t *testing.T) {
	strategies := map[string]game.Strategy{
		"minimax":   NewMinimax(),
		"alphabeta": NewAlphaBeta(),
	}

	tests := []struct {
		name      string
		hole      string
		community string
		call      int
		chips     int
		want      game.Action
	}{
		{
			name:  "folds weak hands facing a bet",
			hole:  "2c7d",
			call:  20,
			chips: 100,
			want:  game.Fold,
		},
		{
			name:      "calls with a strong made hand",
			hole:      "Ah9h",
			community: "7h4h2h",
			call:      20,
			chips:     100,
			want:      game.Call,
		},
		{
			name:      "a coin-flip hand folds rather than calls",
			hole:      "6h5s",
			community: "4d3c2s",
			call:      20,
			chips:     100,
			want:      game.Fold,
		},
		{
			name:      "calls it off for the stack with a coin-flip hand",
			hole:      "6h5s",
			community: "4d3c2s",
			call:      100,
			chips:     100,
			want:      game.AllIn,
		},
		{
			name:  "folds for the stack with a weak hand",
			hole:  "2c7d",
			call:  100,
			chips: 100,
			want:  game.Fold,
		},
	}

	for name, strategy := range strategies {
		for _, tt := range tests {
			t.Run(name+"/"+tt.name, func(t *testing.T) {
				sit := situation(t, tt.hole, tt.community)
				sit.CallAmount = tt.call
				sit.Chips = tt.chips
				sit.HighestBet = tt.call

				decision := strategy.Decide(sit)
				assert.Equal(t, tt.want, decision.Action)
			})
		}
	}
}

func TestHeuristicsNeverRaise(t *testing.T) {
	// The raise value is always the re-raise response, which trails the
	// call value by a constant; raising can never win the argmax.
	for name, strategy := range map[string]game.Strategy{
		"minimax":   NewMinimax(),
		"alphabeta": NewAlphaBeta(),
	} {
		for _, hole := range []string{"2c7d", "QsQh", "AsKs"} {
			sit := situation(t, hole, "")
			sit.CallAmount = 10
			decision := strategy.Decide(sit)
			assert.NotEqual(t, game.Raise, decision.Action, "%s with %s", name, hole)
		}
	}
}

func TestHeuristicChecksWhenFelted(t *testing.T) {
	sit := situation(t, "AsKs", "")
	sit.Chips = 0

	assert.Equal(t, game.Check, NewMinimax().Decide(sit).Action)
	assert.Equal(t, game.Check, NewAlphaBeta().Decide(sit).Action)
}

func TestRandomDecisions(t *testing.T) {
	sit := situation(t, "As2c", "")

	t.Run("no bet to call", func(t *testing.T) {
		open := NewRandom(&fakeRand{values: []int{0}}).Decide(sit)
		assert.Equal(t, game.Raise, open.Action)
		assert.Equal(t, 5, open.Amount)

		check := NewRandom(&fakeRand{values: []int{1}}).Decide(sit)
		assert.Equal(t, game.Check, check.Action)
	})

	t.Run("facing an affordable bet", func(t *testing.T) {
		facing := sit
		facing.CallAmount = 20

		assert.Equal(t, game.Fold, NewRandom(&fakeRand{values: []int{0}}).Decide(facing).Action)
		assert.Equal(t, game.Call, NewRandom(&fakeRand{values: []int{5}}).Decide(facing).Action)
		assert.Equal(t, game.Raise, NewRandom(&fakeRand{values: []int{9}}).Decide(facing).Action)
	})

	t.Run("facing a bet for the stack", func(t *testing.T) {
		facing := sit
		facing.CallAmount = 100

		assert.Equal(t, game.AllIn, NewRandom(&fakeRand{values: []int{0}}).Decide(facing).Action)
		assert.Equal(t, game.Fold, NewRandom(&fakeRand{values: []int{1}}).Decide(facing).Action)
	})

	t.Run("felted seat checks", func(t *testing.T) {
		felted := sit
		felted.Chips = 0
		assert.Equal(t, game.Check, NewRandom(&fakeRand{values: []int{0}}).Decide(felted).Action)
	})
}
