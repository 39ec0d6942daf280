package bot

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lox/holdemsim/internal/game"
)

func TestHumanParsesActions(t *testing.T) {
	tests := []struct {
		name  string
		input string
		call  int
		want  game.Decision
	}{
		{"fold", "f\n", 20, game.Decision{Action: game.Fold}},
		{"fold long form", "fold\n", 20, game.Decision{Action: game.Fold}},
		{"check with nothing to call", "k\n", 0, game.Decision{Action: game.Check}},
		{"call", "c\n", 20, game.Decision{Action: game.Call}},
		{"all-in", "a\n", 20, game.Decision{Action: game.AllIn}},
		{"raise with total", "r 60\n", 20, game.Decision{Action: game.Raise, Amount: 60}},
		{"garbage then fold", "xyzzy\nf\n", 20, game.Decision{Action: game.Fold}},
		{"check facing a bet retries", "k\nc\n", 20, game.Decision{Action: game.Call}},
		{"raise without amount retries", "r\nr 60\n", 20, game.Decision{Action: game.Raise, Amount: 60}},
		{"raise beyond stack retries", "r 5000\nc\n", 20, game.Decision{Action: game.Call}},
		{"blank line ignored", "\nf\n", 20, game.Decision{Action: game.Fold}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sit := situation(t, "As2c", "")
			sit.CallAmount = tt.call
			sit.HighestBet = tt.call

			var out bytes.Buffer
			h := NewHuman(strings.NewReader(tt.input), &out)
			assert.Equal(t, tt.want, h.Decide(sit))
		})
	}
}

func TestHumanFoldsOnClosedInput(t *testing.T) {
	var out bytes.Buffer
	h := NewHuman(strings.NewReader(""), &out)

	decision := h.Decide(situation(t, "As2c", ""))
	assert.Equal(t, game.Fold, decision.Action)
}
