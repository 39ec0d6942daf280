package game

import (
	"errors"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTable(chips ...int) (*Table, []*Player) {
	players := make([]*Player, len(chips))
	for i, c := range chips {
		players[i] = NewPlayer(string(rune('A'+i)), c)
	}
	return NewTable(players, log.New(io.Discard)), players
}

func TestApplyBetRejectsIllegalWagers(t *testing.T) {
	table, players := newTestTable(100, 100)
	p := players[0]

	require.NoError(t, table.ApplyBet(players[1], 50))
	require.Equal(t, 50, table.CurrentBet())

	tests := []struct {
		name  string
		total int
	}{
		{"below own committed", -1},
		{"more than stack", 150},
		{"below current bet without all-in", 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := table.ApplyBet(p, tt.total)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrIllegalBet))

			// Rejected bets leave the seat untouched.
			assert.Equal(t, 100, p.Chips)
			assert.Equal(t, 0, p.CurrentBet)
			assert.Equal(t, 50, table.CurrentBet())
		})
	}
}

func TestApplyBetBelowOwnCommitted(t *testing.T) {
	table, players := newTestTable(100)
	p := players[0]

	require.NoError(t, table.ApplyBet(p, 40))
	err := table.ApplyBet(p, 30)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrIllegalBet))
	assert.Equal(t, 40, p.CurrentBet)
	assert.Equal(t, 60, p.Chips)
}

func TestApplyBetShortAllIn(t *testing.T) {
	table, players := newTestTable(100, 30)

	require.NoError(t, table.ApplyBet(players[0], 50))

	// Committing the entire stack is legal even below the current bet.
	require.NoError(t, table.ApplyBet(players[1], 30))
	assert.Equal(t, 0, players[1].Chips)
	assert.Equal(t, 30, players[1].CurrentBet)

	// The short stack does not lower the street's highest bet.
	assert.Equal(t, 50, table.CurrentBet())
}

func TestApplyBetRaisesCurrentBet(t *testing.T) {
	table, players := newTestTable(200, 200)

	require.NoError(t, table.ApplyBet(players[0], 50))
	assert.Equal(t, 50, table.CurrentBet())

	require.NoError(t, table.ApplyBet(players[1], 120))
	assert.Equal(t, 120, table.CurrentBet())

	// The raiser pays only the increment on a re-raise.
	require.NoError(t, table.ApplyBet(players[0], 120))
	assert.Equal(t, 80, players[0].Chips)
}

func TestCollectBetsSkipsFoldedSeats(t *testing.T) {
	table, players := newTestTable(100, 100, 100)

	require.NoError(t, table.ApplyBet(players[0], 40))
	require.NoError(t, table.ApplyBet(players[1], 40))
	require.NoError(t, table.ApplyBet(players[2], 40))
	players[1].Fold()

	table.CollectBets()
	assert.Equal(t, 80, table.Pot())
	assert.Equal(t, 0, players[0].CurrentBet)
	assert.Equal(t, 0, players[2].CurrentBet)

	// Collecting again adds nothing.
	table.CollectBets()
	assert.Equal(t, 80, table.Pot())
}

func TestResetStreetClearsCommitments(t *testing.T) {
	table, players := newTestTable(100, 100)

	require.NoError(t, table.ApplyBet(players[0], 60))
	table.ResetStreet()

	assert.Equal(t, 0, table.CurrentBet())
	assert.Equal(t, 0, players[0].CurrentBet)
}

func TestDistributeSplitsEvenly(t *testing.T) {
	table, players := newTestTable(0, 0)
	table.pot = 100

	table.Distribute(players)
	assert.Equal(t, 50, players[0].Chips)
	assert.Equal(t, 50, players[1].Chips)
	assert.Equal(t, 0, table.Pot())
}

func TestDistributeDropsRemainder(t *testing.T) {
	table, players := newTestTable(0, 0, 0)
	table.pot = 100

	table.Distribute(players)
	for _, p := range players {
		assert.Equal(t, 33, p.Chips)
	}
	assert.Equal(t, 0, table.Pot(), "remainder is dropped, not banked")
}

func TestDistributeNoWinnersKeepsPot(t *testing.T) {
	table, _ := newTestTable(0, 0)
	table.pot = 100

	table.Distribute(nil)
	assert.Equal(t, 100, table.Pot())
}
