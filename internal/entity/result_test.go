package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewResult(t *testing.T) {
	// Given: a finished 3x3 game lost by the first player
	game := newTestGame(t, 3)
	playMoves(t, game, [2]int{1, 1}, [2]int{2, 1}, [2]int{1, 2}, [2]int{2, 2}, [2]int{1, 3})
	finishedAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	// When: a result is built from it
	result := NewResult("abc", game, finishedAt)

	// Then: it carries the size, winner and a copy of the history
	require.Len(t, result.Moves, 5)
	assert.Equal(t, "abc", result.ID)
	assert.Equal(t, 3, result.BoardSize)
	assert.Equal(t, SecondPlayer, result.Winner)
	assert.Equal(t, Move{Row: 0, Column: 2}, result.Moves[4])
	assert.Equal(t, finishedAt, result.FinishedAt)
	assert.False(t, result.IsTie())

	game.History[0] = Move{Row: 2, Column: 2}
	assert.Equal(t, Move{Row: 0, Column: 0}, result.Moves[0])
}

func TestResult_TallyField(t *testing.T) {
	assert.Equal(t, TallyFirstPlayer, (&Result{Winner: FirstPlayer}).TallyField())
	assert.Equal(t, TallySecondPlayer, (&Result{Winner: SecondPlayer}).TallyField())
	assert.Equal(t, TallyTie, (&Result{Winner: NoPlayer}).TallyField())
}
