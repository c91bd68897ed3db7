package game

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minesweeper-ai/internal/knowledge"
)

func TestAutoplayNeverDiesOnSafeMove(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewPCG(7, 11))

	for range 100 {
		state, err := NewState(6, 6, 6, r)
		require.NoError(t, err)

		for !state.Over() {
			move, ok := state.Step(r)
			if !ok {
				break
			}
			if state.Dead {
				assert.Equal(
					t, MoveFallback, move.Kind,
					"only a fallback guess may hit a mine",
				)
			}
		}
	}
}

func TestAutoplayWinsSparseBoard(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewPCG(3, 4))

	// with a single mine, the first uncovered zero region cascades and
	// the engine deduces the rest; play enough games to cover both the
	// instant-loss guess and the full deduction paths
	won := 0
	for range 50 {
		state, err := NewState(5, 5, 1, r)
		require.NoError(t, err)
		state.Play(r, 1000)
		require.True(t, state.Over() || len(state.Moves) == 0)
		if state.Won {
			won++
			assert.False(t, state.Dead)
		}
	}
	assert.Greater(t, won, 25, "a single-mine board is nearly always won")
}

func TestStepAfterGameOver(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewPCG(5, 6))
	state, err := NewState(3, 3, 1, r)
	require.NoError(t, err)

	state.Play(r, 1000)
	moves := len(state.Moves)

	_, ok := state.Step(r)
	assert.False(t, ok)
	assert.Len(t, state.Moves, moves, "a finished game must not mutate")
}

func TestStateGobRoundTrip(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewPCG(9, 10))
	state, err := NewState(4, 4, 3, r)
	require.NoError(t, err)
	state.Step(r)
	state.Step(r)

	b, err := state.Bytes()
	require.NoError(t, err)

	decoded, err := DecodeState(b)
	require.NoError(t, err)

	assert.Equal(t, state.Dead, decoded.Dead)
	assert.Equal(t, state.Won, decoded.Won)
	assert.Equal(t, state.Board, decoded.Board)
	assert.Equal(t, state.Moves, decoded.Moves)
	assert.Equal(t, state.AI().Snapshot(), decoded.AI().Snapshot())
	assert.Equal(t, state.View(), decoded.View())
}

func TestView(t *testing.T) {
	t.Parallel()

	state := &State{
		Board: &Board{
			Height:    2,
			Width:     2,
			MineCount: 1,
			Grid:      []bool{true, false, false, false},
		},
		ai: knowledge.New(2, 2),
	}

	assert.Equal(t, []string{". .", ". ."}, state.View())

	state.AI().RecordClue(knowledge.Cell{Row: 1, Col: 1}, 1)
	assert.Equal(t, []string{". .", ". 1"}, state.View())
}
