package knowledge

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// nearbyMines computes the true clue for a cell given a mine layout,
// standing in for the board the engine never sees.
func nearbyMines(height, width int, mines map[Cell]struct{}, c Cell) int {
	count := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			n := Cell{Row: c.Row + dr, Col: c.Col + dc}
			if n.Row < 0 || n.Row >= height || n.Col < 0 || n.Col >= width {
				continue
			}
			if _, ok := mines[n]; ok {
				count++
			}
		}
	}
	return count
}

func TestZeroCountPropagation(t *testing.T) {
	t.Parallel()

	kb := New(3, 3)
	kb.RecordClue(Cell{2, 2}, 0)

	for _, c := range []Cell{{1, 1}, {1, 2}, {2, 1}} {
		assert.True(t, kb.KnownSafe(c), "%v should be safe", c)
	}

	move, ok := kb.SafeMove()
	require.True(t, ok)
	assert.Contains(t, []Cell{{1, 1}, {1, 2}, {2, 1}}, move)
}

func TestFullCountPropagation(t *testing.T) {
	t.Parallel()

	kb := New(2, 2)
	kb.RecordClue(Cell{1, 1}, 3)

	for _, c := range []Cell{{0, 0}, {0, 1}, {1, 0}} {
		assert.True(t, kb.KnownMine(c), "%v should be a mine", c)
	}

	_, ok := kb.SafeMove()
	assert.False(t, ok)
	_, ok = kb.FallbackMove(rand.New(rand.NewPCG(1, 2)))
	assert.False(t, ok, "only known mines remain: board exhausted")
}

// 3x3 board, single mine at (0,0). Revealing the far corner cascades
// through the safe-move loop until every non-mine cell is played and the
// mine is deduced, without ever needing a fallback.
func TestScenarioA(t *testing.T) {
	t.Parallel()

	mines := map[Cell]struct{}{{0, 0}: {}}
	kb := New(3, 3)

	kb.RecordClue(Cell{2, 2}, nearbyMines(3, 3, mines, Cell{2, 2}))
	for {
		move, ok := kb.SafeMove()
		if !ok {
			break
		}
		_, isMine := mines[move]
		require.False(t, isMine, "safe move %v is a true mine", move)
		kb.RecordClue(move, nearbyMines(3, 3, mines, move))
	}

	assert.Equal(t, 8, kb.MoveCount(), "all non-mine cells played")
	assert.Equal(t, []Cell{{0, 0}}, kb.Mines())
	_, ok := kb.FallbackMove(rand.New(rand.NewPCG(1, 2)))
	assert.False(t, ok, "fallback should never be needed")
}

// 2x2 board, mine at (0,0). A single count-1 clue yields no deduction;
// the engine must report no safe move and fall back to one of the
// unresolved neighbors.
func TestScenarioB(t *testing.T) {
	t.Parallel()

	kb := New(2, 2)
	kb.RecordClue(Cell{1, 1}, 1)

	_, ok := kb.SafeMove()
	assert.False(t, ok)

	move, ok := kb.FallbackMove(rand.New(rand.NewPCG(1, 2)))
	require.True(t, ok)
	assert.Contains(t, []Cell{{0, 0}, {0, 1}, {1, 0}}, move)
}

// A statement that only becomes a singleton after earlier clues have
// resolved its other cells must still fire the all-mine rule.
func TestScenarioC(t *testing.T) {
	t.Parallel()

	kb := New(2, 2)
	kb.RecordClue(Cell{1, 1}, 1)
	kb.RecordClue(Cell{0, 1}, 1)
	kb.RecordClue(Cell{1, 0}, 1)

	assert.Equal(t, []Cell{{0, 0}}, kb.Mines())
	assert.ElementsMatch(t, []Cell{{0, 1}, {1, 0}, {1, 1}}, kb.Safes())
}

func TestDisjointness(t *testing.T) {
	t.Parallel()

	kb := New(2, 2)
	kb.RecordClue(Cell{1, 1}, 1)
	kb.RecordClue(Cell{0, 1}, 1)
	kb.RecordClue(Cell{1, 0}, 1)

	for _, c := range kb.Mines() {
		assert.False(t, kb.KnownSafe(c), "%v in both safes and mines", c)
	}
}

func TestMarkIdempotence(t *testing.T) {
	t.Parallel()

	kb := New(2, 2)
	kb.RecordClue(Cell{1, 1}, 3)

	before := kb.Snapshot()
	for _, c := range before.Mines {
		kb.MarkMine(c)
	}
	for _, c := range before.Safes {
		kb.MarkSafe(c)
	}
	assert.Equal(t, before, kb.Snapshot())
}

func TestMarkConflictPanics(t *testing.T) {
	t.Parallel()

	kb := New(2, 2)
	kb.MarkSafe(Cell{0, 0})
	assert.PanicsWithError(t, "cell (0,0) marked both safe and mine", func() {
		kb.MarkMine(Cell{0, 0})
	})
}

func TestDuplicateStatementsDeduped(t *testing.T) {
	t.Parallel()

	snap := Snapshot{
		Height: 3,
		Width:  3,
		Statements: []StatementSnapshot{
			{Cells: []Cell{{0, 1}, {1, 0}, {1, 1}}, Count: 1},
		},
	}
	kb := FromSnapshot(snap)

	// this clue produces a statement structurally equal to the one above
	kb.RecordClue(Cell{0, 0}, 1)
	assert.Len(t, kb.Snapshot().Statements, 1)
}

func TestSnapshotRoundTrip(t *testing.T) {
	t.Parallel()

	kb := New(4, 4)
	kb.RecordClue(Cell{0, 0}, 1)
	kb.RecordClue(Cell{3, 3}, 2)
	kb.RecordClue(Cell{0, 3}, 0)

	snap := kb.Snapshot()
	restored := FromSnapshot(snap)
	assert.Equal(t, snap, restored.Snapshot())
}

// Soundness: across many random layouts and full games, a cell returned
// by SafeMove is never a true mine.
func TestSoundness(t *testing.T) {
	t.Parallel()

	const (
		height, width = 5, 5
		mineCount     = 5
		games         = 100
	)
	r := rand.New(rand.NewPCG(42, 43))

	for range games {
		mines := make(map[Cell]struct{})
		for len(mines) < mineCount {
			c := Cell{Row: r.IntN(height), Col: r.IntN(width)}
			mines[c] = struct{}{}
		}

		kb := New(height, width)
		for {
			move, ok := kb.SafeMove()
			if ok {
				_, isMine := mines[move]
				require.False(t, isMine, "safe move %v is a true mine", move)
			} else if move, ok = kb.FallbackMove(r); !ok {
				break // exhausted
			} else if _, isMine := mines[move]; isMine {
				break // bad luck on a guess, game over
			}
			kb.RecordClue(move, nearbyMines(height, width, mines, move))
		}
	}
}
