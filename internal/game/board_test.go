package game

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minesweeper-ai/internal/knowledge"
)

func TestNewBoard(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewPCG(1, 2))

	b, err := NewBoard(8, 8, 10, r)
	require.NoError(t, err)
	assert.Len(t, b.Mines(), 10)

	_, err = NewBoard(3, 3, 9, r)
	assert.Error(t, err, "a board must keep at least one safe cell")
	_, err = NewBoard(0, 5, 0, r)
	assert.Error(t, err)
	_, err = NewBoard(5, 5, -1, r)
	assert.Error(t, err)
}

func TestNeighborMineCount(t *testing.T) {
	t.Parallel()

	b := &Board{
		Height:    3,
		Width:     3,
		MineCount: 2,
		Grid: []bool{
			true, false, false,
			false, false, false,
			false, true, false,
		},
	}

	tests := []struct {
		cell knowledge.Cell
		want int
	}{
		{knowledge.Cell{Row: 0, Col: 0}, 0},
		{knowledge.Cell{Row: 0, Col: 1}, 1},
		{knowledge.Cell{Row: 1, Col: 1}, 2},
		{knowledge.Cell{Row: 2, Col: 2}, 1},
		{knowledge.Cell{Row: 2, Col: 0}, 1},
		{knowledge.Cell{Row: 0, Col: 2}, 0},
	}
	for _, test := range tests {
		assert.Equal(
			t, test.want, b.NeighborMineCount(test.cell),
			"neighbor count at %v", test.cell,
		)
	}
}

func TestWon(t *testing.T) {
	t.Parallel()

	b := &Board{
		Height:    2,
		Width:     2,
		MineCount: 1,
		Grid:      []bool{true, false, false, false},
	}

	assert.False(t, b.Won(nil))
	assert.False(t, b.Won([]knowledge.Cell{{Row: 0, Col: 1}}))
	assert.False(t, b.Won([]knowledge.Cell{{Row: 0, Col: 0}, {Row: 0, Col: 1}}))
	assert.True(t, b.Won([]knowledge.Cell{{Row: 0, Col: 0}}))
}
