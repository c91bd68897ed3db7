package knowledge

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatementMarkMine(t *testing.T) {
	s := NewStatement([]Cell{{0, 0}, {0, 1}, {1, 0}}, 2)

	s.MarkMine(Cell{0, 0})
	assert.Equal(t, 1, s.Count())
	assert.Equal(t, []Cell{{0, 1}, {1, 0}}, s.Cells())
	assert.Equal(t, []Cell{{0, 0}}, s.KnownMines())

	// marking a cell outside the statement changes nothing
	s.MarkMine(Cell{5, 5})
	assert.Equal(t, 1, s.Count())
	assert.Equal(t, []Cell{{0, 1}, {1, 0}}, s.Cells())

	// marking the same cell twice changes nothing
	s.MarkMine(Cell{0, 0})
	assert.Equal(t, 1, s.Count())
}

func TestStatementMarkSafe(t *testing.T) {
	s := NewStatement([]Cell{{0, 0}, {0, 1}, {1, 0}}, 1)

	s.MarkSafe(Cell{0, 1})
	assert.Equal(t, 1, s.Count(), "marking safe must not touch the count")
	assert.Equal(t, []Cell{{0, 0}, {1, 0}}, s.Cells())
	assert.Equal(t, []Cell{{0, 1}}, s.KnownSafes())

	s.MarkSafe(Cell{7, 7})
	assert.Equal(t, []Cell{{0, 0}, {1, 0}}, s.Cells())
}

func TestStatementEqual(t *testing.T) {
	a := NewStatement([]Cell{{0, 0}, {0, 1}}, 1)
	b := NewStatement([]Cell{{0, 1}, {0, 0}}, 1)
	c := NewStatement([]Cell{{0, 0}, {0, 1}}, 2)
	d := NewStatement([]Cell{{0, 0}}, 1)

	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(a))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(d))
}

func TestStatementEqualAfterShrinkage(t *testing.T) {
	a := NewStatement([]Cell{{0, 0}, {0, 1}, {1, 1}}, 2)
	a.MarkMine(Cell{1, 1})

	b := NewStatement([]Cell{{0, 0}, {0, 1}}, 1)
	assert.True(t, a.Equal(b), "equality ranges over unresolved cells only")
}

func TestStatementString(t *testing.T) {
	s := NewStatement([]Cell{{1, 0}, {0, 1}}, 1)
	assert.Equal(t, "{(0,1) (1,0)} = 1", s.String())
}
