package knowledge

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Cell is a board coordinate, 0-indexed from the top-left corner.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

func cellcmp(a, b Cell) int {
	if a.Row != b.Row {
		return a.Row - b.Row
	}
	return a.Col - b.Col
}

/*
A Statement asserts that exactly `count` of `cells` are mines. Cells
resolved to a definite fact are moved out of `cells` into the mines or
safes record, so the assertion always ranges over unresolved cells only.
A statement whose cell set has shrunk to nothing is vacuous and carries
no information.
*/
type Statement struct {
	cells map[Cell]struct{}
	count int
	mines map[Cell]struct{}
	safes map[Cell]struct{}
}

func NewStatement(cells []Cell, count int) *Statement {
	s := &Statement{
		cells: make(map[Cell]struct{}, len(cells)),
		count: count,
		mines: make(map[Cell]struct{}),
		safes: make(map[Cell]struct{}),
	}
	for _, c := range cells {
		s.cells[c] = struct{}{}
	}
	return s
}

func (s *Statement) Count() int { return s.count }

func (s *Statement) Cells() []Cell {
	cells := slices.Collect(maps.Keys(s.cells))
	slices.SortFunc(cells, cellcmp)
	return cells
}

// KnownMines returns the cells of this statement resolved to mines.
func (s *Statement) KnownMines() []Cell {
	mines := slices.Collect(maps.Keys(s.mines))
	slices.SortFunc(mines, cellcmp)
	return mines
}

// KnownSafes returns the cells of this statement resolved to safe.
func (s *Statement) KnownSafes() []Cell {
	safes := slices.Collect(maps.Keys(s.safes))
	slices.SortFunc(safes, cellcmp)
	return safes
}

/*
MarkMine resolves a cell of this statement to a mine: the cell leaves
the unresolved set and the count drops by one. Cells outside the
statement are ignored.
*/
func (s *Statement) MarkMine(c Cell) {
	if _, ok := s.cells[c]; !ok {
		return
	}
	delete(s.cells, c)
	s.mines[c] = struct{}{}
	s.count--
}

/*
MarkSafe resolves a cell of this statement to safe: the cell leaves the
unresolved set, the count is unchanged. Cells outside the statement are
ignored.
*/
func (s *Statement) MarkSafe(c Cell) {
	if _, ok := s.cells[c]; !ok {
		return
	}
	delete(s.cells, c)
	s.safes[c] = struct{}{}
}

// Equal reports structural equality: same unresolved cells, same count.
func (s *Statement) Equal(o *Statement) bool {
	return s.count == o.count && maps.Equal(s.cells, o.cells)
}

// allSafe reports whether every unresolved cell is provably safe.
func (s *Statement) allSafe() bool {
	return s.count == 0 && len(s.cells) > 0
}

// allMines reports whether every unresolved cell is provably a mine.
func (s *Statement) allMines() bool {
	return s.count == len(s.cells) && len(s.cells) > 0
}

func (s *Statement) vacuous() bool {
	return len(s.cells) == 0
}

func (s *Statement) String() string {
	var b strings.Builder
	b.WriteString("{")
	for i, c := range s.Cells() {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(c.String())
	}
	fmt.Fprintf(&b, "} = %d", s.count)
	return b.String()
}
