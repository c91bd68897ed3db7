package knowledge

import "slices"

/*
Snapshot is the serializable shape of a [KnowledgeBase], used to gob a
game state into the database without exposing the working sets.
*/
type Snapshot struct {
	Height, Width int
	MovesMade     []Cell
	Safes         []Cell
	Mines         []Cell
	Statements    []StatementSnapshot
}

type StatementSnapshot struct {
	Cells []Cell
	Count int
	Mines []Cell
	Safes []Cell
}

func (kb *KnowledgeBase) Snapshot() Snapshot {
	snap := Snapshot{
		Height:    kb.height,
		Width:     kb.width,
		MovesMade: sortedCells(kb.movesMade),
		Safes:     kb.Safes(),
		Mines:     kb.Mines(),
	}
	for _, s := range kb.statements {
		snap.Statements = append(snap.Statements, StatementSnapshot{
			Cells: s.Cells(),
			Count: s.count,
			Mines: s.KnownMines(),
			Safes: s.KnownSafes(),
		})
	}
	return snap
}

func FromSnapshot(snap Snapshot) *KnowledgeBase {
	kb := New(snap.Height, snap.Width)
	for _, c := range snap.MovesMade {
		kb.movesMade[c] = struct{}{}
	}
	for _, c := range snap.Safes {
		kb.safes[c] = struct{}{}
	}
	for _, c := range snap.Mines {
		kb.mines[c] = struct{}{}
	}
	for _, ss := range snap.Statements {
		s := NewStatement(ss.Cells, ss.Count)
		for _, c := range ss.Mines {
			s.mines[c] = struct{}{}
		}
		for _, c := range ss.Safes {
			s.safes[c] = struct{}{}
		}
		kb.statements = append(kb.statements, s)
	}
	return kb
}

func sortedCells(set map[Cell]struct{}) []Cell {
	cells := make([]Cell, 0, len(set))
	for c := range set {
		cells = append(cells, c)
	}
	slices.SortFunc(cells, cellcmp)
	return cells
}
