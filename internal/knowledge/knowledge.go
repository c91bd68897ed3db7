package knowledge

import (
	"maps"
	"math/rand/v2"
	"slices"
)

type AssertionError struct {
	message string
}

// [AssertionError] implements [error]
func (e AssertionError) Error() string {
	return e.message
}

/*
A KnowledgeBase accumulates everything an automated player can prove
about a board of the given dimensions: the moves already played, the
cells proven safe, the cells proven to be mines, and the list of live
statements the proofs are derived from.

It never sees the board itself. The driver reveals a cell, asks the
board for its neighboring mine count, and feeds the pair to
[KnowledgeBase.RecordClue]; after that the knowledge base can answer
move queries.
*/
type KnowledgeBase struct {
	height, width int

	movesMade map[Cell]struct{}
	safes     map[Cell]struct{}
	mines     map[Cell]struct{}

	// Insertion order is irrelevant for correctness but keeps
	// propagation passes reproducible.
	statements []*Statement
}

func New(height, width int) *KnowledgeBase {
	return &KnowledgeBase{
		height:    height,
		width:     width,
		movesMade: make(map[Cell]struct{}),
		safes:     make(map[Cell]struct{}),
		mines:     make(map[Cell]struct{}),
	}
}

func (kb *KnowledgeBase) Height() int { return kb.height }
func (kb *KnowledgeBase) Width() int  { return kb.width }

func (kb *KnowledgeBase) contains(c Cell) bool {
	return 0 <= c.Row && c.Row < kb.height && 0 <= c.Col && c.Col < kb.width
}

/*
MarkMine records that a cell is certainly a mine and resolves it in
every live statement. Idempotent. Marking a cell already proven safe is
a broken caller contract and panics with [AssertionError].
*/
func (kb *KnowledgeBase) MarkMine(c Cell) {
	if _, ok := kb.safes[c]; ok {
		panic(AssertionError{"cell " + c.String() + " marked both safe and mine"})
	}
	kb.mines[c] = struct{}{}
	for _, s := range kb.statements {
		s.MarkMine(c)
	}
}

/*
MarkSafe records that a cell is certainly not a mine and resolves it in
every live statement. Idempotent. Marking a cell already proven to be a
mine panics with [AssertionError].
*/
func (kb *KnowledgeBase) MarkSafe(c Cell) {
	if _, ok := kb.mines[c]; ok {
		panic(AssertionError{"cell " + c.String() + " marked both mine and safe"})
	}
	kb.safes[c] = struct{}{}
	for _, s := range kb.statements {
		s.MarkSafe(c)
	}
}

/*
neighbors returns the in-bounds cells within Chebyshev distance 1 of c,
excluding c itself.
*/
func (kb *KnowledgeBase) neighbors(c Cell) []Cell {
	ns := make([]Cell, 0, 8)
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			n := Cell{Row: c.Row + dr, Col: c.Col + dc}
			if kb.contains(n) {
				ns = append(ns, n)
			}
		}
	}
	return ns
}

/*
RecordClue is the primary entry point, called exactly once per newly
revealed cell with the number of mines among its in-bounds neighbors.
The revealed cell is marked played and safe, a statement about its
still-unknown neighbors is added (skipping structural duplicates), and
consequences are propagated to fixpoint.
*/
func (kb *KnowledgeBase) RecordClue(c Cell, count int) {
	kb.movesMade[c] = struct{}{}
	kb.MarkSafe(c)

	cells := make([]Cell, 0, 8)
	for _, n := range kb.neighbors(c) {
		if _, ok := kb.safes[n]; ok {
			continue
		}
		if _, ok := kb.mines[n]; ok {
			count--
			continue
		}
		cells = append(cells, n)
	}

	s := NewStatement(cells, count)
	if !s.vacuous() && !kb.hasStatement(s) {
		kb.statements = append(kb.statements, s)
	}

	kb.propagate()
}

func (kb *KnowledgeBase) hasStatement(s *Statement) bool {
	for _, o := range kb.statements {
		if o.Equal(s) {
			return true
		}
	}
	return false
}

/*
propagate applies the two certain-fact rules (count 0 means all safe,
count equal to set size means all mines) and repeats the full scan until
a pass derives nothing new. Marking a cell shrinks every statement that
mentions it, so a pass can make further statements resolvable; the outer
loop picks those up. Vacuous statements are pruned after each pass so
retired constraints can never re-assert themselves.
*/
func (kb *KnowledgeBase) propagate() {
	for {
		doneSomething := false
		for _, s := range kb.statements {
			if s.allSafe() {
				for _, c := range s.Cells() {
					kb.MarkSafe(c)
				}
				doneSomething = true
			} else if s.allMines() {
				for _, c := range s.Cells() {
					kb.MarkMine(c)
				}
				doneSomething = true
			}
		}

		kb.statements = slices.DeleteFunc(kb.statements, func(s *Statement) bool {
			return s.vacuous()
		})

		if !doneSomething {
			return
		}
	}
}

/*
SafeMove returns an unplayed cell proven safe, if any. It never mutates
state and never returns a cell that could be a mine.
*/
func (kb *KnowledgeBase) SafeMove() (Cell, bool) {
	for c := range kb.safes {
		if _, played := kb.movesMade[c]; !played {
			return c, true
		}
	}
	return Cell{}, false
}

/*
FallbackMove returns a uniformly random unplayed cell not known to be a
mine, for when no certain move exists. ok is false when every remaining
unplayed cell is a known mine (or the board is fully played), which is a
terminal condition for the caller.
*/
func (kb *KnowledgeBase) FallbackMove(r *rand.Rand) (Cell, bool) {
	candidates := make([]Cell, 0, kb.height*kb.width)
	for row := range kb.height {
		for col := range kb.width {
			c := Cell{Row: row, Col: col}
			if _, played := kb.movesMade[c]; played {
				continue
			}
			if _, mine := kb.mines[c]; mine {
				continue
			}
			candidates = append(candidates, c)
		}
	}
	if len(candidates) == 0 {
		return Cell{}, false
	}
	return candidates[r.IntN(len(candidates))], true
}

// Mines returns the cells proven to be mines, sorted.
func (kb *KnowledgeBase) Mines() []Cell {
	mines := slices.Collect(maps.Keys(kb.mines))
	slices.SortFunc(mines, cellcmp)
	return mines
}

// Safes returns the cells proven safe, sorted.
func (kb *KnowledgeBase) Safes() []Cell {
	safes := slices.Collect(maps.Keys(kb.safes))
	slices.SortFunc(safes, cellcmp)
	return safes
}

func (kb *KnowledgeBase) MoveCount() int { return len(kb.movesMade) }

func (kb *KnowledgeBase) Played(c Cell) bool {
	_, ok := kb.movesMade[c]
	return ok
}

func (kb *KnowledgeBase) KnownMine(c Cell) bool {
	_, ok := kb.mines[c]
	return ok
}

func (kb *KnowledgeBase) KnownSafe(c Cell) bool {
	_, ok := kb.safes[c]
	return ok
}
