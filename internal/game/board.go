package game

import (
	"fmt"
	"math/rand/v2"

	"github.com/vancomm/minesweeper-ai/internal/knowledge"
)

/*
Board owns the ground truth of a single game: dimensions and real mine
positions. The knowledge engine never touches it directly; the driver
mediates every reveal.

Fields are exported for gob encoding, same as the player-visible state.
*/
type Board struct {
	Height, Width int
	MineCount     int
	Grid          []bool /* real mine positions, row-major */
}

func NewBoard(height, width, mineCount int, r *rand.Rand) (*Board, error) {
	if height <= 0 || width <= 0 {
		return nil, fmt.Errorf("invalid board dimensions %dx%d", height, width)
	}
	if mineCount < 0 || mineCount >= height*width {
		return nil, fmt.Errorf(
			"mine count %d out of range for a %dx%d board", mineCount, height, width,
		)
	}

	b := &Board{
		Height:    height,
		Width:     width,
		MineCount: mineCount,
		Grid:      make([]bool, height*width),
	}

	placed := 0
	for placed < mineCount {
		i := r.IntN(len(b.Grid))
		if !b.Grid[i] {
			b.Grid[i] = true
			placed++
		}
	}

	return b, nil
}

func (b *Board) Contains(c knowledge.Cell) bool {
	return 0 <= c.Row && c.Row < b.Height && 0 <= c.Col && c.Col < b.Width
}

func (b *Board) IsMine(c knowledge.Cell) bool {
	return b.Grid[c.Row*b.Width+c.Col]
}

/*
NeighborMineCount returns the number of mines within one row and column
of c, not counting c itself. This is the clue handed to the knowledge
engine when c is revealed.
*/
func (b *Board) NeighborMineCount(c knowledge.Cell) int {
	count := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			n := knowledge.Cell{Row: c.Row + dr, Col: c.Col + dc}
			if b.Contains(n) && b.IsMine(n) {
				count++
			}
		}
	}
	return count
}

func (b *Board) Mines() []knowledge.Cell {
	mines := make([]knowledge.Cell, 0, b.MineCount)
	for row := range b.Height {
		for col := range b.Width {
			c := knowledge.Cell{Row: row, Col: col}
			if b.IsMine(c) {
				mines = append(mines, c)
			}
		}
	}
	return mines
}

/*
Won reports whether the flagged set matches the true mine set exactly.
The candidate flag set an automated player submits is its knowledge
base's proven-mine set.
*/
func (b *Board) Won(flagged []knowledge.Cell) bool {
	if len(flagged) != b.MineCount {
		return false
	}
	for _, c := range flagged {
		if !b.Contains(c) || !b.IsMine(c) {
			return false
		}
	}
	return true
}
