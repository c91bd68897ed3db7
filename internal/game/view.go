package game

import (
	"strconv"
	"strings"

	"github.com/vancomm/minesweeper-ai/internal/knowledge"
)

/*
CellString renders one cell from the player's perspective:

  - 0-8: revealed, with its neighboring mine count
  - "*": proven mine (the engine's flag)
  - "X": the mine that ended a lost game
  - ".": unknown
*/
func (s *State) CellString(c knowledge.Cell) string {
	if s.Dead && len(s.Moves) > 0 && s.Moves[len(s.Moves)-1].Cell == c {
		return "X"
	}
	if s.ai.Played(c) {
		return strconv.Itoa(s.Board.NeighborMineCount(c))
	}
	if s.ai.KnownMine(c) {
		return "*"
	}
	return "."
}

// View returns the player-visible grid, one string per row.
func (s *State) View() []string {
	rows := make([]string, s.Board.Height)
	for row := range s.Board.Height {
		var b strings.Builder
		for col := range s.Board.Width {
			if col > 0 {
				b.WriteString(" ")
			}
			b.WriteString(s.CellString(knowledge.Cell{Row: row, Col: col}))
		}
		rows[row] = b.String()
	}
	return rows
}

func (s *State) String() string {
	return strings.Join(s.View(), "\n")
}
