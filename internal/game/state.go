package game

import (
	"bytes"
	"encoding/gob"
	"math/rand/v2"

	"github.com/vancomm/minesweeper-ai/internal/knowledge"
)

type MoveKind string

const (
	MoveSafe     MoveKind = "safe"
	MoveFallback MoveKind = "fallback"
)

type Move struct {
	Cell knowledge.Cell `json:"cell"`
	Kind MoveKind       `json:"kind"`
}

/*
State drives one automated game: it mediates between the board (ground
truth) and the knowledge engine (proofs), revealing one cell per step.
The engine is only ever fed clues for non-mine cells, exactly once each.
*/
type State struct {
	Dead, Won bool
	Board     *Board
	Moves     []Move

	ai *knowledge.KnowledgeBase
}

func NewState(height, width, mineCount int, r *rand.Rand) (*State, error) {
	board, err := NewBoard(height, width, mineCount, r)
	if err != nil {
		return nil, err
	}
	return &State{
		Board: board,
		ai:    knowledge.New(height, width),
	}, nil
}

func (s *State) AI() *knowledge.KnowledgeBase { return s.ai }

func (s *State) Over() bool { return s.Dead || s.Won }

/*
Step plays one move: a proven-safe cell when the engine has one, a
random not-known-mine cell otherwise. ok is false when the game is
already over or no playable cell remains (every unplayed cell is a known
mine, which settles the win check).

Revealing a mine kills the game; revealing anything else feeds the clue
back into the engine.
*/
func (s *State) Step(r *rand.Rand) (Move, bool) {
	if s.Over() {
		return Move{}, false
	}

	var move Move
	if cell, ok := s.ai.SafeMove(); ok {
		move = Move{Cell: cell, Kind: MoveSafe}
	} else if cell, ok := s.ai.FallbackMove(r); ok {
		move = Move{Cell: cell, Kind: MoveFallback}
	} else {
		s.Won = s.Board.Won(s.ai.Mines())
		return Move{}, false
	}

	s.Moves = append(s.Moves, move)

	if s.Board.IsMine(move.Cell) {
		s.Dead = true
		return move, true
	}

	s.ai.RecordClue(move.Cell, s.Board.NeighborMineCount(move.Cell))

	if s.ai.MoveCount() == s.Board.Height*s.Board.Width-s.Board.MineCount ||
		s.Board.Won(s.ai.Mines()) {
		s.Won = true
	}

	return move, true
}

/*
Play steps the game until it ends or maxSteps moves have been played.
Returns the number of moves made.
*/
func (s *State) Play(r *rand.Rand, maxSteps int) int {
	steps := 0
	for steps < maxSteps {
		if _, ok := s.Step(r); !ok {
			break
		}
		steps++
	}
	return steps
}

// stateGob is the wire shape of a State; the knowledge base rides along
// as its exported snapshot.
type stateGob struct {
	Dead, Won bool
	Board     *Board
	Moves     []Move
	AI        knowledge.Snapshot
}

func (s *State) GobEncode() ([]byte, error) {
	var buf bytes.Buffer
	err := gob.NewEncoder(&buf).Encode(stateGob{
		Dead:  s.Dead,
		Won:   s.Won,
		Board: s.Board,
		Moves: s.Moves,
		AI:    s.ai.Snapshot(),
	})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *State) GobDecode(data []byte) error {
	var g stateGob
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&g); err != nil {
		return err
	}
	s.Dead = g.Dead
	s.Won = g.Won
	s.Board = g.Board
	s.Moves = g.Moves
	s.ai = knowledge.FromSnapshot(g.AI)
	return nil
}

func (s *State) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func DecodeState(data []byte) (*State, error) {
	var state State
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&state); err != nil {
		return nil, err
	}
	return &state, nil
}
