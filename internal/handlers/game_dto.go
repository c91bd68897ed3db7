package handlers

import (
	"github.com/gorilla/schema"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/vancomm/minesweeper-ai/internal/game"
	"github.com/vancomm/minesweeper-ai/internal/repository"
)

type CreateAutoplayDTO struct {
	Height    int `schema:"height,required"`
	Width     int `schema:"width,required"`
	MineCount int `schema:"mine_count,required"`
}

func ParseCreateAutoplayDTO(src map[string][]string) (CreateAutoplayDTO, error) {
	var dto CreateAutoplayDTO
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	err := dec.Decode(&dto, src)
	return dto, err
}

type AutoplaySessionDTO struct {
	AutoplaySessionId string     `json:"autoplay_session_id"`
	Grid              []string   `json:"grid"`
	Height            int        `json:"height"`
	Width             int        `json:"width"`
	MineCount         int        `json:"mine_count"`
	Moves             int        `json:"moves"`
	SafesKnown        int        `json:"safes_known"`
	MinesKnown        int        `json:"mines_known"`
	Dead              bool       `json:"dead"`
	Won               bool       `json:"won"`
	LastMove          *game.Move `json:"last_move,omitempty"`
	StartedAt         int64      `json:"started_at"`
	EndedAt           *int64     `json:"ended_at,omitempty"`
}

func NewAutoplaySessionDTO(
	session *repository.AutoplaySession, state *game.State,
) *AutoplaySessionDTO {
	dto := &AutoplaySessionDTO{
		AutoplaySessionId: session.AutoplaySessionId.String(),
		Grid:              state.View(),
		Height:            state.Board.Height,
		Width:             state.Board.Width,
		MineCount:         state.Board.MineCount,
		Moves:             len(state.Moves),
		SafesKnown:        len(state.AI().Safes()),
		MinesKnown:        len(state.AI().Mines()),
		Dead:              state.Dead,
		Won:               state.Won,
		StartedAt:         timestampMs(session.StartedAt),
	}
	if len(state.Moves) > 0 {
		dto.LastMove = &state.Moves[len(state.Moves)-1]
	}
	if session.EndedAt.Valid {
		e := session.EndedAt.Time.UnixMilli()
		dto.EndedAt = &e
	}
	return dto
}

func timestampMs(ts pgtype.Timestamptz) int64 {
	if !ts.Valid {
		return 0
	}
	return ts.Time.UnixMilli()
}
