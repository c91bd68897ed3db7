package repository

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/vancomm/minesweeper-ai/internal/game"
)

type AutoplaySession struct {
	AutoplaySessionId uuid.UUID
	PlayerId          *int64
	Height            int
	Width             int
	MineCount         int
	Dead              bool
	Won               bool
	Moves             int
	State             []byte
	StartedAt         pgtype.Timestamptz
	EndedAt           pgtype.Timestamptz
	CreatedAt         pgtype.Timestamptz
	UpdatedAt         pgtype.Timestamptz
}

type CreateAutoplaySessionParams struct {
	PlayerId *int64
}

func (q *Queries) CreateAutoplaySession(
	ctx context.Context, state *game.State, params CreateAutoplaySessionParams,
) (*AutoplaySession, error) {
	b, err := state.Bytes()
	if err != nil {
		return nil, err
	}

	args := pgx.NamedArgs{
		"autoplay_session_id": uuid.New(),
		"player_id":           params.PlayerId,
		"height":              state.Board.Height,
		"width":               state.Board.Width,
		"mine_count":          state.Board.MineCount,
		"dead":                state.Dead,
		"won":                 state.Won,
		"moves":               len(state.Moves),
		"state":               b,
	}

	rows, _ := q.db.Query(
		ctx,
		`INSERT INTO autoplay_session (
			autoplay_session_id, player_id, height, width, mine_count,
			dead, won, moves, state
		)
		VALUES (
			@autoplay_session_id, @player_id, @height, @width, @mine_count,
			@dead, @won, @moves, @state
		)
		RETURNING *;`,
		args,
	)
	return pgx.CollectExactlyOneRow(
		rows, pgx.RowToAddrOfStructByName[AutoplaySession],
	)
}

func (q *Queries) FetchAutoplaySession(
	ctx context.Context, id uuid.UUID,
) (*AutoplaySession, error) {
	rows, _ := q.db.Query(
		ctx,
		"SELECT * FROM autoplay_session WHERE autoplay_session_id = $1",
		id,
	)
	return pgx.CollectExactlyOneRow(
		rows, pgx.RowToAddrOfStructByName[AutoplaySession],
	)
}

type UpdateAutoplaySessionParams struct {
	Dead    *bool
	Won     *bool
	Moves   *int
	EndedAt *time.Time
	State   *[]byte
}

func (p UpdateAutoplaySessionParams) SetClause() (string, pgx.NamedArgs) {
	parts := make([]string, 0)
	args := pgx.NamedArgs{}

	if p.Dead != nil {
		parts = append(parts, "dead = @dead")
		args["dead"] = *p.Dead
	}
	if p.Won != nil {
		parts = append(parts, "won = @won")
		args["won"] = *p.Won
	}
	if p.Moves != nil {
		parts = append(parts, "moves = @moves")
		args["moves"] = *p.Moves
	}
	if p.EndedAt != nil {
		parts = append(parts, "ended_at = @ended_at")
		args["ended_at"] = *p.EndedAt
	}
	if p.State != nil {
		parts = append(parts, "state = @state")
		args["state"] = *p.State
	}

	return strings.Join(parts, ", "), args
}

func (q *Queries) UpdateAutoplaySession(
	ctx context.Context, id uuid.UUID, params UpdateAutoplaySessionParams,
) (*AutoplaySession, error) {
	setClause, args := params.SetClause()
	args["autoplay_session_id"] = id
	rows, _ := q.db.Query(
		ctx,
		"UPDATE autoplay_session SET "+setClause+
			" WHERE autoplay_session_id = @autoplay_session_id RETURNING *",
		args,
	)
	return pgx.CollectExactlyOneRow(
		rows, pgx.RowToAddrOfStructByName[AutoplaySession],
	)
}

/*
SaveGame captures the common post-move update: serialize the state and
persist the game flags, stamping ended_at when the game just finished.
*/
func (q *Queries) SaveGame(
	ctx context.Context, session *AutoplaySession, state *game.State,
) (*AutoplaySession, error) {
	b, err := state.Bytes()
	if err != nil {
		return nil, err
	}

	moves := len(state.Moves)
	params := UpdateAutoplaySessionParams{
		Dead:  &state.Dead,
		Won:   &state.Won,
		Moves: &moves,
		State: &b,
	}
	if state.Over() && !session.EndedAt.Valid {
		now := time.Now().UTC()
		params.EndedAt = &now
	}

	return q.UpdateAutoplaySession(ctx, session.AutoplaySessionId, params)
}
