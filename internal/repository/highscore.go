package repository

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"
)

type Highscore struct {
	AutoplaySessionId string  `json:"autoplay_session_id"`
	Username          *string `json:"username"`
	Height            int     `json:"height"`
	Width             int     `json:"width"`
	MineCount         int     `json:"mine_count"`
	Moves             int     `json:"moves"`
	PlaytimeMs        float64 `json:"playtime_ms"`
}

type HighscoreFilter struct {
	Username  *string
	Height    *int
	Width     *int
	MineCount *int
}

func (f HighscoreFilter) WhereClause() (string, pgx.NamedArgs) {
	clauses := make([]string, 0)
	args := pgx.NamedArgs{}
	if f.Username != nil {
		clauses = append(clauses, "username = @username")
		args["username"] = *f.Username
	}
	if f.Height != nil {
		clauses = append(clauses, "height = @height")
		args["height"] = *f.Height
	}
	if f.Width != nil {
		clauses = append(clauses, "width = @width")
		args["width"] = *f.Width
	}
	if f.MineCount != nil {
		clauses = append(clauses, "mine_count = @mineCount")
		args["mineCount"] = *f.MineCount
	}
	return strings.Join(clauses, " AND "), args
}

// GetHighscores lists won sessions ordered by fewest moves, then
// fastest solve.
func (q *Queries) GetHighscores(
	ctx context.Context, filter HighscoreFilter,
) ([]Highscore, error) {
	query := `
	SELECT
		autoplay_session_id::text autoplay_session_id,
		username,
		height,
		width,
		mine_count,
		moves,
		(
			extract('epoch' from ended_at) -
			extract('epoch' from started_at)
		) * 1000 playtime_ms
	FROM autoplay_session
		LEFT OUTER JOIN player USING (player_id)
	WHERE
		won = true
		AND dead = false
		AND ended_at IS NOT NULL
	`

	whereClause, args := filter.WhereClause()
	if whereClause != "" {
		query += " AND " + whereClause
	}

	query += " ORDER BY moves, playtime_ms;"

	rows, err := q.db.Query(ctx, query, args)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[Highscore])
}
