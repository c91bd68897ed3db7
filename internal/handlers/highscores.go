package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vancomm/minesweeper-ai/internal/repository"
)

type Highscores struct {
	logger *slog.Logger
	repo   *repository.Queries
}

func NewHighscores(logger *slog.Logger, db *pgxpool.Pool) *Highscores {
	return &Highscores{
		logger: logger,
		repo:   repository.New(db),
	}
}

func (h *Highscores) Fetch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := repository.HighscoreFilter{}

	if query.Has("username") {
		username := query.Get("username")
		filter.Username = &username
	}
	for param, field := range map[string]**int{
		"height":     &filter.Height,
		"width":      &filter.Width,
		"mine_count": &filter.MineCount,
	} {
		if !query.Has(param) {
			continue
		}
		value, err := strconv.Atoi(query.Get(param))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		*field = &value
	}

	highscores, err := h.repo.GetHighscores(r.Context(), filter)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.Error("unable to fetch highscores", "error", err)
		return
	}

	sendJSONOrLog(w, h.logger, highscores)
}
