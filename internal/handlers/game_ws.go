package handlers

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

const watchStepInterval = 250 * time.Millisecond

/*
Watch upgrades the connection and streams one session DTO per engine
step until the game ends. The client does not send anything; a read
pump runs only to notice the peer going away.
*/
func (g *GameHandler) Watch(w http.ResponseWriter, r *http.Request) {
	session, state, ok := g.fetchSession(w, r)
	if !ok {
		return
	}

	c, err := g.ws.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		g.logger.Error("unable to upgrade", "error", err)
		return
	}
	defer c.Close()

	gone := make(chan struct{})
	go func() {
		defer close(gone)
		for {
			if _, _, err := c.ReadMessage(); err != nil {
				if !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
					g.logger.Debug("watch client gone", "error", err)
				}
				return
			}
		}
	}()

	if err := c.WriteJSON(NewAutoplaySessionDTO(session, state)); err != nil {
		return
	}

	ticker := time.NewTicker(watchStepInterval)
	defer ticker.Stop()

	for !state.Over() {
		select {
		case <-gone:
			return
		case <-r.Context().Done():
			return
		case <-ticker.C:
		}

		if _, ok := state.Step(g.rnd); !ok {
			break
		}

		session, err = g.repo.SaveGame(r.Context(), session, state)
		if err != nil {
			g.logger.Error("unable to update session in db", "error", err)
			return
		}

		if err := c.WriteJSON(NewAutoplaySessionDTO(session, state)); err != nil {
			g.logger.Debug("unable to write to watch socket", "error", err)
			return
		}
	}

	c.WriteMessage(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
	)
}
