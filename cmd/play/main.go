package main

import (
	"flag"
	"fmt"
	"hash/maphash"
	"math/rand/v2"
	"os"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/vancomm/minesweeper-ai/internal/game"
	"github.com/vancomm/minesweeper-ai/internal/knowledge"
)

var (
	height    = flag.Int("height", 9, "board height")
	width     = flag.Int("width", 9, "board width")
	mineCount = flag.Int("mines", 10, "number of mines")
	delay     = flag.Duration("delay", 200*time.Millisecond, "delay between moves")
	seed      = flag.Uint64("seed", 0, "rng seed (0 picks one at random)")
)

type watcher struct {
	app    *tview.Application
	table  *tview.Table
	status *tview.TextView
	state  *game.State
	rnd    *rand.Rand
	paused atomic.Bool
}

func (w *watcher) draw() {
	for row := range w.state.Board.Height {
		for col := range w.state.Board.Width {
			cell := knowledge.Cell{Row: row, Col: col}
			w.table.SetCell(row, col, tview.
				NewTableCell(w.state.CellString(cell)).
				SetAlign(tview.AlignCenter))
		}
	}

	text := fmt.Sprintf(
		" moves: %d  mines found: %d/%d",
		len(w.state.Moves),
		len(w.state.AI().Mines()),
		w.state.Board.MineCount,
	)
	switch {
	case w.state.Won:
		text += "  WON (q to quit)"
	case w.state.Dead:
		text += "  BOOM (q to quit)"
	case w.paused.Load():
		text += "  paused (space to resume)"
	}
	w.status.SetText(text)
}

func (w *watcher) run() {
	go func() {
		for {
			time.Sleep(*delay)
			if w.paused.Load() {
				continue
			}
			done := make(chan struct{})
			w.app.QueueUpdateDraw(func() {
				defer close(done)
				w.state.Step(w.rnd)
				w.draw()
			})
			<-done
			if w.state.Over() {
				return
			}
		}
	}()

	w.app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Rune() {
		case 'q':
			w.app.Stop()
			return nil
		case ' ':
			w.paused.Store(!w.paused.Load())
			return event
		}
		return event
	})

	if err := w.app.Run(); err != nil {
		panic(err)
	}
}

func main() {
	flag.Parse()

	s1, s2 := *seed, *seed
	if *seed == 0 {
		s1, s2 = new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64()
	}
	rnd := rand.New(rand.NewPCG(s1, s2))

	state, err := game.NewState(*height, *width, *mineCount, rnd)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	w := &watcher{
		app:    tview.NewApplication(),
		table:  tview.NewTable(),
		status: tview.NewTextView(),
		state:  state,
		rnd:    rnd,
	}
	w.table.SetBorder(true)

	flex := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(w.table, 0, 1, true).
		AddItem(w.status, 1, 0, false)

	w.draw()
	w.app.SetRoot(flex, true)
	w.run()

	switch {
	case state.Won:
		fmt.Printf("won in %d moves\n", len(state.Moves))
	case state.Dead:
		fmt.Printf("hit a mine after %d moves\n", len(state.Moves))
	default:
		fmt.Printf("stopped after %d moves\n", len(state.Moves))
	}
}
