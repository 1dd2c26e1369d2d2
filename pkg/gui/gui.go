package gui

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/qnkhuat/tetristerm/pkg/event"
	"github.com/qnkhuat/tetristerm/pkg/game"
)

const queueSize = 64

// GUI runs a game in the terminal. The loop goroutine owns the game; the
// tview goroutine only ever sees Frame copies.
type GUI struct {
	app   *tview.Application
	board *tview.Box

	game  *game.Game
	clock *game.Clock
	theme Theme

	actions chan event.GameAction
	events  chan interface{}

	// set on the tview goroutine only
	frame  *game.Frame
	played string

	Logger *log.Logger
}

func New(g *game.Game, t Theme) *GUI {
	gui := &GUI{
		app:     tview.NewApplication(),
		board:   tview.NewBox(),
		game:    g,
		clock:   game.NewClock(),
		theme:   t,
		actions: make(chan event.GameAction, queueSize),
		events:  make(chan interface{}, queueSize),
		Logger:  g.Logger,
	}

	g.Event = gui.events
	gui.frame = g.Frame()
	gui.played = gui.clock.String()

	gui.board.SetDrawFunc(func(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
		if gui.frame != nil {
			Render(screen, gui.frame, gui.played, gui.theme)
		}
		return x, y, width, height
	})

	gui.app.SetInputCapture(gui.handleKeypress)
	gui.app.SetRoot(gui.board, true)

	return gui
}

// Run blocks until the player quits, ctx is cancelled or the terminal fails.
func (gui *GUI) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go gui.loop(ctx)

	return gui.app.Run()
}

func (gui *GUI) handleKeypress(ev *tcell.EventKey) *tcell.EventKey {
	a := keyAction(ev)
	if a == event.ActionUnknown {
		return ev
	}

	select {
	case gui.actions <- a:
	default:
		gui.Logger.Warn("input queue full, dropping action", "action", a)
	}

	return nil
}

func (gui *GUI) loop(ctx context.Context) {
	ticker := time.NewTicker(gui.game.Config.FrameDuration())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			gui.app.Stop()
			return
		case <-ticker.C:
		}

		f := gui.tick()
		played := gui.clock.String()

		if gui.game.Quit() {
			gui.Logger.Info("player quit", "score", gui.game.Score(), "played", played)
			gui.app.Stop()
			return
		}

		gui.app.QueueUpdateDraw(func() {
			gui.frame = f
			gui.played = played
		})
	}
}

// tick advances the game by one frame and returns what should be drawn.
func (gui *GUI) tick() *game.Frame {
	before := gui.game.State()

	gui.game.Tick(gui.clock.Elapsed(), gui.drain(before))

	after := gui.game.State()
	if after != before {
		gui.stateChanged(before, after)
	}

	f := gui.game.Frame()
	gui.handleEvents(f)

	return f
}

func (gui *GUI) drain(s event.State) []event.GameAction {
	var actions []event.GameAction
	for {
		select {
		case a := <-gui.actions:
			if a = stateAction(s, a); a != event.ActionUnknown {
				actions = append(actions, a)
			}
		default:
			return actions
		}
	}
}

func (gui *GUI) stateChanged(before, after event.State) {
	gui.Logger.Debug("state changed", "from", before, "to", after)

	switch after {
	case event.StatePlaying:
		gui.clock.Reset()
		gui.clock.Start()
	case event.StateGameOver, event.StateMenu:
		gui.clock.Pause()
	}
}

func (gui *GUI) handleEvents(f *game.Frame) {
	for {
		select {
		case e := <-gui.events:
			switch e := e.(type) {
			case *event.ScoreEvent:
				gui.Logger.Debug(e.Message, "score", e.Score, "lines", e.Lines)
			case *event.GameOverEvent:
				gui.Logger.Info(e.Message, "score", e.Score, "highscore", e.HighScore, "played", gui.clock.String())
				gui.Logger.Debug("final board\n" + renderText(f))
			}
		default:
			return
		}
	}
}
