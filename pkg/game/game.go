package game

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/qnkhuat/tetristerm/pkg/event"
	"github.com/qnkhuat/tetristerm/pkg/mino"
)

const LostMessage = "YOU LOST!"

type Game struct {
	Config Config

	// Event receives ScoreEvent and GameOverEvent values when set. Sends never
	// block; a full channel drops the event.
	Event chan<- interface{}

	Logger *log.Logger

	state event.State
	quit  bool

	grid   *mino.Grid
	locked map[mino.Point]mino.Block
	view   [][]mino.Block

	src     mino.Source
	current *mino.Piece
	next    *mino.Piece

	lockPiece bool
	fallTime  time.Duration
	overTime  time.Duration

	store     ScoreStore
	score     int
	highScore int
	lines     int
	pieces    int
}

func New(cfg Config, store ScoreStore, src mino.Source) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if src == nil {
		var err error
		src, err = mino.NewSource(cfg.Randomizer, cfg.Seed)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidConfig, err)
		}
	}

	if store == nil {
		store = &MemoryStore{}
	}

	g := &Game{
		Config: cfg,
		Logger: log.Default(),
		state:  event.StateMenu,
		grid:   mino.NewGrid(cfg.Width, cfg.Height),
		locked: make(map[mino.Point]mino.Block),
		src:    src,
		store:  store,
	}

	g.grid.Update(g.locked, nil, true)
	g.view = g.grid.Cells()
	g.highScore = g.loadHighScore()

	return g, nil
}

// Start begins a new session from the menu.
func (g *Game) Start() {
	g.locked = make(map[mino.Point]mino.Block)
	g.grid.Update(g.locked, nil, true)
	g.view = g.grid.Cells()

	g.current = mino.Spawn(g.Config.Width, g.src)
	g.next = mino.Spawn(g.Config.Width, g.src)

	g.lockPiece = false
	g.fallTime = 0
	g.overTime = 0
	g.score = 0
	g.lines = 0
	g.pieces = 0
	g.highScore = g.loadHighScore()

	g.state = event.StatePlaying

	g.Logger.Info("session started", "player", g.Config.PlayerName, "highscore", g.highScore, "piece", g.current)
}

// Tick advances the game by one frame.
func (g *Game) Tick(elapsed time.Duration, actions []event.GameAction) {
	if g.quit {
		return
	}

	switch g.state {
	case event.StateMenu:
		for _, a := range actions {
			switch a {
			case event.ActionQuit:
				g.quit = true
				return
			case event.ActionStart:
				g.Start()
				return
			}
		}
	case event.StatePlaying:
		g.step(elapsed, actions)
	case event.StateGameOver:
		for _, a := range actions {
			if a == event.ActionQuit {
				g.quit = true
				return
			}
		}

		g.overTime += elapsed
		if g.overTime >= g.Config.GameOverDelay {
			g.state = event.StateMenu
			g.overTime = 0
		}
	}
}

func (g *Game) step(elapsed time.Duration, actions []event.GameAction) {
	g.fallTime += elapsed
	if g.fallTime > g.Config.FallInterval {
		g.fallTime = 0

		g.current.GoDown(1)
		if !g.valid() && g.current.Y > 0 {
			g.current.GoUp(1)
			g.lockPiece = true
		}
	}

	for _, a := range actions {
		switch a {
		case event.ActionQuit:
			g.quit = true
			return
		case event.ActionMoveLeft:
			g.current.GoLeft(1)
			if !g.valid() {
				g.current.GoRight(1)
			}
		case event.ActionMoveRight:
			g.current.GoRight(1)
			if !g.valid() {
				g.current.GoLeft(1)
			}
		case event.ActionSoftDrop:
			g.current.GoDown(1)
			if !g.valid() {
				g.current.GoUp(1)
			}
		case event.ActionRotateCW:
			g.current.RotateRight()
			if !g.valid() {
				g.current.RotateLeft()
			}
		}
	}

	positions := visible(g.current.Positions())

	overlay := make(map[mino.Point]mino.Block, len(g.locked)+len(positions))
	for p, b := range g.locked {
		overlay[p] = b
	}
	for _, p := range positions {
		overlay[p] = g.current.Color()
	}
	g.grid.Update(g.locked, overlay, false)

	lockedChanged := false
	if g.lockPiece {
		for _, p := range positions {
			g.locked[p] = g.current.Color()
		}
		g.pieces++

		g.Logger.Debug("piece locked", "piece", g.current, "pieces", g.pieces)

		g.current = g.next
		g.next = mino.Spawn(g.Config.Width, g.src)
		g.lockPiece = false

		if cleared := ClearRows(g.grid, g.locked); cleared > 0 {
			g.score += g.Config.ScorePerRow * cleared
			g.lines += cleared

			g.Logger.Debug("rows cleared", "rows", cleared, "score", g.score)
			g.send(&event.ScoreEvent{
				Event: event.Event{Message: fmt.Sprintf("Cleared %d row(s)", cleared)},
				Score: g.score,
				Lines: g.lines,
			})
		}

		lockedChanged = true
	}

	g.view = g.grid.Cells()
	g.grid.Update(g.locked, nil, lockedChanged)

	if g.grid.CheckLost() {
		g.gameOver()
	}
}

func (g *Game) gameOver() {
	g.state = event.StateGameOver
	g.overTime = 0

	if g.score > g.highScore {
		if err := g.store.Save(g.score); err != nil {
			g.Logger.Error("failed to save high score", "err", err)
		} else {
			g.highScore = g.score
		}
	}

	g.Logger.Info("game over", "player", g.Config.PlayerName, "score", g.score, "lines", g.lines, "pieces", g.pieces)
	g.send(&event.GameOverEvent{
		Event:     event.Event{Message: LostMessage},
		Score:     g.score,
		HighScore: g.highScore,
	})
}

func (g *Game) loadHighScore() int {
	score, err := g.store.Load()
	if err != nil {
		g.Logger.Warn("high score unavailable, using 0", "err", err)
		return 0
	}

	return score
}

// valid reports whether every visible cell of the falling piece is free.
// Cells in the spawn buffer above the grid are never checked.
func (g *Game) valid() bool {
	for _, p := range g.current.Positions() {
		if p.Y > -1 && !g.grid.Available(p) {
			return false
		}
	}

	return true
}

func (g *Game) send(e interface{}) {
	if g.Event == nil {
		return
	}

	select {
	case g.Event <- e:
	default:
	}
}

func visible(positions []mino.Point) []mino.Point {
	v := positions[:0]
	for _, p := range positions {
		if p.Y > -1 {
			v = append(v, p)
		}
	}

	return v
}

func (g *Game) State() event.State {
	return g.state
}

func (g *Game) Quit() bool {
	return g.quit
}

func (g *Game) Score() int {
	return g.score
}

func (g *Game) HighScore() int {
	return g.highScore
}

func (g *Game) Lines() int {
	return g.lines
}

func (g *Game) Pieces() int {
	return g.pieces
}

func (g *Game) Current() *mino.Piece {
	return g.current
}

func (g *Game) Next() *mino.Piece {
	return g.next
}

// Locked returns a copy of the locked points.
func (g *Game) Locked() map[mino.Point]mino.Block {
	locked := make(map[mino.Point]mino.Block, len(g.locked))
	for p, b := range g.locked {
		locked[p] = b
	}

	return locked
}
