package game

import (
	"github.com/qnkhuat/tetristerm/pkg/event"
	"github.com/qnkhuat/tetristerm/pkg/mino"
)

// Frame is a read-only copy of everything a renderer needs to draw one tick.
type Frame struct {
	W, H  int
	Cells [][]mino.Block

	State   event.State
	Message string

	Score     int
	HighScore int
	Lines     int

	Next      [][]bool
	NextColor mino.Block

	PlayerName string
}

func (f *Frame) Lost() bool {
	return f.State == event.StateGameOver
}

func (g *Game) Frame() *Frame {
	f := &Frame{
		W:          g.Config.Width,
		H:          g.Config.Height,
		Cells:      make([][]mino.Block, len(g.view)),
		State:      g.state,
		Score:      g.score,
		HighScore:  g.highScore,
		Lines:      g.lines,
		PlayerName: g.Config.PlayerName,
	}

	for y := range g.view {
		f.Cells[y] = append([]mino.Block(nil), g.view[y]...)
	}

	if g.next != nil {
		f.Next = g.next.Preview()
		f.NextColor = g.next.Color()
	}

	if g.state == event.StateGameOver {
		f.Message = LostMessage
	}

	return f
}
