package gui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qnkhuat/tetristerm/pkg/event"
	"github.com/qnkhuat/tetristerm/pkg/game"
	"github.com/qnkhuat/tetristerm/pkg/mino"
)

type fixedSource mino.PieceType

func (f fixedSource) Take() mino.PieceType { return mino.PieceType(f) }

func newTestGUI(t *testing.T) *GUI {
	t.Helper()

	g, err := game.New(game.DefaultConfig(), &game.MemoryStore{Score: 70}, fixedSource(mino.PieceO))
	require.NoError(t, err)

	return New(g, ThemeBasic)
}

func newTestScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()

	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	s.SetSize(80, 30)

	return s
}

func TestKeyAction(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want event.GameAction
	}{
		{"left arrow", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), event.ActionMoveLeft},
		{"h", tcell.NewEventKey(tcell.KeyRune, 'h', tcell.ModNone), event.ActionMoveLeft},
		{"right arrow", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), event.ActionMoveRight},
		{"L", tcell.NewEventKey(tcell.KeyRune, 'L', tcell.ModShift), event.ActionMoveRight},
		{"down arrow", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), event.ActionSoftDrop},
		{"up arrow", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), event.ActionRotateCW},
		{"x", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), event.ActionRotateCW},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), event.ActionQuit},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), event.ActionQuit},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), event.ActionStart},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), event.ActionStart},
		{"alt+a", tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModAlt), event.ActionUnknown},
		{"alt+h", tcell.NewEventKey(tcell.KeyRune, 'h', tcell.ModAlt), event.ActionUnknown},
		{"shift+a", tcell.NewEventKey(tcell.KeyRune, 'A', tcell.ModShift), event.ActionUnknown},
		{"shift+enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModShift), event.ActionUnknown},
		{"ctrl+f1", tcell.NewEventKey(tcell.KeyF1, 0, tcell.ModCtrl), event.ActionUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, keyAction(tt.ev))
		})
	}
}

func TestStateAction(t *testing.T) {
	assert.Equal(t, event.ActionStart, stateAction(event.StateMenu, event.ActionMoveLeft))
	assert.Equal(t, event.ActionQuit, stateAction(event.StateMenu, event.ActionQuit))
	assert.Equal(t, event.ActionUnknown, stateAction(event.StateMenu, event.ActionUnknown))
	assert.Equal(t, event.ActionUnknown, stateAction(event.StatePlaying, event.ActionStart))
	assert.Equal(t, event.ActionMoveLeft, stateAction(event.StatePlaying, event.ActionMoveLeft))

	shifted := tcell.NewEventKey(tcell.KeyRune, 'A', tcell.ModShift)
	assert.Equal(t, event.ActionUnknown, stateAction(event.StateMenu, keyAction(shifted)))

	plain := tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone)
	assert.Equal(t, event.ActionStart, stateAction(event.StateMenu, keyAction(plain)))
}

func TestTickStartsFromMenu(t *testing.T) {
	gui := newTestGUI(t)
	require.Equal(t, event.StateMenu, gui.frame.State)

	ev := tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone)
	assert.Nil(t, gui.handleKeypress(ev))

	f := gui.tick()
	assert.Equal(t, event.StatePlaying, f.State)
	assert.False(t, gui.clock.Paused)
	assert.Equal(t, 70, f.HighScore)

	unbound := tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModCtrl)
	assert.Equal(t, unbound, gui.handleKeypress(unbound))
}

func TestRenderMenu(t *testing.T) {
	gui := newTestGUI(t)
	s := newTestScreen(t)
	defer s.Fini()

	Render(s, gui.frame, gui.played, gui.theme)

	r, _, _, _ := s.GetContent(leftMargin, topMargin)
	assert.Equal(t, '█', r)
}

func TestRenderBoard(t *testing.T) {
	f := &game.Frame{
		W:     4,
		H:     3,
		State: event.StatePlaying,
		Cells: [][]mino.Block{
			{mino.BlockNone, mino.BlockNone, mino.BlockNone, mino.BlockNone},
			{mino.BlockNone, mino.BlockNone, mino.BlockSolidMagenta, mino.BlockNone},
			{mino.BlockSolidYellow, mino.BlockSolidYellow, mino.BlockSolidYellow, mino.BlockSolidYellow},
		},
		Next:      mino.PieceO.Frames()[0].Grid(),
		NextColor: mino.BlockSolidYellow,
		Score:     10,
	}

	s := newTestScreen(t)
	defer s.Fini()

	Render(s, f, "0:00", ThemeBasic)

	r, _, _, _ := s.GetContent(leftMargin, topMargin)
	assert.Equal(t, tcell.RuneULCorner, r)

	// magenta at column 2, row 1: two screen cells wide
	for i := 0; i < blockWidth; i++ {
		_, _, style, _ := s.GetContent(leftMargin+1+2*blockWidth+i, topMargin+2)
		_, bg, _ := style.Decompose()
		assert.Equal(t, ThemeBasic.Magenta, bg)
	}

	_, _, style, _ := s.GetContent(leftMargin+1, topMargin+1)
	_, bg, _ := style.Decompose()
	assert.Equal(t, ThemeBasic.Background, bg)
}

func TestRenderLostBoardIsDimmed(t *testing.T) {
	f := &game.Frame{
		W:       4,
		H:       3,
		State:   event.StateGameOver,
		Message: game.LostMessage,
		Cells: [][]mino.Block{
			{mino.BlockSolidRed, mino.BlockNone, mino.BlockNone, mino.BlockNone},
			{mino.BlockNone, mino.BlockNone, mino.BlockNone, mino.BlockNone},
			{mino.BlockNone, mino.BlockNone, mino.BlockNone, mino.BlockNone},
		},
	}

	s := newTestScreen(t)
	defer s.Fini()

	Render(s, f, "0:00", ThemeBasic)

	_, _, style, _ := s.GetContent(leftMargin+1, topMargin+1)
	_, bg, _ := style.Decompose()
	assert.NotEqual(t, ThemeBasic.Red, bg)
	assert.Equal(t, Dim(ThemeBasic.Red, gameOverDim), bg)
}

func TestRenderText(t *testing.T) {
	f := &game.Frame{
		W: 4,
		H: 2,
		Cells: [][]mino.Block{
			{mino.BlockNone, mino.BlockSolidRed, mino.BlockNone, mino.BlockNone},
			{mino.BlockSolidRed, mino.BlockSolidRed, mino.BlockSolidRed, mino.BlockSolidRed},
		},
	}

	assert.Equal(t, " █  \n████", renderText(f))
}
