package gui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/qnkhuat/tetristerm/pkg/event"
	"github.com/qnkhuat/tetristerm/pkg/game"
	"github.com/qnkhuat/tetristerm/pkg/mino"
)

const (
	leftMargin = 2
	topMargin  = 1
	// every block is two terminal columns wide so it looks square
	blockWidth = 2
	sideGap    = 3

	gameOverDim = 0.6
)

// drawText places text at the specified coordinates with the provided style
func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range []rune(text) {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}

// drawRune places a rune at the specified coordinates with the provided style
func drawRune(s tcell.Screen, x, y int, style tcell.Style, r rune) {
	s.SetContent(x, y, r, nil, style)
}

// DefStyle is the default style for tcell rendering
var DefStyle = tcell.StyleDefault.Background(tcell.ColorReset).Foreground(tcell.ColorReset)

// boardSize is the screen area the bordered board takes
func boardSize(f *game.Frame) (int, int) {
	return f.W*blockWidth + 2, f.H + 2
}

// drawBlock fills one cell of the board
func drawBlock(s tcell.Screen, col, row int, c tcell.Color) {
	style := tcell.StyleDefault.Background(c)
	for i := 0; i < blockWidth; i++ {
		s.SetContent(col+i, row, ' ', nil, style)
	}
}

// drawBorder draws a box whose inner area starts at x+1, y+1
func drawBorder(s tcell.Screen, x, y, w, h int, c tcell.Color) {
	style := tcell.StyleDefault.Foreground(c)

	for i := x + 1; i < x+w-1; i++ {
		drawRune(s, i, y, style, tcell.RuneHLine)
		drawRune(s, i, y+h-1, style, tcell.RuneHLine)
	}
	for j := y + 1; j < y+h-1; j++ {
		drawRune(s, x, j, style, tcell.RuneVLine)
		drawRune(s, x+w-1, j, style, tcell.RuneVLine)
	}

	drawRune(s, x, y, style, tcell.RuneULCorner)
	drawRune(s, x+w-1, y, style, tcell.RuneURCorner)
	drawRune(s, x, y+h-1, style, tcell.RuneLLCorner)
	drawRune(s, x+w-1, y+h-1, style, tcell.RuneLRCorner)
}

// drawBoard draws the playfield, dimmed once the game is lost
func drawBoard(s tcell.Screen, x, y int, f *game.Frame, t Theme) {
	w, h := boardSize(f)
	drawBorder(s, x, y, w, h, t.Border)

	dim := 0.0
	if f.Lost() {
		dim = gameOverDim
	}

	for row, cells := range f.Cells {
		for col, b := range cells {
			drawBlock(s, x+1+col*blockWidth, y+1+row, Dim(t.Block(b), dim))
		}
	}

	if f.Message != "" {
		msgStyle := tcell.StyleDefault.Foreground(t.Msg).Bold(true)
		mx := x + (w-len(f.Message))/2
		drawText(s, mx, y+h/2, msgStyle, f.Message)
	}
}

// drawPreview draws the next piece template
func drawPreview(s tcell.Screen, x, y int, f *game.Frame, t Theme) {
	labelStyle := tcell.StyleDefault.Foreground(t.Text)
	drawText(s, x, y, labelStyle, "Next Shape")

	c := t.Block(f.NextColor)
	for row, cells := range f.Next {
		for col, occupied := range cells {
			if occupied {
				drawBlock(s, x+col*blockWidth, y+1+row, c)
			}
		}
	}
}

// drawStats displays the player, score and high score
func drawStats(s tcell.Screen, x, y int, f *game.Frame, played string, t Theme) {
	textStyle := DefStyle.Foreground(t.Text)
	scoreStyle := tcell.StyleDefault.Foreground(t.Score)

	if f.PlayerName != "" {
		drawText(s, x, y, textStyle, f.PlayerName)
	}
	drawText(s, x, y+1, scoreStyle, fmt.Sprintf("Score: %d", f.Score))
	drawText(s, x, y+2, scoreStyle, fmt.Sprintf("High Score: %d", f.HighScore))
	drawText(s, x, y+3, textStyle, fmt.Sprintf("Lines: %d", f.Lines))
	drawText(s, x, y+4, textStyle, fmt.Sprintf("Time: %s", played))
}

var titleText = []string{
	"███ ███ ███ ██  █  ██",
	" █  █    █  █ █ █ █  ",
	" █  ██   █  ██  █  █ ",
	" █  █    █  █ █ █   █",
	" █  ███  █  █ █ █ ██ ",
}

// drawTitle draws the menu screen
func drawTitle(s tcell.Screen, x, y int, highScore int, t Theme) {
	titleStyle := tcell.StyleDefault.Foreground(t.Title)
	for i, line := range titleText {
		drawText(s, x, y+i, titleStyle, line)
	}

	textStyle := DefStyle.Foreground(t.Text)
	drawText(s, x, y+len(titleText)+2, textStyle, "Press any key to begin.")
	drawText(s, x, y+len(titleText)+3, textStyle, fmt.Sprintf("High Score: %d", highScore))
	drawText(s, x, y+len(titleText)+5, textStyle, "Arrows/HJKL move, Up/K/X rotate, Q quits")
}

// Render draws a whole frame
func Render(s tcell.Screen, f *game.Frame, played string, t Theme) {
	if f.State == event.StateMenu {
		drawTitle(s, leftMargin, topMargin, f.HighScore, t)
		return
	}

	drawBoard(s, leftMargin, topMargin, f, t)

	w, _ := boardSize(f)
	sideX := leftMargin + w + sideGap
	drawStats(s, sideX, topMargin, f, played, t)
	drawPreview(s, sideX, topMargin+7, f, t)
}

// renderText is the plain text form of a board, for logs
func renderText(f *game.Frame) string {
	g := mino.NewGrid(f.W, f.H)
	locked := make(map[mino.Point]mino.Block)
	for y, row := range f.Cells {
		for x, b := range row {
			if !b.Empty() {
				locked[mino.Point{X: x, Y: y}] = b
			}
		}
	}
	g.Update(locked, nil, true)

	return g.Render()
}
