package mino

import "fmt"

// Piece is a shape anchored on the grid. Movement and rotation are never
// checked here; callers validate the result and undo invalid moves.
type Piece struct {
	Point
	*Shape
}

func NewPiece(loc Point, s *Shape) *Piece {
	return &Piece{Point: loc, Shape: s}
}

// Spawn creates a piece at the top center of a grid of the given width.
func Spawn(width int, src Source) *Piece {
	return NewPiece(Point{width / 2, 0}, NewShape(src))
}

func (p *Piece) String() string {
	return fmt.Sprintf("%s@%s r%d", p.Type, p.Point, p.Rotation)
}

// Positions returns the absolute cells the piece occupies, derived from the
// anchor and the active rotation on every call.
func (p *Piece) Positions() []Point {
	offset := p.Point.Add(p.Type.calibration(p.Rotation))
	offset.X -= FrameOrigin.X
	offset.Y -= FrameOrigin.Y

	cells := p.CurrentFrame().Cells()
	for i := range cells {
		cells[i] = cells[i].Add(offset)
	}

	return cells
}

func (p *Piece) GoLeft(n int)  { p.X -= n }
func (p *Piece) GoRight(n int) { p.X += n }
func (p *Piece) GoDown(n int)  { p.Y += n }
func (p *Piece) GoUp(n int)    { p.Y -= n }

// Preview is the active template, used to draw the next piece.
func (p *Piece) Preview() [][]bool {
	return p.CurrentFrame().Grid()
}
