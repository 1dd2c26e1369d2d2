package mino

import (
	"fmt"
	"strings"

	"github.com/kamstrup/intmap"
)

// Grid is the colored occupancy matrix of the playfield. Cells are rebuilt
// from scratch on every Update; the grid keeps its own copy of the locked
// points it was last given so queries never see later mutations.
type Grid struct {
	W int // Width
	H int // Height

	cells  *intmap.Map[int, Block]
	locked map[Point]Block

	// settled is true while the cells reflect locked points only.
	settled bool
}

func NewGrid(w int, h int) *Grid {
	if w <= 0 || h <= 0 {
		panic(fmt.Sprintf("invalid grid size %dx%d", w, h))
	}

	return &Grid{
		W:      w,
		H:      h,
		cells:  intmap.New[int, Block](w * h),
		locked: make(map[Point]Block),
	}
}

func (g *Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.W && p.Y >= 0 && p.Y < g.H
}

// Update rebuilds the matrix from locked, then paints overlay on top of it.
// A rebuild is skipped only when force is false, the overlay is empty and the
// grid already shows exactly these locked points.
func (g *Grid) Update(locked map[Point]Block, overlay map[Point]Block, force bool) {
	if !force && len(overlay) == 0 && g.settled && g.sameLocked(locked) {
		return
	}

	g.locked = make(map[Point]Block, len(locked))
	for p, b := range locked {
		g.locked[p] = b
	}

	g.cells.Clear()
	for p, b := range locked {
		g.set(p, b)
	}
	for p, b := range overlay {
		g.set(p, b)
	}

	g.settled = len(overlay) == 0
}

func (g *Grid) set(p Point, b Block) {
	if !g.InBounds(p) || b == BlockNone {
		return
	}

	g.cells.Put(I(p.X, p.Y, g.W), b)
}

func (g *Grid) sameLocked(locked map[Point]Block) bool {
	if len(locked) != len(g.locked) {
		return false
	}

	for p, b := range locked {
		if existing, ok := g.locked[p]; !ok || existing != b {
			return false
		}
	}

	return true
}

// Settled reports whether the matrix holds no transient overlay.
func (g *Grid) Settled() bool {
	return g.settled
}

// At returns the color at row y, column x. Indexing outside the grid is a
// programming error.
func (g *Grid) At(row int, col int) Block {
	if row < 0 || row >= g.H || col < 0 || col >= g.W {
		panic(fmt.Sprintf("grid index out of range: row %d col %d (%dx%d)", row, col, g.W, g.H))
	}

	b, ok := g.cells.Get(I(col, row, g.W))
	if !ok {
		return BlockNone
	}

	return b
}

func (g *Grid) Row(y int) []Block {
	row := make([]Block, g.W)
	for x := range row {
		row[x] = g.At(y, x)
	}

	return row
}

// Available reports whether p is inside the grid and not locked.
func (g *Grid) Available(p Point) bool {
	if !g.InBounds(p) {
		return false
	}

	_, locked := g.locked[p]
	return !locked
}

// AvailablePoints is every cell of the grid minus the locked ones.
func (g *Grid) AvailablePoints() map[Point]struct{} {
	points := make(map[Point]struct{}, g.W*g.H)
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			p := Point{x, y}
			if _, locked := g.locked[p]; !locked {
				points[p] = struct{}{}
			}
		}
	}

	return points
}

// CheckLost reports whether a locked block reached the top row.
func (g *Grid) CheckLost() bool {
	for p := range g.locked {
		if p.Y < 1 {
			return true
		}
	}

	return false
}

// Cells copies the matrix row by row.
func (g *Grid) Cells() [][]Block {
	m := make([][]Block, g.H)
	for y := range m {
		m[y] = g.Row(y)
	}

	return m
}

func (g *Grid) Render() string {
	var b strings.Builder

	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			b.WriteRune(g.At(y, x).Rune())
		}

		if y < g.H-1 {
			b.WriteRune('\n')
		}
	}

	return b.String()
}
