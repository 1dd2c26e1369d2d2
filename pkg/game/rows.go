package game

import (
	"sort"

	"github.com/qnkhuat/tetristerm/pkg/mino"
)

// ClearRows removes every full row from locked and returns how many were
// removed. Rows are scanned from the bottom up; a row is full when each of its
// cells is a locked point. Every remaining point then drops by the number of
// cleared rows below it, lowest points first so no key is overwritten.
func ClearRows(g *mino.Grid, locked map[mino.Point]mino.Block) int {
	var cleared []int
	for y := g.H - 1; y >= 0; y-- {
		if !rowFilled(g.W, y, locked) {
			continue
		}

		for x := 0; x < g.W; x++ {
			delete(locked, mino.Point{X: x, Y: y})
		}

		cleared = append(cleared, y)
	}

	if len(cleared) == 0 {
		return 0
	}

	points := make([]mino.Point, 0, len(locked))
	for p := range locked {
		points = append(points, p)
	}
	sort.Slice(points, func(i, j int) bool {
		return points[i].Y > points[j].Y
	})

	for _, p := range points {
		below := 0
		for _, y := range cleared {
			if y > p.Y {
				below++
			}
		}

		if below == 0 {
			continue
		}

		b := locked[p]
		delete(locked, p)
		locked[mino.Point{X: p.X, Y: p.Y + below}] = b
	}

	return len(cleared)
}

func rowFilled(w int, y int, locked map[mino.Point]mino.Block) bool {
	for x := 0; x < w; x++ {
		if _, ok := locked[mino.Point{X: x, Y: y}]; !ok {
			return false
		}
	}

	return true
}
