package mino

import (
	"strconv"
	"strings"
)

// Point is a grid coordinate. Y grows downwards; rows with a negative Y form
// the spawn buffer above the visible matrix.
type Point struct {
	X, Y int
}

func (p Point) Add(o Point) Point { return Point{p.X + o.X, p.Y + o.Y} }

func (p Point) String() string {
	var b strings.Builder
	b.WriteRune('(')
	b.WriteString(strconv.Itoa(p.X))
	b.WriteRune(',')
	b.WriteString(strconv.Itoa(p.Y))
	b.WriteRune(')')

	return b.String()
}

// I returns the index of a cell in a row-major matrix of width w.
func I(x int, y int, w int) int {
	return (y * w) + x
}
