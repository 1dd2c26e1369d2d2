package mino

import "strings"

// FrameSize is the edge length of every rotation template.
const FrameSize = 5

// FrameOrigin is the template cell that lands on a piece's anchor.
var FrameOrigin = Point{2, 4}

// Frame is the occupancy of one rotation state as a 5x5 bitmask. The most
// significant of the 25 bits is row 0, column 0.
type Frame uint32

func (f Frame) Occupied(row int, col int) bool {
	if row < 0 || row >= FrameSize || col < 0 || col >= FrameSize {
		return false
	}

	return f>>(FrameSize*FrameSize-1-(row*FrameSize+col))&1 == 1
}

// Cells returns the occupied template cells in row-major order. X is the
// column and Y the row.
func (f Frame) Cells() []Point {
	var cells []Point
	for row := 0; row < FrameSize; row++ {
		for col := 0; col < FrameSize; col++ {
			if f.Occupied(row, col) {
				cells = append(cells, Point{col, row})
			}
		}
	}

	return cells
}

// Grid expands the bitmask into rows of booleans.
func (f Frame) Grid() [][]bool {
	g := make([][]bool, FrameSize)
	for row := range g {
		g[row] = make([]bool, FrameSize)
		for col := range g[row] {
			g[row][col] = f.Occupied(row, col)
		}
	}

	return g
}

func (f Frame) String() string {
	var b strings.Builder
	for row := 0; row < FrameSize; row++ {
		for col := 0; col < FrameSize; col++ {
			if f.Occupied(row, col) {
				b.WriteRune('0')
			} else {
				b.WriteRune('.')
			}
		}
		if row < FrameSize-1 {
			b.WriteRune('\n')
		}
	}

	return b.String()
}

type PieceType int

const (
	PieceI PieceType = iota
	PieceO
	PieceT
	PieceS
	PieceZ
	PieceJ
	PieceL
)

// AllPieceTypes lists the catalog in declaration order.
var AllPieceTypes = []PieceType{PieceI, PieceO, PieceT, PieceS, PieceZ, PieceJ, PieceL}

func (t PieceType) String() string {
	switch t {
	case PieceI:
		return "I"
	case PieceO:
		return "O"
	case PieceT:
		return "T"
	case PieceS:
		return "S"
	case PieceZ:
		return "Z"
	case PieceJ:
		return "J"
	case PieceL:
		return "L"
	default:
		return "?"
	}
}

type pieceDef struct {
	frames []Frame
	block  Block

	// calibration shifts individual rotations of a kind. Only the horizontal
	// I uses it, so it sits on the row the vertical I ends on. Missing
	// entries are {0, 0}.
	calibration []Point
}

var catalog = map[PieceType]pieceDef{
	PieceI: {
		frames: []Frame{
			0b00100_00100_00100_00100_00000,
			0b00000_11110_00000_00000_00000,
		},
		block:       BlockSolidCyan,
		calibration: []Point{{0, 0}, {0, 2}},
	},
	PieceO: {
		frames: []Frame{
			0b00000_00000_01100_01100_00000,
		},
		block: BlockSolidYellow,
	},
	PieceT: {
		frames: []Frame{
			0b00000_00100_01110_00000_00000,
			0b00000_00100_00110_00100_00000,
			0b00000_00000_01110_00100_00000,
			0b00000_00100_01100_00100_00000,
		},
		block: BlockSolidMagenta,
	},
	PieceS: {
		frames: []Frame{
			0b00000_00000_00110_01100_00000,
			0b00000_00100_00110_00010_00000,
		},
		block: BlockSolidGreen,
	},
	PieceZ: {
		frames: []Frame{
			0b00000_00000_01100_00110_00000,
			0b00000_00100_01100_01000_00000,
		},
		block: BlockSolidRed,
	},
	PieceJ: {
		frames: []Frame{
			0b00000_01000_01110_00000_00000,
			0b00000_00110_00100_00100_00000,
			0b00000_00000_01110_00010_00000,
			0b00000_00100_00100_01100_00000,
		},
		block: BlockSolidOrange,
	},
	PieceL: {
		frames: []Frame{
			0b00000_00010_01110_00000_00000,
			0b00000_00100_00100_00110_00000,
			0b00000_00000_01110_01000_00000,
			0b00000_01100_00100_00100_00000,
		},
		block: BlockSolidBlue,
	},
}

// Frames returns the rotation templates of a piece kind.
func (t PieceType) Frames() []Frame {
	return catalog[t].frames
}

func (t PieceType) Block() Block {
	return catalog[t].block
}

func (t PieceType) calibration(rotation int) Point {
	c := catalog[t].calibration
	if rotation < 0 || rotation >= len(c) {
		return Point{}
	}

	return c[rotation]
}
