package mino

// Block is the color a cell is drawn with. BlockNone is the background.
type Block int

const (
	BlockNone Block = iota
	BlockSolidCyan
	BlockSolidYellow
	BlockSolidMagenta
	BlockSolidGreen
	BlockSolidRed
	BlockSolidOrange
	BlockSolidBlue
)

// RGB values follow the classic palette of the game.
var blockRGB = map[Block][3]uint8{
	BlockNone:         {0, 0, 0},
	BlockSolidCyan:    {0, 255, 255},
	BlockSolidYellow:  {255, 255, 0},
	BlockSolidMagenta: {128, 0, 128},
	BlockSolidGreen:   {0, 255, 0},
	BlockSolidRed:     {255, 0, 0},
	BlockSolidOrange:  {255, 165, 0},
	BlockSolidBlue:    {0, 0, 255},
}

func (b Block) RGB() (uint8, uint8, uint8) {
	c, ok := blockRGB[b]
	if !ok {
		return 255, 255, 255
	}

	return c[0], c[1], c[2]
}

func (b Block) Empty() bool {
	return b == BlockNone
}

func (b Block) String() string {
	return string(b.Rune())
}

func (b Block) Rune() rune {
	switch b {
	case BlockNone:
		return ' '
	case BlockSolidBlue, BlockSolidCyan, BlockSolidRed, BlockSolidYellow, BlockSolidMagenta, BlockSolidGreen, BlockSolidOrange:
		return '█'
	default:
		return '?'
	}
}
