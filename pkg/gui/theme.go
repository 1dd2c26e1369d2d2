package gui

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/qnkhuat/tetristerm/pkg/mino"
)

// Theme is used for dynamically coloring the UI
type Theme struct {
	Name       string      `json:"name"`
	Background tcell.Color `json:"background"`
	Border     tcell.Color `json:"border"`
	Text       tcell.Color `json:"text"`
	Title      tcell.Color `json:"title"`
	Score      tcell.Color `json:"score"`
	Msg        tcell.Color `json:"msg"`
	Cyan       tcell.Color `json:"cyan"`
	Yellow     tcell.Color `json:"yellow"`
	Magenta    tcell.Color `json:"magenta"`
	Green      tcell.Color `json:"green"`
	Red        tcell.Color `json:"red"`
	Orange     tcell.Color `json:"orange"`
	Blue       tcell.Color `json:"blue"`
}

// ThemeHex is the form a Theme takes in a theme file
type ThemeHex struct {
	Name       string `json:"name"`
	Background string `json:"background"`
	Border     string `json:"border"`
	Text       string `json:"text"`
	Title      string `json:"title"`
	Score      string `json:"score"`
	Msg        string `json:"msg"`
	Cyan       string `json:"cyan"`
	Yellow     string `json:"yellow"`
	Magenta    string `json:"magenta"`
	Green      string `json:"green"`
	Red        string `json:"red"`
	Orange     string `json:"orange"`
	Blue       string `json:"blue"`
}

var ErrNoTheme = errors.New("theme: no theme found")

// fmtHex returns a one character hex for the ColorDefault
// and otherwise it returns a standard hex, so ColorDefault survives
// a round trip through a theme file instead of turning black
func fmtHex(v int32) string {
	if v == -1 {
		return "#0"
	}
	return fmt.Sprintf("#%06x", v)
}

// parseColor reads "#0" as ColorDefault, then tries a hex triplet and
// falls back to tcell's color names
func parseColor(s string) tcell.Color {
	if s == "#0" || s == "" {
		return tcell.ColorDefault
	}

	if c, err := colorful.Hex(s); err == nil {
		return fromColorful(c)
	}

	return tcell.GetColor(s)
}

func fromColorful(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func toColorful(c tcell.Color) colorful.Color {
	r, g, b := c.RGB()
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

// Hex converts a Theme to a ThemeHex
func (t Theme) Hex() ThemeHex {
	return ThemeHex{
		t.Name,
		fmtHex(t.Background.Hex()),
		fmtHex(t.Border.Hex()),
		fmtHex(t.Text.Hex()),
		fmtHex(t.Title.Hex()),
		fmtHex(t.Score.Hex()),
		fmtHex(t.Msg.Hex()),
		fmtHex(t.Cyan.Hex()),
		fmtHex(t.Yellow.Hex()),
		fmtHex(t.Magenta.Hex()),
		fmtHex(t.Green.Hex()),
		fmtHex(t.Red.Hex()),
		fmtHex(t.Orange.Hex()),
		fmtHex(t.Blue.Hex()),
	}
}

// Theme converts a ThemeHex to a Theme
func (t ThemeHex) Theme() Theme {
	return Theme{
		t.Name,
		parseColor(t.Background),
		parseColor(t.Border),
		parseColor(t.Text),
		parseColor(t.Title),
		parseColor(t.Score),
		parseColor(t.Msg),
		parseColor(t.Cyan),
		parseColor(t.Yellow),
		parseColor(t.Magenta),
		parseColor(t.Green),
		parseColor(t.Red),
		parseColor(t.Orange),
		parseColor(t.Blue),
	}
}

// Block returns the color a block is painted with
func (t Theme) Block(b mino.Block) tcell.Color {
	switch b {
	case mino.BlockSolidCyan:
		return t.Cyan
	case mino.BlockSolidYellow:
		return t.Yellow
	case mino.BlockSolidMagenta:
		return t.Magenta
	case mino.BlockSolidGreen:
		return t.Green
	case mino.BlockSolidRed:
		return t.Red
	case mino.BlockSolidOrange:
		return t.Orange
	case mino.BlockSolidBlue:
		return t.Blue
	default:
		return t.Background
	}
}

// Dim blends c towards gray by amount, 0 leaves it untouched
func Dim(c tcell.Color, amount float64) tcell.Color {
	if c == tcell.ColorDefault || amount <= 0 {
		return c
	}

	gray := colorful.Color{R: 0.3, G: 0.3, B: 0.3}
	return fromColorful(toColorful(c).BlendLab(gray, amount))
}

// ImportThemes returns a converted Theme from a slice of ThemeHex
// entities if its name matches the want argument
func ImportThemes(want string, themes []ThemeHex) (Theme, error) {
	if want == "" || want == ThemeBasic.Name {
		return ThemeBasic, nil
	}

	for _, t := range themes {
		if t.Name == want {
			return t.Theme(), nil
		}
	}

	return Theme{}, fmt.Errorf("%w: %s", ErrNoTheme, want)
}

// LoadThemes reads a JSON array of ThemeHex
func LoadThemes(path string) ([]ThemeHex, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read themes: %w", err)
	}

	var themes []ThemeHex
	if err := json.Unmarshal(data, &themes); err != nil {
		return nil, fmt.Errorf("failed to parse themes in %s: %w", path, err)
	}

	return themes, nil
}

func blockColor(b mino.Block) tcell.Color {
	r, g, bl := b.RGB()
	return tcell.NewRGBColor(int32(r), int32(g), int32(bl))
}

// ThemeBasic is the default theme
var ThemeBasic = Theme{
	"basic",                            // Name
	tcell.ColorBlack,                   // Background
	tcell.Color247,                     // Border
	tcell.ColorDefault,                 // Text
	tcell.Color45,                      // Title
	tcell.Color252,                     // Score
	tcell.Color160,                     // Msg
	blockColor(mino.BlockSolidCyan),    // Cyan
	blockColor(mino.BlockSolidYellow),  // Yellow
	blockColor(mino.BlockSolidMagenta), // Magenta
	blockColor(mino.BlockSolidGreen),   // Green
	blockColor(mino.BlockSolidRed),     // Red
	blockColor(mino.BlockSolidOrange),  // Orange
	blockColor(mino.BlockSolidBlue),    // Blue
}
