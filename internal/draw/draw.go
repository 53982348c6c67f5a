// Package draw renders shapes and text to an ANSI terminal. Shapes go to a
// scaled half-block Canvas; text is written as an overlay after the canvas.
package draw

// Point represents a 2D coordinate.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned box in logical coordinates.
type Rect struct {
	X, Y, W, H float64
}

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// Color is a palette index. ColorNone marks an empty pixel.
type Color uint8

const (
	ColorNone Color = iota
	ColorWhite
	ColorGreen
	ColorRed
	ColorYellow
	ColorCyan
	ColorOrange
)

// sgr holds the foreground and background SGR parameters for each color.
var sgr = [...]struct{ fg, bg string }{
	ColorNone:   {"39", "49"},
	ColorWhite:  {"97", "107"},
	ColorGreen:  {"92", "102"},
	ColorRed:    {"91", "101"},
	ColorYellow: {"93", "103"},
	ColorCyan:   {"96", "106"},
	ColorOrange: {"38;5;214", "48;5;214"},
}

func (c Color) fg() string {
	if int(c) >= len(sgr) {
		return sgr[ColorNone].fg
	}
	return sgr[c].fg
}

func (c Color) bg() string {
	if int(c) >= len(sgr) {
		return sgr[ColorNone].bg
	}
	return sgr[c].bg
}

// Align selects how a text position is interpreted.
type Align int

const (
	AlignCenter  Align = iota // Position is the center of the text
	AlignTopLeft              // Position is the top-left corner of the text
)

// Renderer is the drawing surface used by game objects and screens.
// All coordinates are logical.
type Renderer interface {
	FillRect(r Rect, c Color)
	StrokeRect(r Rect, c Color)
	Ellipse(r Rect, c Color)
	Line(p1, p2 Point, c Color, width float64)
	// Text draws s and returns the bounds it occupies.
	Text(s string, c Color, pos Point, size int, align Align) Rect
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
