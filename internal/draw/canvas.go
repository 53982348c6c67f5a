package draw

import (
	"fmt"
	"io"
	"math"
	"strings"
)

// Canvas is a drawing buffer with 2x vertical resolution using half-block characters.
// Supports scaling from logical coordinates to actual terminal pixels.
type Canvas struct {
	termWidth      int     // Actual terminal columns
	termHeight     int     // Actual terminal rows
	subPixelHeight int     // termHeight * 2
	pixels         []Color // Flat slice: [y * termWidth + x], ColorNone if unset

	// Scaling from logical to pixel coordinates
	logicalWidth  float64
	logicalHeight float64
	scaleX        float64 // termWidth / logicalWidth
	scaleY        float64 // (termHeight*2) / logicalHeight

	renderBuf strings.Builder // Buffer for batching render output
}

// NewScaledCanvas creates a canvas that scales from logical coordinates to terminal pixels.
// logicalWidth/Height define the coordinate space used by game objects.
// termWidth/Height are the actual terminal dimensions.
func NewScaledCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) *Canvas {
	c := &Canvas{
		logicalWidth:  logicalWidth,
		logicalHeight: logicalHeight,
	}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize updates the canvas for new terminal dimensions while keeping logical size.
func (c *Canvas) Resize(termWidth, termHeight int) {
	termWidth = max(termWidth, 1)
	termHeight = max(termHeight, 1)
	subPixelHeight := termHeight * 2

	if termWidth != c.termWidth || termHeight != c.termHeight {
		c.pixels = make([]Color, subPixelHeight*termWidth)
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subPixelHeight = subPixelHeight
	}

	c.scaleX = float64(termWidth) / c.logicalWidth
	c.scaleY = float64(subPixelHeight) / c.logicalHeight
}

// Clear resets all pixels in the canvas.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

// setPixel sets a pixel at actual terminal coordinates (no scaling).
func (c *Canvas) setPixel(x, y int, col Color) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		c.pixels[y*c.termWidth+x] = col
	}
}

// Pixel returns the color at pixel coordinates, ColorNone when out of range.
func (c *Canvas) Pixel(x, y int) Color {
	if x < 0 || x >= c.termWidth || y < 0 || y >= c.subPixelHeight {
		return ColorNone
	}
	return c.pixels[y*c.termWidth+x]
}

// toPixel converts logical coordinates to pixel coordinates.
func (c *Canvas) toPixel(p Point) (int, int) {
	return int(math.Round(p.X * c.scaleX)), int(math.Round(p.Y * c.scaleY))
}

// DrawLine draws a one pixel line using Bresenham's algorithm.
// Coordinates are in logical space and get scaled to pixels.
func (c *Canvas) DrawLine(p1, p2 Point, col Color) {
	x1, y1 := c.toPixel(p1)
	x2, y2 := c.toPixel(p2)
	c.bresenham(x1, y1, x2, y2, col)
}

func (c *Canvas) bresenham(x1, y1, x2, y2 int, col Color) {
	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy

	for {
		c.setPixel(x1, y1, col)

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// maxChunkSize is the maximum bytes to write at once for optimal network flow.
const maxChunkSize = 1400

// Render outputs the canvas to the writer using colored half-block characters.
func (c *Canvas) Render(w io.Writer) {
	c.renderBuf.Reset()
	c.renderBuf.Grow(c.termWidth * c.termHeight * 4)

	for row := 0; row < c.termHeight; row++ {
		topOffset := row * 2 * c.termWidth
		bottomOffset := topOffset + c.termWidth

		for col := 0; col < c.termWidth; col++ {
			top := c.pixels[topOffset+col]
			bottom := c.pixels[bottomOffset+col]

			switch {
			case top == ColorNone && bottom == ColorNone:
				continue
			case top == bottom:
				fmt.Fprintf(&c.renderBuf, "\033[%d;%dH\033[%sm%c", row+1, col+1, top.fg(), BlockFull)
			case bottom == ColorNone:
				fmt.Fprintf(&c.renderBuf, "\033[%d;%dH\033[%sm%c", row+1, col+1, top.fg(), BlockUpperHalf)
			case top == ColorNone:
				fmt.Fprintf(&c.renderBuf, "\033[%d;%dH\033[%sm%c", row+1, col+1, bottom.fg(), BlockLowerHalf)
			default:
				fmt.Fprintf(&c.renderBuf, "\033[%d;%dH\033[%s;%sm%c\033[49m", row+1, col+1, top.fg(), bottom.bg(), BlockUpperHalf)
			}
		}
	}
	c.renderBuf.WriteString("\033[0m")

	// Write output in chunks for optimal network flow
	data := c.renderBuf.String()
	for len(data) > 0 {
		chunk := data
		if len(chunk) > maxChunkSize {
			chunk = data[:maxChunkSize]
		}
		io.WriteString(w, chunk)
		data = data[len(chunk):]
	}
}

// TerminalWidth returns the actual terminal column count.
func (c *Canvas) TerminalWidth() int {
	return c.termWidth
}

// TerminalHeight returns the actual terminal row count.
func (c *Canvas) TerminalHeight() int {
	return c.termHeight
}

// LogicalToTerminal converts logical coordinates to 1-based terminal position (col, row).
// This is useful for placing text overlays at positions matching canvas-drawn objects.
func (c *Canvas) LogicalToTerminal(x, y float64) (col, row int) {
	px, py := c.toPixel(Point{X: x, Y: y})
	return px + 1, py/2 + 1
}

// TerminalToLogical converts a 1-based terminal cell to the logical
// coordinates of its top-left corner.
func (c *Canvas) TerminalToLogical(col, row int) Point {
	return Point{
		X: float64(col-1) / c.scaleX,
		Y: float64((row-1)*2) / c.scaleY,
	}
}

// CellSize returns the logical width and height of one terminal cell.
func (c *Canvas) CellSize() (w, h float64) {
	return 1 / c.scaleX, 2 / c.scaleY
}
