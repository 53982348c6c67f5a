package draw

import (
	"io"
	"unicode/utf8"
)

// textOp is a text overlay queued for the end of the frame.
type textOp struct {
	col, row int
	s        string
	color    Color
	bold     bool
}

// Frame implements Renderer on top of a Canvas. Shapes are rasterized into
// the canvas; text is queued and written over it when the frame is flushed.
type Frame struct {
	canvas *Canvas
	out    *ChunkWriter
	texts  []textOp
}

// Ensure Frame satisfies Renderer.
var _ Renderer = (*Frame)(nil)

// NewFrame creates a frame that writes to w, scaling logicalWidth x logicalHeight
// onto a termWidth x termHeight terminal.
func NewFrame(w io.Writer, termWidth, termHeight int, logicalWidth, logicalHeight float64) *Frame {
	return &Frame{
		canvas: NewScaledCanvas(termWidth, termHeight, logicalWidth, logicalHeight),
		out:    NewChunkWriter(w),
	}
}

// Resize adapts the frame to new terminal dimensions.
func (f *Frame) Resize(termWidth, termHeight int) {
	f.canvas.Resize(termWidth, termHeight)
}

// Begin starts a new frame.
func (f *Frame) Begin() {
	f.canvas.Clear()
	f.texts = f.texts[:0]
}

// FillRect implements Renderer.
func (f *Frame) FillRect(r Rect, c Color) {
	f.canvas.FillRect(r, c)
}

// StrokeRect implements Renderer.
func (f *Frame) StrokeRect(r Rect, c Color) {
	f.canvas.StrokeRect(r, c)
}

// Ellipse implements Renderer.
func (f *Frame) Ellipse(r Rect, c Color) {
	f.canvas.FillEllipse(r, c)
}

// Line implements Renderer. Widths of one unit or less draw a single pixel line.
func (f *Frame) Line(p1, p2 Point, c Color, width float64) {
	if width <= 1 {
		f.canvas.DrawLine(p1, p2, c)
		return
	}
	f.canvas.ThickLine(p1, p2, c, width)
}

// Text implements Renderer. The terminal has a single font size, so sizes of
// 24 and up are rendered bold instead of larger.
func (f *Frame) Text(s string, c Color, pos Point, size int, align Align) Rect {
	n := utf8.RuneCountInString(s)
	col, row := f.canvas.LogicalToTerminal(pos.X, pos.Y)
	if align == AlignCenter {
		col -= n / 2
	}

	origin := f.canvas.TerminalToLogical(col, row)
	cellW, cellH := f.canvas.CellSize()
	bounds := Rect{X: origin.X, Y: origin.Y, W: float64(n) * cellW, H: cellH}

	if visible, vcol := f.clip(s, col, row); visible != "" {
		f.texts = append(f.texts, textOp{col: vcol, row: row, s: visible, color: c, bold: size >= 24})
	}
	return bounds
}

// clip trims s to the columns that fit on the terminal.
func (f *Frame) clip(s string, col, row int) (string, int) {
	if row < 1 || row > f.canvas.TerminalHeight() {
		return "", col
	}
	runes := []rune(s)
	if col < 1 {
		skip := 1 - col
		if skip >= len(runes) {
			return "", col
		}
		runes = runes[skip:]
		col = 1
	}
	if room := f.canvas.TerminalWidth() - col + 1; len(runes) > room {
		if room <= 0 {
			return "", col
		}
		runes = runes[:room]
	}
	return string(runes), col
}

// Flush clears the terminal, draws the canvas and the text overlay, and
// writes the frame in one batch.
func (f *Frame) Flush() error {
	f.out.WriteString("\033[H\033[2J")
	f.canvas.Render(f.out)
	for _, t := range f.texts {
		style := t.color.fg()
		if t.bold {
			style = "1;" + style
		}
		f.out.WriteAt(t.col, t.row, "\033["+style+"m"+t.s+"\033[0m")
	}
	return f.out.Flush()
}
