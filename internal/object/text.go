package object

import "github.com/tomz197/pong/internal/draw"

// Label is a line of text at a logical position.
type Label struct {
	Text  string
	Color draw.Color
	Pos   draw.Point
	Size  int
	Align draw.Align
}

// Draw renders the label and returns its bounds. Empty labels draw nothing.
func (l Label) Draw(r draw.Renderer) draw.Rect {
	if l.Text == "" {
		return draw.Rect{X: l.Pos.X, Y: l.Pos.Y}
	}
	return r.Text(l.Text, l.Color, l.Pos, l.Size, l.Align)
}
