// Package object holds the game entities: the paddle, the ball and text labels.
package object

import (
	"github.com/tomz197/pong/internal/draw"
	"github.com/tomz197/pong/internal/physics"
)

// Drawable is implemented by entities that render themselves.
type Drawable interface {
	Draw(r draw.Renderer)
}

// toDraw converts a physics rect to a drawing rect.
func toDraw(r physics.Rect) draw.Rect {
	return draw.Rect{X: r.X, Y: r.Y, W: r.W, H: r.H}
}
