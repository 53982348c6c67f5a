package object

import (
	"github.com/tomz197/pong/internal/draw"
	"github.com/tomz197/pong/internal/loop/config"
	"github.com/tomz197/pong/internal/physics"
)

// Paddle is the player's bat on the left edge of the field.
type Paddle struct {
	Rect  physics.Rect
	Score int // Ball hits this session
}

// NewPaddle creates a paddle at its starting position.
func NewPaddle() *Paddle {
	return &Paddle{
		Rect: physics.Rect{
			X: config.PaddleX,
			Y: config.PaddleY,
			W: config.PaddleWidth,
			H: config.PaddleHeight,
		},
	}
}

// Move shifts the paddle vertically, keeping it inside the field.
func (p *Paddle) Move(dy float64) {
	if dy == 0 {
		return
	}
	p.Rect.Y = physics.Clamp(p.Rect.Y+dy, 0, config.FieldHeight-p.Rect.H)
}

// SetHeight resizes the paddle for a difficulty.
func (p *Paddle) SetHeight(h float64) {
	p.Rect.H = h
	p.Rect.Y = physics.Clamp(p.Rect.Y, 0, config.FieldHeight-h)
}

// Draw renders the paddle as a filled rectangle.
func (p *Paddle) Draw(r draw.Renderer) {
	r.FillRect(toDraw(p.Rect), draw.ColorGreen)
}
