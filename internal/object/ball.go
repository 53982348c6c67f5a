package object

import (
	"math"
	"math/rand/v2"

	"github.com/tomz197/pong/internal/draw"
	"github.com/tomz197/pong/internal/loop/config"
	"github.com/tomz197/pong/internal/physics"
)

// Ball moves at a constant speed along a unit direction.
type Ball struct {
	Rect  physics.Rect
	Dir   physics.Vector // Always unit length, except after a degenerate deflection
	Speed float64        // Units per frame
	rng   *rand.Rand
}

// NewBall creates a ball at the default speed and places it with Reset.
func NewBall(rng *rand.Rand) *Ball {
	b := &Ball{
		Speed: config.DefaultDifficulty.Speed,
		rng:   rng,
	}
	b.Reset()
	return b
}

// Reset puts the ball at a random spot in the middle of the field with a
// random direction steeper than 45 degrees. Speed is kept.
func (b *Ball) Reset() {
	span := config.BallSpawnHi - config.BallSpawnLo + 1
	b.Rect = physics.Rect{
		X: float64(config.BallSpawnLo + b.rng.IntN(span)),
		Y: float64(config.BallSpawnLo + b.rng.IntN(span)),
		W: config.BallSize,
		H: config.BallSize,
	}

	deg := 45 + b.rng.IntN(91) // [45, 135]
	if b.rng.IntN(2) == 1 {
		deg += 180 // [225, 315]
	}
	b.Dir = physics.FromAngle(float64(deg) * math.Pi / 180)
}

// Update moves the ball one frame and bounces it off the top, bottom and
// far walls. It reports whether the ball left the field on the paddle side.
func (b *Ball) Update() (exited bool) {
	step := b.Dir.Scale(b.Speed)
	b.Rect.X += step.X
	b.Rect.Y += step.Y

	switch {
	case b.Rect.Top() <= 0:
		b.Rect.Y = 0
		b.Dir.Y = math.Abs(b.Dir.Y)
	case b.Rect.Bottom() >= config.FieldHeight:
		b.Rect.Y = config.FieldHeight - b.Rect.H
		b.Dir.Y = -math.Abs(b.Dir.Y)
	}

	if b.Rect.Right() >= config.FieldWidth {
		b.Rect.X = config.FieldWidth - b.Rect.W
		b.Dir.X = -math.Abs(b.Dir.X)
	}

	return b.Rect.Left() <= 0
}

// Deflect bounces the ball off p. The vertical direction depends on where
// the ball struck, relative to the paddle center, and the paddle scores a hit.
func (b *Ball) Deflect(p *Paddle) {
	rel := (p.Rect.CenterY() - b.Rect.CenterY()) / (p.Rect.H / 2)
	b.Dir = physics.Vector{
		X: math.Abs(b.Dir.X),
		Y: physics.Clamp(rel, -1, 1),
	}.Normalize()
	p.Score++
}

// Draw renders the ball as an ellipse.
func (b *Ball) Draw(r draw.Renderer) {
	r.Ellipse(toDraw(b.Rect), draw.ColorWhite)
}
