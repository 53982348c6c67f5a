package loop

import "github.com/tomz197/pong/internal/object"

// checkPaddleCollision deflects the ball if it overlaps the paddle.
// It reports whether a hit happened.
func checkPaddleCollision(b *object.Ball, p *object.Paddle) bool {
	if !b.Rect.Intersects(p.Rect) {
		return false
	}
	b.Deflect(p)
	return true
}
