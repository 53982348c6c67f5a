package loop

import (
	"context"

	"github.com/tomz197/pong/internal/input"
	"github.com/tomz197/pong/internal/loop/config"
	"github.com/tomz197/pong/internal/score"
)

// updatePlaying runs one frame of play: paddle, ball, then collisions.
func (c *Controller) updatePlaying(ctx context.Context, inp input.Input) {
	c.Paddle.Move(paddleDelta(inp))

	if c.Ball.Update() {
		c.endAttempt(ctx)
		return
	}
	if checkPaddleCollision(c.Ball, c.Paddle) {
		c.logger.Debug("paddle hit", "session", c.Session.ID, "hits", c.Paddle.Score)
	}
}

// paddleDelta maps held keys to a vertical step. Both keys cancel out.
func paddleDelta(inp input.Input) float64 {
	switch {
	case inp.Up && !inp.Down:
		return -config.PaddleStep
	case inp.Down && !inp.Up:
		return config.PaddleStep
	default:
		return 0
	}
}

// endAttempt stores the attempt time and moves on. After the last attempt
// the session is recorded and the rankings are loaded for the summary.
func (c *Controller) endAttempt(ctx context.Context) {
	elapsed := c.Elapsed()
	c.Session.EndAttempt(elapsed)
	c.logger.Debug("attempt over",
		"session", c.Session.ID,
		"attempt", c.Session.Attempt,
		"seconds", elapsed)

	if c.Session.AttemptsLeft() {
		c.State = GameStateAttemptOver
		return
	}

	c.Session.Finish()
	c.record(ctx)
	c.Rankings = c.loadRankings(ctx, config.SidebarRankings)
	c.State = GameStateSessionOver
}

// record persists the finished session. Failures are logged only.
func (c *Controller) record(ctx context.Context) {
	if c.store == nil {
		return
	}
	entry := score.Entry{
		Name:      c.Session.PlayerName,
		Level:     c.Session.Level.Label,
		BestTime:  c.Session.BestTime,
		TotalTime: c.Session.TotalTime,
	}
	if _, err := c.store.Record(ctx, entry); err != nil {
		c.logger.Error("could not record highscore", "session", c.Session.ID, "err", err)
		return
	}
	c.logger.Info("session over",
		"session", c.Session.ID,
		"player", entry.Name,
		"best", entry.BestTime,
		"total", entry.TotalTime)
}
