// Package loop runs the game: a fixed-rate Input → Update → Draw cycle over
// a session state machine.
package loop

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/tomz197/pong/internal/draw"
	"github.com/tomz197/pong/internal/input"
	"github.com/tomz197/pong/internal/loop/config"
	"github.com/tomz197/pong/internal/object"
)

var idleWarning = object.Label{
	Text:  "Inactive - disconnecting soon",
	Color: draw.ColorRed,
	Pos:   draw.Point{X: config.ScreenWidth / 2, Y: config.ScreenHeight - 10},
	Size:  24,
	Align: draw.AlignCenter,
}

// Run plays sessions on the terminal behind r and w until the player quits,
// the input closes or ctx is cancelled.
func Run(ctx context.Context, r *bufio.Reader, w io.Writer, opts Options) error {
	termSize := opts.TermSize
	if termSize == nil {
		termSize = draw.DefaultTermSizeFunc
	}

	c := NewController(opts)
	stream := input.StartStream(r)

	termWidth, termHeight, err := termSize()
	if err != nil {
		return fmt.Errorf("terminal size: %w", err)
	}
	frame := draw.NewFrame(w, termWidth, termHeight, config.ScreenWidth, config.ScreenHeight)

	draw.HideCursor(w)
	defer draw.ShowCursor(w)
	draw.ClearScreen(w)

	idle := newIdleTracker(opts.IdleTimeout, time.Now())

	for {
		frameStart := time.Now()

		// ===== INPUT PHASE =====
		inp := stream.ReadInput()
		if inp.Quit {
			break
		}
		idle.observe(len(inp.Events) > 0, frameStart)
		warnIdle, expired := idle.status(frameStart)
		if expired {
			c.logger.Info("disconnecting idle session", "session", c.Session.ID)
			break
		}

		// ===== UPDATE PHASE =====
		prev := c.State
		c.Update(ctx, inp)
		if c.State != prev {
			stream.ResetHeld()
			c.logger.Debug("state changed", "from", prev, "to", c.State)
		}

		if tw, th, err := termSize(); err == nil {
			frame.Resize(tw, th)
		}

		// ===== DRAW PHASE =====
		frame.Begin()
		c.Render(frame)
		if warnIdle {
			idleWarning.Draw(frame)
		}
		if err := frame.Flush(); err != nil {
			return fmt.Errorf("draw frame: %w", err)
		}

		// ===== FRAME TIMING =====
		wait := config.TargetFrameTime - time.Since(frameStart)
		if wait < 0 {
			wait = 0
		}
		select {
		case <-ctx.Done():
			draw.ClearScreen(w)
			return nil
		case <-time.After(wait):
		}
	}

	draw.ClearScreen(w)
	return nil
}
