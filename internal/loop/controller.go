package loop

import (
	"context"
	"io"
	"math/rand/v2"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"github.com/tomz197/pong/internal/draw"
	"github.com/tomz197/pong/internal/input"
	"github.com/tomz197/pong/internal/loop/config"
	"github.com/tomz197/pong/internal/object"
	"github.com/tomz197/pong/internal/score"
)

// Options configures a Controller. Zero fields get working defaults.
type Options struct {
	Store    score.Store
	Clock    Clock
	Rand     *rand.Rand
	Logger   *log.Logger
	TermSize draw.TermSizeFunc // Used by Run; defaults to the local terminal

	// IdleTimeout ends Run after this long without a key press. Zero disables it.
	IdleTimeout time.Duration
}

// Controller owns a game session and drives its state machine.
type Controller struct {
	State    GameState
	Session  *Session
	Paddle   *object.Paddle
	Ball     *object.Ball
	Rankings []score.Entry // Loaded on entry to SessionOver and ViewHighscores

	store  score.Store
	clock  Clock
	rng    *rand.Rand
	logger *log.Logger
}

// NewController creates a controller waiting for the player name.
func NewController(opts Options) *Controller {
	if opts.Clock == nil {
		opts.Clock = NewSystemClock()
	}
	if opts.Rand == nil {
		seed := uint64(time.Now().UnixNano())
		opts.Rand = rand.New(rand.NewPCG(seed, seed>>1))
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	c := &Controller{
		store:  opts.Store,
		clock:  opts.Clock,
		rng:    opts.Rand,
		logger: opts.Logger,
	}
	c.reset()
	return c
}

// reset starts over with a fresh session, paddle and ball.
func (c *Controller) reset() {
	c.State = GameStateEnterName
	c.Session = NewSession()
	c.Paddle = object.NewPaddle()
	c.Ball = object.NewBall(c.rng)
	c.Rankings = nil
}

// Elapsed returns the whole seconds since the current attempt began.
func (c *Controller) Elapsed() int {
	return int((c.clock.Ticks() - c.Session.attemptStart) / 1000)
}

// Update advances the controller by one frame.
func (c *Controller) Update(ctx context.Context, inp input.Input) {
	for _, ev := range inp.Events {
		c.handleEvent(ctx, ev)
	}
	if c.State == GameStatePlay {
		c.updatePlaying(ctx, inp)
	}
}

func (c *Controller) handleEvent(ctx context.Context, ev input.Event) {
	switch c.State {
	case GameStateEnterName:
		c.handleNameEntry(ev)
	case GameStateSelectLevel:
		c.handleLevelSelect(ctx, ev)
	case GameStatePlay:
		// Paddle movement uses held keys, see updatePlaying
	case GameStateAttemptOver:
		if ev.Key == input.KeyRune && ev.Rune == ' ' && c.Session.AttemptsLeft() {
			c.nextAttempt()
		}
	case GameStateSessionOver:
		if ev.Key == input.KeyRune && (ev.Rune == 'r' || ev.Rune == 'R') {
			c.logger.Debug("session restarted", "session", c.Session.ID)
			c.reset()
		}
	case GameStateViewHighscores:
		c.State = GameStateSelectLevel
	}
}

func (c *Controller) handleNameEntry(ev input.Event) {
	name := c.Session.PlayerName
	switch ev.Key {
	case input.KeyRune:
		if unicode.IsPrint(ev.Rune) && utf8.RuneCountInString(name) < config.MaxNameLength {
			c.Session.PlayerName = name + string(ev.Rune)
		}
	case input.KeyBackspace, input.KeyDelete:
		if name != "" {
			_, size := utf8.DecodeLastRuneInString(name)
			c.Session.PlayerName = name[:len(name)-size]
		}
	case input.KeyEnter:
		if name != "" {
			c.State = GameStateSelectLevel
		}
	}
}

func (c *Controller) handleLevelSelect(ctx context.Context, ev input.Event) {
	if ev.Key != input.KeyRune {
		return
	}
	if ev.Rune == 'h' || ev.Rune == 'H' {
		c.Rankings = c.loadRankings(ctx, config.HighscoreCapacity)
		c.State = GameStateViewHighscores
		return
	}
	if d, ok := config.DifficultyForKey(ev.Rune); ok {
		c.startLevel(d)
	}
}

// startLevel applies the difficulty and starts the first attempt.
func (c *Controller) startLevel(d config.Difficulty) {
	c.Session.Level = d
	c.Paddle.SetHeight(d.PaddleHeight)
	c.Ball.Speed = d.Speed
	c.Session.attemptStart = c.clock.Ticks()
	c.State = GameStatePlay
	c.logger.Info("session started",
		"session", c.Session.ID,
		"player", c.Session.PlayerName,
		"level", d.Label)
}

func (c *Controller) nextAttempt() {
	c.Session.Attempt++
	c.Ball.Reset()
	c.Session.attemptStart = c.clock.Ticks()
	c.State = GameStatePlay
}

// loadRankings reads the top n entries. A missing store or a failed read
// yields an empty ranking.
func (c *Controller) loadRankings(ctx context.Context, n int) []score.Entry {
	if c.store == nil {
		return nil
	}
	entries, err := c.store.Top(ctx, n)
	if err != nil {
		c.logger.Error("could not load highscores", "err", err)
		return nil
	}
	return entries
}
