package loop

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/tomz197/pong/internal/loop/config"
)

// GameState represents the current screen of a session.
type GameState int

const (
	GameStateEnterName      GameState = iota // Typing the player name
	GameStateSelectLevel                     // Difficulty menu
	GameStatePlay                            // Ball in play
	GameStateAttemptOver                     // Ball lost, more attempts left
	GameStateSessionOver                     // All attempts used, score recorded
	GameStateViewHighscores                  // Ranking table, reached from the menu
)

func (s GameState) String() string {
	switch s {
	case GameStateEnterName:
		return "enter-name"
	case GameStateSelectLevel:
		return "select-level"
	case GameStatePlay:
		return "play"
	case GameStateAttemptOver:
		return "attempt-over"
	case GameStateSessionOver:
		return "session-over"
	case GameStateViewHighscores:
		return "view-highscores"
	default:
		return fmt.Sprintf("GameState(%d)", int(s))
	}
}

// Session holds one player's run: name, level and the attempt times.
// Times are whole seconds.
type Session struct {
	ID           string
	PlayerName   string
	Level        config.Difficulty
	Attempt      int // 1-based
	AttemptTimes []int
	BestTime     int
	TotalTime    int
	attemptStart int64 // Clock ticks (ms) when the current attempt began
}

// NewSession creates an empty session on its first attempt.
func NewSession() *Session {
	return &Session{
		ID:      uuid.NewString(),
		Attempt: 1,
	}
}

// AttemptsLeft reports whether another attempt may start after the current one.
func (s *Session) AttemptsLeft() bool {
	return s.Attempt < config.MaxAttempts
}

// EndAttempt records the duration of the current attempt.
func (s *Session) EndAttempt(seconds int) {
	s.AttemptTimes = append(s.AttemptTimes, seconds)
	s.BestTime = lo.Max(s.AttemptTimes)
}

// Finish totals the attempt times.
func (s *Session) Finish() {
	s.TotalTime = lo.Sum(s.AttemptTimes)
}
