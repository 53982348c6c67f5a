// Package config centralizes all tunable game parameters.
package config

import "time"

// Screen layout in logical units. The play field is the left part of the
// screen, the sidebar holds the HUD. Rendering scales to the terminal.
const (
	ScreenWidth  = 600
	ScreenHeight = 400
	FieldWidth   = 400
	FieldHeight  = 400
	SidebarX     = FieldWidth
)

// Paddle
const (
	PaddleX      = 20
	PaddleY      = 160
	PaddleWidth  = 10
	PaddleHeight = 80
	PaddleStep   = 7 // Units per frame while a direction key is held
)

// Ball
const (
	BallSize    = 10
	BallSpawnLo = 100 // Spawn region (both axes), inclusive
	BallSpawnHi = 300
)

// Session
const (
	MaxAttempts       = 3
	MaxNameLength     = 15 // Runes
	HighscoreCapacity = 10
	SidebarRankings   = 5
	SidebarNameLength = 8
)

// Frame pacing
const (
	TargetFPS       = 60
	TargetFrameTime = time.Second / TargetFPS
)

// Difficulty is a named preset of ball speed and paddle height.
type Difficulty struct {
	Key          rune
	Speed        float64 // Units per frame
	PaddleHeight float64
	Label        string
}

// Difficulties lists the selectable presets in menu order.
var Difficulties = []Difficulty{
	{Key: '1', Speed: 3, PaddleHeight: 80, Label: "Beginner"},
	{Key: '2', Speed: 4, PaddleHeight: 60, Label: "Advanced"},
	{Key: '3', Speed: 5, PaddleHeight: 40, Label: "Expert"},
}

// DefaultDifficulty supplies the ball speed before a level is picked.
var DefaultDifficulty = Difficulties[0]

// DifficultyForKey returns the preset bound to key.
func DifficultyForKey(key rune) (Difficulty, bool) {
	for _, d := range Difficulties {
		if d.Key == key {
			return d, true
		}
	}
	return Difficulty{}, false
}
