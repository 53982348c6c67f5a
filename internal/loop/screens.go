package loop

import (
	"fmt"

	"github.com/tomz197/pong/internal/draw"
	"github.com/tomz197/pong/internal/loop/config"
	"github.com/tomz197/pong/internal/object"
	"github.com/tomz197/pong/internal/score"
)

const (
	fieldCenterX   = config.FieldWidth / 2
	sidebarCenterX = (config.SidebarX + config.ScreenWidth) / 2
	sidebarLeft    = config.SidebarX + 20
	textSize       = 20
	smallTextSize  = 18
	titleSize      = 24
)

// FormatTime renders whole seconds as mm:ss.
func FormatTime(seconds int) string {
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// truncate cuts s to at most n runes.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

func center(text string, c draw.Color, x, y float64, size int) object.Label {
	return object.Label{Text: text, Color: c, Pos: draw.Point{X: x, Y: y}, Size: size, Align: draw.AlignCenter}
}

func topLeft(text string, c draw.Color, x, y float64, size int) object.Label {
	return object.Label{Text: text, Color: c, Pos: draw.Point{X: x, Y: y}, Size: size, Align: draw.AlignTopLeft}
}

// Render draws the screen for the current state.
func (c *Controller) Render(r draw.Renderer) {
	if c.State != GameStateViewHighscores {
		r.Line(draw.Point{X: config.SidebarX, Y: 0}, draw.Point{X: config.SidebarX, Y: config.ScreenHeight}, draw.ColorWhite, 2)
	}

	var labels []object.Label
	switch c.State {
	case GameStateEnterName:
		r.StrokeRect(draw.Rect{X: 50, Y: 175, W: 300, H: 40}, draw.ColorWhite)
		labels = []object.Label{
			center("Enter Your Name:", draw.ColorWhite, fieldCenterX, 100, titleSize),
			center(c.Session.PlayerName, draw.ColorWhite, fieldCenterX, 195, titleSize),
			center("Press ENTER when ready", draw.ColorCyan, fieldCenterX, 300, textSize),
		}

	case GameStateSelectLevel:
		labels = []object.Label{
			center(fmt.Sprintf("Welcome %s!", c.Session.PlayerName), draw.ColorWhite, fieldCenterX, 80, titleSize),
			center("Select Difficulty Level:", draw.ColorWhite, fieldCenterX, 120, textSize),
			center("[1] Beginner [2] Advanced [3] Expert", draw.ColorWhite, fieldCenterX, 180, textSize),
			center("Press H for Highscores", draw.ColorOrange, fieldCenterX, 300, textSize),
		}

	case GameStatePlay:
		for _, d := range []object.Drawable{c.Paddle, c.Ball} {
			d.Draw(r)
		}
		labels = c.sidebar()

	case GameStateAttemptOver:
		last := c.Session.AttemptTimes[len(c.Session.AttemptTimes)-1]
		labels = []object.Label{
			center(fmt.Sprintf("Attempt %d Time: %s", c.Session.Attempt, FormatTime(last)), draw.ColorRed, fieldCenterX, 150, titleSize),
			center("Best Time: "+FormatTime(c.Session.BestTime), draw.ColorYellow, fieldCenterX, 200, textSize),
			center("Press SPACE for next attempt", draw.ColorCyan, fieldCenterX, 280, textSize),
		}

	case GameStateSessionOver:
		labels = []object.Label{
			center("Game Session Complete!", draw.ColorOrange, fieldCenterX, 50, 28),
			center("Your Best: "+FormatTime(c.Session.BestTime), draw.ColorYellow, fieldCenterX, 90, textSize),
			center("Total Time: "+FormatTime(c.Session.TotalTime), draw.ColorCyan, fieldCenterX, 120, textSize),
			center("- Top Rankings -", draw.ColorWhite, sidebarCenterX, 160, textSize),
		}
		labels = append(labels, rankingLabels(c.Rankings)...)
		labels = append(labels, center("Press R to restart", draw.ColorWhite, sidebarCenterX, 360, smallTextSize))

	case GameStateViewHighscores:
		labels = highscoreLabels(c.Rankings)
	}

	for _, l := range labels {
		l.Draw(r)
	}
}

// sidebar returns the HUD shown next to the field during play.
func (c *Controller) sidebar() []object.Label {
	labels := []object.Label{
		topLeft("Player: "+c.Session.PlayerName, draw.ColorCyan, sidebarLeft, 20, smallTextSize),
		topLeft("Level: "+c.Session.Level.Label, draw.ColorCyan, sidebarLeft, 50, smallTextSize),
		center(fmt.Sprintf("Attempt: %d/%d", c.Session.Attempt, config.MaxAttempts), draw.ColorYellow, sidebarCenterX, 360, textSize),
		topLeft("Time: "+FormatTime(c.Elapsed()), draw.ColorYellow, sidebarLeft, 380, smallTextSize),
	}
	if c.Session.BestTime > 0 {
		labels = append(labels, center("Best: "+FormatTime(c.Session.BestTime), draw.ColorGreen, sidebarCenterX, 320, textSize))
	}
	return labels
}

// rankingLabels lists the top entries in the sidebar of the summary screen.
func rankingLabels(entries []score.Entry) []object.Label {
	if len(entries) == 0 {
		return []object.Label{center("No rankings yet!", draw.ColorRed, sidebarCenterX, 200, textSize)}
	}
	labels := make([]object.Label, 0, config.SidebarRankings)
	for i, e := range score.First(entries, config.SidebarRankings) {
		text := fmt.Sprintf("%d. %s - %s", i+1, truncate(e.Name, config.SidebarNameLength), FormatTime(e.BestTime))
		labels = append(labels, topLeft(text, draw.ColorWhite, sidebarLeft+30, float64(190+i*30), smallTextSize))
	}
	return labels
}

// highscoreLabels lays out the full table. It spans the whole screen
// because a terminal row has no room for it beside the field.
func highscoreLabels(entries []score.Entry) []object.Label {
	labels := []object.Label{
		center("Top 10 Highscores", draw.ColorOrange, config.ScreenWidth/2, 40, titleSize),
	}
	if len(entries) == 0 {
		labels = append(labels, center("No highscores yet!", draw.ColorRed, config.ScreenWidth/2, 200, textSize))
	}
	for i, e := range score.First(entries, config.HighscoreCapacity) {
		y := float64(80 + i*26)
		labels = append(labels,
			topLeft(fmt.Sprintf("%d. %s - %s", i+1, e.Name, e.Level), draw.ColorWhite, 60, y, smallTextSize),
			topLeft("Best: "+FormatTime(e.BestTime), draw.ColorWhite, 420, y, smallTextSize),
		)
	}
	return append(labels, center("Press any key to return", draw.ColorCyan, config.ScreenWidth/2, 360, textSize))
}
