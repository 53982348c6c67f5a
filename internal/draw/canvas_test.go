package draw

import (
	"bytes"
	"strings"
	"testing"
)

func TestFillRectScaling(t *testing.T) {
	// 60x20 terminal => 60x40 pixels for a 600x400 logical space (scale 0.1)
	c := NewScaledCanvas(60, 20, 600, 400)
	c.FillRect(Rect{X: 20, Y: 160, W: 10, H: 80}, ColorGreen)

	for y := 16; y <= 23; y++ {
		if got := c.Pixel(2, y); got != ColorGreen {
			t.Errorf("Pixel(2, %d) = %v, want green", y, got)
		}
	}
	if got := c.Pixel(2, 15); got != ColorNone {
		t.Errorf("Pixel above rect = %v, want none", got)
	}
	if got := c.Pixel(3, 16); got != ColorNone {
		t.Errorf("Pixel right of rect = %v, want none", got)
	}
}

func TestTinyRectCoversOnePixel(t *testing.T) {
	c := NewScaledCanvas(10, 5, 600, 400)
	c.FillRect(Rect{X: 300, Y: 200, W: 1, H: 1}, ColorWhite)

	count := 0
	for _, p := range c.pixels {
		if p != ColorNone {
			count++
		}
	}
	if count != 1 {
		t.Errorf("painted %d pixels, want 1", count)
	}
}

func TestEllipseLeavesCorners(t *testing.T) {
	c := NewScaledCanvas(100, 50, 100, 100)
	c.FillEllipse(Rect{X: 10, Y: 10, W: 20, H: 20}, ColorWhite)

	if c.Pixel(20, 20) != ColorWhite {
		t.Error("ellipse center not painted")
	}
	if c.Pixel(10, 10) != ColorNone {
		t.Error("ellipse corner painted")
	}
}

func TestThickLineVertical(t *testing.T) {
	c := NewScaledCanvas(60, 20, 600, 400)
	c.ThickLine(Point{X: 400, Y: 0}, Point{X: 400, Y: 400}, ColorWhite, 2)

	for y := 0; y < 40; y++ {
		if c.Pixel(40, y) != ColorWhite {
			t.Fatalf("Pixel(40, %d) not painted", y)
		}
	}
}

func TestFrameThinLine(t *testing.T) {
	f := NewFrame(&bytes.Buffer{}, 60, 20, 600, 400)
	f.Line(Point{X: 0, Y: 100}, Point{X: 590, Y: 100}, ColorYellow, 1)

	for x := 0; x <= 59; x++ {
		if f.canvas.Pixel(x, 10) != ColorYellow {
			t.Fatalf("Pixel(%d, 10) not painted", x)
		}
	}
	if f.canvas.Pixel(30, 9) != ColorNone || f.canvas.Pixel(30, 11) != ColorNone {
		t.Error("thin line painted more than one row")
	}
}

func TestRenderHalfBlocks(t *testing.T) {
	c := NewScaledCanvas(3, 1, 3, 2)
	c.setPixel(0, 0, ColorGreen)
	c.setPixel(0, 1, ColorGreen)
	c.setPixel(1, 0, ColorWhite)
	c.setPixel(2, 0, ColorRed)
	c.setPixel(2, 1, ColorCyan)

	var buf bytes.Buffer
	c.Render(&buf)
	out := buf.String()

	for _, want := range []string{
		"\033[1;1H\033[92m█",
		"\033[1;2H\033[97m▀",
		"\033[1;3H\033[91;106m▀",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("render output missing %q in %q", want, out)
		}
	}
}

func TestFrameTextBounds(t *testing.T) {
	var buf bytes.Buffer
	f := NewFrame(&buf, 60, 20, 600, 400)
	f.Begin()

	got := f.Text("abcd", ColorWhite, Point{X: 300, Y: 200}, 20, AlignCenter)
	want := Rect{X: 280, Y: 200, W: 40, H: 20}
	if got != want {
		t.Errorf("center bounds = %+v, want %+v", got, want)
	}

	got = f.Text("abcd", ColorWhite, Point{X: 420, Y: 20}, 18, AlignTopLeft)
	want = Rect{X: 420, Y: 20, W: 40, H: 20}
	if got != want {
		t.Errorf("top-left bounds = %+v, want %+v", got, want)
	}

	if err := f.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if !strings.Contains(buf.String(), "\033[11;29H\033[97mabcd") {
		t.Errorf("centered text not written at 11;29: %q", buf.String())
	}
}

func TestFrameTextClipsToTerminal(t *testing.T) {
	var buf bytes.Buffer
	f := NewFrame(&buf, 10, 5, 100, 100)
	f.Begin()
	f.Text("0123456789ABCDEF", ColorWhite, Point{X: 50, Y: 10}, 18, AlignTopLeft)
	f.Text("hidden", ColorWhite, Point{X: 0, Y: 500}, 18, AlignTopLeft)
	if err := f.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "01234\033[0m") {
		t.Errorf("text not clipped to width: %q", out)
	}
	if strings.Contains(out, "hidden") {
		t.Errorf("offscreen text written: %q", out)
	}
}

func TestBoldForLargeText(t *testing.T) {
	var buf bytes.Buffer
	f := NewFrame(&buf, 60, 20, 600, 400)
	f.Begin()
	f.Text("Title", ColorOrange, Point{X: 200, Y: 50}, 28, AlignCenter)
	if err := f.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if !strings.Contains(buf.String(), "\033[1;38;5;214mTitle") {
		t.Errorf("large text not bold: %q", buf.String())
	}
}
