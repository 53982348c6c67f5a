package loop

import (
	"testing"
	"time"
)

func TestIdleTracker(t *testing.T) {
	start := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	tr := newIdleTracker(2*time.Minute, start)

	tests := []struct {
		after       time.Duration
		wantWarn    bool
		wantExpired bool
	}{
		{0, false, false},
		{89 * time.Second, false, false},
		{90 * time.Second, true, false},
		{119 * time.Second, true, false},
		{120 * time.Second, true, true},
	}
	for _, tt := range tests {
		warn, expired := tr.status(start.Add(tt.after))
		if warn != tt.wantWarn || expired != tt.wantExpired {
			t.Errorf("after %v: warn=%v expired=%v, want %v %v", tt.after, warn, expired, tt.wantWarn, tt.wantExpired)
		}
	}

	tr.observe(false, start.Add(100*time.Second))
	if warn, _ := tr.status(start.Add(100 * time.Second)); !warn {
		t.Error("frame without keys counted as activity")
	}
	tr.observe(true, start.Add(100*time.Second))
	if warn, _ := tr.status(start.Add(100 * time.Second)); warn {
		t.Error("activity did not reset the timer")
	}
}

func TestIdleTrackerDisabled(t *testing.T) {
	start := time.Now()
	tr := newIdleTracker(0, start)
	if warn, expired := tr.status(start.Add(24 * time.Hour)); warn || expired {
		t.Error("disabled tracker fired")
	}
}
