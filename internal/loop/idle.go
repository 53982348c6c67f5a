package loop

import "time"

// idleWarnBefore is how long before disconnecting the warning is shown.
const idleWarnBefore = 30 * time.Second

// idleTracker ends sessions nobody is playing. A zero timeout disables it.
type idleTracker struct {
	timeout  time.Duration
	lastSeen time.Time
}

func newIdleTracker(timeout time.Duration, now time.Time) *idleTracker {
	return &idleTracker{timeout: timeout, lastSeen: now}
}

// observe records activity if the frame carried any key.
func (t *idleTracker) observe(activity bool, now time.Time) {
	if activity {
		t.lastSeen = now
	}
}

// status reports whether to warn the player and whether time is up.
func (t *idleTracker) status(now time.Time) (warn, expired bool) {
	if t.timeout <= 0 {
		return false, false
	}
	idle := now.Sub(t.lastSeen)
	return idle >= t.timeout-idleWarnBefore, idle >= t.timeout
}
