package loop

import "time"

// Clock is a monotonic millisecond counter.
type Clock interface {
	Ticks() int64
}

type systemClock struct {
	start time.Time
}

// NewSystemClock returns a Clock counting from now. time.Since uses the
// monotonic reading, so wall clock changes do not affect it.
func NewSystemClock() Clock {
	return systemClock{start: time.Now()}
}

func (c systemClock) Ticks() int64 {
	return time.Since(c.start).Milliseconds()
}
