package billing

import (
	"time"
)

// Clock supplies "now" to the billing engine. Callers must capture the clock
// value once per logical request and thread it through every engine call in
// that request, so two calls made microseconds apart never disagree about
// the current day.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now().UTC()
}

// NewClock returns a wall clock reading in UTC.
func NewClock() Clock {
	return realClock{}
}

type fixedClock struct {
	t time.Time
}

func (c fixedClock) Now() time.Time {
	return c.t
}

// NewFixedClock returns a clock frozen at t.
func NewFixedClock(t time.Time) Clock {
	return fixedClock{t: t}
}
