package game

import (
	"fmt"
	"time"
)

// Clock measures the real time that passed between two polls of the loop and
// keeps a running total of the time spent playing.
type Clock struct {
	now  func() time.Time
	last time.Time

	// Paused stops Played from advancing. Elapsed keeps reporting real time.
	Paused bool
	Played time.Duration
}

func (cl *Clock) String() string {
	return fmt.Sprintf("%d:%02d", int(cl.Played.Minutes()), int(cl.Played.Seconds())%60)
}

func NewClock() *Clock {
	return newClockAt(time.Now)
}

func newClockAt(now func() time.Time) *Clock {
	return &Clock{now: now, last: now(), Paused: true}
}

// Elapsed returns the time since the previous call.
func (cl *Clock) Elapsed() time.Duration {
	t := cl.now()
	d := t.Sub(cl.last)
	cl.last = t

	if d < 0 {
		return 0
	}

	if !cl.Paused {
		cl.Played += d
	}
	return d
}

func (cl *Clock) Start() {
	cl.Paused = false
}

func (cl *Clock) Pause() {
	cl.Paused = true
}

func (cl *Clock) Reset() {
	cl.Played = 0
}
