// Package timer provides a countdown timer driven by frame deltas.
package timer

import "time"

// Timer counts elapsed seconds toward a duration. A repeating timer wraps
// around on the tick after it fires; a paused timer does not advance.
type Timer struct {
	Elapsed   float32
	Duration  float32
	Paused    bool
	Repeating bool
}

// New creates a repeating timer for the given duration.
func New(d time.Duration) Timer {
	return FromSeconds(float32(d.Seconds()))
}

// FromSeconds creates a repeating timer for the given number of seconds.
func FromSeconds(seconds float32) Timer {
	return Timer{Duration: seconds, Repeating: true}
}

// Once creates a non-repeating timer.
func Once(seconds float32) Timer {
	return Timer{Duration: seconds}
}

// Tick advances the timer by dt seconds and reports whether it has reached
// its duration.
func (t *Timer) Tick(dt float32) bool {
	if t.Repeating && t.Elapsed >= t.Duration {
		t.Elapsed -= t.Duration
	}
	if !t.Paused {
		t.Elapsed += dt
	}
	return t.Elapsed >= t.Duration
}

// TickDuration is Tick for a time.Duration.
func (t *Timer) TickDuration(d time.Duration) bool {
	return t.Tick(float32(d.Seconds()))
}

// Reset clears the elapsed time.
func (t *Timer) Reset() {
	t.Elapsed = 0
}
