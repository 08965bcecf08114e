package engine

import "time"

// TimerMode selects whether a Timer rearms after finishing
type TimerMode uint8

const (
	TimerOnce TimerMode = iota
	TimerRepeating
)

// Timer accumulates simulated time and reports expiry per tick
// It is driven by the fixed step, never by wall time
type Timer struct {
	duration time.Duration
	elapsed  time.Duration
	mode     TimerMode
	paused   bool

	finished      bool
	timesFinished int // Expiries during the last Tick
}

// NewTimer creates a stopped-at-zero timer
func NewTimer(duration time.Duration, mode TimerMode) *Timer {
	return &Timer{duration: duration, mode: mode}
}

// Tick advances the timer by dt and returns it for chaining
func (t *Timer) Tick(dt time.Duration) *Timer {
	t.timesFinished = 0
	if t.paused {
		return t
	}

	if t.mode == TimerOnce {
		if t.finished {
			return t
		}
		t.elapsed += dt
		if t.elapsed >= t.duration {
			t.elapsed = t.duration
			t.finished = true
			t.timesFinished = 1
		}
		return t
	}

	t.elapsed += dt
	if t.duration <= 0 {
		t.finished = true
		t.timesFinished = 1
		t.elapsed = 0
		return t
	}
	if t.elapsed >= t.duration {
		t.timesFinished = int(t.elapsed / t.duration)
		t.elapsed %= t.duration
		t.finished = true
	} else {
		t.finished = false
	}
	return t
}

// JustFinished reports whether the last Tick crossed an expiry
func (t *Timer) JustFinished() bool {
	return t.timesFinished > 0
}

// TimesFinishedThisTick returns how many expiries the last Tick crossed
// A repeating timer with a step longer than its period can expire more than once
func (t *Timer) TimesFinishedThisTick() int {
	return t.timesFinished
}

// Finished reports whether a once timer has completed, or a repeating one expired on the last Tick
func (t *Timer) Finished() bool {
	return t.finished
}

// Elapsed returns accumulated time since the last expiry or reset
func (t *Timer) Elapsed() time.Duration {
	return t.elapsed
}

// Remaining returns time left until the next expiry
func (t *Timer) Remaining() time.Duration {
	return t.duration - t.elapsed
}

// Duration returns the configured period
func (t *Timer) Duration() time.Duration {
	return t.duration
}

// Reset rewinds the timer without changing its period or mode
func (t *Timer) Reset() {
	t.elapsed = 0
	t.finished = false
	t.timesFinished = 0
}

// Pause freezes the timer; Tick becomes a no-op
func (t *Timer) Pause() {
	t.paused = true
}

// Unpause resumes ticking
func (t *Timer) Unpause() {
	t.paused = false
}
