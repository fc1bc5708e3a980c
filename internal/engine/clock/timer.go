// Package clock provides frame-delta driven timers.
package clock

import "time"

// Timer counts frame time toward a period. A repeating timer wraps and may
// finish several times in one long frame.
type Timer struct {
	period    time.Duration
	elapsed   time.Duration
	repeating bool
	finished  int
}

// NewRepeating creates a timer that restarts every period.
func NewRepeating(period time.Duration) *Timer {
	return &Timer{period: period, repeating: true}
}

// NewOnce creates a timer that finishes a single time.
func NewOnce(period time.Duration) *Timer {
	return &Timer{period: period}
}

// Tick advances the timer by dt and returns how many times it finished.
func (t *Timer) Tick(dt time.Duration) int {
	t.finished = 0
	if t.period <= 0 {
		return 0
	}
	if !t.repeating && t.elapsed >= t.period {
		return 0
	}

	t.elapsed += dt
	if t.elapsed < t.period {
		return 0
	}

	if !t.repeating {
		t.elapsed = t.period
		t.finished = 1
		return 1
	}
	t.finished = int(t.elapsed / t.period)
	t.elapsed %= t.period
	return t.finished
}

// JustFinished reports whether the last Tick completed the period.
func (t *Timer) JustFinished() bool {
	return t.finished > 0
}

// TimesFinished returns the completion count of the last Tick.
func (t *Timer) TimesFinished() int {
	return t.finished
}

// Elapsed returns the time accumulated toward the next completion.
func (t *Timer) Elapsed() time.Duration {
	return t.elapsed
}

// Period returns the timer period.
func (t *Timer) Period() time.Duration {
	return t.period
}

// Reset clears accumulated time.
func (t *Timer) Reset() {
	t.elapsed = 0
	t.finished = 0
}
