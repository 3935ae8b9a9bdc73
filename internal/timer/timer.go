// Package timer holds the countdown state: whole seconds remaining, a pause
// flag, and whether the clock face carries an hour segment.
//
// A Timer is owned by a single goroutine (the event loop) and is not safe
// for concurrent use.
package timer

// HourThreshold is the smallest initial duration, in seconds, that shows an
// hour segment.
const HourThreshold = 3600

// Timer counts down in whole seconds.
type Timer struct {
	initial   uint64
	remaining uint64
	paused    bool
	showHours bool
}

// New creates a running timer. Whether hours are shown is decided here from
// the initial value and never changes, so the hour segment stays put even
// after the remaining time drops below an hour.
func New(initialSeconds uint64) *Timer {
	return &Timer{
		initial:   initialSeconds,
		remaining: initialSeconds,
		showHours: initialSeconds >= HourThreshold,
	}
}

// Tick advances the countdown by one second. It does nothing while paused.
// At zero it saturates; the event loop stops before that point anyway.
func (t *Timer) Tick() {
	if t.paused || t.remaining == 0 {
		return
	}
	t.remaining--
}

// Toggle flips between running and paused. Remaining time is untouched.
func (t *Timer) Toggle() {
	t.paused = !t.paused
}

// HMS splits the remaining time into hours, minutes and seconds.
func (t *Timer) HMS() (h, m, s uint64) {
	return Split(t.remaining)
}

// Split decomposes a second count so that h*3600 + m*60 + s == total.
func Split(total uint64) (h, m, s uint64) {
	h = total / 3600
	m = (total % 3600) / 60
	s = total % 60
	return h, m, s
}

// IsPaused reports whether ticks are currently ignored.
func (t *Timer) IsPaused() bool { return t.paused }

// Remaining returns the seconds left.
func (t *Timer) Remaining() uint64 { return t.remaining }

// Initial returns the duration the timer was created with.
func (t *Timer) Initial() uint64 { return t.initial }

// Elapsed returns the seconds already counted down.
func (t *Timer) Elapsed() uint64 { return t.initial - t.remaining }

// ShowHours reports whether the clock face has an hour segment.
func (t *Timer) ShowHours() bool { return t.showHours }

// Done reports whether the countdown reached zero.
func (t *Timer) Done() bool { return t.remaining == 0 }
