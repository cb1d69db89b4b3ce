package tween

import "math"

// Direction is the playback direction of a Timer.
type Direction int

// Playback directions. The zero value is Forward.
const (
	Forward Direction = iota
	Backward
)

// String returns "Forward" or "Backward".
func (d Direction) String() string {
	if d == Backward {
		return "Backward"
	}
	return "Forward"
}

func (d Direction) sign() float64 {
	if d == Backward {
		return -1
	}
	return 1
}

// RepeatStyle selects what happens when a repeating Timer crosses a
// playback boundary.
type RepeatStyle int

const (
	// WrapAround jumps back to the opposite boundary, preserving
	// direction.
	WrapAround RepeatStyle = iota
	// PingPong reflects the overflow back into the playback window and
	// reverses direction.
	PingPong
)

// String returns "WrapAround" or "PingPong".
func (s RepeatStyle) String() string {
	if s == PingPong {
		return "PingPong"
	}
	return "WrapAround"
}

// Repeat controls how many boundary crossings a Timer may consume before
// it completes. The zero value plays once: the first crossing completes
// the timer.
type Repeat struct {
	infinite  bool
	remaining int
}

// RepeatTimes allows n boundary crossings (wraps or bounces). n <= 0 is
// the same as playing once.
func RepeatTimes(n int) Repeat {
	if n < 0 {
		n = 0
	}
	return Repeat{remaining: n}
}

// RepeatInfinitely never exhausts.
func RepeatInfinitely() Repeat {
	return Repeat{infinite: true}
}

func (r Repeat) active() bool {
	return r.infinite || r.remaining > 0
}

// Timer owns the authoritative playback position for one animated unit.
// It is a pure state machine: Advance consumes a delta and derives the
// unit's normalized progress, applying delay, repeat, and boundary rules.
// The exported fields may be set before the first Advance; Direction and
// Paused may also be flipped mid-flight and take effect on the next tick.
type Timer struct {
	// Elapsed is the current position in the playback window, in the
	// same unit as Duration. Always within [0, Duration] after a tick.
	Elapsed float64
	// Duration is the length of the playback window. A non-positive
	// duration completes immediately on the first Advance.
	Duration float64
	// Delay postpones the start: deltas are consumed by the delay first,
	// and progress is the NaN sentinel until it is exhausted.
	Delay float64
	// Direction is the sign applied to deltas. Reversing it mid-flight
	// does not alter Elapsed, only subsequent ticks.
	Direction Direction
	// Repeat is the boundary-crossing budget. Zero value plays once.
	Repeat Repeat
	// Style selects wrap-around or ping-pong boundary behavior.
	Style RepeatStyle
	// Paused freezes the timer; Advance becomes a no-op.
	Paused bool

	started   bool
	completed bool
	consumed  int
}

// Completed reports whether the timer reached its terminal state.
func (t *Timer) Completed() bool { return t.completed }

// RepeatsConsumed returns how many boundary crossings have been folded
// so far.
func (t *Timer) RepeatsConsumed() int { return t.consumed }

// progress derives the current normalized position without advancing.
func (t *Timer) progress() float64 {
	if !t.started {
		return math.NaN()
	}
	if t.Duration <= 0 {
		if t.Direction == Backward {
			return 0
		}
		return 1
	}
	return t.Elapsed / t.Duration
}

// Advance consumes a delta and returns the unit's normalized progress in
// [0,1], or NaN while the start delay has not been exhausted. ended is
// true exactly once, on the tick that transitions the timer to its
// terminal completed state.
//
// A delta of zero is a strict no-op. A delta large enough to cross
// several boundaries is folded iteratively: each fold wraps or reflects
// the overflow and consumes one repeat, so a single big step lands
// exactly where the same total applied in small steps would.
func (t *Timer) Advance(dt float64) (progress float64, ended bool) {
	if t.completed || t.Paused || dt == 0 {
		return t.progress(), false
	}

	if t.Delay > 0 {
		if dt <= t.Delay {
			t.Delay -= dt
			return math.NaN(), false
		}
		dt -= t.Delay
		t.Delay = 0
	}
	t.started = true

	if t.Duration <= 0 {
		t.completed = true
		return t.progress(), true
	}

	e := t.Elapsed + dt*t.Direction.sign()

	// Fold strict overshoots back into the window, one boundary
	// crossing at a time.
	for e < 0 || e > t.Duration {
		if !t.Repeat.active() {
			if e < 0 {
				e = 0
			} else {
				e = t.Duration
			}
			t.completed = true
			t.Elapsed = e
			return t.progress(), true
		}
		switch t.Style {
		case PingPong:
			if e > t.Duration {
				e = 2*t.Duration - e
			} else {
				e = -e
			}
			t.flip()
		default: // WrapAround
			if e > t.Duration {
				e -= t.Duration
			} else {
				e += t.Duration
			}
		}
		t.consumeRepeat()
	}

	// Landing exactly on a boundary is itself a crossing: a one-shot
	// timer completes there, a wrap jumps to the opposite boundary, a
	// ping-pong reverses in place.
	if e == 0 || e == t.Duration {
		if !t.Repeat.active() {
			t.completed = true
			ended = true
		} else {
			switch t.Style {
			case PingPong:
				t.flip()
			default:
				if e == t.Duration {
					e = 0
				} else {
					e = t.Duration
				}
			}
			t.consumeRepeat()
		}
	}
	t.Elapsed = e
	return t.progress(), ended
}

func (t *Timer) flip() {
	if t.Direction == Forward {
		t.Direction = Backward
	} else {
		t.Direction = Forward
	}
}

func (t *Timer) consumeRepeat() {
	if !t.Repeat.infinite {
		t.Repeat.remaining--
	}
	t.consumed++
}
