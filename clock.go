package tween

import "time"

// DeltaSource provides the per-tick delta consumed by a Runtime. The
// host decides whether deltas track real elapsed time ([NewWallClock])
// or discrete steps ([FixedStep]); the runtime treats them as opaque.
type DeltaSource interface {
	// Delta returns how much time passed since the previous tick, in
	// the same unit as Timer.Duration.
	Delta() float64
}

// FixedStep is a DeltaSource that reports the same delta every tick.
// Use it for deterministic, step-based playback — an ebiten Update loop
// at a fixed TPS, or a test driving the runtime by hand.
type FixedStep float64

// Delta returns the fixed step.
func (s FixedStep) Delta() float64 { return float64(s) }

// WallClock is a DeltaSource that measures real elapsed seconds between
// consecutive Delta calls. The first call returns zero.
type WallClock struct {
	last time.Time
}

// NewWallClock returns a WallClock ready for its first tick.
func NewWallClock() *WallClock { return &WallClock{} }

// Delta returns the seconds elapsed since the previous call.
func (c *WallClock) Delta() float64 {
	now := time.Now()
	if c.last.IsZero() {
		c.last = now
		return 0
	}
	d := now.Sub(c.last).Seconds()
	c.last = now
	return d
}
