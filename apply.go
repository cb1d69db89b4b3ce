package tween

import "github.com/lucasb-eyer/go-colorful"

// Applier writes a sampled interpolation value into a real target
// property. Appliers are the write end of the pipeline: the runtime
// calls them during the apply stage with the unit's current value, and
// they must never write back into the runtime.
type Applier func(value float64)

// LerpFloat64 returns an Applier that moves *target between from and to.
// Values outside [0,1] extrapolate, so overshooting curves (Back,
// Elastic) push the field past its endpoints as intended.
func LerpFloat64(target *float64, from, to float64) Applier {
	return func(v float64) {
		*target = from + (to-from)*v
	}
}

// LerpColor returns an Applier that blends *target between from and to
// in RGB space. Use colorful's other blend spaces by wrapping your own
// closure if perceptual blending matters.
func LerpColor(target *colorful.Color, from, to colorful.Color) Applier {
	return func(v float64) {
		*target = from.BlendRgb(to, v)
	}
}

// Combine fans one unit's value out to several appliers, in order.
func Combine(appliers ...Applier) Applier {
	return func(v float64) {
		for _, a := range appliers {
			a(v)
		}
	}
}
