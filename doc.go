// Package tween is a timing-and-interpolation animation core for Go games
// and interactive applications.
//
// Tween drives a large population of independent animations from a single
// per-frame tick: each animated unit owns a [Timer] (where in time it is),
// an easing curve (how normalized time maps to a normalized value), and a
// sampled interpolation value that external code applies to a real target
// property.
//
// Full documentation and examples are available at:
//
// https://phanxgames.github.io/tween/
//
// # Quick start
//
// Create a [Runtime] with a delta source, spawn units, and tick it from
// your game loop:
//
//	rt := tween.NewRuntime(tween.FixedStep(1.0 / 60.0))
//
//	x := 0.0
//	rt.Spawn(&tween.Timer{Duration: 1.5}, tween.QuadOut,
//		tween.LerpFloat64(&x, 0, 100))
//
//	// each frame:
//	rt.Tick()
//
// # Pipeline
//
// Every [Runtime.Tick] runs four ordered passes over all units: advance
// timers, publish progress, sample curves, apply values. Each pass
// completes for the whole population before the next begins, so an applier
// never observes a half-advanced frame. Sampling is change-driven: a unit
// whose progress and curve did not move since the last tick is not
// resampled.
//
// # Curves
//
// The [Ease] catalog covers the standard named curves (Linear, QuadIn
// through BounceInOut). Any func(float64) float64 can serve as a custom
// curve via [EaseFunc]:
//
//	rt.SetCurve(id, tween.EaseFunc(func(v float64) float64 {
//		return v * v * v
//	}))
//
// # Repeats
//
// A [Timer] plays once by default. [RepeatTimes] and [RepeatInfinitely]
// replay it at each boundary, either restarting ([WrapAround]) or
// reversing direction ([PingPong]).
//
// # Key features
//
// Tween includes a 31-curve easing catalog, ping-pong and wrap-around
// repeats with exact large-step folding, start delays, pause and
// mid-flight direction reversal, one-shot ended events, field-pointer and
// color appliers (via [go-colorful]), and ECS integration (via [Donburi]
// adapter in tween/ecs).
//
// [go-colorful]: https://github.com/lucasb-eyer/go-colorful
// [Donburi]: https://github.com/yohamta/donburi
package tween
