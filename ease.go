package tween

import "math"

// Interpolation samples a normalized animation value from normalized time.
// Sample must be pure and defined for every v in [0,1]; callers clamp
// before sampling, so behavior outside that range is unspecified. Output
// is not required to stay inside [0,1] — overshooting curves (Back,
// Elastic) are legal.
type Interpolation interface {
	Sample(v float64) float64
}

// Ease is the closed catalog of named easing curves. The zero value is
// Linear. All curves map 0 to 0 and 1 to 1; Back and Elastic overshoot
// strictly inside the domain.
type Ease int

// The named curves, the standard in/out/in-out families.
const (
	Linear Ease = iota
	QuadIn
	QuadOut
	QuadInOut
	CubicIn
	CubicOut
	CubicInOut
	QuartIn
	QuartOut
	QuartInOut
	QuintIn
	QuintOut
	QuintInOut
	SineIn
	SineOut
	SineInOut
	CircIn
	CircOut
	CircInOut
	ExpoIn
	ExpoOut
	ExpoInOut
	ElasticIn
	ElasticOut
	ElasticInOut
	BackIn
	BackOut
	BackInOut
	BounceIn
	BounceOut
	BounceInOut

	easeCount
)

// Sample evaluates the curve at v. Ease implements Interpolation.
func (e Ease) Sample(v float64) float64 {
	if e < 0 || e >= easeCount {
		return linear(v)
	}
	return easeFuncs[e](v)
}

// String returns the curve's name, e.g. "QuadInOut".
func (e Ease) String() string {
	if e < 0 || e >= easeCount {
		return "Ease(invalid)"
	}
	return easeNames[e]
}

// EaseFunc adapts an arbitrary function into an Interpolation. The
// function should be side-effect-free; no domain or range contract is
// enforced. If it returns NaN the unit's value is treated as
// "do not apply" by the apply stage.
type EaseFunc func(v float64) float64

// Sample calls the wrapped function.
func (f EaseFunc) Sample(v float64) float64 { return f(v) }

var easeFuncs = [easeCount]func(float64) float64{
	linear,
	quadIn, quadOut, quadInOut,
	cubicIn, cubicOut, cubicInOut,
	quartIn, quartOut, quartInOut,
	quintIn, quintOut, quintInOut,
	sineIn, sineOut, sineInOut,
	circIn, circOut, circInOut,
	expoIn, expoOut, expoInOut,
	elasticIn, elasticOut, elasticInOut,
	backIn, backOut, backInOut,
	bounceIn, bounceOut, bounceInOut,
}

var easeNames = [easeCount]string{
	"Linear",
	"QuadIn", "QuadOut", "QuadInOut",
	"CubicIn", "CubicOut", "CubicInOut",
	"QuartIn", "QuartOut", "QuartInOut",
	"QuintIn", "QuintOut", "QuintInOut",
	"SineIn", "SineOut", "SineInOut",
	"CircIn", "CircOut", "CircInOut",
	"ExpoIn", "ExpoOut", "ExpoInOut",
	"ElasticIn", "ElasticOut", "ElasticInOut",
	"BackIn", "BackOut", "BackInOut",
	"BounceIn", "BounceOut", "BounceInOut",
}

func linear(v float64) float64 { return v }

func quadIn(v float64) float64  { return v * v }
func quadOut(v float64) float64 { return v * (2 - v) }
func quadInOut(v float64) float64 {
	if v < 0.5 {
		return 2 * v * v
	}
	return -1 + (4-2*v)*v
}

func cubicIn(v float64) float64 { return v * v * v }
func cubicOut(v float64) float64 {
	v--
	return v*v*v + 1
}
func cubicInOut(v float64) float64 {
	if v < 0.5 {
		return 4 * v * v * v
	}
	return (v-1)*(2*v-2)*(2*v-2) + 1
}

func quartIn(v float64) float64 { return v * v * v * v }
func quartOut(v float64) float64 {
	v--
	return 1 - v*v*v*v
}
func quartInOut(v float64) float64 {
	if v < 0.5 {
		return 8 * v * v * v * v
	}
	v--
	return 1 - 8*v*v*v*v
}

func quintIn(v float64) float64 { return v * v * v * v * v }
func quintOut(v float64) float64 {
	v--
	return v*v*v*v*v + 1
}
func quintInOut(v float64) float64 {
	if v < 0.5 {
		return 16 * v * v * v * v * v
	}
	v--
	return 1 + 16*v*v*v*v*v
}

func sineIn(v float64) float64  { return 1 - math.Cos(v*math.Pi/2) }
func sineOut(v float64) float64 { return math.Sin(v * math.Pi / 2) }
func sineInOut(v float64) float64 {
	return -0.5 * (math.Cos(math.Pi*v) - 1)
}

func circIn(v float64) float64  { return 1 - math.Sqrt(1-v*v) }
func circOut(v float64) float64 { return math.Sqrt((2 - v) * v) }
func circInOut(v float64) float64 {
	if v < 0.5 {
		return 0.5 * (1 - math.Sqrt(1-4*v*v))
	}
	v = 2*v - 2
	return 0.5 * (math.Sqrt(1-v*v) + 1)
}

// Expo and Elastic use the guarded Penner forms so that the endpoints
// are exact rather than merely close (2^-10 is ~1e-3, well outside the
// documented 1e-6 endpoint tolerance).
func expoIn(v float64) float64 {
	if v == 0 {
		return 0
	}
	return math.Pow(2, 10*(v-1))
}
func expoOut(v float64) float64 {
	if v == 1 {
		return 1
	}
	return 1 - math.Pow(2, -10*v)
}
func expoInOut(v float64) float64 {
	switch {
	case v == 0:
		return 0
	case v == 1:
		return 1
	case v < 0.5:
		return 0.5 * math.Pow(2, 20*v-10)
	default:
		return 1 - 0.5*math.Pow(2, -20*v+10)
	}
}

func elasticIn(v float64) float64 {
	if v == 0 {
		return 0
	}
	if v == 1 {
		return 1
	}
	const p = 0.3
	const s = p / 4
	return -math.Pow(2, 10*(v-1)) * math.Sin((v-1-s)*2*math.Pi/p)
}
func elasticOut(v float64) float64 {
	if v == 0 {
		return 0
	}
	if v == 1 {
		return 1
	}
	const p = 0.3
	const s = p / 4
	return math.Pow(2, -10*v)*math.Sin((v-s)*2*math.Pi/p) + 1
}
func elasticInOut(v float64) float64 {
	if v == 0 {
		return 0
	}
	if v == 1 {
		return 1
	}
	const p = 0.45
	const s = p / 4
	v = 2*v - 1
	if v < 0 {
		return -0.5 * math.Pow(2, 10*v) * math.Sin((v-s)*2*math.Pi/p)
	}
	return 0.5*math.Pow(2, -10*v)*math.Sin((v-s)*2*math.Pi/p) + 1
}

const backOvershoot = 1.70158

func backIn(v float64) float64 {
	const s = backOvershoot
	return v * v * ((s+1)*v - s)
}
func backOut(v float64) float64 {
	const s = backOvershoot
	v--
	return v*v*((s+1)*v+s) + 1
}
func backInOut(v float64) float64 {
	const s = backOvershoot * 1.525
	v *= 2
	if v < 1 {
		return 0.5 * v * v * ((s+1)*v - s)
	}
	v -= 2
	return 0.5 * (v*v*((s+1)*v+s) + 2)
}

func bounceIn(v float64) float64 { return 1 - bounceOut(1-v) }
func bounceOut(v float64) float64 {
	switch {
	case v < 1/2.75:
		return 7.5625 * v * v
	case v < 2/2.75:
		v -= 1.5 / 2.75
		return 7.5625*v*v + 0.75
	case v < 2.5/2.75:
		v -= 2.25 / 2.75
		return 7.5625*v*v + 0.9375
	default:
		v -= 2.625 / 2.75
		return 7.5625*v*v + 0.984375
	}
}
func bounceInOut(v float64) float64 {
	if v < 0.5 {
		return 0.5 * (1 - bounceOut(1-2*v))
	}
	return 0.5 * (1 + bounceOut(2*v-1))
}
