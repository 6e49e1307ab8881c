package motion

import "math"

// Easing maps normalized progress t in [0,1] to eased progress.
type Easing func(t float64) float64

// Keyframe pins a value to a frame for piecewise interpolation
type Keyframe struct {
	Frame float64
	Value float64
}

// Round rounds half up, the way the frame math was tuned (2.5 -> 3, -2.5 -> -2).
func Round(x float64) float64 {
	return math.Floor(x + 0.5)
}

// Clamp01 clamps t to [0,1]
func Clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// Lerp performs linear interpolation between a and b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Interpolate maps x from [x0,x1] onto [y0,y1], clamped on both sides.
// A degenerate input range yields y1 once x reaches x0.
func Interpolate(x, x0, x1, y0, y1 float64, ease Easing) float64 {
	if x1 <= x0 {
		if x < x0 {
			return y0
		}
		return y1
	}
	t := Clamp01((x - x0) / (x1 - x0))
	if ease != nil {
		t = ease(t)
	}
	return Lerp(y0, y1, t)
}

// Ramp is the common appear curve: 0 -> 1 over [0, frames].
func Ramp(frame, frames float64, ease Easing) float64 {
	return Interpolate(frame, 0, frames, 0, 1, ease)
}

// InterpolateKeyframes evaluates a piecewise-linear track at the given frame.
// Keyframes must be sorted by frame; values are held flat outside the track.
func InterpolateKeyframes(keyframes []Keyframe, frame float64, ease Easing) float64 {
	if len(keyframes) == 0 {
		return 0
	}

	if frame <= keyframes[0].Frame {
		return keyframes[0].Value
	}

	last := keyframes[len(keyframes)-1]
	if frame >= last.Frame {
		return last.Value
	}

	for i := 0; i < len(keyframes)-1; i++ {
		prev, next := keyframes[i], keyframes[i+1]
		if frame >= prev.Frame && frame < next.Frame {
			return Interpolate(frame, prev.Frame, next.Frame, prev.Value, next.Value, ease)
		}
	}

	return last.Value
}

// Linear is the identity easing
func Linear(t float64) float64 {
	return t
}

// EaseOutCubic decelerates to zero velocity
func EaseOutCubic(t float64) float64 {
	return 1 - pow(1-t, 3)
}

// EaseInOutCubic applies smooth easing function
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - pow(-2*t+2, 3)/2
}

// InOut mirrors an ease-in curve into a symmetric in-out curve.
func InOut(ease Easing) Easing {
	return func(t float64) float64 {
		if t < 0.5 {
			return ease(t*2) / 2
		}
		return 1 - ease((1-t)*2)/2
	}
}

// Elastic overshoots and settles; bounciness 1 gives a single visible wobble.
func Elastic(bounciness float64) Easing {
	p := bounciness * math.Pi
	return func(t float64) float64 {
		return 1 - pow(math.Cos(t*math.Pi/2), 3)*math.Cos(t*p)
	}
}

// Ease is the CSS "ease-in" curve, cubic-bezier(0.42, 0, 1, 1).
var Ease = Bezier(0.42, 0, 1, 1)

// Bezier returns a CSS-style cubic-bezier timing function.
func Bezier(x1, y1, x2, y2 float64) Easing {
	if x1 == y1 && x2 == y2 {
		return Linear
	}
	return func(x float64) float64 {
		if x <= 0 {
			return 0
		}
		if x >= 1 {
			return 1
		}
		return bezierAt(solveBezierT(x, x1, x2), y1, y2)
	}
}

func bezierAt(t, a1, a2 float64) float64 {
	a := 1 - 3*a2 + 3*a1
	b := 3*a2 - 6*a1
	c := 3 * a1
	return ((a*t+b)*t + c) * t
}

func bezierSlope(t, a1, a2 float64) float64 {
	a := 1 - 3*a2 + 3*a1
	b := 3*a2 - 6*a1
	c := 3 * a1
	return 3*a*t*t + 2*b*t + c
}

// solveBezierT finds the curve parameter whose x equals the given x.
// Newton iterations first, bisection when the slope flattens out.
func solveBezierT(x, x1, x2 float64) float64 {
	t := x
	for i := 0; i < 8; i++ {
		slope := bezierSlope(t, x1, x2)
		if math.Abs(slope) < 1e-6 {
			break
		}
		diff := bezierAt(t, x1, x2) - x
		if math.Abs(diff) < 1e-7 {
			return t
		}
		t -= diff / slope
	}

	lo, hi := 0.0, 1.0
	t = x
	for i := 0; i < 40; i++ {
		v := bezierAt(t, x1, x2)
		if math.Abs(v-x) < 1e-7 {
			return t
		}
		if v < x {
			lo = t
		} else {
			hi = t
		}
		t = (lo + hi) / 2
	}
	return t
}

// pow calculates x^n
func pow(x float64, n int) float64 {
	result := 1.0
	for i := 0; i < n; i++ {
		result *= x
	}
	return result
}
