package motion

import "math"

// Easing maps linear progress in [0, 1] to eased progress.
type Easing func(t float64) float64

// Linear is the identity easing.
func Linear(t float64) float64 { return t }

var (
	// EaseInOut is the symmetric ease-in-out curve (0.42, 0, 0.58, 1).
	EaseInOut = CubicBezier(0.42, 0, 0.58, 1)
	// Standard accelerates quickly and settles gently (0.4, 0, 0.2, 1).
	Standard = CubicBezier(0.4, 0, 0.2, 1)
	// Apple is the soft curve used for dialog fades (0.25, 0.1, 0.25, 1).
	Apple = CubicBezier(0.25, 0.1, 0.25, 1)
	// EaseOut decelerates to the end (0, 0, 0.58, 1).
	EaseOut = CubicBezier(0, 0, 0.58, 1)
)

// CubicBezier returns the easing defined by control points (x1, y1) and (x2, y2),
// with the curve anchored at (0, 0) and (1, 1). x1 and x2 are clamped to [0, 1]
// so that the curve is a function of time.
func CubicBezier(x1, y1, x2, y2 float64) Easing {
	x1 = clamp01(x1)
	x2 = clamp01(x2)
	bez := func(s, p1, p2 float64) float64 {
		u := 1 - s
		return 3*u*u*s*p1 + 3*u*s*s*p2 + s*s*s
	}
	dbez := func(s, p1, p2 float64) float64 {
		u := 1 - s
		return 3*u*u*p1 + 6*u*s*(p2-p1) + 3*s*s*(1-p2)
	}
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}
		// Newton first; fall back to bisection where the slope flattens.
		s := t
		for range 8 {
			x := bez(s, x1, x2) - t
			if math.Abs(x) < 1e-6 {
				return bez(s, y1, y2)
			}
			d := dbez(s, x1, x2)
			if math.Abs(d) < 1e-6 {
				break
			}
			s -= x / d
			if s < 0 || s > 1 {
				break
			}
		}
		lo, hi := 0.0, 1.0
		s = t
		for range 40 {
			x := bez(s, x1, x2)
			if math.Abs(x-t) < 1e-6 {
				break
			}
			if x < t {
				lo = s
			} else {
				hi = s
			}
			s = (lo + hi) / 2
		}
		return bez(s, y1, y2)
	}
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
