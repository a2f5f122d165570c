// Package animation interpolates numeric properties over time.
//
// Animators are pull-based: the caller owns the frame loop and asks each
// animator for its value at a given instant. Nothing in this package starts
// goroutines or timers.
package animation

import "math"

// Curve maps linear progress in [0, 1] to eased progress.
type Curve func(t float64) float64

// Linear applies no easing.
func Linear(t float64) float64 {
	return t
}

// Standard curves, equivalent to their CSS namesakes.
var (
	Ease      = CubicBezier(0.25, 0.1, 0.25, 1.0)
	EaseIn    = CubicBezier(0.42, 0.0, 1.0, 1.0)
	EaseOut   = CubicBezier(0.0, 0.0, 0.58, 1.0)
	EaseInOut = CubicBezier(0.42, 0.0, 0.58, 1.0)

	// FastOutSlowIn is the material default for state changes.
	FastOutSlowIn = CubicBezier(0.4, 0.0, 0.2, 1.0)
)

var curvesByName = map[string]Curve{
	"linear":           Linear,
	"ease":             Ease,
	"ease-in":          EaseIn,
	"ease-out":         EaseOut,
	"ease-in-out":      EaseInOut,
	"fast-out-slow-in": FastOutSlowIn,
}

// CurveByName looks up one of the standard curves by its config name.
func CurveByName(name string) (Curve, bool) {
	c, ok := curvesByName[name]
	return c, ok
}

// CurveNames returns the names accepted by CurveByName.
func CurveNames() []string {
	return []string{"linear", "ease", "ease-in", "ease-out", "ease-in-out", "fast-out-slow-in"}
}

// CubicBezier builds a curve through (0,0), (x1,y1), (x2,y2), (1,1).
// x1 and x2 should lie in [0, 1] for the curve to be a function of t.
func CubicBezier(x1, y1, x2, y2 float64) Curve {
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}
		return bezier(y1, y2, solveBezierX(x1, x2, t))
	}
}

// solveBezierX finds the parameter u with bezier(x1, x2, u) == x.
func solveBezierX(x1, x2, x float64) float64 {
	const epsilon = 1e-7

	u := x
	for i := 0; i < 8; i++ {
		delta := bezier(x1, x2, u) - x
		if math.Abs(delta) < epsilon {
			return u
		}
		slope := bezierSlope(x1, x2, u)
		if math.Abs(slope) < epsilon {
			break
		}
		u -= delta / slope
	}

	// Newton stalled; bisect.
	lo, hi := 0.0, 1.0
	u = clamp01(u)
	for i := 0; i < 20; i++ {
		delta := bezier(x1, x2, u) - x
		if math.Abs(delta) < epsilon {
			break
		}
		if delta > 0 {
			hi = u
		} else {
			lo = u
		}
		u = (lo + hi) / 2
	}
	return u
}

func bezier(p1, p2, u float64) float64 {
	v := 1 - u
	return 3*v*v*u*p1 + 3*v*u*u*p2 + u*u*u
}

func bezierSlope(p1, p2, u float64) float64 {
	v := 1 - u
	return 3*v*v*p1 + 6*v*u*(p2-p1) + 3*u*u*(1-p2)
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// Lerp interpolates between a and b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
