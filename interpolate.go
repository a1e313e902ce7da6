package tempo

import "math"

// Bezier solver parameters.
const (
	bezierMaxIterations    = 10
	bezierTolerance        = 1e-6
	bezierMinSlope         = 1e-6
	bezierBisectIterations = 40
)

// lerp blends a toward b by t without clamping.
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// segmentProgress returns the normalized position of t between start and end.
// A zero-length segment yields 0.
func segmentProgress(start, end, t float64) float64 {
	span := end - start
	if span == 0 {
		return 0
	}
	return (t - start) / span
}

// bezierCoord evaluates one coordinate of a cubic Bezier with end points 0
// and 1 and inner control coordinates c1, c2.
func bezierCoord(u, c1, c2 float64) float64 {
	mu := 1 - u
	return 3*mu*mu*u*c1 + 3*mu*u*u*c2 + u*u*u
}

// bezierSlope is the derivative of bezierCoord with respect to u.
func bezierSlope(u, c1, c2 float64) float64 {
	mu := 1 - u
	return 3*mu*mu*c1 + 6*mu*u*(c2-c1) + 3*u*u*(1-c2)
}

// bezierProgress maps time progress x through a segment to the eased blend
// factor. It finds the curve parameter u with x(u) == x by Newton-Raphson,
// refining by bisection when Newton stalls on a flat slope or fails to
// converge, and returns y(u).
func bezierProgress(cp ControlPoints, x float64) float64 {
	if math.IsNaN(x) {
		return x
	}
	c1x, c2x := cp.CP1.Time, cp.CP2.Time

	u := clamp01(x)
	converged := false
	for i := 0; i < bezierMaxIterations; i++ {
		dx := bezierCoord(u, c1x, c2x) - x
		if math.Abs(dx) < bezierTolerance {
			converged = true
			break
		}
		slope := bezierSlope(u, c1x, c2x)
		if math.Abs(slope) < bezierMinSlope {
			break
		}
		u = clamp01(u - dx/slope)
	}
	if !converged && math.Abs(bezierCoord(u, c1x, c2x)-x) >= bezierTolerance {
		u = bezierBisect(c1x, c2x, x)
	}
	return bezierCoord(u, cp.CP1.Value, cp.CP2.Value)
}

// bezierBisect solves x(u) == x on [0, 1] assuming x(u) is non-decreasing,
// which holds whenever both control times lie in [0, 1].
func bezierBisect(c1x, c2x, x float64) float64 {
	lo, hi := 0.0, 1.0
	u := x
	for i := 0; i < bezierBisectIterations; i++ {
		u = (lo + hi) / 2
		dx := bezierCoord(u, c1x, c2x) - x
		if math.Abs(dx) < bezierTolerance {
			return u
		}
		if dx < 0 {
			lo = u
		} else {
			hi = u
		}
	}
	return u
}

// catmullRom evaluates the uniform Catmull-Rom cubic through p1 (u=0) and
// p2 (u=1), shaped by the outer neighbors p0 and p3.
func catmullRom(p0, p1, p2, p3, u float64) float64 {
	u2 := u * u
	u3 := u2 * u
	return 0.5 * (2*p1 +
		(-p0+p2)*u +
		(2*p0-5*p1+4*p2-p3)*u2 +
		(-p0+3*p1-3*p2+p3)*u3)
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
