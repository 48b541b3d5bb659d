package coordinate

import "math"

// ZInterpolate computes the straight-line interpolation of Z at q's
// projection onto the segment p0-p1.
//
// When exactly one of p0.Z, p1.Z is defined, the result is that defined
// value (there is nothing to interpolate between). When both are
// defined, linear interpolation by the projection fraction is used. When
// neither is defined, or p0 and p1 coincide, the result is NaN.
func ZInterpolate(q, p0, p1 Coordinate) float64 {
	return interpolateOrdinate(q, p0, p1, p0.Z, p1.Z)
}

// MInterpolate computes the straight-line interpolation of M at q's
// projection onto the segment p0-p1, following the same rule as
// ZInterpolate.
func MInterpolate(q, p0, p1 Coordinate) float64 {
	return interpolateOrdinate(q, p0, p1, p0.M, p1.M)
}

func interpolateOrdinate(q, p0, p1 Coordinate, v0, v1 float64) float64 {
	has0, has1 := !math.IsNaN(v0), !math.IsNaN(v1)
	switch {
	case has0 && !has1:
		return v0
	case has1 && !has0:
		return v1
	case !has0 && !has1:
		return math.NaN()
	}

	dx := p1.X - p0.X
	dy := p1.Y - p0.Y
	length2 := dx*dx + dy*dy
	if length2 == 0 {
		return math.NaN()
	}

	t := ((q.X-p0.X)*dx + (q.Y-p0.Y)*dy) / length2
	return v0 + t*(v1-v0)
}
