package relate

import (
	"github.com/geos2d/core/geom"
	"github.com/geos2d/core/geomopts"
	"github.com/geos2d/core/planargraph"
)

// The standard DE-9IM patterns named predicates test against.
const (
	patternEquals    = "T*F**FFF*"
	patternDisjoint  = "FF*FF****"
	patternTouches1  = "FT*******"
	patternTouches2  = "F**T*****"
	patternTouches3  = "F***T****"
	patternCrossesLA = "T*T******" // line/area or point/line crossing
	patternCrossesAL = "T*****T**" // area/line, line/point or area/point crossing
	patternCrossesLL = "0********"
	patternOverlaps1 = "T*T***T**" // same-dimension overlap (area/area, line/line)
	patternOverlaps2 = "1*T***T**" // line/line overlap (1-dimensional interior intersection)
	patternWithin    = "T*F**F***"
	patternContains  = "T*****FF*"
)

// Intersects reports whether a and b have at least one point in
// common: equivalent to NOT Disjoint.
func Intersects(a, b geom.Geometry, opts geomopts.Options) (bool, error) {
	m, err := Compute(a, b, opts)
	if err != nil {
		return false, err
	}
	return !m.Matches(patternDisjoint), nil
}

// Disjoint reports whether a and b share no point at all.
func Disjoint(a, b geom.Geometry, opts geomopts.Options) (bool, error) {
	m, err := Compute(a, b, opts)
	if err != nil {
		return false, err
	}
	return m.Matches(patternDisjoint), nil
}

// Touches reports whether a and b have at least one boundary point in
// common but no interior point in common.
func Touches(a, b geom.Geometry, opts geomopts.Options) (bool, error) {
	if a.Dimension() == geom.DimPoint && b.Dimension() == geom.DimPoint {
		return false, nil // two point sets never "touch"
	}
	m, err := Compute(a, b, opts)
	if err != nil {
		return false, err
	}
	return m.Matches(patternTouches1) || m.Matches(patternTouches2) || m.Matches(patternTouches3), nil
}

// Crosses reports whether a and b intersect in a set of lower
// dimension than the maximum of their own dimensions, with that
// intersection not equal to either input (the crossing relation for
// line/line, line/area, and point/line pairs).
func Crosses(a, b geom.Geometry, opts geomopts.Options) (bool, error) {
	da, db := a.Dimension(), b.Dimension()
	m, err := Compute(a, b, opts)
	if err != nil {
		return false, err
	}
	switch {
	case da == geom.DimPoint && db == geom.DimCurve, da == geom.DimPoint && db == geom.DimSurface,
		da == geom.DimCurve && db == geom.DimSurface:
		return m.Matches(patternCrossesLA), nil
	case da == geom.DimCurve && db == geom.DimPoint, da == geom.DimSurface && db == geom.DimPoint,
		da == geom.DimSurface && db == geom.DimCurve:
		return m.Matches(patternCrossesAL), nil
	case da == geom.DimCurve && db == geom.DimCurve:
		return m.Matches(patternCrossesLL), nil
	default:
		return false, nil
	}
}

// Overlaps reports whether a and b are of the same dimension, their
// interiors intersect, and neither contains the other.
func Overlaps(a, b geom.Geometry, opts geomopts.Options) (bool, error) {
	if a.Dimension() != b.Dimension() {
		return false, nil
	}
	m, err := Compute(a, b, opts)
	if err != nil {
		return false, err
	}
	if a.Dimension() == geom.DimCurve {
		return m.Matches(patternOverlaps2), nil
	}
	return m.Matches(patternOverlaps1), nil
}

// Within reports whether every point of a lies in b, with at least one
// interior point of a in the interior of b.
func Within(a, b geom.Geometry, opts geomopts.Options) (bool, error) {
	m, err := Compute(a, b, opts)
	if err != nil {
		return false, err
	}
	return m.Matches(patternWithin), nil
}

// Contains reports whether every point of b lies in a, with at least
// one interior point of b in the interior of a. Equivalent to
// Within(b, a).
func Contains(a, b geom.Geometry, opts geomopts.Options) (bool, error) {
	m, err := Compute(a, b, opts)
	if err != nil {
		return false, err
	}
	return m.Matches(patternContains), nil
}

// Covers reports whether every point of b lies in a (a weaker
// condition than Contains: b may lie entirely on a's boundary).
func Covers(a, b geom.Geometry, opts geomopts.Options) (bool, error) {
	m, err := Compute(a, b, opts)
	if err != nil {
		return false, err
	}
	return m.Get(planargraph.Exterior, planargraph.Interior) == DimFalse &&
		m.Get(planargraph.Exterior, planargraph.Boundary) == DimFalse, nil
}

// CoveredBy reports whether every point of a lies in b. Equivalent to
// Covers(b, a).
func CoveredBy(a, b geom.Geometry, opts geomopts.Options) (bool, error) {
	return Covers(b, a, opts)
}

// Equals reports whether a and b have exactly the same set of points.
func Equals(a, b geom.Geometry, opts geomopts.Options) (bool, error) {
	if a.Dimension() != b.Dimension() {
		return false, nil
	}
	m, err := Compute(a, b, opts)
	if err != nil {
		return false, err
	}
	return m.Matches(patternEquals), nil
}

// Relate computes the full DE-9IM matrix string for a and b.
func Relate(a, b geom.Geometry, opts geomopts.Options) (string, error) {
	m, err := Compute(a, b, opts)
	if err != nil {
		return "", err
	}
	return m.String(), nil
}

// RelateMatches reports whether a and b satisfy an arbitrary DE-9IM
// intersection pattern.
func RelateMatches(a, b geom.Geometry, pattern string, opts geomopts.Options) (bool, error) {
	m, err := Compute(a, b, opts)
	if err != nil {
		return false, err
	}
	return m.Matches(pattern), nil
}
