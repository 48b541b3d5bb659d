package predicate

import (
	"math"

	"github.com/geos2d/core/coordinate"
)

// IntersectionType classifies the result of intersecting two line
// segments.
type IntersectionType int8

const (
	// NoIntersection: the segments do not meet.
	NoIntersection IntersectionType = iota
	// PointIntersection: the segments meet at a single point.
	PointIntersection
	// CollinearIntersection: the segments overlap along a shared line.
	CollinearIntersection
)

// LineIntersector computes the intersection of two line segments using
// orientation-based tests rather than naive division, so that the
// classification (none/point/collinear) and the proper/improper
// distinction are robust even when the segments are nearly parallel.
//
// The computation tests orientation signs before falling back to the
// parametric division (which translates one endpoint to the local
// origin before solving), and checks for collinear overlap when all
// four orientation tests return Collinear rather than dividing.
type LineIntersector struct {
	result         IntersectionType
	intersections  [2]coordinate.Coordinate
	numIntersections int
	isProperFlag   bool
}

// Compute classifies the intersection of segment p1-p2 against segment
// q1-q2 and records the resulting intersection point(s).
func (li *LineIntersector) Compute(p1, p2, q1, q2 coordinate.Coordinate) {
	*li = LineIntersector{}

	pq1 := OrientationIndex(p1, p2, q1)
	pq2 := OrientationIndex(p1, p2, q2)
	if (pq1 > 0 && pq2 > 0) || (pq1 < 0 && pq2 < 0) {
		li.result = NoIntersection
		return
	}

	qp1 := OrientationIndex(q1, q2, p1)
	qp2 := OrientationIndex(q1, q2, p2)
	if (qp1 > 0 && qp2 > 0) || (qp1 < 0 && qp2 < 0) {
		li.result = NoIntersection
		return
	}

	collinear := pq1 == Collinear && pq2 == Collinear && qp1 == Collinear && qp2 == Collinear
	if collinear {
		li.computeCollinear(p1, p2, q1, q2)
		return
	}

	// At least one orientation is exactly zero: an endpoint of one
	// segment lies on the supporting line of the other. Resolve which
	// shared point that is directly, rather than dividing, to avoid
	// spurious near-parallel division error.
	switch {
	case pq1 == Collinear && isOnSegment(p1, p2, q1):
		li.setSingle(q1, qp1 == Collinear && qp2 == Collinear)
	case pq2 == Collinear && isOnSegment(p1, p2, q2):
		li.setSingle(q2, qp1 == Collinear && qp2 == Collinear)
	case qp1 == Collinear && isOnSegment(q1, q2, p1):
		li.setSingle(p1, pq1 == Collinear && pq2 == Collinear)
	case qp2 == Collinear && isOnSegment(q1, q2, p2):
		li.setSingle(p2, pq1 == Collinear && pq2 == Collinear)
	default:
		li.computeProper(p1, p2, q1, q2)
	}
}

func (li *LineIntersector) setSingle(pt coordinate.Coordinate, proper bool) {
	li.result = PointIntersection
	li.numIntersections = 1
	li.intersections[0] = pt
	li.isProperFlag = proper
}

// computeProper solves the parametric intersection of two segments that
// are known (by orientation signs) to cross, translating p1 to the
// local origin before dividing, so the numerator and denominator stay
// small relative to the segment lengths instead of the absolute
// coordinate magnitudes.
func (li *LineIntersector) computeProper(p1, p2, q1, q2 coordinate.Coordinate) {
	dir1 := p2.Sub(p1)
	dir2 := q2.Sub(q1)
	denom := dir1.CrossProduct(dir2)

	pq := q1.Sub(p1)
	t := pq.CrossProduct(dir2) / denom
	u := pq.CrossProduct(dir1) / denom

	if t < 0 || t > 1 || u < 0 || u > 1 {
		li.result = NoIntersection
		return
	}

	x := p1.X + t*dir1.X
	y := p1.Y + t*dir1.Y

	li.result = PointIntersection
	li.numIntersections = 1
	li.intersections[0] = coordinate.NewXY(x, y)
	li.isProperFlag = t > 0 && t < 1 && u > 0 && u < 1
}

// computeCollinear handles the case where all four orientation tests
// come back Collinear: the segments share a supporting line, and the
// intersection (if any) is found by projecting all four endpoints onto
// that line and intersecting the two resulting parameter ranges.
func (li *LineIntersector) computeCollinear(p1, p2, q1, q2 coordinate.Coordinate) {
	dir := p2.Sub(p1)
	length2 := dir.DotProduct(dir)
	if length2 == 0 {
		// Degenerate: p1 == p2. Treat as a single point test.
		if q1.Eq(p1) || q2.Eq(p1) || isOnSegment(q1, q2, p1) {
			li.setSingle(p1, false)
			return
		}
		li.result = NoIntersection
		return
	}

	project := func(pt coordinate.Coordinate) float64 {
		return pt.Sub(p1).DotProduct(dir) / length2
	}

	tp1, tp2 := 0.0, 1.0
	tq1, tq2 := project(q1), project(q2)
	if tq1 > tq2 {
		tq1, tq2 = tq2, tq1
	}

	lo := math.Max(tp1, tq1)
	hi := math.Min(tp2, tq2)

	if lo > hi {
		li.result = NoIntersection
		return
	}

	at := func(t float64) coordinate.Coordinate {
		return coordinate.NewXY(p1.X+t*dir.X, p1.Y+t*dir.Y)
	}

	if lo == hi {
		li.setSingle(at(lo), false)
		return
	}

	li.result = CollinearIntersection
	li.numIntersections = 2
	li.intersections[0] = at(lo)
	li.intersections[1] = at(hi)
	li.isProperFlag = false
}

// isOnSegment reports whether pt, already known to be collinear with
// segment a-b, lies within the segment's bounding range.
func isOnSegment(a, b, pt coordinate.Coordinate) bool {
	return pt.X >= math.Min(a.X, b.X) && pt.X <= math.Max(a.X, b.X) &&
		pt.Y >= math.Min(a.Y, b.Y) && pt.Y <= math.Max(a.Y, b.Y)
}

// HasIntersection reports whether the segments intersect at all.
func (li *LineIntersector) HasIntersection() bool {
	return li.result != NoIntersection
}

// Type returns the classification of the last Compute call.
func (li *LineIntersector) Type() IntersectionType { return li.result }

// IsProper reports whether the intersection is a single point interior
// to both segments (not at either segment's endpoint, and not a
// collinear overlap).
func (li *LineIntersector) IsProper() bool { return li.isProperFlag }

// NumIntersections returns how many intersection points were found: 0,
// 1, or 2 (the latter only for a collinear overlap with positive length).
func (li *LineIntersector) NumIntersections() int { return li.numIntersections }

// Intersection returns the i'th intersection point. Panics if i is out
// of range [0, NumIntersections).
func (li *LineIntersector) Intersection(i int) coordinate.Coordinate {
	return li.intersections[i]
}
