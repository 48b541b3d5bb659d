package geom

import (
	"math"

	"github.com/geos2d/core/coordinate"
)

// Distance returns the minimum Euclidean distance between a and b,
// measured between their points, segments and polygon rings (see
// partsOf): it is 0 when these cross or touch, but a geometry lying
// wholly inside a polygon's interior is measured to the polygon's
// nearest ring, not reported as 0. Either input being empty gives NaN.
func Distance(a, b Geometry) float64 {
	if a.IsEmpty() || b.IsEmpty() {
		return math.NaN()
	}
	p1, p2 := NearestPoints(a, b)
	return p1.Distance(p2)
}

// NearestPoints returns one point from a and one from b realizing
// Distance(a, b): the endpoints of the shortest segment connecting the
// two geometries, found by brute-force comparison of every segment or
// point each geometry contributes. Two geometries whose segments cross
// or touch return a coincident pair at that point; containment inside
// a polygon's interior is not detected (see partsOf).
func NearestPoints(a, b Geometry) (coordinate.Coordinate, coordinate.Coordinate) {
	segsA, ptsA := partsOf(a)
	segsB, ptsB := partsOf(b)

	best := math.Inf(1)
	var bestA, bestB coordinate.Coordinate
	consider := func(pa, pb coordinate.Coordinate, d float64) {
		if d < best {
			best = d
			bestA, bestB = pa, pb
		}
	}

	for _, sa := range segsA {
		for _, sb := range segsB {
			pa, pb, d := segmentSegmentNearest(sa[0], sa[1], sb[0], sb[1])
			consider(pa, pb, d)
		}
		for _, pb := range ptsB {
			pa := projectOnSegment(pb, sa[0], sa[1])
			consider(pa, pb, pa.Distance(pb))
		}
	}
	for _, pa := range ptsA {
		for _, sb := range segsB {
			pb := projectOnSegment(pa, sb[0], sb[1])
			consider(pa, pb, pa.Distance(pb))
		}
		for _, pb := range ptsB {
			consider(pa, pb, pa.Distance(pb))
		}
	}

	return bestA, bestB
}

type segment [2]coordinate.Coordinate

// partsOf decomposes g into the line segments and standalone points
// that together describe every point of g, recursing into
// Multi/Collection components. A Polygon contributes its ring
// segments only: distance to a filled area is measured to its
// boundary, which is correct whenever the two geometries don't
// already overlap (Distance/NearestPoints are meaningful for disjoint
// geometries; overlapping ones are better tested with Intersects).
func partsOf(g Geometry) ([]segment, []coordinate.Coordinate) {
	var segs []segment
	var pts []coordinate.Coordinate

	switch v := g.(type) {
	case Point:
		if !v.IsEmpty() {
			pts = append(pts, v.Coordinate())
		}
	case LineString:
		segs = append(segs, sequenceSegments(v.CoordinateSequence())...)
	case LinearRing:
		segs = append(segs, sequenceSegments(v.CoordinateSequence())...)
	case Polygon:
		if !v.IsEmpty() {
			segs = append(segs, sequenceSegments(v.Shell().CoordinateSequence())...)
			for _, h := range v.Holes() {
				segs = append(segs, sequenceSegments(h.CoordinateSequence())...)
			}
		}
	case MultiPoint:
		for i := 0; i < v.NumGeometries(); i++ {
			s, p := partsOf(v.GeometryN(i))
			segs, pts = append(segs, s...), append(pts, p...)
		}
	case MultiLineString:
		for i := 0; i < v.NumGeometries(); i++ {
			s, p := partsOf(v.GeometryN(i))
			segs, pts = append(segs, s...), append(pts, p...)
		}
	case MultiPolygon:
		for i := 0; i < v.NumGeometries(); i++ {
			s, p := partsOf(v.GeometryN(i))
			segs, pts = append(segs, s...), append(pts, p...)
		}
	case GeometryCollection:
		for i := 0; i < v.NumGeometries(); i++ {
			s, p := partsOf(v.GeometryN(i))
			segs, pts = append(segs, s...), append(pts, p...)
		}
	}
	return segs, pts
}

func sequenceSegments(seq coordinate.Sequence) []segment {
	n := seq.Size()
	if n < 2 {
		return nil
	}
	out := make([]segment, 0, n-1)
	for i := 0; i < n-1; i++ {
		out = append(out, segment{seq.Get(i), seq.Get(i + 1)})
	}
	return out
}

// projectOnSegment returns the closest point on segment [a,b] to p,
// clamped to the segment's endpoints.
func projectOnSegment(p, a, b coordinate.Coordinate) coordinate.Coordinate {
	dx, dy := b.X-a.X, b.Y-a.Y
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return a
	}
	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return coordinate.NewXY(a.X+t*dx, a.Y+t*dy)
}

// segmentSegmentNearest returns the closest pair of points between
// segments [a1,a2] and [b1,b2] and their distance, checking proper
// intersection first so two crossing segments report distance 0.
func segmentSegmentNearest(a1, a2, b1, b2 coordinate.Coordinate) (coordinate.Coordinate, coordinate.Coordinate, float64) {
	if p, ok := segmentIntersectionPoint(a1, a2, b1, b2); ok {
		return p, p, 0
	}

	candidates := []struct {
		pa, pb coordinate.Coordinate
	}{
		{a1, projectOnSegment(a1, b1, b2)},
		{a2, projectOnSegment(a2, b1, b2)},
		{projectOnSegment(b1, a1, a2), b1},
		{projectOnSegment(b2, a1, a2), b2},
	}

	best := math.Inf(1)
	var bestA, bestB coordinate.Coordinate
	for _, c := range candidates {
		if d := c.pa.Distance(c.pb); d < best {
			best, bestA, bestB = d, c.pa, c.pb
		}
	}
	return bestA, bestB, best
}

// segmentIntersectionPoint returns the intersection of two segments
// when they cross or touch, using the standard parametric line
// intersection test.
func segmentIntersectionPoint(a1, a2, b1, b2 coordinate.Coordinate) (coordinate.Coordinate, bool) {
	r := coordinate.NewXY(a2.X-a1.X, a2.Y-a1.Y)
	s := coordinate.NewXY(b2.X-b1.X, b2.Y-b1.Y)
	denom := r.CrossProduct(s)
	diff := coordinate.NewXY(b1.X-a1.X, b1.Y-a1.Y)

	if denom == 0 {
		return coordinate.Coordinate{}, false // parallel (including collinear): handled by endpoint projection
	}

	t := diff.CrossProduct(s) / denom
	u := diff.CrossProduct(r) / denom
	if t < 0 || t > 1 || u < 0 || u > 1 {
		return coordinate.Coordinate{}, false
	}
	return coordinate.NewXY(a1.X+t*r.X, a1.Y+t*r.Y), true
}
