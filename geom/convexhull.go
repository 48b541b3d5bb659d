package geom

import (
	"sort"

	"github.com/geos2d/core/coordinate"
)

// ConvexHull returns the smallest convex polygon enclosing every vertex
// of g, built with f. The algorithm is a Graham scan: find the lowest,
// leftmost vertex, sort the rest by angle around it, then walk the
// sorted order keeping only left turns.
//
// A point set collapsing to a single coordinate returns a Point; a set
// collinear along one line returns a LineString; otherwise the result
// is a Polygon whose shell is the hull in counterclockwise order.
func ConvexHull(f *GeometryFactory, g Geometry) Geometry {
	pts := dedupeCoordinates(collectCoordinates(g))
	if len(pts) == 0 {
		return f.CreateGeometryCollection(nil)
	}
	if len(pts) == 1 {
		return f.CreatePoint(pts[0])
	}

	hull := grahamScan(pts)
	if len(hull) == 1 {
		return f.CreatePoint(hull[0])
	}
	if len(hull) == 2 {
		ls, err := f.CreateLineString(coordinate.NewSequenceXY(hull[0], hull[1]))
		if err != nil {
			return f.CreateGeometryCollection(nil)
		}
		return ls
	}

	closed := append(append([]coordinate.Coordinate{}, hull...), hull[0])
	ring, err := f.CreateLinearRing(coordinate.NewSequenceXY(closed...))
	if err != nil {
		return f.CreateGeometryCollection(nil)
	}
	return f.CreatePolygon(ring, nil)
}

func grahamScan(pts []coordinate.Coordinate) []coordinate.Coordinate {
	if len(pts) < 3 {
		return pts
	}

	lowest := pts[0]
	for _, p := range pts[1:] {
		if p.Y < lowest.Y || (p.Y == lowest.Y && p.X < lowest.X) {
			lowest = p
		}
	}

	sorted := append([]coordinate.Coordinate{}, pts...)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Eq(lowest) {
			return true
		}
		if b.Eq(lowest) {
			return false
		}
		ra := coordinate.NewXY(a.X-lowest.X, a.Y-lowest.Y)
		rb := coordinate.NewXY(b.X-lowest.X, b.Y-lowest.Y)
		cross := ra.CrossProduct(rb)
		if cross > 0 {
			return true
		}
		if cross < 0 {
			return false
		}
		return lowest.DistanceSquared(a) < lowest.DistanceSquared(b)
	})

	if allCollinear(sorted) {
		return []coordinate.Coordinate{sorted[0], sorted[len(sorted)-1]}
	}

	hull := []coordinate.Coordinate{sorted[0], sorted[1]}
	for _, p := range sorted[2:] {
		for len(hull) > 1 && turn(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	return hull
}

func allCollinear(pts []coordinate.Coordinate) bool {
	for i := 2; i < len(pts); i++ {
		if turn(pts[0], pts[1], pts[i]) != 0 {
			return false
		}
	}
	return true
}

// turn returns the sign of the cross product (b-a) x (c-a): positive
// for a counterclockwise (left) turn, negative for clockwise, zero for
// collinear.
func turn(a, b, c coordinate.Coordinate) float64 {
	ab := coordinate.NewXY(b.X-a.X, b.Y-a.Y)
	ac := coordinate.NewXY(c.X-a.X, c.Y-a.Y)
	return ab.CrossProduct(ac)
}

// xy is a comparable (X, Y)-only key: Coordinate itself carries NaN
// Z/M for 2D points, and NaN never equals NaN under map equality even
// though Coordinate.Eq treats such coordinates as identical.
type xy struct{ x, y float64 }

func dedupeCoordinates(pts []coordinate.Coordinate) []coordinate.Coordinate {
	seen := map[xy]bool{}
	var out []coordinate.Coordinate
	for _, p := range pts {
		key := xy{p.X, p.Y}
		if !seen[key] {
			seen[key] = true
			out = append(out, p)
		}
	}
	return out
}

func collectCoordinates(g Geometry) []coordinate.Coordinate {
	var out []coordinate.Coordinate
	switch v := g.(type) {
	case Point:
		if !v.IsEmpty() {
			out = append(out, v.Coordinate())
		}
	case LineString:
		out = append(out, sequenceCoordinates(v.CoordinateSequence())...)
	case LinearRing:
		out = append(out, sequenceCoordinates(v.CoordinateSequence())...)
	case Polygon:
		if !v.IsEmpty() {
			out = append(out, sequenceCoordinates(v.Shell().CoordinateSequence())...)
			for _, h := range v.Holes() {
				out = append(out, sequenceCoordinates(h.CoordinateSequence())...)
			}
		}
	case MultiPoint:
		for i := 0; i < v.NumGeometries(); i++ {
			out = append(out, collectCoordinates(v.GeometryN(i))...)
		}
	case MultiLineString:
		for i := 0; i < v.NumGeometries(); i++ {
			out = append(out, collectCoordinates(v.GeometryN(i))...)
		}
	case MultiPolygon:
		for i := 0; i < v.NumGeometries(); i++ {
			out = append(out, collectCoordinates(v.GeometryN(i))...)
		}
	case GeometryCollection:
		for i := 0; i < v.NumGeometries(); i++ {
			out = append(out, collectCoordinates(v.GeometryN(i))...)
		}
	}
	return out
}

func sequenceCoordinates(seq coordinate.Sequence) []coordinate.Coordinate {
	out := make([]coordinate.Coordinate, seq.Size())
	for i := 0; i < seq.Size(); i++ {
		out[i] = seq.Get(i)
	}
	return out
}
