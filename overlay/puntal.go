package overlay

import (
	"github.com/geos2d/core/coordinate"
	"github.com/geos2d/core/geom"
)

// computePuntal overlays two Point/MultiPoint operands directly on
// their coordinate sets: a point belongs to the result when its
// membership in a and in b satisfies op's rule, with membership decided
// by exact coordinate equality (points carry no noding tolerance of
// their own).
func computePuntal(op Op, a, b geom.Geometry, f *geom.GeometryFactory) geom.Geometry {
	ptsA := collectPoints(a)
	ptsB := collectPoints(b)
	inB := func(pt coordinate.Coordinate) bool { return containsCoord(ptsB, pt) }
	inA := func(pt coordinate.Coordinate) bool { return containsCoord(ptsA, pt) }

	type xy struct{ x, y float64 }
	seen := map[xy]bool{}
	var out []coordinate.Coordinate
	add := func(pt coordinate.Coordinate) {
		key := xy{pt.X, pt.Y}
		if !seen[key] {
			seen[key] = true
			out = append(out, pt)
		}
	}

	for _, pt := range ptsA {
		if included(op, true, inB(pt)) {
			add(pt)
		}
	}
	for _, pt := range ptsB {
		if included(op, inA(pt), true) {
			add(pt)
		}
	}

	switch len(out) {
	case 0:
		return f.CreateMultiPoint(nil)
	case 1:
		return f.CreatePoint(out[0])
	default:
		points := make([]geom.Point, len(out))
		for i, pt := range out {
			points[i] = f.CreatePoint(pt)
		}
		return f.CreateMultiPoint(points)
	}
}

func collectPoints(g geom.Geometry) []coordinate.Coordinate {
	var out []coordinate.Coordinate
	switch v := g.(type) {
	case geom.Point:
		if !v.IsEmpty() {
			out = append(out, v.Coordinate())
		}
	case geom.MultiPoint:
		for i := 0; i < v.NumGeometries(); i++ {
			out = append(out, v.GeometryN(i).Coordinate())
		}
	}
	return out
}

func containsCoord(pts []coordinate.Coordinate, pt coordinate.Coordinate) bool {
	for _, p := range pts {
		if p.Eq(pt) {
			return true
		}
	}
	return false
}
