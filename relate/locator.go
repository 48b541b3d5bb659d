package relate

import (
	"github.com/geos2d/core/coordinate"
	"github.com/geos2d/core/geom"
	"github.com/geos2d/core/planargraph"
	"github.com/geos2d/core/predicate"
)

// Locate classifies pt's position relative to g using the OGC boundary
// rules for each geometry type: Boundary covers every point of a
// polygon's rings (not just vertices), the endpoints of an open line
// string (mod-2 rule for MultiLineString), and nothing at all for a
// Point.
func Locate(pt coordinate.Coordinate, g geom.Geometry) planargraph.Loc {
	switch v := g.(type) {
	case geom.Point:
		if !v.IsEmpty() && v.Coordinate().Eq(pt) {
			return planargraph.Interior
		}
		return planargraph.Exterior
	case geom.MultiPoint:
		for i := 0; i < v.NumGeometries(); i++ {
			if v.GeometryN(i).Coordinate().Eq(pt) {
				return planargraph.Interior
			}
		}
		return planargraph.Exterior
	case geom.LineString:
		return locateOnLineString(pt, v)
	case geom.LinearRing:
		return fromPredicateLoc(v.ContainsPoint(pt))
	case geom.MultiLineString:
		return locateOnMultiLineString(pt, v)
	case geom.Polygon:
		return fromPredicateLoc(v.ContainsPoint(pt))
	case geom.MultiPolygon:
		for i := 0; i < v.NumGeometries(); i++ {
			loc := fromPredicateLoc(v.GeometryN(i).ContainsPoint(pt))
			if loc != planargraph.Exterior {
				return loc
			}
		}
		return planargraph.Exterior
	case geom.GeometryCollection:
		best := planargraph.Exterior
		for i := 0; i < v.NumGeometries(); i++ {
			loc := Locate(pt, v.GeometryN(i))
			if loc == planargraph.Interior {
				return planargraph.Interior
			}
			if loc == planargraph.Boundary {
				best = planargraph.Boundary
			}
		}
		return best
	default:
		return planargraph.Exterior
	}
}

func fromPredicateLoc(l predicate.Location) planargraph.Loc {
	switch l {
	case predicate.Interior:
		return planargraph.Interior
	case predicate.Boundary:
		return planargraph.Boundary
	default:
		return planargraph.Exterior
	}
}

func locateOnLineString(pt coordinate.Coordinate, ls geom.LineString) planargraph.Loc {
	if ls.IsEmpty() {
		return planargraph.Exterior
	}
	if !ls.IsClosed() && (ls.StartPoint().Coordinate().Eq(pt) || ls.EndPoint().Coordinate().Eq(pt)) {
		return planargraph.Boundary
	}
	seq := ls.CoordinateSequence()
	for i := 0; i < seq.Size()-1; i++ {
		if predicate.IsOnLine(pt, seq.Get(i), seq.Get(i+1)) {
			return planargraph.Interior
		}
	}
	return planargraph.Exterior
}

func locateOnMultiLineString(pt coordinate.Coordinate, mls geom.MultiLineString) planargraph.Loc {
	counts := 0
	onInterior := false
	for i := 0; i < mls.NumGeometries(); i++ {
		ls := mls.GeometryN(i)
		if ls.IsEmpty() {
			continue
		}
		seq := ls.CoordinateSequence()
		for j := 0; j < seq.Size()-1; j++ {
			if predicate.IsOnLine(pt, seq.Get(j), seq.Get(j+1)) {
				onInterior = true
			}
		}
		if !ls.IsClosed() {
			if ls.StartPoint().Coordinate().Eq(pt) {
				counts++
			}
			if ls.EndPoint().Coordinate().Eq(pt) && !ls.StartPoint().Coordinate().Eq(ls.EndPoint().Coordinate()) {
				counts++
			}
		}
	}
	if counts%2 == 1 {
		return planargraph.Boundary
	}
	if onInterior {
		return planargraph.Interior
	}
	return planargraph.Exterior
}
