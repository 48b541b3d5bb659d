package overlay

import (
	"github.com/geos2d/core/coordinate"
	"github.com/geos2d/core/geom"
	"github.com/geos2d/core/geomopts"
	"github.com/geos2d/core/noder"
	"github.com/geos2d/core/planargraph"
	"github.com/geos2d/core/relate"
)

// computeMixed handles every operand pairing computeAreal and
// computePuntal don't: one lineal operand paired with an areal,
// lineal, or puntal one. A pairing that includes a puntal operand is
// measure-zero against the other operand, so the op reduces to "does
// the shape change at all, plus which isolated points survive" rather
// than a full re-noding. A lineal-lineal or lineal-areal pairing is
// resolved by noding both operands together and classifying the
// resulting edges, which yields an exact clip at every crossing with
// the other operand's boundary.
//
// Scope: this does not attempt the fully general case where
// Intersection or SymDifference of two curves must drop to a point
// result at an isolated crossing (e.g. two segments crossing at a
// single interior point produce no coincident edge for either input,
// so neither is "present" anywhere and the true crossing point is
// missed). relate.Crosses/Intersects already answer that case
// correctly via the DE-9IM; only the Geometry-valued overlay result is
// narrowed here to the coincident-subsegment case, which is the
// common and exactly-computable one.
func computeMixed(op Op, a, b geom.Geometry, f *geom.GeometryFactory, opts geomopts.Options) (geom.Geometry, error) {
	if isPuntal(a) {
		return pointVsShape(op, a, b, f, true), nil
	}
	if isPuntal(b) {
		return pointVsShape(op, b, a, f, false), nil
	}
	if isAreal(a) {
		return computeLinealAreal(op, b, a, f, opts, false)
	}
	if isAreal(b) {
		return computeLinealAreal(op, a, b, f, opts, true)
	}
	return computeLineal(op, a, b, f, opts)
}

// pointVsShape handles a puntal operand (pt) against a lineal or areal
// one (shape): shape has zero measure in common with any finite point
// set, so Union/Difference/SymDifference leave shape unchanged except
// for isolated points that must be appended (Union, SymDifference) or
// are already absent (Difference), and Intersection reduces to the
// points of pt that lie on shape.
func pointVsShape(op Op, pt, shape geom.Geometry, f *geom.GeometryFactory, ptIsA bool) geom.Geometry {
	pts := collectPoints(pt)

	switch op {
	case Intersection:
		var kept []coordinate.Coordinate
		for _, p := range pts {
			if relate.Locate(p, shape) != planargraph.Exterior {
				kept = append(kept, p)
			}
		}
		return puntalResult(f, kept)
	case Difference:
		if ptIsA {
			var kept []coordinate.Coordinate
			for _, p := range pts {
				if relate.Locate(p, shape) == planargraph.Exterior {
					kept = append(kept, p)
				}
			}
			return puntalResult(f, kept)
		}
		return shape
	case Union, SymDifference:
		var outside []coordinate.Coordinate
		for _, p := range pts {
			if relate.Locate(p, shape) == planargraph.Exterior {
				outside = append(outside, p)
			}
		}
		if len(outside) == 0 {
			return shape
		}
		geoms := []geom.Geometry{shape}
		for _, p := range outside {
			geoms = append(geoms, f.CreatePoint(p))
		}
		return f.CreateGeometryCollection(geoms)
	default:
		return f.CreateGeometryCollection(nil)
	}
}

func puntalResult(f *geom.GeometryFactory, pts []coordinate.Coordinate) geom.Geometry {
	switch len(pts) {
	case 0:
		return f.CreateMultiPoint(nil)
	case 1:
		return f.CreatePoint(pts[0])
	default:
		points := make([]geom.Point, len(pts))
		for i, p := range pts {
			points[i] = f.CreatePoint(p)
		}
		return f.CreateMultiPoint(points)
	}
}

// computeLineal handles lineal-lineal pairings (lineal-areal ones go to
// computeLinealAreal) by noding both operands together and keeping whichever resulting edges
// the op's rule selects, at On-location granularity rather than the
// Left/Right granularity computeAreal uses (a curve has no interior
// side).
func computeLineal(op Op, a, b geom.Geometry, f *geom.GeometryFactory, opts geomopts.Options) (geom.Geometry, error) {
	stringsA := planargraph.ExtractSegmentStrings(0, a)
	stringsB := planargraph.ExtractSegmentStrings(1, b)
	all := append(append([]*noder.SegmentString{}, stringsA...), stringsB...)
	if len(all) == 0 {
		return f.CreateMultiLineString(nil), nil
	}

	logDebugf("computeLineal: noding %d edges for op %v", len(all), op)
	noded, err := noder.NodeRobust(all, opts)
	if err != nil {
		return nil, err
	}
	graph := planargraph.BuildGraph(noded)

	var segments []coordinate.Sequence
	for _, e := range graph.Edges {
		if e.IsCollapsed() {
			continue
		}
		lbl := e.Label()
		mid := midpoint(e)
		onA := onLocation(lbl, 0, mid, a) != planargraph.Exterior
		onB := onLocation(lbl, 1, mid, b) != planargraph.Exterior
		if included(op, onA, onB) {
			segments = append(segments, e.CoordinateSequence())
		}
	}

	return assembleLines(f, segments), nil
}

// computeLinealAreal handles a lineal operand paired with an areal
// one: the line is clipped exactly at its noded crossings with the
// area's boundary, and the area passes through unchanged except under
// Intersection (which has no areal component at all) and Difference
// with the line on the minuend side (whose result is the part of the
// line outside the area). Difference with the area on the minuend side
// keeps the area unchanged, since a line removes nothing measurable
// from it.
func computeLinealAreal(op Op, line, area geom.Geometry, f *geom.GeometryFactory, opts geomopts.Options, lineIsA bool) (geom.Geometry, error) {
	lineIdx, areaIdx := 0, 1
	if !lineIsA {
		lineIdx, areaIdx = 1, 0
	}

	var all []*noder.SegmentString
	all = append(all, planargraph.ExtractSegmentStrings(lineIdx, line)...)
	all = append(all, planargraph.ExtractSegmentStrings(areaIdx, area)...)

	var lineGeom geom.Geometry
	if len(all) > 0 {
		logDebugf("computeLinealAreal: noding %d edges for op %v", len(all), op)
		noded, err := noder.NodeRobust(all, opts)
		if err != nil {
			return nil, err
		}
		graph := planargraph.BuildGraph(noded)

		var segments []coordinate.Sequence
		for _, e := range graph.Edges {
			if e.IsCollapsed() || !e.Label().HasGeometry(lineIdx) {
				continue
			}
			mid := midpoint(e)
			areaPresent := onLocation(e.Label(), areaIdx, mid, area) != planargraph.Exterior
			if keepLinealAreaSegment(op, lineIsA, areaPresent) {
				segments = append(segments, e.CoordinateSequence())
			}
		}
		lineGeom = assembleLines(f, segments)
	} else {
		lineGeom = f.CreateMultiLineString(nil)
	}

	arealSurvives := op == Union || op == SymDifference || (op == Difference && !lineIsA)
	var parts []geom.Geometry
	if !lineGeom.IsEmpty() {
		parts = append(parts, lineGeom)
	}
	if arealSurvives {
		parts = append(parts, area)
	}

	switch len(parts) {
	case 0:
		return f.CreateMultiLineString(nil), nil
	case 1:
		return parts[0], nil
	default:
		return f.CreateGeometryCollection(parts), nil
	}
}

// keepLinealAreaSegment decides whether a line segment belongs in the
// lineal component of a line/area overlay. This is not the generic
// in0||in1 rule: under Union and SymDifference the portion of the line
// that falls inside the area is already covered by the area component
// computeLinealAreal keeps alongside it, so re-emitting it as a
// separate line would duplicate geometry.
func keepLinealAreaSegment(op Op, lineIsA, areaPresent bool) bool {
	switch op {
	case Intersection:
		return areaPresent
	case Union, SymDifference:
		return !areaPresent
	case Difference:
		return lineIsA && !areaPresent
	default:
		return false
	}
}

func assembleLines(f *geom.GeometryFactory, segments []coordinate.Sequence) geom.Geometry {
	if len(segments) == 0 {
		return f.CreateMultiLineString(nil)
	}
	lines := make([]geom.LineString, 0, len(segments))
	for _, seq := range segments {
		if ls, err := f.CreateLineString(seq); err == nil {
			lines = append(lines, ls)
		}
	}
	if len(lines) == 1 {
		return lines[0]
	}
	return f.CreateMultiLineString(lines)
}

// onLocation is resolveSide's On-granularity counterpart: a ring edge
// contributed entirely by the other operand still needs its location
// against g resolved directly.
func onLocation(lbl planargraph.Label, geomIndex int, mid coordinate.Coordinate, g geom.Geometry) planargraph.Loc {
	if lbl.HasGeometry(geomIndex) {
		if on := lbl.Get(geomIndex, planargraph.On); on != planargraph.None {
			return on
		}
	}
	return relate.Locate(mid, g)
}
