package overlay

import (
	"github.com/geos2d/core/geom"
	"github.com/geos2d/core/geomopts"
	"github.com/geos2d/core/noder"
	"github.com/geos2d/core/planargraph"
)

// Compute returns the geometry that is a's and b's result for op,
// built with a factory targeting opts.Precision.
//
// Areal inputs (Polygon/MultiPolygon on both sides) run the full
// OverlayNG-style pipeline: extract edges, node them together, build a
// labelled planar graph, classify every directed edge as
// result-bounding or not, trace the surviving rings, and assemble
// shells with their holes. Any combination involving a lineal or
// puntal operand runs the lighter edge/node inclusion rule in
// mixed.go and puntal.go, which reuse the same extraction and noding
// machinery but assemble lines and points instead of closed rings.
func Compute(op Op, a, b geom.Geometry, opts geomopts.Options) (geom.Geometry, error) {
	f := geom.NewGeometryFactory(opts.Precision)

	if a.IsEmpty() && b.IsEmpty() {
		return f.CreateGeometryCollection(nil), nil
	}
	if a.IsEmpty() {
		return emptyOperand(op, b, f, false), nil
	}
	if b.IsEmpty() {
		return emptyOperand(op, a, f, true), nil
	}

	if isAreal(a) && isAreal(b) {
		return computeAreal(op, a, b, f, opts)
	}
	if isPuntal(a) && isPuntal(b) {
		return computePuntal(op, a, b, f), nil
	}
	return computeMixed(op, a, b, f, opts)
}

func isAreal(g geom.Geometry) bool {
	switch g.(type) {
	case geom.Polygon, geom.MultiPolygon:
		return true
	default:
		return false
	}
}

func isPuntal(g geom.Geometry) bool {
	switch g.(type) {
	case geom.Point, geom.MultiPoint:
		return true
	default:
		return false
	}
}

// emptyOperand returns the result of op when one operand (the other
// one, not present) is empty: Union and SymDifference pass the
// non-empty operand through unchanged, Intersection is always empty,
// and Difference depends on which side was empty.
func emptyOperand(op Op, present geom.Geometry, f *geom.GeometryFactory, presentIsA bool) geom.Geometry {
	switch op {
	case Union, SymDifference:
		return present
	case Intersection:
		return f.CreateGeometryCollection(nil)
	case Difference:
		if presentIsA {
			return present
		}
		return f.CreateGeometryCollection(nil)
	default:
		return f.CreateGeometryCollection(nil)
	}
}

func computeAreal(op Op, a, b geom.Geometry, f *geom.GeometryFactory, opts geomopts.Options) (geom.Geometry, error) {
	stringsA := planargraph.ExtractSegmentStrings(0, a)
	stringsB := planargraph.ExtractSegmentStrings(1, b)
	all := append(append([]*noder.SegmentString{}, stringsA...), stringsB...)
	if len(all) == 0 {
		return f.CreateGeometryCollection(nil), nil
	}

	logDebugf("computeAreal: noding %d edges for op %v", len(all), op)
	noded, err := noder.NodeRobust(all, opts)
	if err != nil {
		return nil, err
	}

	graph := planargraph.BuildGraph(noded)
	classify(graph, op, a, b)
	rings := traceRings(graph)
	return assemble(f, rings), nil
}
