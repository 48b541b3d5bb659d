package relate

import (
	"github.com/geos2d/core/coordinate"
	"github.com/geos2d/core/geom"
	"github.com/geos2d/core/geomopts"
	"github.com/geos2d/core/noder"
	"github.com/geos2d/core/planargraph"
)

// Compute builds the DE-9IM Matrix relating a and b:
//
//  1. Build the intersection graph of a and b (package planargraph).
//  2. For every labelled edge and node, record the matrix cell for the
//     intersection of the two geometries' locations there, at the
//     edge's dimension (1) or the node's dimension (0). A node at an
//     endpoint of an open line is recorded as that input's Boundary
//     (mod-2 rule, via Locate).
//  3. An edge or node that carries no label for one geometry (it
//     belongs purely to the other input) is located at its midpoint or
//     coordinate against that geometry directly.
//  4. Every side of a directed edge whose location is known for both
//     geometries records the dimension-2 cell for that pair.
//  5. One interior point of each areal operand (of its largest
//     component, for a MultiPolygon) is located against the other
//     operand, e.g. for one polygon entirely inside a hole of the other
//     with no touching boundary. Other components are not sampled.
func Compute(a, b geom.Geometry, opts geomopts.Options) (*Matrix, error) {
	m := NewMatrix()

	if a.IsEmpty() || b.IsEmpty() {
		return m, nil
	}

	if isPuntal(a) || isPuntal(b) {
		computePuntal(m, a, b)
		m.Set(planargraph.Exterior, planargraph.Exterior, Dim2)
		return m, nil
	}

	stringsA := planargraph.ExtractSegmentStrings(0, a)
	stringsB := planargraph.ExtractSegmentStrings(1, b)
	all := append(append([]*noder.SegmentString{}, stringsA...), stringsB...)

	if len(all) == 0 {
		return m, nil
	}

	logDebugf("Compute: noding %d edges", len(all))
	noded, err := noder.NodeRobust(all, opts)
	if err != nil {
		return nil, err
	}

	graph := planargraph.BuildGraph(noded)

	for _, e := range graph.Edges {
		recordEdge(m, e, a, b)
	}
	for _, n := range graph.Nodes.Nodes() {
		locA := resolvedLoc(n.Label(), 0, n.Coordinate(), a)
		locB := resolvedLoc(n.Label(), 1, n.Coordinate(), b)
		// A line edge's label is Interior at both ends; an endpoint on
		// its line's boundary is found by locating the node directly.
		if locA == planargraph.Interior && Locate(n.Coordinate(), a) == planargraph.Boundary {
			locA = planargraph.Boundary
		}
		if locB == planargraph.Interior && Locate(n.Coordinate(), b) == planargraph.Boundary {
			locB = planargraph.Boundary
		}
		m.Set(locA, locB, Dim0)
	}

	recordAreaOverlap(m, graph)
	recordDisjointComponents(m, a, b)
	m.Set(planargraph.Exterior, planargraph.Exterior, Dim2)

	return m, nil
}

func isPuntal(g geom.Geometry) bool {
	switch g.(type) {
	case geom.Point, geom.MultiPoint:
		return true
	default:
		return false
	}
}

func computePuntal(m *Matrix, a, b geom.Geometry) {
	forEachPoint(a, func(pt coordinate.Coordinate) {
		m.Set(planargraph.Interior, Locate(pt, b), Dim0)
	})
	forEachPoint(b, func(pt coordinate.Coordinate) {
		m.Set(Locate(pt, a), planargraph.Interior, Dim0)
	})
}

func forEachPoint(g geom.Geometry, fn func(coordinate.Coordinate)) {
	switch v := g.(type) {
	case geom.Point:
		if !v.IsEmpty() {
			fn(v.Coordinate())
		}
	case geom.MultiPoint:
		for i := 0; i < v.NumGeometries(); i++ {
			fn(v.GeometryN(i).Coordinate())
		}
	}
}

// recordEdge sets the dimension-1 cell for an edge's "on" location in
// each geometry: a line edge contributes Interior, an area ring edge
// contributes Boundary; when a geometry has no label at all for this
// edge (it belongs purely to the other input), its location is
// resolved against the whole geometry directly.
func recordEdge(m *Matrix, e *planargraph.Edge, a, b geom.Geometry) {
	lbl := e.Label()
	mid := midpoint(e)

	locA := resolvedLoc(lbl, 0, mid, a)
	locB := resolvedLoc(lbl, 1, mid, b)
	m.Set(locA, locB, Dim1)
}

func midpoint(e *planargraph.Edge) coordinate.Coordinate {
	seq := e.CoordinateSequence()
	p1, p2 := seq.First(), seq.Last()
	return coordinate.NewXY((p1.X+p2.X)/2, (p1.Y+p2.Y)/2)
}

// resolvedLoc returns geomIndex's on-location from lbl if known,
// otherwise locates pt against g directly (the edge/node belongs
// entirely to the other input, so its location w.r.t. g was never
// seeded during label propagation).
func resolvedLoc(lbl planargraph.Label, geomIndex int, pt coordinate.Coordinate, g geom.Geometry) planargraph.Loc {
	if lbl.HasGeometry(geomIndex) {
		if on := lbl.Get(geomIndex, planargraph.On); on != planargraph.None {
			return on
		}
	}
	return Locate(pt, g)
}

// recordAreaOverlap records the 2D cells read off edge sides: wherever a
// directed edge's propagated Left or Right side has a known location
// for both geometries, an area of positive measure lies in that pair of
// locations (Interior/Interior, Interior/Exterior, Exterior/Interior).
func recordAreaOverlap(m *Matrix, graph *planargraph.Graph) {
	for _, e := range graph.Edges {
		for _, de := range []*planargraph.DirectedEdge{e.Forward(), e.Reverse()} {
			lbl := de.Label()
			for _, side := range []planargraph.Side{planargraph.Left, planargraph.Right} {
				l0, l1 := lbl.Get(0, side), lbl.Get(1, side)
				if l0 != planargraph.None && l1 != planargraph.None {
					m.Set(l0, l1, Dim2)
				}
			}
		}
	}
}

// recordDisjointComponents locates one interior point of each areal
// operand (geom.InteriorPoint; for a MultiPolygon a point of its
// largest component) against the other operand directly — this is what
// resolves, e.g., a polygon entirely inside the other operand's
// interior or inside one of its holes with no boundary contact at all.
// Lineal and puntal operands, and a MultiPolygon's other components,
// are not sampled here.
func recordDisjointComponents(m *Matrix, a, b geom.Geometry) {
	// A conservative, always-correct pass: take each geometry's own
	// interior representative point (if one exists) and locate it
	// against the other; this both double-checks and (for geometries
	// with a single connected component) completes the Dim2 interior
	// cell the edge-based pass above might miss for a fully-nested
	// interior with no boundary contact at all (e.g. A entirely inside
	// B with disjoint boundaries).
	if pt, ok := interiorPoint(a); ok {
		m.Set(planargraph.Interior, Locate(pt, b), Dim2OrLess(a))
	}
	if pt, ok := interiorPoint(b); ok {
		m.Set(Locate(pt, a), planargraph.Interior, Dim2OrLess(b))
	}
}

// Dim2OrLess returns g's own dimension as a DE-9IM dim value, for
// recording an Interior/Interior (or similar) self-consistent cell.
func Dim2OrLess(g geom.Geometry) dim {
	switch g.Dimension() {
	case geom.DimSurface:
		return Dim2
	case geom.DimCurve:
		return Dim1
	default:
		return Dim0
	}
}

func interiorPoint(g geom.Geometry) (coordinate.Coordinate, bool) {
	switch v := g.(type) {
	case geom.Polygon:
		if v.IsEmpty() {
			return coordinate.Coordinate{}, false
		}
		return geom.InteriorPoint(v), true
	case geom.MultiPolygon:
		if v.IsEmpty() {
			return coordinate.Coordinate{}, false
		}
		return geom.InteriorPoint(v), true
	// LineString is deliberately excluded: ExtractSegmentStrings already
	// emits every line component as graph edges, so recordEdge's
	// per-edge fallback already covers a disjoint line component; a
	// sampled interior point here could coincide with an already-noded
	// crossing and wrongly promote a Dim0 cell to Dim1.
	default:
		return coordinate.Coordinate{}, false
	}
}
