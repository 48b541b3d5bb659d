package overlay

import (
	"github.com/geos2d/core/coordinate"
	"github.com/geos2d/core/envelope"
	"github.com/geos2d/core/geom"
	"github.com/geos2d/core/planargraph"
	"github.com/geos2d/core/relate"
)

// classify decides, for every edge of graph, which of its two
// directions (if either) bounds op's result, and marks that direction
// InResult. A directed edge bounds the result when its Left side is in
// the result and its Right side is not: this keeps the result area
// consistently to the left of every directed edge that survives,
// exactly the orientation traceRings relies on.
func classify(graph *planargraph.Graph, op Op, a, b geom.Geometry) {
	for _, e := range graph.Edges {
		if e.IsCollapsed() {
			continue
		}
		de := e.Forward()
		lbl := de.Label()
		mid := midpoint(e)

		in0Left := isInterior(resolveSide(lbl, 0, planargraph.Left, mid, a))
		in0Right := isInterior(resolveSide(lbl, 0, planargraph.Right, mid, a))
		in1Left := isInterior(resolveSide(lbl, 1, planargraph.Left, mid, b))
		in1Right := isInterior(resolveSide(lbl, 1, planargraph.Right, mid, b))

		leftIn := included(op, in0Left, in1Left)
		rightIn := included(op, in0Right, in1Right)
		if leftIn == rightIn {
			continue
		}
		if leftIn {
			de.SetInResult(true)
		} else {
			de.Sym().SetInResult(true)
		}
	}
}

func midpoint(e *planargraph.Edge) coordinate.Coordinate {
	seq := e.CoordinateSequence()
	p1, p2 := seq.First(), seq.Last()
	return coordinate.NewXY((p1.X+p2.X)/2, (p1.Y+p2.Y)/2)
}

// resolveSide returns geomIndex's location at side from lbl if known,
// falling back to locating mid against g directly — this is the same
// fallback relate.Compute uses for an edge contributed entirely by the
// other operand, which never received a label for this geometry at
// all.
func resolveSide(lbl planargraph.Label, geomIndex int, side planargraph.Side, mid coordinate.Coordinate, g geom.Geometry) planargraph.Loc {
	if lbl.HasGeometry(geomIndex) {
		if loc := lbl.Get(geomIndex, side); loc != planargraph.None {
			return loc
		}
	}
	return relate.Locate(mid, g)
}

// traceRings walks every directed edge classify marked InResult and
// assembles each maximal face boundary into a closed ring of
// coordinates. The walk uses the standard half-edge face-tracing step:
// from a directed edge, the next edge of the same face is its twin's
// next edge around the twin's origin (CCW order), which holds because
// classify always leaves the result on the Left of a surviving
// directed edge.
func traceRings(graph *planargraph.Graph) [][]coordinate.Coordinate {
	visited := map[*planargraph.DirectedEdge]bool{}
	var rings [][]coordinate.Coordinate

	for _, e := range graph.Edges {
		for _, de := range [2]*planargraph.DirectedEdge{e.Forward(), e.Reverse()} {
			if !de.InResult() || visited[de] {
				continue
			}
			rings = append(rings, traceRing(de, visited))
		}
	}
	return rings
}

func traceRing(start *planargraph.DirectedEdge, visited map[*planargraph.DirectedEdge]bool) []coordinate.Coordinate {
	var coords []coordinate.Coordinate
	current := start
	for {
		visited[current] = true
		coords = append(coords, current.Origin().Coordinate())
		next := current.Sym().Next()
		if next == start {
			break
		}
		current = next
	}
	coords = append(coords, start.Origin().Coordinate())
	return coords
}

// assemble turns the traced rings into a single result geometry,
// pairing each clockwise hole ring with the smallest counterclockwise
// shell ring whose envelope contains it, matching this engine's ring
// orientation convention (NewArealLabel: a counterclockwise ring has
// its interior on the left).
func assemble(f *geom.GeometryFactory, rings [][]coordinate.Coordinate) geom.Geometry {
	type ring struct {
		coords []coordinate.Coordinate
		env    envelope.Envelope
	}
	var shells, holes []ring

	for _, r := range rings {
		if len(r) < 4 {
			continue
		}
		env := envelopeOf(r)
		if signedArea(r) > 0 {
			shells = append(shells, ring{coords: r, env: env})
		} else {
			holes = append(holes, ring{coords: r, env: env})
		}
	}

	if len(shells) == 0 {
		return f.CreateMultiPolygon(nil)
	}

	shellHoles := make([][]geom.LinearRing, len(shells))
	for _, h := range holes {
		best := -1
		for i, s := range shells {
			if !s.env.Contains(h.env) {
				continue
			}
			if best == -1 || shells[i].env.Area() < shells[best].env.Area() {
				best = i
			}
		}
		if best < 0 {
			continue
		}
		if lr, err := f.CreateLinearRing(coordinate.NewSequenceXY(h.coords...)); err == nil {
			shellHoles[best] = append(shellHoles[best], lr)
		}
	}

	polys := make([]geom.Polygon, 0, len(shells))
	for i, s := range shells {
		lr, err := f.CreateLinearRing(coordinate.NewSequenceXY(s.coords...))
		if err != nil {
			continue
		}
		polys = append(polys, f.CreatePolygon(lr, shellHoles[i]))
	}

	if len(polys) == 1 {
		return polys[0]
	}
	return f.CreateMultiPolygon(polys)
}

func envelopeOf(coords []coordinate.Coordinate) envelope.Envelope {
	env := envelope.FromPoint(coords[0].X, coords[0].Y)
	for _, c := range coords[1:] {
		env = env.ExpandToIncludePoint(c.X, c.Y)
	}
	return env
}

// signedArea computes a ring's shoelace area directly over a closed
// coordinate slice (first == last), positive for counterclockwise.
func signedArea(coords []coordinate.Coordinate) float64 {
	sum := 0.0
	for i := 0; i < len(coords)-1; i++ {
		a, b := coords[i], coords[i+1]
		sum += a.X*b.Y - b.X*a.Y
	}
	return sum / 2
}
