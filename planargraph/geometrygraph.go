package planargraph

import (
	"github.com/geos2d/core/coordinate"
	"github.com/geos2d/core/geom"
	"github.com/geos2d/core/noder"
)

// EdgeSourceInfo is the client data every noder.SegmentString extracted
// from a geometry carries through noding, recording enough provenance
// to rebuild a correct Label once noding is done.
type EdgeSourceInfo struct {
	GeomIndex int
	IsArea    bool // true for an area ring, false for a line
	CCW       bool // ring orientation; meaningful only when IsArea
}

// ExtractSegmentStrings walks g (one of the two operands, identified by
// geomIndex) and emits one noder.SegmentString per 1D component: every
// ring of every polygon, and every line string.
func ExtractSegmentStrings(geomIndex int, g geom.Geometry) []*noder.SegmentString {
	var out []*noder.SegmentString
	extractInto(geomIndex, g, &out)
	return out
}

func extractInto(geomIndex int, g geom.Geometry, out *[]*noder.SegmentString) {
	switch v := g.(type) {
	case geom.Point:
		// Points contribute no edges; they are handled directly by
		// relate's point-location fallback.
	case geom.LineString:
		if !v.IsEmpty() {
			*out = append(*out, noder.NewSegmentString(v.CoordinateSequence(), EdgeSourceInfo{GeomIndex: geomIndex}))
		}
	case geom.LinearRing:
		if !v.IsEmpty() {
			*out = append(*out, noder.NewSegmentString(v.CoordinateSequence(),
				EdgeSourceInfo{GeomIndex: geomIndex, IsArea: true, CCW: v.IsCounterClockwise()}))
		}
	case geom.Polygon:
		if v.IsEmpty() {
			return
		}
		extractInto(geomIndex, v.Shell(), out)
		for i := 0; i < v.NumHoles(); i++ {
			extractInto(geomIndex, v.HoleN(i), out)
		}
	case geom.MultiPoint:
		for i := 0; i < v.NumGeometries(); i++ {
			extractInto(geomIndex, v.GeometryN(i), out)
		}
	case geom.MultiLineString:
		for i := 0; i < v.NumGeometries(); i++ {
			extractInto(geomIndex, v.GeometryN(i), out)
		}
	case geom.MultiPolygon:
		for i := 0; i < v.NumGeometries(); i++ {
			extractInto(geomIndex, v.GeometryN(i), out)
		}
	case geom.GeometryCollection:
		for i := 0; i < v.NumGeometries(); i++ {
			extractInto(geomIndex, v.GeometryN(i), out)
		}
	}
}

// Graph is the built planar graph: a NodeMap plus the Edges installed
// around each node, with every directed edge fully labelled.
type Graph struct {
	Nodes *NodeMap
	Edges []*Edge
}

// BuildGraph assembles a Graph from already-noded SegmentStrings (the
// output of noder.NodeRobust run over the combined edges of both
// inputs): coincident edges are merged, directed edges are installed
// around their origin nodes in angular order, and labels are
// propagated around every node.
func BuildGraph(noded []*noder.SegmentString) *Graph {
	g := &Graph{Nodes: NewNodeMap()}

	// byKey collects, for each distinct undirected edge (by its
	// coordinate pair set), the accumulated label and one
	// representative coordinate sequence, so coincident edges from A
	// and B (or two collapsed boundary edges of the same input) merge
	// into a single Edge.
	type edgeAccum struct {
		seq   coordinate.Sequence
		label Label
	}
	byKey := map[edgeKey]*edgeAccum{}
	var order []edgeKey

	for _, s := range noded {
		seq := s.CoordinateSequence()
		if seq.Size() < 2 || seq.First().Eq(seq.Last()) {
			continue
		}
		info, _ := s.Data().(EdgeSourceInfo)
		lbl := labelForSegment(info)

		k := keyFor(seq)
		acc, ok := byKey[k]
		if !ok {
			acc = &edgeAccum{seq: seq}
			byKey[k] = acc
			order = append(order, k)
		} else if !acc.seq.First().Eq(seq.First()) {
			// Stored in the opposite direction: flip the incoming
			// label before merging so left/right line up.
			lbl = lbl.Flip()
		}
		acc.label = acc.label.Merge(lbl)
	}

	for _, k := range order {
		acc := byKey[k]
		e := NewEdge(acc.seq, acc.label)
		g.Edges = append(g.Edges, e)

		origin := g.Nodes.FindOrCreate(acc.seq.First())
		dest := g.Nodes.FindOrCreate(acc.seq.Last())
		origin.AddEdge(e.Forward())
		dest.AddEdge(e.Reverse())
	}

	for _, n := range g.Nodes.Nodes() {
		n.PropagateLabels()
		for _, de := range n.Edges() {
			n.MergeLabel(de.Label())
		}
	}

	return g
}

func labelForSegment(info EdgeSourceInfo) Label {
	if !info.IsArea {
		return NewLineLabel(info.GeomIndex, Interior)
	}
	if info.CCW {
		return NewArealLabel(info.GeomIndex, Boundary, Interior, Exterior)
	}
	return NewArealLabel(info.GeomIndex, Boundary, Exterior, Interior)
}

// edgeKey identifies an undirected edge by its two endpoints,
// independent of direction, so a coincident edge noded from either
// direction collapses to the same key.
type edgeKey struct{ ax, ay, bx, by float64 }

func keyFor(seq coordinate.Sequence) edgeKey {
	a, b := seq.First(), seq.Last()
	if a.X < b.X || (a.X == b.X && a.Y <= b.Y) {
		return edgeKey{a.X, a.Y, b.X, b.Y}
	}
	return edgeKey{b.X, b.Y, a.X, a.Y}
}
