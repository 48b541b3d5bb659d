package planargraph

import (
	"github.com/geos2d/core/coordinate"
	"github.com/geos2d/core/envelope"
)

// Edge is a 1D component of the graph: a vertex list (the noded
// segment between two nodes) carrying a Label. Every Edge is realized as a pair of opposite-direction
// DirectedEdges.
type Edge struct {
	seq   coordinate.Sequence
	label Label

	forward, reverse *DirectedEdge
}

// NewEdge builds an Edge from its vertex sequence (at least two points,
// first and last distinct) and label, and wires its two DirectedEdges.
func NewEdge(seq coordinate.Sequence, label Label) *Edge {
	e := &Edge{seq: seq, label: label}
	e.forward = &DirectedEdge{edge: e, forward: true}
	e.reverse = &DirectedEdge{edge: e, forward: false}
	e.forward.sym = e.reverse
	e.reverse.sym = e.forward
	return e
}

// CoordinateSequence returns the edge's vertex list in its forward
// (construction) direction.
func (e *Edge) CoordinateSequence() coordinate.Sequence { return e.seq }

// Label returns the edge's topology label.
func (e *Edge) Label() Label { return e.label }

// SetLabel replaces the edge's label (used when merging coincident
// edges during graph construction).
func (e *Edge) SetLabel(l Label) { e.label = l }

// Envelope returns the edge's bounding envelope.
func (e *Edge) Envelope() envelope.Envelope { return e.seq.Envelope() }

// Forward returns the DirectedEdge following the sequence's stored
// order (origin = first vertex).
func (e *Edge) Forward() *DirectedEdge { return e.forward }

// Reverse returns the DirectedEdge running the opposite way (origin =
// last vertex).
func (e *Edge) Reverse() *DirectedEdge { return e.reverse }

// IsCollapsed reports whether the edge's two endpoints coincide (a
// zero-length edge produced by a degenerate overlay input).
func (e *Edge) IsCollapsed() bool {
	return e.seq.Size() >= 2 && e.seq.First().Eq(e.seq.Last())
}

// Eq reports whether two edges have the same vertex sequence, in
// either direction (used to detect coincident edges from two different
// input geometries during graph construction).
func (e *Edge) Eq(o *Edge) bool {
	if e.seq.Eq(o.seq) {
		return true
	}
	return e.seq.Eq(o.seq.Reverse())
}

// SameDirection reports whether e and o's vertex sequences run the same
// way (as opposed to being reverses of each other). Only meaningful
// when Eq(o) is true.
func (e *Edge) SameDirection(o *Edge) bool {
	return e.seq.Eq(o.seq)
}
