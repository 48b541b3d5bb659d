package planargraph

import "github.com/geos2d/core/coordinate"

// DirectedEdge is one of the two directions of an undirected Edge: it
// has an origin Node, a Sym twin running the opposite way, a Next
// directed edge around its origin in CCW order, a Quadrant (the
// direction of its first segment out of the origin), and a Depth (see
// Depth; overlay classifies result faces from labels, not depths).
type DirectedEdge struct {
	edge    *Edge
	forward bool

	origin *Node
	sym    *DirectedEdge
	next   *DirectedEdge

	quadrant Quadrant
	depth    Depth
	inResult bool
}

// Edge returns the undirected edge this direction belongs to.
func (d *DirectedEdge) Edge() *Edge { return d.edge }

// Origin returns the node this directed edge starts from.
func (d *DirectedEdge) Origin() *Node { return d.origin }

// Sym returns the opposite-direction twin of the same Edge.
func (d *DirectedEdge) Sym() *DirectedEdge { return d.sym }

// Next returns the next directed edge around Origin in CCW order.
func (d *DirectedEdge) Next() *DirectedEdge { return d.next }

// SetNext wires the next-around-node pointer; used by Node when
// installing its incident edges in angular order.
func (d *DirectedEdge) SetNext(n *DirectedEdge) { d.next = n }

// Quadrant returns the quadrant of this directed edge's first segment.
func (d *DirectedEdge) Quadrant() Quadrant { return d.quadrant }

// Label returns the label of this direction: the underlying edge's
// label, flipped if this is the reverse direction (sides are defined
// relative to the direction of travel).
func (d *DirectedEdge) Label() Label {
	if d.forward {
		return d.edge.label
	}
	return d.edge.label.Flip()
}

// SetLabel installs lbl as this direction's label (flipping it back
// onto the underlying edge if this is the reverse direction), and
// propagates the same information to Sym.
func (d *DirectedEdge) SetLabel(lbl Label) {
	if d.forward {
		d.edge.label = lbl
	} else {
		d.edge.label = lbl.Flip()
	}
}

// Depth returns this direction's per-side depth bookkeeping.
func (d *DirectedEdge) Depth() Depth { return d.depth }

// SetDepth installs depth bookkeeping for this direction.
func (d *DirectedEdge) SetDepth(depth Depth) { d.depth = depth }

// InResult reports whether overlay/relate has marked this directed edge
// as part of the traced result.
func (d *DirectedEdge) InResult() bool { return d.inResult }

// SetInResult marks this directed edge (and implicitly, via its own
// flag only — Sym is set independently) as part of the result.
func (d *DirectedEdge) SetInResult(v bool) { d.inResult = v }

// Destination returns this direction's endpoint (the other end of the
// underlying edge from Origin).
func (d *DirectedEdge) Destination() coordinate.Coordinate {
	if d.forward {
		return d.edge.seq.Last()
	}
	return d.edge.seq.First()
}

// DirectionPoint returns the second vertex along this direction,
// i.e. the point used to compute this edge's initial Quadrant/angle at
// its origin.
func (d *DirectedEdge) DirectionPoint() coordinate.Coordinate {
	seq := d.edge.seq
	if d.forward {
		if seq.Size() > 1 {
			return seq.Get(1)
		}
		return seq.Last()
	}
	if seq.Size() > 1 {
		return seq.Get(seq.Size() - 2)
	}
	return seq.First()
}
