package planargraph

import (
	"sort"

	"github.com/geos2d/core/coordinate"
)

// Node is a vertex of the planar graph: a Coordinate with every
// DirectedEdge that originates there, kept sorted in CCW angular order
//.
type Node struct {
	coord coordinate.Coordinate
	edges []*DirectedEdge
	label Label
}

// Coordinate returns the node's location.
func (n *Node) Coordinate() coordinate.Coordinate { return n.coord }

// Label returns the node's accumulated label (set by label propagation).
func (n *Node) Label() Label { return n.label }

// MergeLabel folds lbl into the node's label, taking the more
// informative value on each side per geometry.
func (n *Node) MergeLabel(lbl Label) { n.label = n.label.Merge(lbl) }

// Degree returns the number of directed edges originating at this node.
func (n *Node) Degree() int { return len(n.edges) }

// Edges returns the node's incident directed edges in CCW angular
// order.
func (n *Node) Edges() []*DirectedEdge { return n.edges }

// AddEdge inserts de (whose Origin must be this node) into the node's
// angularly-sorted edge list and re-links the Next pointers around the
// node so each edge's Next is the following one in CCW order. The
// angular sort uses Quadrant as a primary key and a stable geometric
// comparator within a quadrant.
func (n *Node) AddEdge(de *DirectedEdge) {
	de.origin = n
	de.quadrant = QuadrantOfEdge(n.coord, de.DirectionPoint())

	i := sort.Search(len(n.edges), func(i int) bool {
		return compareDirectedEdges(de, n.edges[i]) < 0
	})
	n.edges = append(n.edges, nil)
	copy(n.edges[i+1:], n.edges[i:])
	n.edges[i] = de

	n.relinkNext()
}

func compareDirectedEdges(a, b *DirectedEdge) int {
	origin := a.origin.coord
	ap := a.DirectionPoint()
	bp := b.DirectionPoint()
	return CompareAngle(a.quadrant, ap.X-origin.X, ap.Y-origin.Y, b.quadrant, bp.X-origin.X, bp.Y-origin.Y)
}

// relinkNext rewires each edge's Next pointer to the following edge in
// the node's angularly-sorted list, wrapping around.
func (n *Node) relinkNext() {
	for i, de := range n.edges {
		de.SetNext(n.edges[(i+1)%len(n.edges)])
	}
}

// PropagateLabels sweeps the node's incident directed edges in angular
// order, giving each directed edge's label a complete on/left/right for
// both geometries by inheriting the previous edge's side location
// wherever its own label leaves a side as None.
func (n *Node) PropagateLabels() {
	m := len(n.edges)
	if m == 0 {
		return
	}
	for geomIndex := 0; geomIndex < 2; geomIndex++ {
		// Find a starting edge with at least one known side, so the
		// sweep has a seed value to propagate from.
		start := -1
		for i, de := range n.edges {
			lbl := de.Label()
			if lbl.Get(geomIndex, Left) != None || lbl.Get(geomIndex, Right) != None {
				start = i
				break
			}
		}
		if start < 0 {
			continue
		}

		current := n.edges[start].Label().Get(geomIndex, Left)
		for k := 0; k < m; k++ {
			i := (start + k) % m
			de := n.edges[i]
			lbl := de.Label()

			if lbl.Get(geomIndex, Right) == None {
				lbl.Set(geomIndex, Right, current)
			} else {
				current = lbl.Get(geomIndex, Right)
			}
			if lbl.Get(geomIndex, Left) == None {
				lbl.Set(geomIndex, Left, current)
			} else {
				current = lbl.Get(geomIndex, Left)
			}
			de.SetLabel(lbl)
		}
	}
}
