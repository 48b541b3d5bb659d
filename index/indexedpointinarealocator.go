package index

import (
	"github.com/geos2d/core/coordinate"
	"github.com/geos2d/core/predicate"
)

// ringIndex indexes one closed ring's edges by Y-interval so a point
// query only visits the handful of edges whose Y-range straddles it,
// instead of the full O(n) scan predicate.LocatePointInRing does.
type ringIndex struct {
	coords []coordinate.Coordinate
	tree   *IntervalRTree
}

func newRingIndex(coords []coordinate.Coordinate) *ringIndex {
	tree := NewIntervalRTree()
	for i := 0; i < len(coords)-1; i++ {
		lo, hi := coords[i].Y, coords[i+1].Y
		if lo > hi {
			lo, hi = hi, lo
		}
		tree.Insert(Interval{Min: lo, Max: hi}, i)
	}
	return &ringIndex{coords: coords, tree: tree}
}

func (r *ringIndex) locate(pt coordinate.Coordinate) predicate.Location {
	var edges []int
	r.tree.QueryPoint(pt.Y, func(_ Interval, value any) {
		edges = append(edges, value.(int))
	})
	return predicate.LocatePointInRingIndexed(pt, len(edges), func(i int) (coordinate.Coordinate, coordinate.Coordinate) {
		idx := edges[i]
		return r.coords[idx], r.coords[idx+1]
	})
}

// IndexedPointInAreaLocator answers repeated point-in-polygon queries
// against a fixed shell/holes ring set after an O(n log n) one-time
// index build. A query runs the crossing test only on edges whose
// Y-interval contains the point, but the IntervalRTree scan that finds
// them walks every edge whose minimum Y is at or below the point, so a
// query is linear in the ring size in the worst case, not O(log n).
type IndexedPointInAreaLocator struct {
	shell *ringIndex
	holes []*ringIndex
}

// NewIndexedPointInAreaLocator builds an index over shell (closed ring
// coordinates, first == last) and zero or more hole rings in the same
// closed form.
func NewIndexedPointInAreaLocator(shell []coordinate.Coordinate, holes [][]coordinate.Coordinate) *IndexedPointInAreaLocator {
	l := &IndexedPointInAreaLocator{shell: newRingIndex(shell)}
	for _, h := range holes {
		l.holes = append(l.holes, newRingIndex(h))
	}
	return l
}

// Locate returns pt's location relative to the indexed polygon:
// Interior inside the shell and outside every hole, Boundary on the
// shell or any hole, Exterior otherwise, the same rule
// geom.Polygon.ContainsPoint applies, computed through the index
// instead of a linear ring scan.
func (l *IndexedPointInAreaLocator) Locate(pt coordinate.Coordinate) predicate.Location {
	shellLoc := l.shell.locate(pt)
	if shellLoc != predicate.Interior {
		return shellLoc
	}
	for _, h := range l.holes {
		switch h.locate(pt) {
		case predicate.Interior:
			return predicate.Exterior
		case predicate.Boundary:
			return predicate.Boundary
		}
	}
	return predicate.Interior
}
