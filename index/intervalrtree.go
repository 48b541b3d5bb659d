package index

import (
	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/emirpasic/gods/utils"
)

// Interval is a closed 1D range [Min, Max].
type Interval struct {
	Min, Max float64
}

func (iv Interval) overlaps(o Interval) bool {
	return iv.Min <= o.Max && o.Min <= iv.Max
}

// IntervalRTree indexes a set of 1D intervals, each carrying an
// arbitrary payload, for fast "which intervals contain/overlap query
// point X" lookups. This backs IndexedPointInAreaLocator: a ring's edges are each reduced to the Y-interval they span, and
// a point-in-ring test only needs to visit edges whose Y-interval
// straddles the query point's Y rather than every edge in the ring.
//
// The tree is a sorted-packed binary tree over interval start points,
// backed by a red-black tree (github.com/emirpasic/gods) for the
// underlying ordered map rather than a hand-rolled balanced tree: gods
// is already in the dependency set for general-purpose ordered
// containers, and its comparator-based Tree is a direct fit for "map
// from a float64 key to a bucket of intervals starting there."
type IntervalRTree struct {
	byMin *redblacktree.Tree
}

type intervalEntry struct {
	interval Interval
	value    any
}

// NewIntervalRTree creates an empty tree.
func NewIntervalRTree() *IntervalRTree {
	return &IntervalRTree{byMin: redblacktree.NewWith(utils.Float64Comparator)}
}

// Insert adds an interval with an associated value.
func (t *IntervalRTree) Insert(iv Interval, value any) {
	bucket, found := t.byMin.Get(iv.Min)
	var entries []intervalEntry
	if found {
		entries = bucket.([]intervalEntry)
	}
	entries = append(entries, intervalEntry{interval: iv, value: value})
	t.byMin.Put(iv.Min, entries)
}

// Query calls visit for every interval overlapping the query interval.
// Iteration order is by ascending interval minimum.
func (t *IntervalRTree) Query(query Interval, visit func(iv Interval, value any)) {
	it := t.byMin.Iterator()
	for it.Next() {
		minKey := it.Key().(float64)
		if minKey > query.Max {
			break
		}
		for _, e := range it.Value().([]intervalEntry) {
			if e.interval.overlaps(query) {
				visit(e.interval, e.value)
			}
		}
	}
}

// QueryPoint calls visit for every interval containing x.
func (t *IntervalRTree) QueryPoint(x float64, visit func(iv Interval, value any)) {
	t.Query(Interval{Min: x, Max: x}, visit)
}

// Size returns the number of intervals in the tree.
func (t *IntervalRTree) Size() int {
	n := 0
	it := t.byMin.Iterator()
	for it.Next() {
		n += len(it.Value().([]intervalEntry))
	}
	return n
}
