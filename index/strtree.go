// Package index implements the engine's spatial indexes: a packed
// Sort-Tile-Recursive (STR) R-tree over arbitrary
// envelope-bounded items, monotone chains for segment-set pruning, and
// an interval R-tree for 1D ray-casting acceleration.
//
// All three structures are built once and queried many times; none
// supports incremental insertion after construction, matching the
// read-mostly usage pattern the overlay and relate engines drive them
// with (build an index over one geometry's edges, then query it once
// per edge of the other geometry).
package index

import (
	"math"
	"sort"

	"github.com/google/btree"

	"github.com/geos2d/core/envelope"
)

// Item is anything that can be bounded by an Envelope and indexed.
type Item interface {
	Envelope() envelope.Envelope
}

// STRTree is a packed, static Sort-Tile-Recursive R-tree (Leutenegger,
// Lopez & Edgington 1997). Items are bulk-loaded once via Build; the
// tree may not be mutated afterward. btree.BTreeG is used as a
// throwaway, rebuilt ordering structure rather than a long-lived
// mutable index: reached for as the backing store for "keep N
// items in a fixed order, walk them in order," here used to sort each
// tile's slice of items by the STR partitioning coordinate instead of by
// a sweep-line status key.
type STRTree struct {
	fanOut int
	root   *strNode
	items  []stritem
}

type stritem struct {
	env envelope.Envelope
	val Item
}

type strNode struct {
	env      envelope.Envelope
	children []*strNode
	leaf     *stritem
}

// NewSTRTree creates an empty tree with the given node fan-out (the
// number of children per internal node). fanOut <= 1 is clamped to the
// conventional default of 10.
func NewSTRTree(fanOut int) *STRTree {
	if fanOut <= 1 {
		fanOut = 10
	}
	return &STRTree{fanOut: fanOut}
}

// Insert stages an item for the next Build call. STRTree is a bulk-load
// structure: items added after Build has already run are ignored until
// Build is called again.
func (t *STRTree) Insert(item Item) {
	t.items = append(t.items, stritem{env: item.Envelope(), val: item})
}

// Build packs all inserted items into the tree using the STR algorithm:
// sort by the X-center into vertical slices sized to roughly balance the
// tree, then sort each slice by Y-center and pack into leaf nodes, then
// recurse the same packing over the resulting leaf envelopes.
func (t *STRTree) Build() {
	if len(t.items) == 0 {
		t.root = nil
		return
	}

	leaves := make([]*strNode, len(t.items))
	for i, it := range t.items {
		item := it
		leaves[i] = &strNode{env: item.env, leaf: &item}
	}

	t.root = packLayer(leaves, t.fanOut)
}

// packLayer recursively packs nodes into a tree with the STR tiling
// algorithm until a single root remains.
func packLayer(nodes []*strNode, fanOut int) *strNode {
	if len(nodes) == 1 {
		return nodes[0]
	}

	parents := packOneLevel(nodes, fanOut)
	return packLayer(parents, fanOut)
}

func packOneLevel(nodes []*strNode, fanOut int) []*strNode {
	numLeaves := len(nodes)
	numSlices := int(ceilSqrt(float64(numLeaves) / float64(fanOut)))
	if numSlices < 1 {
		numSlices = 1
	}

	sorted := sortByTree(nodes, func(n *strNode) float64 { return n.env.CenterX() })

	var parents []*strNode
	perSlice := ceilDiv(numLeaves, numSlices)
	for start := 0; start < len(sorted); start += perSlice {
		end := start + perSlice
		if end > len(sorted) {
			end = len(sorted)
		}
		slice := sortByTree(sorted[start:end], func(n *strNode) float64 { return n.env.CenterY() })
		for i := 0; i < len(slice); i += fanOut {
			j := i + fanOut
			if j > len(slice) {
				j = len(slice)
			}
			parents = append(parents, newInternalNode(slice[i:j]))
		}
	}
	return parents
}

func newInternalNode(children []*strNode) *strNode {
	env := children[0].env
	for _, c := range children[1:] {
		env = env.ExpandToInclude(c.env)
	}
	cp := make([]*strNode, len(children))
	copy(cp, children)
	return &strNode{env: env, children: cp}
}

// sortByTree orders nodes by key using a btree.BTreeG as the sorting
// structure (ReplaceOrInsert each node, then Ascend to drain in order):
// a disposable ordering index built fresh per call rather than a
// long-lived structure.
func sortByTree(nodes []*strNode, key func(*strNode) float64) []*strNode {
	type keyed struct {
		k float64
		n *strNode
		i int
	}
	tree := btree.NewG(8, func(a, b keyed) bool {
		if a.k != b.k {
			return a.k < b.k
		}
		return a.i < b.i
	})
	for i, n := range nodes {
		tree.ReplaceOrInsert(keyed{k: key(n), n: n, i: i})
	}
	out := make([]*strNode, 0, len(nodes))
	tree.Ascend(func(item keyed) bool {
		out = append(out, item.n)
		return true
	})
	return out
}

func ceilDiv(a, b int) int {
	if b <= 0 {
		return a
	}
	return (a + b - 1) / b
}

func ceilSqrt(x float64) float64 {
	if x <= 0 {
		return 1
	}
	return math.Ceil(math.Sqrt(x))
}

// Query returns every inserted item whose envelope intersects search.
func (t *STRTree) Query(search envelope.Envelope) []Item {
	if t.root == nil {
		return nil
	}
	var out []Item
	queryNode(t.root, search, &out)
	return out
}

func queryNode(n *strNode, search envelope.Envelope, out *[]Item) {
	if !n.env.Intersects(search) {
		return
	}
	if n.leaf != nil {
		*out = append(*out, n.leaf.val)
		return
	}
	for _, c := range n.children {
		queryNode(c, search, out)
	}
}

// QueryPairs reports every pair of items (one from t, one from other)
// whose envelopes intersect. Used by the noder layer to find candidate
// segment pairs for intersection testing without a full O(n*m) scan.
func QueryPairs(t, other *STRTree, visit func(a, b Item)) {
	if t.root == nil || other.root == nil {
		return
	}
	queryPairsNodes(t.root, other.root, visit)
}

func queryPairsNodes(a, b *strNode, visit func(a, b Item)) {
	if !a.env.Intersects(b.env) {
		return
	}
	switch {
	case a.leaf != nil && b.leaf != nil:
		visit(a.leaf.val, b.leaf.val)
	case a.leaf != nil:
		for _, c := range b.children {
			queryPairsNodes(a, c, visit)
		}
	case b.leaf != nil:
		for _, c := range a.children {
			queryPairsNodes(c, b, visit)
		}
	default:
		for _, ca := range a.children {
			for _, cb := range b.children {
				queryPairsNodes(ca, cb, visit)
			}
		}
	}
}

// Size returns the number of items indexed.
func (t *STRTree) Size() int { return len(t.items) }

// nearestCandidate pairs an item with its distFn distance for ranking
// in k-nearest-neighbor queries.
type nearestCandidate struct {
	item Item
	dist float64
}

// NearestNeighbors performs a best-first search of the tree, returning
// the k items with smallest distance (per distFn, which must be
// monotonic: distance from an envelope is never greater than distance
// to any item it contains) from a query envelope.
func (t *STRTree) NearestNeighbors(query envelope.Envelope, k int, distFn func(Item) float64) []Item {
	if t.root == nil || k <= 0 {
		return nil
	}

	type queued struct {
		node *strNode
		key  float64
		seq  int
	}
	seq := 0
	frontier := btree.NewG(8, func(a, b queued) bool {
		if a.key != b.key {
			return a.key < b.key
		}
		return a.seq < b.seq
	})
	frontier.ReplaceOrInsert(queued{node: t.root, key: t.root.env.Distance(query), seq: seq})

	var best []nearestCandidate
	for frontier.Len() > 0 {
		top, _ := frontier.Min()
		frontier.Delete(top)

		if len(best) >= k && top.key > best[len(best)-1].dist {
			break
		}

		if top.node.leaf != nil {
			d := distFn(top.node.leaf.val)
			best = insertSortedCandidate(best, nearestCandidate{item: top.node.leaf.val, dist: d}, k)
			continue
		}
		for _, c := range top.node.children {
			seq++
			frontier.ReplaceOrInsert(queued{node: c, key: c.env.Distance(query), seq: seq})
		}
	}

	out := make([]Item, len(best))
	for i, c := range best {
		out[i] = c.item
	}
	return out
}

func insertSortedCandidate(best []nearestCandidate, c nearestCandidate, k int) []nearestCandidate {
	i := sort.Search(len(best), func(i int) bool { return best[i].dist > c.dist })
	best = append(best, nearestCandidate{})
	copy(best[i+1:], best[i:])
	best[i] = c
	if len(best) > k {
		best = best[:k]
	}
	return best
}

