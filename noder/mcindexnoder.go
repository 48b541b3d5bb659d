package noder

import (
	"github.com/geos2d/core/envelope"
	"github.com/geos2d/core/geomerr"
	"github.com/geos2d/core/geomopts"
	"github.com/geos2d/core/index"
	"github.com/geos2d/core/predicate"
)

// chainItem ties a monotone chain back to the SegmentString it was
// built from, so a chain-pair hit in the STR-tree can be turned into an
// intersection recorded on the right string.
type chainItem struct {
	owner *SegmentString
	chain index.MonotoneChain
}

func (c chainItem) Envelope() envelope.Envelope { return c.chain.Envelope() }

// MCIndexNoder is the default noder: an STR-tree of
// monotone chains built over every input SegmentString, refined by
// pairwise LineIntersector tests on chain pairs whose envelopes
// overlap.
type MCIndexNoder struct{}

// Node computes the noded output of the given segment strings at
// floating precision. It returns geomerr.ErrTopology if, after
// splitting, the output still contains an unresolved proper crossing
// between non-adjacent output strings — the MC noder's detection of
// near-collinear input it cannot node reliably.
func (MCIndexNoder) Node(strings []*SegmentString, opts geomopts.Options) ([]*SegmentString, error) {
	tree := index.NewSTRTree(10)
	owners := make([]chainItem, 0)
	for _, s := range strings {
		for _, mc := range index.BuildMonotoneChains(s.seq.ToSlice()) {
			ci := chainItem{owner: s, chain: mc}
			owners = append(owners, ci)
			tree.Insert(ci)
		}
	}
	tree.Build()

	// QueryPairs visits the self-product of the tree, so each unordered
	// chain pair (including a chain against itself) surfaces at least
	// once; AddIntersection is idempotent on near-duplicate values, so
	// visiting a pair twice (or a chain against itself) is harmless.
	interrupted := false
	index.QueryPairs(tree, tree, func(a, b index.Item) {
		if interrupted {
			return
		}
		if opts.Interrupted() {
			interrupted = true
			return
		}
		ca, cb := a.(chainItem), b.(chainItem)
		if ca.owner == cb.owner && chainsAdjacentOrEqual(ca.chain, cb.chain) {
			return
		}
		index.OverlappingSegmentPairs(ca.chain, cb.chain, func(i, j int) {
			processSegmentPair(ca.owner, i, cb.owner, j)
		})
	})
	if interrupted {
		return nil, geomerr.Interrupted()
	}

	var out []*SegmentString
	for _, s := range strings {
		out = append(out, s.SplitAtIntersections()...)
	}

	if opts.Interrupted() {
		return nil, geomerr.Interrupted()
	}

	if hasUnresolvedCrossing(out) {
		return nil, geomerr.NewTopology("MC noder: unresolved proper crossing remains after splitting")
	}

	return out, nil
}

func chainsAdjacentOrEqual(a, b index.MonotoneChain) bool {
	return a.Start() == b.Start() && a.End() == b.End()
}

func processSegmentPair(sa *SegmentString, i int, sb *SegmentString, j int) {
	if sa == sb && abs(i-j) <= 1 {
		return // adjacent segments of the same string always share a vertex
	}
	a1, a2 := sa.SegmentStart(i), sa.SegmentEnd(i)
	b1, b2 := sb.SegmentStart(j), sb.SegmentEnd(j)

	var li predicate.LineIntersector
	li.Compute(a1, a2, b1, b2)
	if !li.HasIntersection() {
		return
	}
	for k := 0; k < li.NumIntersections(); k++ {
		pt := li.Intersection(k)
		sa.AddIntersection(pt, i)
		sb.AddIntersection(pt, j)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// hasUnresolvedCrossing re-scans the noded output with a fresh pairwise
// scan (not chain-indexed — the output set is small relative to the
// input after splitting) for any remaining proper interior crossing
// between two strings that do not share an endpoint there.
func hasUnresolvedCrossing(strings []*SegmentString) bool {
	for i := 0; i < len(strings); i++ {
		for j := i + 1; j < len(strings); j++ {
			if segmentStringsCrossImproperly(strings[i], strings[j]) {
				return true
			}
		}
	}
	return false
}

func segmentStringsCrossImproperly(a, b *SegmentString) bool {
	for i := 0; i < a.NumSegments(); i++ {
		a1, a2 := a.SegmentStart(i), a.SegmentEnd(i)
		for j := 0; j < b.NumSegments(); j++ {
			b1, b2 := b.SegmentStart(j), b.SegmentEnd(j)
			var li predicate.LineIntersector
			li.Compute(a1, a2, b1, b2)
			if li.HasIntersection() && li.IsProper() {
				// A proper crossing is only "resolved" if it lands
				// exactly on a shared vertex of both strings (the
				// split already occurred there).
				pt := li.Intersection(0)
				if !(pt.Eq(a1) || pt.Eq(a2)) || !(pt.Eq(b1) || pt.Eq(b2)) {
					return true
				}
			}
		}
	}
	return false
}
