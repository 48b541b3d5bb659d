package index

import (
	"github.com/geos2d/core/coordinate"
	"github.com/geos2d/core/envelope"
)

// MonotoneChain is a maximal run of consecutive segments within a
// coordinate sequence that are monotone in both X and Y (each segment's
// endpoints are ordered the same way along both axes as every other
// segment in the chain). Monotone chains let two polylines be compared
// for intersection by testing chain-against-chain (whose envelopes
// either don't overlap, in which case no segment pair can intersect, or
// overlap and must be tested pairwise) rather than testing every
// segment pair directly, the same divide-and-conquer the noder's
// pairwise intersection search is built on.
type MonotoneChain struct {
	pts        []coordinate.Coordinate
	start, end int
	env        envelope.Envelope
}

// Start returns the chain's first point index into its source sequence.
func (mc MonotoneChain) Start() int { return mc.start }

// End returns the chain's last point index into its source sequence.
func (mc MonotoneChain) End() int { return mc.end }

// Envelope returns the chain's bounding envelope.
func (mc MonotoneChain) Envelope() envelope.Envelope { return mc.env }

// Coordinate returns the source sequence's point at index i. i must be
// within [Start(), End()].
func (mc MonotoneChain) Coordinate(i int) coordinate.Coordinate { return mc.pts[i] }

// BuildMonotoneChains partitions a coordinate sequence into the minimal
// set of monotone chains covering it.
func BuildMonotoneChains(pts []coordinate.Coordinate) []MonotoneChain {
	if len(pts) < 2 {
		return nil
	}

	var chains []MonotoneChain
	start := 0
	for start < len(pts)-1 {
		end := findChainEnd(pts, start)
		chains = append(chains, newMonotoneChain(pts, start, end))
		start = end
	}
	return chains
}

// findChainEnd extends a chain starting at pts[start] as far as
// possible while the X and Y quadrant-direction of each successive
// segment matches the first segment's direction.
func findChainEnd(pts []coordinate.Coordinate, start int) int {
	if start >= len(pts)-1 {
		return start
	}

	incX := pts[start+1].X >= pts[start].X
	incY := pts[start+1].Y >= pts[start].Y

	last := start + 1
	for i := start + 1; i < len(pts)-1; i++ {
		nextIncX := pts[i+1].X >= pts[i].X
		nextIncY := pts[i+1].Y >= pts[i].Y
		if nextIncX != incX || nextIncY != incY {
			break
		}
		last = i + 1
	}
	return last
}

func newMonotoneChain(pts []coordinate.Coordinate, start, end int) MonotoneChain {
	env := envelope.FromPoint(pts[start].X, pts[start].Y)
	for i := start + 1; i <= end; i++ {
		env = env.ExpandToIncludePoint(pts[i].X, pts[i].Y)
	}
	return MonotoneChain{pts: pts, start: start, end: end, env: env}
}

// Overlaps reports whether mc and other's envelopes intersect; when
// true, every segment pair in the two chains must be tested directly,
// and when false, no pair can intersect.
func (mc MonotoneChain) Overlaps(other MonotoneChain) bool {
	return mc.env.Intersects(other.env)
}

// ForEachSegment calls fn for each consecutive segment (p1, p2) in the
// chain, stopping early if fn returns false.
func (mc MonotoneChain) ForEachSegment(fn func(i int, p1, p2 coordinate.Coordinate) bool) {
	for i := mc.start; i < mc.end; i++ {
		if !fn(i, mc.pts[i], mc.pts[i+1]) {
			return
		}
	}
}

// OverlappingSegmentPairs calls visit once for every pair of segment
// indices (one from mc, one from other) whose segment envelopes
// overlap, skipping the pair entirely when the chains' own envelopes
// don't overlap.
func OverlappingSegmentPairs(mc, other MonotoneChain, visit func(i, j int)) {
	if !mc.Overlaps(other) {
		return
	}
	for i := mc.start; i < mc.end; i++ {
		segEnvI := segmentEnvelope(mc.pts[i], mc.pts[i+1])
		for j := other.start; j < other.end; j++ {
			segEnvJ := segmentEnvelope(other.pts[j], other.pts[j+1])
			if segEnvI.Intersects(segEnvJ) {
				visit(i, j)
			}
		}
	}
}

func segmentEnvelope(a, b coordinate.Coordinate) envelope.Envelope {
	return envelope.New(a.X, a.Y, b.X, b.Y)
}
