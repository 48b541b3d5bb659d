// Package noder implements the noding machinery the engine needs:
// given a collection of SegmentStrings, produce a collection in which no
// two segments cross in their interiors and every intersection (proper
// crossing, T-junction, or endpoint incidence) is a vertex of the
// output. Two noders are provided: MCIndexNoder (floating precision,
// the default) and SnapRoundingNoder (fixed precision, used when the
// default noder cannot resolve a near-degenerate arrangement).
package noder

import (
	"sort"

	"github.com/geos2d/core/coordinate"
	"github.com/geos2d/core/envelope"
	"github.com/geos2d/core/index"
)

// SegmentString is a CoordinateSequence plus arbitrary client data,
// the noder's unit of input and output. Client data is
// preserved across noding: a split SegmentString carries the same Data
// value as the one it was split from, so callers (planargraph's
// GeometryGraph, overlay's edge extraction) can recover provenance
// (source geometry index, ring vs. line, orientation) after noding.
type SegmentString struct {
	seq  coordinate.Sequence
	data any

	intersections *EdgeIntersectionList
}

// NewSegmentString wraps a coordinate sequence and opaque client data
// as a noder input.
func NewSegmentString(seq coordinate.Sequence, data any) *SegmentString {
	return &SegmentString{seq: seq, data: data, intersections: newEdgeIntersectionList()}
}

// CoordinateSequence returns the string's vertices.
func (s *SegmentString) CoordinateSequence() coordinate.Sequence { return s.seq }

// Data returns the opaque client data carried through noding.
func (s *SegmentString) Data() any { return s.data }

// Size returns the number of vertices.
func (s *SegmentString) Size() int { return s.seq.Size() }

// NumSegments returns the number of segments (Size-1), or 0 if fewer
// than two vertices.
func (s *SegmentString) NumSegments() int {
	if s.seq.Size() < 2 {
		return 0
	}
	return s.seq.Size() - 1
}

// SegmentStart returns the start point of segment i.
func (s *SegmentString) SegmentStart(i int) coordinate.Coordinate { return s.seq.Get(i) }

// SegmentEnd returns the end point of segment i.
func (s *SegmentString) SegmentEnd(i int) coordinate.Coordinate { return s.seq.Get(i + 1) }

// Envelope returns the string's bounding envelope.
func (s *SegmentString) Envelope() envelope.Envelope { return s.seq.Envelope() }

// EdgeIntersection is a split point added to a SegmentString by noding:
// the segment it falls on, its distance along that segment (0..1,
// except for collinear endpoints which may equal exactly 0 or 1), and
// its coordinate.
type EdgeIntersection struct {
	SegmentIndex int
	Dist         float64
	Coord        coordinate.Coordinate
}

// EdgeIntersectionList is the sorted list of split points accumulated
// on a SegmentString during noding, ordered by (SegmentIndex, Dist).
type EdgeIntersectionList struct {
	items []EdgeIntersection
}

func newEdgeIntersectionList() *EdgeIntersectionList {
	return &EdgeIntersectionList{}
}

// Add inserts an intersection at the given segment/distance, keeping
// the list sorted. A near-duplicate (same segment, dist within 1e-10)
// is not re-added.
func (l *EdgeIntersectionList) Add(segIndex int, dist float64, coord coordinate.Coordinate) {
	i := sort.Search(len(l.items), func(i int) bool {
		return less(EdgeIntersection{SegmentIndex: segIndex, Dist: dist}, l.items[i]) ||
			(l.items[i].SegmentIndex == segIndex && l.items[i].Dist == dist)
	})
	if i < len(l.items) && l.items[i].SegmentIndex == segIndex && closeEnough(l.items[i].Dist, dist) {
		return
	}
	if i > 0 && l.items[i-1].SegmentIndex == segIndex && closeEnough(l.items[i-1].Dist, dist) {
		return
	}
	l.items = append(l.items, EdgeIntersection{})
	copy(l.items[i+1:], l.items[i:])
	l.items[i] = EdgeIntersection{SegmentIndex: segIndex, Dist: dist, Coord: coord}
}

func closeEnough(a, b float64) bool {
	d := a - b
	return d > -1e-10 && d < 1e-10
}

func less(a, b EdgeIntersection) bool {
	if a.SegmentIndex != b.SegmentIndex {
		return a.SegmentIndex < b.SegmentIndex
	}
	return a.Dist < b.Dist
}

// Items returns the sorted intersections.
func (l *EdgeIntersectionList) Items() []EdgeIntersection { return l.items }

// AddIntersection records pt as an intersection on segment segIndex of
// s, computing its distance along that segment by projection.
func (s *SegmentString) AddIntersection(pt coordinate.Coordinate, segIndex int) {
	p1 := s.SegmentStart(segIndex)
	p2 := s.SegmentEnd(segIndex)
	dist := projectionFraction(p1, p2, pt)
	s.intersections.Add(segIndex, dist, pt)
}

// projectionFraction returns pt's position along segment p1-p2 as a
// fraction in [0,1] (extrapolated outside that range is clamped by the
// caller's own intersection test, never produced by a proper crossing).
func projectionFraction(p1, p2, pt coordinate.Coordinate) float64 {
	dx, dy := p2.X-p1.X, p2.Y-p1.Y
	len2 := dx*dx + dy*dy
	if len2 == 0 {
		return 0
	}
	return ((pt.X-p1.X)*dx + (pt.Y-p1.Y)*dy) / len2
}

// SplitAtIntersections returns the SegmentStrings produced by cutting s
// at every recorded EdgeIntersection and at every one of its own
// vertices, so each output is a two-point string. Each output string
// carries s's Data, preserving provenance. A string with no
// intersections returns itself, unsplit.
func (s *SegmentString) SplitAtIntersections() []*SegmentString {
	if len(s.intersections.items) == 0 {
		return []*SegmentString{s}
	}

	// Build the ordered list of cut vertices: original vertices plus
	// every intersection coordinate, each tagged with its position
	// expressed as (segmentIndex, dist) so interior cuts sort between
	// their segment's endpoints.
	type cut struct {
		segIndex int
		dist     float64
		coord    coordinate.Coordinate
	}
	var cuts []cut
	for i := 0; i < s.seq.Size(); i++ {
		cuts = append(cuts, cut{segIndex: i, dist: 0, coord: s.seq.Get(i)})
	}
	for _, it := range s.intersections.items {
		if it.Dist <= 0 || it.Dist >= 1 {
			continue // coincides with an endpoint already in cuts
		}
		cuts = append(cuts, cut{segIndex: it.SegmentIndex, dist: it.Dist, coord: it.Coord})
	}
	sort.Slice(cuts, func(i, j int) bool {
		if cuts[i].segIndex != cuts[j].segIndex {
			return cuts[i].segIndex < cuts[j].segIndex
		}
		return cuts[i].dist < cuts[j].dist
	})

	dedup := cuts[:0:0]
	for _, c := range cuts {
		if len(dedup) > 0 && dedup[len(dedup)-1].coord.Eq(c.coord) {
			continue
		}
		dedup = append(dedup, c)
	}

	if len(dedup) < 2 {
		return []*SegmentString{s}
	}

	out := make([]*SegmentString, 0, len(dedup)-1)
	for i := 0; i < len(dedup)-1; i++ {
		seq := coordinate.NewSequence(s.seq.Shape(), dedup[i].coord, dedup[i+1].coord)
		out = append(out, NewSegmentString(seq, s.data))
	}
	return out
}

// stringItem adapts a SegmentString to index.Item so it can be inserted
// directly into an STRTree.
type stringItem struct {
	s *SegmentString
}

func (i stringItem) Envelope() envelope.Envelope { return i.s.Envelope() }

var _ index.Item = stringItem{}
