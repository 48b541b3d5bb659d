package geom

import (
	"fmt"

	"github.com/geos2d/core/coordinate"
	"github.com/geos2d/core/envelope"
	"github.com/geos2d/core/predicate"
)

// LineString is a 1D curve made of one or more line segments, given by
// an ordered coordinate sequence with at least two points (or zero, for
// the empty line string). A LineString need not be simple (it may
// self-intersect); LinearRing layers the additional closed + simple
// constraint on top.
type LineString struct {
	seq coordinate.Sequence
}

// CreateLineString builds a LineString from a coordinate sequence,
// snapping every coordinate to the factory's precision model. A
// sequence of exactly one point is rejected as an invalid argument: a
// LineString is either empty or has at least two points.
func (f *GeometryFactory) CreateLineString(seq coordinate.Sequence) (LineString, error) {
	if seq.Size() == 1 {
		return LineString{}, fmt.Errorf("geom: LineString requires 0 or >=2 points, got 1")
	}
	return LineString{seq: f.snapSequence(seq)}, nil
}

// CreateEmptyLineString builds the empty LineString.
func (f *GeometryFactory) CreateEmptyLineString() LineString {
	return LineString{}
}

// CoordinateSequence returns the line string's backing sequence.
func (ls LineString) CoordinateSequence() coordinate.Sequence { return ls.seq }

// NumPoints returns the number of coordinates.
func (ls LineString) NumPoints() int { return ls.seq.Size() }

// PointN returns the i'th coordinate as a Point.
func (ls LineString) PointN(i int) Point {
	return Point{coord: ls.seq.Get(i)}
}

// StartPoint returns the first coordinate as a Point.
func (ls LineString) StartPoint() Point { return ls.PointN(0) }

// EndPoint returns the last coordinate as a Point.
func (ls LineString) EndPoint() Point { return ls.PointN(ls.seq.Size() - 1) }

// IsClosed reports whether the first and last points coincide. A
// LineString with fewer than 2 points is not closed.
func (ls LineString) IsClosed() bool {
	return ls.seq.Size() >= 2 && ls.seq.IsClosed()
}

// IsRing reports whether the line string is both closed and simple,
// the OGC definition of a ring.
func (ls LineString) IsRing() bool {
	return ls.IsClosed() && ls.IsSimple()
}

// IsSimple reports whether the line string does not self-intersect
// except possibly at shared endpoints of adjacent segments, computed by
// pairwise segment intersection testing (O(n^2); callers indexing many
// large line strings should instead go through the noder layer's
// indexed intersection search).
func (ls LineString) IsSimple() bool {
	return isSequenceSimple(ls.seq, ls.IsClosed())
}

// Length returns the sum of the Euclidean lengths of each segment.
func (ls LineString) Length() float64 {
	total := 0.0
	for i := 0; i < ls.seq.Size()-1; i++ {
		total += ls.seq.Get(i).Distance(ls.seq.Get(i + 1))
	}
	return total
}

// Dimension returns DimCurve, or DimEmpty if empty.
func (ls LineString) Dimension() Dimension {
	if ls.IsEmpty() {
		return DimEmpty
	}
	return DimCurve
}

// Envelope returns the line string's bounding envelope.
func (ls LineString) Envelope() envelope.Envelope { return ls.seq.Envelope() }

// IsEmpty reports whether the line string has no coordinates.
func (ls LineString) IsEmpty() bool { return ls.seq.IsEmpty() }

// Boundary returns the line string's boundary per the OGC "mod 2" rule:
// empty if the line string is closed or itself empty, otherwise the
// two endpoints as a MultiPoint.
func (ls LineString) Boundary() Geometry {
	if ls.IsEmpty() || ls.IsClosed() {
		return MultiPoint{}
	}
	return MultiPoint{points: []Point{ls.StartPoint(), ls.EndPoint()}}
}

// GeometryType returns "LineString".
func (ls LineString) GeometryType() string { return "LineString" }

// Reverse returns the line string with its coordinate order reversed.
func (ls LineString) Reverse() LineString {
	return LineString{seq: ls.seq.Reverse()}
}

// String renders the line string in WKT-like form.
func (ls LineString) String() string {
	if ls.IsEmpty() {
		return "LINESTRING EMPTY"
	}
	return "LINESTRING " + sequenceWKT(ls.seq)
}

func sequenceWKT(seq coordinate.Sequence) string {
	s := "("
	for i := 0; i < seq.Size(); i++ {
		if i > 0 {
			s += ", "
		}
		c := seq.Get(i)
		s += fmt.Sprintf("%g %g", c.X, c.Y)
	}
	return s + ")"
}

// isSequenceSimple is a naive O(n^2) self-intersection test shared by
// LineString and LinearRing: every non-adjacent pair of segments must
// not intersect, and adjacent segments may only touch at their shared
// vertex.
func isSequenceSimple(seq coordinate.Sequence, isRing bool) bool {
	n := seq.Size()
	if n < 2 {
		return true
	}

	seg := func(i int) (coordinate.Coordinate, coordinate.Coordinate) {
		return seq.Get(i), seq.Get(i + 1)
	}
	numSegs := n - 1

	for i := 0; i < numSegs; i++ {
		a1, a2 := seg(i)
		for j := i + 1; j < numSegs; j++ {
			b1, b2 := seg(j)

			adjacent := j == i+1 || (isRing && i == 0 && j == numSegs-1)
			if !segmentsIntersectExceptShared(a1, a2, b1, b2, adjacent) {
				return false
			}
		}
	}
	return true
}

// segmentsIntersectExceptShared reports true (i.e. "no self-intersection
// problem here") unless the two segments intersect somewhere beyond
// their permitted shared endpoint.
func segmentsIntersectExceptShared(a1, a2, b1, b2 coordinate.Coordinate, adjacent bool) bool {
	var li predicate.LineIntersector
	li.Compute(a1, a2, b1, b2)
	if !li.HasIntersection() {
		return true
	}
	if li.Type() == predicate.CollinearIntersection {
		return false
	}
	if !adjacent {
		return false
	}
	// Adjacent segments are only simple if they meet at exactly the
	// shared vertex, not partway along either segment.
	return !li.IsProper()
}
