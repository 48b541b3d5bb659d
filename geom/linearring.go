package geom

import (
	"fmt"

	"github.com/geos2d/core/coordinate"
	"github.com/geos2d/core/envelope"
	"github.com/geos2d/core/predicate"
)

// LinearRing is a closed, simple LineString: it bounds a Polygon's
// shell or a hole. Construction enforces closure (the first and last
// coordinates must match) but not simplicity — IsSimple/IsValid are
// checks a caller runs explicitly, separating cheap structural
// construction from the more expensive validity predicates.
type LinearRing struct {
	ls LineString
}

// CreateLinearRing builds a ring from a coordinate sequence. The
// sequence must be empty or have at least 4 points with the first and
// last coincident; a non-closed sequence is an invalid argument.
func (f *GeometryFactory) CreateLinearRing(seq coordinate.Sequence) (LinearRing, error) {
	if seq.IsEmpty() {
		return LinearRing{ls: LineString{}}, nil
	}
	if seq.Size() < 4 {
		return LinearRing{}, fmt.Errorf("geom: LinearRing requires 0 or >=4 points, got %d", seq.Size())
	}
	if !seq.IsClosed() {
		return LinearRing{}, fmt.Errorf("geom: LinearRing must be closed (first point must equal last)")
	}
	ls, err := f.CreateLineString(seq)
	if err != nil {
		return LinearRing{}, err
	}
	return LinearRing{ls: ls}, nil
}

// CoordinateSequence returns the ring's backing sequence.
func (r LinearRing) CoordinateSequence() coordinate.Sequence { return r.ls.seq }

// NumPoints returns the number of coordinates, including the repeated
// closing point.
func (r LinearRing) NumPoints() int { return r.ls.NumPoints() }

// IsSimple reports whether the ring does not self-intersect except at
// its closing vertex.
func (r LinearRing) IsSimple() bool { return isSequenceSimple(r.ls.seq, true) }

// SignedArea returns the ring's signed area via the shoelace formula:
// positive for a counterclockwise ring, negative for clockwise.
func (r LinearRing) SignedArea() float64 {
	seq := r.ls.seq
	n := seq.Size()
	if n < 4 {
		return 0
	}
	sum := 0.0
	for i := 0; i < n-1; i++ {
		a, b := seq.Get(i), seq.Get(i+1)
		sum += a.X*b.Y - b.X*a.Y
	}
	return sum / 2
}

// Area returns the unsigned area enclosed by the ring.
func (r LinearRing) Area() float64 {
	a := r.SignedArea()
	if a < 0 {
		return -a
	}
	return a
}

// IsCounterClockwise reports whether the ring's vertex order is
// counterclockwise (positive signed area), the orientation used for
// exterior shells in the engine's normalized output.
func (r LinearRing) IsCounterClockwise() bool { return r.SignedArea() > 0 }

// Reverse returns the ring with its vertex order reversed, flipping its
// orientation.
func (r LinearRing) Reverse() LinearRing {
	return LinearRing{ls: r.ls.Reverse()}
}

// ContainsPoint reports whether pt lies in the ring's interior, using
// the ray-casting point-location predicate.
func (r LinearRing) ContainsPoint(pt coordinate.Coordinate) predicate.Location {
	return predicate.LocatePointInRing(pt, r.ls.seq.ToSlice())
}

// Dimension returns DimCurve, or DimEmpty if empty.
func (r LinearRing) Dimension() Dimension { return r.ls.Dimension() }

// Envelope returns the ring's bounding envelope.
func (r LinearRing) Envelope() envelope.Envelope { return r.ls.Envelope() }

// IsEmpty reports whether the ring has no coordinates.
func (r LinearRing) IsEmpty() bool { return r.ls.IsEmpty() }

// Boundary returns an empty GeometryCollection: a closed curve's
// boundary is always empty.
func (r LinearRing) Boundary() Geometry { return GeometryCollection{} }

// GeometryType returns "LinearRing".
func (r LinearRing) GeometryType() string { return "LinearRing" }

// String renders the ring in WKT-like form.
func (r LinearRing) String() string {
	if r.IsEmpty() {
		return "LINEARRING EMPTY"
	}
	return "LINEARRING " + sequenceWKT(r.ls.seq)
}
