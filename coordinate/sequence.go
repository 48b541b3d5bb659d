package coordinate

import (
	"github.com/geos2d/core/envelope"
)

// Sequence is an ordered collection of Coordinates sharing a common
// Shape. It is the canonical container for a line's vertices and the
// backing store for ring boundaries.
type Sequence struct {
	shape  Shape
	coords []Coordinate
}

// NewSequence builds a Sequence of the given shape from coords. The
// slice is copied; the caller's slice may be reused afterward.
func NewSequence(shape Shape, coords ...Coordinate) Sequence {
	cp := make([]Coordinate, len(coords))
	copy(cp, coords)
	return Sequence{shape: shape, coords: cp}
}

// NewSequenceXY is a convenience constructor for the common XY case.
func NewSequenceXY(coords ...Coordinate) Sequence {
	return NewSequence(XY, coords...)
}

// Shape reports the sequence's common coordinate shape.
func (s Sequence) Shape() Shape { return s.shape }

// Size returns the number of coordinates in the sequence.
func (s Sequence) Size() int { return len(s.coords) }

// IsEmpty reports whether the sequence has no coordinates.
func (s Sequence) IsEmpty() bool { return len(s.coords) == 0 }

// Get returns the coordinate at index i. Panics if i is out of range, the
// same contract as a slice index.
func (s Sequence) Get(i int) Coordinate { return s.coords[i] }

// Set replaces the coordinate at index i.
func (s *Sequence) Set(i int, c Coordinate) { s.coords[i] = c }

// Append adds coordinates to the end of the sequence.
func (s *Sequence) Append(coords ...Coordinate) {
	s.coords = append(s.coords, coords...)
}

// ToSlice returns a copy of the sequence's coordinates as a plain slice.
func (s Sequence) ToSlice() []Coordinate {
	out := make([]Coordinate, len(s.coords))
	copy(out, s.coords)
	return out
}

// Clone returns a deep copy of the sequence.
func (s Sequence) Clone() Sequence {
	return NewSequence(s.shape, s.coords...)
}

// Reverse returns a new sequence with coordinate order reversed.
func (s Sequence) Reverse() Sequence {
	n := len(s.coords)
	out := make([]Coordinate, n)
	for i, c := range s.coords {
		out[n-1-i] = c
	}
	return Sequence{shape: s.shape, coords: out}
}

// Range returns a copy of the coordinates in [start, end).
func (s Sequence) Range(start, end int) Sequence {
	out := make([]Coordinate, end-start)
	copy(out, s.coords[start:end])
	return Sequence{shape: s.shape, coords: out}
}

// First returns the first coordinate. Panics on an empty sequence.
func (s Sequence) First() Coordinate { return s.coords[0] }

// Last returns the final coordinate. Panics on an empty sequence.
func (s Sequence) Last() Coordinate { return s.coords[len(s.coords)-1] }

// IsClosed reports whether the first and last coordinates are equal
// (by X/Y identity).
func (s Sequence) IsClosed() bool {
	if len(s.coords) < 2 {
		return false
	}
	return s.First().Eq(s.Last())
}

// CloseRing returns a sequence guaranteed to be closed: if the first and
// last coordinates already match, s is returned unchanged; otherwise the
// first coordinate is appended to the end.
func (s Sequence) CloseRing() Sequence {
	if s.IsEmpty() || s.IsClosed() {
		return s
	}
	out := s.Clone()
	out.Append(s.First())
	return out
}

// Envelope returns the minimal axis-aligned rectangle enclosing every
// coordinate in the sequence, or the null envelope if empty.
func (s Sequence) Envelope() envelope.Envelope {
	if s.IsEmpty() {
		return envelope.Null()
	}
	env := envelope.FromPoint(s.coords[0].X, s.coords[0].Y)
	for _, c := range s.coords[1:] {
		env = env.ExpandToIncludePoint(c.X, c.Y)
	}
	return env
}

// ForEach iterates every coordinate in order, stopping early if fn
// returns false.
func (s Sequence) ForEach(fn func(i int, c Coordinate) bool) {
	for i, c := range s.coords {
		if !fn(i, c) {
			return
		}
	}
}

// Eq reports whether two sequences have identical coordinates in the
// same order (X/Y identity only, per Coordinate.Eq).
func (s Sequence) Eq(o Sequence) bool {
	if len(s.coords) != len(o.coords) {
		return false
	}
	for i := range s.coords {
		if !s.coords[i].Eq(o.coords[i]) {
			return false
		}
	}
	return true
}
