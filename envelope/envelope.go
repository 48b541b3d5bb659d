// Package envelope provides the axis-aligned bounding rectangle used
// throughout geos2d to accelerate spatial predicates and indexing.
//
// An Envelope is [MinX, MaxX] x [MinY, MaxY]. The null (empty) state is
// explicit via Null/IsNull rather than a sentinel NaN rectangle; note
// that the zero value Envelope{} is NOT null (use Null() for that).
package envelope

import (
	"fmt"
	"math"
)

// Envelope is an axis-aligned bounding rectangle, or the null envelope if
// IsNull reports true.
type Envelope struct {
	minX, minY, maxX, maxY float64
	null                   bool
}

// Null returns the empty envelope.
func Null() Envelope {
	return Envelope{null: true}
}

// New returns the envelope spanning the two given corners, in either order.
func New(x1, y1, x2, y2 float64) Envelope {
	return Envelope{
		minX: math.Min(x1, x2),
		minY: math.Min(y1, y2),
		maxX: math.Max(x1, x2),
		maxY: math.Max(y1, y2),
	}
}

// FromPoint returns a zero-area envelope at (x, y).
func FromPoint(x, y float64) Envelope {
	return Envelope{minX: x, minY: y, maxX: x, maxY: y}
}

// IsNull reports whether the envelope is empty.
func (e Envelope) IsNull() bool { return e.null }

// MinX returns the minimum X ordinate. Undefined for a null envelope.
func (e Envelope) MinX() float64 { return e.minX }

// MinY returns the minimum Y ordinate. Undefined for a null envelope.
func (e Envelope) MinY() float64 { return e.minY }

// MaxX returns the maximum X ordinate. Undefined for a null envelope.
func (e Envelope) MaxX() float64 { return e.maxX }

// MaxY returns the maximum Y ordinate. Undefined for a null envelope.
func (e Envelope) MaxY() float64 { return e.maxY }

// Width returns MaxX - MinX, or 0 for a null envelope.
func (e Envelope) Width() float64 {
	if e.null {
		return 0
	}
	return e.maxX - e.minX
}

// Height returns MaxY - MinY, or 0 for a null envelope.
func (e Envelope) Height() float64 {
	if e.null {
		return 0
	}
	return e.maxY - e.minY
}

// Area returns Width * Height.
func (e Envelope) Area() float64 {
	return e.Width() * e.Height()
}

// Diagonal returns the length of the envelope's diagonal, used by callers
// that derive a precision scale from the data extent (see the noder's
// robust-overlay escalation).
func (e Envelope) Diagonal() float64 {
	if e.null {
		return 0
	}
	return math.Hypot(e.Width(), e.Height())
}

// CenterX returns the midpoint X ordinate.
func (e Envelope) CenterX() float64 {
	return (e.minX + e.maxX) / 2
}

// CenterY returns the midpoint Y ordinate.
func (e Envelope) CenterY() float64 {
	return (e.minY + e.maxY) / 2
}

// ExpandToInclude returns the smallest envelope containing both e and o.
// Expanding a null envelope by a non-null one yields the non-null one.
func (e Envelope) ExpandToInclude(o Envelope) Envelope {
	if o.null {
		return e
	}
	if e.null {
		return o
	}
	return Envelope{
		minX: math.Min(e.minX, o.minX),
		minY: math.Min(e.minY, o.minY),
		maxX: math.Max(e.maxX, o.maxX),
		maxY: math.Max(e.maxY, o.maxY),
	}
}

// ExpandToIncludePoint returns the smallest envelope containing e and (x, y).
func (e Envelope) ExpandToIncludePoint(x, y float64) Envelope {
	return e.ExpandToInclude(FromPoint(x, y))
}

// ExpandBy returns e grown by delta in all four directions. A null envelope
// expanded by any amount remains null.
func (e Envelope) ExpandBy(delta float64) Envelope {
	if e.null {
		return e
	}
	return Envelope{
		minX: e.minX - delta,
		minY: e.minY - delta,
		maxX: e.maxX + delta,
		maxY: e.maxY + delta,
	}
}

// Intersects reports whether e and o share at least one point. Two null
// envelopes, or one null and one not, never intersect.
func (e Envelope) Intersects(o Envelope) bool {
	if e.null || o.null {
		return false
	}
	return !(o.minX > e.maxX || o.maxX < e.minX || o.minY > e.maxY || o.maxY < e.minY)
}

// IntersectsPoint reports whether (x, y) lies within or on the boundary of e.
func (e Envelope) IntersectsPoint(x, y float64) bool {
	if e.null {
		return false
	}
	return x >= e.minX && x <= e.maxX && y >= e.minY && y <= e.maxY
}

// Contains reports whether e contains o entirely, including equal bounds.
// A null envelope contains nothing and is contained in nothing, not
// even another null envelope.
func (e Envelope) Contains(o Envelope) bool {
	return e.Covers(o)
}

// Covers reports whether every point of o lies within or on the boundary
// of e. Identical to Contains for envelopes (envelopes have no interior
// distinct from their closure).
func (e Envelope) Covers(o Envelope) bool {
	if e.null || o.null {
		return false
	}
	return o.minX >= e.minX && o.maxX <= e.maxX && o.minY >= e.minY && o.maxY <= e.maxY
}

// Intersection returns the overlapping region of e and o, or the null
// envelope if they do not intersect.
func (e Envelope) Intersection(o Envelope) Envelope {
	if !e.Intersects(o) {
		return Null()
	}
	return Envelope{
		minX: math.Max(e.minX, o.minX),
		minY: math.Max(e.minY, o.minY),
		maxX: math.Min(e.maxX, o.maxX),
		maxY: math.Min(e.maxY, o.maxY),
	}
}

// Distance returns the minimum Euclidean distance between e and o, or 0 if
// they intersect. Returns +Inf if either envelope is null.
func (e Envelope) Distance(o Envelope) float64 {
	if e.null || o.null {
		return math.Inf(1)
	}
	if e.Intersects(o) {
		return 0
	}
	dx := 0.0
	if o.minX > e.maxX {
		dx = o.minX - e.maxX
	} else if e.minX > o.maxX {
		dx = e.minX - o.maxX
	}
	dy := 0.0
	if o.minY > e.maxY {
		dy = o.minY - e.maxY
	} else if e.minY > o.maxY {
		dy = e.minY - o.maxY
	}
	return math.Hypot(dx, dy)
}

// Eq reports exact equality of two envelopes (both null, or identical
// bounds).
func (e Envelope) Eq(o Envelope) bool {
	if e.null != o.null {
		return false
	}
	if e.null {
		return true
	}
	return e.minX == o.minX && e.minY == o.minY && e.maxX == o.maxX && e.maxY == o.maxY
}

// String renders the envelope as "[minX,maxX] x [minY,maxY]", or "NULL".
func (e Envelope) String() string {
	if e.null {
		return "NULL"
	}
	return fmt.Sprintf("[%g,%g] x [%g,%g]", e.minX, e.maxX, e.minY, e.maxY)
}
