// Package coordinate defines the foundational geometric primitive in the
// geos2d engine, the Coordinate type, and its ordered container,
// CoordinateSequence.
//
// A Coordinate is a point in 2D space with optional Z and M attributes
//. Equality and comparison are defined over X and Y only: Z
// and M are attributes carried along for interpolation and output, not
// part of a coordinate's identity. Missing Z or M is represented by NaN.
package coordinate

import (
	"encoding/json"
	"fmt"
	"math"
)

// Coordinate is a point in 2D space with optional Z/M attributes. The zero
// value is (0,0) with no Z or M (both NaN).
type Coordinate struct {
	X, Y, Z, M float64
}

// NewXY builds an XY-only coordinate (Z and M are NaN).
func NewXY(x, y float64) Coordinate {
	return Coordinate{X: x, Y: y, Z: math.NaN(), M: math.NaN()}
}

// NewXYZ builds a coordinate with a defined Z and no M.
func NewXYZ(x, y, z float64) Coordinate {
	return Coordinate{X: x, Y: y, Z: z, M: math.NaN()}
}

// NewXYM builds a coordinate with a defined M and no Z.
func NewXYM(x, y, m float64) Coordinate {
	return Coordinate{X: x, Y: y, Z: math.NaN(), M: m}
}

// NewXYZM builds a coordinate with both Z and M defined.
func NewXYZM(x, y, z, m float64) Coordinate {
	return Coordinate{X: x, Y: y, Z: z, M: m}
}

// HasZ reports whether Z is defined (not NaN).
func (c Coordinate) HasZ() bool { return !math.IsNaN(c.Z) }

// HasM reports whether M is defined (not NaN).
func (c Coordinate) HasM() bool { return !math.IsNaN(c.M) }

// Shape reports the narrowest Shape that represents this coordinate's
// defined attributes.
func (c Coordinate) Shape() Shape {
	switch {
	case c.HasZ() && c.HasM():
		return XYZM
	case c.HasZ():
		return XYZ
	case c.HasM():
		return XYM
	default:
		return XY
	}
}

// Eq reports exact equality of X and Y only; Z/M are attributes, not
// identity.
func (c Coordinate) Eq(o Coordinate) bool {
	return c.X == o.X && c.Y == o.Y
}

// EqEpsilon reports approximate equality of X and Y within epsilon.
func (c Coordinate) EqEpsilon(o Coordinate, epsilon float64) bool {
	return math.Abs(c.X-o.X) <= epsilon && math.Abs(c.Y-o.Y) <= epsilon
}

// Compare orders coordinates lexicographically by X then Y.
// Returns -1, 0, or 1.
func (c Coordinate) Compare(o Coordinate) int {
	if c.X < o.X {
		return -1
	}
	if c.X > o.X {
		return 1
	}
	if c.Y < o.Y {
		return -1
	}
	if c.Y > o.Y {
		return 1
	}
	return 0
}

// Add returns the component-wise sum of c and o, treating both as vectors.
func (c Coordinate) Add(o Coordinate) Coordinate {
	return NewXY(c.X+o.X, c.Y+o.Y)
}

// Sub returns the vector from o to c.
func (c Coordinate) Sub(o Coordinate) Coordinate {
	return NewXY(c.X-o.X, c.Y-o.Y)
}

// Negate returns c reflected across the origin.
func (c Coordinate) Negate() Coordinate {
	return NewXY(-c.X, -c.Y)
}

// CrossProduct returns the 2D cross product (determinant) of c and o,
// treated as vectors from the origin:
//
//	c x o = c.X*o.Y - c.Y*o.X
//
// Positive indicates o is counterclockwise from c, negative clockwise,
// zero collinear.
func (c Coordinate) CrossProduct(o Coordinate) float64 {
	return c.X*o.Y - c.Y*o.X
}

// DotProduct returns the dot product of c and o, treated as vectors from
// the origin.
func (c Coordinate) DotProduct(o Coordinate) float64 {
	return c.X*o.X + c.Y*o.Y
}

// DistanceSquared returns the squared Euclidean distance between c and o.
func (c Coordinate) DistanceSquared(o Coordinate) float64 {
	dx := o.X - c.X
	dy := o.Y - c.Y
	return dx*dx + dy*dy
}

// Distance returns the Euclidean distance between c and o.
func (c Coordinate) Distance(o Coordinate) float64 {
	return math.Sqrt(c.DistanceSquared(o))
}

// Translate returns c moved by the displacement vector delta.
func (c Coordinate) Translate(delta Coordinate) Coordinate {
	return Coordinate{X: c.X + delta.X, Y: c.Y + delta.Y, Z: c.Z, M: c.M}
}

// Rotate rotates c by radians counterclockwise around pivot. Z/M are
// carried through unchanged.
func (c Coordinate) Rotate(pivot Coordinate, radians float64) Coordinate {
	dx := c.X - pivot.X
	dy := c.Y - pivot.Y
	sin, cos := math.Sincos(radians)
	return Coordinate{
		X: pivot.X + dx*cos-dy*sin,
		Y: pivot.Y + dx*sin+dy*cos,
		Z: c.Z,
		M: c.M,
	}
}

// Scale scales c by factor k relative to ref. Z/M are carried through
// unchanged.
func (c Coordinate) Scale(ref Coordinate, k float64) Coordinate {
	return Coordinate{
		X: ref.X + (c.X-ref.X)*k,
		Y: ref.Y + (c.Y-ref.Y)*k,
		Z: c.Z,
		M: c.M,
	}
}

// String renders the coordinate in "(x, y)" form for XY, extending with
// Z/M as present.
func (c Coordinate) String() string {
	switch c.Shape() {
	case XYZ:
		return fmt.Sprintf("(%g %g %g)", c.X, c.Y, c.Z)
	case XYM:
		return fmt.Sprintf("(%g %g m=%g)", c.X, c.Y, c.M)
	case XYZM:
		return fmt.Sprintf("(%g %g %g m=%g)", c.X, c.Y, c.Z, c.M)
	default:
		return fmt.Sprintf("(%g %g)", c.X, c.Y)
	}
}

type coordinateJSON struct {
	X float64  `json:"x"`
	Y float64  `json:"y"`
	Z *float64 `json:"z,omitempty"`
	M *float64 `json:"m,omitempty"`
}

// MarshalJSON serializes Coordinate, omitting Z/M when undefined.
func (c Coordinate) MarshalJSON() ([]byte, error) {
	out := coordinateJSON{X: c.X, Y: c.Y}
	if c.HasZ() {
		z := c.Z
		out.Z = &z
	}
	if c.HasM() {
		m := c.M
		out.M = &m
	}
	return json.Marshal(out)
}

// UnmarshalJSON deserializes JSON into a Coordinate, defaulting absent
// Z/M to NaN.
func (c *Coordinate) UnmarshalJSON(data []byte) error {
	var in coordinateJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	c.X, c.Y = in.X, in.Y
	c.Z, c.M = math.NaN(), math.NaN()
	if in.Z != nil {
		c.Z = *in.Z
	}
	if in.M != nil {
		c.M = *in.M
	}
	return nil
}
