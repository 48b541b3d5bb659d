package geom

import (
	"fmt"

	"github.com/geos2d/core/coordinate"
	"github.com/geos2d/core/envelope"
)

// Point is a single coordinate, or the empty point.
type Point struct {
	coord coordinate.Coordinate
	empty bool
}

// CreatePoint builds a Point from a coordinate, applying the factory's
// precision model.
func (f *GeometryFactory) CreatePoint(c coordinate.Coordinate) Point {
	return Point{coord: f.snap(c)}
}

// CreateEmptyPoint builds the empty Point.
func (f *GeometryFactory) CreateEmptyPoint() Point {
	return Point{empty: true}
}

// Coordinate returns the point's coordinate. Panics if the point is
// empty.
func (p Point) Coordinate() coordinate.Coordinate {
	if p.empty {
		panic("geom: Coordinate called on empty Point")
	}
	return p.coord
}

// X returns the point's X ordinate. Panics if the point is empty.
func (p Point) X() float64 { return p.Coordinate().X }

// Y returns the point's Y ordinate. Panics if the point is empty.
func (p Point) Y() float64 { return p.Coordinate().Y }

// Dimension returns DimPoint, or DimEmpty if empty.
func (p Point) Dimension() Dimension {
	if p.empty {
		return DimEmpty
	}
	return DimPoint
}

// Envelope returns the point's envelope (a single-point rectangle), or
// the null envelope if empty.
func (p Point) Envelope() envelope.Envelope {
	if p.empty {
		return envelope.Null()
	}
	return envelope.FromPoint(p.coord.X, p.coord.Y)
}

// IsEmpty reports whether this is the empty point.
func (p Point) IsEmpty() bool { return p.empty }

// Boundary returns an empty GeometryCollection: a Point's boundary is
// always empty per the OGC rules.
func (p Point) Boundary() Geometry { return GeometryCollection{} }

// GeometryType returns "Point".
func (p Point) GeometryType() string { return "Point" }

// Eq reports whether two points have the same coordinate identity
// (X/Y only) and emptiness.
func (p Point) Eq(o Point) bool {
	if p.empty || o.empty {
		return p.empty == o.empty
	}
	return p.coord.Eq(o.coord)
}

// String renders the point in WKT-like form, e.g. "POINT (1 2)".
func (p Point) String() string {
	if p.empty {
		return "POINT EMPTY"
	}
	return fmt.Sprintf("POINT (%g %g)", p.coord.X, p.coord.Y)
}
