// Package geom implements the OGC Simple Features geometry model:
// Point, LineString, LinearRing, Polygon, and their
// Multi/Collection variants, built on coordinate.Sequence and backed by
// the robust predicates in package predicate.
//
// # Overview
//
// Every concrete type in this package satisfies the Geometry interface,
// which exposes the handful of properties common to all Simple Features
// geometries: spatial dimension, bounding envelope, emptiness, and a
// boundary. Dimension-specific behavior (length for curves, area for
// surfaces, validity rules) lives on the concrete types themselves; call
// sites that need to work generically across geometry types do so
// through the Geometry interface and a type switch, the same pattern
// GEOS and JTS use internally and that this package mirrors in Go form.
//
// # Notes
//
//   - All geometries are immutable once constructed: there is no
//     in-place vertex mutation API. A transformed geometry is always a
//     new value.
//   - Geometry construction goes through GeometryFactory so every
//     geometry sharing a factory also shares its PrecisionModel.
package geom

import (
	"github.com/geos2d/core/coordinate"
	"github.com/geos2d/core/envelope"
)

// Dimension is a geometry's topological dimension.
type Dimension int8

const (
	// DimPoint is the dimension of point geometries (0).
	DimPoint Dimension = 0
	// DimCurve is the dimension of linear geometries (1).
	DimCurve Dimension = 1
	// DimSurface is the dimension of areal geometries (2).
	DimSurface Dimension = 2
	// DimEmpty marks an empty geometry, which has no natural dimension.
	DimEmpty Dimension = -1
)

func (d Dimension) String() string {
	switch d {
	case DimPoint:
		return "Point"
	case DimCurve:
		return "Curve"
	case DimSurface:
		return "Surface"
	default:
		return "Empty"
	}
}

// Geometry is the common interface implemented by every geometry type in
// this package.
type Geometry interface {
	// Dimension returns the geometry's topological dimension.
	Dimension() Dimension
	// Envelope returns the minimal axis-aligned bounding rectangle.
	Envelope() envelope.Envelope
	// IsEmpty reports whether the geometry contains no coordinates.
	IsEmpty() bool
	// Boundary returns the geometry's boundary per the OGC boundary
	// rules: a Point's boundary is empty, a LineString's
	// boundary is its endpoints (unless closed), a Polygon's boundary
	// is its rings.
	Boundary() Geometry
	// GeometryType names the concrete OGC type ("Point", "LineString",
	// "Polygon", "MultiPoint", ...).
	GeometryType() string
}

// GeometryFactory constructs geometries sharing a common PrecisionModel.
// Coordinates passed to its constructors are snapped to that model
// before being stored, so every geometry a factory produces is already
// precision-consistent with every other.
type GeometryFactory struct {
	precision precisionModel
}

// precisionModel is the minimal precision-snapping contract the factory
// needs; precision.Model satisfies it. geomopts.Options does not (it
// carries a Precision field but has no MakePreciseXY method), and geom
// does not import geomopts, to avoid a dependency cycle with higher
// layers that import geom.
type precisionModel interface {
	MakePreciseXY(x, y float64) (float64, float64)
}

type floatingPrecision struct{}

func (floatingPrecision) MakePreciseXY(x, y float64) (float64, float64) { return x, y }

// NewGeometryFactory creates a factory using the given precision model.
// A nil model defaults to unconstrained floating precision.
func NewGeometryFactory(precision precisionModel) *GeometryFactory {
	if precision == nil {
		precision = floatingPrecision{}
	}
	return &GeometryFactory{precision: precision}
}

func (f *GeometryFactory) snap(c coordinate.Coordinate) coordinate.Coordinate {
	x, y := f.precision.MakePreciseXY(c.X, c.Y)
	c.X, c.Y = x, y
	return c
}

func (f *GeometryFactory) snapSequence(seq coordinate.Sequence) coordinate.Sequence {
	out := make([]coordinate.Coordinate, seq.Size())
	for i := 0; i < seq.Size(); i++ {
		out[i] = f.snap(seq.Get(i))
	}
	return coordinate.NewSequence(seq.Shape(), out...)
}
