// Package prepared caches a spatial index over one geometry operand so
// that relationship predicates against many other geometries run
// faster than calling relate.Compute fresh each time. This mirrors
// JTS's PreparedGeometry: build once, query repeatedly, with the
// acceleration kicking in only for the operand shapes and predicate
// pairs where an index actually helps (areal operand, puntal other
// operand); everything else falls back to the full relate pipeline.
package prepared

import (
	"github.com/geos2d/core/geom"
	"github.com/geos2d/core/geomopts"
	"github.com/geos2d/core/relate"
)

// Geometry is a geometry paired with whatever cached index accelerates
// its predicate tests.
type Geometry interface {
	// Base returns the geometry the index was built over.
	Base() geom.Geometry
	Intersects(other geom.Geometry, opts geomopts.Options) (bool, error)
	Disjoint(other geom.Geometry, opts geomopts.Options) (bool, error)
	Contains(other geom.Geometry, opts geomopts.Options) (bool, error)
	Within(other geom.Geometry, opts geomopts.Options) (bool, error)
	Covers(other geom.Geometry, opts geomopts.Options) (bool, error)
	CoveredBy(other geom.Geometry, opts geomopts.Options) (bool, error)
}

// Prepare builds the fastest Geometry wrapper available for g's
// concrete type. A Polygon or MultiPolygon gets an
// index.IndexedPointInAreaLocator per component, which turns a
// point-against-this-polygon test into an indexed lookup over the
// edges whose Y-range holds the point; every other
// type has no analogous cheap structure to build ahead of time (a
// LineString's own predicates are already close to the cost of the
// index that would accelerate them) and falls back to relate.Compute
// per call.
func Prepare(g geom.Geometry) Geometry {
	switch v := g.(type) {
	case geom.Polygon:
		return newPreparedPolygon(v, []geom.Polygon{v})
	case geom.MultiPolygon:
		polys := make([]geom.Polygon, v.NumGeometries())
		for i := range polys {
			polys[i] = v.GeometryN(i)
		}
		return newPreparedPolygon(v, polys)
	default:
		return plainGeometry{g: g}
	}
}

// plainGeometry routes every predicate straight to relate.Compute, the
// same result calling the relate package functions directly on g would
// give. It exists so callers can Prepare any geometry uniformly rather
// than special-casing the types with no cache to build.
type plainGeometry struct {
	g geom.Geometry
}

func (p plainGeometry) Base() geom.Geometry { return p.g }

func (p plainGeometry) Intersects(other geom.Geometry, opts geomopts.Options) (bool, error) {
	return relate.Intersects(p.g, other, opts)
}

func (p plainGeometry) Disjoint(other geom.Geometry, opts geomopts.Options) (bool, error) {
	return relate.Disjoint(p.g, other, opts)
}

func (p plainGeometry) Contains(other geom.Geometry, opts geomopts.Options) (bool, error) {
	return relate.Contains(p.g, other, opts)
}

func (p plainGeometry) Within(other geom.Geometry, opts geomopts.Options) (bool, error) {
	return relate.Within(p.g, other, opts)
}

func (p plainGeometry) Covers(other geom.Geometry, opts geomopts.Options) (bool, error) {
	return relate.Covers(p.g, other, opts)
}

func (p plainGeometry) CoveredBy(other geom.Geometry, opts geomopts.Options) (bool, error) {
	return relate.CoveredBy(p.g, other, opts)
}
