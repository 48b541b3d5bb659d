package geos2d

import (
	"github.com/geos2d/core/coordinate"
	"github.com/geos2d/core/geom"
	"github.com/geos2d/core/geomopts"
	"github.com/geos2d/core/overlay"
	"github.com/geos2d/core/precision"
	"github.com/geos2d/core/prepared"
	"github.com/geos2d/core/relate"
)

// options folds the package-level epsilon and the floating precision
// model into a base Options value, then layers the caller's opts on
// top.
func options(opts ...geomopts.Func) geomopts.Options {
	base := geomopts.Options{Epsilon: GetEpsilon(), Precision: precision.NewFloating()}
	return geomopts.Apply(base, opts...)
}

// Intersects reports whether a and b have at least one point in common.
func Intersects(a, b geom.Geometry, opts ...geomopts.Func) (bool, error) {
	return relate.Intersects(a, b, options(opts...))
}

// Disjoint reports whether a and b share no point at all.
func Disjoint(a, b geom.Geometry, opts ...geomopts.Func) (bool, error) {
	return relate.Disjoint(a, b, options(opts...))
}

// Touches reports whether a and b share a boundary point but no
// interior point.
func Touches(a, b geom.Geometry, opts ...geomopts.Func) (bool, error) {
	return relate.Touches(a, b, options(opts...))
}

// Crosses reports whether a and b intersect in a lower-dimensional set
// that is not equal to either input.
func Crosses(a, b geom.Geometry, opts ...geomopts.Func) (bool, error) {
	return relate.Crosses(a, b, options(opts...))
}

// Overlaps reports whether a and b are the same dimension, their
// interiors intersect, and neither contains the other.
func Overlaps(a, b geom.Geometry, opts ...geomopts.Func) (bool, error) {
	return relate.Overlaps(a, b, options(opts...))
}

// Within reports whether every point of a lies in b, with at least one
// interior point of a interior to b.
func Within(a, b geom.Geometry, opts ...geomopts.Func) (bool, error) {
	return relate.Within(a, b, options(opts...))
}

// Contains reports whether every point of b lies in a, with at least
// one interior point of b interior to a.
func Contains(a, b geom.Geometry, opts ...geomopts.Func) (bool, error) {
	return relate.Contains(a, b, options(opts...))
}

// Covers reports whether every point of b lies in a.
func Covers(a, b geom.Geometry, opts ...geomopts.Func) (bool, error) {
	return relate.Covers(a, b, options(opts...))
}

// CoveredBy reports whether every point of a lies in b.
func CoveredBy(a, b geom.Geometry, opts ...geomopts.Func) (bool, error) {
	return relate.CoveredBy(a, b, options(opts...))
}

// Equals reports whether a and b describe exactly the same point set.
func Equals(a, b geom.Geometry, opts ...geomopts.Func) (bool, error) {
	return relate.Equals(a, b, options(opts...))
}

// Relate returns the DE-9IM intersection matrix of a and b as its
// standard 9-character string.
func Relate(a, b geom.Geometry, opts ...geomopts.Func) (string, error) {
	return relate.Relate(a, b, options(opts...))
}

// RelateMatches reports whether a and b satisfy an arbitrary DE-9IM
// intersection pattern (e.g. "T*F**FFF*").
func RelateMatches(a, b geom.Geometry, pattern string, opts ...geomopts.Func) (bool, error) {
	return relate.RelateMatches(a, b, pattern, options(opts...))
}

// Intersection returns the point set common to both a and b.
func Intersection(a, b geom.Geometry, opts ...geomopts.Func) (geom.Geometry, error) {
	return overlay.Compute(overlay.Intersection, a, b, options(opts...))
}

// Union returns the point set belonging to a or b.
func Union(a, b geom.Geometry, opts ...geomopts.Func) (geom.Geometry, error) {
	return overlay.Compute(overlay.Union, a, b, options(opts...))
}

// Difference returns the points of a that are not in b.
func Difference(a, b geom.Geometry, opts ...geomopts.Func) (geom.Geometry, error) {
	return overlay.Compute(overlay.Difference, a, b, options(opts...))
}

// SymDifference returns the points belonging to exactly one of a or b.
func SymDifference(a, b geom.Geometry, opts ...geomopts.Func) (geom.Geometry, error) {
	return overlay.Compute(overlay.SymDifference, a, b, options(opts...))
}

// UnaryUnion dissolves every element of a Multi*/GeometryCollection
// input into a single non-overlapping result, folding Union pairwise
// across its components. A non-collection geometry is returned
// unchanged (it is already its own union). This is also the mechanism
// MakeValid uses to repair an invalid Polygon/MultiPolygon: unioning a
// self-intersecting shape against itself renodes it at every
// self-crossing and reassembles consistent rings, the same effect a
// zero-width buffer has in other engines.
func UnaryUnion(g geom.Geometry, opts ...geomopts.Func) (geom.Geometry, error) {
	parts := flattenForUnion(g)
	if len(parts) == 0 {
		return g, nil
	}
	o := options(opts...)
	result := parts[0]
	for _, p := range parts[1:] {
		merged, err := overlay.Compute(overlay.Union, result, p, o)
		if err != nil {
			return nil, err
		}
		result = merged
	}
	return result, nil
}

func flattenForUnion(g geom.Geometry) []geom.Geometry {
	switch v := g.(type) {
	case geom.MultiPoint:
		out := make([]geom.Geometry, 0, v.NumGeometries())
		for i := 0; i < v.NumGeometries(); i++ {
			out = append(out, v.GeometryN(i))
		}
		return out
	case geom.MultiLineString:
		out := make([]geom.Geometry, 0, v.NumGeometries())
		for i := 0; i < v.NumGeometries(); i++ {
			out = append(out, v.GeometryN(i))
		}
		return out
	case geom.MultiPolygon:
		out := make([]geom.Geometry, 0, v.NumGeometries())
		for i := 0; i < v.NumGeometries(); i++ {
			out = append(out, v.GeometryN(i))
		}
		return out
	case geom.GeometryCollection:
		var out []geom.Geometry
		for i := 0; i < v.NumGeometries(); i++ {
			out = append(out, flattenForUnion(v.GeometryN(i))...)
		}
		return out
	default:
		return []geom.Geometry{g}
	}
}

// MakeValid repairs a structurally invalid Polygon or MultiPolygon by
// unioning it with itself (see UnaryUnion); every other geometry type
// has no structural validity constraint in this engine and is returned
// unchanged.
func MakeValid(g geom.Geometry, opts ...geomopts.Func) (geom.Geometry, error) {
	switch g.(type) {
	case geom.Polygon, geom.MultiPolygon:
		return overlay.Compute(overlay.Union, g, g, options(opts...))
	default:
		return g, nil
	}
}

// IsValid reports whether g satisfies this engine's structural
// validity rules.
func IsValid(g geom.Geometry) error {
	return geom.IsValid(g)
}

// IsSimple reports whether g has no anomalous self-intersection.
func IsSimple(g geom.Geometry) bool {
	return geom.IsSimple(g)
}

// ConvexHull returns the smallest convex geometry enclosing every
// point of g.
func ConvexHull(g geom.Geometry) geom.Geometry {
	return geom.ConvexHull(geom.NewGeometryFactory(nil), g)
}

// Centroid returns g's center of mass.
func Centroid(g geom.Geometry) coordinate.Coordinate {
	return geom.Centroid(g)
}

// InteriorPoint returns a point on g, except in the areal fallback
// case described at geom.InteriorPoint.
func InteriorPoint(g geom.Geometry) coordinate.Coordinate {
	return geom.InteriorPoint(g)
}

// Boundary returns g's boundary per the OGC Simple Features rules.
func Boundary(g geom.Geometry) geom.Geometry {
	return g.Boundary()
}

// Distance returns the minimum distance between a and b as computed by
// geom.Distance: 0 when their segments or points cross or touch; a
// geometry wholly inside a polygon is measured to the polygon's rings.
func Distance(a, b geom.Geometry) float64 {
	return geom.Distance(a, b)
}

// NearestPoints returns one point from a and one from b realizing
// Distance(a, b).
func NearestPoints(a, b geom.Geometry) (coordinate.Coordinate, coordinate.Coordinate) {
	return geom.NearestPoints(a, b)
}

// Prepare builds a cached, indexed view of g suitable for running many
// predicate tests against it cheaply (§4.7). The returned value is a
// read-only snapshot: mutate g through a fresh Geometry and Prepare
// again rather than reusing the cache.
func Prepare(g geom.Geometry) prepared.Geometry {
	return prepared.Prepare(g)
}
