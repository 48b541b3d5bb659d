package geom

import (
	"fmt"

	"github.com/geos2d/core/predicate"
)

// IsValid reports whether g satisfies the OGC structural validity
// rules this engine enforces for its type: Polygon delegates to
// Polygon.IsValid; a MultiPolygon additionally requires that no two
// elements' shells cross and that no element's first shell vertex lies
// in another element's interior; every other type
// has no structural constraint beyond what its constructor already
// enforces, so it is always valid.
func IsValid(g Geometry) error {
	switch v := g.(type) {
	case Polygon:
		return v.IsValid()
	case MultiPolygon:
		for i := 0; i < v.NumGeometries(); i++ {
			if err := v.GeometryN(i).IsValid(); err != nil {
				return fmt.Errorf("geom: polygon %d: %w", i, err)
			}
		}
		for i := 0; i < v.NumGeometries(); i++ {
			for j := i + 1; j < v.NumGeometries(); j++ {
				if polygonsOverlapOrCross(v.GeometryN(i), v.GeometryN(j)) {
					return fmt.Errorf("geom: polygons %d and %d overlap", i, j)
				}
			}
		}
		return nil
	default:
		return nil
	}
}

func polygonsOverlapOrCross(a, b Polygon) bool {
	if a.IsEmpty() || b.IsEmpty() {
		return false
	}
	if !a.Envelope().Intersects(b.Envelope()) {
		return false
	}
	if ringsCross(a.Shell(), b.Shell()) {
		return true
	}
	la := a.ContainsPoint(b.Shell().CoordinateSequence().Get(0))
	lb := b.ContainsPoint(a.Shell().CoordinateSequence().Get(0))
	return la == predicate.Interior || lb == predicate.Interior ||
		(la != predicate.Exterior && lb != predicate.Exterior)
}

// IsSimple reports whether g has no anomalous self-intersection: a
// LineString/LinearRing delegates to its own IsSimple, a MultiPoint is
// simple when it has no duplicate point, and a Polygon/MultiPolygon or
// GeometryCollection's simplicity reduces to each component's own
// (component-to-component interaction is covered by IsValid instead).
func IsSimple(g Geometry) bool {
	switch v := g.(type) {
	case LineString:
		return v.IsSimple()
	case LinearRing:
		return v.IsSimple()
	case Polygon:
		if v.IsEmpty() || !v.Shell().IsSimple() {
			return v.IsEmpty()
		}
		for _, h := range v.Holes() {
			if !h.IsSimple() {
				return false
			}
		}
		return true
	case MultiPolygon:
		for i := 0; i < v.NumGeometries(); i++ {
			if !IsSimple(v.GeometryN(i)) {
				return false
			}
		}
		return true
	case MultiPoint:
		seen := map[xy]bool{}
		for i := 0; i < v.NumGeometries(); i++ {
			c := v.GeometryN(i).Coordinate()
			key := xy{c.X, c.Y}
			if seen[key] {
				return false
			}
			seen[key] = true
		}
		return true
	case MultiLineString:
		for i := 0; i < v.NumGeometries(); i++ {
			if !v.GeometryN(i).IsSimple() {
				return false
			}
		}
		return true
	case GeometryCollection:
		for i := 0; i < v.NumGeometries(); i++ {
			if !IsSimple(v.GeometryN(i)) {
				return false
			}
		}
		return true
	default:
		return true
	}
}
