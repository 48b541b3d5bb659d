package prepared

import (
	"github.com/geos2d/core/coordinate"
	"github.com/geos2d/core/geom"
	"github.com/geos2d/core/geomopts"
	"github.com/geos2d/core/index"
	"github.com/geos2d/core/predicate"
	"github.com/geos2d/core/relate"
)

// preparedPolygon caches one index.IndexedPointInAreaLocator per
// component of a Polygon or MultiPolygon, so testing it against a
// Point or MultiPoint operand is a handful of indexed lookups instead
// of relate.Compute's full noding pipeline. Any other operand shape
// falls back to relate.Compute; a fast path only exists for the
// point-in-area query this package's index actually answers.
type preparedPolygon struct {
	g        geom.Geometry
	locators []*index.IndexedPointInAreaLocator
}

func newPreparedPolygon(g geom.Geometry, polys []geom.Polygon) *preparedPolygon {
	p := &preparedPolygon{g: g}
	for _, poly := range polys {
		if poly.IsEmpty() {
			continue
		}
		shell := sequenceCoords(poly.Shell().CoordinateSequence())
		holes := make([][]coordinate.Coordinate, poly.NumHoles())
		for i := 0; i < poly.NumHoles(); i++ {
			holes[i] = sequenceCoords(poly.HoleN(i).CoordinateSequence())
		}
		p.locators = append(p.locators, index.NewIndexedPointInAreaLocator(shell, holes))
	}
	return p
}

func sequenceCoords(seq coordinate.Sequence) []coordinate.Coordinate {
	out := make([]coordinate.Coordinate, seq.Size())
	for i := 0; i < seq.Size(); i++ {
		out[i] = seq.Get(i)
	}
	return out
}

func (p *preparedPolygon) Base() geom.Geometry { return p.g }

// locate resolves pt against whichever component locator claims it:
// an Interior hit from any component wins outright, a Boundary hit is
// remembered in case no component claims the point as Interior. This
// is the multi-polygon analogue of geom.Polygon.ContainsPoint, which
// only ever has one component to ask.
func (p *preparedPolygon) locate(pt coordinate.Coordinate) predicate.Location {
	best := predicate.Exterior
	for _, l := range p.locators {
		switch l.Locate(pt) {
		case predicate.Interior:
			return predicate.Interior
		case predicate.Boundary:
			best = predicate.Boundary
		}
	}
	return best
}

func puntalCoords(g geom.Geometry) ([]coordinate.Coordinate, bool) {
	switch v := g.(type) {
	case geom.Point:
		if v.IsEmpty() {
			return nil, true
		}
		return []coordinate.Coordinate{v.Coordinate()}, true
	case geom.MultiPoint:
		out := make([]coordinate.Coordinate, v.NumGeometries())
		for i := range out {
			out[i] = v.GeometryN(i).Coordinate()
		}
		return out, true
	default:
		return nil, false
	}
}

func (p *preparedPolygon) Contains(other geom.Geometry, opts geomopts.Options) (bool, error) {
	if pts, ok := puntalCoords(other); ok {
		if len(pts) == 0 {
			return false, nil
		}
		for _, pt := range pts {
			if p.locate(pt) != predicate.Interior {
				return false, nil
			}
		}
		return true, nil
	}
	return relate.Contains(p.g, other, opts)
}

func (p *preparedPolygon) Covers(other geom.Geometry, opts geomopts.Options) (bool, error) {
	if pts, ok := puntalCoords(other); ok {
		if len(pts) == 0 {
			return false, nil
		}
		for _, pt := range pts {
			if p.locate(pt) == predicate.Exterior {
				return false, nil
			}
		}
		return true, nil
	}
	return relate.Covers(p.g, other, opts)
}

func (p *preparedPolygon) Intersects(other geom.Geometry, opts geomopts.Options) (bool, error) {
	if pts, ok := puntalCoords(other); ok {
		for _, pt := range pts {
			if p.locate(pt) != predicate.Exterior {
				return true, nil
			}
		}
		return false, nil
	}
	if !p.g.Envelope().Intersects(other.Envelope()) {
		return false, nil
	}
	return relate.Intersects(p.g, other, opts)
}

func (p *preparedPolygon) Disjoint(other geom.Geometry, opts geomopts.Options) (bool, error) {
	hit, err := p.Intersects(other, opts)
	if err != nil {
		return false, err
	}
	return !hit, nil
}

// Within and CoveredBy ask whether the prepared polygon lies inside
// other: the index built over this polygon's own rings doesn't help
// answer a question about the other operand's interior, so both fall
// back to relate.Compute unaccelerated.
func (p *preparedPolygon) Within(other geom.Geometry, opts geomopts.Options) (bool, error) {
	return relate.Within(p.g, other, opts)
}

func (p *preparedPolygon) CoveredBy(other geom.Geometry, opts geomopts.Options) (bool, error) {
	return relate.CoveredBy(p.g, other, opts)
}
