package geom

import (
	"github.com/geos2d/core/coordinate"
	"github.com/geos2d/core/predicate"
)

// Centroid returns g's center of mass: the point-average for a puntal
// geometry, the length-weighted midpoint average for a lineal one, and
// the area-weighted centroid (Polygon.Centroid) for an areal one. A
// GeometryCollection or Multi* mixing dimensions weights by the
// highest dimension present, matching the OGC rule that the centroid
// of a mixed collection is that of its highest-dimension components.
func Centroid(g Geometry) coordinate.Coordinate {
	switch g.Dimension() {
	case DimSurface:
		return arealCentroid(g)
	case DimCurve:
		return linealCentroid(g)
	default:
		return puntalCentroid(g)
	}
}

func arealCentroid(g Geometry) coordinate.Coordinate {
	var cx, cy, totalArea float64
	var walk func(Geometry)
	walk = func(g Geometry) {
		switch v := g.(type) {
		case Polygon:
			if v.IsEmpty() {
				return
			}
			a := v.Area()
			c := v.Centroid()
			cx += c.X * a
			cy += c.Y * a
			totalArea += a
		case MultiPolygon:
			for i := 0; i < v.NumGeometries(); i++ {
				walk(v.GeometryN(i))
			}
		case GeometryCollection:
			for i := 0; i < v.NumGeometries(); i++ {
				if v.GeometryN(i).Dimension() == DimSurface {
					walk(v.GeometryN(i))
				}
			}
		}
	}
	walk(g)
	if totalArea == 0 {
		env := g.Envelope()
		return coordinate.NewXY(env.CenterX(), env.CenterY())
	}
	return coordinate.NewXY(cx/totalArea, cy/totalArea)
}

func linealCentroid(g Geometry) coordinate.Coordinate {
	var cx, cy, totalLen float64
	var walk func(Geometry)
	walk = func(g Geometry) {
		switch v := g.(type) {
		case LineString:
			seq := v.CoordinateSequence()
			for i := 0; i < seq.Size()-1; i++ {
				a, b := seq.Get(i), seq.Get(i+1)
				segLen := a.Distance(b)
				cx += (a.X + b.X) / 2 * segLen
				cy += (a.Y + b.Y) / 2 * segLen
				totalLen += segLen
			}
		case MultiLineString:
			for i := 0; i < v.NumGeometries(); i++ {
				walk(v.GeometryN(i))
			}
		case GeometryCollection:
			for i := 0; i < v.NumGeometries(); i++ {
				if v.GeometryN(i).Dimension() == DimCurve {
					walk(v.GeometryN(i))
				}
			}
		}
	}
	walk(g)
	if totalLen == 0 {
		env := g.Envelope()
		return coordinate.NewXY(env.CenterX(), env.CenterY())
	}
	return coordinate.NewXY(cx/totalLen, cy/totalLen)
}

func puntalCentroid(g Geometry) coordinate.Coordinate {
	pts := collectCoordinates(g)
	if len(pts) == 0 {
		env := g.Envelope()
		return coordinate.NewXY(env.CenterX(), env.CenterY())
	}
	var sx, sy float64
	for _, p := range pts {
		sx += p.X
		sy += p.Y
	}
	n := float64(len(pts))
	return coordinate.NewXY(sx/n, sy/n)
}

// InteriorPoint returns a point on g itself, apart from the areal
// fallback described below (unlike Centroid, which for a non-convex
// shape may fall outside it): for an
// areal geometry, a point found by polygonInteriorPoint on its largest
// component; for a lineal one, the middle vertex of the longest
// component; for a puntal one, its first point. The areal search is
// not exhaustive: when it finds no interior point it returns the
// component's envelope centre, which may lie outside the polygon.
func InteriorPoint(g Geometry) coordinate.Coordinate {
	switch v := g.(type) {
	case Polygon:
		return polygonInteriorPoint(v)
	case MultiPolygon:
		if v.IsEmpty() {
			return Centroid(g)
		}
		largest := v.GeometryN(0)
		for i := 1; i < v.NumGeometries(); i++ {
			if v.GeometryN(i).Area() > largest.Area() {
				largest = v.GeometryN(i)
			}
		}
		return polygonInteriorPoint(largest)
	case LineString:
		seq := v.CoordinateSequence()
		if seq.Size() == 0 {
			return Centroid(g)
		}
		return seq.Get(seq.Size() / 2)
	case MultiLineString:
		if v.IsEmpty() {
			return Centroid(g)
		}
		longest := v.GeometryN(0)
		for i := 1; i < v.NumGeometries(); i++ {
			if v.GeometryN(i).Length() > longest.Length() {
				longest = v.GeometryN(i)
			}
		}
		seq := longest.CoordinateSequence()
		return seq.Get(seq.Size() / 2)
	case Point:
		return v.Coordinate()
	case MultiPoint:
		if v.IsEmpty() {
			return Centroid(g)
		}
		return v.GeometryN(0).Coordinate()
	default:
		return Centroid(g)
	}
}

// polygonInteriorPoint returns p's centroid when that lies in p's
// interior. Otherwise it tests points on the vertical line through the
// envelope's centre X, at rows stepping outward from the envelope's
// centre Y by 1/64 of its height, and returns the first one in the
// interior. If none is, it returns the envelope centre, which is then
// not in p's interior.
func polygonInteriorPoint(p Polygon) coordinate.Coordinate {
	if p.IsEmpty() {
		env := p.Envelope()
		return coordinate.NewXY(env.CenterX(), env.CenterY())
	}
	env := p.Envelope()
	midY := env.CenterY()
	c := p.Centroid()
	if p.ContainsPoint(c) == predicate.Interior {
		return c
	}

	step := env.Height() / 64
	if step == 0 {
		step = env.Width() / 64
	}
	for offset := 0.0; offset <= env.Height()/2; offset += step {
		for _, y := range []float64{midY + offset, midY - offset} {
			if pt, ok := scanlineInterior(p, y, env); ok {
				return pt
			}
		}
	}
	return coordinate.NewXY(env.CenterX(), midY)
}

func scanlineInterior(p Polygon, y float64, env interface {
	MinX() float64
	MaxX() float64
}) (coordinate.Coordinate, bool) {
	mid := coordinate.NewXY((env.MinX()+env.MaxX())/2, y)
	if p.ContainsPoint(mid) == predicate.Interior {
		return mid, true
	}
	return coordinate.Coordinate{}, false
}
