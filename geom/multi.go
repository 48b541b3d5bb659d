package geom

import (
	"github.com/geos2d/core/envelope"
)

// MultiPoint is a collection of Points.
type MultiPoint struct {
	points []Point
}

// CreateMultiPoint builds a MultiPoint from a slice of points.
func (f *GeometryFactory) CreateMultiPoint(points []Point) MultiPoint {
	return MultiPoint{points: points}
}

// NumGeometries returns the number of elements.
func (m MultiPoint) NumGeometries() int { return len(m.points) }

// GeometryN returns the i'th point.
func (m MultiPoint) GeometryN(i int) Point { return m.points[i] }

// Dimension returns DimPoint, or DimEmpty if empty.
func (m MultiPoint) Dimension() Dimension {
	if m.IsEmpty() {
		return DimEmpty
	}
	return DimPoint
}

// Envelope returns the bounding envelope of all points.
func (m MultiPoint) Envelope() envelope.Envelope {
	env := envelope.Null()
	for _, p := range m.points {
		env = env.ExpandToInclude(p.Envelope())
	}
	return env
}

// IsEmpty reports whether the collection has no elements.
func (m MultiPoint) IsEmpty() bool { return len(m.points) == 0 }

// Boundary returns an empty GeometryCollection: a MultiPoint's boundary
// is always empty.
func (m MultiPoint) Boundary() Geometry { return GeometryCollection{} }

// GeometryType returns "MultiPoint".
func (m MultiPoint) GeometryType() string { return "MultiPoint" }

// MultiLineString is a collection of LineStrings.
type MultiLineString struct {
	lines []LineString
}

// CreateMultiLineString builds a MultiLineString from a slice of line
// strings.
func (f *GeometryFactory) CreateMultiLineString(lines []LineString) MultiLineString {
	return MultiLineString{lines: lines}
}

// NumGeometries returns the number of elements.
func (m MultiLineString) NumGeometries() int { return len(m.lines) }

// GeometryN returns the i'th line string.
func (m MultiLineString) GeometryN(i int) LineString { return m.lines[i] }

// Dimension returns DimCurve, or DimEmpty if empty.
func (m MultiLineString) Dimension() Dimension {
	if m.IsEmpty() {
		return DimEmpty
	}
	return DimCurve
}

// Envelope returns the bounding envelope of all line strings.
func (m MultiLineString) Envelope() envelope.Envelope {
	env := envelope.Null()
	for _, l := range m.lines {
		env = env.ExpandToInclude(l.Envelope())
	}
	return env
}

// IsEmpty reports whether the collection has no elements.
func (m MultiLineString) IsEmpty() bool { return len(m.lines) == 0 }

// IsClosed reports whether every element line is closed. An empty
// collection is not closed (mirrors LineString.IsClosed's convention).
func (m MultiLineString) IsClosed() bool {
	if len(m.lines) == 0 {
		return false
	}
	for _, l := range m.lines {
		if !l.IsClosed() {
			return false
		}
	}
	return true
}

// Boundary returns the "mod 2" boundary points of a MultiLineString:
// an endpoint shared by an even number of element line strings cancels
// out of the boundary, matching the OGC rule for curve
// boundaries generalized across the collection.
func (m MultiLineString) Boundary() Geometry {
	counts := map[[2]float64]int{}
	coordOf := map[[2]float64]Point{}
	for _, l := range m.lines {
		if l.IsClosed() || l.IsEmpty() {
			continue
		}
		for _, p := range []Point{l.StartPoint(), l.EndPoint()} {
			key := [2]float64{p.X(), p.Y()}
			counts[key]++
			coordOf[key] = p
		}
	}
	var pts []Point
	for key, c := range counts {
		if c%2 == 1 {
			pts = append(pts, coordOf[key])
		}
	}
	return MultiPoint{points: pts}
}

// GeometryType returns "MultiLineString".
func (m MultiLineString) GeometryType() string { return "MultiLineString" }

// MultiPolygon is a collection of Polygons whose interiors must not
// overlap (enforced by IsValid, not at construction).
type MultiPolygon struct {
	polygons []Polygon
}

// CreateMultiPolygon builds a MultiPolygon from a slice of polygons.
func (f *GeometryFactory) CreateMultiPolygon(polygons []Polygon) MultiPolygon {
	return MultiPolygon{polygons: polygons}
}

// NumGeometries returns the number of elements.
func (m MultiPolygon) NumGeometries() int { return len(m.polygons) }

// GeometryN returns the i'th polygon.
func (m MultiPolygon) GeometryN(i int) Polygon { return m.polygons[i] }

// Dimension returns DimSurface, or DimEmpty if empty.
func (m MultiPolygon) Dimension() Dimension {
	if m.IsEmpty() {
		return DimEmpty
	}
	return DimSurface
}

// Envelope returns the bounding envelope of all polygons.
func (m MultiPolygon) Envelope() envelope.Envelope {
	env := envelope.Null()
	for _, p := range m.polygons {
		env = env.ExpandToInclude(p.Envelope())
	}
	return env
}

// IsEmpty reports whether the collection has no elements.
func (m MultiPolygon) IsEmpty() bool { return len(m.polygons) == 0 }

// Boundary returns every element polygon's boundary rings combined
// into one MultiLineString.
func (m MultiPolygon) Boundary() Geometry {
	var lines []LineString
	for _, p := range m.polygons {
		if p.IsEmpty() {
			continue
		}
		b := p.Boundary().(MultiLineString)
		lines = append(lines, b.lines...)
	}
	return MultiLineString{lines: lines}
}

// GeometryType returns "MultiPolygon".
func (m MultiPolygon) GeometryType() string { return "MultiPolygon" }

// Area returns the sum of the element polygons' areas.
func (m MultiPolygon) Area() float64 {
	total := 0.0
	for _, p := range m.polygons {
		total += p.Area()
	}
	return total
}

// GeometryCollection is a heterogeneous collection of geometries with
// no shared-boundary rules; it is the catch-all result type for
// operations whose output may mix dimensions.
type GeometryCollection struct {
	geometries []Geometry
}

// CreateGeometryCollection builds a collection from arbitrary
// geometries.
func (f *GeometryFactory) CreateGeometryCollection(geometries []Geometry) GeometryCollection {
	return GeometryCollection{geometries: geometries}
}

// NumGeometries returns the number of elements.
func (g GeometryCollection) NumGeometries() int { return len(g.geometries) }

// GeometryN returns the i'th element.
func (g GeometryCollection) GeometryN(i int) Geometry { return g.geometries[i] }

// Dimension returns the maximum dimension among the collection's
// elements, or DimEmpty if empty.
func (g GeometryCollection) Dimension() Dimension {
	max := DimEmpty
	for _, elem := range g.geometries {
		if elem.Dimension() > max {
			max = elem.Dimension()
		}
	}
	return max
}

// Envelope returns the bounding envelope of all elements.
func (g GeometryCollection) Envelope() envelope.Envelope {
	env := envelope.Null()
	for _, elem := range g.geometries {
		env = env.ExpandToInclude(elem.Envelope())
	}
	return env
}

// IsEmpty reports whether the collection has no elements.
func (g GeometryCollection) IsEmpty() bool { return len(g.geometries) == 0 }

// Boundary is undefined for a general GeometryCollection; it always returns an
// empty collection.
func (g GeometryCollection) Boundary() Geometry { return GeometryCollection{} }

// GeometryType returns "GeometryCollection".
func (g GeometryCollection) GeometryType() string { return "GeometryCollection" }
