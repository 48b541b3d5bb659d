package geom

import (
	"fmt"

	"github.com/geos2d/core/coordinate"
	"github.com/geos2d/core/envelope"
	"github.com/geos2d/core/predicate"
)

// Polygon is a planar surface bounded by one exterior shell and zero or
// more interior holes, each a LinearRing. Holes must lie within the
// shell and must not overlap each other; those constraints are part of
// IsValid rather than enforced at construction, matching the OGC
// Simple Features model.
type Polygon struct {
	shell LinearRing
	holes []LinearRing
}

// CreatePolygon builds a polygon from a shell and holes. An empty
// shell with no holes is the empty polygon.
func (f *GeometryFactory) CreatePolygon(shell LinearRing, holes []LinearRing) Polygon {
	return Polygon{shell: shell, holes: holes}
}

// Shell returns the polygon's exterior ring.
func (p Polygon) Shell() LinearRing { return p.shell }

// NumHoles returns the number of interior rings.
func (p Polygon) NumHoles() int { return len(p.holes) }

// HoleN returns the i'th interior ring.
func (p Polygon) HoleN(i int) LinearRing { return p.holes[i] }

// Holes returns the polygon's interior rings.
func (p Polygon) Holes() []LinearRing { return p.holes }

// Dimension returns DimSurface, or DimEmpty if empty.
func (p Polygon) Dimension() Dimension {
	if p.IsEmpty() {
		return DimEmpty
	}
	return DimSurface
}

// Envelope returns the shell's bounding envelope (holes never extend
// beyond a valid shell).
func (p Polygon) Envelope() envelope.Envelope { return p.shell.Envelope() }

// IsEmpty reports whether the polygon's shell has no coordinates.
func (p Polygon) IsEmpty() bool { return p.shell.IsEmpty() }

// Boundary returns the polygon's rings (shell + holes) as a
// MultiLineString, per the OGC rule that a surface's boundary is the
// set of curves bounding it.
func (p Polygon) Boundary() Geometry {
	if p.IsEmpty() {
		return MultiLineString{}
	}
	lines := make([]LineString, 0, 1+len(p.holes))
	lines = append(lines, p.shell.ls)
	for _, h := range p.holes {
		lines = append(lines, h.ls)
	}
	return MultiLineString{lines: lines}
}

// GeometryType returns "Polygon".
func (p Polygon) GeometryType() string { return "Polygon" }

// Area returns the polygon's area: the shell's area minus the sum of
// its holes' areas.
func (p Polygon) Area() float64 {
	total := p.shell.Area()
	for _, h := range p.holes {
		total -= h.Area()
	}
	return total
}

// Centroid returns the area-weighted centroid of the polygon, computed
// from the shell and holes by the standard signed-area centroid
// formula (each hole's contribution is subtracted using its own signed
// area, so orientation need not be normalized beforehand).
func (p Polygon) Centroid() coordinate.Coordinate {
	cx, cy, area := ringCentroidContribution(p.shell)
	for _, h := range p.holes {
		hx, hy, ha := ringCentroidContribution(h)
		cx -= hx
		cy -= hy
		area -= ha
	}
	if area == 0 {
		env := p.shell.Envelope()
		return coordinate.NewXY(env.CenterX(), env.CenterY())
	}
	return coordinate.NewXY(cx/(3*area), cy/(3*area))
}

func ringCentroidContribution(r LinearRing) (cx, cy, area float64) {
	seq := r.CoordinateSequence()
	n := seq.Size()
	for i := 0; i < n-1; i++ {
		a, b := seq.Get(i), seq.Get(i+1)
		cross := a.X*b.Y - b.X*a.Y
		area += cross
		cx += (a.X + b.X) * cross
		cy += (a.Y + b.Y) * cross
	}
	return cx, cy, area / 2
}

// ContainsPoint reports pt's location relative to the polygon: Interior
// if inside the shell and outside every hole, Boundary if on the shell
// or any hole, Exterior otherwise.
func (p Polygon) ContainsPoint(pt coordinate.Coordinate) predicate.Location {
	shellLoc := p.shell.ContainsPoint(pt)
	if shellLoc != predicate.Interior {
		return shellLoc
	}
	for _, h := range p.holes {
		holeLoc := h.ContainsPoint(pt)
		switch holeLoc {
		case predicate.Interior:
			return predicate.Exterior
		case predicate.Boundary:
			return predicate.Boundary
		}
	}
	return predicate.Interior
}

// IsValid reports whether the polygon satisfies the OGC validity rules
// this engine enforces: the shell and every hole are
// simple, every hole lies within the shell, and no two rings (shell or
// hole) cross one another. This is a structural check; it does not
// repair invalid geometries (see the MakeValid operation).
func (p Polygon) IsValid() error {
	if p.IsEmpty() {
		return nil
	}
	if !p.shell.IsSimple() {
		return fmt.Errorf("geom: polygon shell is not simple")
	}
	for i, h := range p.holes {
		if !h.IsSimple() {
			return fmt.Errorf("geom: polygon hole %d is not simple", i)
		}
		if ringsCross(p.shell, h) {
			return fmt.Errorf("geom: polygon hole %d crosses the shell", i)
		}
		for j := 0; j < h.NumPoints(); j++ {
			if p.shell.ContainsPoint(h.CoordinateSequence().Get(j)) == predicate.Exterior {
				return fmt.Errorf("geom: polygon hole %d lies outside the shell", i)
			}
		}
	}
	for i := 0; i < len(p.holes); i++ {
		for j := i + 1; j < len(p.holes); j++ {
			if ringsCross(p.holes[i], p.holes[j]) {
				return fmt.Errorf("geom: polygon holes %d and %d overlap", i, j)
			}
		}
	}
	return nil
}

func ringsCross(a, b LinearRing) bool {
	aSeq, bSeq := a.CoordinateSequence(), b.CoordinateSequence()
	for i := 0; i < aSeq.Size()-1; i++ {
		a1, a2 := aSeq.Get(i), aSeq.Get(i+1)
		for j := 0; j < bSeq.Size()-1; j++ {
			b1, b2 := bSeq.Get(j), bSeq.Get(j+1)
			var li predicate.LineIntersector
			li.Compute(a1, a2, b1, b2)
			if li.HasIntersection() && li.IsProper() {
				return true
			}
		}
	}
	return false
}

// String renders the polygon in WKT-like form.
func (p Polygon) String() string {
	if p.IsEmpty() {
		return "POLYGON EMPTY"
	}
	s := "POLYGON (" + sequenceWKT(p.shell.CoordinateSequence())
	for _, h := range p.holes {
		s += ", " + sequenceWKT(h.CoordinateSequence())
	}
	return s + ")"
}
