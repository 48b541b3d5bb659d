package relate

import (
	"github.com/geos2d/core/envelope"
	"github.com/geos2d/core/geom"
)

// asRectangle reports whether p's shell is an axis-aligned rectangle
// with no holes: a closed 5-point ring (including the repeated closing
// vertex) whose edges are all axis-parallel. When true, p's envelope
// is exactly p's footprint, so Intersects/Contains against it can skip
// graph construction entirely.
func asRectangle(p geom.Polygon) (envelope.Envelope, bool) {
	if p.NumHoles() != 0 {
		return envelope.Null(), false
	}
	seq := p.Shell().CoordinateSequence()
	if seq.Size() != 5 {
		return envelope.Null(), false
	}
	for i := 0; i < 4; i++ {
		a, b := seq.Get(i), seq.Get(i+1)
		if a.X != b.X && a.Y != b.Y {
			return envelope.Null(), false
		}
	}
	return p.Envelope(), true
}

// RectangleIntersects tests whether a rectangular polygon r intersects
// g without building the intersection graph. The fast path settles the
// answer when g's envelope misses r's envelope (no intersection) or
// lies within it (g is inside the closed rectangle). When the envelopes
// only partly overlap, g may still miss r (e.g. a line passing outside
// a corner), so the fast path is inconclusive and the caller must fall
// back to Intersects.
func RectangleIntersects(r geom.Polygon, g geom.Geometry) (bool, bool) {
	env, ok := asRectangle(r)
	if !ok {
		return false, false
	}
	ge := g.Envelope()
	if !env.Intersects(ge) {
		return false, true
	}
	if env.Contains(ge) {
		return true, true
	}
	return false, false
}

// RectangleContains tests whether rectangular polygon r contains g
// without building the intersection graph, valid whenever g's envelope
// lies strictly within r's envelope (a rectangle's interior is exactly
// its open envelope, so full envelope containment implies point-set
// containment). When g's envelope merely touches r's boundary the fast
// path is inconclusive and the caller must fall back to Contains.
func RectangleContains(r geom.Polygon, g geom.Geometry) (bool, bool) {
	env, ok := asRectangle(r)
	if !ok {
		return false, false
	}
	ge := g.Envelope()
	if ge.IsNull() {
		return false, false
	}
	if strictlyInside(env, ge) {
		return true, true
	}
	return false, false
}

func strictlyInside(outer, inner envelope.Envelope) bool {
	return inner.MinX() > outer.MinX() && inner.MaxX() < outer.MaxX() &&
		inner.MinY() > outer.MinY() && inner.MaxY() < outer.MaxY()
}
