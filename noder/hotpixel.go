package noder

import (
	"math"

	"github.com/geos2d/core/coordinate"
	"github.com/geos2d/core/envelope"
	"github.com/geos2d/core/precision"
)

// HotPixel is a one-cell square around an input vertex or computed
// intersection point, at the scale of a fixed PrecisionModel: any
// segment passing within its safe envelope (the square reaching
// sqrt(2)/2 cell widths from the pixel's center on each side) must be
// snapped to the pixel's center.
type HotPixel struct {
	center   coordinate.Coordinate
	cellSize float64
	safeEnv  envelope.Envelope
}

// NewHotPixel builds the hot pixel centered at the precision-snapped
// location of pt under model.
func NewHotPixel(pt coordinate.Coordinate, model precision.Model) HotPixel {
	x, y := model.MakePreciseXY(pt.X, pt.Y)
	center := coordinate.NewXY(x, y)

	cellSize := model.GridSize()
	if cellSize <= 0 {
		cellSize = defaultFloatingCellSize
	}
	safeMargin := cellSize * math.Sqrt2 / 2
	safeEnv := envelope.FromPoint(center.X, center.Y).ExpandBy(safeMargin)

	return HotPixel{center: center, cellSize: cellSize, safeEnv: safeEnv}
}

// defaultFloatingCellSize is the pixel size used for hot pixels derived
// under a Floating precision model (no intrinsic grid spacing): a
// conservative epsilon-scale cell, just large enough to absorb
// floating-point noise without materially moving any vertex.
const defaultFloatingCellSize = 1e-8

// Center returns the pixel's snap target.
func (p HotPixel) Center() coordinate.Coordinate { return p.center }

// SafeEnvelope returns the expanded envelope used to find candidate
// segments via a spatial index.
func (p HotPixel) SafeEnvelope() envelope.Envelope { return p.safeEnv }

// Intersects reports whether segment p1-p2 passes close enough to this
// pixel that it must be snapped to the pixel's center: its envelope
// overlaps the pixel's safe envelope and the segment's distance to the
// center is within the safe margin.
func (p HotPixel) Intersects(p1, p2 coordinate.Coordinate) bool {
	segEnv := envelope.New(p1.X, p1.Y, p2.X, p2.Y)
	if !segEnv.Intersects(p.safeEnv) {
		return false
	}
	return distancePointToSegment(p.center, p1, p2) <= p.cellSize*math.Sqrt2/2
}

func distancePointToSegment(pt, a, b coordinate.Coordinate) float64 {
	if a.Eq(b) {
		return pt.Distance(a)
	}
	dir := b.Sub(a)
	len2 := dir.DotProduct(dir)
	t := pt.Sub(a).DotProduct(dir) / len2
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	proj := coordinate.NewXY(a.X+t*dir.X, a.Y+t*dir.Y)
	return pt.Distance(proj)
}
