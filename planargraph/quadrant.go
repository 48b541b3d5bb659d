package planargraph

import (
	"github.com/geos2d/core/coordinate"
	"github.com/geos2d/core/predicate"
)

// Quadrant classifies the direction of a vector out of the origin into
// one of four 90-degree sectors, used as the primary key when sorting
// DirectedEdges around a node.
type Quadrant int8

const (
	// QuadrantNE: dx >= 0, dy >= 0 (excluding the zero vector).
	QuadrantNE Quadrant = iota
	// QuadrantNW: dx < 0, dy >= 0.
	QuadrantNW
	// QuadrantSW: dx < 0, dy < 0.
	QuadrantSW
	// QuadrantSE: dx >= 0, dy < 0.
	QuadrantSE
)

// QuadrantOf returns the quadrant of the vector (dx, dy). Both must not
// be zero simultaneously.
func QuadrantOf(dx, dy float64) Quadrant {
	switch {
	case dx >= 0 && dy >= 0:
		return QuadrantNE
	case dx < 0 && dy >= 0:
		return QuadrantNW
	case dx < 0 && dy < 0:
		return QuadrantSW
	default:
		return QuadrantSE
	}
}

// QuadrantOfEdge returns the quadrant of the directed edge from a to b.
func QuadrantOfEdge(a, b coordinate.Coordinate) Quadrant {
	return QuadrantOf(b.X-a.X, b.Y-a.Y)
}

// CompareAngle orders two directed vectors out of a common origin by
// angle, without computing an angle: quadrant is the primary key, and
// within a quadrant the sign of the cross product decides which vector
// is more counterclockwise. This is a total order equivalent to
// comparing atan2(dy,dx) but exact for all finite inputs.
func CompareAngle(aq Quadrant, adx, ady float64, bq Quadrant, bdx, bdy float64) int {
	if aq != bq {
		if aq < bq {
			return -1
		}
		return 1
	}
	switch predicate.OrientationIndex(coordinate.NewXY(0, 0), coordinate.NewXY(adx, ady), coordinate.NewXY(bdx, bdy)) {
	case predicate.CounterClockwise:
		return -1 // a is clockwise of b within the quadrant -> a sorts first
	case predicate.Clockwise:
		return 1
	default:
		return 0
	}
}
