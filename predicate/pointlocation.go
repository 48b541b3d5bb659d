package predicate

import (
	"math"

	"github.com/geos2d/core/coordinate"
)

// Location classifies a point's position relative to a geometry
//.
type Location int8

const (
	// Exterior: the point lies outside the geometry.
	Exterior Location = iota
	// Interior: the point lies in the geometry's interior.
	Interior
	// Boundary: the point lies on the geometry's boundary.
	Boundary
)

func (l Location) String() string {
	switch l {
	case Interior:
		return "Interior"
	case Boundary:
		return "Boundary"
	default:
		return "Exterior"
	}
}

// IsOnLine reports whether pt lies on the segment a-b, endpoints
// included.
func IsOnLine(pt, a, b coordinate.Coordinate) bool {
	if OrientationIndex(a, b, pt) != Collinear {
		return false
	}
	return isOnSegment(a, b, pt)
}

// LocatePointInRing determines pt's location relative to the closed
// ring described by coordinates ring (ring[0] == ring[len-1]), using
// the standard crossing-number (ray casting) algorithm: cast a
// horizontal ray from pt and count how many ring edges it crosses.
// The orientation test detects a point on an edge or vertex (reported
// as Boundary); the crossing position itself is computed by
// floating-point division.
//
// This follows the same ray-casting structure used throughout the
// pack's point-in-polygon helpers, generalized here to report Boundary
// explicitly rather than treating it as Interior.
func LocatePointInRing(pt coordinate.Coordinate, ring []coordinate.Coordinate) Location {
	if len(ring) < 4 {
		return Exterior
	}

	isInside := false
	n := len(ring)

	for i := 0; i < n-1; i++ {
		p1 := ring[i]
		p2 := ring[i+1]

		if IsOnLine(pt, p1, p2) {
			return Boundary
		}

		if (p1.Y > pt.Y) == (p2.Y > pt.Y) {
			continue
		}

		// Edge straddles pt's horizontal line; compute the x
		// coordinate where the edge crosses it and compare to pt.X.
		xCross := p1.X + (pt.Y-p1.Y)/(p2.Y-p1.Y)*(p2.X-p1.X)
		if pt.X < xCross {
			isInside = !isInside
		}
	}

	if isInside {
		return Interior
	}
	return Exterior
}

// LocatePointInRingIndexed is identical to LocatePointInRing but takes
// a monotone-chain-friendly closure for edge iteration, allowing the
// index layer to supply only the edges whose Y-range straddles pt
// without materializing a ring slice. edgeAt(i) must return the i'th of
// numEdges directed edges (p1, p2); edges need not be contiguous.
func LocatePointInRingIndexed(pt coordinate.Coordinate, numEdges int, edgeAt func(i int) (coordinate.Coordinate, coordinate.Coordinate)) Location {
	isInside := false

	for i := 0; i < numEdges; i++ {
		p1, p2 := edgeAt(i)

		if IsOnLine(pt, p1, p2) {
			return Boundary
		}

		if (p1.Y > pt.Y) == (p2.Y > pt.Y) {
			continue
		}

		xCross := p1.X + (pt.Y-p1.Y)/(p2.Y-p1.Y)*(p2.X-p1.X)
		if pt.X < xCross {
			isInside = !isInside
		}
	}

	if isInside {
		return Interior
	}
	return Exterior
}

// DistancePointToSegment returns the shortest Euclidean distance from
// pt to the closed segment a-b.
func DistancePointToSegment(pt, a, b coordinate.Coordinate) float64 {
	if a.Eq(b) {
		return pt.Distance(a)
	}

	dir := b.Sub(a)
	length2 := dir.DotProduct(dir)
	t := pt.Sub(a).DotProduct(dir) / length2
	t = math.Max(0, math.Min(1, t))

	proj := coordinate.NewXY(a.X+t*dir.X, a.Y+t*dir.Y)
	return pt.Distance(proj)
}
