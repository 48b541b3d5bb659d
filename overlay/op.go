// Package overlay computes the four boolean set operations over two
// geometries — intersection, union, difference, and symmetric
// difference — by noding both inputs together into a single labelled
// planar graph (package planargraph) and tracing the boundary of
// whichever faces the requested operation selects, the same two-phase
// "node once, classify faces, trace rings" design OverlayNG uses.
package overlay

import (
	"github.com/geos2d/core/planargraph"
)

// Op identifies one of the four DE-9IM-derived set operations overlay
// computes.
type Op int8

const (
	Intersection Op = iota
	Union
	Difference
	SymDifference
)

func (op Op) String() string {
	switch op {
	case Intersection:
		return "Intersection"
	case Union:
		return "Union"
	case Difference:
		return "Difference"
	case SymDifference:
		return "SymDifference"
	default:
		return "Unknown"
	}
}

// included reports whether a point with the given location in each
// input (true = interior of that input) belongs to op's result.
func included(op Op, in0, in1 bool) bool {
	switch op {
	case Intersection:
		return in0 && in1
	case Union:
		return in0 || in1
	case Difference:
		return in0 && !in1
	case SymDifference:
		return in0 != in1
	default:
		return false
	}
}

func isInterior(loc planargraph.Loc) bool { return loc == planargraph.Interior }
