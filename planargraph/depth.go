package planargraph

// Depth tracks, for each of the two input geometries and each side
// (on/left/right) of a directed edge, an integer "depth": the number
// of area rings of that geometry a point just past that side is
// nested inside. Every DirectedEdge carries one; overlay (package
// overlay) decides which faces belong in the result from edge labels
// and does not read depths.
type Depth struct {
	// depth[geomIndex][side] where side indexes On=0, Left=1, Right=2.
	depth [2][3]int
}

// NullValue marks a side whose depth has not been determined.
const NullValue = -1

// NewDepth returns a Depth with every cell at NullValue.
func NewDepth() Depth {
	var d Depth
	for g := range d.depth {
		for s := range d.depth[g] {
			d.depth[g][s] = NullValue
		}
	}
	return d
}

func sideIndex(side Side) int {
	switch side {
	case Left:
		return 1
	case Right:
		return 2
	default:
		return 0
	}
}

// Get returns the recorded depth for geomIndex at side, or NullValue.
func (d Depth) Get(geomIndex int, side Side) int { return d.depth[geomIndex][sideIndex(side)] }

// Set records the depth for geomIndex at side.
func (d *Depth) Set(geomIndex int, side Side, depth int) { d.depth[geomIndex][sideIndex(side)] = depth }

// IsNull reports whether every cell for geomIndex is still NullValue.
func (d Depth) IsNull(geomIndex int) bool {
	for _, v := range d.depth[geomIndex] {
		if v != NullValue {
			return false
		}
	}
	return true
}

// NormalizeFromLabel sets this Depth's On/Left/Right cells for geomIndex
// from lbl's location label, translating Interior/Exterior/Boundary to
// the depth convention: Interior contributes depth 1, Exterior 0,
// Boundary leaves the side's prior delta in place (a boundary does not
// change which side of it is "more interior").
func (d *Depth) NormalizeFromLabel(geomIndex int, lbl Label) {
	fromLoc := func(loc Loc) int {
		switch loc {
		case Interior:
			return 1
		case Exterior:
			return 0
		default:
			return NullValue
		}
	}
	if v := fromLoc(lbl.Get(geomIndex, On)); v != NullValue {
		d.Set(geomIndex, On, v)
	}
	if v := fromLoc(lbl.Get(geomIndex, Left)); v != NullValue {
		d.Set(geomIndex, Left, v)
	}
	if v := fromLoc(lbl.Get(geomIndex, Right)); v != NullValue {
		d.Set(geomIndex, Right, v)
	}
}

// Delta returns the difference in depth between the right and left
// sides for geomIndex: a directed edge whose delta is non-zero bounds a
// face transition and is a candidate result boundary edge for an areal
// overlay operation.
func (d Depth) Delta(geomIndex int) int {
	return d.Get(geomIndex, Right) - d.Get(geomIndex, Left)
}
