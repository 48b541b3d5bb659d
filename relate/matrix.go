// Package relate implements the DE-9IM computation and predicate
// shortcuts: given two geometries, walk their
// labelled intersection graph (package planargraph) and the location
// of each geometry's components relative to the other to fill in the
// 3x3 Dimensionally-Extended 9-Intersection Matrix, then answer the
// named topological predicates from it.
package relate

import (
	"fmt"
	"strings"

	"github.com/geos2d/core/planargraph"
)

// dim is a DE-9IM cell value: the dimension of the intersection of two
// locations (Interior/Boundary/Exterior) of the two geometries, or
// DimFalse (-1, rendered 'F') if they never intersect.
type dim int8

const (
	DimFalse dim = -1
	Dim0     dim = 0
	Dim1     dim = 1
	Dim2     dim = 2
)

func (d dim) rune() byte {
	switch d {
	case Dim0:
		return '0'
	case Dim1:
		return '1'
	case Dim2:
		return '2'
	default:
		return 'F'
	}
}

// row/col index the matrix by Interior(0)/Boundary(1)/Exterior(2).
const (
	rowInterior = 0
	rowBoundary = 1
	rowExterior = 2
)

func locIndex(l planargraph.Loc) int {
	switch l {
	case planargraph.Interior:
		return rowInterior
	case planargraph.Boundary:
		return rowBoundary
	default:
		return rowExterior
	}
}

// Matrix is the 3x3 DE-9IM: im[locA][locB] is the dimension of the
// intersection of A's locA component with B's locB component.
type Matrix struct {
	im [3][3]dim
}

// NewMatrix returns a matrix with every cell set to DimFalse.
func NewMatrix() *Matrix {
	m := &Matrix{}
	for i := range m.im {
		for j := range m.im[i] {
			m.im[i][j] = DimFalse
		}
	}
	return m
}

// Set records an intersection of dimension d between A's location locA
// and B's location locB, keeping the maximum dimension seen for that
// cell: im[loc(A), loc(B)] = max(im[loc(A), loc(B)], d).
func (m *Matrix) Set(locA, locB planargraph.Loc, d dim) {
	i, j := locIndex(locA), locIndex(locB)
	if d > m.im[i][j] {
		m.im[i][j] = d
	}
}

// Get returns the recorded dimension for (locA, locB).
func (m *Matrix) Get(locA, locB planargraph.Loc) dim {
	return m.im[locIndex(locA)][locIndex(locB)]
}

// String renders the matrix as the standard 9-character DE-9IM string,
// row-major over (Interior, Boundary, Exterior) x (Interior, Boundary,
// Exterior).
func (m *Matrix) String() string {
	var b strings.Builder
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			b.WriteByte(m.im[i][j].rune())
		}
	}
	return b.String()
}

// Matches reports whether the matrix satisfies pattern, a 9-character
// DE-9IM pattern using 'F' (DimFalse), '0'..'2' (exact dimension), 'T'
// (any of 0,1,2: "true", i.e. the two locations do intersect), or '*'
// (don't care).
func (m *Matrix) Matches(pattern string) bool {
	if len(pattern) != 9 {
		panic(fmt.Sprintf("relate: DE-9IM pattern must be 9 characters, got %q", pattern))
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if !cellMatches(m.im[i][j], pattern[i*3+j]) {
				return false
			}
		}
	}
	return true
}

func cellMatches(d dim, p byte) bool {
	switch p {
	case '*':
		return true
	case 'T':
		return d >= Dim0
	case 'F':
		return d == DimFalse
	case '0':
		return d == Dim0
	case '1':
		return d == Dim1
	case '2':
		return d == Dim2
	default:
		panic(fmt.Sprintf("relate: invalid DE-9IM pattern character %q", p))
	}
}
