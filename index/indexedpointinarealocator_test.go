package index_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/geos2d/core/coordinate"
	"github.com/geos2d/core/index"
	"github.com/geos2d/core/predicate"
)

func closedSquare(x0, y0, x1, y1 float64) []coordinate.Coordinate {
	return []coordinate.Coordinate{
		coordinate.NewXY(x0, y0), coordinate.NewXY(x1, y0),
		coordinate.NewXY(x1, y1), coordinate.NewXY(x0, y1),
		coordinate.NewXY(x0, y0),
	}
}

func TestIndexedPointInAreaLocator_ShellOnly(t *testing.T) {
	loc := index.NewIndexedPointInAreaLocator(closedSquare(0, 0, 10, 10), nil)

	assert.Equal(t, predicate.Interior, loc.Locate(coordinate.NewXY(5, 5)))
	assert.Equal(t, predicate.Exterior, loc.Locate(coordinate.NewXY(20, 20)))
	assert.Equal(t, predicate.Boundary, loc.Locate(coordinate.NewXY(0, 5)))
}

func TestIndexedPointInAreaLocator_WithHole(t *testing.T) {
	shell := closedSquare(0, 0, 10, 10)
	hole := closedSquare(4, 4, 6, 6)
	loc := index.NewIndexedPointInAreaLocator(shell, [][]coordinate.Coordinate{hole})

	assert.Equal(t, predicate.Interior, loc.Locate(coordinate.NewXY(1, 1)))
	assert.Equal(t, predicate.Exterior, loc.Locate(coordinate.NewXY(5, 5)))
	assert.Equal(t, predicate.Boundary, loc.Locate(coordinate.NewXY(4, 5)))
}
