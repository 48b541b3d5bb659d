package predicate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/geos2d/core/coordinate"
	"github.com/geos2d/core/predicate"
)

func TestLineIntersector_properCrossing(t *testing.T) {
	var li predicate.LineIntersector
	li.Compute(
		coordinate.NewXY(0, 0), coordinate.NewXY(2, 2),
		coordinate.NewXY(0, 2), coordinate.NewXY(2, 0),
	)

	assert.True(t, li.HasIntersection())
	assert.Equal(t, predicate.PointIntersection, li.Type())
	assert.True(t, li.IsProper())
	assert.Equal(t, 1, li.NumIntersections())
	assert.InDelta(t, 1.0, li.Intersection(0).X, 1e-9)
	assert.InDelta(t, 1.0, li.Intersection(0).Y, 1e-9)
}

func TestLineIntersector_disjointSegments(t *testing.T) {
	var li predicate.LineIntersector
	li.Compute(
		coordinate.NewXY(0, 0), coordinate.NewXY(1, 0),
		coordinate.NewXY(0, 5), coordinate.NewXY(1, 5),
	)

	assert.False(t, li.HasIntersection())
	assert.Equal(t, predicate.NoIntersection, li.Type())
}

func TestLineIntersector_parallelNonCollinear(t *testing.T) {
	var li predicate.LineIntersector
	li.Compute(
		coordinate.NewXY(0, 0), coordinate.NewXY(1, 1),
		coordinate.NewXY(0, 1), coordinate.NewXY(1, 2),
	)

	assert.False(t, li.HasIntersection())
}

func TestLineIntersector_endpointTouch(t *testing.T) {
	var li predicate.LineIntersector
	li.Compute(
		coordinate.NewXY(0, 0), coordinate.NewXY(2, 0),
		coordinate.NewXY(2, 0), coordinate.NewXY(2, 2),
	)

	assert.True(t, li.HasIntersection())
	assert.Equal(t, predicate.PointIntersection, li.Type())
	assert.False(t, li.IsProper(), "touching at a shared endpoint is not a proper intersection")
	assert.True(t, li.Intersection(0).Eq(coordinate.NewXY(2, 0)))
}

func TestLineIntersector_collinearOverlap(t *testing.T) {
	var li predicate.LineIntersector
	li.Compute(
		coordinate.NewXY(0, 0), coordinate.NewXY(4, 0),
		coordinate.NewXY(2, 0), coordinate.NewXY(6, 0),
	)

	assert.True(t, li.HasIntersection())
	assert.Equal(t, predicate.CollinearIntersection, li.Type())
	assert.Equal(t, 2, li.NumIntersections())
	assert.True(t, li.Intersection(0).Eq(coordinate.NewXY(2, 0)))
	assert.True(t, li.Intersection(1).Eq(coordinate.NewXY(4, 0)))
}

func TestLineIntersector_collinearTouchAtPoint(t *testing.T) {
	var li predicate.LineIntersector
	li.Compute(
		coordinate.NewXY(0, 0), coordinate.NewXY(2, 0),
		coordinate.NewXY(2, 0), coordinate.NewXY(4, 0),
	)

	assert.True(t, li.HasIntersection())
	assert.Equal(t, predicate.PointIntersection, li.Type())
	assert.Equal(t, 1, li.NumIntersections())
	assert.True(t, li.Intersection(0).Eq(coordinate.NewXY(2, 0)))
}

func TestLineIntersector_collinearDisjoint(t *testing.T) {
	var li predicate.LineIntersector
	li.Compute(
		coordinate.NewXY(0, 0), coordinate.NewXY(1, 0),
		coordinate.NewXY(2, 0), coordinate.NewXY(3, 0),
	)

	assert.False(t, li.HasIntersection())
}

func TestLineIntersector_tJunction(t *testing.T) {
	var li predicate.LineIntersector
	li.Compute(
		coordinate.NewXY(0, 0), coordinate.NewXY(4, 0),
		coordinate.NewXY(2, 0), coordinate.NewXY(2, 3),
	)

	assert.True(t, li.HasIntersection())
	assert.Equal(t, predicate.PointIntersection, li.Type())
	assert.False(t, li.IsProper(), "q1 lands on the interior of p1-p2 but at q's own endpoint")
	assert.True(t, li.Intersection(0).Eq(coordinate.NewXY(2, 0)))
}
