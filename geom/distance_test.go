package geom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geos2d/core/coordinate"
	"github.com/geos2d/core/geom"
)

func TestDistance_PointToPoint(t *testing.T) {
	f := factory()
	a := f.CreatePoint(coordinate.NewXY(0, 0))
	b := f.CreatePoint(coordinate.NewXY(3, 4))
	assert.InDelta(t, 5.0, geom.Distance(a, b), 1e-9)
}

func TestDistance_PointToSegment(t *testing.T) {
	f := factory()
	pt := f.CreatePoint(coordinate.NewXY(5, 3))
	ls, err := f.CreateLineString(coordinate.NewSequenceXY(coordinate.NewXY(0, 0), coordinate.NewXY(10, 0)))
	require.NoError(t, err)

	assert.InDelta(t, 3.0, geom.Distance(pt, ls), 1e-9)
}

func TestDistance_IntersectingIsZero(t *testing.T) {
	f := factory()
	a, err := f.CreateLineString(coordinate.NewSequenceXY(coordinate.NewXY(0, 0), coordinate.NewXY(10, 10)))
	require.NoError(t, err)
	b, err := f.CreateLineString(coordinate.NewSequenceXY(coordinate.NewXY(0, 10), coordinate.NewXY(10, 0)))
	require.NoError(t, err)

	assert.Equal(t, 0.0, geom.Distance(a, b))
}

func TestDistance_DisjointSquares(t *testing.T) {
	f := factory()
	shellA, err := f.CreateLinearRing(coordinate.NewSequenceXY(
		coordinate.NewXY(0, 0), coordinate.NewXY(1, 0), coordinate.NewXY(1, 1), coordinate.NewXY(0, 1), coordinate.NewXY(0, 0),
	))
	require.NoError(t, err)
	a := f.CreatePolygon(shellA, nil)

	shellB, err := f.CreateLinearRing(coordinate.NewSequenceXY(
		coordinate.NewXY(4, 0), coordinate.NewXY(5, 0), coordinate.NewXY(5, 1), coordinate.NewXY(4, 1), coordinate.NewXY(4, 0),
	))
	require.NoError(t, err)
	b := f.CreatePolygon(shellB, nil)

	assert.InDelta(t, 3.0, geom.Distance(a, b), 1e-9)
}

func TestNearestPoints_Segments(t *testing.T) {
	f := factory()
	a, err := f.CreateLineString(coordinate.NewSequenceXY(coordinate.NewXY(0, 0), coordinate.NewXY(0, 10)))
	require.NoError(t, err)
	b, err := f.CreateLineString(coordinate.NewSequenceXY(coordinate.NewXY(5, 0), coordinate.NewXY(5, 10)))
	require.NoError(t, err)

	pa, pb := geom.NearestPoints(a, b)
	assert.InDelta(t, 5.0, pa.Distance(pb), 1e-9)
}
