package geom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geos2d/core/coordinate"
	"github.com/geos2d/core/geom"
	"github.com/geos2d/core/predicate"
)

func TestCentroid_Square(t *testing.T) {
	f := factory()
	shell, err := f.CreateLinearRing(coordinate.NewSequenceXY(
		coordinate.NewXY(0, 0), coordinate.NewXY(10, 0), coordinate.NewXY(10, 10), coordinate.NewXY(0, 10), coordinate.NewXY(0, 0),
	))
	require.NoError(t, err)
	poly := f.CreatePolygon(shell, nil)

	c := geom.Centroid(poly)
	assert.InDelta(t, 5.0, c.X, 1e-9)
	assert.InDelta(t, 5.0, c.Y, 1e-9)
}

func TestCentroid_LineString(t *testing.T) {
	f := factory()
	ls, err := f.CreateLineString(coordinate.NewSequenceXY(coordinate.NewXY(0, 0), coordinate.NewXY(10, 0)))
	require.NoError(t, err)

	c := geom.Centroid(ls)
	assert.InDelta(t, 5.0, c.X, 1e-9)
	assert.InDelta(t, 0.0, c.Y, 1e-9)
}

func TestInteriorPoint_CShapedPolygon(t *testing.T) {
	f := factory()
	// A "C" shape whose geometric centroid falls in the concave notch,
	// outside the polygon itself.
	shell, err := f.CreateLinearRing(coordinate.NewSequenceXY(
		coordinate.NewXY(0, 0), coordinate.NewXY(10, 0), coordinate.NewXY(10, 4),
		coordinate.NewXY(4, 4), coordinate.NewXY(4, 6), coordinate.NewXY(10, 6),
		coordinate.NewXY(10, 10), coordinate.NewXY(0, 10), coordinate.NewXY(0, 0),
	))
	require.NoError(t, err)
	poly := f.CreatePolygon(shell, nil)

	pt := geom.InteriorPoint(poly)
	assert.Equal(t, predicate.Interior, poly.ContainsPoint(pt))
}
