package geom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geos2d/core/coordinate"
	"github.com/geos2d/core/geom"
)

func TestConvexHull_Square(t *testing.T) {
	f := factory()
	mp := f.CreateMultiPoint([]geom.Point{
		f.CreatePoint(coordinate.NewXY(0, 0)),
		f.CreatePoint(coordinate.NewXY(10, 0)),
		f.CreatePoint(coordinate.NewXY(10, 10)),
		f.CreatePoint(coordinate.NewXY(0, 10)),
		f.CreatePoint(coordinate.NewXY(5, 5)), // interior point, must be dropped
	})

	hull := geom.ConvexHull(f, mp)
	poly, ok := hull.(geom.Polygon)
	require.True(t, ok, "hull of 4 corners + interior point must be a polygon, got %T", hull)
	assert.InDelta(t, 100.0, poly.Area(), 1e-9)
}

func TestConvexHull_CollinearPoints(t *testing.T) {
	f := factory()
	ls, err := f.CreateLineString(coordinate.NewSequenceXY(
		coordinate.NewXY(0, 0), coordinate.NewXY(1, 0), coordinate.NewXY(2, 0), coordinate.NewXY(3, 0),
	))
	require.NoError(t, err)

	hull := geom.ConvexHull(f, ls)
	line, ok := hull.(geom.LineString)
	require.True(t, ok, "hull of collinear points must be a LineString, got %T", hull)
	assert.InDelta(t, 3.0, line.Length(), 1e-9)
}

func TestConvexHull_SinglePoint(t *testing.T) {
	f := factory()
	pt := f.CreatePoint(coordinate.NewXY(1, 1))

	hull := geom.ConvexHull(f, pt)
	p, ok := hull.(geom.Point)
	require.True(t, ok)
	assert.True(t, p.Coordinate().Eq(coordinate.NewXY(1, 1)))
}
