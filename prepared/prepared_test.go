package prepared_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geos2d/core/coordinate"
	"github.com/geos2d/core/geom"
	"github.com/geos2d/core/geomopts"
	"github.com/geos2d/core/prepared"
)

func square(t *testing.T, f *geom.GeometryFactory, x0, y0, x1, y1 float64) geom.Polygon {
	t.Helper()
	ring, err := f.CreateLinearRing(coordinate.NewSequenceXY(
		coordinate.NewXY(x0, y0), coordinate.NewXY(x1, y0),
		coordinate.NewXY(x1, y1), coordinate.NewXY(x0, y1),
		coordinate.NewXY(x0, y0),
	))
	require.NoError(t, err)
	return f.CreatePolygon(ring, nil)
}

func TestPreparedPolygon_ContainsPoint(t *testing.T) {
	f := geom.NewGeometryFactory(nil)
	poly := square(t, f, 0, 0, 10, 10)

	pp := prepared.Prepare(poly)
	assert.Equal(t, poly, pp.Base())

	inside := f.CreatePoint(coordinate.NewXY(5, 5))
	outside := f.CreatePoint(coordinate.NewXY(15, 15))
	boundary := f.CreatePoint(coordinate.NewXY(10, 5))

	ok, err := pp.Contains(inside, geomopts.Defaults())
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = pp.Contains(outside, geomopts.Defaults())
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = pp.Contains(boundary, geomopts.Defaults())
	require.NoError(t, err)
	assert.False(t, ok, "boundary point is not in the interior")

	ok, err = pp.Covers(boundary, geomopts.Defaults())
	require.NoError(t, err)
	assert.True(t, ok, "boundary point is covered")
}

func TestPreparedPolygon_Intersects(t *testing.T) {
	f := geom.NewGeometryFactory(nil)
	poly := square(t, f, 0, 0, 10, 10)
	pp := prepared.Prepare(poly)

	mp := f.CreateMultiPoint([]geom.Point{
		f.CreatePoint(coordinate.NewXY(100, 100)),
		f.CreatePoint(coordinate.NewXY(1, 1)),
	})

	ok, err := pp.Intersects(mp, geomopts.Defaults())
	require.NoError(t, err)
	assert.True(t, ok)

	disjointMP := f.CreateMultiPoint([]geom.Point{
		f.CreatePoint(coordinate.NewXY(100, 100)),
		f.CreatePoint(coordinate.NewXY(-5, -5)),
	})
	ok, err = pp.Intersects(disjointMP, geomopts.Defaults())
	require.NoError(t, err)
	assert.False(t, ok)

	disjoint, err := pp.Disjoint(disjointMP, geomopts.Defaults())
	require.NoError(t, err)
	assert.True(t, disjoint)
}

func TestPreparedPolygon_FallsBackForArealOperand(t *testing.T) {
	f := geom.NewGeometryFactory(nil)
	outer := square(t, f, 0, 0, 10, 10)
	inner := square(t, f, 2, 2, 4, 4)

	pp := prepared.Prepare(outer)
	ok, err := pp.Contains(inner, geomopts.Defaults())
	require.NoError(t, err)
	assert.True(t, ok)

	within, err := pp.Within(inner, geomopts.Defaults())
	require.NoError(t, err)
	assert.False(t, within, "the prepared outer square is not within the smaller inner square")
}

func TestPrepare_MultiPolygonAndPlainFallback(t *testing.T) {
	f := geom.NewGeometryFactory(nil)
	a := square(t, f, 0, 0, 2, 2)
	b := square(t, f, 10, 10, 12, 12)
	mp := f.CreateMultiPolygon([]geom.Polygon{a, b})

	pp := prepared.Prepare(mp)
	ok, err := pp.Contains(f.CreatePoint(coordinate.NewXY(11, 11)), geomopts.Defaults())
	require.NoError(t, err)
	assert.True(t, ok)

	line, err := f.CreateLineString(coordinate.NewSequenceXY(
		coordinate.NewXY(-5, -5), coordinate.NewXY(-5, -1),
	))
	require.NoError(t, err)
	ppLine := prepared.Prepare(line)
	disjoint, err := ppLine.Disjoint(mp, geomopts.Defaults())
	require.NoError(t, err)
	assert.True(t, disjoint)
}
