package geos2d_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	geos2d "github.com/geos2d/core"
	"github.com/geos2d/core/coordinate"
	"github.com/geos2d/core/geom"
	"github.com/geos2d/core/geomopts"
)

func opsFactory() *geom.GeometryFactory {
	return geom.NewGeometryFactory(nil)
}

func opsSquare(f *geom.GeometryFactory, x0, y0, x1, y1 float64) geom.Polygon {
	ring, err := f.CreateLinearRing(coordinate.NewSequenceXY(
		coordinate.NewXY(x0, y0), coordinate.NewXY(x1, y0),
		coordinate.NewXY(x1, y1), coordinate.NewXY(x0, y1),
		coordinate.NewXY(x0, y0),
	))
	if err != nil {
		panic(err)
	}
	return f.CreatePolygon(ring, nil)
}

func TestFacade_ContainsAndWithin(t *testing.T) {
	f := opsFactory()
	outer := opsSquare(f, 0, 0, 10, 10)
	inner := opsSquare(f, 2, 2, 4, 4)

	contains, err := geos2d.Contains(outer, inner)
	require.NoError(t, err)
	assert.True(t, contains)

	within, err := geos2d.Within(inner, outer)
	require.NoError(t, err)
	assert.True(t, within)
}

func TestFacade_IntersectionAndUnion(t *testing.T) {
	f := opsFactory()
	a := opsSquare(f, 0, 0, 1, 1)
	b := opsSquare(f, 0.5, 0, 1.5, 1)

	inter, err := geos2d.Intersection(a, b)
	require.NoError(t, err)
	poly, ok := inter.(geom.Polygon)
	require.True(t, ok)
	assert.InDelta(t, 0.5, poly.Area(), 1e-9)

	union, err := geos2d.Union(a, b)
	require.NoError(t, err)
	upoly, ok := union.(geom.Polygon)
	require.True(t, ok)
	assert.InDelta(t, 1.5, upoly.Area(), 1e-9)
}

func TestFacade_UnaryUnionDissolvesOverlappingSquares(t *testing.T) {
	f := opsFactory()
	a := opsSquare(f, 0, 0, 1, 1)
	b := opsSquare(f, 0.5, 0, 1.5, 1)
	mp := f.CreateMultiPolygon([]geom.Polygon{a, b})

	g, err := geos2d.UnaryUnion(mp)
	require.NoError(t, err)
	poly, ok := g.(geom.Polygon)
	require.True(t, ok, "dissolved overlapping squares must be a single polygon, got %T", g)
	assert.InDelta(t, 1.5, poly.Area(), 1e-9)
}

func TestFacade_MakeValidRepairsBowtie(t *testing.T) {
	f := opsFactory()
	shell, err := f.CreateLinearRing(coordinate.NewSequenceXY(
		coordinate.NewXY(0, 0), coordinate.NewXY(10, 10), coordinate.NewXY(10, 0), coordinate.NewXY(0, 10), coordinate.NewXY(0, 0),
	))
	require.NoError(t, err)
	bowtie := f.CreatePolygon(shell, nil)
	require.Error(t, geos2d.IsValid(bowtie))

	fixed, err := geos2d.MakeValid(bowtie)
	require.NoError(t, err)
	assert.NoError(t, geos2d.IsValid(fixed))
}

func TestFacade_DistanceAndConvexHull(t *testing.T) {
	f := opsFactory()
	a := f.CreatePoint(coordinate.NewXY(0, 0))
	b := f.CreatePoint(coordinate.NewXY(3, 4))
	assert.InDelta(t, 5.0, geos2d.Distance(a, b), 1e-9)

	square := opsSquare(f, 0, 0, 10, 10)
	hull := geos2d.ConvexHull(square)
	poly, ok := hull.(geom.Polygon)
	require.True(t, ok)
	assert.InDelta(t, 100.0, poly.Area(), 1e-9)
}

func TestFacade_PrepareAcceleratesPointInPolygon(t *testing.T) {
	f := opsFactory()
	poly := opsSquare(f, 0, 0, 10, 10)
	pp := geos2d.Prepare(poly)

	inside, err := pp.Contains(f.CreatePoint(coordinate.NewXY(5, 5)), geomopts.Defaults())
	require.NoError(t, err)
	assert.True(t, inside)

	outside, err := pp.Contains(f.CreatePoint(coordinate.NewXY(50, 50)), geomopts.Defaults())
	require.NoError(t, err)
	assert.False(t, outside)
}

func TestFacade_RelateString(t *testing.T) {
	f := opsFactory()
	outer := opsSquare(f, 0, 0, 10, 10)
	inner := opsSquare(f, 2, 2, 4, 4)

	s, err := geos2d.Relate(outer, inner)
	require.NoError(t, err)
	match, err := geos2d.RelateMatches(outer, inner, s)
	require.NoError(t, err)
	assert.True(t, match)
}
