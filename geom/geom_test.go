package geom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/geos2d/core/coordinate"
	"github.com/geos2d/core/geom"
	"github.com/geos2d/core/predicate"
)

func factory() *geom.GeometryFactory {
	return geom.NewGeometryFactory(nil)
}

func TestPoint_EmptyAndCoordinate(t *testing.T) {
	f := factory()
	p := f.CreatePoint(coordinate.NewXY(3, 4))
	assert.False(t, p.IsEmpty())
	assert.Equal(t, 3.0, p.X())
	assert.Equal(t, 4.0, p.Y())
	assert.Equal(t, geom.DimPoint, p.Dimension())

	empty := f.CreateEmptyPoint()
	assert.True(t, empty.IsEmpty())
	assert.Equal(t, geom.DimEmpty, empty.Dimension())
}

func TestLineString_BoundaryOpenVsClosed(t *testing.T) {
	f := factory()
	open, err := f.CreateLineString(coordinate.NewSequenceXY(
		coordinate.NewXY(0, 0), coordinate.NewXY(1, 1), coordinate.NewXY(2, 0),
	))
	assert.NoError(t, err)
	b := open.Boundary().(geom.MultiPoint)
	assert.Equal(t, 2, b.NumGeometries())

	closed, err := f.CreateLineString(coordinate.NewSequenceXY(
		coordinate.NewXY(0, 0), coordinate.NewXY(1, 1), coordinate.NewXY(0, 0),
	))
	assert.NoError(t, err)
	assert.True(t, closed.IsClosed())
	assert.True(t, closed.Boundary().(geom.MultiPoint).IsEmpty())
}

func TestLineString_RejectsSinglePoint(t *testing.T) {
	f := factory()
	_, err := f.CreateLineString(coordinate.NewSequenceXY(coordinate.NewXY(0, 0)))
	assert.Error(t, err)
}

func TestLineString_Length(t *testing.T) {
	f := factory()
	ls, err := f.CreateLineString(coordinate.NewSequenceXY(
		coordinate.NewXY(0, 0), coordinate.NewXY(3, 4),
	))
	assert.NoError(t, err)
	assert.InDelta(t, 5.0, ls.Length(), 1e-9)
}

func square() coordinate.Sequence {
	return coordinate.NewSequenceXY(
		coordinate.NewXY(0, 0),
		coordinate.NewXY(10, 0),
		coordinate.NewXY(10, 10),
		coordinate.NewXY(0, 10),
		coordinate.NewXY(0, 0),
	)
}

func TestLinearRing_RejectsUnclosed(t *testing.T) {
	f := factory()
	_, err := f.CreateLinearRing(coordinate.NewSequenceXY(
		coordinate.NewXY(0, 0), coordinate.NewXY(1, 0), coordinate.NewXY(1, 1), coordinate.NewXY(0, 1),
	))
	assert.Error(t, err)
}

func TestLinearRing_SignedAreaAndOrientation(t *testing.T) {
	f := factory()
	ccw, err := f.CreateLinearRing(square())
	assert.NoError(t, err)
	assert.InDelta(t, 100.0, ccw.Area(), 1e-9)
	assert.True(t, ccw.IsCounterClockwise())

	cw := ccw.Reverse()
	assert.False(t, cw.IsCounterClockwise())
	assert.InDelta(t, 100.0, cw.Area(), 1e-9)
}

func TestPolygon_AreaWithHole(t *testing.T) {
	f := factory()
	shell, err := f.CreateLinearRing(square())
	assert.NoError(t, err)
	hole, err := f.CreateLinearRing(coordinate.NewSequenceXY(
		coordinate.NewXY(2, 2), coordinate.NewXY(4, 2), coordinate.NewXY(4, 4), coordinate.NewXY(2, 4), coordinate.NewXY(2, 2),
	))
	assert.NoError(t, err)

	poly := f.CreatePolygon(shell, []geom.LinearRing{hole})
	assert.InDelta(t, 96.0, poly.Area(), 1e-9)
}

func TestPolygon_ContainsPoint(t *testing.T) {
	f := factory()
	shell, _ := f.CreateLinearRing(square())
	hole, _ := f.CreateLinearRing(coordinate.NewSequenceXY(
		coordinate.NewXY(2, 2), coordinate.NewXY(4, 2), coordinate.NewXY(4, 4), coordinate.NewXY(2, 4), coordinate.NewXY(2, 2),
	))
	poly := f.CreatePolygon(shell, []geom.LinearRing{hole})

	assert.Equal(t, predicate.Interior, poly.ContainsPoint(coordinate.NewXY(1, 1)))
	assert.Equal(t, predicate.Exterior, poly.ContainsPoint(coordinate.NewXY(3, 3)), "inside the hole")
	assert.Equal(t, predicate.Exterior, poly.ContainsPoint(coordinate.NewXY(20, 20)))
	assert.Equal(t, predicate.Boundary, poly.ContainsPoint(coordinate.NewXY(0, 5)))
}

func TestPolygon_IsValid(t *testing.T) {
	f := factory()
	shell, _ := f.CreateLinearRing(square())
	poly := f.CreatePolygon(shell, nil)
	assert.NoError(t, poly.IsValid())

	badHole, _ := f.CreateLinearRing(coordinate.NewSequenceXY(
		coordinate.NewXY(100, 100), coordinate.NewXY(110, 100), coordinate.NewXY(110, 110), coordinate.NewXY(100, 110), coordinate.NewXY(100, 100),
	))
	invalid := f.CreatePolygon(shell, []geom.LinearRing{badHole})
	assert.Error(t, invalid.IsValid())
}

func TestMultiPoint_Envelope(t *testing.T) {
	f := factory()
	mp := f.CreateMultiPoint([]geom.Point{
		f.CreatePoint(coordinate.NewXY(0, 0)),
		f.CreatePoint(coordinate.NewXY(5, 5)),
	})
	env := mp.Envelope()
	assert.Equal(t, 0.0, env.MinX())
	assert.Equal(t, 5.0, env.MaxX())
}

func TestMultiLineString_ModTwoBoundary(t *testing.T) {
	f := factory()
	l1, _ := f.CreateLineString(coordinate.NewSequenceXY(coordinate.NewXY(0, 0), coordinate.NewXY(1, 0)))
	l2, _ := f.CreateLineString(coordinate.NewSequenceXY(coordinate.NewXY(1, 0), coordinate.NewXY(2, 0)))
	mls := f.CreateMultiLineString([]geom.LineString{l1, l2})

	b := mls.Boundary().(geom.MultiPoint)
	assert.Equal(t, 2, b.NumGeometries(), "the shared endpoint (1,0) cancels out, leaving the two outer ends")
}

func TestGeometryCollection_DimensionIsMax(t *testing.T) {
	f := factory()
	p := f.CreatePoint(coordinate.NewXY(0, 0))
	ls, _ := f.CreateLineString(coordinate.NewSequenceXY(coordinate.NewXY(0, 0), coordinate.NewXY(1, 1)))
	gc := f.CreateGeometryCollection([]geom.Geometry{p, ls})

	assert.Equal(t, geom.DimCurve, gc.Dimension())
}
