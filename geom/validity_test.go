package geom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geos2d/core/coordinate"
	"github.com/geos2d/core/geom"
)

func TestIsValid_SimplePolygon(t *testing.T) {
	f := factory()
	shell, err := f.CreateLinearRing(coordinate.NewSequenceXY(
		coordinate.NewXY(0, 0), coordinate.NewXY(10, 0), coordinate.NewXY(10, 10), coordinate.NewXY(0, 10), coordinate.NewXY(0, 0),
	))
	require.NoError(t, err)
	poly := f.CreatePolygon(shell, nil)

	assert.NoError(t, geom.IsValid(poly))
}

func TestIsValid_BowtiePolygon(t *testing.T) {
	f := factory()
	// Self-crossing "bowtie" shell.
	shell, err := f.CreateLinearRing(coordinate.NewSequenceXY(
		coordinate.NewXY(0, 0), coordinate.NewXY(10, 10), coordinate.NewXY(10, 0), coordinate.NewXY(0, 10), coordinate.NewXY(0, 0),
	))
	require.NoError(t, err)
	poly := f.CreatePolygon(shell, nil)

	assert.Error(t, geom.IsValid(poly))
}

func TestIsSimple_LineString(t *testing.T) {
	f := factory()
	simple, err := f.CreateLineString(coordinate.NewSequenceXY(coordinate.NewXY(0, 0), coordinate.NewXY(1, 1), coordinate.NewXY(2, 0)))
	require.NoError(t, err)
	assert.True(t, geom.IsSimple(simple))

	crossing, err := f.CreateLineString(coordinate.NewSequenceXY(
		coordinate.NewXY(0, 0), coordinate.NewXY(2, 2), coordinate.NewXY(0, 2), coordinate.NewXY(2, 0),
	))
	require.NoError(t, err)
	assert.False(t, geom.IsSimple(crossing))
}

func TestIsSimple_MultiPointDuplicates(t *testing.T) {
	f := factory()
	mp := f.CreateMultiPoint([]geom.Point{
		f.CreatePoint(coordinate.NewXY(0, 0)),
		f.CreatePoint(coordinate.NewXY(0, 0)),
	})
	assert.False(t, geom.IsSimple(mp))
}
