package noder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geos2d/core/coordinate"
	"github.com/geos2d/core/geomopts"
)

func lineSeg(x1, y1, x2, y2 float64) *SegmentString {
	seq := coordinate.NewSequenceXY(coordinate.NewXY(x1, y1), coordinate.NewXY(x2, y2))
	return NewSegmentString(seq, nil)
}

func TestMCIndexNoder_ProperCrossing(t *testing.T) {
	a := lineSeg(0, 0, 10, 10)
	b := lineSeg(10, 0, 0, 10)

	var mc MCIndexNoder
	out, err := mc.Node([]*SegmentString{a, b}, geomopts.Defaults())
	require.NoError(t, err)

	// Each input string splits into two pieces at (5,5).
	require.Len(t, out, 4)
	var sawSplit int
	for _, s := range out {
		if s.SegmentStart(0).Eq(coordinate.NewXY(5, 5)) || s.SegmentEnd(0).Eq(coordinate.NewXY(5, 5)) {
			sawSplit++
		}
	}
	assert.Equal(t, 4, sawSplit)
}

func TestMCIndexNoder_NoIntersection(t *testing.T) {
	a := lineSeg(0, 0, 1, 1)
	b := lineSeg(10, 10, 11, 11)

	var mc MCIndexNoder
	out, err := mc.Node([]*SegmentString{a, b}, geomopts.Defaults())
	require.NoError(t, err)
	assert.Len(t, out, 2)
}

func TestMCIndexNoder_CollinearOverlap(t *testing.T) {
	a := lineSeg(0, 0, 10, 0)
	b := lineSeg(5, 0, 15, 0)

	var mc MCIndexNoder
	out, err := mc.Node([]*SegmentString{a, b}, geomopts.Defaults())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(out), 2)
}

func TestEdgeIntersectionList_AddSortsAndDedups(t *testing.T) {
	l := newEdgeIntersectionList()
	l.Add(1, 0.5, coordinate.NewXY(1, 1))
	l.Add(0, 0.2, coordinate.NewXY(0, 0.2))
	l.Add(1, 0.5, coordinate.NewXY(1, 1)) // duplicate

	items := l.Items()
	require.Len(t, items, 2)
	assert.Equal(t, 0, items[0].SegmentIndex)
	assert.Equal(t, 1, items[1].SegmentIndex)
}

func TestSegmentString_SplitAtIntersections(t *testing.T) {
	s := lineSeg(0, 0, 10, 0)
	s.AddIntersection(coordinate.NewXY(5, 0), 0)

	parts := s.SplitAtIntersections()
	require.Len(t, parts, 2)
	assert.True(t, parts[0].SegmentEnd(0).Eq(coordinate.NewXY(5, 0)))
	assert.True(t, parts[1].SegmentStart(0).Eq(coordinate.NewXY(5, 0)))
}
