package coordinate_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/geos2d/core/coordinate"
)

func TestEq_ignoresZM(t *testing.T) {
	a := coordinate.NewXYZ(1, 2, 10)
	b := coordinate.NewXYZ(1, 2, 99)
	assert.True(t, a.Eq(b), "Z differs but X/Y identity should still be equal")
}

func TestCompare_lexicographic(t *testing.T) {
	tests := map[string]struct {
		a, b     coordinate.Coordinate
		expected int
	}{
		"equal":         {coordinate.NewXY(1, 1), coordinate.NewXY(1, 1), 0},
		"less by x":     {coordinate.NewXY(0, 5), coordinate.NewXY(1, 0), -1},
		"greater by x":  {coordinate.NewXY(2, 0), coordinate.NewXY(1, 0), 1},
		"less by y":     {coordinate.NewXY(1, 0), coordinate.NewXY(1, 1), -1},
		"greater by y":  {coordinate.NewXY(1, 2), coordinate.NewXY(1, 1), 1},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.a.Compare(tt.b))
		})
	}
}

func TestCrossProduct_orientation(t *testing.T) {
	a := coordinate.NewXY(1, 0)
	b := coordinate.NewXY(0, 1)
	assert.Greater(t, a.CrossProduct(b), 0.0)
	assert.Less(t, b.CrossProduct(a), 0.0)
}

func TestZInterpolate(t *testing.T) {
	p0 := coordinate.NewXYZ(0, 0, 0)
	p1 := coordinate.NewXYZ(10, 0, 10)
	mid := coordinate.NewXY(5, 0)

	assert.InDelta(t, 5.0, coordinate.ZInterpolate(mid, p0, p1), 1e-9)
}

func TestZInterpolate_oneDefined(t *testing.T) {
	p0 := coordinate.NewXYZ(0, 0, 7)
	p1 := coordinate.NewXY(10, 0)
	mid := coordinate.NewXY(5, 0)

	assert.Equal(t, 7.0, coordinate.ZInterpolate(mid, p0, p1))
}

func TestZInterpolate_noneDefined(t *testing.T) {
	p0 := coordinate.NewXY(0, 0)
	p1 := coordinate.NewXY(10, 0)
	mid := coordinate.NewXY(5, 0)

	assert.True(t, math.IsNaN(coordinate.ZInterpolate(mid, p0, p1)))
}

func TestSequence_CloseRing(t *testing.T) {
	seq := coordinate.NewSequenceXY(
		coordinate.NewXY(0, 0),
		coordinate.NewXY(1, 0),
		coordinate.NewXY(1, 1),
	)
	closed := seq.CloseRing()
	assert.True(t, closed.IsClosed())
	assert.Equal(t, 4, closed.Size())

	alreadyClosed := closed.CloseRing()
	assert.Equal(t, 4, alreadyClosed.Size())
}

func TestSequence_Reverse(t *testing.T) {
	seq := coordinate.NewSequenceXY(coordinate.NewXY(0, 0), coordinate.NewXY(1, 1), coordinate.NewXY(2, 2))
	rev := seq.Reverse()
	assert.True(t, rev.Get(0).Eq(coordinate.NewXY(2, 2)))
	assert.True(t, rev.Get(2).Eq(coordinate.NewXY(0, 0)))
}

func TestSequence_Envelope(t *testing.T) {
	seq := coordinate.NewSequenceXY(coordinate.NewXY(0, 0), coordinate.NewXY(5, -3), coordinate.NewXY(-2, 8))
	env := seq.Envelope()
	assert.Equal(t, -2.0, env.MinX())
	assert.Equal(t, -3.0, env.MinY())
	assert.Equal(t, 5.0, env.MaxX())
	assert.Equal(t, 8.0, env.MaxY())
}
