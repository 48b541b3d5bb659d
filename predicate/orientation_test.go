package predicate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/geos2d/core/coordinate"
	"github.com/geos2d/core/predicate"
)

func TestOrientationIndex_basic(t *testing.T) {
	tests := map[string]struct {
		a, b, c  coordinate.Coordinate
		expected predicate.Orientation
	}{
		"counterclockwise": {
			coordinate.NewXY(0, 0), coordinate.NewXY(1, 0), coordinate.NewXY(1, 1),
			predicate.CounterClockwise,
		},
		"clockwise": {
			coordinate.NewXY(0, 0), coordinate.NewXY(1, 0), coordinate.NewXY(1, -1),
			predicate.Clockwise,
		},
		"collinear": {
			coordinate.NewXY(0, 0), coordinate.NewXY(1, 0), coordinate.NewXY(2, 0),
			predicate.Collinear,
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.expected, predicate.OrientationIndex(tt.a, tt.b, tt.c))
		})
	}
}

func TestOrientationIndex_nearCollinearFallsBackToExact(t *testing.T) {
	a := coordinate.NewXY(0, 0)
	b := coordinate.NewXY(1e15, 1)
	c := coordinate.NewXY(2e15, 2.0000000000000004)

	// The float64 determinant rounds to 0.5, inside the error bound; the
	// exact value is 1e15 * 2^-51 > 0.
	got := predicate.OrientationIndex(a, b, c)
	assert.Equal(t, predicate.CounterClockwise, got)
}

func TestOrientationIndex_reversingOrderFlipsSign(t *testing.T) {
	a := coordinate.NewXY(0, 0)
	b := coordinate.NewXY(1, 0)
	c := coordinate.NewXY(1, 1)

	assert.Equal(t, predicate.CounterClockwise, predicate.OrientationIndex(a, b, c))
	assert.Equal(t, predicate.Clockwise, predicate.OrientationIndex(a, c, b))
}

func TestOrientation_String(t *testing.T) {
	assert.Equal(t, "Clockwise", predicate.Clockwise.String())
	assert.Equal(t, "Collinear", predicate.Collinear.String())
	assert.Equal(t, "CounterClockwise", predicate.CounterClockwise.String())
}
