package envelope_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/geos2d/core/envelope"
)

func TestNew_normalizesCorners(t *testing.T) {
	tests := map[string]struct {
		x1, y1, x2, y2 float64
	}{
		"already ordered":  {0, 0, 10, 20},
		"swapped corners":  {10, 20, 0, 0},
		"swapped x only":   {10, 0, 0, 20},
		"degenerate width": {5, 0, 5, 20},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			e := envelope.New(tt.x1, tt.y1, tt.x2, tt.y2)
			assert.LessOrEqual(t, e.MinX(), e.MaxX())
			assert.LessOrEqual(t, e.MinY(), e.MaxY())
		})
	}
}

func TestIntersects(t *testing.T) {
	a := envelope.New(0, 0, 10, 10)
	tests := map[string]struct {
		b        envelope.Envelope
		expected bool
	}{
		"overlapping":      {envelope.New(5, 5, 15, 15), true},
		"touching edge":    {envelope.New(10, 0, 20, 10), true},
		"touching corner":  {envelope.New(10, 10, 20, 20), true},
		"disjoint":         {envelope.New(20, 20, 30, 30), false},
		"null rhs":         {envelope.Null(), false},
		"fully contained":  {envelope.New(2, 2, 8, 8), true},
		"fully containing": {envelope.New(-5, -5, 15, 15), true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.expected, a.Intersects(tt.b))
			assert.Equal(t, tt.expected, tt.b.Intersects(a))
		})
	}
}

func TestCovers(t *testing.T) {
	outer := envelope.New(0, 0, 10, 10)
	inner := envelope.New(2, 2, 8, 8)
	assert.True(t, outer.Covers(inner))
	assert.False(t, inner.Covers(outer))
	assert.True(t, outer.Covers(outer))
}

func TestExpandToInclude(t *testing.T) {
	a := envelope.New(0, 0, 5, 5)
	b := envelope.New(10, 10, 15, 15)
	merged := a.ExpandToInclude(b)
	assert.Equal(t, 0.0, merged.MinX())
	assert.Equal(t, 0.0, merged.MinY())
	assert.Equal(t, 15.0, merged.MaxX())
	assert.Equal(t, 15.0, merged.MaxY())

	assert.True(t, envelope.Null().ExpandToInclude(a).Eq(a))
	assert.True(t, a.ExpandToInclude(envelope.Null()).Eq(a))
}

func TestDistance(t *testing.T) {
	a := envelope.New(0, 0, 10, 10)
	tests := map[string]struct {
		b        envelope.Envelope
		expected float64
	}{
		"intersecting": {envelope.New(5, 5, 15, 15), 0},
		"to the right": {envelope.New(20, 0, 30, 10), 10},
		"diagonal":     {envelope.New(20, 20, 30, 30), 14.142135623730951},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, a.Distance(tt.b), 1e-9)
		})
	}
}

func TestNullEnvelope(t *testing.T) {
	n := envelope.Null()
	assert.True(t, n.IsNull())
	assert.Equal(t, 0.0, n.Width())
	assert.Equal(t, 0.0, n.Height())
	assert.False(t, n.Intersects(envelope.New(0, 0, 1, 1)))
}
