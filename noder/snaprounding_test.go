package noder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geos2d/core/coordinate"
	"github.com/geos2d/core/geomopts"
	"github.com/geos2d/core/precision"
)

// TestSnapRoundingNoder_FixedPrecision exercises two segments that
// nearly cross: they must produce a single snapped vertex at the grid
// cell center under a fixed precision model.
func TestSnapRoundingNoder_FixedPrecision(t *testing.T) {
	a := lineSeg(0, 0, 10, 10.001)
	b := lineSeg(0, 10, 10, -0.001)

	model := precision.NewFixed(1.0)
	snr := SnapRoundingNoder{Model: model}

	out, err := snr.Node([]*SegmentString{a, b}, geomopts.Defaults())
	require.NoError(t, err)
	require.NotEmpty(t, out)

	for _, s := range out {
		for i := 0; i < s.Size(); i++ {
			c := s.seq.Get(i)
			assert.Equal(t, c.X, float64(int(c.X)), "x should land on the integer grid")
			assert.Equal(t, c.Y, float64(int(c.Y)), "y should land on the integer grid")
		}
	}
}

func TestHotPixel_IntersectsNearbySegment(t *testing.T) {
	px := NewHotPixel(coordinate.NewXY(5, 5), precision.NewFixed(1.0))
	assert.True(t, px.Intersects(coordinate.NewXY(0, 5.2), coordinate.NewXY(10, 4.8)))
	assert.False(t, px.Intersects(coordinate.NewXY(0, 50), coordinate.NewXY(10, 51)))
}
