package index_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/geos2d/core/coordinate"
	"github.com/geos2d/core/index"
)

func TestBuildMonotoneChains_singleChainForMonotoneLine(t *testing.T) {
	pts := []coordinate.Coordinate{
		coordinate.NewXY(0, 0),
		coordinate.NewXY(1, 1),
		coordinate.NewXY(2, 3),
		coordinate.NewXY(5, 4),
	}
	chains := index.BuildMonotoneChains(pts)
	assert.Len(t, chains, 1)
	assert.Equal(t, 0, chains[0].Start())
	assert.Equal(t, 3, chains[0].End())
}

func TestBuildMonotoneChains_splitsAtDirectionChange(t *testing.T) {
	pts := []coordinate.Coordinate{
		coordinate.NewXY(0, 0),
		coordinate.NewXY(5, 5),
		coordinate.NewXY(10, 2), // Y direction reverses here
	}
	chains := index.BuildMonotoneChains(pts)
	assert.Len(t, chains, 2)
	assert.Equal(t, 0, chains[0].Start())
	assert.Equal(t, 1, chains[0].End())
	assert.Equal(t, 1, chains[1].Start())
	assert.Equal(t, 2, chains[1].End())
}

func TestBuildMonotoneChains_tooShort(t *testing.T) {
	assert.Nil(t, index.BuildMonotoneChains([]coordinate.Coordinate{coordinate.NewXY(0, 0)}))
}

func TestMonotoneChain_Overlaps(t *testing.T) {
	a := index.BuildMonotoneChains([]coordinate.Coordinate{
		coordinate.NewXY(0, 0), coordinate.NewXY(10, 10),
	})[0]
	b := index.BuildMonotoneChains([]coordinate.Coordinate{
		coordinate.NewXY(5, 5), coordinate.NewXY(15, 15),
	})[0]
	c := index.BuildMonotoneChains([]coordinate.Coordinate{
		coordinate.NewXY(100, 100), coordinate.NewXY(110, 110),
	})[0]

	assert.True(t, a.Overlaps(b))
	assert.False(t, a.Overlaps(c))
}

func TestOverlappingSegmentPairs(t *testing.T) {
	a := index.BuildMonotoneChains([]coordinate.Coordinate{
		coordinate.NewXY(0, 0), coordinate.NewXY(4, 4),
	})[0]
	b := index.BuildMonotoneChains([]coordinate.Coordinate{
		coordinate.NewXY(0, 4), coordinate.NewXY(4, 0),
	})[0]

	var pairs [][2]int
	index.OverlappingSegmentPairs(a, b, func(i, j int) {
		pairs = append(pairs, [2]int{i, j})
	})

	assert.Equal(t, [][2]int{{0, 0}}, pairs)
}
