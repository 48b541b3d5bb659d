package geos2d_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/geos2d/core"
)

func TestSetGetEpsilon(t *testing.T) {
	defer geos2d.SetEpsilon(0)

	geos2d.SetEpsilon(0.001)
	assert.Equal(t, 0.001, geos2d.GetEpsilon())

	geos2d.SetEpsilon(-5)
	assert.Equal(t, 0.0, geos2d.GetEpsilon(), "negative epsilon should clamp to 0")
}
