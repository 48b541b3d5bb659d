package index_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/geos2d/core/index"
)

func TestIntervalRTree_QueryOverlapping(t *testing.T) {
	tree := index.NewIntervalRTree()
	tree.Insert(index.Interval{Min: 0, Max: 5}, "a")
	tree.Insert(index.Interval{Min: 4, Max: 10}, "b")
	tree.Insert(index.Interval{Min: 20, Max: 30}, "c")

	var found []string
	tree.Query(index.Interval{Min: 4, Max: 6}, func(iv index.Interval, value any) {
		found = append(found, value.(string))
	})

	assert.ElementsMatch(t, []string{"a", "b"}, found)
}

func TestIntervalRTree_QueryPoint(t *testing.T) {
	tree := index.NewIntervalRTree()
	tree.Insert(index.Interval{Min: 0, Max: 5}, "a")
	tree.Insert(index.Interval{Min: 6, Max: 10}, "b")

	var found []string
	tree.QueryPoint(3, func(iv index.Interval, value any) {
		found = append(found, value.(string))
	})

	assert.Equal(t, []string{"a"}, found)
}

func TestIntervalRTree_Size(t *testing.T) {
	tree := index.NewIntervalRTree()
	tree.Insert(index.Interval{Min: 0, Max: 1}, "a")
	tree.Insert(index.Interval{Min: 0, Max: 1}, "b")
	tree.Insert(index.Interval{Min: 5, Max: 6}, "c")

	assert.Equal(t, 3, tree.Size())
}

func TestIntervalRTree_QueryNoOverlap(t *testing.T) {
	tree := index.NewIntervalRTree()
	tree.Insert(index.Interval{Min: 0, Max: 1}, "a")

	var found []string
	tree.Query(index.Interval{Min: 100, Max: 200}, func(iv index.Interval, value any) {
		found = append(found, value.(string))
	})
	assert.Empty(t, found)
}
