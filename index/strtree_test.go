package index_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/geos2d/core/envelope"
	"github.com/geos2d/core/index"
)

type boxItem struct {
	id  string
	env envelope.Envelope
}

func (b boxItem) Envelope() envelope.Envelope { return b.env }

func buildGrid(n int) []boxItem {
	items := make([]boxItem, 0, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			x, y := float64(i*10), float64(j*10)
			items = append(items, boxItem{
				id:  fmt.Sprintf("%d-%d", i, j),
				env: envelope.New(x, y, x+5, y+5),
			})
		}
	}
	return items
}

func TestSTRTree_QueryFindsOverlapping(t *testing.T) {
	tree := index.NewSTRTree(4)
	for _, it := range buildGrid(10) {
		tree.Insert(it)
	}
	tree.Build()

	found := tree.Query(envelope.New(10, 10, 16, 16))
	assert.NotEmpty(t, found)
	for _, item := range found {
		assert.True(t, item.Envelope().Intersects(envelope.New(10, 10, 16, 16)))
	}
}

func TestSTRTree_QueryEmptyTree(t *testing.T) {
	tree := index.NewSTRTree(4)
	tree.Build()
	assert.Empty(t, tree.Query(envelope.New(0, 0, 1, 1)))
}

func TestSTRTree_QueryMissesDisjointRegion(t *testing.T) {
	tree := index.NewSTRTree(4)
	tree.Insert(boxItem{id: "a", env: envelope.New(0, 0, 1, 1)})
	tree.Build()

	assert.Empty(t, tree.Query(envelope.New(100, 100, 101, 101)))
}

func TestSTRTree_Size(t *testing.T) {
	tree := index.NewSTRTree(4)
	for _, it := range buildGrid(3) {
		tree.Insert(it)
	}
	assert.Equal(t, 9, tree.Size())
}

func TestQueryPairs_findsIntersectingPairs(t *testing.T) {
	a := index.NewSTRTree(4)
	a.Insert(boxItem{id: "a1", env: envelope.New(0, 0, 10, 10)})
	a.Build()

	b := index.NewSTRTree(4)
	b.Insert(boxItem{id: "b1", env: envelope.New(5, 5, 15, 15)})
	b.Insert(boxItem{id: "b2", env: envelope.New(100, 100, 110, 110)})
	b.Build()

	var pairs [][2]string
	index.QueryPairs(a, b, func(x, y index.Item) {
		pairs = append(pairs, [2]string{x.(boxItem).id, y.(boxItem).id})
	})

	assert.Equal(t, [][2]string{{"a1", "b1"}}, pairs)
}

func TestSTRTree_NearestNeighbors(t *testing.T) {
	tree := index.NewSTRTree(4)
	tree.Insert(boxItem{id: "near", env: envelope.New(0, 0, 1, 1)})
	tree.Insert(boxItem{id: "far", env: envelope.New(100, 100, 101, 101)})
	tree.Build()

	query := envelope.New(0, 0, 0, 0)
	results := tree.NearestNeighbors(query, 1, func(it index.Item) float64 {
		return it.Envelope().Distance(query)
	})

	assert.Len(t, results, 1)
	assert.Equal(t, "near", results[0].(boxItem).id)
}

func TestSTRTree_NearestNeighbors_k2ReturnsBothOrdered(t *testing.T) {
	tree := index.NewSTRTree(4)
	tree.Insert(boxItem{id: "b", env: envelope.New(50, 50, 51, 51)})
	tree.Insert(boxItem{id: "a", env: envelope.New(0, 0, 1, 1)})
	tree.Build()

	query := envelope.New(0, 0, 0, 0)
	results := tree.NearestNeighbors(query, 2, func(it index.Item) float64 {
		return it.Envelope().Distance(query)
	})

	assert.Len(t, results, 2)
	assert.Equal(t, "a", results[0].(boxItem).id)
	assert.Equal(t, "b", results[1].(boxItem).id)
}
