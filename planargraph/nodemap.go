package planargraph

import "github.com/geos2d/core/coordinate"

// NodeMap indexes Nodes by coordinate: every edge endpoint
// during graph construction looks up or creates its Node here, so two
// edges sharing an endpoint always share the same Node instance.
type NodeMap struct {
	nodes map[coordKey]*Node
	order []coordKey // insertion order, for deterministic iteration
}

type coordKey struct{ x, y float64 }

func keyOf(c coordinate.Coordinate) coordKey { return coordKey{c.X, c.Y} }

// NewNodeMap creates an empty map.
func NewNodeMap() *NodeMap {
	return &NodeMap{nodes: make(map[coordKey]*Node)}
}

// FindOrCreate returns the Node at c, creating one if none exists yet.
func (m *NodeMap) FindOrCreate(c coordinate.Coordinate) *Node {
	k := keyOf(c)
	if n, ok := m.nodes[k]; ok {
		return n
	}
	n := &Node{coord: c}
	m.nodes[k] = n
	m.order = append(m.order, k)
	return n
}

// Find returns the Node at c, or nil if none exists.
func (m *NodeMap) Find(c coordinate.Coordinate) *Node {
	return m.nodes[keyOf(c)]
}

// Nodes returns every node in the map, in the order each was first
// created (deterministic across repeated builds of the same input).
func (m *NodeMap) Nodes() []*Node {
	out := make([]*Node, 0, len(m.order))
	for _, k := range m.order {
		out = append(out, m.nodes[k])
	}
	return out
}

// Size returns the number of distinct nodes.
func (m *NodeMap) Size() int { return len(m.nodes) }
