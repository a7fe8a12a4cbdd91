package pathfind

import "sort"

// Graph is an identity-keyed, owning collection of caller-defined nodes.
// Insertion order is irrelevant; lookup is by Node.ID. A Graph is
// read-only during a search and may be shared by concurrent searches as
// long as its nodes and edges stay immutable meanwhile.
type Graph struct {
	nodes map[string]Node
}

// NewGraph builds a Graph holding the given nodes. Nodes sharing an ID
// collapse to the last one added, matching AddNode semantics.
func NewGraph(nodes ...Node) *Graph {
	g := &Graph{nodes: make(map[string]Node, len(nodes))}
	for _, n := range nodes {
		g.AddNode(n)
	}

	return g
}

// AddNode inserts n, replacing any previous node with the same ID.
// Nil nodes are ignored.
func (g *Graph) AddNode(n Node) {
	if n == nil {
		return
	}
	g.nodes[n.ID()] = n
}

// Node returns the node with the given ID, and whether it exists.
func (g *Graph) Node(id string) (Node, bool) {
	n, ok := g.nodes[id]

	return n, ok
}

// HasNode reports whether a node with the given ID exists.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.nodes[id]

	return ok
}

// NodeCount returns the number of nodes in the graph.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// NodeIDs returns all node IDs in sorted order, so that callers iterating
// the graph outside a search get a reproducible sequence.
func (g *Graph) NodeIDs() []string {
	ids := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}
