package dijkstra

import "github.com/katalvlaran/orbipath/pathfind"

// ShortestPath returns the minimum-weight path from start to goal in g.
//
// Priority strategy: priority(node, cost) = cost. No heuristic is
// consulted, so every node type satisfying pathfind.Node participates.
//
// Options are the engine's: pathfind.WithMaxCost bounds exploration,
// pathfind.WithOnSettle observes settling order.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func ShortestPath(g *pathfind.Graph, start, goal string, opts ...pathfind.Option) (pathfind.Path, error) {
	return pathfind.Search(g, start, goal, strategy(), opts...)
}

// strategy is plain Dijkstra: true edge weights, priority = cost.
func strategy() pathfind.Strategy {
	return pathfind.Strategy{
		EdgeCost: func(e pathfind.Edge) float64 { return e.Weight() },
		Priority: func(_, _ pathfind.Node, cost float64) (float64, error) { return cost, nil },
	}
}
