package astar

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/orbipath/pathfind"
)

// ErrNoHeuristic is returned when a node touched by the search does not
// implement pathfind.HeuristicNode.
var ErrNoHeuristic = errors.New("astar: node does not implement pathfind.HeuristicNode")

// ShortestPath returns the minimum-weight path from start to goal in g,
// guided by each node's heuristic estimate of the remaining cost.
//
// Priority strategy: priority(node, cost) = cost + node.Heuristic(goal).
// Optimality holds only for admissible, consistent heuristics; see the
// package documentation for the full contract.
//
// Complexity: O((V + E) log V) time worst case; an informative heuristic
// settles fewer nodes than Dijkstra on the same graph.
func ShortestPath(g *pathfind.Graph, start, goal string, opts ...pathfind.Option) (pathfind.Path, error) {
	return pathfind.Search(g, start, goal, strategy(), opts...)
}

// strategy adds the node's goal estimate to the accumulated cost.
func strategy() pathfind.Strategy {
	return pathfind.Strategy{
		EdgeCost: func(e pathfind.Edge) float64 { return e.Weight() },
		Priority: func(n, goal pathfind.Node, cost float64) (float64, error) {
			hn, ok := n.(pathfind.HeuristicNode)
			if !ok {
				return 0, fmt.Errorf("%w: node %q", ErrNoHeuristic, n.ID())
			}
			h := hn.Heuristic(goal)
			if h < 0 || math.IsNaN(h) || math.IsInf(h, 0) {
				return 0, fmt.Errorf("%w: heuristic(%q)=%v",
					pathfind.ErrMalformedWeight, n.ID(), h)
			}

			return cost + h, nil
		},
	}
}
