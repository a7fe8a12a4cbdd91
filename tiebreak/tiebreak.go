package tiebreak

import (
	"errors"
	"math"

	"github.com/katalvlaran/orbipath/pathfind"
)

// ErrBadPenalty is returned when the per-edge penalty is zero, negative
// or non-finite.
var ErrBadPenalty = errors.New("tiebreak: edge penalty must be positive and finite")

// ShortestPath returns the minimum-weight path from start to goal in g,
// preferring fewer edges among paths of equal true weight.
//
// Cost strategy: every edge costs weight + penalty during the search;
// priority(node, cost) = cost, as in plain Dijkstra. The reported
// Path.Weight is penalty-free. See the package documentation for how to
// choose penalty so that true-weight ordering is never disturbed.
func ShortestPath(g *pathfind.Graph, start, goal string, penalty float64, opts ...pathfind.Option) (pathfind.Path, error) {
	if penalty <= 0 || math.IsNaN(penalty) || math.IsInf(penalty, 0) {
		return pathfind.Path{}, ErrBadPenalty
	}

	return pathfind.Search(g, start, goal, strategy(penalty), opts...)
}

// strategy is Dijkstra over weight+penalty.
func strategy(penalty float64) pathfind.Strategy {
	return pathfind.Strategy{
		EdgeCost: func(e pathfind.Edge) float64 { return e.Weight() + penalty },
		Priority: func(_, _ pathfind.Node, cost float64) (float64, error) { return cost, nil },
	}
}
