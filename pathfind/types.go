package pathfind

import (
	"errors"
	"math"
)

// Sentinel errors for the frontier engine.
var (
	// ErrGraphNil is returned when a nil *Graph is passed to Search.
	ErrGraphNil = errors.New("pathfind: graph is nil")

	// ErrNilStrategy is returned when a Strategy lacks EdgeCost or Priority.
	ErrNilStrategy = errors.New("pathfind: strategy must provide EdgeCost and Priority")

	// ErrNodeNotFound is returned when the start or goal ID is absent from
	// the graph. Detected before the traversal begins, never mid-search.
	ErrNodeNotFound = errors.New("pathfind: endpoint not found in graph")

	// ErrNoPath is returned when the frontier empties before the goal is
	// reached. Expected for disconnected goals; callers must handle it.
	ErrNoPath = errors.New("pathfind: no path between start and goal")

	// ErrMalformedWeight is returned when a negative or non-finite edge
	// weight (or, via astar, heuristic value) is encountered.
	ErrMalformedWeight = errors.New("pathfind: negative or non-finite weight")

	// ErrBadMaxCost is the panic value for a negative WithMaxCost argument.
	ErrBadMaxCost = errors.New("pathfind: MaxCost must be non-negative")
)

// Node is the minimal capability a caller-defined vertex must expose to
// participate in a search.
//
// ID must be unique within a Graph and stable for the lifetime of a
// search. Neighbors must enumerate the node's outgoing edges and their
// destinations deterministically: enumeration order never changes the
// optimal path found, only which of several equal-cost candidates reaches
// the frontier first.
type Node interface {
	// ID returns the node's stable, unique identity.
	ID() string

	// Neighbors enumerates every outgoing edge with its destination node.
	Neighbors() []Neighbor
}

// Neighbor pairs an outgoing edge with the node it leads to.
type Neighbor struct {
	Edge Edge
	Node Node
}

// Edge is the capability a caller-defined connection must expose.
// An Edge connects the ordered pair (From, To); its weight must be
// non-negative and finite.
type Edge interface {
	// From returns the edge's source node.
	From() Node

	// To returns the edge's destination node.
	To() Node

	// Weight returns the edge's true, non-negative cost.
	Weight() float64
}

// HeuristicNode extends Node with an estimate of the remaining cost to a
// goal, as required by A*.
//
// The estimate must be admissible (never overestimate the true remaining
// cost) and consistent (satisfy the triangle inequality along edges), and
// Heuristic(goal) must be 0 when the receiver is the goal. These are
// caller preconditions: the engine cannot verify them generically, and an
// overestimating heuristic forfeits optimality.
type HeuristicNode interface {
	Node

	// Heuristic estimates the remaining cost from the receiver to goal.
	Heuristic(goal Node) float64
}

// Strategy parameterizes the frontier engine with per-algorithm cost and
// priority semantics. Both funcs must be non-nil.
type Strategy struct {
	// EdgeCost returns the search-time cost of traversing e. For plain
	// Dijkstra and A* this is e.Weight(); the tiebreak strategy adds its
	// per-edge penalty here. EdgeCost influences ordering decisions only —
	// the reported Path.Weight is always recomputed from true weights.
	EdgeCost func(e Edge) float64

	// Priority converts a node's accumulated search cost into its frontier
	// key. Dijkstra returns cost unchanged; A* adds n.Heuristic(goal).
	// A returned error aborts the search.
	Priority func(n, goal Node, cost float64) (float64, error)
}

// Options holds tunable parameters for a single Search call.
type Options struct {
	// MaxCost caps the accumulated search cost; candidate paths beyond it
	// are not relaxed. Defaults to +Inf (no cap).
	MaxCost float64

	// OnSettle, if set, is called when a node's cost is finalized, with
	// the node's ID and its final search cost. Called at most once per
	// node, in settling order.
	OnSettle func(id string, cost float64)
}

// Option configures Search behavior via functional arguments.
type Option func(*Options)

// DefaultOptions returns Options with no cost cap and no hooks.
func DefaultOptions() Options {
	return Options{
		MaxCost:  math.Inf(1),
		OnSettle: nil,
	}
}

// WithMaxCost caps the accumulated search cost. Candidates whose cost
// would exceed max are skipped; if the goal lies beyond the cap the
// search fails with ErrNoPath. Panics on negative max.
func WithMaxCost(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			panic(ErrBadMaxCost.Error())
		}
		o.MaxCost = max
	}
}

// WithOnSettle registers a hook fired each time a node is settled.
func WithOnSettle(fn func(id string, cost float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSettle = fn
		}
	}
}
