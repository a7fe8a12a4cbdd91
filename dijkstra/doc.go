// Package dijkstra computes minimum-weight paths between two nodes of a
// caller-defined graph using Dijkstra's algorithm.
//
// What
//
//   - ShortestPath runs the shared pathfind engine with priority equal to
//     the accumulated cost and no heuristic.
//   - Works on any graph satisfying the pathfind capability contract with
//     non-negative, finite edge weights.
//
// Why
//
//   - The first time a node is popped with minimum priority, its
//     accumulated cost is provably optimal (the standard greedy-settling
//     argument for non-negative weights), so the returned weight is the
//     global minimum over all start→goal paths.
//
// Among equal-weight alternatives the path found depends on neighbor
// enumeration order; if you need the fewer-edges variant among equal-cost
// plans, use the tiebreak package instead.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
//
// Errors are the pathfind sentinels: ErrGraphNil, ErrNodeNotFound for an
// absent endpoint, ErrNoPath for a disconnected goal, ErrMalformedWeight
// for negative or non-finite weights.
package dijkstra
