// Package astar computes minimum-weight paths between two nodes of a
// caller-defined graph using the A* algorithm.
//
// What
//
//   - ShortestPath runs the shared pathfind engine with priority equal to
//     the accumulated cost plus the node's heuristic estimate of the
//     remaining cost to the goal.
//   - Every node reachable from the start must implement
//     pathfind.HeuristicNode; touching a node without the capability
//     fails the search with ErrNoHeuristic.
//
// Heuristic contract (caller precondition, not verified by the engine)
//
//   - Admissible: never overestimates the true remaining cost. An
//     overestimating heuristic forfeits optimality — the search still
//     terminates, but the returned path may not be minimal.
//   - Consistent: satisfies the triangle inequality along edges, so no
//     settled node ever needs revisiting.
//   - Heuristic(goal) == 0 when the receiver is the goal.
//   - Values must be non-negative and finite; anything else aborts the
//     search with an error wrapping pathfind.ErrMalformedWeight.
//
// With a zero heuristic A* degenerates to Dijkstra: identical path,
// identical weight. With an informative heuristic it settles fewer nodes;
// path reconstruction and tie-break mechanics are unchanged.
//
// Complexity: O((V + E) log V) time worst case, O(V + E) space.
package astar
