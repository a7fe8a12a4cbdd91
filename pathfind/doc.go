// Package pathfind provides the graph capability model and the shared
// priority-frontier engine that the dijkstra, astar and tiebreak packages
// are built on.
//
// What
//
//   - Capability interfaces instead of concrete vertex/edge types: any
//     value with a stable ID and a deterministic Neighbors() listing can
//     serve as a Node; any value exposing From/To/Weight can serve as an
//     Edge. A* additionally requires HeuristicNode.
//   - Graph: an identity-keyed, owning collection of nodes. Edges are
//     reachable only through their source node's neighbor listing, so
//     edge existence is always scoped to a live node.
//   - Search: a single best-first traversal parameterized by a Strategy.
//     Each algorithm package supplies its own Strategy; the frontier
//     bookkeeping, relaxation and path reconstruction live here once.
//   - Path: the ordered (node, incoming edge) steps from start to goal,
//     paired with the total weight summed from true edge weights.
//
// Why
//
//   - Three algorithms share one traversal skeleton; only the priority
//     semantics differ. Parameterizing by Strategy removes the duplicated
//     loop without hiding the per-algorithm behavior.
//   - Callers own their node and edge representations (orbits and burn
//     manoeuvres in the orbit package, plain structs in tests); the
//     engine never needs to copy the graph into its own shape.
//
// Determinism
//
//	The frontier pops equal-priority entries in push order (a monotone
//	sequence number breaks heap ties). Combined with deterministic
//	Neighbors() enumeration on the caller's nodes, repeated searches over
//	an unchanged graph return identical paths and weights.
//
// Concurrency
//
//	A search owns only its per-call frontier and cost maps and never
//	mutates the graph, so one Graph may serve any number of concurrent
//	Search calls, provided nodes and edges stay immutable meanwhile.
//
// Complexity (V = |nodes|, E = |edges|)
//
//   - Time:  O((V + E) log V) — lazy decrease-key, stale entries skipped.
//   - Space: O(V + E) — cost/predecessor maps plus worst-case heap.
//
// Errors (sentinel)
//
//   - ErrGraphNil:        nil *Graph passed to Search.
//   - ErrNilStrategy:     Strategy with a missing EdgeCost or Priority.
//   - ErrNodeNotFound:    start or goal ID absent from the graph,
//     detected before the traversal begins.
//   - ErrNoPath:          frontier exhausted without reaching the goal.
//     An expected outcome for disconnected goals, not a defect.
//   - ErrMalformedWeight: negative or non-finite weight (or heuristic,
//     wrapped by the astar package). Fatal to the call; never clamped,
//     since negative weights break the greedy-settling argument.
//
// See the dijkstra, astar and tiebreak packages for ready-made strategies
// and the orbit package for a full domain model built on this contract.
package pathfind
