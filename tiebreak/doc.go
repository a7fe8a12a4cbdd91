// Package tiebreak computes minimum-weight paths that prefer fewer edges
// among equal-weight alternatives.
//
// What
//
//   - ShortestPath is Dijkstra over a shifted cost function: during the
//     search every edge costs weight + ε for a caller-supplied penalty ε.
//     A path of k edges accumulates k·ε of penalty, so among paths of
//     equal true weight the one with fewer edges wins.
//   - The penalty shapes ordering decisions only. The returned
//     Path.Weight is recomputed from true edge weights along the
//     finalized path and never includes ε.
//
// Choosing ε
//
//	Path optimality in true weight holds only while ε is too small to
//	reorder paths of unequal true weight: with at most k edges on any
//	candidate path, ε·k must stay below the smallest difference between
//	two distinct true path weights in your domain. That bound is a
//	property of the caller's data — pick ε at the resolution below which
//	weight differences stop being meaningful (for Δv planning, a few m/s).
//	ε must be positive and finite; ShortestPath rejects anything else
//	with ErrBadPenalty.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
package tiebreak
