// Package orbipath plans minimum-Δv transfers between orbits — a
// pluggable shortest-path engine with an orbital-mechanics model built
// on top of it.
//
// 🚀 What is orbipath?
//
//	A library (and CLI) that brings together:
//		• Core engine: one priority-first search over caller-supplied graphs
//		• Strategies: Dijkstra, A* with per-node heuristics, tie-break search
//		• Orbital model: Kepler orbits, single-burn manoeuvres, Δv costing
//		• Enumeration: candidate orbit generation around any central body
//		• A console progress bar for long manoeuvre computations
//
// ✨ Why choose orbipath?
//
//   - Bring your own graph – three tiny interfaces (Node, Edge, Neighbor)
//   - Deterministic – identical inputs always return the identical path
//   - Honest weights – search-time penalties never leak into results
//   - Extensible – write a Strategy and the engine does the rest
//
// Under the hood, everything is organized under small subpackages:
//
//	pathfind/ — graph interfaces, the search engine & the Strategy seam
//	dijkstra/ — classic least-total-weight search
//	astar/    — heuristic-guided search for nodes that can estimate cost
//	tiebreak/ — least-weight search preferring fewer edges among equals
//	orbit/    — bodies, Kepler orbits, manoeuvres & orbit enumeration
//	progress/ — fixed-width console progress bar
//	cmd/otp/  — the transfer-planning CLI
//
// Quick ASCII example:
//
//	LEO ──raise──▶ GTO ──circularize──▶ GEO
//
//	two prograde burns at the shared apsides, about 3935 m/s in total.
//
//	go get github.com/katalvlaran/orbipath
package orbipath
