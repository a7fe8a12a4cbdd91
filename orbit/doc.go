// Package orbit models orbital states and single-burn manoeuvres as a
// pathfind graph, so that transfer planning between two orbits becomes a
// shortest-path query with Δv as the edge weight.
//
// What
//
//   - Body: a massive central body (mass, radius, μ, lowest safe
//     altitude, optional parent orbit bounding its sphere of influence).
//   - Orbit: a Kepler orbit around a Body, built from semi-major axis and
//     eccentricity or from its apsides, at an integer inclination.
//     Orbit implements pathfind.Node and pathfind.HeuristicNode: its
//     identity is its rounded apsides plus inclination, its neighbors are
//     the manoeuvres departing from it.
//   - Manoeuvre: a directed single-burn transfer between two orbits that
//     intersect at an apsis, implementing pathfind.Edge with the burn's
//     Δv as weight. Burns are physically bidirectional, so Link creates
//     mirror twins — one edge per traversal direction.
//   - Collection: enumerates candidate orbits around one body across
//     altitude sections and inclinations, generates every feasible
//     manoeuvre between orbits sharing an apsis, and exports the result
//     as a pathfind.Graph.
//
// Manoeuvre kinds
//
//   - Prograde: a pro- or retrograde burn at a shared apsis between two
//     coplanar orbits; Δv = |v₁ − v₂| at the intersection radius.
//   - PlaneChange: a pure inclination change between orbits with
//     identical apsides; Δv from the cosine rule on the two velocity
//     vectors.
//   - Combined: inclination change and pro/retrograde burn in one, at a
//     shared apsis of two non-coplanar orbits; cosine rule again.
//
// Manoeuvre generation over a large orbit set is CPU-bound and
// embarrassingly parallel per shared-apsis bucket; ComputeManoeuvres
// fans the evaluation out over a bounded errgroup and reports progress
// through an optional hook. Attachment to orbits is serialized, so the
// resulting graph is deterministic for a fixed orbit set.
//
// The A* estimate between two orbits combines their inclination gap and
// apsis distances. It is a coarse, cheap guide — close enough to prune
// exploration, and zero between an orbit and itself.
package orbit
