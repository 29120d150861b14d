// Package airgraph provides the in-memory airport route graph used by the
// skyroute shortest-path engine.
//
// Overview:
//
//   - Graph stores an adjacency list mapping each airport code to the routes
//     leaving it. Routes are logically undirected: AddRoute(a, b, d) records
//     two directed adjacency entries, a→b and b→a, with the same distance.
//   - Airport codes are opaque keys; the graph imposes no semantic meaning
//     beyond equality. Any non-empty string is a valid code.
//   - Parallel routes between the same pair of airports are permitted; a
//     shortest-path query naturally prefers the cheaper one.
//
// Lifecycle:
//
//   - Build the graph once (AddAirport/AddRoute), then treat it as read-only
//     for the duration of any number of sequential queries.
//   - The Graph carries no internal locking. A fully built Graph is safe for
//     concurrent readers as long as no goroutine mutates it.
//
// Error handling (sentinel errors):
//
//   - ErrEmptyAirportID:   an airport code was the empty string.
//   - ErrNegativeDistance: a route distance was negative. Dijkstra's
//     correctness depends on non-negative distances, so the graph rejects
//     them at insertion rather than leaving the violation to surface as a
//     silently wrong path.
//
// Determinism:
//
//   - AirportIDs returns codes sorted lexicographically ascending, so
//     iteration over the airport catalog is reproducible across runs.
package airgraph
