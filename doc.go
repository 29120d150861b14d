// Package skyroute is a single-source shortest-path engine over a weighted,
// undirected graph of airports connected by routes.
//
// What's inside:
//
//   - airgraph/     — the adjacency-list Graph and Route primitives
//   - shortestpath/ — Dijkstra route queries with tagged results
//   - routeset/     — dataset loading (JSON/YAML/TOML) with validation
//   - cmd/skyroute/ — the query CLI, emitting JSON results on stdout
//
// The graph is built once, then treated as read-only for any number of
// sequential queries; each query owns its transient working state, so
// concurrent queries against an immutable graph are safe.
//
// Quick start:
//
//	g := airgraph.New()
//	_ = g.AddRoute("JFK", "ORD", 800)
//	_ = g.AddRoute("ORD", "DFW", 1650)
//
//	res, err := shortestpath.Find(g, "JFK", "DFW")
//	// res.Path == [JFK ORD DFW], res.TotalDistance == 2450
//
//	go get github.com/flightgrid/skyroute
package skyroute
