// Package airgraph declares the Graph and Route types and the mutation and
// query primitives on them. See doc.go for the package overview.
package airgraph

import (
	"errors"
	"sort"
)

// Sentinel errors for graph construction.
var (
	// ErrEmptyAirportID indicates that an airport code was the empty string.
	ErrEmptyAirportID = errors.New("airgraph: airport ID is empty")

	// ErrNegativeDistance indicates that a route was added with a negative
	// distance, which shortest-path queries cannot handle.
	ErrNegativeDistance = errors.New("airgraph: route distance is negative")
)

// Route is a directed adjacency record owned by one airport: the code of the
// destination airport and the distance to it. Distance is non-negative.
type Route struct {
	// To is the destination airport code.
	To string

	// Distance is the route length (e.g. miles). Always ≥ 0.
	Distance float64
}

// Graph is the adjacency-list airport graph.
//
// The zero value is not usable; construct with New.
type Graph struct {
	// adjacency maps each airport code to the ordered list of routes
	// leaving it. An airport may exist with an empty route list.
	adjacency map[string][]Route
}

// New creates an empty Graph.
//
// Complexity: O(1)
func New() *Graph {
	return &Graph{adjacency: make(map[string][]Route)}
}

// AddAirport inserts an airport if absent (idempotent).
// If an airport with the same code already exists, this is a no-op.
//
// Returns ErrEmptyAirportID if id is the empty string.
//
// Complexity: O(1)
func (g *Graph) AddAirport(id string) error {
	if id == "" {
		return ErrEmptyAirportID
	}
	if _, exists := g.adjacency[id]; !exists {
		g.adjacency[id] = nil
	}

	return nil
}

// AddRoute records an undirected route between from and to by appending two
// directed adjacency entries, from→to and to→from, each with the given
// distance. Missing endpoints are created automatically, so a prior
// AddAirport call is not required.
//
// No duplicate suppression is performed: adding the same pair twice yields
// parallel routes, and shortest-path queries will prefer the cheaper one.
//
// Returns ErrEmptyAirportID if either code is empty, or ErrNegativeDistance
// if distance < 0.
//
// Complexity: O(1) amortized
func (g *Graph) AddRoute(from, to string, distance float64) error {
	if from == "" || to == "" {
		return ErrEmptyAirportID
	}
	if distance < 0 {
		return ErrNegativeDistance
	}

	g.adjacency[from] = append(g.adjacency[from], Route{To: to, Distance: distance})
	g.adjacency[to] = append(g.adjacency[to], Route{To: from, Distance: distance})

	return nil
}

// HasAirport reports whether the airport code exists in the graph, whether
// added explicitly via AddAirport or implicitly via AddRoute.
//
// Complexity: O(1)
func (g *Graph) HasAirport(id string) bool {
	_, ok := g.adjacency[id]

	return ok
}

// Routes returns a copy of the routes leaving the given airport. For an
// unknown airport it returns an empty slice, never an error: absence and
// "no routes" are indistinguishable here, and HasAirport disambiguates.
//
// The returned slice is owned by the caller; mutating it does not affect
// the graph.
//
// Complexity: O(d) where d is the number of routes leaving id
func (g *Graph) Routes(id string) []Route {
	routes := g.adjacency[id]
	out := make([]Route, len(routes))
	copy(out, routes)

	return out
}

// AirportIDs returns all airport codes sorted lexicographically ascending.
// Used to seed per-query working state and for reproducible enumeration.
//
// Complexity: O(V log V)
func (g *Graph) AirportIDs() []string {
	ids := make([]string, 0, len(g.adjacency))
	for id := range g.adjacency {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// AirportCount returns the number of airports in the graph.
//
// Complexity: O(1)
func (g *Graph) AirportCount() int {
	return len(g.adjacency)
}

// RouteCount returns the number of directed adjacency entries in the graph.
// Each undirected route contributes two entries.
//
// Complexity: O(V)
func (g *Graph) RouteCount() int {
	n := 0
	for _, routes := range g.adjacency {
		n += len(routes)
	}

	return n
}
