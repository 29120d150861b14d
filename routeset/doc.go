// Package routeset loads airport/route datasets into an airgraph.Graph.
//
// A dataset is a viper-readable file (JSON, YAML, or TOML, selected by file
// extension) with two top-level keys:
//
//	airports:
//	  - JFK
//	  - ORD
//	routes:
//	  - from: JFK
//	    to: ORD
//	    distance: 800
//
// Listing an airport under "airports" is only required for isolated
// airports; route endpoints are created implicitly. Every record is
// validated before graph construction (from/to required, distance ≥ 0), so
// a malformed dataset fails loudly instead of producing a silently wrong
// graph. Loader failures are wrapped sentinel errors, which the CLI maps to
// a non-zero exit.
//
// Sample returns the built-in three-airport demo graph used when no dataset
// is supplied.
package routeset
