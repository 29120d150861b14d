// Package shortestpath defines result types, sentinel errors, and
// configuration options for route queries. See doc.go for the overview.
package shortestpath

import (
	"errors"
	"math"
)

// Sentinel errors returned by Find for contract violations.
var (
	// ErrNilGraph indicates that a nil *airgraph.Graph was passed to Find.
	ErrNilGraph = errors.New("shortestpath: graph is nil")

	// ErrEmptyAirportID indicates that the source or target airport ID
	// was the empty string.
	ErrEmptyAirportID = errors.New("shortestpath: airport ID is empty")

	// ErrNegativeDistance indicates that a negative route distance was
	// encountered during relaxation. airgraph rejects negative distances at
	// insertion, so this only fires if that precondition was bypassed.
	ErrNegativeDistance = errors.New("shortestpath: negative route distance encountered")

	// ErrBadMaxDistance indicates that WithMaxDistance was given a negative
	// cap, which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("shortestpath: MaxDistance must be non-negative")
)

// Status classifies the outcome of a route query.
type Status int

const (
	// StatusUnknown is the zero value. It never describes a completed
	// query; it appears only in the zero PathResult returned alongside a
	// non-nil error.
	StatusUnknown Status = iota

	// StatusFound means a shortest path exists and is carried in the result.
	StatusFound

	// StatusUnreachable means both endpoints exist but no path connects them.
	StatusUnreachable

	// StatusInvalidEndpoint means the source or target airport is not in the
	// graph.
	StatusInvalidEndpoint
)

// String returns the lower-case wire name of the status, as emitted in the
// CLI's JSON output.
func (s Status) String() string {
	switch s {
	case StatusFound:
		return "found"
	case StatusUnreachable:
		return "unreachable"
	case StatusInvalidEndpoint:
		return "invalid_endpoint"
	default:
		return "unknown"
	}
}

// PathResult is the outcome of a single route query.
//
// For StatusFound, Path holds the airport codes from source to target
// inclusive (a self-query yields a single-element path), and TotalDistance
// is the sum of the traversed route distances. For the two degenerate
// statuses, Path is empty and TotalDistance is zero.
type PathResult struct {
	// Path is the ordered airport sequence from source to target.
	Path []string

	// TotalDistance is the summed distance along Path.
	TotalDistance float64

	// Status tags the outcome; see the Status constants.
	Status Status
}

// Found reports whether the query produced a usable path.
func (r PathResult) Found() bool { return r.Status == StatusFound }

// Options configures the behavior of Find.
//
// MaxDistance caps exploration: airports whose tentative distance exceeds
// the cap are never finalized. Must be ≥ 0. Default is +Inf (no cap).
type Options struct {
	MaxDistance float64
}

// Option is a functional option for configuring Find.
type Option func(*Options)

// DefaultOptions returns the Options used when no Option overrides them.
func DefaultOptions() Options {
	return Options{MaxDistance: math.Inf(1)}
}

// WithMaxDistance caps exploration at the given total distance. A target
// whose shortest path exceeds the cap reports StatusUnreachable.
// Panics with ErrBadMaxDistance if max is negative.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}
