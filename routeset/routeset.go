package routeset

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/flightgrid/skyroute/airgraph"
)

// Sentinel errors for dataset loading.
var (
	// ErrReadDataset indicates the dataset file could not be read or parsed.
	ErrReadDataset = errors.New("routeset: failed to read dataset")

	// ErrInvalidDataset indicates the dataset parsed but failed validation
	// (missing endpoint, negative distance, empty airport code).
	ErrInvalidDataset = errors.New("routeset: invalid dataset")
)

// validate is shared across Load calls; validator.Validate caches struct
// metadata and is safe for concurrent use.
var validate = validator.New()

// routeRecord is one entry of the dataset's "routes" list.
type routeRecord struct {
	From     string  `mapstructure:"from" validate:"required"`
	To       string  `mapstructure:"to" validate:"required"`
	Distance float64 `mapstructure:"distance" validate:"gte=0"`
}

// dataset is the top-level dataset shape.
type dataset struct {
	Airports []string      `mapstructure:"airports" validate:"dive,required"`
	Routes   []routeRecord `mapstructure:"routes" validate:"dive"`
}

// Load reads the dataset at path and builds the airport graph from it.
//
// Returns ErrReadDataset (wrapped) when the file is missing or unparsable,
// or ErrInvalidDataset (wrapped) when any record fails validation. On error
// no partial graph is returned.
func Load(path string) (*airgraph.Graph, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadDataset, err)
	}

	var ds dataset
	if err := v.Unmarshal(&ds); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadDataset, err)
	}
	if err := validate.Struct(&ds); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDataset, err)
	}

	g := airgraph.New()
	for _, code := range ds.Airports {
		if err := g.AddAirport(code); err != nil {
			return nil, fmt.Errorf("%w: airport %q: %v", ErrInvalidDataset, code, err)
		}
	}
	for _, r := range ds.Routes {
		if err := g.AddRoute(r.From, r.To, r.Distance); err != nil {
			return nil, fmt.Errorf("%w: route %s→%s: %v", ErrInvalidDataset, r.From, r.To, err)
		}
	}

	return g, nil
}

// Sample returns the built-in demo graph: JFK, ORD, DFW with
// JFK—ORD=800 and ORD—DFW=1650 (distances in miles).
func Sample() *airgraph.Graph {
	g := airgraph.New()
	_ = g.AddAirport("JFK")
	_ = g.AddAirport("DFW")
	_ = g.AddAirport("ORD")
	_ = g.AddRoute("JFK", "ORD", 800)
	_ = g.AddRoute("ORD", "DFW", 1650)

	return g
}
