// Command skyroute answers a single shortest-route query between two
// airports and prints the result as JSON on stdout.
//
// Usage:
//
//	skyroute <source> <target> [dataset]
//
// With no dataset argument the built-in sample graph is used. The dataset
// path may also be supplied via SKYROUTE_DATASET (a positional argument
// wins); SKYROUTE_LOG_LEVEL controls stderr log verbosity. A .env file in
// the working directory is honored.
//
// Exit status is 0 on any completed query — including "unreachable" and
// "invalid endpoint", which are reported in the JSON status field and
// logged — and 1 on a usage error or a malformed dataset.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/flightgrid/skyroute/airgraph"
	"github.com/flightgrid/skyroute/internal/logging"
	"github.com/flightgrid/skyroute/routeset"
	"github.com/flightgrid/skyroute/shortestpath"
)

const (
	envDataset  = "SKYROUTE_DATASET"
	envLogLevel = "SKYROUTE_LOG_LEVEL"
)

// output is the JSON shape written to stdout for downstream consumers.
type output struct {
	Path          []string `json:"path"`
	TotalDistance float64  `json:"totalDistance"`
	Status        string   `json:"status"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one query. The result JSON goes to stdout, logs and the
// usage line to stderr; the return value is the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	// .env is optional; a missing file is not an error.
	_ = godotenv.Load()

	logger := logging.New(stderr, os.Getenv(envLogLevel)).With().
		Str("query_id", uuid.NewString()).
		Logger()

	if len(args) < 2 {
		fmt.Fprintln(stderr, "usage: skyroute <source> <target> [dataset]")
		return 1
	}
	source, target := args[0], args[1]

	datasetPath := os.Getenv(envDataset)
	if len(args) >= 3 {
		datasetPath = args[2]
	}

	g, err := buildGraph(datasetPath)
	if err != nil {
		logger.Error().Err(err).Str("dataset", datasetPath).Msg("failed to load dataset")
		return 1
	}
	logger.Debug().
		Int("airports", g.AirportCount()).
		Int("adjacency_entries", g.RouteCount()).
		Msg("graph loaded")

	res, err := shortestpath.Find(g, source, target)
	if err != nil {
		logger.Error().Err(err).Msg("query failed")
		return 1
	}

	// Degenerate outcomes complete normally; they are logged and tagged in
	// the JSON status, not turned into a failing exit.
	switch res.Status {
	case shortestpath.StatusInvalidEndpoint:
		logger.Warn().Str("source", source).Str("target", target).
			Msg("source or target airport not found in graph")
	case shortestpath.StatusUnreachable:
		logger.Warn().Str("source", source).Str("target", target).
			Msg("no route connects the endpoints")
	}

	path := res.Path
	if path == nil {
		path = []string{} // keep "path" a JSON array, never null
	}
	if err := json.NewEncoder(stdout).Encode(output{
		Path:          path,
		TotalDistance: res.TotalDistance,
		Status:        res.Status.String(),
	}); err != nil {
		logger.Error().Err(err).Msg("failed to encode result")
		return 1
	}

	return 0
}

// buildGraph loads the dataset at path, or returns the built-in sample
// graph when no path is given.
func buildGraph(path string) (*airgraph.Graph, error) {
	if path == "" {
		return routeset.Sample(), nil
	}

	return routeset.Load(path)
}
