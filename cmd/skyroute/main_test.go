package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// result mirrors the JSON shape emitted on stdout.
type result struct {
	Path          []string `json:"path"`
	TotalDistance float64  `json:"totalDistance"`
	Status        string   `json:"status"`
}

// runCLI drives run with the given arguments and returns the exit code,
// the raw stdout bytes, and the stderr text.
func runCLI(t *testing.T, args ...string) (int, []byte, string) {
	t.Helper()
	// Keep the environment from leaking into the run under test.
	t.Setenv(envDataset, "")
	t.Setenv(envLogLevel, "")

	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)

	return code, stdout.Bytes(), stderr.String()
}

// decode parses the stdout JSON, failing the test on malformed output.
func decode(t *testing.T, raw []byte) result {
	t.Helper()
	var res result
	require.NoError(t, json.Unmarshal(raw, &res))

	return res
}

func writeDataset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "routes.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

// ------------------------------------------------------------------------
// 1. Normal completion on the built-in sample graph.
// ------------------------------------------------------------------------

func TestRun_SampleQuery(t *testing.T) {
	code, raw, _ := runCLI(t, "JFK", "DFW")
	assert.Equal(t, 0, code)

	res := decode(t, raw)
	assert.Equal(t, "found", res.Status)
	assert.Equal(t, []string{"JFK", "ORD", "DFW"}, res.Path)
	assert.Equal(t, float64(2450), res.TotalDistance)
}

func TestRun_SelfQuery(t *testing.T) {
	code, raw, _ := runCLI(t, "JFK", "JFK")
	assert.Equal(t, 0, code)

	res := decode(t, raw)
	assert.Equal(t, "found", res.Status)
	assert.Equal(t, []string{"JFK"}, res.Path)
	assert.Zero(t, res.TotalDistance)
}

// ------------------------------------------------------------------------
// 2. Degenerate outcomes still exit 0 and keep the JSON shape.
// ------------------------------------------------------------------------

func TestRun_InvalidEndpoint(t *testing.T) {
	code, raw, stderr := runCLI(t, "JFK", "LAX")
	assert.Equal(t, 0, code, "an unknown endpoint is a completed query")

	res := decode(t, raw)
	assert.Equal(t, "invalid_endpoint", res.Status)
	assert.Empty(t, res.Path)
	assert.Zero(t, res.TotalDistance)

	// The path field stays a JSON array even when empty, never null.
	assert.Contains(t, string(raw), `"path":[]`)
	assert.Contains(t, stderr, "not found in graph")
}

func TestRun_Unreachable(t *testing.T) {
	path := writeDataset(t, `{
		"airports": ["SFO"],
		"routes": [{"from": "JFK", "to": "ORD", "distance": 800}]
	}`)

	code, raw, stderr := runCLI(t, "JFK", "SFO", path)
	assert.Equal(t, 0, code, "an unreachable target is a completed query")

	res := decode(t, raw)
	assert.Equal(t, "unreachable", res.Status)
	assert.Empty(t, res.Path)
	assert.Zero(t, res.TotalDistance)
	assert.Contains(t, string(raw), `"path":[]`)
	assert.Contains(t, stderr, "no route connects")
}

// ------------------------------------------------------------------------
// 3. Fatal conditions: usage and malformed datasets exit non-zero.
// ------------------------------------------------------------------------

func TestRun_UsageError(t *testing.T) {
	code, raw, stderr := runCLI(t, "JFK")
	assert.Equal(t, 1, code)
	assert.Empty(t, raw, "no result is emitted on a usage error")
	assert.Contains(t, stderr, "usage: skyroute")
}

func TestRun_MalformedDataset(t *testing.T) {
	path := writeDataset(t, `{not json`)
	code, raw, _ := runCLI(t, "JFK", "DFW", path)
	assert.Equal(t, 1, code)
	assert.Empty(t, raw)
}

func TestRun_InvalidDatasetRecord(t *testing.T) {
	path := writeDataset(t, `{
		"routes": [{"from": "JFK", "to": "ORD", "distance": -5}]
	}`)
	code, raw, _ := runCLI(t, "JFK", "ORD", path)
	assert.Equal(t, 1, code)
	assert.Empty(t, raw)
}

func TestRun_MissingDatasetFile(t *testing.T) {
	code, _, _ := runCLI(t, "JFK", "DFW", filepath.Join(t.TempDir(), "absent.json"))
	assert.Equal(t, 1, code)
}

// ------------------------------------------------------------------------
// 4. Dataset resolution: environment default, positional override.
// ------------------------------------------------------------------------

func TestRun_DatasetFromEnv(t *testing.T) {
	path := writeDataset(t, `{
		"routes": [{"from": "AMS", "to": "LHR", "distance": 230}]
	}`)
	t.Setenv(envDataset, path)

	var stdout, stderr bytes.Buffer
	code := run([]string{"AMS", "LHR"}, &stdout, &stderr)
	assert.Equal(t, 0, code)

	res := decode(t, stdout.Bytes())
	assert.Equal(t, []string{"AMS", "LHR"}, res.Path)
	assert.Equal(t, float64(230), res.TotalDistance)
}

func TestRun_PositionalDatasetBeatsEnv(t *testing.T) {
	envPath := writeDataset(t, `{
		"routes": [{"from": "AMS", "to": "LHR", "distance": 230}]
	}`)
	argPath := writeDataset(t, `{
		"routes": [{"from": "AMS", "to": "LHR", "distance": 999}]
	}`)
	t.Setenv(envDataset, envPath)

	var stdout, stderr bytes.Buffer
	code := run([]string{"AMS", "LHR", argPath}, &stdout, &stderr)
	assert.Equal(t, 0, code)
	assert.Equal(t, float64(999), decode(t, stdout.Bytes()).TotalDistance)
}
