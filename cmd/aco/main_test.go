package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aco/colony"
)

// execute runs the root command with args and fresh flag values.
func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	resetFlags(rootCmd)

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err = rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "aco version dev\n", out)
}

func TestSolve_Text(t *testing.T) {
	out, _, err := execute(t, "solve", "-c", "testdata/square.yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "problem: square")
	assert.Contains(t, out, "length:  4.000000")
	assert.Contains(t, out, "40 valid, 40 total")
	assert.Regexp(t, `tour:    a -> [bd] -> c -> [bd] -> a`, out)
}

func TestSolve_JSONWithOverrides(t *testing.T) {
	out, _, err := execute(t, "solve", "-c", "testdata/capitals.yaml",
		"--ants", "60", "--workers", "2", "--json")
	require.NoError(t, err)

	var report solveReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, "capitals", report.Problem)
	assert.Equal(t, 60, report.Ants)
	require.Len(t, report.Tour, 9)
	assert.Equal(t, "Berlin", report.Tour[0])
	assert.Equal(t, "Berlin", report.Tour[8])
	assert.LessOrEqual(t, report.Length, report.ColonyLength+1e-9)
	assert.NotEmpty(t, report.RunID)
}

func TestSolve_MetricsOut(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aco.prom")
	_, _, err := execute(t, "solve", "-c", "testdata/square.yaml", "--metrics-out", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "aco_colony_ants_released_total 40")
	assert.Contains(t, string(data), `aco_colony_solutions_total{outcome="valid"} 40`)
}

func TestSolve_Trace(t *testing.T) {
	_, stderr, err := execute(t, "solve", "-c", "testdata/square.yaml", "--trace", "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, stderr, `"Name": "colony.run"`)
	assert.Contains(t, stderr, "aco.run.id")
}

func TestSolve_Errors(t *testing.T) {
	_, _, err := execute(t, "solve")
	assert.Error(t, err, "config flag is required")

	_, _, err = execute(t, "solve", "-c", "testdata/missing.yaml")
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, _, err = execute(t, "solve", "-c", "testdata/square.yaml", "--ants", "0")
	assert.Error(t, err)

	_, _, err = execute(t, "--log-level", "loud", "version")
	assert.Error(t, err)
}

func TestWalk(t *testing.T) {
	out, stderr, err := execute(t, "walk", "cycle", "--n", "6", "--ants", "20", "--log-level", "debug")
	require.NoError(t, err)
	assert.Contains(t, out, "topology: cycle, 6 nodes, 6 edges")
	assert.Contains(t, out, "20 valid, 20 total")
	assert.Regexp(t, `path:     0( -> [0-5]){5}\n`, out)
	assert.Contains(t, stderr, "colony run completed")
}

func TestWalk_Grid(t *testing.T) {
	out, _, err := execute(t, "walk", "grid", "--rows", "2", "--cols", "3", "--ants", "50", "--workers", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "topology: grid, 6 nodes, 7 edges")
	assert.Contains(t, out, "path:     0,0 -> ")
}

func TestWalk_Errors(t *testing.T) {
	_, _, err := execute(t, "walk", "star", "--n", "5", "--ants", "10")
	assert.ErrorIs(t, err, colony.ErrNoSolutionFound)

	_, _, err = execute(t, "walk", "sparse", "--n", "4", "--p", "0")
	assert.ErrorIs(t, err, colony.ErrNoEdges)

	// From an inner node of a path every walk strands one side.
	_, _, err = execute(t, "walk", "path", "--n", "5", "--start", "2", "--ants", "10")
	assert.ErrorIs(t, err, colony.ErrNoSolutionFound)

	_, _, err = execute(t, "walk", "torus")
	assert.ErrorIs(t, err, errUnknownTopology)

	_, _, err = execute(t, "walk", "path", "--n", "3", "--start", "3")
	assert.Error(t, err)

	_, _, err = execute(t, "walk")
	assert.Error(t, err)
}
