package colony_test

import (
	"testing"

	"github.com/katalvlaran/aco/colony"
	"github.com/katalvlaran/aco/graph"
	"github.com/katalvlaran/aco/pheromone"
	"github.com/stretchr/testify/require"
)

// lengthSolution is valid once it visits want nodes; its objective is value.
type lengthSolution struct {
	colony.Walk
	want  int
	value float64
}

func (s *lengthSolution) Valid() bool        { return s.Len() >= s.want }
func (s *lengthSolution) Objective() float64 { return s.value }

func lengthFactory(want int, value float64) colony.SolutionFactory {
	return func() colony.Solution { return &lengthSolution{want: want, value: value} }
}

// presetSolution has a fixed verdict chosen when the factory creates it.
type presetSolution struct {
	colony.Walk
	valid bool
	value float64
}

func (s *presetSolution) Valid() bool        { return s.valid }
func (s *presetSolution) Objective() float64 { return s.value }

// recordingFactory numbers its solutions 1..n and keeps every instance.
type recordingFactory struct {
	made    []*presetSolution
	verdict func(k int) (valid bool, value float64)
}

func (f *recordingFactory) New() colony.Solution {
	k := len(f.made) + 1
	valid, value := f.verdict(k)
	s := &presetSolution{valid: valid, value: value}
	f.made = append(f.made, s)
	return s
}

// completeNodes returns n fully connected nodes with ids 1..n.
func completeNodes(t testing.TB, n int) []graph.Node {
	t.Helper()

	seq := graph.NewSequence(0)
	basic := make([]*graph.BasicNode, n)
	for i := range basic {
		basic[i] = graph.NewBasicNode(seq)
	}
	require.NoError(t, graph.CompleteAdjacency(basic))

	out := make([]graph.Node, n)
	for i, b := range basic {
		out[i] = b
	}
	return out
}

func newContext(t testing.TB, nodes []graph.Node, p pheromone.Policy, f colony.SolutionFactory, seed int64) *colony.Context {
	t.Helper()

	cctx, err := colony.NewContext(colony.Config{Nodes: nodes, Policy: p, NewSolution: f, Seed: seed})
	require.NoError(t, err)
	return cctx
}

func levels(s *graph.Store) []int64 {
	edges := s.Edges()
	out := make([]int64, len(edges))
	for i, e := range edges {
		out[i] = e.Pheromone()
	}
	return out
}

func nodeIDs(s colony.Solution) []graph.NodeID {
	nodes := s.Nodes()
	out := make([]graph.NodeID, len(nodes))
	for i, n := range nodes {
		out[i] = n.ID()
	}
	return out
}
