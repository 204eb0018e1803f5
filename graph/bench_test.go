package graph_test

import (
	"testing"

	"github.com/katalvlaran/aco/graph"
	"github.com/katalvlaran/aco/pheromone"
)

func benchStore(b *testing.B, n int) *graph.Store {
	b.Helper()

	seq := graph.NewSequence(0)
	basic := make([]*graph.BasicNode, n)
	nodes := make([]graph.Node, n)
	for i := range basic {
		basic[i] = graph.NewBasicNode(seq)
		nodes[i] = basic[i]
	}
	if err := graph.CompleteAdjacency(basic); err != nil {
		b.Fatal(err)
	}
	s, err := graph.NewStore(nodes, pheromone.MustNew(10, 0.1, pheromone.Constant(5)))
	if err != nil {
		b.Fatal(err)
	}
	return s
}

func BenchmarkStore_SelectNext(b *testing.B) {
	s := benchStore(b, 100)
	candidates, err := s.Adjacency(1)
	if err != nil {
		b.Fatal(err)
	}
	rng := graph.NewRand(1)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = s.SelectNext(rng, 1, candidates); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkStore_Update(b *testing.B) {
	s := benchStore(b, 100)
	ids := make([]graph.NodeID, 100)
	for i := range ids {
		ids[i] = graph.NodeID(i + 1)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := s.Update(ids, 1); err != nil {
			b.Fatal(err)
		}
	}
}
