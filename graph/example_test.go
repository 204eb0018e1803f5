package graph_test

import (
	"fmt"

	"github.com/katalvlaran/aco/graph"
	"github.com/katalvlaran/aco/pheromone"
)

// ExampleStore_Update shows one pheromone cycle on a path A–B–C.
func ExampleStore_Update() {
	seq := graph.NewSequence(0)
	a, b, c := graph.NewBasicNode(seq), graph.NewBasicNode(seq), graph.NewBasicNode(seq)
	_ = graph.Link(a, b)
	_ = graph.Link(b, c)

	store, err := graph.NewStore([]graph.Node{a, b, c}, pheromone.MustNew(10, 0.5, pheromone.Constant(4)))
	if err != nil {
		fmt.Println(err)
		return
	}

	_ = store.Update([]graph.NodeID{a.ID(), b.ID()}, 1)
	for _, e := range store.Edges() {
		fmt.Println(e)
	}
	// Output:
	// 1–2(7)
	// 2–3(5)
}
