package colony

import "github.com/katalvlaran/aco/graph"

// Solution is one ant's walk together with the problem's judgement of it.
// Implementations are not shared between ants, so they need no locking.
type Solution interface {
	// Extend appends n to the walk.
	Extend(n graph.Node)
	// Nodes returns the walk in visiting order.
	Nodes() []graph.Node
	// Valid reports whether the walk is a complete, feasible answer.
	Valid() bool
	// Objective scores a valid walk; larger is better.
	Objective() float64
}

// SolutionFactory returns a fresh, empty Solution for each ant.
// With WithWorkers(n>1) it is called from several goroutines at once.
type SolutionFactory func() Solution

// Walk is the embeddable node sequence behind most Solution implementations.
// A type embedding Walk only has to add Valid and Objective.
type Walk struct {
	nodes []graph.Node
}

// Extend implements Solution.
func (w *Walk) Extend(n graph.Node) { w.nodes = append(w.nodes, n) }

// Nodes implements Solution. The returned slice is a copy.
func (w *Walk) Nodes() []graph.Node { return append([]graph.Node(nil), w.nodes...) }

// Len returns the number of visited nodes.
func (w *Walk) Len() int { return len(w.nodes) }

// IDs returns the visited node ids in order.
func (w *Walk) IDs() []graph.NodeID { return ids(w.nodes) }

// At returns the i-th visited node.
func (w *Walk) At(i int) graph.Node { return w.nodes[i] }

func ids(nodes []graph.Node) []graph.NodeID {
	out := make([]graph.NodeID, len(nodes))
	for i, n := range nodes {
		out[i] = n.ID()
	}
	return out
}
