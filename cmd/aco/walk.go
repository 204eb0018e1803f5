package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/aco/builder"
	"github.com/katalvlaran/aco/colony"
	"github.com/katalvlaran/aco/graph"
	"github.com/katalvlaran/aco/pheromone"
)

var (
	errUnknownTopology = errors.New("unknown topology")
	errUnreachable     = errors.New("not every node is reachable from the start node")
)

var walkCmd = &cobra.Command{
	Use:   "walk <complete|cycle|path|star|wheel|grid|sparse>",
	Short: "Search a path that visits every node of a generated topology",
	Long: `Builds a topology and releases ants over it. A walk is valid once it has
visited every node, so a success is a Hamiltonian path from the start node.`,
	Args: cobra.ExactArgs(1),
	RunE: runWalk,
}

func init() {
	f := walkCmd.Flags()
	f.Int("n", 8, "number of nodes (all topologies but grid)")
	f.Int("rows", 3, "grid rows")
	f.Int("cols", 3, "grid columns")
	f.Float64("p", 0.5, "edge probability for sparse")
	f.Int("ants", 100, "number of ants")
	f.Int("workers", 1, "ants walking concurrently")
	f.Int64("seed", 0, "RNG seed for the topology and the colony")
	f.Int("start", 0, "start node index; -1 picks a random node per ant")

	rootCmd.AddCommand(walkCmd)
}

// coverage is valid once it holds every node of the topology.
type coverage struct {
	colony.Walk
	want int
}

func (c *coverage) Valid() bool        { return c.Len() == c.want }
func (c *coverage) Objective() float64 { return float64(c.Len()) }

func topology(kind string, cmd *cobra.Command) (builder.Constructor, error) {
	f := cmd.Flags()
	n, _ := f.GetInt("n")
	switch kind {
	case "complete":
		return builder.Complete(n), nil
	case "cycle":
		return builder.Cycle(n), nil
	case "path":
		return builder.Path(n), nil
	case "star":
		return builder.Star(n), nil
	case "wheel":
		return builder.Wheel(n), nil
	case "grid":
		rows, _ := f.GetInt("rows")
		cols, _ := f.GetInt("cols")
		return builder.Grid(rows, cols), nil
	case "sparse":
		p, _ := f.GetFloat64("p")
		return builder.RandomSparse(n, p), nil
	}
	return nil, fmt.Errorf("%w %q", errUnknownTopology, kind)
}

func runWalk(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	ants, _ := flags.GetInt("ants")
	workers, _ := flags.GetInt("workers")
	seed, _ := flags.GetInt64("seed")
	start, _ := flags.GetInt("start")
	if workers < 1 {
		return fmt.Errorf("walk: workers=%d < 1", workers)
	}

	cons, err := topology(args[0], cmd)
	if err != nil {
		return err
	}
	topo, err := builder.Build([]builder.BuilderOption{builder.WithSeed(seed)}, cons)
	if err != nil {
		return err
	}

	initial := graph.RandomStart
	if start >= 0 {
		if start >= topo.Len() {
			return fmt.Errorf("walk: start=%d, nodes=%d: %w", start, topo.Len(), graph.ErrNodeNotFound)
		}
		initial = topo.Vertices()[start].ID()
	}

	want := topo.Len()
	cctx, err := colony.NewContext(colony.Config{
		Nodes:       topo.Nodes(),
		Policy:      pheromone.MustNew(10, 0.1, pheromone.Linear()),
		NewSolution: func() colony.Solution { return &coverage{want: want} },
		Seed:        seed,
	})
	if err != nil {
		return err
	}
	if initial != graph.RandomStart {
		spans, err := cctx.Store().Spans(initial)
		if err != nil {
			return err
		}
		if !spans {
			return fmt.Errorf("walk: %s: %w", args[0], errUnreachable)
		}
	}
	c, err := colony.New(cctx, ants, append(colonyOptions(), colony.WithWorkers(workers))...)
	if err != nil {
		return err
	}
	res, err := c.RunDetailed(cmd.Context(), initial)
	if err != nil {
		return err
	}

	labels := topo.Labels()
	path := make([]string, 0, want)
	for _, node := range res.Best.Nodes() {
		path = append(path, labels[node.ID()])
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "topology: %s, %d nodes, %d edges\n", args[0], topo.Len(), topo.EdgeCount())
	fmt.Fprintf(out, "path:     %s\n", strings.Join(path, " -> "))
	fmt.Fprintf(out, "ants:     %d valid, %d total\n", res.Valid, res.Ants)
	fmt.Fprintf(out, "run:      %s\n", res.RunID)
	return nil
}
