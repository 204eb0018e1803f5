// Package colony drives Ant Colony Optimization runs over a graph.Store.
//
// A run is a sequence of ants. Each ant starts at a node (or a random one when
// the start is graph.RandomStart), walks unvisited neighbours chosen by the
// pheromone roulette, and stops when no candidate remains or when its Solution
// reports itself valid. Valid solutions reinforce the edges they used; after
// every reinforcement all edges evaporate once. The best valid solution wins,
// with later ants replacing earlier ones on equal objective.
//
// The problem is plugged in through three contracts:
//
//	Solution         Extend / Nodes / Valid / Objective, one value per ant
//	SolutionFactory  func() Solution, called once per ant
//	pheromone.Policy initial level, evaporation rate, deposit function
//
// Construction:
//
//	cctx, err := colony.NewContext(colony.Config{
//		Nodes:       nodes,
//		Policy:      pheromone.MustNew(10, 0.1, pheromone.Scaled(100)),
//		NewSolution: func() colony.Solution { return newTour(len(nodes)) },
//		Seed:        42,
//	})
//	c, err := colony.New(cctx, 500, colony.WithLogger(logger))
//	best, err := c.Run(ctx, graph.RandomStart)
//
// NewContext reports every configuration problem at once (errors.Join), so a
// single errors.Is check per sentinel is enough.
//
// Concurrency:
//
// By default ants run strictly one after another and ant i+1 sees the pheromone
// left by ant i. WithWorkers(n) releases ants in generations of n goroutines;
// walks only read pheromone, and all updates of a generation are applied
// afterwards in ant order, so a fixed seed still gives a fixed result.
//
// Observability: WithLogger (slog), WithMetrics (Prometheus) and WithTracer
// (OpenTelemetry). All default to no-ops.
package colony
