// SPDX-License-Identifier: MIT
// Package: aco/colony
//
// colony.go — the optimization driver.
//
// Algorithm (per Run):
//   1) best := none.
//   2) For each of totalAnts ants: walk := ReleaseAnt(start).
//        • invalid walk → skip (no best tracking, no pheromone update);
//        • value := walk.Objective(); value >= bestValue → walk becomes best (last wins);
//        • UpdatePheromone(walk) for every valid walk.
//   3) best == none → ErrNoSolutionFound.
//
// Cancellation:
//   • ctx is checked between ants (and between generations in parallel mode);
//     a walk in progress is never interrupted.

package colony

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/aco/graph"
)

// Colony releases a fixed number of ants over a Context.
//
// A Colony may be Run several times; pheromone persists in the Context between
// runs. Run calls on the same Colony must not overlap.
type Colony struct {
	cctx      *Context
	totalAnts int
	workers   int

	logger  *slog.Logger
	tracer  trace.Tracer
	metrics *Metrics
}

// Result is the detailed outcome of RunDetailed.
type Result struct {
	// RunID correlates logs and spans of one run.
	RunID uuid.UUID
	// Best is the winning solution and BestObjective its value.
	Best          Solution
	BestObjective float64
	// BestAnt is the 0-based index of the ant that produced Best.
	BestAnt int
	// Ants, Valid and Invalid count released ants by outcome.
	Ants    int
	Valid   int
	Invalid int
	// MeanObjective and StdDevObjective summarize all valid objectives.
	// StdDevObjective is 0 for fewer than two valid solutions.
	MeanObjective   float64
	StdDevObjective float64
	// Duration is the wall time of the run.
	Duration time.Duration
}

// New builds a Colony that releases totalAnts ants per Run.
// totalAnts == 0 is accepted; such a Run reports ErrNoSolutionFound.
//
// Errors: ErrNilContext, ErrInvalidAntCount.
func New(cctx *Context, totalAnts int, opts ...Option) (*Colony, error) {
	if cctx == nil {
		return nil, fmt.Errorf("New: %w", ErrNilContext)
	}
	if totalAnts < 0 {
		return nil, fmt.Errorf("New: totalAnts=%d: %w", totalAnts, ErrInvalidAntCount)
	}

	c := &Colony{
		cctx:      cctx,
		totalAnts: totalAnts,
		workers:   1,
		logger:    discardLogger(),
		tracer:    defaultTracer(),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Context returns the run context the colony walks on.
func (c *Colony) Context() *Context { return c.cctx }

// Run releases all ants starting at initial (graph.RandomStart for a random
// node each time) and returns the best valid solution.
func (c *Colony) Run(ctx context.Context, initial graph.NodeID) (Solution, error) {
	res, err := c.RunDetailed(ctx, initial)
	if err != nil {
		return nil, err
	}
	return res.Best, nil
}

// RunDetailed is Run with run statistics.
//
// Errors: ErrNoSolutionFound, ctx.Err() (wrapped) when cancelled between ants,
// and any ReleaseAnt/UpdatePheromone error.
func (c *Colony) RunDetailed(ctx context.Context, initial graph.NodeID) (*Result, error) {
	started := time.Now()
	runID := uuid.New()

	ctx, span := c.startRun(ctx, runID)
	logger := c.logger.With(slog.String("run_id", runID.String()))
	logger.InfoContext(ctx, "colony run started",
		slog.Int("ants", c.totalAnts),
		slog.Int("workers", c.workers),
		slog.Int("nodes", c.cctx.store.NodeCount()),
		slog.Int("edges", c.cctx.store.EdgeCount()),
	)

	r := &run{
		colony:     c,
		logger:     logger,
		res:        &Result{RunID: runID, BestAnt: -1},
		objectives: make([]float64, 0, c.totalAnts),
	}

	var err error
	if c.workers > 1 {
		err = r.parallel(ctx, initial)
	} else {
		err = r.sequential(ctx, initial)
	}
	if err == nil && r.res.Best == nil {
		err = fmt.Errorf("Run: %d ants: %w", c.totalAnts, ErrNoSolutionFound)
	}

	res := r.finish(time.Since(started))
	c.metrics.observeRun(res.Duration.Seconds())

	if err != nil {
		endRun(span, res, err)
		logger.WarnContext(ctx, "colony run failed",
			slog.Int("ants", res.Ants),
			slog.Int("valid", res.Valid),
			slog.Duration("elapsed", res.Duration),
			slog.Any("error", err),
		)
		return nil, err
	}

	endRun(span, res, nil)
	logger.InfoContext(ctx, "colony run completed",
		slog.Int("ants", res.Ants),
		slog.Int("valid", res.Valid),
		slog.Int("best_ant", res.BestAnt),
		slog.Float64("best_objective", res.BestObjective),
		slog.Duration("elapsed", res.Duration),
	)
	return res, nil
}

// run is the mutable state of one RunDetailed call.
type run struct {
	colony     *Colony
	logger     *slog.Logger
	res        *Result
	objectives []float64
}

func (r *run) sequential(ctx context.Context, initial graph.NodeID) error {
	c := r.colony
	for ant := 0; ant < c.totalAnts; ant++ {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("Run: ant %d: %w", ant, err)
		}
		s, err := c.cctx.ReleaseAnt(initial)
		if err != nil {
			return fmt.Errorf("Run: ant %d: %w", ant, err)
		}
		if err = r.observe(ctx, ant, s); err != nil {
			return err
		}
	}
	return nil
}

// parallel walks each generation concurrently on derived RNG streams, then
// applies the generation's outcomes in ant order.
func (r *run) parallel(ctx context.Context, initial graph.NodeID) error {
	c := r.colony
	var (
		rngs = make([]*rand.Rand, c.workers)
		sols = make([]Solution, c.workers)
	)
	for base := 0; base < c.totalAnts; base += c.workers {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("Run: ant %d: %w", base, err)
		}
		n := min(c.workers, c.totalAnts-base)
		for i := 0; i < n; i++ {
			rngs[i] = c.cctx.deriveRand(uint64(base + i))
		}

		var g errgroup.Group
		for i := 0; i < n; i++ {
			i := i
			g.Go(func() error {
				s, err := c.cctx.releaseAnt(rngs[i], initial)
				if err != nil {
					return fmt.Errorf("Run: ant %d: %w", base+i, err)
				}
				sols[i] = s
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}

		for i := 0; i < n; i++ {
			if err := r.observe(ctx, base+i, sols[i]); err != nil {
				return err
			}
			sols[i] = nil
		}
	}
	return nil
}

// observe applies one finished walk: best tracking and pheromone update.
func (r *run) observe(ctx context.Context, ant int, s Solution) error {
	c := r.colony
	r.res.Ants++
	c.metrics.antReleased()

	if !s.Valid() {
		r.res.Invalid++
		c.metrics.solution(false)
		r.logger.DebugContext(ctx, "ant produced invalid solution",
			slog.Int("ant", ant),
			slog.Int("length", len(s.Nodes())),
		)
		return nil
	}

	value := s.Objective()
	r.res.Valid++
	r.objectives = append(r.objectives, value)
	c.metrics.solution(true)

	if r.res.Best == nil || value >= r.res.BestObjective {
		r.res.Best = s
		r.res.BestObjective = value
		r.res.BestAnt = ant
		c.metrics.best(value)
		r.logger.DebugContext(ctx, "new best solution",
			slog.Int("ant", ant),
			slog.Float64("objective", value),
		)
	}

	if err := c.cctx.updatePheromone(s, value); err != nil {
		return fmt.Errorf("Run: ant %d: %w", ant, err)
	}
	c.metrics.pheromoneUpdated()
	return nil
}

func (r *run) finish(elapsed time.Duration) *Result {
	r.res.Duration = elapsed
	switch len(r.objectives) {
	case 0:
	case 1:
		r.res.MeanObjective = r.objectives[0]
	default:
		r.res.MeanObjective, r.res.StdDevObjective = stat.MeanStdDev(r.objectives, nil)
	}
	return r.res
}
