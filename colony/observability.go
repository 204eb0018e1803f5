package colony

import (
	"context"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// TracerName is the instrumentation scope used by callers wiring otel.Tracer.
const TracerName = "github.com/katalvlaran/aco/colony"

func defaultTracer() trace.Tracer {
	return noop.NewTracerProvider().Tracer(TracerName)
}

// startRun opens the colony.run span.
func (c *Colony) startRun(ctx context.Context, runID uuid.UUID) (context.Context, trace.Span) {
	return c.tracer.Start(ctx, "colony.run",
		trace.WithAttributes(
			attribute.String("aco.run.id", runID.String()),
			attribute.Int("aco.ants", c.totalAnts),
			attribute.Int("aco.workers", c.workers),
			attribute.Int("aco.nodes", c.cctx.store.NodeCount()),
			attribute.Int("aco.edges", c.cctx.store.EdgeCount()),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// endRun records the outcome on span and ends it. res may be nil on error.
func endRun(span trace.Span, res *Result, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}

	if res != nil {
		span.SetAttributes(
			attribute.Int("aco.result.valid", res.Valid),
			attribute.Int("aco.result.invalid", res.Invalid),
			attribute.Int("aco.result.best_ant", res.BestAnt),
			attribute.Float64("aco.result.best_objective", res.BestObjective),
		)
	}

	span.End()
}
