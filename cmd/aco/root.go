package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/aco/colony"
	"github.com/katalvlaran/aco/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "aco",
	Short: "aco searches graphs with an ant colony",
	Long: `aco releases ants over a graph, reinforces the edges of good walks with
pheromone and reports the best solution found.`,
	SilenceUsage:       true,
	SilenceErrors:      true,
	PersistentPreRunE:  setupEnv,
	PersistentPostRunE: teardownEnv,
}

// env is the per-invocation state shared by the subcommands.
var env struct {
	logger   *slog.Logger
	registry *prometheus.Registry
	metrics  *colony.Metrics
	provider *sdktrace.TracerProvider
	tracer   trace.Tracer
}

// Execute runs the root command; SIGINT cancels a running colony between ants.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "info", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("metrics-out", "", "write Prometheus metrics to this file after the run")
	rootCmd.PersistentFlags().Bool("trace", false, "print OpenTelemetry spans to stderr")
}

func setupEnv(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()

	name, _ := flags.GetString("log-level")
	level, err := logging.ParseLevel(name)
	if err != nil {
		return err
	}
	env.logger = logging.NewWriter(cmd.ErrOrStderr(), level)

	env.registry = prometheus.NewRegistry()
	if env.metrics, err = colony.NewMetrics(env.registry); err != nil {
		return fmt.Errorf("metrics: %w", err)
	}

	env.provider, env.tracer = nil, nil
	if on, _ := flags.GetBool("trace"); on {
		if env.provider, err = newTracerProvider(cmd.ErrOrStderr()); err != nil {
			return fmt.Errorf("trace: %w", err)
		}
		env.tracer = env.provider.Tracer(tracerName)
	}
	return nil
}

func teardownEnv(cmd *cobra.Command, _ []string) error {
	var errs []error
	if env.provider != nil {
		if err := env.provider.Shutdown(cmd.Context()); err != nil {
			errs = append(errs, fmt.Errorf("trace: %w", err))
		}
	}
	if path, _ := cmd.Flags().GetString("metrics-out"); path != "" {
		if err := prometheus.WriteToTextfile(path, env.registry); err != nil {
			errs = append(errs, fmt.Errorf("metrics: %w", err))
		}
	}
	return errors.Join(errs...)
}

// colonyOptions returns the ambient colony options built by setupEnv.
func colonyOptions() []colony.Option {
	opts := []colony.Option{
		colony.WithLogger(env.logger),
		colony.WithMetrics(env.metrics),
	}
	if env.tracer != nil {
		opts = append(opts, colony.WithTracer(env.tracer))
	}
	return opts
}
