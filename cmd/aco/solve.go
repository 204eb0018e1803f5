package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/aco/internal/config"
	"github.com/katalvlaran/aco/tsp"
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Find a short round trip through the cities of a problem file",
	Long: `Loads a YAML problem file (cities plus colony settings), runs the colony
and prints the best closed tour. Flags override the colony section.`,
	Args: cobra.NoArgs,
	RunE: runSolve,
}

func init() {
	f := solveCmd.Flags()
	f.StringP("config", "c", "", "problem file (YAML)")
	f.Int("ants", 0, "override colony.ants")
	f.Int("workers", 0, "override colony.workers")
	f.Int64("seed", 0, "override colony.seed")
	f.Bool("two-opt", false, "override colony.two_opt")
	f.Bool("json", false, "print the result as JSON")
	_ = solveCmd.MarkFlagRequired("config")

	rootCmd.AddCommand(solveCmd)
}

// solveReport is the JSON form of a solve result.
type solveReport struct {
	Problem      string   `json:"problem,omitempty"`
	RunID        string   `json:"run_id"`
	Tour         []string `json:"tour"`
	Indices      []int    `json:"indices"`
	Length       float64  `json:"length"`
	ColonyLength float64  `json:"colony_length"`
	Baseline     float64  `json:"nearest_neighbour_length"`
	Ants         int      `json:"ants"`
	Valid        int      `json:"valid"`
	Seconds      float64  `json:"seconds"`
}

func runSolve(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()
	path, _ := flags.GetString("config")

	p, err := config.Load(path)
	if err != nil {
		return err
	}
	if flags.Changed("ants") {
		p.Colony.Ants, _ = flags.GetInt("ants")
	}
	if flags.Changed("workers") {
		p.Colony.Workers, _ = flags.GetInt("workers")
	}
	if flags.Changed("seed") {
		p.Colony.Seed, _ = flags.GetInt64("seed")
	}
	if flags.Changed("two-opt") {
		p.Colony.TwoOpt, _ = flags.GetBool("two-opt")
	}
	if err = p.Validate(); err != nil {
		return err
	}

	opts := append(p.Options(), tsp.WithLogger(env.logger), tsp.WithMetrics(env.metrics))
	if env.tracer != nil {
		opts = append(opts, tsp.WithTracer(env.tracer))
	}

	env.logger.Debug("solving", "problem", p.Name, "cities", len(p.Cities), "ants", p.Colony.Ants)
	res, err := tsp.Solve(cmd.Context(), p.Cities, opts...)
	if err != nil {
		return err
	}

	report := solveReport{
		Problem:      p.Name,
		RunID:        res.Run.RunID.String(),
		Tour:         res.Names(p.Cities),
		Indices:      res.Tour,
		Length:       res.Length,
		ColonyLength: res.ColonyLength,
		Baseline:     res.Baseline,
		Ants:         res.Run.Ants,
		Valid:        res.Run.Valid,
		Seconds:      res.Run.Duration.Seconds(),
	}
	out := cmd.OutOrStdout()
	if asJSON, _ := flags.GetBool("json"); asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	if report.Problem != "" {
		fmt.Fprintf(out, "problem: %s\n", report.Problem)
	}
	fmt.Fprintf(out, "tour:    %s\n", strings.Join(stopNames(report.Tour, report.Indices), " -> "))
	fmt.Fprintf(out, "length:  %.6f\n", report.Length)
	fmt.Fprintf(out, "colony:  %.6f (nearest neighbour %.6f)\n", report.ColonyLength, report.Baseline)
	fmt.Fprintf(out, "ants:    %d valid, %d total\n", report.Valid, report.Ants)
	fmt.Fprintf(out, "run:     %s\n", report.RunID)
	return nil
}

// stopNames falls back to the city index for unnamed cities.
func stopNames(names []string, indices []int) []string {
	out := make([]string, len(names))
	for i, name := range names {
		if name == "" {
			name = fmt.Sprintf("#%d", indices[i])
		}
		out[i] = name
	}
	return out
}
