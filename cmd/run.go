package cmd

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/fieldsim/fieldsim/sim"
	"github.com/fieldsim/fieldsim/sim/trace"
)

var (
	// CLI flags for a single run
	seed             int64   // Seed for the inter-arrival and complexity streams
	meanInterArrival float64 // Mean inter-arrival time (seconds)
	meanComplexity   float64 // Mean field complexity (fobs)
	bufferCapacity   int     // Encoder buffer size (fields)
	horizon          float64 // Simulation horizon (seconds)
	traceLevel       string  // Trace verbosity
)

// runCmd executes a single simulation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one simulation and print its metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !trace.IsValidTraceLevel(traceLevel) {
			return fmt.Errorf("invalid --trace-level %q: valid levels are none, events", traceLevel)
		}

		cfg := sim.DefaultRunConfig(meanInterArrival, meanComplexity, bufferCapacity)
		cfg.Horizon = horizon

		s, err := sim.NewSimulator(cfg, sim.NewExponentialSource(seed))
		if err != nil {
			return err
		}
		s.EnableTrace(trace.TraceLevel(traceLevel))

		startTime := time.Now()
		r := s.Run()
		logrus.Infof("Simulation complete in %s", time.Since(startTime))

		out := cmd.OutOrStdout()
		r.Print(out)
		encLoad, stLoad := sim.OfferedLoad(cfg)
		_, _ = fmt.Fprintf(out, "Offered load (encoder) : %g\n", encLoad)
		_, _ = fmt.Fprintf(out, "Offered load (storage) : %g\n", stLoad)

		if s.Trace != nil {
			printTraceSummary(cmd, trace.Summarize(s.Trace))
		}
		return nil
	},
}

func printTraceSummary(cmd *cobra.Command, ts *trace.TraceSummary) {
	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintln(out, "=== Trace Summary ===")
	_, _ = fmt.Fprintf(out, "Arrivals               : %d (%d admitted)\n", ts.Arrivals, ts.Admitted)
	_, _ = fmt.Fprintf(out, "Discards               : %d\n", ts.Discards)
	for _, reason := range []string{trace.ReasonOverflow, trace.ReasonPairedOverflow, trace.ReasonOrphan} {
		_, _ = fmt.Fprintf(out, "  %-20s : %d\n", reason, ts.DiscardsByReason[reason])
	}
	_, _ = fmt.Fprintf(out, "Pairs served           : %d (%d mismatched)\n", ts.PairsServed, ts.MismatchedPairs)
}

func init() {
	runCmd.Flags().Int64Var(&seed, "seed", 42, "Seed for random field generation")
	runCmd.Flags().Float64Var(&meanInterArrival, "inter-arrival", 1.0/120.0, "Mean inter-arrival time between fields (seconds)")
	runCmd.Flags().Float64Var(&meanComplexity, "complexity", 200, "Mean field complexity (fobs)")
	runCmd.Flags().IntVar(&bufferCapacity, "buffer", 20, "Encoder buffer size (fields)")
	runCmd.Flags().Float64Var(&horizon, "horizon", sim.DefaultHorizon, "Simulation horizon (seconds)")
	runCmd.Flags().StringVar(&traceLevel, "trace-level", "none", "Trace verbosity (none, events); events prints a trace summary")
}
