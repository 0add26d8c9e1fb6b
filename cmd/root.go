package cmd

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/seek-sim/sim"
	"github.com/inference-sim/seek-sim/sim/report"
	"github.com/inference-sim/seek-sim/sim/trace"
	"github.com/inference-sim/seek-sim/sim/workload"
)

var (
	// CLI flags shared by every source command
	headPosition int    // Track the head rests on before the first seek
	logLevel     string // Log verbosity level
	policies     string // Comma-separated scheduler names
	batchSize    int    // Requests per scheduling window (0 = all at once)
	outputFormat string // text, table or json
	listOrders   bool   // Print serviced orders
	noColor      bool   // Disable colored headers
	traceLevel   string // none or seeks

	// rand-only flags
	seed int64 // Seed for random request generation (0 = time-based)

	// settings resolved once per invocation by setupLogging
	runConfig *EnvConfig
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "seek-sim",
	Short: "Disk head scheduling simulator (FCFS, SSTF, SCAN)",
	Long: "Simulates a disk head servicing track requests and reports the total\n" +
		"head travel under first-come-first-served, shortest-seek-first and\n" +
		"elevator scheduling.",
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
}

// fileCmd reads requests from a named file
var fileCmd = &cobra.Command{
	Use:   "file <path>",
	Short: "Read disk seeks from the file at path",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tracks, readReport, err := workload.ReadTracksFile(args[0])
		if err != nil {
			return err
		}
		return simulate(cmd, args[0], tracks, readReport.Skipped(), nil)
	},
}

// inCmd reads requests from standard input
var inCmd = &cobra.Command{
	Use:   "in",
	Short: "Read disk seeks from stdin",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tracks, readReport, err := workload.ReadTracks(cmd.InOrStdin(), "stdin")
		if err != nil {
			return err
		}
		return simulate(cmd, "stdin", tracks, readReport.Skipped(), nil)
	},
}

// randCmd generates uniform random requests
var randCmd = &cobra.Command{
	Use:   "rand <number>",
	Short: "Use the given number of random disk seeks",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 0 {
			return fmt.Errorf("invalid request count %q: must be a non-negative integer", args[0])
		}
		tracks, err := workload.GenerateRequests(seed, n)
		if err != nil {
			return err
		}
		return simulate(cmd, fmt.Sprintf("rand(%d)", n), tracks, 0, nil)
	},
}

// scenarioCmd runs a YAML scenario
var scenarioCmd = &cobra.Command{
	Use:   "scenario <path.yaml>",
	Short: "Run the scenario described by a YAML file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		spec, err := workload.LoadScenarioSpec(args[0])
		if err != nil {
			return err
		}
		if err := spec.Validate(); err != nil {
			return fmt.Errorf("invalid scenario %s: %w", args[0], err)
		}
		tracks, err := spec.LoadRequests()
		if err != nil {
			return err
		}
		return simulate(cmd, args[0], tracks, 0, spec)
	},
}

// setupLogging applies the resolved log level before any command runs.
func setupLogging(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q", cfg.LogLevel)
	}
	logrus.SetLevel(level)
	runConfig = cfg
	return nil
}

// resolveConfig layers defaults, SEEKSIM_* environment and explicitly set flags.
func resolveConfig(cmd *cobra.Command) (*EnvConfig, error) {
	cfg, err := LoadEnvConfig()
	if err != nil {
		return nil, err
	}
	flags := cmd.Flags()
	if flags.Changed("head") {
		cfg.Head = headPosition
	}
	if flags.Changed("log") {
		cfg.LogLevel = logLevel
	}
	if flags.Changed("policies") {
		cfg.Policies = policies
	}
	if flags.Changed("output") {
		cfg.Output = outputFormat
	}
	return cfg, nil
}

// buildSimConfig turns resolved settings into a validated-ready SimConfig.
// A scenario, when given, overrides anything not explicitly set on the command line.
func buildSimConfig(cmd *cobra.Command, cfg *EnvConfig, spec *workload.ScenarioSpec) sim.SimConfig {
	simCfg := sim.DefaultSimConfig()
	simCfg.StartPosition = cfg.Head
	simCfg.Policies = sim.ParsePolicies(cfg.Policies)
	simCfg.BatchSize = batchSize
	simCfg.TraceLevel = trace.TraceLevel(traceLevel)

	if spec == nil {
		return simCfg
	}
	fromSpec := spec.Apply(simCfg)
	flags := cmd.Flags()
	if flags.Changed("head") {
		fromSpec.StartPosition = simCfg.StartPosition
	}
	if flags.Changed("policies") {
		fromSpec.Policies = simCfg.Policies
	}
	if flags.Changed("batch-size") {
		fromSpec.BatchSize = simCfg.BatchSize
	}
	if flags.Changed("trace") {
		fromSpec.TraceLevel = simCfg.TraceLevel
	}
	return fromSpec
}

// simulate runs every policy on tracks and renders the report to the command's stdout.
func simulate(cmd *cobra.Command, source string, tracks []int, skipped int, spec *workload.ScenarioSpec) error {
	cfg := runConfig
	if cfg == nil {
		var err error
		if cfg, err = resolveConfig(cmd); err != nil {
			return err
		}
	}
	if !report.IsValidFormat(cfg.Output) {
		return fmt.Errorf("unknown output format %q (valid: text, table, json)", cfg.Output)
	}

	s, err := sim.NewSimulator(buildSimConfig(cmd, cfg, spec), tracks)
	if err != nil {
		return err
	}

	startTime := time.Now()
	results := s.Run()
	logrus.Infof("Simulation of %d requests from %s complete in %s", len(tracks), source, time.Since(startTime))

	r := &report.Report{
		Source:        source,
		StartPosition: s.Config.StartPosition,
		BatchSize:     s.Config.BatchSize,
		Requests:      len(tracks),
		Skipped:       skipped,
		Results:       results,
	}
	return report.Write(cmd.OutOrStdout(), r, report.Options{
		Format:     report.Format(cfg.Output),
		ListOrders: listOrders,
		Color:      !noColor,
	})
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&headPosition, "head", sim.DefaultHeadPosition, "Initial head position (overrides SEEKSIM_HEAD)")
	pf.StringVar(&logLevel, "log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")
	pf.StringVar(&policies, "policies", "fcfs,sstf,scan", "Comma-separated scheduling policies (fcfs, sstf, scan|elevator)")
	pf.IntVar(&batchSize, "batch-size", 0, "Requests per scheduling window; head state carries across windows (0 = all at once)")
	pf.StringVar(&outputFormat, "output", "text", "Output format (text, table, json)")
	pf.BoolVar(&listOrders, "list", true, "Print the serviced order for each policy")
	pf.BoolVar(&noColor, "no-color", false, "Disable colored output")
	pf.StringVar(&traceLevel, "trace", "none", "Seek trace level (none, seeks); seeks are included in json output")

	randCmd.Flags().Int64Var(&seed, "seed", 0, "Seed for random request generation (0 = time-based)")

	rootCmd.AddCommand(fileCmd, inCmd, randCmd, scenarioCmd)
}
