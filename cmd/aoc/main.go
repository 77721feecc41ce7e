// aoc runs the Advent of Code 2024 grid puzzles.
//
// Usage:
//
//	aoc list                  - List available days
//	aoc run [day...]          - Solve the given days (all when none given)
//
// Global flags:
//
//	--config <path>      - Config file (default: ~/.aoc24/config.yaml, then ./configs/aoc.yaml)
//	--input-dir <dir>    - Directory holding day_NN.txt files
//	--log-level <level>  - debug, info, warn or error
//	--cpuprofile <dir>   - Write a CPU profile into dir
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/aoc24/internal/config"

	// Import days to register them
	_ "github.com/katalvlaran/aoc24/internal/days/day04"
	_ "github.com/katalvlaran/aoc24/internal/days/day06"
	_ "github.com/katalvlaran/aoc24/internal/days/day08"
	_ "github.com/katalvlaran/aoc24/internal/days/day10"
	_ "github.com/katalvlaran/aoc24/internal/days/day12"
	_ "github.com/katalvlaran/aoc24/internal/days/day15"
	_ "github.com/katalvlaran/aoc24/internal/days/day16"
	_ "github.com/katalvlaran/aoc24/internal/days/day18"
	_ "github.com/katalvlaran/aoc24/internal/days/day20"
)

var (
	// Global flags
	flagConfig     string
	flagInputDir   string
	flagLogLevel   string
	flagCPUProfile string

	// Resolved in PersistentPreRunE
	cfg      config.Config
	logger   *log.Logger
	profiler interface{ Stop() }
)

func main() {
	err := rootCmd.Execute()
	// PersistentPostRun is skipped when a command fails.
	teardown(nil, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "aoc",
	Short: "Advent of Code 2024 grid puzzle solvers",
	Long: `aoc solves the grid and shortest-path puzzles of Advent of Code 2024.

Inputs are read from <input_dir>/day_NN.txt. The input directory comes from
the config file, the AOC24_INPUT_DIR environment variable or --input-dir,
in increasing order of precedence.

Examples:
  aoc list
  aoc run
  aoc run 16 18
  aoc run 18 --input ./sample.txt --config ./small.yaml`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	PersistentPostRun: teardown,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config file")
	rootCmd.PersistentFlags().StringVar(&flagInputDir, "input-dir", "", "Directory with puzzle inputs (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagCPUProfile, "cpuprofile", "", "Write a CPU profile to this directory")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(runCmd)
}

// setup resolves configuration, builds the logger and starts profiling.
func setup(cmd *cobra.Command, _ []string) error {
	var err error
	cfg, err = config.Load(flagConfig)
	if err != nil {
		return err
	}
	cfg.ApplyEnv(os.LookupEnv)
	if flagInputDir != "" {
		cfg.InputDir = flagInputDir
	}
	if flagLogLevel != "" {
		cfg.LogLevel = flagLogLevel
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}
	logger = log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
		ReportTimestamp: true,
		Prefix:          "aoc",
		Level:           level,
	})

	if flagCPUProfile != "" {
		profiler = profile.Start(
			profile.CPUProfile,
			profile.ProfilePath(flagCPUProfile),
			profile.NoShutdownHook,
			profile.Quiet,
		)
		logger.Info("cpu profiling enabled", "dir", flagCPUProfile)
	}
	return nil
}

func teardown(_ *cobra.Command, _ []string) {
	if profiler != nil {
		profiler.Stop()
		profiler = nil
	}
}
