package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/aoc24/internal/config"
	"github.com/katalvlaran/aoc24/internal/registry"
)

var flagInput string

var runCmd = &cobra.Command{
	Use:   "run [day...]",
	Short: "Solve one or more days",
	Long: `Solve the given days, or every registered day when none is given.
The first failure aborts the run.

Examples:
  aoc run
  aoc run 4 12
  aoc run 18 --input ./sample.txt`,
	RunE: runRun,
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	answerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
)

func init() {
	runCmd.Flags().StringVar(&flagInput, "input", "", "Read input from this file (single day only)")
}

func runRun(cmd *cobra.Command, args []string) error {
	days, err := parseDays(args)
	if err != nil {
		return err
	}
	if flagInput != "" && len(days) != 1 {
		return errors.New("--input requires exactly one day")
	}
	return solveDays(cmd.OutOrStdout(), logger, cfg, days, flagInput)
}

// parseDays converts arguments to day numbers, defaulting to every
// registered day.
func parseDays(args []string) ([]int, error) {
	if len(args) == 0 {
		var days []int
		for _, d := range registry.List() {
			days = append(days, d.Day)
		}
		return days, nil
	}

	days := make([]int, 0, len(args))
	for _, a := range args {
		d, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("invalid day %q: %w", a, err)
		}
		if !registry.Exists(d) {
			return nil, fmt.Errorf("%w: %d (run 'aoc list')", registry.ErrUnknownDay, d)
		}
		days = append(days, d)
	}
	return days, nil
}

// solveDays runs each day in order and prints its answers to out.
// inputPath, when set, replaces the configured input file.
func solveDays(out io.Writer, logger *log.Logger, cfg config.Config, days []int, inputPath string) error {
	for _, day := range days {
		solver, err := registry.Create(day, cfg.Params(day))
		if err != nil {
			return err
		}

		path := inputPath
		if path == "" {
			path = cfg.InputPath(day)
		}
		logger.Debug("reading input", "day", day, "path", path)
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("day %d: %w", day, err)
		}

		start := time.Now()
		ans, err := solver.Solve(string(data))
		elapsed := time.Since(start)
		if err != nil {
			logger.Error("solve failed", "day", day, "err", err)
			return fmt.Errorf("day %d: %w", day, err)
		}
		logger.Info("solved", "day", day, "elapsed", elapsed.Round(time.Microsecond))

		fmt.Fprintln(out, titleStyle.Render(fmt.Sprintf("Day %02d: %s", day, solver.Title())))
		fmt.Fprintf(out, "  %s %s\n", labelStyle.Render("Part 1:"), answerStyle.Render(ans.Part1))
		fmt.Fprintf(out, "  %s %s\n", labelStyle.Render("Part 2:"), answerStyle.Render(ans.Part2))
	}
	return nil
}
