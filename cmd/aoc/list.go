package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/aoc24/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available days",
	Long:  `Shows every puzzle day registered in this build.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, _ []string) {
	out := cmd.OutOrStdout()
	days := registry.List()

	if len(days) == 0 {
		fmt.Fprintln(out, "No days available.")
		return
	}

	fmt.Fprintf(out, "  %-3s  %s\n", "Day", "Title")
	fmt.Fprintf(out, "  %-3s  %s\n", "---", "-----")
	for _, d := range days {
		fmt.Fprintf(out, "  %-3d  %s\n", d.Day, d.Title)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'aoc run <day>' to solve a day.")
}
