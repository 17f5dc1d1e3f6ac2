package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridstrike/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all game variants",
	Run:   runList,
}

func runList(cmd *cobra.Command, _ []string) {
	variants := registry.List()
	out := cmd.OutOrStdout()

	if len(variants) == 0 {
		fmt.Fprintln(out, "No variants available.")
		return
	}

	maxIDLen := 2 // "ID" header
	for _, v := range variants {
		maxIDLen = max(maxIDLen, len(v.ID))
	}

	fmt.Fprintln(out, "Available variants:")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "ID", "Description")
	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "--", "-----------")
	for _, v := range variants {
		fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, v.ID, v.Description)
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'gridstrike play <id>' to play a variant.")
}
