package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-fireworks/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List renderer backends",
	Long:  `Shows the renderer backends the show can run on.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	backends := registry.List()

	if len(backends) == 0 {
		fmt.Println("No backends available.")
		return
	}

	fmt.Println("Available backends:")
	fmt.Println()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, b := range backends {
		if len(b.Name) > maxNameLen {
			maxNameLen = len(b.Name)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxNameLen, "Name", "Description")
	fmt.Printf("  %-*s  %s\n", maxNameLen, "----", "-----------")

	for _, b := range backends {
		fmt.Printf("  %-*s  %s\n", maxNameLen, b.Name, b.Description)
	}

	fmt.Println()
	fmt.Println("Run 'fireworks --backend <name>' to use one.")
}
