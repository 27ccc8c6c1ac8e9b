package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/escapezone/internal/config"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all game variants",
	Long:  `Shows every registered variant and the rules it plays with.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	variants := config.Variants()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	maxTitleLen := 5
	for _, v := range variants {
		maxIDLen = max(maxIDLen, len(v.ID))
		maxTitleLen = max(maxTitleLen, len(v.Title))
	}

	fmt.Println("Available variants:")
	fmt.Println()

	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "ID", maxTitleLen, "Title", "Turbo / Collision / Edge")
	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "--", maxTitleLen, "-----", "------------------------")

	for _, v := range variants {
		fmt.Printf("  %-*s  %-*s  %s / %s / %s\n", maxIDLen, v.ID, maxTitleLen, v.Title, v.Turbo, v.Collision, v.Edge)
	}

	fmt.Println()
	fmt.Println("Run 'escapezone play <id>' to play a variant.")
}
