package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pocketpup/internal/sprites"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List sprite themes",
	Run:   runThemes,
}

func runThemes(cmd *cobra.Command, args []string) {
	infos := sprites.List()

	fmt.Println("Available themes:")
	fmt.Println()

	maxID := 0
	for _, info := range infos {
		if len(info.ID) > maxID {
			maxID = len(info.ID)
		}
	}

	for _, info := range infos {
		fmt.Printf("  %-*s  %s\n", maxID, info.ID, info.Title)
	}

	fmt.Println()
	fmt.Println("Pick one with 'pocketpup run --theme <id>', or press t in the app.")
}
