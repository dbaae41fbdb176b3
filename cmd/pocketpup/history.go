package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pocketpup/internal/journal"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent care events",
	Run:   runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum number of events to show")
}

func runHistory(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	jour, err := journal.Open(cfg.JournalPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not open the care journal: %v\n", err)
		os.Exit(1)
	}
	defer jour.Close()

	entries, err := jour.Recent(historyLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not read the care journal: %v\n", err)
		os.Exit(1)
	}

	if len(entries) == 0 {
		fmt.Println("No care events recorded yet.")
		return
	}

	fmt.Printf("Recent care events:\n\n")
	fmt.Printf("  %-13s %-6s %s\n", "When", "Event", "Detail")
	fmt.Printf("  %-13s %-6s %s\n", "----", "-----", "------")
	for _, e := range entries {
		fmt.Printf("  %-13s %-6s %s\n", e.CreatedAt.Format("Jan 02 15:04"), e.Kind, e.Detail)
	}

	counts, err := jour.Counts()
	if err == nil && len(counts) > 0 {
		fmt.Printf("\nAll time: %d feedings, %d play sessions, %d naps.\n",
			counts[journal.KindFeed], counts[journal.KindPlay], counts[journal.KindSleep])
	}
}
