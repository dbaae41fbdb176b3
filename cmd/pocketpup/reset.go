package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pocketpup/internal/journal"
	"github.com/vovakirdan/pocketpup/internal/nvs"
)

var (
	resetYes     bool
	resetHistory bool
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Factory-reset the pup",
	Long: `Erase the saved pup so the next run hatches a new one.

The care journal survives a reset unless --history is given.`,
	Run: runReset,
}

func init() {
	resetCmd.Flags().BoolVar(&resetYes, "yes", false, "Skip the confirmation check")
	resetCmd.Flags().BoolVar(&resetHistory, "history", false, "Also erase the care journal")
}

func runReset(cmd *cobra.Command, args []string) {
	if !resetYes {
		fmt.Fprintln(os.Stderr, "Refusing to erase the pup without --yes.")
		os.Exit(1)
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := nvs.Open(cfg.SnapshotPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not open pup storage: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if err := store.Clear(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not erase the pup: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Pup erased. The next run hatches a new one.")

	jour, err := journal.Open(cfg.JournalPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open the care journal: %v\n", err)
		return
	}
	defer jour.Close()

	if resetHistory {
		if err := jour.Clear(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not erase the care journal: %v\n", err)
		} else {
			fmt.Println("Care journal erased.")
		}
	} else if err := jour.Record(journal.KindReset, "factory reset from the command line"); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not record the reset: %v\n", err)
	}
}
