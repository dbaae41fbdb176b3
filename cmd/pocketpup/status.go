package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pocketpup/internal/device"
	"github.com/vovakirdan/pocketpup/internal/nvs"
	"github.com/vovakirdan/pocketpup/internal/pet"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Peek at the saved pup",
	Long: `Peek at the saved pup without waking it.

Reads the snapshot store read-only; the pup itself is untouched.`,
	Run: runStatus,
}

func runStatus(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if _, err := os.Stat(cfg.SnapshotPath()); os.IsNotExist(err) {
		fmt.Println("No pup saved yet. Run 'pocketpup run' to hatch one.")
		return
	}

	store, err := nvs.OpenReadOnly(cfg.SnapshotPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not open pup storage: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	snap, err := store.Load()
	if errors.Is(err, device.ErrNoSnapshot) {
		fmt.Println("No pup saved yet. Run 'pocketpup run' to hatch one.")
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not read the pup: %v\n", err)
		os.Exit(1)
	}

	s := snap.Stats
	fmt.Printf("%s the pup\n\n", cfg.Pet.Name)
	fmt.Printf("  %-10s %3d / %d\n", "Hunger", s.Hunger, pet.StatMax)
	fmt.Printf("  %-10s %3d / %d\n", "Happiness", s.Happiness, pet.StatMax)
	fmt.Printf("  %-10s %3d / %d\n", "Energy", s.Energy, pet.StatMax)
	fmt.Printf("  %-10s %3d / %d\n", "Health", s.Health, pet.StatMax)
	fmt.Printf("  %-10s %s\n", "Age", pet.FormatAge(s.Age))
	fmt.Printf("  %-10s %s\n", "Mood", s.Behavior)

	day := snap.Stamp.Minutes / 1440
	hour := (snap.Stamp.Minutes % 1440) / 60
	min := snap.Stamp.Minutes % 60
	fmt.Printf("\nLast saved: day %d, %02d:%02d (month %d).\n", day, hour, min, snap.Stamp.Month)

	if critical := pet.Critical(s, cfg.Pet.AlertThreshold); len(critical) > 0 {
		names := make([]string, len(critical))
		for i, n := range critical {
			names[i] = n.String()
		}
		fmt.Printf("Needs attention: %s.\n", strings.Join(names, ", "))
	}
}
