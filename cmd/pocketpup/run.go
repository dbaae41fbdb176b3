package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/pocketpup/internal/core"
	"github.com/vovakirdan/pocketpup/internal/device"
	"github.com/vovakirdan/pocketpup/internal/journal"
	"github.com/vovakirdan/pocketpup/internal/nvs"
	"github.com/vovakirdan/pocketpup/internal/platform/tui"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the pup's screen",
	Long: `Open the pup's screen in the current terminal.

Controls:
  f          Feed
  p          Play fetch
  z          Nap / wake up
  s, tab     Stats panel
  l          Care history
  t          Cycle sprite theme
  r          Factory reset (asks first)
  q, ctrl+c  Quit`,
	Run: runRun,
}

func runRun(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Get terminal dimensions
	width, height := cfg.Display.Width, cfg.Display.Height
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	rt := core.RuntimeConfig{ScreenW: width, ScreenH: height, TickRate: cfg.Display.FPS}

	store, err := nvs.Open(cfg.SnapshotPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not open pup storage: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	jour, err := journal.Open(cfg.JournalPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open the care journal: %v\n", err)
		fmt.Fprintln(os.Stderr, "Continuing without history.")
		jour = nil
	}
	if jour != nil {
		defer jour.Close()
	}

	// Log to a file; stderr lines would tear the alternate screen.
	logger := log.New(io.Discard)
	if logFile, err := os.OpenFile(cfg.LogPath(), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644); err == nil {
		defer logFile.Close()
		logger = log.NewWithOptions(logFile, log.Options{
			ReportTimestamp: true,
			Prefix:          "pocketpup",
		})
	}

	dev := device.New(cfg.DeviceConfig(), store, logger)

	if err := tui.Run(dev, jour, cfg.Pet.Name, cfg.Display.Theme, rt); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
