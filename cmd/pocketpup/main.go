// pocketpup is a virtual puppy handheld for the terminal.
//
// Usage:
//
//	pocketpup run       Open the pup's screen
//	pocketpup serve     Host pups over SSH
//	pocketpup status    Peek at the saved pup
//	pocketpup history   Show recent care events
//	pocketpup themes    List sprite themes
//	pocketpup reset     Factory-reset the pup
//
// Global flags:
//
//	--config PATH   Configuration file to load
//	--data DIR      Data directory override
//	--fps N         Frames per second (0 = from config)
//	--theme ID      Sprite theme override
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pocketpup/internal/config"

	// Import themes to register them
	_ "github.com/vovakirdan/pocketpup/internal/sprites/classic"
	_ "github.com/vovakirdan/pocketpup/internal/sprites/mini"
)

var (
	flagConfig  string
	flagDataDir string
	flagFPS     int
	flagTheme   string
)

var rootCmd = &cobra.Command{
	Use:   "pocketpup",
	Short: "Pocket Pup - a virtual puppy in your terminal",
	Long: `Pocket Pup keeps a tiny dog alive in your terminal.

Feed it, play with it, let it nap. Walk away and it powers down to save
battery, waking on its own when it needs you. The pup lives between
runs: closing the screen saves it and the next run picks it back up.

Available commands:
  run       Open the pup's screen
  serve     Host pups over SSH, one per user
  status    Peek at the saved pup without waking it
  history   Show recent care events
  themes    List sprite themes
  reset     Factory-reset the pup

Examples:
  pocketpup run
  pocketpup run --theme mini --fps 30
  pocketpup serve --ssh :2222
  pocketpup status`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Configuration file (default: ~/.pocketpup/configs/pocketpup.yaml)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data", "", "Data directory override")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Frames per second (0 = from config)")
	rootCmd.PersistentFlags().StringVar(&flagTheme, "theme", "", "Sprite theme override")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(themesCmd)
	rootCmd.AddCommand(resetCmd)
}

// loadConfig reads the configuration and applies the global flag overrides.
// The data directory comes back expanded so commands can join paths onto it.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}

	if flagDataDir != "" {
		cfg.Storage.DataDir = flagDataDir
	}
	if flagFPS > 0 {
		cfg.Display.FPS = flagFPS
	}
	if flagTheme != "" {
		cfg.Display.Theme = flagTheme
	}

	if strings.HasPrefix(cfg.Storage.DataDir, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return config.Config{}, fmt.Errorf("cannot expand home directory: %w", err)
		}
		cfg.Storage.DataDir = filepath.Join(home, strings.TrimPrefix(cfg.Storage.DataDir, "~"))
	}

	return cfg, nil
}
