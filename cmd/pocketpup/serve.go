package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pocketpup/internal/platform/tui"
)

var (
	serveAddr        string
	serveHostKey     string
	serveIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Host pups over SSH",
	Long: `Host pups over SSH, one per user.

Every login name that connects gets its own pup. All pups share one
snapshot store and one care journal in the data directory.`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "ssh", "", "SSH listen address (default from config)")
	serveCmd.Flags().StringVar(&serveHostKey, "host-key", "", "Host key path (default: <data>/host_key)")
	serveCmd.Flags().IntVar(&serveIdleTimeout, "idle-timeout", 0, "Idle timeout in minutes (default from config)")
}

func runServe(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	scfg := tui.SSHServerConfig{
		Address:     cfg.Server.Address,
		HostKeyPath: cfg.Server.HostKey,
		DataDir:     cfg.Storage.DataDir,
		IdleTimeout: time.Duration(cfg.Server.IdleTimeoutMin) * time.Minute,
		PetName:     cfg.Pet.Name,
		Theme:       cfg.Display.Theme,
		TickRate:    cfg.Display.FPS,
		Device:      cfg.DeviceConfig(),
	}
	if serveAddr != "" {
		scfg.Address = serveAddr
	}
	if serveHostKey != "" {
		scfg.HostKeyPath = serveHostKey
	}
	if serveIdleTimeout > 0 {
		scfg.IdleTimeout = time.Duration(serveIdleTimeout) * time.Minute
	}

	server, err := tui.NewSSHServer(scfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create SSH server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting pocketpup SSH server on %s\n", scfg.Address)
	fmt.Printf("Connect with: ssh <user>@localhost -p %s\n", strings.TrimPrefix(scfg.Address, ":"))
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: server failed: %v\n", err)
		os.Exit(1)
	}
}
