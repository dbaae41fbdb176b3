// Package tui provides terminal UI components including SSH server support via Wish.
package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/pocketpup/internal/core"
	"github.com/vovakirdan/pocketpup/internal/device"
	"github.com/vovakirdan/pocketpup/internal/journal"
	"github.com/vovakirdan/pocketpup/internal/nvs"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at <DataDir>/host_key.
	HostKeyPath string

	// DataDir holds the shared snapshot store and journal. Every SSH user
	// gets their own pup inside them.
	DataDir string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// PetName is the display name for every pup on this server.
	PetName string

	// Theme is the sprite theme sessions start with.
	Theme string

	// TickRate is the frame rate handed to each session.
	TickRate int

	// Device carries the care timings shared by all pups.
	Device device.Config
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DataDir:     "~/.pocketpup",
		IdleTimeout: 30 * time.Minute,
		PetName:     "Pup",
		Theme:       "classic",
		TickRate:    core.DefaultRuntimeConfig().TickRate,
	}
}

// SSHServer wraps a Wish SSH server hosting one pup per user.
type SSHServer struct {
	config  SSHServerConfig
	server  *ssh.Server
	store   *nvs.Store
	journal *journal.Journal
	logger  *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "pocketpup-ssh",
	})

	dataDir, err := expandDir(cfg.DataDir)
	if err != nil {
		return nil, err
	}

	// One shared snapshot store; sessions get per-user namespaces.
	store, err := nvs.Open(filepath.Join(dataDir, "pups.db"))
	if err != nil {
		return nil, fmt.Errorf("cannot open snapshot store: %w", err)
	}

	jour, err := journal.Open(filepath.Join(dataDir, "journal.db"))
	if err != nil {
		logger.Warn("could not open care journal", "error", err)
		// Continue without history
	}

	srv := &SSHServer{
		config:  cfg,
		store:   store,
		journal: jour,
		logger:  logger,
	}

	// Resolve host key path
	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		hostKeyPath = filepath.Join(dataDir, "host_key")
	}

	// Ensure host key directory exists
	hostKeyDir := filepath.Dir(hostKeyPath)
	if mkdirErr := os.MkdirAll(hostKeyDir, 0o700); mkdirErr != nil {
		store.Close()
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	// Create Wish server options
	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	}

	// Create the server
	server, err := wish.NewServer(opts...)
	if err != nil {
		store.Close()
		if jour != nil {
			jour.Close()
		}
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session. Every user
// gets their own pup, keyed by the login name.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	user := sanitizeUser(sshSession.User())
	dev := device.New(s.config.Device, s.store.Namespace(user), s.logger.With("user", user))

	var jour *journal.Journal
	if s.journal != nil {
		jour = s.journal.Owner(user)
	}

	cfg := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: s.config.TickRate,
	}

	model := NewPetModel(dev, jour, s.config.PetName, s.config.Theme, cfg)

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	// Setup signal handling for graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	s.store.Close()
	if s.journal != nil {
		s.journal.Close()
	}

	return s.server.Shutdown(ctx)
}

// sanitizeUser maps an SSH login name to a safe store namespace: lowercase,
// with anything outside [a-z0-9_-] collapsed to '-', capped at 32 runes.
func sanitizeUser(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return "guest"
	}

	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_', r == '-':
			b.WriteRune(r)
		default:
			b.WriteRune('-')
		}
		if b.Len() >= 32 {
			break
		}
	}
	return b.String()
}

// expandDir expands a leading ~ in a directory path.
func expandDir(dir string) (string, error) {
	if dir == "" {
		return "", fmt.Errorf("data directory is required")
	}
	if dir[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot expand home directory: %w", err)
		}
		dir = filepath.Join(home, dir[1:])
	}
	return filepath.Clean(dir), nil
}
