// Package config provides YAML-based configuration loading for the
// pocketpup handheld: simulation timings, power management, display and
// storage settings.
package config

import (
	"path/filepath"
	"time"

	"github.com/vovakirdan/pocketpup/internal/device"
)

// Config contains all configuration for the handheld.
type Config struct {
	Pet     PetConfig     `yaml:"pet"`
	Power   PowerConfig   `yaml:"power"`
	Display DisplayConfig `yaml:"display"`
	Storage StorageConfig `yaml:"storage"`
	Server  ServerConfig  `yaml:"server"`
}

// PetConfig defines the simulation cadence and alert rules.
type PetConfig struct {
	Name           string `yaml:"name"`
	DecayEveryMS   int    `yaml:"decay_every_ms"`   // awake tick cadence
	SettleAfterMS  int    `yaml:"settle_after_ms"`  // action animation length
	AlertThreshold int    `yaml:"alert_threshold"`  // stats below this raise alerts
	MaxCatchUpMin  int    `yaml:"max_catch_up_min"` // cap on one offline decay window
}

// PowerConfig defines idle and deep-sleep timings.
type PowerConfig struct {
	IdleTimeoutMS int `yaml:"idle_timeout_ms"` // no input before powering down
	WakeEveryMS   int `yaml:"wake_every_ms"`   // deep-sleep alert-check period
	AckWindowMS   int `yaml:"ack_window_ms"`   // alert acknowledgment window
	SaveEveryMS   int `yaml:"save_every_ms"`   // autosave cadence while awake
}

// DisplayConfig defines the terminal face of the handheld.
type DisplayConfig struct {
	Theme  string `yaml:"theme"`
	FPS    int    `yaml:"fps"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// StorageConfig defines where pup state lives on disk.
type StorageConfig struct {
	DataDir string `yaml:"data_dir"`
}

// ServerConfig defines the SSH server for remote pups.
type ServerConfig struct {
	Address        string `yaml:"address"`          // host:port to listen on
	HostKey        string `yaml:"host_key"`         // empty auto-generates one in the data dir
	IdleTimeoutMin int    `yaml:"idle_timeout_min"` // disconnect silent sessions
}

// SnapshotPath returns the pup snapshot database path.
func (c Config) SnapshotPath() string {
	return filepath.Join(c.Storage.DataDir, "pup.db")
}

// JournalPath returns the care journal database path.
func (c Config) JournalPath() string {
	return filepath.Join(c.Storage.DataDir, "journal.db")
}

// LogPath returns the device log file path. Interactive sessions log here
// instead of stderr so log lines do not tear the alternate screen.
func (c Config) LogPath() string {
	return filepath.Join(c.Storage.DataDir, "pocketpup.log")
}

// HostKeyPath returns the SSH host key path, defaulting into the data dir.
func (c Config) HostKeyPath() string {
	if c.Server.HostKey != "" {
		return c.Server.HostKey
	}
	return filepath.Join(c.Storage.DataDir, "host_key")
}

// DeviceConfig converts the pet and power sections into controller timings.
func (c Config) DeviceConfig() device.Config {
	return device.Config{
		IdleTimeout:    time.Duration(c.Power.IdleTimeoutMS) * time.Millisecond,
		DecayEvery:     time.Duration(c.Pet.DecayEveryMS) * time.Millisecond,
		SaveEvery:      time.Duration(c.Power.SaveEveryMS) * time.Millisecond,
		WakeEvery:      time.Duration(c.Power.WakeEveryMS) * time.Millisecond,
		AckWindow:      time.Duration(c.Power.AckWindowMS) * time.Millisecond,
		SettleAfter:    time.Duration(c.Pet.SettleAfterMS) * time.Millisecond,
		AlertThreshold: c.Pet.AlertThreshold,
		MaxCatchUp:     c.Pet.MaxCatchUpMin,
	}
}
