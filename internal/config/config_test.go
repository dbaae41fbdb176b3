package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded defaults = %+v, expected %+v", cfg, Default())
	}
}

func TestLoadCustomPathMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pocketpup.yaml")
	partial := "pet:\n  name: \"Rex\"\ndisplay:\n  fps: 30\n"
	if err := os.WriteFile(path, []byte(partial), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Pet.Name != "Rex" {
		t.Errorf("pet name = %q, expected override Rex", cfg.Pet.Name)
	}
	if cfg.Display.FPS != 30 {
		t.Errorf("fps = %d, expected override 30", cfg.Display.FPS)
	}
	// Everything the file omits keeps its default.
	if cfg.Pet.DecayEveryMS != 10_000 {
		t.Errorf("decay = %d, expected default 10000", cfg.Pet.DecayEveryMS)
	}
	if cfg.Power.IdleTimeoutMS != 60_000 {
		t.Errorf("idle timeout = %d, expected default 60000", cfg.Power.IdleTimeoutMS)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected an error for a missing custom config")
	}
}

func TestLoadInvalidCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("pet: [not, a, mapping"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected an error for unparseable YAML")
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("fallback config = %+v, expected defaults %+v", cfg, Default())
	}
}

func TestDeviceConfig(t *testing.T) {
	dc := Default().DeviceConfig()
	if dc.IdleTimeout != 60*time.Second {
		t.Errorf("idle timeout = %v, expected 60s", dc.IdleTimeout)
	}
	if dc.WakeEvery != 15*time.Minute {
		t.Errorf("wake period = %v, expected 15m", dc.WakeEvery)
	}
	if dc.AckWindow != 30*time.Second {
		t.Errorf("ack window = %v, expected 30s", dc.AckWindow)
	}
	if dc.DecayEvery != 10*time.Second {
		t.Errorf("decay cadence = %v, expected 10s", dc.DecayEvery)
	}
	if dc.AlertThreshold != 25 || dc.MaxCatchUp != 60 {
		t.Errorf("threshold/catch-up = %d/%d, expected 25/60", dc.AlertThreshold, dc.MaxCatchUp)
	}
}

func TestPaths(t *testing.T) {
	cfg := Default()
	cfg.Storage.DataDir = "/tmp/pocketpup"

	if got := cfg.SnapshotPath(); got != "/tmp/pocketpup/pup.db" {
		t.Errorf("SnapshotPath = %q", got)
	}
	if got := cfg.JournalPath(); got != "/tmp/pocketpup/journal.db" {
		t.Errorf("JournalPath = %q", got)
	}
	if got := cfg.HostKeyPath(); got != "/tmp/pocketpup/host_key" {
		t.Errorf("HostKeyPath = %q, expected the data-dir default", got)
	}

	cfg.Server.HostKey = "/etc/ssh/pup_key"
	if got := cfg.HostKeyPath(); got != "/etc/ssh/pup_key" {
		t.Errorf("HostKeyPath = %q, expected the explicit override", got)
	}
}
