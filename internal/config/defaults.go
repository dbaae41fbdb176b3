package config

import (
	_ "embed"
)

//go:embed defaults/pocketpup.yaml
var defaultYAML []byte

// Default returns the stock handheld configuration.
func Default() Config {
	return Config{
		Pet: PetConfig{
			Name:           "Pup",
			DecayEveryMS:   10_000,
			SettleAfterMS:  2_000,
			AlertThreshold: 25,
			MaxCatchUpMin:  60,
		},
		Power: PowerConfig{
			IdleTimeoutMS: 60_000,
			WakeEveryMS:   900_000,
			AckWindowMS:   30_000,
			SaveEveryMS:   30_000,
		},
		Display: DisplayConfig{
			Theme:  "classic",
			FPS:    20,
			Width:  80,
			Height: 24,
		},
		Storage: StorageConfig{
			DataDir: "~/.pocketpup",
		},
		Server: ServerConfig{
			Address:        ":23234",
			HostKey:        "",
			IdleTimeoutMin: 30,
		},
	}
}
