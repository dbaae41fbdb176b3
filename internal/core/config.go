package core

// RuntimeConfig holds the per-session parameters the platform hands to the
// device frontend: terminal geometry and the simulation tick rate.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Simulation ticks per second
}

// DefaultRuntimeConfig returns a runtime config sized for a typical terminal.
func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 20,
	}
}
