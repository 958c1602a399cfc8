package core

// RuntimeConfig contains runtime parameters passed to the simulation
// at initialization. The platform fills it from the terminal size and
// CLI flags.
type RuntimeConfig struct {
	ScreenW  int   // Playfield width in character cells
	ScreenH  int   // Playfield height in character cells
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic obstacle placement
}

// DefaultRuntimeConfig returns a RuntimeConfig with sensible defaults.
func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}
