package core

// RuntimeConfig contains host settings passed to a fight session at start.
type RuntimeConfig struct {
	ScreenW  int  // Terminal width in characters
	ScreenH  int  // Terminal height in characters
	TickRate int  // Simulation ticks per second (default 60)
	Debug    bool // Draw collision boxes over the arena
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}
