package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed, 0 means use current time in platform layer
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
	}
}

// GameState is what a game reports to the platform after each tick.
type GameState struct {
	Population int    // Live particles
	Ticks      uint64 // Simulation ticks run
	Paused     bool
	Status     string // One-line status for the platform header
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
