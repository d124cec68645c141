package core

// RuntimeConfig contains configuration passed to scenarios at initialization.
// Scenarios use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic jitter
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// SimState represents the current state of a running scenario.
// Returned by Scenario.State() to communicate status to the platform.
type SimState struct {
	Live     int     // Entities currently tracked by the spawner
	Spawned  int     // Entities created since the last reset
	Blocked  int     // Auto/try spawns refused by the capacity limit
	Removed  int     // Entities removed via remove-oldest
	Cleared  int     // Entities destroyed by clear-all
	Peak     int     // Highest live count seen
	Elapsed  float64 // Simulated seconds since reset
	Paused   bool    // Whether the simulation is paused
	Disabled bool    // Whether the spawner refused its template
}

// StepResult is returned by Scenario.Step() after each simulation tick.
type StepResult struct {
	State SimState
}
