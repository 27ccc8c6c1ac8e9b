package core

// RuntimeConfig is handed to a game on every Reset.
// ScreenW/ScreenH only drive rendering; the simulation runs in world units.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
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

// TicksFor converts a wall-clock duration in milliseconds to simulation ticks.
// Never returns less than one tick for a positive duration.
func (c RuntimeConfig) TicksFor(ms int) int {
	if ms <= 0 {
		return 0
	}
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	ticks := ms * rate / 1000
	if ticks < 1 {
		ticks = 1
	}
	return ticks
}

// GameState is the platform-visible status of a game.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step after each simulation tick.
type StepResult struct {
	State GameState

	// Events raised during this tick, in order. The platform turns them
	// into sound cues.
	Events []Event
}

// RunSummary describes a finished (or running) round for persistence.
type RunSummary struct {
	Score     int
	Ticks     int
	Distance  float64 // World units scrolled
	Pickups   int
	EndReason EndReason
}
