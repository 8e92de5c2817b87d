package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW   int   // Screen width in characters
	ScreenH   int   // Screen height in characters
	TickRate  int   // Variable (render/input) ticks per second requested from the platform
	FixedRate int   // Fixed physics steps per second
	Seed      int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:   80,
		ScreenH:   24,
		TickRate:  60,
		FixedRate: 50,
		Seed:      0, // 0 means use current time in platform layer
	}
}

// FixedDelta returns the fixed physics step length in seconds.
func (c RuntimeConfig) FixedDelta() float64 {
	if c.FixedRate <= 0 {
		return 1.0 / 50
	}
	return 1.0 / float64(c.FixedRate)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Update() after each variable tick.
type StepResult struct {
	State GameState
}

// RunReport describes how a finished run ended, for run history.
type RunReport struct {
	Cause string // Why the run ended
	Lanes int    // Lanes generated during the run
	Roads int    // Road lanes among them
}
