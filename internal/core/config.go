package core

import "time"

// RuntimeConfig is passed to a game when it is reset.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed; 0 lets the platform pick one from the clock
}

// DefaultConfig returns an 80x24 screen ticking 60 times a second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// TickInterval returns the time between ticks. Rates below one are
// treated as one tick per second.
func (c RuntimeConfig) TickInterval() time.Duration {
	return time.Second / time.Duration(max(c.TickRate, 1))
}

// GameState is the status a game reports to the platform after each tick.
type GameState struct {
	Moves    int    // Effective moves played
	Fusions  int    // Tile merges across all moves
	MaxTile  int    // Highest tile on the board
	TileSum  int    // Sum of all tile values
	Outcome  string // Why the game ended; empty while playing
	GameOver bool   // No further input will change the board
	Paused   bool   // Simulation is paused (also while the window is too small)
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	// Settled is true once the animations of the last move have finished.
	Settled bool
}
