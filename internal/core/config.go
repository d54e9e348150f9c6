package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Update ticks per second
	Seed     int64 // RNG seed, 0 means time based
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
// Turn-based play needs far fewer ticks than an action game.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     0,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	GameOver bool // Whether the game has ended
	Won      bool // Whether the local player won, valid once GameOver
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each tick.
type StepResult struct {
	State GameState
}
