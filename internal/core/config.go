package core

import "time"

// RuntimeConfig is passed to a game on every Reset.
type RuntimeConfig struct {
	ScreenW  int   // Viewport width in characters
	ScreenH  int   // Viewport height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // Maze seed; 0 lets the platform pick one from the clock
}

// DefaultConfig returns the configuration used when nothing else is known.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
	}
}

// TickDuration returns the wall-clock length of one tick.
func (c RuntimeConfig) TickDuration() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 30
	}
	return time.Second / time.Duration(c.TickRate)
}

// Outcome is how a run ended.
type Outcome string

const (
	OutcomePlaying  Outcome = ""
	OutcomeFinished Outcome = "finished" // reached the exit
	OutcomeCaught   Outcome = "caught"   // an enemy reached the player
	OutcomeQuit     Outcome = "quit"
)

// GameState is the status a game reports to the platform.
type GameState struct {
	Score    int
	GameOver bool // run ended, either finished or caught
	Paused   bool
	Outcome  Outcome
}

// StepResult is returned by Game.Step after each tick.
type StepResult struct {
	State GameState
}

// RunSummary describes a completed run for persistence.
type RunSummary struct {
	GameID  string
	Seed    int64
	Width   int
	Height  int
	Outcome Outcome
	Moves   int
	Ticks   int
	Score   int
}
