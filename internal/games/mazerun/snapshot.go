package mazerun

import (
	"github.com/TheSakyo/Ynov-EscapeTheMaze/internal/core"
	"github.com/TheSakyo/Ynov-EscapeTheMaze/internal/maze"
)

// StateType is the coarse state of a run.
type StateType string

const (
	StatePlaying     StateType = "playing"
	StatePaused      StateType = "paused"
	StateFinished    StateType = "finished"
	StateCaught      StateType = "caught"
	StateTooSmall    StateType = "paused_small_window"
	StateConfigError StateType = "config_error"
)

// Snapshot captures the game state for determinism tests.
type Snapshot struct {
	Tick      uint64
	PlayTicks int
	Seed      int64
	Width     int
	Height    int
	Player    maze.Point
	Friend    maze.Point
	Enemies   []maze.Point
	Moves     int
	Score     int
	State     StateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.err != nil:
		state = StateConfigError
	case g.outcome == core.OutcomeFinished:
		state = StateFinished
	case g.outcome == core.OutcomeCaught:
		state = StateCaught
	case g.tooSmall:
		state = StateTooSmall
	case g.paused:
		state = StatePaused
	}

	s := Snapshot{
		Tick:      g.tick,
		PlayTicks: g.playTicks,
		Seed:      g.seed,
		Player:    g.player.pos,
		Friend:    g.friend.pos,
		Moves:     g.moves,
		Score:     g.score,
		State:     state,
	}
	if g.grid != nil {
		s.Width, s.Height = g.grid.Width(), g.grid.Height()
	}
	for _, e := range g.enemies {
		s.Enemies = append(s.Enemies, e.pos)
	}
	return s
}
