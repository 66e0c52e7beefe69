// Package mazerun is the maze game: find your friend in a freshly carved maze
// while enemies hunt you through its passages.
package mazerun

import (
	"math/rand"

	"github.com/TheSakyo/Ynov-EscapeTheMaze/internal/config"
	"github.com/TheSakyo/Ynov-EscapeTheMaze/internal/core"
	"github.com/TheSakyo/Ynov-EscapeTheMaze/internal/maze"
	"github.com/TheSakyo/Ynov-EscapeTheMaze/internal/registry"
)

// Mode selects whether enemies take part.
type Mode string

const (
	ModeChase Mode = "maze"
	ModeZen   Mode = "maze_zen"
)

// Minimum screen size below which the game pauses.
const (
	minScreenW = 24
	minScreenH = 8
	hudRows    = 1
)

// Game implements registry.Game.
type Game struct {
	mode     Mode
	fixed    *config.MazeConfig // set by NewWithConfig; bypasses any settings
	settings *Settings          // set by NewWithSettings; bypasses package settings

	cfg        config.MazeConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand
	seed       int64
	tickRate   int

	grid     *maze.Grid
	player   actor
	friend   actor
	enemies  []enemy
	bestPath int // path length from start to friend

	tick      uint64 // every Step call
	playTicks int    // ticks spent playing, excluding pause and overlays
	moves     int
	score     int
	outcome   core.Outcome
	paused    bool
	tooSmall  bool
	err       error

	screenW, screenH int
	cam              camera
}

// New creates the chase mode game.
func New() *Game {
	return &Game{mode: ModeChase}
}

// NewZen creates the exploration mode game without enemies.
func NewZen() *Game {
	return &Game{mode: ModeZen}
}

// NewWithConfig creates a game that always uses cfg, ignoring the package
// settings.
func NewWithConfig(mode Mode, cfg config.MazeConfig) *Game {
	return &Game{mode: mode, fixed: &cfg}
}

// NewWithSettings creates a game that resolves its configuration from s on
// every Reset. Sessions that must not share the package settings use it.
func NewWithSettings(mode Mode, s Settings) *Game {
	return &Game{mode: mode, settings: &s}
}

// UseSettings makes later Resets resolve their configuration from s.
func (g *Game) UseSettings(s Settings) {
	g.fixed = nil
	g.settings = &s
}

func init() {
	registry.Register(string(ModeChase), func() registry.Game { return New() })
	registry.Register(string(ModeZen), func() registry.Game { return NewZen() })
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return string(g.mode)
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeZen {
		return "Escape The Maze (Zen)"
	}
	return "Escape The Maze"
}

// Reset carves a new maze from cfg.Seed and places every character.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.seed = cfg.Seed
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = core.DefaultConfig().TickRate
	}
	g.tick, g.playTicks, g.moves, g.score = 0, 0, 0, 0
	g.outcome = core.OutcomePlaying
	g.paused = false
	g.err = nil
	g.grid = nil
	g.enemies = nil

	switch {
	case g.fixed != nil:
		g.cfg = *g.fixed
		g.err = g.cfg.Validate()
	case g.settings != nil:
		g.cfg, g.err = g.settings.Resolve(cfg.ScreenW, cfg.ScreenH)
	default:
		g.cfg, g.err = ResolveConfig(cfg.ScreenW, cfg.ScreenH)
	}
	if g.err != nil {
		g.Resize(cfg.ScreenW, cfg.ScreenH)
		return
	}

	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)

	grid, err := maze.New(g.cfg.Grid.Width, g.cfg.Grid.Height, g.cfg.Grid.StartX, g.cfg.Grid.StartY, g.rng)
	if err != nil {
		g.err = err
		g.Resize(cfg.ScreenW, cfg.ScreenH)
		return
	}
	g.grid = grid

	start := maze.P(g.cfg.Grid.StartX, g.cfg.Grid.StartY)
	g.player = newActor(start)

	fromStart := maze.Distances(grid, start)
	exit, dist := maze.Farthest(grid, start)
	g.friend = newActor(exit)
	g.bestPath = dist

	if g.mode == ModeChase {
		g.spawnEnemies(g.cfg.Enemies.Count, g.cfg.Enemies.MinSpawnDistance, fromStart)
	}

	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize adapts the view to a new screen size without changing the maze.
func (g *Game) Resize(w, h int) {
	g.screenW, g.screenH = w, h
	g.tooSmall = w < minScreenW || h < minScreenH
	g.cam.view = core.NewRect(0, hudRows, w, max(h-hudRows, 0))
	if g.grid != nil {
		g.cam.follow(g.grid, g.player.pos)
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if in.Has(core.ActionRestart) && g.over() {
		g.Reset(core.RuntimeConfig{
			Seed:     g.rng.Int63(),
			ScreenW:  g.screenW,
			ScreenH:  g.screenH,
			TickRate: g.tickRate,
		})
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.over() {
		g.paused = !g.paused
	}

	if g.err != nil || g.over() || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	g.playTicks++

	if a, ok := in.Move(); ok {
		g.movePlayer(a)
	}
	if g.checkFinish() || g.checkCaught() {
		return core.StepResult{State: g.State()}
	}

	g.moveEnemies()
	g.checkCaught()

	return core.StepResult{State: g.State()}
}

var actionDirs = map[core.Action]maze.Direction{
	core.ActionUp:    maze.North,
	core.ActionRight: maze.East,
	core.ActionDown:  maze.South,
	core.ActionLeft:  maze.West,
}

func (g *Game) movePlayer(a core.Action) {
	d, ok := actionDirs[a]
	if !ok || !g.grid.CanMove(g.player.pos, d) {
		return
	}
	g.player.pos = g.player.pos.Step(d)
	g.moves++
	g.cam.follow(g.grid, g.player.pos)
}

func (g *Game) moveEnemies() {
	if len(g.enemies) == 0 {
		return
	}
	interval := g.difficulty.MoveInterval(g.cfg.Enemies.MoveEvery, g.moves, g.playTicks)
	follow := g.difficulty.FollowDistance(g.cfg.Enemies.FollowDistance, g.moves, g.playTicks)

	dist := maze.Distances(g.grid, g.player.pos)
	for i := range g.enemies {
		g.enemies[i].chase(g.grid, dist, interval, follow)
	}
}

// checkFinish ends the run when the player reaches the friend.
// A single-cell maze has no exit to reach.
func (g *Game) checkFinish() bool {
	if g.bestPath == 0 || g.player.pos != g.friend.pos {
		return false
	}
	g.score = g.finishScore()
	g.outcome = core.OutcomeFinished
	g.resetCharacters()
	return true
}

// checkCaught ends the run when an enemy shares the player's cell.
func (g *Game) checkCaught() bool {
	for _, e := range g.enemies {
		if e.pos == g.player.pos {
			g.score = 0
			g.outcome = core.OutcomeCaught
			g.resetCharacters()
			return true
		}
	}
	return false
}

// finishScore is CellPoints*W*H - MovePenalty*moves - TimePenalty*seconds,
// never below 1.
func (g *Game) finishScore() int {
	s := g.cfg.Scoring
	seconds := g.playTicks / g.tickRate
	score := s.CellPoints*g.grid.Size() - s.MovePenalty*g.moves - s.TimePenalty*seconds
	return max(score, 1)
}

func (g *Game) over() bool {
	return g.outcome != core.OutcomePlaying
}

// State returns the current status.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.over(),
		Paused:   g.paused,
		Outcome:  g.outcome,
	}
}

// Err returns the configuration or generation error that stopped the game.
func (g *Game) Err() error {
	return g.err
}

// Grid returns the current maze.
func (g *Game) Grid() *maze.Grid {
	return g.grid
}

// RunSummary describes the current run for persistence.
func (g *Game) RunSummary() core.RunSummary {
	sum := core.RunSummary{
		GameID:  g.ID(),
		Seed:    g.seed,
		Outcome: g.outcome,
		Moves:   g.moves,
		Ticks:   g.playTicks,
		Score:   g.score,
	}
	if g.grid != nil {
		sum.Width, sum.Height = g.grid.Width(), g.grid.Height()
	}
	return sum
}
