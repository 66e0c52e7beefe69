// Package registry maps game IDs to factories.
// Game packages register themselves from init(), so the CLI and the SSH server
// only need a blank import to offer a mode.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/TheSakyo/Ynov-EscapeTheMaze/internal/core"
)

// Game is a tick-driven game. Implementations hold pure logic; the platform
// owns timing, key mapping and terminal output.
type Game interface {
	// ID is the stable identifier used on the command line and in the score store.
	ID() string

	// Title is the name shown in menus.
	Title() string

	// Reset starts a new run. It is called once at start and again on restart.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into a pre-cleared screen.
	Render(dst *core.Screen)

	// State returns the current score and status.
	State() core.GameState
}

// RunReporter is implemented by games that can describe a finished run.
type RunReporter interface {
	RunSummary() core.RunSummary
}

// Resizer is implemented by games that can follow a terminal resize without
// starting a new run.
type Resizer interface {
	Resize(w, h int)
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a fresh game instance.
type Factory func() Game

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
)

// Register adds a factory under id. It panics on a duplicate id.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	factories[id] = f
	titles[id] = f().Title()
}

// List returns all registered games sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{ID: id, Title: titles[id]})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates the game registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
