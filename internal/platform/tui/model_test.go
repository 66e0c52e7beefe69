package tui

import (
	"maps"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/TheSakyo/Ynov-EscapeTheMaze/internal/config"
	"github.com/TheSakyo/Ynov-EscapeTheMaze/internal/core"
)

// resizingGame counts resets and resizes.
type resizingGame struct {
	fakeGame
	resets  int
	resizes int
	lastIn  core.InputFrame
}

func (g *resizingGame) Reset(core.RuntimeConfig) { g.resets++ }
func (g *resizingGame) Resize(int, int)          { g.resizes++ }
func (g *resizingGame) Step(in core.InputFrame) core.StepResult {
	// The model clears its frame after Step.
	g.lastIn = core.InputFrame{Actions: maps.Clone(in.Actions)}
	return core.StepResult{State: g.state}
}

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30, Seed: 1}
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm
}

func TestModelResizeKeepsRun(t *testing.T) {
	game := &resizingGame{}
	m := NewModel(game, nil, testRuntime())
	m.Init()

	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	if game.resizes != 1 || game.resets != 1 {
		t.Errorf("resizes = %d, resets = %d; expected 1 and 1", game.resizes, game.resets)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 40 {
		t.Errorf("screen = %dx%d", m.screen.Width(), m.screen.Height())
	}
}

func TestModelResetsGamesWithoutResize(t *testing.T) {
	game := &fakeGame{}
	m := NewModel(game, nil, testRuntime())
	m = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 20})
	if m.config.ScreenW != 60 {
		t.Errorf("config width = %d", m.config.ScreenW)
	}
}

func TestModelTickForwardsInput(t *testing.T) {
	game := &resizingGame{}
	m := NewModel(game, nil, testRuntime())

	m = update(t, m, runeKey('d'))
	m = update(t, m, TickMsg{})
	if !game.lastIn.Has(core.ActionRight) {
		t.Error("tick should forward the pending move")
	}
	if m.inputFrame.Has(core.ActionRight) {
		t.Error("input should be cleared after the tick")
	}
}

func TestModelBackOnlyWhenPausedOrOver(t *testing.T) {
	game := &resizingGame{}
	m := NewModel(game, nil, testRuntime())

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.BackToMenu() {
		t.Fatal("back during play should be ignored")
	}

	game.state = core.GameState{Paused: true}
	m = update(t, m, TickMsg{})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() {
		t.Error("back while paused should return to the menu")
	}
	if m.View() != "" {
		t.Error("view should be empty after leaving")
	}
}

func TestModelQuitAbandonsRun(t *testing.T) {
	rec, store := newTestRecorder(t)
	game := &resizingGame{fakeGame: fakeGame{sum: core.RunSummary{GameID: "fake", Moves: 4}}}
	m := NewModel(game, rec, testRuntime())

	m = update(t, m, runeKey('q'))
	if !m.IsQuitting() {
		t.Fatal("q should quit")
	}

	runs, err := store.RecentRuns("fake", 0)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 1 || runs[0].Outcome != core.OutcomeQuit {
		t.Errorf("runs = %+v, expected one quit run", runs)
	}
}

func TestOptionsModelCycles(t *testing.T) {
	m := NewOptionsModel("Escape The Maze", Options{Size: config.SizeLarge}, 80, 24)
	if m.Selected() != nil {
		t.Fatal("nothing is selected yet")
	}

	step := func(msg tea.KeyMsg) {
		next, _ := m.Update(msg)
		m = next.(OptionsModel)
	}

	step(tea.KeyMsg{Type: tea.KeyRight}) // large -> fit
	step(tea.KeyMsg{Type: tea.KeyRight}) // fit -> small
	step(tea.KeyMsg{Type: tea.KeyDown})
	step(tea.KeyMsg{Type: tea.KeyLeft}) // normal -> easy
	step(tea.KeyMsg{Type: tea.KeyDown})
	step(tea.KeyMsg{Type: tea.KeyEnter})

	sel := m.Selected()
	if sel == nil {
		t.Fatal("enter on Start should select")
	}
	if sel.Size != config.SizeSmall || sel.Difficulty != config.DifficultyEasy {
		t.Errorf("selection = %+v", *sel)
	}
}

func TestOptionsModelBack(t *testing.T) {
	m := NewOptionsModel("Maze", Options{}, 80, 24)
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(OptionsModel)
	if !m.WantsBack() || m.Selected() != nil {
		t.Error("esc should go back without a selection")
	}
}

func TestRenderScreenPlainText(t *testing.T) {
	s := core.NewScreen(3, 2)
	s.DrawText(0, 0, "abc")
	s.SetColored(1, 1, '@', core.ColorPlayer)

	out := RenderScreen(s)
	if got := stripANSI(out); got != "abc\n @ " {
		t.Errorf("RenderScreen() text = %q", got)
	}
}

// stripANSI removes escape sequences so tests do not depend on the color profile.
func stripANSI(s string) string {
	out := make([]rune, 0, len(s))
	inEsc := false
	for _, r := range s {
		switch {
		case r == 0x1b:
			inEsc = true
		case inEsc:
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
				inEsc = false
			}
		default:
			out = append(out, r)
		}
	}
	return string(out)
}
