package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/TheSakyo/Ynov-EscapeTheMaze/internal/config"
	"github.com/TheSakyo/Ynov-EscapeTheMaze/internal/core"
	"github.com/TheSakyo/Ynov-EscapeTheMaze/internal/games/mazerun"
	"github.com/TheSakyo/Ynov-EscapeTheMaze/internal/registry"
)

// Option rows in display order.
const (
	optionSize = iota
	optionDifficulty
	optionStart
	optionCount
)

// Options is the maze size and difficulty picked before a run.
type Options struct {
	Size       config.SizePreset
	Difficulty config.DifficultyPreset
}

// CurrentOptions returns the process-wide maze selections.
func CurrentOptions() Options {
	s := mazerun.CurrentSettings()
	return Options{
		Size:       config.SizePreset(s.Size),
		Difficulty: config.DifficultyPreset(s.Difficulty),
	}
}

// ApplyOptions gives game its own copy of the process-wide settings with
// opts on top. A chosen size replaces explicit dimensions. Games without
// options are left alone.
func ApplyOptions(game registry.Game, opts Options) {
	mg, ok := game.(*mazerun.Game)
	if !ok {
		return
	}
	s := mazerun.CurrentSettings()
	if opts.Size != "" {
		s.Size = string(opts.Size)
		s.Width, s.Height = 0, 0
	}
	s.Difficulty = string(opts.Difficulty)
	mg.UseSettings(s)
}

// OptionsModel lets users choose the maze size and difficulty.
type OptionsModel struct {
	title     string
	cursor    int
	sizeIdx   int
	diffIdx   int
	width     int
	height    int
	keyMapper *KeyMapper
	choosing  bool
	quitting  bool
	back      bool
}

// NewOptionsModel creates an options screen preselecting opts. Unknown or
// empty presets fall back to medium and normal.
func NewOptionsModel(title string, opts Options, width, height int) OptionsModel {
	return OptionsModel{
		title:     title,
		sizeIdx:   indexOf(config.SizePresets, opts.Size, config.SizeMedium),
		diffIdx:   indexOf(config.DifficultyPresets, opts.Difficulty, config.DifficultyNormal),
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		choosing:  true,
	}
}

func indexOf[T comparable](list []T, v, fallback T) int {
	for i, x := range list {
		if x == v {
			return i
		}
	}
	for i, x := range list {
		if x == fallback {
			return i
		}
	}
	return 0
}

// Init initializes the model.
func (m OptionsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m OptionsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m OptionsModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < optionCount-1 {
			m.cursor++
		}
	case MenuActionLeft:
		m.cycle(-1)
	case MenuActionRight:
		m.cycle(1)
	case MenuActionSelect:
		if m.cursor == optionStart {
			m.choosing = false
			return m, tea.Quit
		}
		m.cycle(1)
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}
	return m, nil
}

// cycle moves the value of the current row by delta, wrapping around.
func (m *OptionsModel) cycle(delta int) {
	switch m.cursor {
	case optionSize:
		n := len(config.SizePresets)
		m.sizeIdx = (m.sizeIdx + delta + n) % n
	case optionDifficulty:
		n := len(config.DifficultyPresets)
		m.diffIdx = (m.diffIdx + delta + n) % n
	}
}

// sizeLabel describes a size preset with the grid it produces here.
func (m OptionsModel) sizeLabel() string {
	var cfg config.MazeConfig
	preset := config.SizePresets[m.sizeIdx]
	config.ApplySizePreset(&cfg, preset, m.width, m.height)
	return fmt.Sprintf("%s (%dx%d)", preset, cfg.Grid.Width, cfg.Grid.Height)
}

// View renders the option rows.
func (m OptionsModel) View() string {
	if m.quitting || m.back {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerStyled(menuTitleStyle, strings.ToUpper(m.title), m.width))
	b.WriteString("\n\n")

	rows := [optionCount]string{
		optionSize:       fmt.Sprintf("Size:       < %s >", m.sizeLabel()),
		optionDifficulty: fmt.Sprintf("Difficulty: < %s >", config.DifficultyPresets[m.diffIdx]),
		optionStart:      "Start",
	}
	for i, row := range rows {
		if i == optionStart {
			b.WriteString("\n")
		}
		if i == m.cursor {
			b.WriteString(centerStyled(menuCursorStyle, "> "+row, m.width))
		} else {
			b.WriteString(centerText("  "+row, m.width))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerStyled(menuHintStyle, "Left/Right: Change  |  Enter: Start  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the options, or nil while still choosing.
func (m OptionsModel) Selected() *Options {
	if m.choosing {
		return nil
	}
	return &Options{
		Size:       config.SizePresets[m.sizeIdx],
		Difficulty: config.DifficultyPresets[m.diffIdx],
	}
}

// IsQuitting returns true if user wants to quit.
func (m OptionsModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m OptionsModel) WantsBack() bool {
	return m.back
}

// RunOptionsMenu runs the options screen. It returns nil options when the
// user goes back or quits; quit is true only for the latter.
func RunOptionsMenu(title string, opts Options, cfg core.RuntimeConfig) (selected *Options, quit bool, err error) {
	model := NewOptionsModel(title, opts, cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, false, err
	}

	m, ok := finalModel.(OptionsModel)
	if !ok {
		return nil, true, nil
	}
	if m.IsQuitting() {
		return nil, true, nil
	}
	return m.Selected(), false, nil
}
