// Package tui runs games and menus in the terminal with Bubble Tea, locally
// or over SSH.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/TheSakyo/Ynov-EscapeTheMaze/internal/core"
)

// TickMsg triggers one simulation tick.
type TickMsg time.Time

// tickCmd schedules the next tick at the configured rate.
func tickCmd(cfg core.RuntimeConfig) tea.Cmd {
	return tea.Tick(cfg.TickDuration(), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
