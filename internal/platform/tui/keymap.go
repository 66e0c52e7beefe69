package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/TheSakyo/Ynov-EscapeTheMaze/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game and menu actions.
type KeyMapper struct{}

// NewKeyMapper creates a key mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

var gameKeys = map[string]core.Action{
	"w": core.ActionUp, "k": core.ActionUp, "up": core.ActionUp,
	"s": core.ActionDown, "j": core.ActionDown, "down": core.ActionDown,
	"a": core.ActionLeft, "h": core.ActionLeft, "left": core.ActionLeft,
	"d": core.ActionRight, "l": core.ActionRight, "right": core.ActionRight,
	"enter": core.ActionConfirm,
	"b":     core.ActionBack, "esc": core.ActionBack,
	"p": core.ActionPause, " ": core.ActionPause,
	"r": core.ActionRestart,
}

// MapKey returns the game action for a key and whether it asks to quit.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	}
	if a, ok := gameKeys[msg.String()]; ok {
		return a, false
	}
	return core.ActionNone, false
}

// MapKeyToFrame records the action of a key in frame.
// It returns true if the key asks to quit.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}

// MenuAction is a menu-level action derived from a key.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k":
		return MenuActionUp
	case "s", "down", "j":
		return MenuActionDown
	case "a", "left", "h":
		return MenuActionLeft
	case "d", "right", "l":
		return MenuActionRight
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}
	return MenuActionNone
}
