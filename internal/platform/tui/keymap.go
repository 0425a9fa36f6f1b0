package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-catch/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to game actions.
// Shifted arrows move and dash in one press. isQuit reports a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (actions []core.Action, isQuit bool) {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return []core.Action{core.ActionQuit}, true
	}

	switch key {
	case "a", "left", "h":
		return []core.Action{core.ActionLeft}, false
	case "d", "right", "l":
		return []core.Action{core.ActionRight}, false
	case "shift+left", "A", "H":
		return []core.Action{core.ActionLeft, core.ActionDash}, false
	case "shift+right", "D", "L":
		return []core.Action{core.ActionRight, core.ActionDash}, false
	case "z", "x":
		return []core.Action{core.ActionDash}, false
	case "tab":
		return []core.Action{core.ActionAutopilot}, false
	case "enter":
		return []core.Action{core.ActionConfirm}, false
	case "p", "esc":
		return []core.Action{core.ActionPause}, false
	case "b":
		return []core.Action{core.ActionBack}, false
	case "r":
		return []core.Action{core.ActionRestart}, false
	}

	return nil, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	actions, isQuit := km.MapKey(msg)
	for _, a := range actions {
		frame.Set(a)
	}
	return isQuit
}

// MenuAction represents a menu-specific action derived from input.
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
