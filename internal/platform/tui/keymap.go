package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blockfall/internal/engine"
)

// KeyMapper translates Bubble Tea key messages to engine commands and
// session actions. This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapGameKey translates a key message to an engine command. The second
// return is false for keys that do not drive the piece.
func (km *KeyMapper) MapGameKey(msg tea.KeyMsg) (engine.Command, bool) {
	switch msg.String() {
	case "left", "h", "a":
		return engine.CommandMoveLeft, true
	case "right", "l", "d":
		return engine.CommandMoveRight, true
	case "up", "w", "x":
		return engine.CommandRotateCW, true
	case "z":
		return engine.CommandRotateCCW, true
	case "down", "j", "s":
		return engine.CommandSoftDrop, true
	case " ":
		return engine.CommandHardDrop, true
	}
	return 0, false
}

// UIAction represents a session-level action derived from input.
type UIAction int

const (
	UIActionNone UIAction = iota
	UIActionConfirm
	UIActionPause
	UIActionRestart
	UIActionQuit
)

// MapUIKey translates a key message to a session action. Keys shared with
// gameplay (space confirms on overlays, drops in play) are disambiguated by
// the model's state.
func (km *KeyMapper) MapUIKey(msg tea.KeyMsg) UIAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return UIActionQuit
	case "enter", " ":
		return UIActionConfirm
	case "p", "esc":
		return UIActionPause
	case "r":
		return UIActionRestart
	}
	return UIActionNone
}
