package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-glider/internal/core"
)

// Control is a shell-level action that never reaches the simulation.
type Control int

const (
	ControlNone Control = iota
	ControlQuit
	ControlPauseToggle
	ControlDiagnostics
	ControlScreenshot
)

// KeyMapper translates Bubble Tea key messages to game intents and shell
// controls. This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message. Exactly one of the results is
// meaningful: a non-None intent goes to the simulation, a non-None
// control is handled by the shell.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (core.Intent, Control) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.IntentNone, ControlQuit
	case "ctrl+s":
		return core.IntentNone, ControlScreenshot
	case "p", "esc":
		return core.IntentNone, ControlPauseToggle
	case "f2", "d":
		return core.IntentNone, ControlDiagnostics
	case " ", "up", "w", "enter":
		return core.IntentFlap, ControlNone
	case "r":
		return core.IntentRestart, ControlNone
	}
	return core.IntentNone, ControlNone
}
