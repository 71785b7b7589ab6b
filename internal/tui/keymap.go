package tui

import tea "github.com/charmbracelet/bubbletea"

// Action is a driver command bound to a key.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionPause
	ActionStep
	ActionReset
	ActionGravityUp
	ActionGravityDown
	ActionBiggerCells
	ActionSmallerCells
)

// MapKey translates a key message to an action.
func MapKey(msg tea.KeyMsg) Action {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return ActionQuit
	case " ", "p":
		return ActionPause
	case "n":
		return ActionStep
	case "r":
		return ActionReset
	case "+", "=":
		return ActionGravityUp
	case "-", "_":
		return ActionGravityDown
	case "]":
		return ActionBiggerCells
	case "[":
		return ActionSmallerCells
	}
	return ActionNone
}

// helpLine lists the bindings shown in the status bar.
const helpLine = "drag paint · space pause · n step · r reset · +/- gravity · [/] size · q quit"
