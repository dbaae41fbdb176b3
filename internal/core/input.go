package core

// Action represents a semantic device action, abstracted from physical key
// presses. The handheld has two care buttons plus a combo; the terminal build
// maps a richer key set onto the same intents.
type Action int

const (
	ActionNone    Action = iota
	ActionFeed           // F - give food
	ActionPlay           // P - play a game with the pup
	ActionNap            // Z - toggle sleep
	ActionStats          // S, Tab - show the numeric stats screen
	ActionLog            // L - show the care log
	ActionTheme          // T - cycle sprite theme
	ActionReset          // R - factory reset (needs confirmation)
	ActionConfirm        // Enter, Y - confirm a prompt
	ActionBack           // B, Esc - dismiss a screen or prompt
	ActionQuit           // Q, Ctrl+C - exit the session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionFeed:
		return "Feed"
	case ActionPlay:
		return "Play"
	case ActionNap:
		return "Nap"
	case ActionStats:
		return "Stats"
	case ActionLog:
		return "Log"
	case ActionTheme:
		return "Theme"
	case ActionReset:
		return "Reset"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
