package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pocketpup/internal/core"
)

// KeyMapper translates Bubble Tea key messages to device actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a device action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	}

	// Care and screen actions
	switch key {
	case "f":
		return core.ActionFeed, false
	case "p":
		return core.ActionPlay, false
	case "z":
		return core.ActionNap, false
	case "s", "tab":
		return core.ActionStats, false
	case "l":
		return core.ActionLog, false
	case "t":
		return core.ActionTheme, false
	case "r":
		return core.ActionReset, false
	case "enter", "y":
		return core.ActionConfirm, false
	case "b", "esc":
		return core.ActionBack, false
	}

	return core.ActionNone, false
}

// PetKeyMap defines the key bindings shown in the help bar.
type PetKeyMap struct {
	Feed  key.Binding
	Play  key.Binding
	Nap   key.Binding
	Stats key.Binding
	Log   key.Binding
	Theme key.Binding
	Reset key.Binding
	Back  key.Binding
	Quit  key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k PetKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Feed, k.Play, k.Nap, k.Stats, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k PetKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Feed, k.Play, k.Nap},
		{k.Stats, k.Log, k.Theme},
		{k.Reset, k.Back, k.Quit},
	}
}

// DefaultPetKeyMap returns default key bindings.
func DefaultPetKeyMap() PetKeyMap {
	return PetKeyMap{
		Feed: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "feed"),
		),
		Play: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "play"),
		),
		Nap: key.NewBinding(
			key.WithKeys("z"),
			key.WithHelp("z", "nap"),
		),
		Stats: key.NewBinding(
			key.WithKeys("s", "tab"),
			key.WithHelp("s", "stats"),
		),
		Log: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "log"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "theme"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
