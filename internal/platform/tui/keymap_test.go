package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pocketpup/internal/core"
)

func keyMsg(s string) tea.KeyMsg {
	if s == "ctrl+c" {
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	if s == "enter" {
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	if s == "esc" {
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	if s == "tab" {
		return tea.KeyMsg{Type: tea.KeyTab}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKeyActions(t *testing.T) {
	km := NewKeyMapper()

	cases := []struct {
		key  string
		want core.Action
	}{
		{"f", core.ActionFeed},
		{"p", core.ActionPlay},
		{"z", core.ActionNap},
		{"s", core.ActionStats},
		{"tab", core.ActionStats},
		{"l", core.ActionLog},
		{"t", core.ActionTheme},
		{"r", core.ActionReset},
		{"enter", core.ActionConfirm},
		{"y", core.ActionConfirm},
		{"esc", core.ActionBack},
		{"b", core.ActionBack},
		{"x", core.ActionNone},
	}
	for _, c := range cases {
		action, isQuit := km.MapKey(keyMsg(c.key))
		if isQuit {
			t.Errorf("MapKey(%q) reported quit", c.key)
		}
		if action != c.want {
			t.Errorf("MapKey(%q) = %v, want %v", c.key, action, c.want)
		}
	}
}

func TestMapKeyQuit(t *testing.T) {
	km := NewKeyMapper()

	for _, key := range []string{"q", "ctrl+c"} {
		action, isQuit := km.MapKey(keyMsg(key))
		if !isQuit {
			t.Errorf("MapKey(%q) should report quit", key)
		}
		if action != core.ActionQuit {
			t.Errorf("MapKey(%q) = %v, want ActionQuit", key, action)
		}
	}
}

func TestSanitizeUser(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"vova", "vova"},
		{"Vova", "vova"},
		{" spaced out ", "spaced-out"},
		{"dots.and/slashes", "dots-and-slashes"},
		{"under_score-ok", "under_score-ok"},
		{"", "guest"},
		{"   ", "guest"},
	}
	for _, c := range cases {
		if got := sanitizeUser(c.in); got != c.want {
			t.Errorf("sanitizeUser(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestSanitizeUserCapsLength(t *testing.T) {
	long := make([]byte, 100)
	for i := range long {
		long[i] = 'a'
	}
	if got := sanitizeUser(string(long)); len(got) != 32 {
		t.Errorf("len = %d, want 32", len(got))
	}
}
