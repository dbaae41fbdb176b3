// Package tui provides the Bubble Tea integration for the pocket pup.
// It handles the terminal UI loop, input mapping, and the countdowns that
// drive the deep-sleep wake paths.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pocketpup/internal/device"
)

// TickMsg is sent to trigger a frame of the awake loop.
type TickMsg time.Time

// WakeTimerMsg fires when the deep-sleep alert-check countdown expires.
type WakeTimerMsg time.Time

// AckTimeoutMsg fires when the alert acknowledgment window closes unanswered.
type AckTimeoutMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// awaitCmd blocks on the countdown in a goroutine and delivers wrap(now) when
// it expires. A cancelled countdown delivers nothing.
func awaitCmd(c *device.Countdown, wrap func(time.Time) tea.Msg) tea.Cmd {
	return func() tea.Msg {
		if !c.Wait() {
			return nil
		}
		return wrap(time.Now())
	}
}
