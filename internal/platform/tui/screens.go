package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pocketpup/internal/core"
	"github.com/vovakirdan/pocketpup/internal/pet"
	"github.com/vovakirdan/pocketpup/internal/sprites"
)

// Gauge geometry and visual bands.
const (
	gaugeCells = 20 // bar width in cells
	gaugeLabel = 9  // label column width
	gaugeLow   = 25 // below this the bar turns red
	gaugeHigh  = 60 // at or above this the bar is green
)

// drawPetScreen draws the main care screen: the bezel, the header, the
// animated pup with its mood caption, the four vitals and the notice line.
func drawPetScreen(s *core.Screen, name string, stats pet.Stats, frame sprites.Frame, notice string) {
	s.Clear()
	w, h := s.Width(), s.Height()
	s.DrawBoxColor(core.Rect{X: 0, Y: 0, W: w, H: h}, core.ColorGray)

	// Header: name left, age right.
	s.DrawTextColor(2, 1, strings.ToUpper(name), core.ColorBrightWhite)
	age := "age " + pet.FormatAge(stats.Age)
	s.DrawTextColor(w-len(age)-2, 1, age, core.ColorGray)
	s.DrawHLine(1, 2, w-2, '─')

	// Sprite, centered.
	top := 4
	x0 := (w - frame.Width()) / 2
	for i, line := range frame.Lines {
		s.DrawTextColor(x0, top+i, line, frame.Color)
	}
	s.DrawTextCenteredColor(top+frame.Height()+1, behaviorCaption(name, stats.Behavior), frame.Color)

	// Vitals.
	gy := top + frame.Height() + 3
	gx := (w - (gaugeLabel + gaugeCells + 6)) / 2
	drawGauge(s, gx, gy, "HUNGER", stats.Hunger)
	drawGauge(s, gx, gy+1, "HAPPINESS", stats.Happiness)
	drawGauge(s, gx, gy+2, "ENERGY", stats.Energy)
	drawGauge(s, gx, gy+3, "HEALTH", stats.Health)

	if notice != "" {
		s.DrawTextCenteredColor(h-2, notice, core.ColorBrightYellow)
	}
}

// drawGauge draws one labeled stat bar.
func drawGauge(s *core.Screen, x, y int, label string, value int) {
	c := gaugeColor(value)
	s.DrawTextColor(x, y, fmt.Sprintf("%-*s", gaugeLabel, label), core.ColorWhite)
	s.Set(x+gaugeLabel, y, '[')
	filled := value * gaugeCells / pet.StatMax
	for i := 0; i < gaugeCells; i++ {
		r := '░'
		if i < filled {
			r = '█'
		}
		s.SetCell(x+gaugeLabel+1+i, y, r, c)
	}
	s.Set(x+gaugeLabel+1+gaugeCells, y, ']')
	s.DrawTextColor(x+gaugeLabel+gaugeCells+3, y, fmt.Sprintf("%3d", value), c)
}

func gaugeColor(value int) core.Color {
	switch {
	case value < gaugeLow:
		return core.ColorBrightRed
	case value < gaugeHigh:
		return core.ColorYellow
	default:
		return core.ColorBrightGreen
	}
}

// behaviorCaption returns the one-line mood text under the sprite.
func behaviorCaption(name string, b pet.Behavior) string {
	switch b {
	case pet.BehaviorHappy:
		return name + " is overjoyed!"
	case pet.BehaviorEating:
		return "nom nom nom"
	case pet.BehaviorSleeping:
		return name + " is fast asleep"
	case pet.BehaviorHungry:
		return name + " is begging for food"
	case pet.BehaviorSick:
		return name + " feels terrible"
	case pet.BehaviorPlaying:
		return "fetch!"
	case pet.BehaviorVomiting:
		return "...that was too much"
	default:
		return name + " is doing fine"
	}
}

// drawDarkScreen draws the deep-sleep display. The handheld turns the panel
// off entirely; the terminal keeps two dim lines so the session does not look
// dead.
func drawDarkScreen(s *core.Screen) {
	s.Clear()
	h := s.Height()
	s.DrawTextCenteredColor(h/2-1, "z  z  z", core.ColorGray)
	s.DrawTextCenteredColor(h/2+1, "press any key to wake", core.ColorGray)
}

// drawAlertScreen draws the wake prompt shown when a periodic check finds the
// pup in trouble.
func drawAlertScreen(s *core.Screen, name string, alerts []pet.StatName) {
	s.Clear()
	w, h := s.Width(), s.Height()

	lines := make([]string, 0, len(alerts))
	for _, a := range alerts {
		lines = append(lines, a.String()+" is critically low")
	}

	boxW := 38
	boxH := len(lines) + 6
	box := core.Rect{X: (w - boxW) / 2, Y: (h - boxH) / 2, W: boxW, H: boxH}
	s.DrawBoxColor(box, core.ColorBrightRed)

	s.DrawTextCenteredColor(box.Y+1, "(!)  "+strings.ToUpper(name)+" NEEDS YOU", core.ColorBrightRed)
	for i, line := range lines {
		s.DrawTextCenteredColor(box.Y+3+i, line, core.ColorWhite)
	}
	s.DrawTextCenteredColor(box.Y+boxH-2, "press any key to help", core.ColorGray)
}

// renderStatsPanel renders the numeric vitals screen.
func renderStatsPanel(name string, stats pet.Stats, width int) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	panelStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 2)

	rows := []struct {
		label string
		value string
	}{
		{"Hunger", fmt.Sprintf("%3d / %d", stats.Hunger, pet.StatMax)},
		{"Happiness", fmt.Sprintf("%3d / %d", stats.Happiness, pet.StatMax)},
		{"Energy", fmt.Sprintf("%3d / %d", stats.Energy, pet.StatMax)},
		{"Health", fmt.Sprintf("%3d / %d", stats.Health, pet.StatMax)},
		{"Age", pet.FormatAge(stats.Age)},
		{"Mood", stats.Behavior.String()},
	}

	var panel strings.Builder
	panel.WriteString(name + "\n")
	panel.WriteString(strings.Repeat("-", 22) + "\n")
	for _, r := range rows {
		panel.WriteString(fmt.Sprintf("%-10s %s\n", r.label, r.value))
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText("VITALS", width)))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		panelStyle.Render(strings.TrimRight(panel.String(), "\n"))))
	return b.String()
}

// renderLogPanel renders the care history screen around the table view.
func renderLogPanel(tableView string, width int, empty bool) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	panelStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText("CARE LOG", width)))
	b.WriteString("\n\n")

	if empty {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			emptyStyle.Render("No care events recorded yet.\nFeed the pup to make history!")))
		return b.String()
	}

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, panelStyle.Render(tableView)))
	return b.String()
}

// renderConfirmPanel renders the factory reset confirmation prompt.
func renderConfirmPanel(name string, width int) string {
	warnStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("9"))
	panelStyle := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(lipgloss.Color("9")).
		Padding(1, 3)

	body := fmt.Sprintf("%s\n\nThis hatches a brand new pup and erases\n%s's stats, age and snapshot for good.\n\ny: confirm    any other key: cancel",
		warnStyle.Render("FACTORY RESET"), name)
	return "\n\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center, panelStyle.Render(body))
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}
