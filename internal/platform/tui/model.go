package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pocketpup/internal/core"
	"github.com/vovakirdan/pocketpup/internal/device"
	"github.com/vovakirdan/pocketpup/internal/journal"
	"github.com/vovakirdan/pocketpup/internal/pet"
	"github.com/vovakirdan/pocketpup/internal/sprites"
)

// Mode selects which awake screen is showing.
type Mode int

const (
	ModePet Mode = iota
	ModeStats
	ModeLog
	ModeConfirmReset
)

const (
	noticeFor = 3 * time.Second        // how long flash notices stay up
	celEvery  = 500 * time.Millisecond // sprite animation cadence
)

// PetModel is the Bubble Tea model for one pup session. It owns the screen
// buffer and the countdowns; all care state lives on the device.
type PetModel struct {
	dev     *device.Device
	journal *journal.Journal // nil disables history; care continues without it
	name    string

	theme    sprites.Theme
	themes   []sprites.ThemeInfo
	themeIdx int

	screen    *core.Screen
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	keys      PetKeyMap
	help      help.Model

	mode        Mode
	frame       int // frame counter driving sprite cels
	notice      string
	noticeUntil time.Time

	logTable table.Model
	logEmpty bool
	alerts   []pet.StatName

	wakeWait *device.Countdown // armed while in deep sleep
	ackWait  *device.Countdown // armed while in alert-wait

	quitting bool
}

// NewPetModel creates the model and boots the device: the snapshot is
// restored, or a fresh pup hatched, before the first frame renders.
func NewPetModel(dev *device.Device, jour *journal.Journal, name, themeID string, cfg core.RuntimeConfig) PetModel {
	def := core.DefaultRuntimeConfig()
	if cfg.TickRate <= 0 {
		cfg.TickRate = def.TickRate
	}
	if cfg.ScreenW <= 0 || cfg.ScreenH <= 1 {
		cfg.ScreenW, cfg.ScreenH = def.ScreenW, def.ScreenH
	}

	m := PetModel{
		dev:     dev,
		journal: jour,
		name:    name,
		themes:  sprites.List(),
		// The last terminal row is reserved for the help bar.
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH-1),
		config:    cfg,
		keyMapper: NewKeyMapper(),
		keys:      DefaultPetKeyMap(),
		help:      help.New(),
	}

	for i, info := range m.themes {
		if info.ID == themeID {
			m.themeIdx = i
		}
	}
	if len(m.themes) > 0 {
		if th, err := sprites.Get(m.themes[m.themeIdx].ID); err == nil {
			m.theme = th
		}
	}

	now := time.Now()
	boot := dev.Boot(now)
	if boot.New {
		m.flash(now, "a brand new pup! take good care of it")
	} else {
		m.flash(now, "welcome back!")
	}
	m.record(journal.KindWake, "powered on")
	return m
}

// Init starts the frame loop.
func (m PetModel) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m PetModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case TickMsg:
		return m.handleTick(time.Time(msg))
	case WakeTimerMsg:
		return m.handleWakeTimer(time.Time(msg))
	case AckTimeoutMsg:
		return m.handleAckTimeout(time.Time(msg))
	}
	return m, nil
}

// handleResize processes window resize events.
func (m PetModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	if msg.Width <= 0 || msg.Height <= 1 {
		return m, nil
	}
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height-1)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances the awake loop by one frame.
func (m PetModel) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.frame++
	if m.notice != "" && now.After(m.noticeUntil) {
		m.notice = ""
	}

	rep := m.dev.Step(now)
	if rep.PoweredDown {
		m.mode = ModePet
		return m, tea.Batch(tickCmd(m.config.TickRate), m.armWakeTimer())
	}
	return m, tickCmd(m.config.TickRate)
}

// handleWakeTimer processes the periodic alert check firing in deep sleep.
func (m PetModel) handleWakeTimer(now time.Time) (tea.Model, tea.Cmd) {
	if m.dev.Power() != device.PowerDeepSleep {
		return m, nil
	}
	rep := m.dev.TimerWake(now)
	if len(rep.Alerts) > 0 {
		m.alerts = rep.Alerts
		m.record(journal.KindAlert, alertDetail(rep.Alerts))
		return m, m.armAckWindow()
	}
	// Nothing critical; stay dark and re-arm the check.
	return m, m.armWakeTimer()
}

// handleAckTimeout processes the alert window closing with no input.
func (m PetModel) handleAckTimeout(now time.Time) (tea.Model, tea.Cmd) {
	if m.dev.Power() != device.PowerAlertWait {
		return m, nil
	}
	m.dev.AlertExpired(now)
	m.alerts = nil
	return m, m.armWakeTimer()
}

// handleKey processes keyboard input for every power state and screen.
func (m PetModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	now := time.Now()
	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		return m.quit(now)
	}

	switch m.dev.Power() {
	case device.PowerDeepSleep:
		return m.buttonWake(now)
	case device.PowerAlertWait:
		if m.ackWait != nil {
			m.ackWait.Cancel()
			m.ackWait = nil
		}
		m.dev.Acknowledge(now)
		m.alerts = nil
		m.mode = ModePet
		return m, nil
	}

	switch m.mode {
	case ModeConfirmReset:
		return m.handleConfirmKey(now, action)
	case ModeStats, ModeLog:
		return m.handleOverlayKey(now, action, msg)
	default:
		return m.handlePetKey(now, action)
	}
}

// quit persists an awake pup and stops the program.
func (m PetModel) quit(now time.Time) (tea.Model, tea.Cmd) {
	if m.wakeWait != nil {
		m.wakeWait.Cancel()
	}
	if m.ackWait != nil {
		m.ackWait.Cancel()
	}
	if m.dev.Power() == device.PowerAwake {
		//nolint:errcheck // Best-effort save; the autosave cadence covers most of it
		m.dev.Save(now)
	}
	m.quitting = true
	return m, tea.Quit
}

// buttonWake resumes from deep sleep on a keypress.
func (m PetModel) buttonWake(now time.Time) (tea.Model, tea.Cmd) {
	if m.wakeWait != nil {
		m.wakeWait.Cancel()
		m.wakeWait = nil
	}
	rep := m.dev.ButtonWake(now)
	if rep.Elapsed.Minutes > 0 {
		m.flash(now, fmt.Sprintf("welcome back! %d minutes passed", rep.Elapsed.Minutes))
	}
	m.record(journal.KindWake, fmt.Sprintf("woke after %d min away", rep.Elapsed.Minutes))
	m.mode = ModePet
	return m, nil
}

// handlePetKey processes input on the main care screen.
func (m PetModel) handlePetKey(now time.Time, action core.Action) (tea.Model, tea.Cmd) {
	switch action {
	case core.ActionFeed:
		if err := m.dev.Feed(now); err != nil {
			m.flash(now, m.name+" is already full!")
		} else {
			m.flash(now, "nom!")
			m.record(journal.KindFeed, fmt.Sprintf("hunger %d", m.dev.Stats().Hunger))
		}
	case core.ActionPlay:
		if err := m.dev.Play(now); err != nil {
			m.flash(now, m.name+" is too tired to play")
		} else {
			m.flash(now, "fetch!")
			m.record(journal.KindPlay, fmt.Sprintf("happiness %d", m.dev.Stats().Happiness))
		}
	case core.ActionNap:
		if m.dev.Stats().Behavior == pet.BehaviorSleeping {
			m.dev.WakeUp(now)
			m.flash(now, "rise and shine")
			m.record(journal.KindSleep, "nap ended")
		} else {
			m.dev.Sleep(now)
			m.flash(now, "sweet dreams")
			m.record(journal.KindSleep, "nap started")
		}
	case core.ActionStats:
		m.dev.Touch(now)
		m.mode = ModeStats
	case core.ActionLog:
		m.dev.Touch(now)
		m.openLog()
	case core.ActionTheme:
		m.dev.Touch(now)
		m.cycleTheme(now)
	case core.ActionReset:
		m.dev.Touch(now)
		m.mode = ModeConfirmReset
	default:
		// Every keypress counts as attention, mapped or not.
		m.dev.Touch(now)
	}
	return m, nil
}

// handleConfirmKey processes input on the reset confirmation prompt.
func (m PetModel) handleConfirmKey(now time.Time, action core.Action) (tea.Model, tea.Cmd) {
	m.mode = ModePet
	if action != core.ActionConfirm {
		m.dev.Touch(now)
		m.flash(now, "reset cancelled")
		return m, nil
	}
	if err := m.dev.Reset(now); err != nil {
		m.flash(now, "reset failed; the old snapshot may linger")
	} else {
		m.flash(now, "a brand new pup!")
	}
	m.record(journal.KindReset, "factory reset")
	return m, nil
}

// handleOverlayKey processes input on the stats and log screens.
func (m PetModel) handleOverlayKey(now time.Time, action core.Action, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.dev.Touch(now)

	switch action {
	case core.ActionStats:
		if m.mode == ModeStats {
			m.mode = ModePet
		} else {
			m.mode = ModeStats
		}
		return m, nil
	case core.ActionLog:
		if m.mode == ModeLog {
			m.mode = ModePet
		} else {
			m.openLog()
		}
		return m, nil
	case core.ActionBack:
		m.mode = ModePet
		return m, nil
	}

	if m.mode == ModeLog {
		// Pass to table for scrolling
		var cmd tea.Cmd
		m.logTable, cmd = m.logTable.Update(msg)
		return m, cmd
	}
	m.mode = ModePet
	return m, nil
}

// openLog loads the care history and switches to the log screen.
func (m *PetModel) openLog() {
	m.logTable = m.buildLogTable()
	m.mode = ModeLog
}

// buildLogTable creates the history table from the journal's recent entries.
func (m *PetModel) buildLogTable() table.Model {
	columns := []table.Column{
		{Title: "When", Width: 14},
		{Title: "Event", Width: 7},
		{Title: "Detail", Width: 26},
	}

	height := m.config.ScreenH - 8
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	m.logEmpty = true
	if m.journal == nil {
		return t
	}
	entries, err := m.journal.Recent(100)
	if err != nil || len(entries) == 0 {
		return t
	}

	m.logEmpty = false
	rows := make([]table.Row, len(entries))
	for i, e := range entries {
		rows[i] = table.Row{e.CreatedAt.Format("Jan 02 15:04"), e.Kind, e.Detail}
	}
	t.SetRows(rows)
	return t
}

// cycleTheme switches to the next registered sprite theme.
func (m *PetModel) cycleTheme(now time.Time) {
	if len(m.themes) == 0 {
		return
	}
	m.themeIdx = (m.themeIdx + 1) % len(m.themes)
	th, err := sprites.Get(m.themes[m.themeIdx].ID)
	if err != nil {
		return
	}
	m.theme = th
	m.flash(now, "theme: "+th.Title())
}

// flash shows a notice line for a few seconds.
func (m *PetModel) flash(now time.Time, text string) {
	m.notice = text
	m.noticeUntil = now.Add(noticeFor)
}

// record appends a care event when a journal is attached.
func (m PetModel) record(kind, detail string) {
	if m.journal == nil {
		return
	}
	//nolint:errcheck // Best-effort history, care continues regardless
	m.journal.Record(kind, detail)
}

// armWakeTimer starts the deep-sleep alert-check countdown.
func (m *PetModel) armWakeTimer() tea.Cmd {
	m.wakeWait = device.NewCountdown(m.dev.Config().WakeEvery)
	return awaitCmd(m.wakeWait, func(t time.Time) tea.Msg { return WakeTimerMsg(t) })
}

// armAckWindow starts the bounded alert acknowledgment countdown.
func (m *PetModel) armAckWindow() tea.Cmd {
	m.ackWait = device.NewCountdown(m.dev.Config().AckWindow)
	return awaitCmd(m.ackWait, func(t time.Time) tea.Msg { return AckTimeoutMsg(t) })
}

// currentCel picks the sprite cel for this frame. Cels advance on a fixed
// wall-clock cadence regardless of the configured frame rate.
func (m PetModel) currentCel() sprites.Frame {
	if m.theme == nil {
		return sprites.Frame{}
	}
	frames := m.theme.Frames(m.dev.Stats().Behavior)
	if len(frames) == 0 {
		return sprites.Frame{}
	}
	celTicks := int(celEvery / (time.Second / time.Duration(m.config.TickRate)))
	if celTicks < 1 {
		celTicks = 1
	}
	return frames[(m.frame/celTicks)%len(frames)]
}

// alertDetail joins alert names for notices and journal entries.
func alertDetail(alerts []pet.StatName) string {
	names := make([]string, len(alerts))
	for i, a := range alerts {
		names[i] = a.String()
	}
	return strings.Join(names, ", ")
}

// View renders the current power state and screen.
func (m PetModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.dev.Power() {
	case device.PowerDeepSleep:
		drawDarkScreen(m.screen)
		return RenderScreen(m.screen)
	case device.PowerAlertWait:
		drawAlertScreen(m.screen, m.name, m.alerts)
		return RenderScreen(m.screen)
	}

	switch m.mode {
	case ModeStats:
		return renderStatsPanel(m.name, m.dev.Stats(), m.config.ScreenW)
	case ModeLog:
		return renderLogPanel(m.logTable.View(), m.config.ScreenW, m.logEmpty)
	case ModeConfirmReset:
		return renderConfirmPanel(m.name, m.config.ScreenW)
	default:
		drawPetScreen(m.screen, m.name, m.dev.Stats(), m.currentCel(), m.notice)
		return RenderScreen(m.screen) + "\n" + m.helpView()
	}
}

func (m PetModel) helpView() string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program for a local session.
func Run(dev *device.Device, jour *journal.Journal, name, themeID string, cfg core.RuntimeConfig) error {
	model := NewPetModel(dev, jour, name, themeID, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
