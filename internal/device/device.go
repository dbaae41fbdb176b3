// Package device implements the handheld runtime: the awake simulation
// cadence, idle power-down, the deep-sleep wake paths and snapshot
// persistence. All runtime state lives on the Device context object and
// every method takes the current time explicitly.
package device

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pocketpup/internal/pet"
	"github.com/vovakirdan/pocketpup/internal/wake"
)

// Power is the device power state.
type Power int

const (
	// PowerAwake runs the full interface and the 10-second simulation tick.
	PowerAwake Power = iota
	// PowerDeepSleep is the dark-screen state. Only a button press or the
	// periodic alert-check timer leaves it.
	PowerDeepSleep
	// PowerAlertWait shows a caregiving prompt and waits a bounded window
	// for any input before going back down.
	PowerAlertWait
)

// String returns a human-readable name for the power state.
func (p Power) String() string {
	switch p {
	case PowerAwake:
		return "awake"
	case PowerDeepSleep:
		return "deep-sleep"
	case PowerAlertWait:
		return "alert-wait"
	default:
		return "unknown"
	}
}

// Config holds the controller timings and thresholds. Zero fields take the
// values from DefaultConfig.
type Config struct {
	IdleTimeout    time.Duration // awake with no input before powering down
	DecayEvery     time.Duration // awake simulation tick cadence
	SaveEvery      time.Duration // autosave cadence while awake
	WakeEvery      time.Duration // deep-sleep alert-check timer period
	AckWindow      time.Duration // alert acknowledgment window
	SettleAfter    time.Duration // how long transient behaviors are shown
	AlertThreshold int           // stats strictly below this trigger alerts
	MaxCatchUp     int           // cap in minutes on one reconciled decay window
}

// DefaultConfig returns the stock handheld timings.
func DefaultConfig() Config {
	return Config{
		IdleTimeout:    60 * time.Second,
		DecayEvery:     10 * time.Second,
		SaveEvery:      30 * time.Second,
		WakeEvery:      15 * time.Minute,
		AckWindow:      30 * time.Second,
		SettleAfter:    2 * time.Second,
		AlertThreshold: 25,
		MaxCatchUp:     60,
	}
}

func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.IdleTimeout <= 0 {
		c.IdleTimeout = def.IdleTimeout
	}
	if c.DecayEvery <= 0 {
		c.DecayEvery = def.DecayEvery
	}
	if c.SaveEvery <= 0 {
		c.SaveEvery = def.SaveEvery
	}
	if c.WakeEvery <= 0 {
		c.WakeEvery = def.WakeEvery
	}
	if c.AckWindow <= 0 {
		c.AckWindow = def.AckWindow
	}
	if c.SettleAfter <= 0 {
		c.SettleAfter = def.SettleAfter
	}
	if c.AlertThreshold <= 0 {
		c.AlertThreshold = def.AlertThreshold
	}
	if c.MaxCatchUp <= 0 {
		c.MaxCatchUp = def.MaxCatchUp
	}
	return c
}

// maxBurstTicks bounds how many owed ticks a single Step will replay when
// frames stall (a suspended terminal, a debugger pause). Past that the tick
// clock resyncs instead of replaying the whole gap.
const maxBurstTicks = 6

// BootReport describes how the device came up.
type BootReport struct {
	New         bool // no usable snapshot, started from defaults
	ForcedAwake bool // snapshot had the pup sleeping; a cold boot wakes it
}

// WakeReport describes a resume from deep sleep.
type WakeReport struct {
	Cause   wake.Cause
	Elapsed wake.Result
	Alerts  []pet.StatName // non-empty only on timer wakes that need attention
}

// StepReport tells the caller what a Step did, so it can schedule wake
// timers and refresh the display only when something happened.
type StepReport struct {
	Ticked      bool // at least one simulation tick was applied
	Saved       bool // an autosave ran
	PoweredDown bool // idle timeout hit; the device is now in deep sleep
}

// Device owns a single pup: its stats, the power state and the clocks that
// drive ticking, autosaving and the idle timeout. It is not safe for
// concurrent use; the event loop that owns it is single-threaded.
type Device struct {
	cfg   Config
	store Gateway
	log   *log.Logger

	stats pet.Stats
	power Power

	lastInput time.Time
	lastTick  time.Time
	lastSave  time.Time
	settleAt  time.Time
}

// New creates a device backed by the given snapshot store. A nil logger
// falls back to the package default.
func New(cfg Config, store Gateway, logger *log.Logger) *Device {
	if logger == nil {
		logger = log.Default()
	}
	return &Device{
		cfg:   cfg.withDefaults(),
		store: store,
		log:   logger,
		stats: pet.New(),
		power: PowerAwake,
	}
}

// Stats returns a copy of the current pup stats.
func (d *Device) Stats() pet.Stats {
	return d.stats
}

// Power returns the current power state.
func (d *Device) Power() Power {
	return d.power
}

// Config returns the effective controller configuration.
func (d *Device) Config() Config {
	return d.cfg
}

// Boot restores the pup from the snapshot store, or starts a fresh one when
// no record exists. A cold boot trusts no clock basis, so no downtime decay
// is applied and a pup saved asleep wakes up with the device.
func (d *Device) Boot(now time.Time) BootReport {
	d.power = PowerAwake
	d.resetClocks(now)

	snap, err := d.store.Load()
	if err != nil {
		if !errors.Is(err, ErrNoSnapshot) {
			d.log.Warn("snapshot unreadable, starting fresh", "err", err)
		}
		d.stats = pet.New()
		return BootReport{New: true}
	}

	d.stats = snap.Stats
	d.stats.ClampAll()

	var rep BootReport
	if d.stats.Behavior == pet.BehaviorSleeping {
		d.stats.Behavior = pet.BehaviorIdle
		rep.ForcedAwake = true
	}
	if d.stats.Behavior.Transient() {
		// An autosave can capture a mid-animation behavior; let it settle.
		d.settleAt = now.Add(d.cfg.SettleAfter)
	}
	d.log.Info("snapshot restored", "age", d.stats.Age, "behavior", d.stats.Behavior)
	return rep
}

// Step advances the awake loop to now: settles transient behaviors, applies
// owed simulation ticks, autosaves, and powers down once the pup has been
// idle past the timeout. Outside PowerAwake it does nothing.
func (d *Device) Step(now time.Time) StepReport {
	var rep StepReport
	if d.power != PowerAwake {
		return rep
	}

	if !d.settleAt.IsZero() && !now.Before(d.settleAt) {
		d.stats.Settle()
		if d.stats.Behavior.Transient() {
			d.settleAt = now.Add(d.cfg.SettleAfter)
		} else {
			d.settleAt = time.Time{}
		}
	}

	if gap := now.Sub(d.lastTick); gap >= d.cfg.DecayEvery {
		ticks := int(gap / d.cfg.DecayEvery)
		if ticks > maxBurstTicks {
			ticks = 1
			d.lastTick = now
		} else {
			d.lastTick = d.lastTick.Add(time.Duration(ticks) * d.cfg.DecayEvery)
		}
		for i := 0; i < ticks; i++ {
			if d.stats.Behavior == pet.BehaviorSleeping {
				d.stats.TickSleeping()
			} else {
				d.stats.TickAwake()
			}
		}
		rep.Ticked = true
	}

	if now.Sub(d.lastSave) >= d.cfg.SaveEvery {
		d.lastSave = now
		if err := d.persist(now); err != nil {
			d.log.Warn("autosave failed", "err", err)
		} else {
			rep.Saved = true
		}
	}

	if d.stats.Behavior == pet.BehaviorIdle && now.Sub(d.lastInput) >= d.cfg.IdleTimeout {
		d.powerDown(now)
		rep.PoweredDown = true
	}
	return rep
}

// Touch records a user interaction that does not change the pup, resetting
// the idle clock.
func (d *Device) Touch(now time.Time) {
	d.lastInput = now
}

// Feed gives the pup a meal. It returns pet.ErrAlreadyFull when the pup
// cannot eat more; the keypress still counts as interaction either way.
func (d *Device) Feed(now time.Time) error {
	d.lastInput = now
	if err := d.stats.Feed(); err != nil {
		return err
	}
	d.settleAt = now.Add(d.cfg.SettleAfter)
	return nil
}

// Play starts a play session. It returns pet.ErrTooTired when the pup lacks
// the energy; the keypress still counts as interaction either way.
func (d *Device) Play(now time.Time) error {
	d.lastInput = now
	if err := d.stats.Play(); err != nil {
		return err
	}
	d.settleAt = now.Add(d.cfg.SettleAfter)
	return nil
}

// Sleep puts the pup to bed.
func (d *Device) Sleep(now time.Time) {
	d.lastInput = now
	d.settleAt = time.Time{}
	d.stats.Sleep()
}

// WakeUp rouses a sleeping pup. It has no effect when the pup is not asleep.
func (d *Device) WakeUp(now time.Time) {
	d.lastInput = now
	d.stats.WakeUp()
}

// Reset restores factory defaults and clears the persisted snapshot.
func (d *Device) Reset(now time.Time) error {
	d.lastInput = now
	d.settleAt = time.Time{}
	d.stats.Reset()
	if err := d.store.Clear(); err != nil {
		return fmt.Errorf("device: cannot clear snapshot: %w", err)
	}
	return nil
}

// Save persists the current snapshot immediately, for shutdown paths.
func (d *Device) Save(now time.Time) error {
	d.lastSave = now
	return d.persist(now)
}

// ButtonWake resumes from deep sleep because the user pressed something.
// The downtime is reconciled and applied unconditionally and the device
// comes fully awake. Calls outside deep sleep are ignored, so a keypress
// racing a wake transition cannot decay twice.
func (d *Device) ButtonWake(now time.Time) WakeReport {
	if d.power != PowerDeepSleep {
		return WakeReport{}
	}
	rep := d.resume(now, wake.CauseButton)
	d.power = PowerAwake
	d.resetClocks(now)
	return rep
}

// TimerWake handles the periodic alert check firing during deep sleep. The
// downtime is reconciled and applied, then the pup's stats are checked: if
// any are critical the device enters the alert-wait window, otherwise it
// records the decay and stays down. The caller re-arms the wake timer when
// no alerts are reported. Calls outside deep sleep are ignored.
func (d *Device) TimerWake(now time.Time) WakeReport {
	if d.power != PowerDeepSleep {
		return WakeReport{}
	}
	rep := d.resume(now, wake.CauseTimer)
	rep.Alerts = pet.Critical(d.stats, d.cfg.AlertThreshold)
	if len(rep.Alerts) > 0 {
		d.power = PowerAlertWait
		d.log.Info("pup needs attention", "alerts", rep.Alerts, "minutes", rep.Elapsed.Minutes)
		return rep
	}
	if err := d.persist(now); err != nil {
		d.log.Error("snapshot save failed after alert check", "err", err)
	}
	return rep
}

// Acknowledge handles user input arriving inside the alert window: the
// device comes awake and the idle clock restarts. Decay was already applied
// when the alert fired, so none is applied here.
func (d *Device) Acknowledge(now time.Time) {
	if d.power != PowerAlertWait {
		return
	}
	d.power = PowerAwake
	d.resetClocks(now)
}

// AlertExpired handles the alert window closing with no input: the device
// persists the already-decayed stats and goes back to deep sleep without
// running decay a second time.
func (d *Device) AlertExpired(now time.Time) {
	if d.power != PowerAlertWait {
		return
	}
	d.powerDown(now)
}

// resume reloads the persisted snapshot and applies the reconciled downtime
// for the given wake cause. When the store has nothing readable the
// in-memory stats carry over and no decay is applied.
func (d *Device) resume(now time.Time, cause wake.Cause) WakeReport {
	var saved *wake.Stamp
	wasSleeping := d.stats.Behavior == pet.BehaviorSleeping

	snap, err := d.store.Load()
	if err != nil {
		if !errors.Is(err, ErrNoSnapshot) {
			d.log.Warn("snapshot unreadable on wake", "err", err)
		}
	} else {
		d.stats = snap.Stats
		d.stats.ClampAll()
		wasSleeping = snap.Stats.Behavior == pet.BehaviorSleeping
		saved = &snap.Stamp
	}

	res := wake.Reconcile(saved, wake.ReadingFromTime(now), cause, d.cfg.MaxCatchUp)
	if res.Source == wake.SourceRegression {
		d.log.Warn("clock moved backward across deep sleep", "saved", snap.Stamp.Minutes)
	}
	d.stats.ApplyDecay(res.Minutes, wasSleeping)
	d.log.Info("woke from deep sleep", "cause", cause, "minutes", res.Minutes, "source", res.Source)
	return WakeReport{Cause: cause, Elapsed: res}
}

func (d *Device) powerDown(now time.Time) {
	if err := d.persist(now); err != nil {
		d.log.Error("snapshot save failed, powering down anyway", "err", err)
	}
	d.power = PowerDeepSleep
	d.log.Info("entering deep sleep", "age", d.stats.Age, "behavior", d.stats.Behavior)
}

func (d *Device) persist(now time.Time) error {
	r := wake.ReadingFromTime(now)
	snap := Snapshot{
		Stats: d.stats,
		Stamp: wake.Stamp{Minutes: r.Minutes(), Month: r.Month},
	}
	if err := d.store.Save(snap); err != nil {
		return fmt.Errorf("device: cannot persist snapshot: %w", err)
	}
	return nil
}

func (d *Device) resetClocks(now time.Time) {
	d.lastInput = now
	d.lastTick = now
	d.lastSave = now
}
