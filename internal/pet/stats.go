package pet

import (
	"errors"

	"github.com/vovakirdan/pocketpup/internal/core"
)

// Stat bounds and starting values.
const (
	StatMin = 0
	StatMax = 100

	DefaultHunger    = 80
	DefaultHappiness = 80
	DefaultEnergy    = 100
	DefaultHealth    = 100
)

// Awake-tick rule thresholds.
const (
	neglectThreshold   = 20 // hunger or happiness below this drains health
	thriveHunger       = 60 // all three thriving thresholds met -> health recovers
	thriveHappiness    = 60
	thriveEnergy       = 40
	hungryThreshold    = 30 // idle pup starts begging below this
	sickThreshold      = 30 // health below this makes the pup sick
	recoverHealth      = 60 // sick pup returns to idle above these
	recoverHappiness   = 50
	recoverEnergy      = 40
	sleepEnergyGain    = 5
	overjoyedHappiness = 90 // playing settles into a happy bounce at or above this
)

// Caregiving action deltas.
const (
	feedHunger    = 25
	feedHappiness = 5
	playHappiness = 20
	playEnergy    = 15
	playHunger    = 5
	playMinEnergy = 20 // playing needs at least this much energy
)

// Action rejections. These are user-visible refusals, not failures; the
// stats are left untouched.
var (
	ErrAlreadyFull = errors.New("pet: already full")
	ErrTooTired    = errors.New("pet: too tired to play")
)

// Stats is the pup's full simulation state. All four vitality values stay
// within [0, 100]; Age counts cumulative cared-for minutes and only an
// explicit Reset may rewind it.
type Stats struct {
	Hunger    int
	Happiness int
	Energy    int
	Health    int
	Age       uint64
	Behavior  Behavior
}

// New returns a freshly hatched pup with factory-default stats.
func New() Stats {
	return Stats{
		Hunger:    DefaultHunger,
		Happiness: DefaultHappiness,
		Energy:    DefaultEnergy,
		Health:    DefaultHealth,
		Behavior:  BehaviorIdle,
	}
}

// Reset returns the pup to factory defaults. Age restarts at zero.
func (s *Stats) Reset() {
	*s = New()
}

// ClampAll forces every vitality stat back into [0, 100]. Used after loading
// persisted values that may have been written by a corrupted record.
func (s *Stats) ClampAll() {
	s.Hunger = core.Clamp(s.Hunger, StatMin, StatMax)
	s.Happiness = core.Clamp(s.Happiness, StatMin, StatMax)
	s.Energy = core.Clamp(s.Energy, StatMin, StatMax)
	s.Health = core.Clamp(s.Health, StatMin, StatMax)
}

// TickAwake applies one awake-time decay step. Called on a fixed cadence
// (every 10 seconds of wall-clock awake time).
func (s *Stats) TickAwake() {
	s.Hunger = core.Clamp(s.Hunger-1, StatMin, StatMax)
	s.Happiness = core.Clamp(s.Happiness-1, StatMin, StatMax)
	s.Energy = core.Clamp(s.Energy-1, StatMin, StatMax)

	// Neglect drains health twice as fast as good care restores it.
	if s.Hunger < neglectThreshold || s.Happiness < neglectThreshold {
		s.Health = core.Clamp(s.Health-2, StatMin, StatMax)
	} else if s.Hunger > thriveHunger && s.Happiness > thriveHappiness && s.Energy > thriveEnergy {
		s.Health = core.Clamp(s.Health+1, StatMin, StatMax)
	}

	switch {
	case s.Behavior == BehaviorSick:
		if s.Health > recoverHealth && s.Happiness > recoverHappiness && s.Energy > recoverEnergy {
			s.Behavior = BehaviorIdle
		}
	case s.Behavior == BehaviorIdle || s.Behavior == BehaviorHungry:
		if s.Health < sickThreshold {
			s.Behavior = BehaviorSick
		} else if s.Behavior == BehaviorIdle && s.Hunger < hungryThreshold {
			s.Behavior = BehaviorHungry
		}
	}
}

// TickSleeping applies one sleeping-time recovery step on the same cadence
// as TickAwake. Only energy moves while the pup sleeps.
func (s *Stats) TickSleeping() {
	s.Energy = core.Clamp(s.Energy+sleepEnergyGain, StatMin, StatMax)
}

// ApplyDecay catches the pup up after a power-down of elapsedMinutes.
// One decay tick covers two minutes of downtime. A sleeping pup regains
// energy instead of decaying and keeps sleeping; an awake pup decays and
// lands in Idle. Either way severe neglect costs health, and age advances
// by the full elapsed time. elapsedMinutes == 0 is a strict no-op so a
// wake within the saved minute leaves the restored state untouched.
func (s *Stats) ApplyDecay(elapsedMinutes int, wasSleeping bool) {
	if elapsedMinutes <= 0 {
		return
	}

	ticks := elapsedMinutes / 2
	if wasSleeping {
		s.Energy = core.Clamp(s.Energy+ticks, StatMin, StatMax)
		s.Behavior = BehaviorSleeping
	} else {
		s.Hunger = core.Clamp(s.Hunger-ticks, StatMin, StatMax)
		s.Happiness = core.Clamp(s.Happiness-ticks, StatMin, StatMax)
		s.Energy = core.Clamp(s.Energy-ticks/2, StatMin, StatMax)
		s.Behavior = BehaviorIdle
	}

	if s.Hunger < 10 || s.Happiness < 10 {
		s.Health = core.Clamp(s.Health-ticks, StatMin, StatMax)
	}

	s.Age += uint64(elapsedMinutes)
}

// Feed gives the pup a meal. Rejected with ErrAlreadyFull when hunger is
// already at the ceiling. An accepted feed plays the eating animation, or
// the vomiting one when the meal tops hunger out completely.
func (s *Stats) Feed() error {
	if s.Hunger >= StatMax {
		return ErrAlreadyFull
	}

	s.Hunger = core.Clamp(s.Hunger+feedHunger, StatMin, StatMax)
	s.Happiness = core.Clamp(s.Happiness+feedHappiness, StatMin, StatMax)

	if s.Hunger == StatMax {
		s.Behavior = BehaviorVomiting
	} else {
		s.Behavior = BehaviorEating
	}
	return nil
}

// Play has a game with the pup. Rejected with ErrTooTired when energy is
// too low; play costs energy and a little hunger but cheers the pup up.
func (s *Stats) Play() error {
	if s.Energy < playMinEnergy {
		return ErrTooTired
	}

	s.Happiness = core.Clamp(s.Happiness+playHappiness, StatMin, StatMax)
	s.Energy = core.Clamp(s.Energy-playEnergy, StatMin, StatMax)
	s.Hunger = core.Clamp(s.Hunger-playHunger, StatMin, StatMax)
	s.Behavior = BehaviorPlaying
	return nil
}

// Sleep puts the pup to bed.
func (s *Stats) Sleep() {
	s.Behavior = BehaviorSleeping
}

// WakeUp rouses the pup, but only if it is actually sleeping.
func (s *Stats) WakeUp() {
	if s.Behavior == BehaviorSleeping {
		s.Behavior = BehaviorIdle
	}
}

// Settle ends the current animation window. Playing settles into a happy
// bounce when the pup is overjoyed; every other transient state returns to
// Idle. Non-transient states are untouched. The frontend calls this when an
// action animation finishes.
func (s *Stats) Settle() {
	if !s.Behavior.Transient() {
		return
	}
	if s.Behavior == BehaviorPlaying && s.Happiness >= overjoyedHappiness {
		s.Behavior = BehaviorHappy
		return
	}
	s.Behavior = BehaviorIdle
}
