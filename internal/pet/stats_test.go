package pet

import (
	"errors"
	"testing"
)

func TestNewDefaults(t *testing.T) {
	s := New()

	if s.Hunger != 80 || s.Happiness != 80 {
		t.Errorf("Expected hunger/happiness 80/80, got %d/%d", s.Hunger, s.Happiness)
	}
	if s.Energy != 100 || s.Health != 100 {
		t.Errorf("Expected energy/health 100/100, got %d/%d", s.Energy, s.Health)
	}
	if s.Age != 0 {
		t.Errorf("Expected age 0, got %d", s.Age)
	}
	if s.Behavior != BehaviorIdle {
		t.Errorf("Expected behavior Idle, got %v", s.Behavior)
	}
}

func TestTickAwakeDecay(t *testing.T) {
	// Well-cared pup: one tick drops hunger/happiness/energy by 1, health
	// stays pinned at the 100 ceiling because the thriving thresholds hold.
	s := New()

	s.TickAwake()

	if s.Hunger != 79 {
		t.Errorf("Expected hunger 79, got %d", s.Hunger)
	}
	if s.Happiness != 79 {
		t.Errorf("Expected happiness 79, got %d", s.Happiness)
	}
	if s.Energy != 99 {
		t.Errorf("Expected energy 99, got %d", s.Energy)
	}
	if s.Health != 100 {
		t.Errorf("Expected health to stay 100, got %d", s.Health)
	}
}

func TestTickAwakeNeglectDrainsHealth(t *testing.T) {
	s := New()
	s.Hunger = 15 // below the neglect threshold after decay too
	s.Health = 50

	s.TickAwake()

	if s.Health != 48 {
		t.Errorf("Neglected pup should lose 2 health, got %d", s.Health)
	}
}

func TestTickAwakeHealthRecovery(t *testing.T) {
	s := New()
	s.Hunger = 80
	s.Happiness = 80
	s.Energy = 80
	s.Health = 50

	s.TickAwake()

	if s.Health != 51 {
		t.Errorf("Thriving pup should regain 1 health, got %d", s.Health)
	}
}

func TestTickAwakeNoRecoveryInMiddleBand(t *testing.T) {
	// Between neglect and thriving: health holds still.
	s := New()
	s.Hunger = 40
	s.Happiness = 40
	s.Energy = 50
	s.Health = 70

	s.TickAwake()

	if s.Health != 70 {
		t.Errorf("Health should be unchanged in the middle band, got %d", s.Health)
	}
}

func TestTickAwakeClampsAtZero(t *testing.T) {
	s := New()
	s.Hunger = 0
	s.Happiness = 0
	s.Energy = 0
	s.Health = 1

	s.TickAwake()

	if s.Hunger != 0 || s.Happiness != 0 || s.Energy != 0 {
		t.Errorf("Stats must clamp at 0, got %d/%d/%d", s.Hunger, s.Happiness, s.Energy)
	}
	if s.Health != 0 {
		t.Errorf("Health should clamp at 0, got %d", s.Health)
	}

	// Another tick at the floor must not underflow anything.
	s.TickAwake()
	if s.Hunger != 0 || s.Happiness != 0 || s.Energy != 0 || s.Health != 0 {
		t.Error("Stats must stay at 0 once drained")
	}
}

func TestTickAwakeEntersHungry(t *testing.T) {
	s := New()
	s.Hunger = 25
	s.Behavior = BehaviorIdle

	s.TickAwake()

	if s.Behavior != BehaviorHungry {
		t.Errorf("Idle pup with low hunger should beg, got %v", s.Behavior)
	}
}

func TestTickAwakeHungryOnlyFromIdle(t *testing.T) {
	s := New()
	s.Hunger = 25
	s.Behavior = BehaviorSleeping

	s.TickAwake()

	if s.Behavior != BehaviorSleeping {
		t.Errorf("Sleeping pup should not switch to Hungry, got %v", s.Behavior)
	}
}

func TestTickAwakeEntersSick(t *testing.T) {
	s := New()
	s.Health = 20
	s.Behavior = BehaviorHungry

	s.TickAwake()

	if s.Behavior != BehaviorSick {
		t.Errorf("Low-health pup should fall sick, got %v", s.Behavior)
	}
}

func TestTickAwakeSickRecovery(t *testing.T) {
	s := New()
	s.Behavior = BehaviorSick
	s.Health = 70
	s.Happiness = 60
	s.Energy = 50

	s.TickAwake()

	if s.Behavior != BehaviorIdle {
		t.Errorf("Recovered pup should return to Idle, got %v", s.Behavior)
	}

	// Below the recovery bar the pup stays sick.
	s.Behavior = BehaviorSick
	s.Health = 55
	s.TickAwake()
	if s.Behavior != BehaviorSick {
		t.Errorf("Pup below recovery thresholds should stay Sick, got %v", s.Behavior)
	}
}

func TestTickSleeping(t *testing.T) {
	s := New()
	s.Behavior = BehaviorSleeping
	s.Energy = 90
	s.Hunger = 40
	s.Happiness = 40
	s.Health = 70

	s.TickSleeping()

	if s.Energy != 95 {
		t.Errorf("Expected energy 95, got %d", s.Energy)
	}
	if s.Hunger != 40 || s.Happiness != 40 || s.Health != 70 {
		t.Error("Sleeping must not touch hunger, happiness, or health")
	}

	// Energy caps at 100.
	s.TickSleeping()
	s.TickSleeping()
	if s.Energy != 100 {
		t.Errorf("Energy should cap at 100, got %d", s.Energy)
	}
}

func TestFeed(t *testing.T) {
	s := New()
	s.Hunger = 50
	s.Happiness = 50

	if err := s.Feed(); err != nil {
		t.Fatalf("Feed should be accepted, got %v", err)
	}
	if s.Hunger != 75 {
		t.Errorf("Expected hunger 75, got %d", s.Hunger)
	}
	if s.Happiness != 55 {
		t.Errorf("Expected happiness 55, got %d", s.Happiness)
	}
	if s.Behavior != BehaviorEating {
		t.Errorf("Accepted feed should show Eating, got %v", s.Behavior)
	}
}

func TestFeedRejectedWhenFull(t *testing.T) {
	s := New()
	s.Hunger = 100
	s.Happiness = 60
	before := s

	err := s.Feed()
	if !errors.Is(err, ErrAlreadyFull) {
		t.Fatalf("Expected ErrAlreadyFull, got %v", err)
	}
	if s != before {
		t.Error("Rejected feed must not mutate any stat")
	}
}

func TestFeedOverfeedVomits(t *testing.T) {
	s := New()
	s.Hunger = 90

	if err := s.Feed(); err != nil {
		t.Fatalf("Feed should be accepted, got %v", err)
	}
	if s.Hunger != 100 {
		t.Errorf("Expected hunger capped at 100, got %d", s.Hunger)
	}
	if s.Behavior != BehaviorVomiting {
		t.Errorf("Overfed pup should vomit, got %v", s.Behavior)
	}
}

func TestPlay(t *testing.T) {
	s := New()
	s.Happiness = 50
	s.Energy = 60
	s.Hunger = 50

	if err := s.Play(); err != nil {
		t.Fatalf("Play should be accepted, got %v", err)
	}
	if s.Happiness != 70 {
		t.Errorf("Expected happiness 70, got %d", s.Happiness)
	}
	if s.Energy != 45 {
		t.Errorf("Expected energy 45, got %d", s.Energy)
	}
	if s.Hunger != 45 {
		t.Errorf("Expected hunger 45, got %d", s.Hunger)
	}
	if s.Behavior != BehaviorPlaying {
		t.Errorf("Accepted play should show Playing, got %v", s.Behavior)
	}
}

func TestPlayRejectedWhenTired(t *testing.T) {
	s := New()
	s.Energy = 15
	before := s

	err := s.Play()
	if !errors.Is(err, ErrTooTired) {
		t.Fatalf("Expected ErrTooTired, got %v", err)
	}
	if s != before {
		t.Error("Rejected play must not mutate any stat")
	}
}

func TestSleepAndWake(t *testing.T) {
	s := New()

	s.Sleep()
	if s.Behavior != BehaviorSleeping {
		t.Errorf("Expected Sleeping, got %v", s.Behavior)
	}

	s.WakeUp()
	if s.Behavior != BehaviorIdle {
		t.Errorf("WakeUp from sleep should land in Idle, got %v", s.Behavior)
	}

	// WakeUp on a pup that is not sleeping does nothing.
	s.Behavior = BehaviorHungry
	s.WakeUp()
	if s.Behavior != BehaviorHungry {
		t.Errorf("WakeUp must only act on a sleeping pup, got %v", s.Behavior)
	}
}

func TestSettle(t *testing.T) {
	s := New()

	s.Behavior = BehaviorEating
	s.Settle()
	if s.Behavior != BehaviorIdle {
		t.Errorf("Eating should settle to Idle, got %v", s.Behavior)
	}

	// An overjoyed pup bounces before calming down.
	s.Behavior = BehaviorPlaying
	s.Happiness = 95
	s.Settle()
	if s.Behavior != BehaviorHappy {
		t.Errorf("Overjoyed play should settle to Happy, got %v", s.Behavior)
	}
	s.Settle()
	if s.Behavior != BehaviorIdle {
		t.Errorf("Happy should settle to Idle, got %v", s.Behavior)
	}

	// Settle never touches persistent states.
	s.Behavior = BehaviorSleeping
	s.Settle()
	if s.Behavior != BehaviorSleeping {
		t.Errorf("Settle must not wake a sleeping pup, got %v", s.Behavior)
	}
}

func TestApplyDecayAwake(t *testing.T) {
	// 30 minutes of downtime: 15 decay ticks.
	s := New()
	s.Hunger = 80
	s.Happiness = 80
	s.Energy = 100

	s.ApplyDecay(30, false)

	if s.Hunger != 65 {
		t.Errorf("Expected hunger 65, got %d", s.Hunger)
	}
	if s.Happiness != 65 {
		t.Errorf("Expected happiness 65, got %d", s.Happiness)
	}
	if s.Energy != 93 {
		t.Errorf("Expected energy 93 (100 - 15/2), got %d", s.Energy)
	}
	if s.Age != 30 {
		t.Errorf("Expected age 30, got %d", s.Age)
	}
	if s.Behavior != BehaviorIdle {
		t.Errorf("Awake decay should land in Idle, got %v", s.Behavior)
	}
}

func TestApplyDecaySleeping(t *testing.T) {
	s := New()
	s.Energy = 40
	s.Hunger = 50
	s.Happiness = 50

	s.ApplyDecay(40, true)

	if s.Energy != 60 {
		t.Errorf("Sleeping pup should regain 20 energy, got %d", s.Energy)
	}
	if s.Hunger != 50 || s.Happiness != 50 {
		t.Error("Sleeping decay must not drain hunger or happiness")
	}
	if s.Behavior != BehaviorSleeping {
		t.Errorf("Sleeping decay should keep the pup asleep, got %v", s.Behavior)
	}
	if s.Age != 40 {
		t.Errorf("Expected age 40, got %d", s.Age)
	}
}

func TestApplyDecayHealthPenalty(t *testing.T) {
	s := New()
	s.Hunger = 12
	s.Happiness = 60
	s.Health = 80

	// 20 minutes -> 10 ticks; hunger lands at 2, below the severe mark.
	s.ApplyDecay(20, false)

	if s.Hunger != 2 {
		t.Errorf("Expected hunger 2, got %d", s.Hunger)
	}
	if s.Health != 70 {
		t.Errorf("Starved pup should lose 10 health, got %d", s.Health)
	}
}

func TestApplyDecaySleepingHealthPenalty(t *testing.T) {
	// The severe-neglect check applies on the sleeping path too: a pup put
	// to bed starving keeps losing health while it sleeps.
	s := New()
	s.Hunger = 5
	s.Health = 50

	s.ApplyDecay(10, true)

	if s.Health != 45 {
		t.Errorf("Starving sleeper should lose 5 health, got %d", s.Health)
	}
}

func TestApplyDecayZeroIsNoOp(t *testing.T) {
	s := New()
	s.Hunger = 55
	s.Behavior = BehaviorHungry
	before := s

	s.ApplyDecay(0, false)

	if s != before {
		t.Errorf("Zero-minute decay must be a no-op, got %+v", s)
	}
}

func TestApplyDecayClampsAtZero(t *testing.T) {
	s := New()
	s.Hunger = 5
	s.Happiness = 5
	s.Energy = 3
	s.Health = 4

	s.ApplyDecay(60, false)

	if s.Hunger != 0 || s.Happiness != 0 || s.Energy != 0 || s.Health != 0 {
		t.Errorf("Decay must clamp at 0, got %d/%d/%d/%d",
			s.Hunger, s.Happiness, s.Energy, s.Health)
	}
	if s.Age != 60 {
		t.Errorf("Age still advances fully, got %d", s.Age)
	}
}

func TestAgeMonotonic(t *testing.T) {
	s := New()

	s.ApplyDecay(10, false)
	s.ApplyDecay(5, true)
	if s.Age != 15 {
		t.Errorf("Expected age 15, got %d", s.Age)
	}

	// Only Reset rewinds age.
	s.Reset()
	if s.Age != 0 {
		t.Errorf("Reset should zero age, got %d", s.Age)
	}
}

func TestResetRestoresDefaults(t *testing.T) {
	s := New()
	s.Hunger = 3
	s.Health = 12
	s.Age = 9999
	s.Behavior = BehaviorSick

	s.Reset()

	if s != New() {
		t.Errorf("Reset should restore factory defaults, got %+v", s)
	}
}

func TestClampAll(t *testing.T) {
	s := Stats{Hunger: -20, Happiness: 150, Energy: 101, Health: -1}

	s.ClampAll()

	if s.Hunger != 0 || s.Happiness != 100 || s.Energy != 100 || s.Health != 0 {
		t.Errorf("ClampAll should force stats into [0, 100], got %+v", s)
	}
}

func TestBehaviorFromInt(t *testing.T) {
	if BehaviorFromInt(int(BehaviorSick)) != BehaviorSick {
		t.Error("Valid behavior ints should round-trip")
	}
	if BehaviorFromInt(-1) != BehaviorIdle {
		t.Error("Negative behavior int should coerce to Idle")
	}
	if BehaviorFromInt(99) != BehaviorIdle {
		t.Error("Out-of-range behavior int should coerce to Idle")
	}
}

func TestFormatAge(t *testing.T) {
	cases := []struct {
		minutes uint64
		want    string
	}{
		{0, "0m"},
		{45, "45m"},
		{60, "1h 00m"},
		{185, "3h 05m"},
		{1440, "1d 00h 00m"},
		{2*1440 + 3*60 + 45, "2d 03h 45m"},
	}
	for _, c := range cases {
		if got := FormatAge(c.minutes); got != c.want {
			t.Errorf("FormatAge(%d) = %q, expected %q", c.minutes, got, c.want)
		}
	}
}
