package pet

import "testing"

func TestCriticalEmptyWhenHealthy(t *testing.T) {
	s := New()

	if got := Critical(s, 25); len(got) != 0 {
		t.Errorf("Healthy pup should raise no alerts, got %v", got)
	}
}

func TestCriticalOrder(t *testing.T) {
	// Everything critical: the order is fixed regardless of how low each is.
	s := Stats{Hunger: 24, Happiness: 1, Energy: 10, Health: 5}

	got := Critical(s, 25)
	want := []StatName{StatHunger, StatHappiness, StatEnergy, StatHealth}

	if len(got) != len(want) {
		t.Fatalf("Expected %d alerts, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Alert %d = %v, expected %v", i, got[i], want[i])
		}
	}
}

func TestCriticalSubset(t *testing.T) {
	s := New()
	s.Energy = 10
	s.Health = 20

	got := Critical(s, 25)
	if len(got) != 2 || got[0] != StatEnergy || got[1] != StatHealth {
		t.Errorf("Expected [energy health], got %v", got)
	}
}

func TestCriticalThresholdIsExclusive(t *testing.T) {
	s := New()
	s.Hunger = 25

	if got := Critical(s, 25); len(got) != 0 {
		t.Errorf("A stat exactly at the threshold is not critical, got %v", got)
	}

	s.Hunger = 24
	got := Critical(s, 25)
	if len(got) != 1 || got[0] != StatHunger {
		t.Errorf("A stat below the threshold is critical, got %v", got)
	}
}

func TestStatNameString(t *testing.T) {
	names := map[StatName]string{
		StatHunger:    "hunger",
		StatHappiness: "happiness",
		StatEnergy:    "energy",
		StatHealth:    "health",
	}
	for stat, want := range names {
		if stat.String() != want {
			t.Errorf("%d.String() = %q, expected %q", stat, stat.String(), want)
		}
	}
}
