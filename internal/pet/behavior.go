// Package pet implements the pup simulation: four bounded vitality stats,
// the behavior state machine, caregiving actions, and the catch-up decay
// applied after the device resumes from a power-down. It performs no I/O.
package pet

// Behavior is the pup's current behavioral state. The simulation owns all
// transitions; rendering dispatches on the same value independently.
type Behavior int

const (
	BehaviorIdle Behavior = iota
	BehaviorHappy
	BehaviorEating
	BehaviorSleeping
	BehaviorHungry
	BehaviorSick
	BehaviorPlaying
	BehaviorVomiting
)

// String returns a human-readable name for the behavior.
func (b Behavior) String() string {
	switch b {
	case BehaviorIdle:
		return "Idle"
	case BehaviorHappy:
		return "Happy"
	case BehaviorEating:
		return "Eating"
	case BehaviorSleeping:
		return "Sleeping"
	case BehaviorHungry:
		return "Hungry"
	case BehaviorSick:
		return "Sick"
	case BehaviorPlaying:
		return "Playing"
	case BehaviorVomiting:
		return "Vomiting"
	default:
		return "Unknown"
	}
}

// Valid reports whether b is one of the defined behavior variants.
// Snapshots store the behavior as a raw int, so loads must bounds-check it.
func (b Behavior) Valid() bool {
	return b >= BehaviorIdle && b <= BehaviorVomiting
}

// BehaviorFromInt converts a persisted int to a Behavior, coercing anything
// out of range to Idle.
func BehaviorFromInt(v int) Behavior {
	b := Behavior(v)
	if !b.Valid() {
		return BehaviorIdle
	}
	return b
}

// Transient reports whether b is a short animation state that settles back
// toward Idle once its display window ends.
func (b Behavior) Transient() bool {
	switch b {
	case BehaviorEating, BehaviorPlaying, BehaviorVomiting, BehaviorHappy:
		return true
	default:
		return false
	}
}
