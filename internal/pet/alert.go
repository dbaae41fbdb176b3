package pet

// StatName identifies one of the four vitality statistics in alert output.
type StatName int

// Alert priority order. Hunger outranks happiness outranks energy outranks
// health; alerts are always reported in this order.
const (
	StatHunger StatName = iota
	StatHappiness
	StatEnergy
	StatHealth
)

// String returns a human-readable name for the stat.
func (n StatName) String() string {
	switch n {
	case StatHunger:
		return "hunger"
	case StatHappiness:
		return "happiness"
	case StatEnergy:
		return "energy"
	case StatHealth:
		return "health"
	default:
		return "unknown"
	}
}

// Critical returns the stats strictly below the given threshold, in fixed
// priority order. An empty result means no alert is needed. The device calls
// this after every timer-driven wake to decide whether to rouse the user.
func Critical(s Stats, threshold int) []StatName {
	var out []StatName
	if s.Hunger < threshold {
		out = append(out, StatHunger)
	}
	if s.Happiness < threshold {
		out = append(out, StatHappiness)
	}
	if s.Energy < threshold {
		out = append(out, StatEnergy)
	}
	if s.Health < threshold {
		out = append(out, StatHealth)
	}
	return out
}
