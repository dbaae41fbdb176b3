// Package wake classifies why the device resumed from a power-down and
// reconstructs how long it was gone from the coarse persisted timestamp.
// The clock source is untrusted: it may be unset, drift, or move backward,
// so every path degrades to a small bounded estimate instead of failing.
package wake

// Cause is the reason the device came back to life. It is derived fresh on
// every resume from the platform's wake register and never persisted.
type Cause int

const (
	// CauseFreshBoot covers power-on, manual reset, and crash recovery.
	// Nothing about the prior clock basis is trusted.
	CauseFreshBoot Cause = iota

	// CauseButton means the user pressed the wake button during deep
	// power-down.
	CauseButton

	// CauseTimer means the periodic care-check timer fired during deep
	// power-down.
	CauseTimer
)

// String returns a human-readable name for the cause.
func (c Cause) String() string {
	switch c {
	case CauseFreshBoot:
		return "fresh-boot"
	case CauseButton:
		return "button"
	case CauseTimer:
		return "timer"
	default:
		return "unknown"
	}
}
