package wake

import "time"

// Reconciliation limits and fallback estimates. The heuristics are coarse on
// purpose: a timer wake means at least one full timer period passed, while a
// button wake could come at any moment. The cross-month values are a known
// approximation kept for behavioral compatibility; the month-relative
// timestamp cannot be diffed across a month boundary (see Reconcile).
const (
	DefaultMaxMinutes = 60 // cap on any single catch-up window

	minPlausibleYear = 2021 // at or below 2020 the RTC was never set

	timerHeuristicMinutes   = 15 // one deep-sleep timer period
	buttonHeuristicMinutes  = 1
	buttonCrossMonthMinutes = 5
	regressionMinutes       = 1
)

// Reading is a point-in-time clock sample from the platform RTC.
type Reading struct {
	Year   int
	Month  int // 1-12
	Day    int // day of month, 1-31
	Hour   int
	Minute int
}

// ReadingFromTime converts a wall-clock time into a Reading.
func ReadingFromTime(t time.Time) Reading {
	return Reading{
		Year:   t.Year(),
		Month:  int(t.Month()),
		Day:    t.Day(),
		Hour:   t.Hour(),
		Minute: t.Minute(),
	}
}

// Minutes encodes the reading as minutes relative to the start of the month:
// day*1440 + hour*60 + minute. This is the same coarse encoding the snapshot
// stores, so saved and current values compare directly within one month.
func (r Reading) Minutes() uint32 {
	return uint32(r.Day)*1440 + uint32(r.Hour)*60 + uint32(r.Minute)
}

// Stamp is the persisted save moment: the month-relative minute encoding
// plus the month it was taken in. A zero Minutes value means no save was
// ever recorded (real stamps start at day 1, minute 1440).
type Stamp struct {
	Minutes uint32
	Month   int
}

// Source tells which reconciliation branch produced the estimate, so the
// caller can log suspicious clocks and tests can pin each path.
type Source int

const (
	SourceNone          Source = iota // no snapshot, nothing to reconcile
	SourceFreshBoot                   // cold boot, clock basis untrusted
	SourceExact                       // clean same-month difference
	SourceHeuristic                   // RTC unset or stamp missing
	SourceRegression                  // clock moved backward within the month
	SourceMonthBoundary               // month rolled over, diff impossible
)

// String returns a human-readable name for the source.
func (s Source) String() string {
	switch s {
	case SourceNone:
		return "none"
	case SourceFreshBoot:
		return "fresh-boot"
	case SourceExact:
		return "exact"
	case SourceHeuristic:
		return "heuristic"
	case SourceRegression:
		return "regression"
	case SourceMonthBoundary:
		return "month-boundary"
	default:
		return "unknown"
	}
}

// Result is the reconciled downtime estimate.
type Result struct {
	Minutes int
	Source  Source
}

// Reconcile estimates how many minutes passed between the saved stamp and
// now, given why the device woke. The result is always within
// [0, maxMinutes]; maxMinutes <= 0 selects DefaultMaxMinutes.
//
// A nil stamp (no snapshot) and a fresh boot both yield zero: with no trusted
// basis the pup simply resumes where the record left it. Button and timer
// wakes diff the month-relative encodings when the months match and the
// clock moved forward; anything else falls back to a fixed small estimate.
func Reconcile(saved *Stamp, now Reading, cause Cause, maxMinutes int) Result {
	if maxMinutes <= 0 {
		maxMinutes = DefaultMaxMinutes
	}

	if saved == nil {
		return Result{Minutes: 0, Source: SourceNone}
	}
	if cause == CauseFreshBoot {
		return Result{Minutes: 0, Source: SourceFreshBoot}
	}

	if now.Year < minPlausibleYear || saved.Minutes == 0 {
		return Result{Minutes: clampMinutes(heuristic(cause, buttonHeuristicMinutes), maxMinutes), Source: SourceHeuristic}
	}

	current := now.Minutes()
	switch {
	case saved.Month == now.Month && current >= saved.Minutes:
		return Result{Minutes: clampMinutes(int(current-saved.Minutes), maxMinutes), Source: SourceExact}
	case saved.Month == now.Month:
		// Clock moved backward; distrust it and apply negligible decay.
		return Result{Minutes: clampMinutes(regressionMinutes, maxMinutes), Source: SourceRegression}
	default:
		return Result{Minutes: clampMinutes(heuristic(cause, buttonCrossMonthMinutes), maxMinutes), Source: SourceMonthBoundary}
	}
}

// heuristic picks the fallback estimate for a wake cause. Timer wakes always
// estimate one timer period; button wakes use the given small value.
func heuristic(cause Cause, buttonMinutes int) int {
	if cause == CauseTimer {
		return timerHeuristicMinutes
	}
	return buttonMinutes
}

func clampMinutes(v, max int) int {
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}
