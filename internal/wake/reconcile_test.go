package wake

import (
	"testing"
	"time"
)

func TestReadingMinutes(t *testing.T) {
	r := Reading{Year: 2025, Month: 6, Day: 2, Hour: 10, Minute: 30}
	want := uint32(2*1440 + 10*60 + 30)
	if got := r.Minutes(); got != want {
		t.Errorf("Minutes() = %d, expected %d", got, want)
	}
}

func TestReadingFromTime(t *testing.T) {
	ts := time.Date(2025, time.June, 2, 10, 30, 45, 0, time.UTC)
	r := ReadingFromTime(ts)
	want := Reading{Year: 2025, Month: 6, Day: 2, Hour: 10, Minute: 30}
	if r != want {
		t.Errorf("ReadingFromTime = %+v, expected %+v", r, want)
	}
}

func TestReconcileNoSnapshot(t *testing.T) {
	now := Reading{Year: 2025, Month: 6, Day: 2, Hour: 10, Minute: 30}
	got := Reconcile(nil, now, CauseButton, 60)
	if got.Minutes != 0 || got.Source != SourceNone {
		t.Errorf("Reconcile(nil) = %+v, expected 0 minutes from none", got)
	}
}

func TestReconcileFreshBoot(t *testing.T) {
	saved := &Stamp{Minutes: 3480, Month: 6}
	now := Reading{Year: 2025, Month: 6, Day: 2, Hour: 10, Minute: 30}
	got := Reconcile(saved, now, CauseFreshBoot, 60)
	if got.Minutes != 0 || got.Source != SourceFreshBoot {
		t.Errorf("fresh boot = %+v, expected 0 minutes", got)
	}
}

func TestReconcileSameMonthDiff(t *testing.T) {
	// Saved at day 2 10:00, woken at day 2 10:30 of the same month.
	saved := &Stamp{Minutes: 2*1440 + 10*60, Month: 6}
	now := Reading{Year: 2025, Month: 6, Day: 2, Hour: 10, Minute: 30}
	got := Reconcile(saved, now, CauseTimer, 60)
	if got.Minutes != 30 {
		t.Errorf("same-month diff = %d minutes, expected 30", got.Minutes)
	}
	if got.Source != SourceExact {
		t.Errorf("source = %v, expected exact", got.Source)
	}
}

func TestReconcileSameMonthZeroElapsed(t *testing.T) {
	saved := &Stamp{Minutes: 2*1440 + 10*60 + 30, Month: 6}
	now := Reading{Year: 2025, Month: 6, Day: 2, Hour: 10, Minute: 30}
	got := Reconcile(saved, now, CauseButton, 60)
	if got.Minutes != 0 || got.Source != SourceExact {
		t.Errorf("zero elapsed = %+v, expected exact 0", got)
	}
}

func TestReconcileClockRegression(t *testing.T) {
	saved := &Stamp{Minutes: 2*1440 + 10*60 + 30, Month: 6}
	now := Reading{Year: 2025, Month: 6, Day: 2, Hour: 10, Minute: 0}
	got := Reconcile(saved, now, CauseButton, 60)
	if got.Minutes != 1 {
		t.Errorf("regression = %d minutes, expected 1", got.Minutes)
	}
	if got.Source != SourceRegression {
		t.Errorf("source = %v, expected regression", got.Source)
	}
}

func TestReconcileMonthBoundary(t *testing.T) {
	// Saved late in June, woken early in July. The month-relative encodings
	// cannot be diffed, so the estimate falls back to the cause heuristic.
	saved := &Stamp{Minutes: 30*1440 + 23*60, Month: 6}
	now := Reading{Year: 2025, Month: 7, Day: 1, Hour: 0, Minute: 5}

	timer := Reconcile(saved, now, CauseTimer, 60)
	if timer.Minutes != 15 || timer.Source != SourceMonthBoundary {
		t.Errorf("timer month boundary = %+v, expected 15 minutes", timer)
	}

	button := Reconcile(saved, now, CauseButton, 60)
	if button.Minutes != 5 || button.Source != SourceMonthBoundary {
		t.Errorf("button month boundary = %+v, expected 5 minutes", button)
	}
}

func TestReconcileImplausibleYear(t *testing.T) {
	saved := &Stamp{Minutes: 2*1440 + 10*60, Month: 6}
	now := Reading{Year: 2019, Month: 6, Day: 2, Hour: 10, Minute: 30}

	timer := Reconcile(saved, now, CauseTimer, 60)
	if timer.Minutes != 15 || timer.Source != SourceHeuristic {
		t.Errorf("timer with unset RTC = %+v, expected 15 minutes", timer)
	}

	button := Reconcile(saved, now, CauseButton, 60)
	if button.Minutes != 1 || button.Source != SourceHeuristic {
		t.Errorf("button with unset RTC = %+v, expected 1 minute", button)
	}
}

func TestReconcileMissingStampMinutes(t *testing.T) {
	// A zero Minutes value means no real stamp was recorded.
	saved := &Stamp{Minutes: 0, Month: 6}
	now := Reading{Year: 2025, Month: 6, Day: 2, Hour: 10, Minute: 30}
	got := Reconcile(saved, now, CauseTimer, 60)
	if got.Minutes != 15 || got.Source != SourceHeuristic {
		t.Errorf("missing stamp = %+v, expected heuristic 15", got)
	}
}

func TestReconcileCapsAtMax(t *testing.T) {
	// Five hours of downtime still reconciles to at most the cap.
	saved := &Stamp{Minutes: 1440, Month: 6}
	now := Reading{Year: 2025, Month: 6, Day: 1, Hour: 5, Minute: 0}
	got := Reconcile(saved, now, CauseButton, 60)
	if got.Minutes != 60 {
		t.Errorf("capped diff = %d minutes, expected 60", got.Minutes)
	}
	if got.Source != SourceExact {
		t.Errorf("source = %v, expected exact", got.Source)
	}
}

func TestReconcileDefaultMax(t *testing.T) {
	saved := &Stamp{Minutes: 1440, Month: 6}
	now := Reading{Year: 2025, Month: 6, Day: 1, Hour: 5, Minute: 0}
	got := Reconcile(saved, now, CauseButton, 0)
	if got.Minutes != DefaultMaxMinutes {
		t.Errorf("default cap = %d minutes, expected %d", got.Minutes, DefaultMaxMinutes)
	}
}

func TestCauseString(t *testing.T) {
	tests := []struct {
		cause Cause
		want  string
	}{
		{CauseFreshBoot, "fresh-boot"},
		{CauseButton, "button"},
		{CauseTimer, "timer"},
	}
	for _, tt := range tests {
		if got := tt.cause.String(); got != tt.want {
			t.Errorf("Cause(%d).String() = %q, expected %q", tt.cause, got, tt.want)
		}
	}
}

func TestSourceString(t *testing.T) {
	tests := []struct {
		source Source
		want   string
	}{
		{SourceNone, "none"},
		{SourceFreshBoot, "fresh-boot"},
		{SourceExact, "exact"},
		{SourceHeuristic, "heuristic"},
		{SourceRegression, "regression"},
		{SourceMonthBoundary, "month-boundary"},
	}
	for _, tt := range tests {
		if got := tt.source.String(); got != tt.want {
			t.Errorf("Source(%d).String() = %q, expected %q", tt.source, got, tt.want)
		}
	}
}
