package device

import (
	"testing"
	"time"
)

func TestCountdownExpires(t *testing.T) {
	c := NewCountdown(10 * time.Millisecond)
	if !c.Wait() {
		t.Error("Wait = false, expected true on expiry")
	}
}

func TestCountdownCancel(t *testing.T) {
	c := NewCountdown(time.Hour)
	done := make(chan bool, 1)
	go func() { done <- c.Wait() }()

	c.Cancel()
	select {
	case fired := <-done:
		if fired {
			t.Error("Wait = true, expected false after cancel")
		}
	case <-time.After(time.Second):
		t.Fatal("Wait did not return after cancel")
	}
}

func TestCountdownCancelBeforeWait(t *testing.T) {
	c := NewCountdown(time.Hour)
	c.Cancel()
	if c.Wait() {
		t.Error("Wait = true, expected false when cancelled up front")
	}
}

func TestCountdownCancelTwice(t *testing.T) {
	c := NewCountdown(time.Hour)
	c.Cancel()
	c.Cancel() // must not panic
}
