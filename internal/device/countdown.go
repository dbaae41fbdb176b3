package device

import (
	"sync"
	"time"
)

// Countdown is a single-use bounded wait: it runs for a fixed duration and
// can be cancelled from another goroutine before it expires. It replaces
// unstructured poll-and-sleep loops for the alert acknowledgment window and
// the deep-sleep wake timer.
type Countdown struct {
	timer  *time.Timer
	cancel chan struct{}
	once   sync.Once
}

// NewCountdown starts a countdown that expires after d.
func NewCountdown(d time.Duration) *Countdown {
	return &Countdown{
		timer:  time.NewTimer(d),
		cancel: make(chan struct{}),
	}
}

// Wait blocks until the countdown expires or is cancelled. It returns true
// if the full duration elapsed and false if Cancel won the race. Intended
// for a single waiter.
func (c *Countdown) Wait() bool {
	select {
	case <-c.timer.C:
		return true
	case <-c.cancel:
		c.timer.Stop()
		return false
	}
}

// Cancel aborts the countdown. It is safe to call from any goroutine and
// more than once; a Wait in progress returns false.
func (c *Countdown) Cancel() {
	c.once.Do(func() { close(c.cancel) })
}
