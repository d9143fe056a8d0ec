// Package clock provides the recurring tick source the countdown consumes.
// Production code uses Real; tests inject Fake for deterministic ticks.
package clock

import (
	"sync"
	"time"
)

// Clock abstracts time for the countdown engine.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
	// Every calls f once per interval d until the returned Ticker is stopped.
	Every(d time.Duration, f func()) Ticker
}

// Ticker is a cancelable handle for a recurring callback. Stop is idempotent.
type Ticker interface {
	Stop()
}

// Real implements Clock using the standard time package.
type Real struct{}

// NewReal creates a Real clock.
func NewReal() *Real {
	return &Real{}
}

// Now implements Clock.Now using time.Now.
func (Real) Now() time.Time {
	return time.Now()
}

// Every starts a goroutine driven by a time.Ticker. Callbacks run on that
// goroutine, so f must do its own synchronisation. Panics if d <= 0.
func (Real) Every(d time.Duration, f func()) Ticker {
	t := &realTicker{
		ticker: time.NewTicker(d),
		done:   make(chan struct{}),
	}
	go t.run(f)
	return t
}

type realTicker struct {
	ticker *time.Ticker
	done   chan struct{}
	once   sync.Once
}

func (t *realTicker) run(f func()) {
	for {
		select {
		case <-t.done:
			return
		case <-t.ticker.C:
			select {
			case <-t.done:
				return
			default:
			}
			f()
		}
	}
}

// Stop halts the ticker. Calling it more than once is safe.
func (t *realTicker) Stop() {
	t.once.Do(func() {
		t.ticker.Stop()
		close(t.done)
	})
}
