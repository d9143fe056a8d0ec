package clock

import (
	"sync"
	"time"
)

// Fake is a manually advanced Clock. Callbacks run synchronously inside
// Advance on the caller's goroutine.
type Fake struct {
	mu      sync.Mutex
	now     time.Time
	tickers []*fakeTicker
}

type fakeTicker struct {
	clock    *Fake
	interval time.Duration
	next     time.Time
	fn       func()
	stopped  bool
}

var _ Clock = (*Fake)(nil)

// NewFake creates a Fake clock starting at t.
func NewFake(t time.Time) *Fake {
	return &Fake{now: t}
}

// Now returns the fake's current time.
func (f *Fake) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

// Every registers a recurring callback.
func (f *Fake) Every(d time.Duration, fn func()) Ticker {
	if d <= 0 {
		panic("clock: non-positive interval for Every")
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	t := &fakeTicker{clock: f, interval: d, next: f.now.Add(d), fn: fn}
	f.tickers = append(f.tickers, t)
	return t
}

// Advance moves time forward by d, firing every due callback in time order.
// Returns the number of callbacks executed.
func (f *Fake) Advance(d time.Duration) int {
	f.mu.Lock()
	target := f.now.Add(d)
	f.mu.Unlock()

	fired := 0
	for {
		f.mu.Lock()
		next := f.nextDueLocked(target)
		if next == nil {
			f.now = target
			f.mu.Unlock()
			return fired
		}
		f.now = next.next
		next.next = next.next.Add(next.interval)
		fn := next.fn
		f.mu.Unlock()

		// Execute outside the lock so callbacks may stop or start tickers.
		fn()
		fired++
	}
}

func (f *Fake) nextDueLocked(target time.Time) *fakeTicker {
	var due *fakeTicker
	for _, t := range f.tickers {
		if t.stopped || t.next.After(target) {
			continue
		}
		if due == nil || t.next.Before(due.next) {
			due = t
		}
	}
	return due
}

// Active returns how many tickers are still running.
func (f *Fake) Active() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, t := range f.tickers {
		if !t.stopped {
			n++
		}
	}
	return n
}

func (t *fakeTicker) Stop() {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	t.stopped = true
}
