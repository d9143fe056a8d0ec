package engine

import (
	"time"

	"github.com/akyairhashvil/dialtimer/internal/clock"
	"github.com/akyairhashvil/dialtimer/internal/models"
)

// TickOutcome describes what a single tick did.
type TickOutcome int

const (
	// TickIgnored means the tick was stale (countdown stopped or restarted).
	TickIgnored TickOutcome = iota
	// TickCounted means one second was removed and the countdown continues.
	TickCounted
	// TickInvalidated means the counted timer is no longer selected.
	TickInvalidated
	// TickExpired means the timer reached zero and the countdown stopped.
	TickExpired
)

// Countdown owns the single recurring tick source. It counts down the
// selected timer only while that timer is the one it was started for.
type Countdown struct {
	clock    clock.Clock
	interval time.Duration

	ticker  clock.Ticker
	timerID string
	gen     uint64
}

// NewCountdown creates a stopped countdown.
func NewCountdown(c clock.Clock, interval time.Duration) *Countdown {
	return &Countdown{clock: c, interval: interval}
}

// Running reports whether a tick source is active.
func (c *Countdown) Running() bool {
	return c.ticker != nil
}

// TimerID returns the id of the timer being counted, or "".
func (c *Countdown) TimerID() string {
	return c.timerID
}

// Start begins ticking for timer t. fire is called once per interval with
// the generation it was started under; the caller passes that back to
// Advance so ticks from an earlier run are ignored.
func (c *Countdown) Start(t *models.Timer, fire func(gen uint64)) bool {
	if t == nil || t.RemainingTime <= 0 || c.Running() {
		return false
	}
	c.gen++
	gen := c.gen
	c.timerID = t.ID
	c.ticker = c.clock.Every(c.interval, func() { fire(gen) })
	return true
}

// Stop cancels the tick source. It reports whether the countdown was running
// and is safe to call repeatedly.
func (c *Countdown) Stop() bool {
	if c.ticker == nil {
		return false
	}
	c.ticker.Stop()
	c.ticker = nil
	c.timerID = ""
	c.gen++
	return true
}

// Advance applies one tick of generation gen to the selected timer of col.
func (c *Countdown) Advance(col *Collection, gen uint64) TickOutcome {
	if !c.Running() || gen != c.gen {
		return TickIgnored
	}
	sel := col.Selected()
	if sel == nil || sel.ID != c.timerID {
		c.Stop()
		return TickInvalidated
	}
	if sel.Tick() {
		c.Stop()
		return TickExpired
	}
	return TickCounted
}
