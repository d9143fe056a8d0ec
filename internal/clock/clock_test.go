package clock

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRealClock_Now(t *testing.T) {
	c := NewReal()

	before := time.Now()
	got := c.Now()
	after := time.Now()

	assert.False(t, got.Before(before))
	assert.False(t, got.After(after))
}

func TestRealClock_EveryFiresAndStops(t *testing.T) {
	c := NewReal()
	var count atomic.Int32
	fired := make(chan struct{}, 10)

	tk := c.Every(5*time.Millisecond, func() {
		count.Add(1)
		fired <- struct{}{}
	})

	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("ticker never fired")
	}

	tk.Stop()
	tk.Stop()
	seen := count.Load()
	time.Sleep(30 * time.Millisecond)
	assert.LessOrEqual(t, count.Load(), seen+1, "at most one in-flight tick after Stop")
}

func TestFake_AdvanceFiresPerInterval(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	f := NewFake(start)
	calls := 0
	f.Every(time.Second, func() { calls++ })

	assert.Equal(t, 0, f.Advance(500*time.Millisecond))
	assert.Equal(t, 1, f.Advance(500*time.Millisecond))
	assert.Equal(t, 3, f.Advance(3*time.Second))
	assert.Equal(t, 4, calls)
	assert.Equal(t, start.Add(4*time.Second), f.Now())
}

func TestFake_StopIsIdempotent(t *testing.T) {
	f := NewFake(time.Unix(0, 0))
	calls := 0
	tk := f.Every(time.Second, func() { calls++ })
	require.Equal(t, 1, f.Active())

	tk.Stop()
	tk.Stop()
	f.Advance(5 * time.Second)

	assert.Equal(t, 0, calls)
	assert.Equal(t, 0, f.Active())
}

func TestFake_CallbackCanStopItself(t *testing.T) {
	f := NewFake(time.Unix(0, 0))
	calls := 0
	var tk Ticker
	tk = f.Every(time.Second, func() {
		calls++
		if calls == 2 {
			tk.Stop()
		}
	})

	f.Advance(10 * time.Second)
	assert.Equal(t, 2, calls)
}
