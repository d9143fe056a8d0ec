package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akyairhashvil/dialtimer/internal/clock"
	"github.com/akyairhashvil/dialtimer/internal/models"
	"github.com/akyairhashvil/dialtimer/internal/testutil"
)

func TestCountdown_StartRequiresRemainingTime(t *testing.T) {
	cd := NewCountdown(clock.NewFake(time.Unix(0, 0)), time.Second)
	empty := testutil.NewTimer().WithRemaining(0).Build()

	assert.False(t, cd.Start(nil, func(uint64) {}))
	assert.False(t, cd.Start(&empty, func(uint64) {}))
	assert.False(t, cd.Running())
}

func TestCountdown_AdvanceCountsSelected(t *testing.T) {
	fake := clock.NewFake(time.Unix(0, 0))
	cd := NewCountdown(fake, time.Second)
	col := NewCollection([]models.Timer{testutil.NewTimer().WithDuration(10).WithRemaining(3).Build()}, 0)

	var outcomes []TickOutcome
	require.True(t, cd.Start(col.Selected(), func(gen uint64) {
		outcomes = append(outcomes, cd.Advance(&col, gen))
	}))

	fake.Advance(3 * time.Second)

	assert.Equal(t, []TickOutcome{TickCounted, TickCounted, TickExpired}, outcomes)
	assert.False(t, cd.Running())
	assert.Equal(t, 0, col.Selected().RemainingTime)
	assert.Equal(t, 0, fake.Active())
}

func TestCountdown_StaleGenerationIgnored(t *testing.T) {
	cd := NewCountdown(clock.NewFake(time.Unix(0, 0)), time.Second)
	col := NewCollection([]models.Timer{testutil.NewTimer().Build()}, 0)

	require.True(t, cd.Start(col.Selected(), func(uint64) {}))
	stale := cd.gen
	cd.Stop()
	require.True(t, cd.Start(col.Selected(), func(uint64) {}))

	assert.Equal(t, TickIgnored, cd.Advance(&col, stale))
	assert.Equal(t, 600, col.Selected().RemainingTime)
}

func TestCountdown_InvalidatedWhenSelectionChanges(t *testing.T) {
	cd := NewCountdown(clock.NewFake(time.Unix(0, 0)), time.Second)
	col := NewCollection(threeTimers(), 0)

	require.True(t, cd.Start(col.Selected(), func(uint64) {}))
	col.Select(1)

	assert.Equal(t, TickInvalidated, cd.Advance(&col, cd.gen))
	assert.False(t, cd.Running())
	assert.Equal(t, 600, col.At(0).RemainingTime)
	assert.Equal(t, 600, col.At(1).RemainingTime)
}

func TestCountdown_StopIsIdempotent(t *testing.T) {
	fake := clock.NewFake(time.Unix(0, 0))
	cd := NewCountdown(fake, time.Second)
	tm := testutil.NewTimer().Build()

	require.True(t, cd.Start(&tm, func(uint64) {}))
	assert.False(t, cd.Start(&tm, func(uint64) {}), "second start while running")
	assert.True(t, cd.Stop())
	assert.False(t, cd.Stop())
	assert.Equal(t, 0, fake.Active())
}
