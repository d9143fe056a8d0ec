package engine

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/akyairhashvil/dialtimer/internal/clock"
	"github.com/akyairhashvil/dialtimer/internal/models"
	"github.com/akyairhashvil/dialtimer/internal/testutil"
)

// TestEngine_RemainingStaysInRange drives random operation sequences and
// checks 0 <= remaining <= total for every timer after each step.
func TestEngine_RemainingStaysInRange(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		rng := rand.New(rand.NewSource(seed))
		fake := clock.NewFake(time.Unix(0, 0))
		e := New(Options{
			Store: testutil.NewMemStore([]models.Timer{
				testutil.NewTimer().WithDuration(90).Build(),
				testutil.NewTimer().WithDuration(1200).WithBaseline(400).Build(),
			}, 0),
			Clock: fake,
		})
		e.Load(context.Background())

		for step := 0; step < 300; step++ {
			switch rng.Intn(11) {
			case 0:
				e.StartOrPause()
			case 1:
				e.Reset()
			case 2:
				e.DragUpdateAngle(rng.Float64() * 360)
			case 3:
				e.DragEnd()
			case 4:
				e.SelectTimer(rng.Intn(5) - 1)
			case 5:
				e.DeleteTimer(rng.Intn(5) - 1)
			case 6:
				e.ReorderTimer(rng.Intn(4), rng.Intn(4))
			case 7:
				e.CreateTimer(models.Draft{TotalDuration: rng.Intn(4000) - 100})
			case 8:
				e.EditTimer(rng.Intn(4), models.Draft{TotalDuration: rng.Intn(4000) - 100})
			default:
				fake.Advance(time.Duration(rng.Intn(120)) * time.Second)
			}

			for i, tm := range e.Timers() {
				require.GreaterOrEqual(t, tm.RemainingTime, 0, "seed %d step %d timer %d", seed, step, i)
				require.LessOrEqual(t, tm.RemainingTime, tm.TotalDuration, "seed %d step %d timer %d", seed, step, i)
				if b, ok := tm.Baseline(); ok {
					require.LessOrEqual(t, b, tm.TotalDuration)
				}
			}
			if n := len(e.Timers()); n > 0 {
				require.Less(t, e.SelectedIndex(), n)
			}
		}
		e.Close()
	}
}
