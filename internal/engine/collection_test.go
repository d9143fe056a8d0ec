package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akyairhashvil/dialtimer/internal/models"
	"github.com/akyairhashvil/dialtimer/internal/testutil"
)

func threeTimers() []models.Timer {
	return []models.Timer{
		testutil.NewTimer().WithID("a").Build(),
		testutil.NewTimer().WithID("b").Build(),
		testutil.NewTimer().WithID("c").Build(),
	}
}

func ids(c *Collection) []string {
	var out []string
	for _, t := range c.Snapshot() {
		out = append(out, t.ID)
	}
	return out
}

func TestNewCollection_ClampsSelection(t *testing.T) {
	c := NewCollection(threeTimers(), 7)
	assert.Equal(t, 2, c.SelectedIndex())

	c = NewCollection(threeTimers(), -3)
	assert.Equal(t, 0, c.SelectedIndex())

	c = NewCollection(nil, 4)
	assert.Equal(t, 0, c.SelectedIndex())
	assert.Nil(t, c.Selected())
}

func TestNewCollection_NormalizesTimers(t *testing.T) {
	broken := testutil.NewTimer().WithDuration(100).WithRemaining(500).Build()
	c := NewCollection([]models.Timer{broken}, 0)
	assert.Equal(t, 100, c.Selected().RemainingTime)
}

func TestCollection_DeleteClampsSelection(t *testing.T) {
	c := NewCollection(threeTimers(), 2)

	require.True(t, c.Delete(2))
	assert.Equal(t, 1, c.SelectedIndex())
	assert.Equal(t, []string{"a", "b"}, ids(&c))
}

func TestCollection_DeleteBeforeSelectionKeepsIndex(t *testing.T) {
	c := NewCollection(threeTimers(), 1)
	require.True(t, c.Delete(0))
	assert.Equal(t, 1, c.SelectedIndex())
	assert.Equal(t, "c", c.Selected().ID)
}

func TestCollection_DeleteToEmpty(t *testing.T) {
	c := NewCollection(threeTimers()[:1], 0)
	require.True(t, c.Delete(0))
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, 0, c.SelectedIndex())
	assert.Nil(t, c.Selected())
}

func TestCollection_OutOfRangeIsNoop(t *testing.T) {
	c := NewCollection(threeTimers(), 1)

	assert.False(t, c.Delete(3))
	assert.False(t, c.Delete(-1))
	assert.False(t, c.Select(9))
	assert.False(t, c.Reorder(0, 3))
	assert.False(t, c.Reorder(-1, 0))
	assert.Nil(t, c.At(5))

	assert.Equal(t, []string{"a", "b", "c"}, ids(&c))
	assert.Equal(t, 1, c.SelectedIndex())
}

func TestCollection_ReorderKeepsSelectedIdentity(t *testing.T) {
	tests := []struct {
		name     string
		selected int
		from, to int
		order    []string
		wantSel  string
		wantIdx  int
	}{
		{"move selected down", 0, 0, 2, []string{"b", "c", "a"}, "a", 2},
		{"move selected up", 2, 2, 0, []string{"c", "a", "b"}, "c", 0},
		{"move other past selected", 1, 0, 2, []string{"b", "c", "a"}, "b", 0},
		{"move other before selected", 0, 2, 0, []string{"c", "a", "b"}, "a", 1},
		{"same index", 1, 1, 1, []string{"a", "b", "c"}, "b", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCollection(threeTimers(), tt.selected)
			require.True(t, c.Reorder(tt.from, tt.to))
			assert.Equal(t, tt.order, ids(&c))
			assert.Equal(t, tt.wantSel, c.Selected().ID)
			assert.Equal(t, tt.wantIdx, c.SelectedIndex())
		})
	}
}

func TestCollection_SnapshotIsDetached(t *testing.T) {
	c := NewCollection(threeTimers(), 0)
	snap := c.Snapshot()
	snap[0].Title = "changed"
	assert.NotEqual(t, "changed", c.Selected().Title)
}
