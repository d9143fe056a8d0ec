package engine

import "github.com/akyairhashvil/dialtimer/internal/models"

// Collection is the ordered timer list plus the selected index. Index based
// operations ignore out-of-range indices.
type Collection struct {
	timers   []models.Timer
	selected int
}

// NewCollection builds a collection from timers, clamping selected into range.
func NewCollection(timers []models.Timer, selected int) Collection {
	c := Collection{timers: make([]models.Timer, 0, len(timers))}
	for _, t := range timers {
		t = t.Clone()
		t.Normalize()
		c.timers = append(c.timers, t)
	}
	c.selected = selected
	c.clampSelection()
	return c
}

// Len returns the number of timers.
func (c *Collection) Len() int {
	return len(c.timers)
}

// SelectedIndex returns the selected index; 0 when empty.
func (c *Collection) SelectedIndex() int {
	return c.selected
}

// Valid reports whether i addresses a timer.
func (c *Collection) Valid(i int) bool {
	return i >= 0 && i < len(c.timers)
}

// At returns the timer at i for in-place mutation, or nil.
func (c *Collection) At(i int) *models.Timer {
	if !c.Valid(i) {
		return nil
	}
	return &c.timers[i]
}

// Selected returns the selected timer, or nil when the collection is empty.
func (c *Collection) Selected() *models.Timer {
	return c.At(c.selected)
}

// IndexOf returns the position of the timer with id, or -1.
func (c *Collection) IndexOf(id string) int {
	for i := range c.timers {
		if c.timers[i].ID == id {
			return i
		}
	}
	return -1
}

// Select moves the selection to i.
func (c *Collection) Select(i int) bool {
	if !c.Valid(i) {
		return false
	}
	c.selected = i
	return true
}

// Append adds t at the end and returns its index.
func (c *Collection) Append(t models.Timer) int {
	c.timers = append(c.timers, t)
	return len(c.timers) - 1
}

// Delete removes the timer at i. The selection is clamped to the new length.
func (c *Collection) Delete(i int) bool {
	if !c.Valid(i) {
		return false
	}
	c.timers = append(c.timers[:i], c.timers[i+1:]...)
	c.clampSelection()
	return true
}

// Reorder moves the timer at from so it ends up at index to. The selected
// timer stays selected wherever it lands.
func (c *Collection) Reorder(from, to int) bool {
	if !c.Valid(from) || !c.Valid(to) {
		return false
	}
	if from == to {
		return true
	}
	selectedID := ""
	if s := c.Selected(); s != nil {
		selectedID = s.ID
	}

	moved := c.timers[from]
	c.timers = append(c.timers[:from], c.timers[from+1:]...)
	c.timers = append(c.timers[:to], append([]models.Timer{moved}, c.timers[to:]...)...)

	if idx := c.IndexOf(selectedID); idx >= 0 {
		c.selected = idx
	}
	return true
}

// Snapshot returns deep copies of every timer.
func (c *Collection) Snapshot() []models.Timer {
	out := make([]models.Timer, len(c.timers))
	for i, t := range c.timers {
		out[i] = t.Clone()
	}
	return out
}

func (c *Collection) clampSelection() {
	if len(c.timers) == 0 {
		c.selected = 0
		return
	}
	if c.selected >= len(c.timers) {
		c.selected = len(c.timers) - 1
	}
	if c.selected < 0 {
		c.selected = 0
	}
}
