package engine

import "github.com/akyairhashvil/dialtimer/internal/models"

// Angles that guard the twelve o'clock seam. A drag that was in the last
// quarter and jumps into the first half pins the timer to full; one that was
// in the first quarter and jumps into the second half pins it to zero.
const (
	seamHighFrom = 270.0
	seamLowFrom  = 90.0
	seamJumpTo   = 180.0
)

// DragStep is the outcome of one drag update.
type DragStep struct {
	Remaining   int
	Pinned      bool // the seam guard forced full or zero
	UnitCrossed bool
	Unit        int // minute bucket of Remaining
}

// DragController tracks one in-progress circular drag.
type DragController struct {
	snapper Snapper

	active        bool
	previousAngle float64
	previousUnit  *int
}

// NewDragController creates an idle controller.
func NewDragController(s Snapper) *DragController {
	return &DragController{snapper: s}
}

// Active reports whether a drag is in progress.
func (d *DragController) Active() bool {
	return d.active
}

// Begin starts a drag seeded from t's current progress.
func (d *DragController) Begin(t models.Timer) {
	d.active = true
	d.previousAngle = angleForProgress(t.Progress())
	d.previousUnit = nil
}

// Update applies angle to t and reports what changed. Begin must have been
// called.
func (d *DragController) Update(t *models.Timer, angle float64) DragStep {
	switch {
	case d.previousAngle >= seamHighFrom && angle <= seamJumpTo:
		t.SetRemaining(t.TotalDuration)
		return DragStep{Remaining: t.RemainingTime, Pinned: true, Unit: t.RemainingTime / 60}
	case d.previousAngle <= seamLowFrom && angle >= seamJumpTo:
		t.SetRemaining(0)
		return DragStep{Remaining: 0, Pinned: true}
	}

	snapped := d.snapper.Snap(angle, t.TotalDuration)
	step := DragStep{Remaining: snapped, Unit: snapped / 60}
	if d.previousUnit == nil || *d.previousUnit != step.Unit {
		step.UnitCrossed = true
		u := step.Unit
		d.previousUnit = &u
	}

	t.SetRemaining(snapped)
	d.previousAngle = angle
	return step
}

// End clears the session.
func (d *DragController) End() {
	d.active = false
	d.previousAngle = 0
	d.previousUnit = nil
}
