package models

import "github.com/google/uuid"

// NewTimerFromDraft builds a fresh timer with a new id, full remaining time
// and no user baseline.
func NewTimerFromDraft(d Draft) Timer {
	total := clampNonNegative(d.TotalDuration)
	return Timer{
		ID:            uuid.NewString(),
		Title:         d.Title,
		TotalDuration: total,
		RemainingTime: total,
		Color:         d.Color,
		Flags:         d.Flags,
	}
}

// Draft returns the editable fields of t.
func (t Timer) Draft() Draft {
	return Draft{
		Title:         t.Title,
		Color:         t.Color,
		TotalDuration: t.TotalDuration,
		Flags:         t.Flags,
	}
}

// Clone returns a copy of t that shares no memory with it.
func (t Timer) Clone() Timer {
	c := t
	if t.UserBaseline != nil {
		v := *t.UserBaseline
		c.UserBaseline = &v
	}
	return c
}

// Baseline returns the user baseline and whether one is set.
func (t Timer) Baseline() (int, bool) {
	if t.UserBaseline == nil {
		return 0, false
	}
	return *t.UserBaseline, true
}

// ResetTarget is the remaining time a reset or an expiry restores.
func (t Timer) ResetTarget() int {
	if b, ok := t.Baseline(); ok {
		return clamp(b, 0, t.TotalDuration)
	}
	return t.TotalDuration
}

// Progress is the remaining fraction of the total duration in [0,1].
func (t Timer) Progress() float64 {
	if t.TotalDuration <= 0 {
		return 0
	}
	return float64(t.RemainingTime) / float64(t.TotalDuration)
}

// ApplyEdit replaces the editable fields and restarts the countdown from the
// new total. An existing baseline is clamped to the new total.
func (t *Timer) ApplyEdit(d Draft) {
	t.Title = d.Title
	t.Color = d.Color
	t.Flags = d.Flags
	t.TotalDuration = clampNonNegative(d.TotalDuration)
	t.RemainingTime = t.TotalDuration
	if b, ok := t.Baseline(); ok {
		t.SetBaseline(min(b, t.TotalDuration))
	}
}

// Reset restores the remaining time to the baseline, or the total when no
// baseline has been committed.
func (t *Timer) Reset() {
	t.RemainingTime = t.ResetTarget()
}

// Tick removes one second and reports whether the countdown reached zero.
func (t *Timer) Tick() bool {
	if t.RemainingTime > 0 {
		t.RemainingTime--
	}
	t.RemainingTime = clamp(t.RemainingTime, 0, t.TotalDuration)
	return t.RemainingTime == 0
}

// SetRemaining clamps seconds into [0,total], stores it as the remaining time
// and commits it as the user baseline.
func (t *Timer) SetRemaining(seconds int) {
	v := clamp(seconds, 0, t.TotalDuration)
	t.RemainingTime = v
	t.SetBaseline(v)
}

// SetBaseline stores a copy of seconds, clamped to the total, as the baseline.
func (t *Timer) SetBaseline(seconds int) {
	v := clamp(seconds, 0, t.TotalDuration)
	t.UserBaseline = &v
}

// Normalize repairs a timer loaded from storage so the remaining time and
// baseline sit inside [0,total].
func (t *Timer) Normalize() {
	t.TotalDuration = clampNonNegative(t.TotalDuration)
	t.RemainingTime = clamp(t.RemainingTime, 0, t.TotalDuration)
	if b, ok := t.Baseline(); ok {
		t.SetBaseline(b)
	}
	if !t.Color.Valid() {
		t.Color = Palette[0]
	}
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampNonNegative(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
