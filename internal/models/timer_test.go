package models

import "testing"

func intPtr(v int) *int { return &v }

func TestNewTimerFromDraft(t *testing.T) {
	tm := NewTimerFromDraft(Draft{Title: "Tea", Color: ColorGreen, TotalDuration: 180, Flags: Flags{Muted: true}})
	if tm.ID == "" {
		t.Fatalf("expected an id to be assigned")
	}
	if tm.RemainingTime != 180 || tm.TotalDuration != 180 {
		t.Fatalf("remaining/total = %d/%d, want 180/180", tm.RemainingTime, tm.TotalDuration)
	}
	if tm.UserBaseline != nil {
		t.Fatalf("new timer must not carry a baseline")
	}
	if !tm.Muted {
		t.Fatalf("flags were not copied")
	}
	other := NewTimerFromDraft(Draft{TotalDuration: 180})
	if other.ID == tm.ID {
		t.Fatalf("ids must be unique")
	}
}

func TestNewTimerFromDraftNegativeDuration(t *testing.T) {
	tm := NewTimerFromDraft(Draft{TotalDuration: -5})
	if tm.TotalDuration != 0 || tm.RemainingTime != 0 {
		t.Fatalf("negative duration not clamped: %+v", tm)
	}
}

func TestApplyEditClampsBaseline(t *testing.T) {
	tm := Timer{TotalDuration: 600, RemainingTime: 450, UserBaseline: intPtr(500)}
	tm.ApplyEdit(Draft{Title: "Short", TotalDuration: 300, Color: ColorRed})
	if tm.TotalDuration != 300 {
		t.Fatalf("total = %d, want 300", tm.TotalDuration)
	}
	if tm.RemainingTime != 300 {
		t.Fatalf("remaining = %d, want 300", tm.RemainingTime)
	}
	if b, ok := tm.Baseline(); !ok || b != 300 {
		t.Fatalf("baseline = %d,%v want 300,true", b, ok)
	}
	if tm.Title != "Short" || tm.Color != ColorRed {
		t.Fatalf("title/color not applied: %+v", tm)
	}
}

func TestApplyEditKeepsSmallerBaseline(t *testing.T) {
	tm := Timer{TotalDuration: 600, RemainingTime: 600, UserBaseline: intPtr(120)}
	tm.ApplyEdit(Draft{TotalDuration: 900})
	if b, _ := tm.Baseline(); b != 120 {
		t.Fatalf("baseline = %d, want 120", b)
	}
	if tm.RemainingTime != 900 {
		t.Fatalf("remaining = %d, want 900", tm.RemainingTime)
	}
}

func TestApplyEditWithoutBaseline(t *testing.T) {
	tm := Timer{TotalDuration: 600, RemainingTime: 20}
	tm.ApplyEdit(Draft{TotalDuration: 60})
	if tm.UserBaseline != nil {
		t.Fatalf("edit must not invent a baseline")
	}
}

func TestResetPrefersBaseline(t *testing.T) {
	tm := Timer{TotalDuration: 600, RemainingTime: 90, UserBaseline: intPtr(120)}
	tm.Reset()
	if tm.RemainingTime != 120 {
		t.Fatalf("remaining = %d, want 120", tm.RemainingTime)
	}
	tm.UserBaseline = nil
	tm.Reset()
	if tm.RemainingTime != 600 {
		t.Fatalf("remaining = %d, want 600", tm.RemainingTime)
	}
}

func TestTickStopsAtZero(t *testing.T) {
	tm := Timer{TotalDuration: 10, RemainingTime: 2}
	if tm.Tick() {
		t.Fatalf("first tick should not reach zero")
	}
	if !tm.Tick() {
		t.Fatalf("second tick should reach zero")
	}
	if !tm.Tick() || tm.RemainingTime != 0 {
		t.Fatalf("tick below zero: %d", tm.RemainingTime)
	}
}

func TestSetRemainingClampsAndCommits(t *testing.T) {
	tm := Timer{TotalDuration: 300}
	tm.SetRemaining(1000)
	if tm.RemainingTime != 300 {
		t.Fatalf("remaining = %d, want 300", tm.RemainingTime)
	}
	tm.SetRemaining(-4)
	if tm.RemainingTime != 0 {
		t.Fatalf("remaining = %d, want 0", tm.RemainingTime)
	}
	if b, ok := tm.Baseline(); !ok || b != 0 {
		t.Fatalf("baseline = %d,%v", b, ok)
	}
}

func TestCloneDoesNotShareBaseline(t *testing.T) {
	tm := Timer{TotalDuration: 300, UserBaseline: intPtr(60)}
	c := tm.Clone()
	*c.UserBaseline = 10
	if *tm.UserBaseline != 60 {
		t.Fatalf("clone shares baseline memory")
	}
}

func TestProgress(t *testing.T) {
	if p := (Timer{}).Progress(); p != 0 {
		t.Fatalf("zero total progress = %v", p)
	}
	if p := (Timer{TotalDuration: 200, RemainingTime: 50}).Progress(); p != 0.25 {
		t.Fatalf("progress = %v, want 0.25", p)
	}
}

func TestNormalize(t *testing.T) {
	tm := Timer{TotalDuration: 100, RemainingTime: 400, UserBaseline: intPtr(250), Color: "mauve"}
	tm.Normalize()
	if tm.RemainingTime != 100 {
		t.Fatalf("remaining = %d", tm.RemainingTime)
	}
	if b, _ := tm.Baseline(); b != 100 {
		t.Fatalf("baseline = %d", b)
	}
	if tm.Color != Palette[0] {
		t.Fatalf("color = %q", tm.Color)
	}
}
