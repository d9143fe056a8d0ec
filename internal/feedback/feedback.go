// Package feedback carries the discrete user-feedback events the engine emits
// (tap, unit crossed, expired) to whatever can render them: logs, sound, UI.
package feedback

import (
	"sync"

	"github.com/akyairhashvil/dialtimer/internal/logger"
)

// EventType names one kind of feedback.
type EventType string

const (
	Tap         EventType = "tap"
	UnitCrossed EventType = "unit_crossed"
	Expired     EventType = "expired"
)

// Event is a single fire-and-forget feedback signal.
type Event struct {
	Type    EventType
	TimerID string
	Muted   bool // the timer's muted flag at the time of the event
	Unit    int  // minute bucket for UnitCrossed
}

// Signaler receives feedback events. Implementations must not call back
// into the engine.
//
//go:generate mockgen -source=feedback.go -destination=../engine/mock_signaler_test.go -package=engine
type Signaler interface {
	Signal(e Event)
}

// SignalerFunc adapts a function to Signaler.
type SignalerFunc func(Event)

func (f SignalerFunc) Signal(e Event) { f(e) }

// Nop discards every event.
type Nop struct{}

func (Nop) Signal(Event) {}

// Multi fans an event out to several signalers in order.
type Multi []Signaler

func (m Multi) Signal(e Event) {
	for _, s := range m {
		if s != nil {
			s.Signal(e)
		}
	}
}

// Log writes every event at DEBUG level.
type Log struct{}

func (Log) Signal(e Event) {
	switch e.Type {
	case UnitCrossed:
		logger.Debugf("feedback: %s timer=%s unit=%d", e.Type, e.TimerID, e.Unit)
	default:
		logger.Debugf("feedback: %s timer=%s muted=%t", e.Type, e.TimerID, e.Muted)
	}
}

// Recorder keeps events in memory until drained.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

// Signal appends e.
func (r *Recorder) Signal(e Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

// Events returns a copy of everything recorded so far.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// Drain returns and clears the recorded events.
func (r *Recorder) Drain() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.events
	r.events = nil
	return out
}

// Count returns how many events of type t were recorded.
func (r *Recorder) Count(t EventType) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}
