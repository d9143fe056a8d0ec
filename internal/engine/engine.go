package engine

import (
	"context"
	"sync"
	"time"

	"github.com/akyairhashvil/dialtimer/internal/clock"
	"github.com/akyairhashvil/dialtimer/internal/config"
	"github.com/akyairhashvil/dialtimer/internal/feedback"
	"github.com/akyairhashvil/dialtimer/internal/logger"
	"github.com/akyairhashvil/dialtimer/internal/models"
)

const saveTimeout = 5 * time.Second

// Options configures an Engine. Zero fields fall back to defaults.
type Options struct {
	Store           Store
	Clock           clock.Clock
	Signaler        feedback.Signaler
	SecondThreshold time.Duration
	TickInterval    time.Duration
}

// Engine owns the timer collection, the drag session and the countdown. All
// operations are serialised by one mutex, including tick callbacks, so at
// most one mutation runs at a time. Operations never fail: out-of-range
// indices are ignored and durations are clamped. Saves are queued to a
// background writer and never hold the lock.
type Engine struct {
	mu        sync.Mutex
	store     Store
	saver     *saver
	signaler  feedback.Signaler
	timers    Collection
	drag      *DragController
	countdown *Countdown
}

// New creates an engine holding the default timer. Call Load to replace it
// with the stored collection.
func New(opts Options) *Engine {
	if opts.Clock == nil {
		opts.Clock = clock.NewReal()
	}
	if opts.Signaler == nil {
		opts.Signaler = feedback.Nop{}
	}
	if opts.SecondThreshold <= 0 {
		opts.SecondThreshold = config.SecondThreshold
	}
	if opts.TickInterval <= 0 {
		opts.TickInterval = config.TickInterval
	}
	e := &Engine{
		store:     opts.Store,
		signaler:  opts.Signaler,
		timers:    NewCollection([]models.Timer{DefaultTimer()}, 0),
		drag:      NewDragController(Snapper{Threshold: int(opts.SecondThreshold / time.Second)}),
		countdown: NewCountdown(opts.Clock, opts.TickInterval),
	}
	if opts.Store != nil {
		e.saver = newSaver(opts.Store)
	}
	return e
}

// DefaultTimer is the timer used when nothing has been saved.
func DefaultTimer() models.Timer {
	return models.NewTimerFromDraft(models.Draft{
		Title:         config.DefaultTitle,
		Color:         models.ColorTag(config.DefaultColor),
		TotalDuration: int(config.DefaultDuration / time.Second),
	})
}

// Load replaces the collection with the stored one. A failed or empty load
// leaves a single default timer.
func (e *Engine) Load(ctx context.Context) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.stopLocked()
	e.drag.End()

	if e.store == nil {
		return
	}
	e.saver.flush()
	timers, selected, err := e.store.Load(ctx)
	if err != nil {
		logger.Warnf("engine: load failed, using default timer: %v", err)
		e.timers = NewCollection([]models.Timer{DefaultTimer()}, 0)
		return
	}
	if len(timers) == 0 {
		e.timers = NewCollection([]models.Timer{DefaultTimer()}, 0)
		return
	}
	e.timers = NewCollection(timers, selected)
	logger.Debugf("engine: loaded %d timers, selected %d", e.timers.Len(), e.timers.SelectedIndex())
}

// --- Countdown ---

// StartOrPause toggles the countdown of the selected timer as a user tap.
func (e *Engine) StartOrPause() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.countdown.Running() {
		e.pauseLocked()
		e.signalLocked(feedback.Tap)
		return
	}
	if e.startLocked() {
		e.signalLocked(feedback.Tap)
	}
}

// Start begins counting down the selected timer without tap feedback. It
// reports whether the countdown is running afterwards.
func (e *Engine) Start() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.countdown.Running() {
		return true
	}
	return e.startLocked()
}

// Pause stops the countdown without tap feedback, e.g. when the host goes to
// the background.
func (e *Engine) Pause() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.pauseLocked()
}

// Reset pauses and restores the selected timer to its baseline, or to its
// total when no baseline was committed.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()

	t := e.timers.Selected()
	if t == nil {
		return
	}
	e.stopLocked()
	e.drag.End()
	t.Reset()
	e.saveLocked()
}

func (e *Engine) startLocked() bool {
	if e.drag.Active() {
		return false
	}
	ok := e.countdown.Start(e.timers.Selected(), e.onTick)
	if ok {
		logger.Debugf("engine: countdown started for %s", e.countdown.TimerID())
	}
	return ok
}

func (e *Engine) pauseLocked() {
	if e.stopLocked() {
		e.saveLocked()
	}
}

func (e *Engine) stopLocked() bool {
	id := e.countdown.TimerID()
	if !e.countdown.Stop() {
		return false
	}
	logger.Debugf("engine: countdown stopped for %s", id)
	return true
}

func (e *Engine) onTick(gen uint64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	switch e.countdown.Advance(&e.timers, gen) {
	case TickInvalidated:
		logger.Debugf("engine: selection changed under countdown, stopped")
	case TickExpired:
		t := e.timers.Selected()
		logger.Debugf("engine: timer %s expired", t.ID)
		e.signaler.Signal(feedback.Event{Type: feedback.Expired, TimerID: t.ID, Muted: t.Muted})
		t.Reset()
		if t.RepeatEnabled && t.RemainingTime > 0 {
			e.startLocked()
		}
		e.saveLocked()
	}
}

// --- Drag ---

// DragStart begins a drag on the selected timer, pausing any countdown.
func (e *Engine) DragStart() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.dragStartLocked()
}

func (e *Engine) dragStartLocked() bool {
	t := e.timers.Selected()
	if t == nil {
		return false
	}
	if e.drag.Active() {
		return true
	}
	e.pauseLocked()
	e.drag.Begin(*t)
	logger.Debugf("engine: drag started on %s", t.ID)
	return true
}

// DragUpdate applies a pointer position relative to the dial center. A drag
// is started implicitly if none is active.
func (e *Engine) DragUpdate(center, point Point) {
	e.DragUpdateAngle(AngleOf(center, point))
}

// DragUpdateAngle applies a dial angle in degrees.
func (e *Engine) DragUpdateAngle(angle float64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.dragStartLocked() {
		return
	}
	t := e.timers.Selected()
	step := e.drag.Update(t, angle)
	if step.UnitCrossed {
		e.signaler.Signal(feedback.Event{Type: feedback.UnitCrossed, TimerID: t.ID, Muted: t.Muted, Unit: step.Unit})
	}
}

// DragEnd commits the dragged duration. The timer stays paused.
func (e *Engine) DragEnd() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.drag.Active() {
		return
	}
	e.drag.End()
	logger.Debugf("engine: drag ended")
	e.saveLocked()
}

// --- Collection ---

// SelectTimer selects the timer at index, pausing the current countdown.
func (e *Engine) SelectTimer(index int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.timers.Valid(index) || index == e.timers.SelectedIndex() {
		return
	}
	e.stopLocked()
	e.drag.End()
	e.timers.Select(index)
	e.saveLocked()
}

// DeleteTimer removes the timer at index.
func (e *Engine) DeleteTimer(index int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.timers.Valid(index) {
		return
	}
	if index == e.timers.SelectedIndex() {
		e.stopLocked()
		e.drag.End()
	}
	e.timers.Delete(index)
	if e.countdown.Running() {
		if s := e.timers.Selected(); s == nil || s.ID != e.countdown.TimerID() {
			e.stopLocked()
		}
	}
	e.saveLocked()
}

// ReorderTimer moves the timer at from to index to, keeping the selected
// timer selected.
func (e *Engine) ReorderTimer(from, to int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.timers.Reorder(from, to) {
		e.saveLocked()
	}
}

// CreateTimer appends a timer built from d, selects it and returns its id.
func (e *Engine) CreateTimer(d models.Draft) string {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.stopLocked()
	e.drag.End()
	t := models.NewTimerFromDraft(d)
	e.timers.Select(e.timers.Append(t))
	e.saveLocked()
	return t.ID
}

// EditTimer applies d to the timer at index, keeping its id and clamping its
// baseline.
func (e *Engine) EditTimer(index int, d models.Draft) {
	e.mu.Lock()
	defer e.mu.Unlock()

	t := e.timers.At(index)
	if t == nil {
		return
	}
	if t.ID == e.countdown.TimerID() {
		e.stopLocked()
	}
	if index == e.timers.SelectedIndex() {
		e.drag.End()
	}
	t.ApplyEdit(d)
	e.saveLocked()
}

// Close pauses the countdown, saves, and waits for pending saves to be
// written.
func (e *Engine) Close() {
	e.mu.Lock()
	e.stopLocked()
	e.drag.End()
	e.saveLocked()
	e.mu.Unlock()

	if e.saver != nil {
		e.saver.close()
	}
}

// Flush waits until every save issued so far has reached the store.
func (e *Engine) Flush() {
	if e.saver != nil {
		e.saver.flush()
	}
}

// --- Accessors ---

// CurrentProgress is the selected timer's remaining fraction in [0,1].
func (e *Engine) CurrentProgress() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	if t := e.timers.Selected(); t != nil {
		return t.Progress()
	}
	return 0
}

// CurrentTimer returns a copy of the selected timer.
func (e *Engine) CurrentTimer() (models.Timer, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if t := e.timers.Selected(); t != nil {
		return t.Clone(), true
	}
	return models.Timer{}, false
}

// IsRunning reports whether the countdown is active.
func (e *Engine) IsRunning() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.countdown.Running()
}

// IsDragging reports whether a drag session is active.
func (e *Engine) IsDragging() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.drag.Active()
}

// Timers returns copies of all timers in order.
func (e *Engine) Timers() []models.Timer {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.timers.Snapshot()
}

// SelectedIndex returns the selected position.
func (e *Engine) SelectedIndex() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.timers.SelectedIndex()
}

// --- helpers ---

func (e *Engine) signalLocked(t feedback.EventType) {
	ev := feedback.Event{Type: t}
	if sel := e.timers.Selected(); sel != nil {
		ev.TimerID = sel.ID
		ev.Muted = sel.Muted
	}
	e.signaler.Signal(ev)
}

// saveLocked queues the current collection for the store. The write
// happens off the engine lock.
func (e *Engine) saveLocked() {
	if e.saver == nil {
		return
	}
	e.saver.enqueue(snapshot{timers: e.timers.Snapshot(), selected: e.timers.SelectedIndex()})
}
