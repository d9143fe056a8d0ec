package engine

import (
	"context"
	"sync"

	"github.com/akyairhashvil/dialtimer/internal/logger"
	"github.com/akyairhashvil/dialtimer/internal/models"
)

type snapshot struct {
	timers   []models.Timer
	selected int
}

// saver writes snapshots to the store on its own goroutine. Only the latest
// pending snapshot is kept; older unwritten ones are replaced.
type saver struct {
	store Store

	mu      sync.Mutex
	cond    *sync.Cond
	pending *snapshot
	busy    bool
	closed  bool
	done    chan struct{}
}

func newSaver(store Store) *saver {
	s := &saver{store: store, done: make(chan struct{})}
	s.cond = sync.NewCond(&s.mu)
	go s.run()
	return s
}

// enqueue hands snap to the writer without waiting for it. After close the
// write happens inline.
func (s *saver) enqueue(snap snapshot) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		s.write(snap)
		return
	}
	s.pending = &snap
	s.cond.Broadcast()
	s.mu.Unlock()
}

// flush blocks until every enqueued snapshot has been written.
func (s *saver) flush() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for s.pending != nil || s.busy {
		s.cond.Wait()
	}
}

// close drains the queue and stops the writer. It is safe to call twice.
func (s *saver) close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.cond.Broadcast()
	s.mu.Unlock()
	<-s.done
}

func (s *saver) run() {
	defer close(s.done)
	for {
		s.mu.Lock()
		for s.pending == nil && !s.closed {
			s.cond.Wait()
		}
		if s.pending == nil {
			s.mu.Unlock()
			return
		}
		snap := *s.pending
		s.pending = nil
		s.busy = true
		s.mu.Unlock()

		s.write(snap)

		s.mu.Lock()
		s.busy = false
		s.cond.Broadcast()
		s.mu.Unlock()
	}
}

func (s *saver) write(snap snapshot) {
	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()
	if err := s.store.Save(ctx, snap.timers, snap.selected); err != nil {
		logger.Warnf("engine: save failed: %v", err)
	}
}
