// Package audio plays short synthesized sounds for feedback events.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/akyairhashvil/dialtimer/internal/config"
	"github.com/akyairhashvil/dialtimer/internal/feedback"
)

// Player plays a short sound per event through the system speaker. Events
// of muted timers are skipped.
type Player struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	volume      float64
	initialized bool

	initFn func(beep.SampleRate, int) error
	playFn func(...beep.Streamer)
}

// New creates a Player. Call Init before the first event.
func New(cfg config.AudioConfig) *Player {
	return &Player{
		rate:   beep.SampleRate(config.AudioSampleRate),
		volume: cfg.Volume,
		initFn: speaker.Init,
		playFn: speaker.Play,
	}
}

// Init opens the speaker once.
func (a *Player) Init() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.initialized {
		return nil
	}
	if err := a.initFn(a.rate, a.rate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	a.initialized = true
	return nil
}

// Signal plays the sound for e. It never blocks on playback.
func (a *Player) Signal(e feedback.Event) {
	if e.Muted {
		return
	}
	a.mu.Lock()
	ready := a.initialized
	a.mu.Unlock()
	if !ready {
		return
	}
	if s := soundFor(e.Type, a.rate, a.volume); s != nil {
		a.playFn(s)
	}
}

// Close stops playback and releases the speaker.
func (a *Player) Close() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	a.initialized = false
}
