package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/akyairhashvil/dialtimer/internal/feedback"
)

// sine generates a fixed-length sine wave.
type sine struct {
	freq     float64
	phase    float64
	length   int
	position int
	rate     beep.SampleRate
}

func newSine(freq float64, d time.Duration, rate beep.SampleRate) beep.Streamer {
	return &sine{freq: freq, length: rate.N(d), rate: rate}
}

func (s *sine) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.position >= s.length {
			return i, i > 0
		}
		v := math.Sin(2 * math.Pi * s.phase)
		samples[i][0] = v
		samples[i][1] = v
		s.phase += s.freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.position++
	}
	return len(samples), true
}

func (s *sine) Err() error { return nil }

// fade applies a linear release over the tail of the wrapped stream so tones
// do not click when they stop.
type fade struct {
	streamer beep.Streamer
	position int
	total    int
	release  int
}

func newFade(s beep.Streamer, d, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &fade{streamer: s, total: rate.N(d), release: rate.N(release)}
}

func (f *fade) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.streamer.Stream(samples)
	start := f.total - f.release
	for i := 0; i < n; i++ {
		if f.release > 0 && f.position >= start {
			vol := float64(f.total-f.position) / float64(f.release)
			if vol < 0 {
				vol = 0
			}
			samples[i][0] *= vol
			samples[i][1] *= vol
		}
		f.position++
	}
	return n, ok
}

func (f *fade) Err() error { return f.streamer.Err() }

func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

func tone(freq float64, d time.Duration, rate beep.SampleRate) beep.Streamer {
	return newFade(newSine(freq, d, rate), d, d/3, rate)
}

// soundFor builds the streamer for an event type.
func soundFor(t feedback.EventType, rate beep.SampleRate, vol float64) beep.Streamer {
	switch t {
	case feedback.Tap:
		return withVolume(tone(1200, 20*time.Millisecond, rate), vol)
	case feedback.UnitCrossed:
		return withVolume(tone(800, 8*time.Millisecond, rate), vol*0.5)
	case feedback.Expired:
		return withVolume(beep.Seq(
			tone(880, 180*time.Millisecond, rate),
			tone(1320, 180*time.Millisecond, rate),
			tone(1760, 360*time.Millisecond, rate),
		), vol)
	default:
		return nil
	}
}
