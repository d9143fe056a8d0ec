package config

import "time"

// Timer defaults.
const (
	// SecondThreshold is the total duration below which drags snap to whole
	// seconds instead of whole minutes.
	SecondThreshold = 5 * time.Minute
	DefaultDuration = 15 * time.Minute
	DefaultTitle    = "Timer"
	DefaultColor    = "blue"
	TickInterval    = time.Second
)

// Gesture timing.
const (
	// DoubleTapWindow is the longest gap between two taps that still counts
	// as a double tap (reset).
	DoubleTapWindow = 400 * time.Millisecond
)

// Application settings.
const (
	AppName        = "dialtimer"
	DBFileName     = "timers.db"
	ConfigFileName = "config"
	EnvPrefix      = "DIALTIMER"
)

// Audio defaults.
const (
	DefaultAudioVolume = 0.6
	AudioSampleRate    = 44100
)
