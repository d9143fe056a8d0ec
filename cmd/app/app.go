package main

import (
	"context"

	"github.com/akyairhashvil/dialtimer/internal/config"
	"github.com/akyairhashvil/dialtimer/internal/database"
	"github.com/akyairhashvil/dialtimer/internal/engine"
	"github.com/akyairhashvil/dialtimer/internal/feedback"
	"github.com/akyairhashvil/dialtimer/internal/feedback/audio"
	"github.com/akyairhashvil/dialtimer/internal/logger"
	"github.com/akyairhashvil/dialtimer/internal/util"
)

type appOptions struct {
	audio bool // open the speaker for sound feedback
	tui   bool // keep log output off the terminal
}

// app bundles the engine with its store and feedback sinks.
type app struct {
	db     *database.Database
	eng    *engine.Engine
	events *feedback.Recorder
	audio  *audio.Player
}

func openApp(ctx context.Context, cfg config.Config, opts appOptions) (*app, error) {
	if err := logger.Init(cfg.LogDir, verbose && !opts.tui); err != nil {
		ui.Warning("file logging disabled: %v", err)
	}

	db, err := database.Open(ctx, cfg.DBPath)
	if err != nil {
		return nil, err
	}

	a := &app{db: db, events: &feedback.Recorder{}}
	sinks := feedback.Multi{feedback.Log{}, a.events}
	if opts.audio {
		a.audio = audio.New(cfg.Audio)
		if err := a.audio.Init(); err != nil {
			logger.Warnf("audio disabled: %v", err)
			a.audio = nil
		} else {
			sinks = append(sinks, a.audio)
		}
	}

	a.eng = engine.New(engine.Options{
		Store:           db,
		Signaler:        sinks,
		SecondThreshold: cfg.SecondThreshold,
		TickInterval:    cfg.TickInterval,
	})
	a.eng.Load(ctx)
	logger.Infof("opened %s with %d timers", db.Path(), len(a.eng.Timers()))
	return a, nil
}

// Close stops the countdown, saves, and releases resources.
func (a *app) Close() {
	a.eng.Close()
	if a.audio != nil {
		a.audio.Close()
	}
	util.LogError("close database", a.db.Close())
}
