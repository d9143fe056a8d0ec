package tui

import (
	"fmt"
	"time"

	"github.com/akyairhashvil/dialtimer/internal/config"
	"github.com/akyairhashvil/dialtimer/internal/engine"
	"github.com/akyairhashvil/dialtimer/internal/feedback"
	"github.com/akyairhashvil/dialtimer/internal/models"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

// ViewMode selects which screen the model renders.
type ViewMode int

const (
	ViewDial ViewMode = iota
	ViewSwitch
	ViewForm
)

// Model is the root bubbletea model. It holds no timer state of its own:
// every frame is rendered from the engine, which owns the countdown.
type Model struct {
	eng           *engine.Engine
	events        *feedback.Recorder
	keys          *HandlerRegistry
	help          help.Model
	progress      progress.Model
	form          *FormState
	mode          ViewMode
	formReturn    ViewMode
	doubleTap     time.Duration
	lastTap       time.Time
	now           func() time.Time
	confirmDelete bool
	pausedOnBlur  bool
	flash         string
	flashUntil    time.Time
	Message       string
	width, height int
}

// NewModel wraps eng. events must be the recorder the engine signals into;
// the model drains it on every redraw to show expiry banners.
func NewModel(eng *engine.Engine, events *feedback.Recorder, cfg config.Config) Model {
	if events == nil {
		events = &feedback.Recorder{}
	}
	window := cfg.DoubleTapWindow
	if window <= 0 {
		window = config.DoubleTapWindow
	}
	prog := progress.New(progress.WithSolidFill(models.Palette[0].Hex()), progress.WithoutPercentage())
	prog.Width = config.TargetProgressWidth
	return Model{
		eng:       eng,
		events:    events,
		keys:      defaultRegistry(),
		help:      help.New(),
		progress:  prog,
		mode:      ViewDial,
		doubleTap: window,
		now:       time.Now,
	}
}

func (m Model) Init() tea.Cmd {
	return tickCmd()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.progress.Width = progressWidth(m.width)
		m.help.Width = m.width
		return m, nil
	case tea.BlurMsg:
		if m.eng.IsRunning() {
			m.eng.Pause()
			m.pausedOnBlur = true
		}
		return m, nil
	case tea.FocusMsg:
		if m.pausedOnBlur {
			m.pausedOnBlur = false
			m.eng.Start()
		}
		return m, nil
	case TickMsg:
		m = m.handleTick()
		return m, tickCmd()
	case tea.MouseMsg:
		return m.handleMouse(msg), nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.eng.Close()
			return m, tea.Quit
		}
		if m.mode != ViewForm && m.Message != "" {
			m.Message = ""
		}
		next, cmd, handled := m.keys.Handle(m, msg)
		if handled {
			return next, cmd
		}
		if m.mode == ViewForm && m.form != nil {
			return m, m.form.update(msg)
		}
		return m, nil
	}
	if m.mode == ViewForm && m.form != nil {
		return m, m.form.update(msg)
	}
	return m, nil
}

// handleTick drains feedback recorded since the last frame.
func (m Model) handleTick() Model {
	now := m.now()
	for _, ev := range m.events.Drain() {
		if ev.Type != feedback.Expired {
			continue
		}
		title := "Timer"
		for _, t := range m.eng.Timers() {
			if t.ID == ev.TimerID {
				title = t.Title
				break
			}
		}
		m.flash = fmt.Sprintf("%s finished", title)
		m.flashUntil = now.Add(config.FlashDuration)
	}
	if m.flash != "" && now.After(m.flashUntil) {
		m.flash = ""
	}
	return m
}

// tap toggles the countdown; a second tap inside the double tap window
// resets the selected timer instead.
func (m Model) tap() Model {
	now := m.now()
	if !m.lastTap.IsZero() && now.Sub(m.lastTap) <= m.doubleTap {
		m.eng.Reset()
		m.lastTap = time.Time{}
		return m
	}
	m.eng.StartOrPause()
	m.lastTap = now
	return m
}

func (m Model) openForm(index int) Model {
	d := engine.DefaultTimer().Draft()
	if index >= 0 {
		timers := m.eng.Timers()
		if index >= len(timers) {
			return m
		}
		d = timers[index].Draft()
	}
	m.form = newFormState(index, d)
	m.formReturn = m.mode
	m.mode = ViewForm
	m.confirmDelete = false
	return m
}

func (m Model) submitForm() Model {
	if m.form == nil {
		return m
	}
	d, err := m.form.Draft()
	if err != nil {
		m.form.err = err
		return m
	}
	if m.form.editIndex >= 0 {
		m.eng.EditTimer(m.form.editIndex, d)
		m.Message = "Saved " + d.Title
	} else {
		m.eng.CreateTimer(d)
		m.Message = "Created " + d.Title
	}
	m.form = nil
	m.mode = m.formReturn
	return m
}

func progressWidth(width int) int {
	if width <= 0 {
		return config.TargetProgressWidth
	}
	target := config.TargetProgressWidth
	if width < config.CompactModeThreshold {
		target = width / 2
	}
	if target < config.MinProgressWidth {
		target = config.MinProgressWidth
	}
	return target
}
