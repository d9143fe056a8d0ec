package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

var (
	mainViews = []ViewMode{ViewDial, ViewSwitch}
	formView  = []ViewMode{ViewForm}
)

func defaultRegistry() *HandlerRegistry {
	r := NewHandlerRegistry()

	r.Register(KeyBinding{
		Binding:   key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "start/pause")),
		Handler:   handleTap,
		ViewModes: mainViews,
	})
	r.Register(KeyBinding{
		Binding:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Handler:   handleReset,
		ViewModes: mainViews,
	})
	r.Register(KeyBinding{
		Binding:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "timers")),
		Handler:   handleToggleSwitch,
		ViewModes: []ViewMode{ViewDial},
	})
	r.Register(KeyBinding{
		Binding:   key.NewBinding(key.WithKeys("tab", "enter", "esc"), key.WithHelp("tab", "dial")),
		Handler:   handleToggleSwitch,
		ViewModes: []ViewMode{ViewSwitch},
	})
	r.Register(KeyBinding{
		Binding:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/→", "select")),
		Handler:   handleSelectPrev,
		ViewModes: mainViews,
	})
	r.Register(KeyBinding{
		Binding:   key.NewBinding(key.WithKeys("right", "l")),
		Handler:   handleSelectNext,
		ViewModes: mainViews,
	})
	r.Register(KeyBinding{
		Binding:   key.NewBinding(key.WithKeys("K"), key.WithHelp("K/J", "move")),
		Handler:   handleMoveUp,
		ViewModes: []ViewMode{ViewSwitch},
	})
	r.Register(KeyBinding{
		Binding:   key.NewBinding(key.WithKeys("J")),
		Handler:   handleMoveDown,
		ViewModes: []ViewMode{ViewSwitch},
	})
	r.Register(KeyBinding{
		Binding:   key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new")),
		Handler:   handleNew,
		ViewModes: mainViews,
	})
	r.Register(KeyBinding{
		Binding:   key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		Handler:   handleEdit,
		ViewModes: mainViews,
	})
	r.Register(KeyBinding{
		Binding:   key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "delete")),
		Handler:   handleDelete,
		ViewModes: []ViewMode{ViewSwitch},
	})
	r.Register(KeyBinding{
		Binding:   key.NewBinding(key.WithKeys("y")),
		Handler:   handleConfirmDelete,
		ViewModes: []ViewMode{ViewSwitch},
		Priority:  10,
	})
	r.Register(KeyBinding{
		Binding:   key.NewBinding(key.WithKeys("t")),
		Handler:   handleCycleTheme,
		ViewModes: mainViews,
	})
	r.Register(KeyBinding{
		Binding:   key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		Handler:   handleQuit,
		ViewModes: mainViews,
	})

	r.Register(KeyBinding{
		Binding:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		Handler:   handleFormSubmit,
		ViewModes: formView,
	})
	r.Register(KeyBinding{
		Binding:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Handler:   handleFormCancel,
		ViewModes: formView,
	})
	r.Register(KeyBinding{
		Binding:   key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next field")),
		Handler:   handleFormNext,
		ViewModes: formView,
	})
	r.Register(KeyBinding{
		Binding:   key.NewBinding(key.WithKeys("shift+tab", "up")),
		Handler:   handleFormPrev,
		ViewModes: formView,
	})
	r.Register(KeyBinding{
		Binding:   key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle")),
		Handler:   handleFormToggle,
		ViewModes: formView,
	})
	r.Register(KeyBinding{
		Binding:   key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←/→", "color")),
		Handler:   handleFormColor,
		ViewModes: formView,
	})
	return r
}

func handleTap(m Model, _ tea.KeyMsg) (Model, tea.Cmd, bool) {
	m.eng.StartOrPause()
	return m, nil, true
}

func handleReset(m Model, _ tea.KeyMsg) (Model, tea.Cmd, bool) {
	m.eng.Reset()
	return m, nil, true
}

func handleToggleSwitch(m Model, _ tea.KeyMsg) (Model, tea.Cmd, bool) {
	m.confirmDelete = false
	if m.mode == ViewSwitch {
		m.mode = ViewDial
	} else {
		m.mode = ViewSwitch
	}
	return m, nil, true
}

func handleSelectPrev(m Model, _ tea.KeyMsg) (Model, tea.Cmd, bool) {
	m.confirmDelete = false
	m.eng.SelectTimer(m.eng.SelectedIndex() - 1)
	return m, nil, true
}

func handleSelectNext(m Model, _ tea.KeyMsg) (Model, tea.Cmd, bool) {
	m.confirmDelete = false
	m.eng.SelectTimer(m.eng.SelectedIndex() + 1)
	return m, nil, true
}

func handleMoveUp(m Model, _ tea.KeyMsg) (Model, tea.Cmd, bool) {
	i := m.eng.SelectedIndex()
	m.eng.ReorderTimer(i, i-1)
	return m, nil, true
}

func handleMoveDown(m Model, _ tea.KeyMsg) (Model, tea.Cmd, bool) {
	i := m.eng.SelectedIndex()
	m.eng.ReorderTimer(i, i+1)
	return m, nil, true
}

func handleNew(m Model, _ tea.KeyMsg) (Model, tea.Cmd, bool) {
	return m.openForm(-1), nil, true
}

func handleEdit(m Model, _ tea.KeyMsg) (Model, tea.Cmd, bool) {
	return m.openForm(m.eng.SelectedIndex()), nil, true
}

func handleDelete(m Model, _ tea.KeyMsg) (Model, tea.Cmd, bool) {
	if len(m.eng.Timers()) <= 1 {
		m.Message = "Cannot delete the last timer"
		return m, nil, true
	}
	m.confirmDelete = true
	return m, nil, true
}

func handleConfirmDelete(m Model, _ tea.KeyMsg) (Model, tea.Cmd, bool) {
	if !m.confirmDelete {
		return m, nil, false
	}
	m.confirmDelete = false
	m.eng.DeleteTimer(m.eng.SelectedIndex())
	m.Message = "Timer deleted"
	return m, nil, true
}

func handleCycleTheme(m Model, _ tea.KeyMsg) (Model, tea.Cmd, bool) {
	if CurrentTheme.Name == Themes["default"].Name {
		SetTheme("dracula")
	} else {
		SetTheme("default")
	}
	return m, nil, true
}

func handleQuit(m Model, _ tea.KeyMsg) (Model, tea.Cmd, bool) {
	m.eng.Close()
	return m, tea.Quit, true
}

func handleFormSubmit(m Model, _ tea.KeyMsg) (Model, tea.Cmd, bool) {
	return m.submitForm(), nil, true
}

func handleFormCancel(m Model, _ tea.KeyMsg) (Model, tea.Cmd, bool) {
	m.form = nil
	m.mode = m.formReturn
	return m, nil, true
}

func handleFormNext(m Model, _ tea.KeyMsg) (Model, tea.Cmd, bool) {
	if m.form == nil {
		return m, nil, false
	}
	return m, m.form.focusField(m.form.focus + 1), true
}

func handleFormPrev(m Model, _ tea.KeyMsg) (Model, tea.Cmd, bool) {
	if m.form == nil {
		return m, nil, false
	}
	return m, m.form.focusField(m.form.focus - 1), true
}

// handleFormToggle only claims space on flag rows so titles can contain spaces.
func handleFormToggle(m Model, _ tea.KeyMsg) (Model, tea.Cmd, bool) {
	if m.form == nil || !m.form.toggle() {
		return m, nil, false
	}
	return m, nil, true
}

func handleFormColor(m Model, msg tea.KeyMsg) (Model, tea.Cmd, bool) {
	if m.form == nil || m.form.focus != fieldColor {
		return m, nil, false
	}
	if msg.String() == "left" {
		m.form.cycleColor(-1)
	} else {
		m.form.cycleColor(1)
	}
	return m, nil, true
}
