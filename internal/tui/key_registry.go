package tui

import (
	"sort"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type KeyHandler func(m Model, msg tea.KeyMsg) (Model, tea.Cmd, bool)

type KeyBinding struct {
	Binding   key.Binding
	Handler   KeyHandler
	ViewModes []ViewMode
	Priority  int
}

func (b KeyBinding) AppliesToView(mode ViewMode) bool {
	if len(b.ViewModes) == 0 {
		return true
	}
	for _, v := range b.ViewModes {
		if v == mode {
			return true
		}
	}
	return false
}

type HandlerRegistry struct {
	bindings []KeyBinding
}

func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{}
}

func (r *HandlerRegistry) Register(b KeyBinding) {
	r.bindings = append(r.bindings, b)
	sort.SliceStable(r.bindings, func(i, j int) bool {
		return r.bindings[i].Priority > r.bindings[j].Priority
	})
}

func (r *HandlerRegistry) Handle(m Model, msg tea.KeyMsg) (Model, tea.Cmd, bool) {
	for _, b := range r.bindings {
		if !b.Binding.Enabled() || !b.AppliesToView(m.mode) {
			continue
		}
		if key.Matches(msg, b.Binding) {
			next, cmd, handled := b.Handler(m, msg)
			if handled {
				return next, cmd, true
			}
		}
	}
	return m, nil, false
}

func (r *HandlerRegistry) GetBindingsForView(mode ViewMode) []key.Binding {
	var out []key.Binding
	seen := make(map[string]bool)
	for _, b := range r.bindings {
		if !b.AppliesToView(mode) {
			continue
		}
		h := b.Binding.Help()
		if h.Key == "" || seen[h.Key] {
			continue
		}
		seen[h.Key] = true
		out = append(out, b.Binding)
	}
	return out
}

func (r *HandlerRegistry) HelpForView(h help.Model, mode ViewMode) string {
	return h.ShortHelpView(r.GetBindingsForView(mode))
}
