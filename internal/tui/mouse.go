package tui

import (
	"github.com/akyairhashvil/dialtimer/internal/engine"
	tea "github.com/charmbracelet/bubbletea"
)

// handleMouse maps pointer events on the dial onto engine operations: a
// press on the rim starts a drag, motion updates it, release ends it. A
// press inside the rim is a tap.
func (m Model) handleMouse(msg tea.MouseMsg) Model {
	if m.mode != ViewDial {
		return m
	}
	g := m.dialGeometry()
	p := g.toDial(msg.X, msg.Y)
	center := engine.Point{}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m
		}
		switch {
		case g.onRing(p):
			m.eng.DragStart()
			m.eng.DragUpdate(center, p)
		case g.inFace(p):
			m = m.tap()
		}
	case tea.MouseActionMotion:
		if m.eng.IsDragging() {
			m.eng.DragUpdate(center, p)
		}
	case tea.MouseActionRelease:
		if m.eng.IsDragging() {
			m.eng.DragEnd()
		}
	}
	return m
}
