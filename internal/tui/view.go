package tui

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/dialtimer/internal/config"
	"github.com/akyairhashvil/dialtimer/internal/models"
	"github.com/akyairhashvil/dialtimer/internal/util"
	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	theme := CurrentTheme
	var sections []string

	switch m.mode {
	case ViewForm:
		if m.form != nil {
			sections = append(sections, m.form.view())
		}
	case ViewSwitch:
		sections = append(sections, m.renderHeader(), "", m.renderSwitch())
	default:
		sections = append(sections, m.renderHeader(), "", m.renderDialView())
	}

	if m.flash != "" {
		sections = append(sections, "", theme.Flash.Render(m.flash))
	}
	if m.Message != "" {
		sections = append(sections, "", theme.Highlight.Render(m.Message))
	}
	if m.confirmDelete {
		sections = append(sections, "", theme.Error.Render("Delete selected timer? [y] to confirm"))
	}
	sections = append(sections, "", m.keys.HelpForView(m.help, m.mode))
	return theme.Base.Render(strings.Join(sections, "\n"))
}

func (m Model) renderHeader() string {
	theme := CurrentTheme
	timers := m.eng.Timers()
	label := fmt.Sprintf("%s  %s", config.AppName, FormatTimerCount(m.eng.SelectedIndex(), len(timers)))
	if m.width >= config.CompactModeThreshold {
		label += theme.Dim.Render("  v" + versionLabel())
	}
	return theme.Header.Render(label)
}

func (m Model) renderDialView() string {
	t, ok := m.eng.CurrentTimer()
	if !ok {
		return CurrentTheme.Dim.Render("No timer selected")
	}
	running := m.eng.IsRunning()
	g := m.dialGeometry()
	dial := renderDial(g, dialState{
		timer:    t,
		progress: m.eng.CurrentProgress(),
		running:  running,
		dragging: m.eng.IsDragging(),
	})

	bar := m.progress
	bar.FullColor = t.Color.Hex()
	status := FormatTimerStatus(t, running)
	if t.RepeatEnabled {
		status += "  ↻"
	}
	if t.Muted {
		status += "  muted"
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		dial,
		"",
		bar.ViewAs(t.Progress()),
		CurrentTheme.Dim.Render(status),
	)
}

// renderSwitch shows a window of cards around the selected timer.
func (m Model) renderSwitch() string {
	theme := CurrentTheme
	timers := m.eng.Timers()
	selected := m.eng.SelectedIndex()
	running := m.eng.IsRunning()
	if len(timers) == 0 {
		return theme.Dim.Render("No timers")
	}

	start, end := switchWindow(len(timers), selected, config.MaxSwitchCards)
	cardWidth := 18
	if m.width > 0 && m.width < config.CompactModeThreshold {
		cardWidth = 12
	}

	cards := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		cards = append(cards, renderCard(timers[i], i == selected, running && i == selected, cardWidth))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, cards...)
	if start > 0 {
		row = theme.Dim.Render("‹ ") + row
	}
	if end < len(timers) {
		row += theme.Dim.Render(" ›")
	}
	return row
}

func renderCard(t models.Timer, selected, running bool, width int) string {
	theme := CurrentTheme
	style := theme.Card.Width(width)
	if selected {
		style = style.BorderForeground(lipgloss.Color(t.Color.Hex()))
	}
	marker := colorStyle(t.Color).Render("●")
	if running {
		marker = colorStyle(t.Color).Render("▶")
	}
	title := truncateLabel(t.Title, width-2)
	body := fmt.Sprintf("%s %s\n%s", marker, title, util.FormatClock(t.RemainingTime))
	return style.Render(body)
}

// switchWindow picks at most max consecutive indices with selected inside.
func switchWindow(n, selected, max int) (int, int) {
	if max <= 0 || n <= max {
		return 0, n
	}
	start := selected - max/2
	if start < 0 {
		start = 0
	}
	if start+max > n {
		start = n - max
	}
	return start, start + max
}
