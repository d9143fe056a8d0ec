package tui

import (
	"github.com/akyairhashvil/dialtimer/internal/models"
	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	Name      string
	Base      lipgloss.Style
	Border    lipgloss.Color
	Header    lipgloss.Style
	Clock     lipgloss.Style
	Title     lipgloss.Style
	Track     lipgloss.Style
	TickMark  lipgloss.Style
	Input     lipgloss.Style
	Card      lipgloss.Style
	Flash     lipgloss.Style
	Error     lipgloss.Style
	Focused   lipgloss.Style
	Dim       lipgloss.Style
	Highlight lipgloss.Style
}

var Themes = map[string]Theme{
	"default": {
		Name:      "Default",
		Base:      lipgloss.NewStyle().Margin(0, 2),
		Border:    lipgloss.Color("63"),
		Header:    lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Clock:     lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
		Title:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Track:     lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		TickMark:  lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Input:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("205")).Padding(0, 1).Width(50),
		Card:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1),
		Flash:     lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("214")).Bold(true).Padding(0, 1),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		Focused:   lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
	},
	"dracula": {
		Name:      "Dracula",
		Base:      lipgloss.NewStyle().Margin(0, 2),
		Border:    lipgloss.Color("62"),
		Header:    lipgloss.NewStyle().Foreground(lipgloss.Color("50")).Bold(true),
		Clock:     lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
		Title:     lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		Track:     lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		TickMark:  lipgloss.NewStyle().Foreground(lipgloss.Color("141")),
		Input:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("50")).Padding(0, 1).Width(50),
		Card:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("60")).Padding(0, 1),
		Flash:     lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("215")).Bold(true).Padding(0, 1),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		Focused:   lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("62")),
	},
}

// CurrentTheme holds the currently active theme.
var CurrentTheme = Themes["default"]

func SetTheme(name string) {
	if t, ok := Themes[name]; ok {
		CurrentTheme = t
	}
}

// colorStyle renders text in the timer's palette color.
func colorStyle(c models.ColorTag) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex()))
}
