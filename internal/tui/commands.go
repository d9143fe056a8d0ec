package tui

import (
	"time"

	"github.com/akyairhashvil/dialtimer/internal/config"
	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg triggers a redraw. The countdown itself runs inside the engine.
type TickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(config.RedrawInterval, func(t time.Time) tea.Msg { return TickMsg(t) })
}
