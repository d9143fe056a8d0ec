package tui

import (
	"fmt"

	"github.com/akyairhashvil/dialtimer/internal/config"
	"github.com/akyairhashvil/dialtimer/internal/models"
	"github.com/akyairhashvil/dialtimer/internal/util"
	"github.com/charmbracelet/x/ansi"
)

func truncateLabel(text string, max int) string {
	if max <= 0 {
		return ""
	}
	if ansi.StringWidth(text) <= max {
		return text
	}
	return ansi.Truncate(text, max, config.TruncationSuffix)
}

// FormatTimerStatus returns a short human-readable state for t.
func FormatTimerStatus(t models.Timer, running bool) string {
	switch {
	case running:
		return fmt.Sprintf("Running - %s left", util.FormatClock(t.RemainingTime))
	case t.RemainingTime == 0:
		return "Done"
	case t.RemainingTime < t.TotalDuration:
		return fmt.Sprintf("Paused - %s left", util.FormatClock(t.RemainingTime))
	default:
		return "Ready"
	}
}

// FormatTimerCount formats the number of timers for the header.
func FormatTimerCount(selected, total int) string {
	if total == 0 {
		return "No timers"
	}
	return fmt.Sprintf("%d/%d", selected+1, total)
}
