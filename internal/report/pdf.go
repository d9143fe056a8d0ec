// Package report renders printable summaries of the timer list.
package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/akyairhashvil/dialtimer/internal/config"
	"github.com/akyairhashvil/dialtimer/internal/models"
	"github.com/akyairhashvil/dialtimer/internal/util"
	"github.com/go-pdf/fpdf"
)

// WriteTimerSheet writes a one-page PDF listing every timer with its
// duration, remaining time and flags. The selected row is marked.
func WriteTimerSheet(w io.Writer, timers []models.Timer, selected int, generated time.Time) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Timers", true)
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, "Timers")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 10)
	pdf.SetTextColor(110, 110, 110)
	pdf.Cell(0, 8, "Generated "+generated.Format("2006-01-02 15:04"))
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(12)

	widths := []float64{8, 70, 28, 28, 24, 32}
	headers := []string{"", "Title", "Duration", "Remaining", "Progress", "Flags"}
	pdf.SetFont("Arial", "B", 11)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 8, h, "B", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 11)
	if len(timers) == 0 {
		pdf.Cell(0, 8, "No timers.")
		pdf.Ln(8)
	}
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	for i, t := range timers {
		r, g, b := t.Color.RGB()
		pdf.SetFillColor(r, g, b)
		x, y := pdf.GetX(), pdf.GetY()
		pdf.Rect(x+1.5, y+2, 4, 4, "F")
		pdf.SetX(x + widths[0])

		title := t.Title
		if i == selected {
			pdf.SetFont("Arial", "B", 11)
			title = "> " + title
		}
		pdf.CellFormat(widths[1], 8, tr(title), "", 0, "L", false, 0, "")
		pdf.SetFont("Arial", "", 11)
		pdf.CellFormat(widths[2], 8, util.FormatClock(t.TotalDuration), "", 0, "L", false, 0, "")
		pdf.CellFormat(widths[3], 8, util.FormatClock(t.RemainingTime), "", 0, "L", false, 0, "")
		pdf.CellFormat(widths[4], 8, fmt.Sprintf("%.0f%%", t.Progress()*100), "", 0, "L", false, 0, "")
		pdf.CellFormat(widths[5], 8, flagSummary(t.Flags), "", 0, "L", false, 0, "")
		pdf.Ln(-1)
	}

	pdf.Ln(6)
	pdf.SetFont("Arial", "B", 11)
	pdf.Cell(0, 8, fmt.Sprintf("Total: %d timer(s), %s", len(timers), util.FormatDuration(totalSeconds(timers))))
	pdf.Ln(8)

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render timer sheet: %w", err)
	}
	return nil
}

// ExportTimerSheet writes the sheet into dir (or the default reports
// directory when dir is empty) and returns the absolute file path.
func ExportTimerSheet(dir string, timers []models.Timer, selected int, generated time.Time) (string, error) {
	if dir == "" {
		dir = util.ReportsDir(config.AppName)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, fmt.Sprintf("timers_%s.pdf", generated.Format("2006-01-02_150405")))
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if err := WriteTimerSheet(f, timers, selected, generated); err != nil {
		_ = f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return path, nil
	}
	return abs, nil
}

func flagSummary(f models.Flags) string {
	out := ""
	add := func(on bool, s string) {
		if !on {
			return
		}
		if out != "" {
			out += " "
		}
		out += s
	}
	add(f.Muted, "muted")
	add(f.RepeatEnabled, "repeat")
	if out == "" {
		return "-"
	}
	return out
}

func totalSeconds(timers []models.Timer) int {
	sum := 0
	for _, t := range timers {
		sum += t.TotalDuration
	}
	return sum
}
