// Package output formats command line output: colored status lines and
// aligned tables.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/akyairhashvil/dialtimer/internal/models"
)

// UI writes user facing messages to Out and warnings to ErrOut.
type UI struct {
	Verbose bool
	Out     io.Writer
	ErrOut  io.Writer
}

// New creates a UI with default stdout/stderr writers.
func New() *UI {
	return &UI{
		Out:    os.Stdout,
		ErrOut: os.Stderr,
	}
}

var (
	infoPrefix    = color.New(color.FgHiBlue).Sprint("i")
	successPrefix = color.New(color.FgHiGreen).Sprint("✓")
	warningPrefix = color.New(color.FgHiYellow).Sprint("⚠")
	errorPrefix   = color.New(color.FgHiRed).Sprint("✗")
	verbosePrefix = color.New(color.FgHiBlue).Sprint("  →")
	cyan          = color.New(color.FgHiCyan).SprintFunc()
	green         = color.New(color.FgHiGreen).SprintFunc()
	yellow        = color.New(color.FgHiYellow).SprintFunc()
	bold          = color.New(color.Bold).SprintFunc()
)

var paletteAttr = map[models.ColorTag]color.Attribute{
	models.ColorBlue:   color.FgHiBlue,
	models.ColorRed:    color.FgHiRed,
	models.ColorOrange: color.FgYellow,
	models.ColorYellow: color.FgHiYellow,
	models.ColorGreen:  color.FgHiGreen,
	models.ColorTeal:   color.FgCyan,
	models.ColorPurple: color.FgMagenta,
	models.ColorPink:   color.FgHiMagenta,
	models.ColorGray:   color.FgHiBlack,
}

// Cyan returns a cyan-colored string.
func Cyan(s string) string { return cyan(s) }

// Bold returns s in bold.
func Bold(s string) string { return bold(s) }

// Swatch renders a colored dot followed by the color name.
func Swatch(c models.ColorTag) string {
	attr, ok := paletteAttr[c]
	if !ok {
		return string(c)
	}
	return color.New(attr).Sprint("●") + " " + string(c)
}

// StateColor colors a timer state label.
func StateColor(state string) string {
	switch state {
	case "ready":
		return green(state)
	case "paused":
		return yellow(state)
	case "done":
		return cyan(state)
	default:
		return state
	}
}

func (u *UI) Info(format string, a ...any) {
	fmt.Fprintf(u.Out, "%s %s\n", infoPrefix, fmt.Sprintf(format, a...))
}

func (u *UI) Success(format string, a ...any) {
	fmt.Fprintf(u.Out, "%s %s\n", successPrefix, fmt.Sprintf(format, a...))
}

func (u *UI) Warning(format string, a ...any) {
	fmt.Fprintf(u.ErrOut, "%s %s\n", warningPrefix, fmt.Sprintf(format, a...))
}

func (u *UI) Error(format string, a ...any) {
	fmt.Fprintf(u.ErrOut, "%s %s\n", errorPrefix, fmt.Sprintf(format, a...))
}

func (u *UI) VerboseLog(format string, a ...any) {
	if u.Verbose {
		fmt.Fprintf(u.Out, "%s %s\n", verbosePrefix, fmt.Sprintf(format, a...))
	}
}

// Table creates a new tablewriter configured with consistent styling.
func (u *UI) Table(headers []string) *tablewriter.Table {
	table := tablewriter.NewTable(u.Out,
		tablewriter.WithHeaderAlignment(tw.AlignLeft),
		tablewriter.WithRowAlignment(tw.AlignLeft),
		tablewriter.WithRendition(tw.Rendition{
			Borders: tw.BorderNone,
			Settings: tw.Settings{
				Lines:      tw.LinesNone,
				Separators: tw.SeparatorsNone,
			},
		}),
		tablewriter.WithPadding(tw.Padding{Left: "", Right: "  "}),
	)
	table.Header(headers)
	return table
}
