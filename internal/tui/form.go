package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/akyairhashvil/dialtimer/internal/config"
	"github.com/akyairhashvil/dialtimer/internal/models"
	"github.com/akyairhashvil/dialtimer/internal/util"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	fieldTitle = iota
	fieldDuration
	fieldColor
	fieldTitleVisible
	fieldTicksVisible
	fieldMuted
	fieldRepeat
	fieldCount
)

// FormState backs the create and edit screen.
type FormState struct {
	editIndex int // -1 when creating
	title     textinput.Model
	duration  textinput.Model
	color     int
	flags     models.Flags
	focus     int
	err       error
}

func newFormState(editIndex int, d models.Draft) *FormState {
	ti := textinput.New()
	ti.Placeholder = config.DefaultTitle
	ti.CharLimit = config.MaxTitleLength
	ti.Width = 40
	ti.SetValue(d.Title)

	di := textinput.New()
	di.Placeholder = "15m"
	di.CharLimit = 12
	di.Width = 12
	di.SetValue(formatDurationInput(d.TotalDuration))

	color := 0
	for i, c := range models.Palette {
		if c == d.Color {
			color = i
			break
		}
	}
	f := &FormState{
		editIndex: editIndex,
		title:     ti,
		duration:  di,
		color:     color,
		flags:     d.Flags,
	}
	f.focusField(fieldTitle)
	return f
}

// formatDurationInput renders seconds the way ParseDuration reads them back.
func formatDurationInput(seconds int) string {
	if seconds%60 == 0 {
		return strconv.Itoa(seconds / 60)
	}
	if seconds < 60 {
		return fmt.Sprintf("%ds", seconds)
	}
	return fmt.Sprintf("%dm%ds", seconds/60, seconds%60)
}

func (f *FormState) focusField(i int) tea.Cmd {
	f.focus = (i%fieldCount + fieldCount) % fieldCount
	f.title.Blur()
	f.duration.Blur()
	switch f.focus {
	case fieldTitle:
		return f.title.Focus()
	case fieldDuration:
		return f.duration.Focus()
	}
	return nil
}

func (f *FormState) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch f.focus {
	case fieldTitle:
		f.title, cmd = f.title.Update(msg)
	case fieldDuration:
		f.duration, cmd = f.duration.Update(msg)
	}
	return cmd
}

// toggle flips the focused flag and reports whether a flag row had focus.
func (f *FormState) toggle() bool {
	switch f.focus {
	case fieldTitleVisible:
		f.flags.TitleAlwaysVisible = !f.flags.TitleAlwaysVisible
	case fieldTicksVisible:
		f.flags.TicksAlwaysVisible = !f.flags.TicksAlwaysVisible
	case fieldMuted:
		f.flags.Muted = !f.flags.Muted
	case fieldRepeat:
		f.flags.RepeatEnabled = !f.flags.RepeatEnabled
	default:
		return false
	}
	return true
}

func (f *FormState) cycleColor(delta int) {
	n := len(models.Palette)
	f.color = ((f.color+delta)%n + n) % n
}

// Draft validates the inputs.
func (f *FormState) Draft() (models.Draft, error) {
	title := strings.TrimSpace(f.title.Value())
	if title == "" {
		title = config.DefaultTitle
	}
	secs, err := util.ParseDuration(f.duration.Value())
	if err != nil {
		return models.Draft{}, err
	}
	if secs <= 0 {
		return models.Draft{}, fmt.Errorf("duration must be positive")
	}
	if secs > config.MaxDurationMinutes*60 {
		return models.Draft{}, fmt.Errorf("duration exceeds %s", util.FormatDuration(config.MaxDurationMinutes*60))
	}
	return models.Draft{
		Title:         title,
		Color:         models.Palette[f.color],
		TotalDuration: secs,
		Flags:         f.flags,
	}, nil
}

func (f *FormState) view() string {
	theme := CurrentTheme
	heading := "New timer"
	if f.editIndex >= 0 {
		heading = "Edit timer"
	}
	label := func(i int, s string) string {
		if f.focus == i {
			return theme.Focused.Render("> " + s)
		}
		return theme.Dim.Render("  " + s)
	}
	check := func(on bool) string {
		if on {
			return "[x]"
		}
		return "[ ]"
	}

	var b strings.Builder
	b.WriteString(theme.Header.Render(heading) + "\n\n")
	b.WriteString(label(fieldTitle, "Title") + "\n")
	b.WriteString(theme.Input.Render(f.title.View()) + "\n")
	if n := len([]rune(f.title.Value())); n > config.TitleWarnLength {
		b.WriteString(theme.Dim.Render(fmt.Sprintf("  long titles are truncated on the dial (%d chars)", n)) + "\n")
	}
	b.WriteString(label(fieldDuration, "Duration") + "\n")
	b.WriteString(theme.Input.Width(20).Render(f.duration.View()) + "\n")

	swatches := make([]string, 0, len(models.Palette))
	for i, c := range models.Palette {
		mark := "●"
		if i == f.color {
			mark = "◉"
		}
		swatches = append(swatches, colorStyle(c).Render(mark))
	}
	b.WriteString(label(fieldColor, "Color  ") + strings.Join(swatches, " ") + "  " + string(models.Palette[f.color]) + "\n\n")

	b.WriteString(label(fieldTitleVisible, check(f.flags.TitleAlwaysVisible)+" Always show title") + "\n")
	b.WriteString(label(fieldTicksVisible, check(f.flags.TicksAlwaysVisible)+" Always show ticks") + "\n")
	b.WriteString(label(fieldMuted, check(f.flags.Muted)+" Muted") + "\n")
	b.WriteString(label(fieldRepeat, check(f.flags.RepeatEnabled)+" Repeat") + "\n")
	if f.err != nil {
		b.WriteString("\n" + theme.Error.Render(f.err.Error()) + "\n")
	}
	return b.String()
}
