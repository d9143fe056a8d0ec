package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/akyairhashvil/dialtimer/internal/config"
	"github.com/akyairhashvil/dialtimer/internal/models"
	"github.com/akyairhashvil/dialtimer/internal/output"
	"github.com/akyairhashvil/dialtimer/internal/util"
)

// timerFlags holds the shared add/edit flags.
type timerFlags struct {
	title      string
	duration   string
	color      string
	showTitle  bool
	showTicks  bool
	muted      bool
	repeat     bool
	changedSet map[string]bool
}

var (
	addFlags  timerFlags
	editFlags timerFlags
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List timers",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return listRun(cmd.Context())
	},
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a timer and select it",
	Example: `  dialtimer add --title Tea --duration 3
  dialtimer add --title Focus --duration 25m --color purple --repeat`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		addFlags.changedSet = changedFlags(cmd)
		return addRun(cmd.Context(), addFlags)
	},
}

var editCmd = &cobra.Command{
	Use:   "edit <timer>",
	Short: "Change a timer (by list number or id prefix)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		editFlags.changedSet = changedFlags(cmd)
		return editRun(cmd.Context(), args[0], editFlags)
	},
}

var rmCmd = &cobra.Command{
	Use:     "rm <timer>",
	Aliases: []string{"delete"},
	Short:   "Delete a timer",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return rmRun(cmd.Context(), args[0])
	},
}

var selectCmd = &cobra.Command{
	Use:   "select <timer>",
	Short: "Select the timer shown on the dial",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return selectRun(cmd.Context(), args[0])
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset the selected timer to its last set duration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return resetRun(cmd.Context())
	},
}

func init() {
	for _, c := range []struct {
		cmd *cobra.Command
		f   *timerFlags
	}{{addCmd, &addFlags}, {editCmd, &editFlags}} {
		c.cmd.Flags().StringVarP(&c.f.title, "title", "t", "", "Timer title")
		c.cmd.Flags().StringVarP(&c.f.duration, "duration", "d", "", "Duration: minutes or Go syntax (25m, 1h30m, 90s)")
		c.cmd.Flags().StringVarP(&c.f.color, "color", "c", "", "Color: "+paletteNames())
		c.cmd.Flags().BoolVar(&c.f.showTitle, "show-title", false, "Always show the title on the dial")
		c.cmd.Flags().BoolVar(&c.f.showTicks, "show-ticks", false, "Always show tick marks")
		c.cmd.Flags().BoolVar(&c.f.muted, "mute", false, "Silence sounds for this timer")
		c.cmd.Flags().BoolVar(&c.f.repeat, "repeat", false, "Restart automatically when finished")
	}
	rootCmd.AddCommand(listCmd, addCmd, editCmd, rmCmd, selectCmd, resetCmd)
}

func changedFlags(cmd *cobra.Command) map[string]bool {
	out := make(map[string]bool)
	for _, name := range []string{"title", "duration", "color", "show-title", "show-ticks", "mute", "repeat"} {
		if cmd.Flags().Changed(name) {
			out[name] = true
		}
	}
	return out
}

func paletteNames() string {
	names := make([]string, len(models.Palette))
	for i, c := range models.Palette {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}

// apply overlays the changed flags on d.
func (f timerFlags) apply(d models.Draft) (models.Draft, error) {
	if f.changedSet["title"] {
		title := strings.TrimSpace(f.title)
		if title == "" {
			return d, fmt.Errorf("title must not be empty")
		}
		if len([]rune(title)) > config.MaxTitleLength {
			return d, fmt.Errorf("title longer than %d characters", config.MaxTitleLength)
		}
		d.Title = title
	}
	if f.changedSet["duration"] {
		secs, err := util.ParseDuration(f.duration)
		if err != nil {
			return d, err
		}
		if secs <= 0 || secs > config.MaxDurationMinutes*60 {
			return d, fmt.Errorf("duration must be between 1s and %s", util.FormatDuration(config.MaxDurationMinutes*60))
		}
		d.TotalDuration = secs
	}
	if f.changedSet["color"] {
		c, ok := models.ParseColorTag(strings.ToLower(f.color))
		if !ok {
			return d, fmt.Errorf("unknown color %q (want one of %s)", f.color, paletteNames())
		}
		d.Color = c
	}
	if f.changedSet["show-title"] {
		d.Flags.TitleAlwaysVisible = f.showTitle
	}
	if f.changedSet["show-ticks"] {
		d.Flags.TicksAlwaysVisible = f.showTicks
	}
	if f.changedSet["mute"] {
		d.Flags.Muted = f.muted
	}
	if f.changedSet["repeat"] {
		d.Flags.RepeatEnabled = f.repeat
	}
	return d, nil
}

// resolveTimer accepts a 1-based list number or a unique id prefix.
func resolveTimer(timers []models.Timer, ref string) (int, error) {
	ref = strings.TrimSpace(ref)
	if n, err := strconv.Atoi(ref); err == nil {
		if n < 1 || n > len(timers) {
			return -1, fmt.Errorf("no timer number %d (have %d)", n, len(timers))
		}
		return n - 1, nil
	}
	found := -1
	for i, t := range timers {
		if ref != "" && strings.HasPrefix(t.ID, ref) {
			if found >= 0 {
				return -1, fmt.Errorf("timer id %q is ambiguous", ref)
			}
			found = i
		}
	}
	if found < 0 {
		return -1, fmt.Errorf("no timer matches %q", ref)
	}
	return found, nil
}

func timerState(t models.Timer) string {
	switch {
	case t.RemainingTime == 0:
		return "done"
	case t.RemainingTime < t.TotalDuration:
		return "paused"
	default:
		return "ready"
	}
}

func flagLabels(f models.Flags) string {
	var parts []string
	if f.TitleAlwaysVisible {
		parts = append(parts, "title")
	}
	if f.TicksAlwaysVisible {
		parts = append(parts, "ticks")
	}
	if f.Muted {
		parts = append(parts, "muted")
	}
	if f.RepeatEnabled {
		parts = append(parts, "repeat")
	}
	return strings.Join(parts, ",")
}

func listRun(ctx context.Context) error {
	a, err := openApp(ctx, cfg, appOptions{})
	if err != nil {
		return err
	}
	defer a.Close()

	table := ui.Table([]string{"", "#", "Title", "Color", "Total", "Remaining", "State", "Flags", "ID"})
	return renderRows(table, timerRows(a.eng.Timers(), a.eng.SelectedIndex()))
}

// rowTable is the part of a tablewriter table the list commands use.
type rowTable interface {
	Append(rows ...interface{}) error
	Render() error
}

func renderRows(table rowTable, rows [][]string) error {
	for _, r := range rows {
		if err := table.Append(r); err != nil {
			return fmt.Errorf("append row: %w", err)
		}
	}
	return table.Render()
}

func timerRows(timers []models.Timer, selected int) [][]string {
	rows := make([][]string, 0, len(timers))
	for i, t := range timers {
		mark := ""
		if i == selected {
			mark = output.Cyan("▶")
		}
		rows = append(rows, []string{
			mark,
			strconv.Itoa(i + 1),
			t.Title,
			output.Swatch(t.Color),
			util.FormatClock(t.TotalDuration),
			util.FormatClock(t.RemainingTime),
			output.StateColor(timerState(t)),
			flagLabels(t.Flags),
			shortID(t.ID),
		})
	}
	return rows
}

func addRun(ctx context.Context, f timerFlags) error {
	if !f.changedSet["duration"] {
		return fmt.Errorf("--duration is required")
	}
	d := models.Draft{Title: config.DefaultTitle, Color: models.ColorTag(config.DefaultColor)}
	d, err := f.apply(d)
	if err != nil {
		return err
	}

	a, err := openApp(ctx, cfg, appOptions{})
	if err != nil {
		return err
	}
	defer a.Close()

	id := a.eng.CreateTimer(d)
	ui.Success("Created %s (%s, %s)", output.Bold(d.Title), util.FormatDuration(d.TotalDuration), shortID(id))
	return nil
}

func editRun(ctx context.Context, ref string, f timerFlags) error {
	if len(f.changedSet) == 0 {
		return fmt.Errorf("nothing to change; pass at least one flag")
	}
	a, err := openApp(ctx, cfg, appOptions{})
	if err != nil {
		return err
	}
	defer a.Close()

	timers := a.eng.Timers()
	i, err := resolveTimer(timers, ref)
	if err != nil {
		return err
	}
	d, err := f.apply(timers[i].Draft())
	if err != nil {
		return err
	}
	a.eng.EditTimer(i, d)
	ui.Success("Updated %s", output.Bold(d.Title))
	return nil
}

func rmRun(ctx context.Context, ref string) error {
	a, err := openApp(ctx, cfg, appOptions{})
	if err != nil {
		return err
	}
	defer a.Close()

	timers := a.eng.Timers()
	i, err := resolveTimer(timers, ref)
	if err != nil {
		return err
	}
	a.eng.DeleteTimer(i)
	ui.Success("Deleted %s", output.Bold(timers[i].Title))
	return nil
}

func selectRun(ctx context.Context, ref string) error {
	a, err := openApp(ctx, cfg, appOptions{})
	if err != nil {
		return err
	}
	defer a.Close()

	timers := a.eng.Timers()
	i, err := resolveTimer(timers, ref)
	if err != nil {
		return err
	}
	a.eng.SelectTimer(i)
	ui.Success("Selected %s", output.Bold(timers[i].Title))
	return nil
}

func resetRun(ctx context.Context) error {
	a, err := openApp(ctx, cfg, appOptions{})
	if err != nil {
		return err
	}
	defer a.Close()

	a.eng.Reset()
	if t, ok := a.eng.CurrentTimer(); ok {
		ui.Success("Reset %s to %s", output.Bold(t.Title), util.FormatClock(t.RemainingTime))
	}
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
