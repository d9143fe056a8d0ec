package database

import (
	"context"
	"database/sql"
	"errors"
	"strconv"

	"github.com/akyairhashvil/dialtimer/internal/models"
	"github.com/akyairhashvil/dialtimer/internal/util"
)

// Load returns every stored timer in display order together with the
// persisted selection. A missing selection reads as zero.
func (d *Database) Load(ctx context.Context) ([]models.Timer, int, error) {
	rows, err := d.DB.QueryContext(ctx, `
		SELECT id, title, total_seconds, remaining_seconds, baseline_seconds, color,
			title_always_visible, ticks_always_visible, muted, repeat_enabled
		FROM timers
		ORDER BY position ASC`)
	if err != nil {
		return nil, 0, wrapTimerErr("load", "", err)
	}
	defer rows.Close()

	var timers []models.Timer
	for rows.Next() {
		var (
			t                                 models.Timer
			color                             string
			baseline                          sql.NullInt64
			titleVis, ticksVis, muted, repeat int
		)
		if err := rows.Scan(&t.ID, &t.Title, &t.TotalDuration, &t.RemainingTime, &baseline, &color,
			&titleVis, &ticksVis, &muted, &repeat); err != nil {
			return nil, 0, wrapTimerErr("scan", "", err)
		}
		t.UserBaseline = intFromNull(baseline)
		t.Color = models.ColorTag(color)
		t.TitleAlwaysVisible = util.IntToBool(titleVis)
		t.TicksAlwaysVisible = util.IntToBool(ticksVis)
		t.Muted = util.IntToBool(muted)
		t.RepeatEnabled = util.IntToBool(repeat)
		t.Normalize()
		timers = append(timers, t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, wrapTimerErr("load", "", err)
	}

	selected := 0
	raw, err := getSetting(ctx, d.DB, settingSelectedIndex)
	switch {
	case errors.Is(err, ErrNotFound):
	case err != nil:
		return nil, 0, err
	default:
		if n, convErr := strconv.Atoi(raw); convErr == nil {
			selected = n
		}
	}
	return timers, selected, nil
}

// Save replaces the stored list with timers and records selected.
func (d *Database) Save(ctx context.Context, timers []models.Timer, selected int) error {
	return d.WithTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM timers"); err != nil {
			return wrapTimerErr("clear", "", err)
		}
		stmt, err := tx.PrepareContext(ctx, `
			INSERT INTO timers (id, position, title, total_seconds, remaining_seconds, baseline_seconds, color,
				title_always_visible, ticks_always_visible, muted, repeat_enabled)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
		if err != nil {
			return wrapTimerErr("prepare", "", err)
		}
		defer stmt.Close()
		for i, t := range timers {
			if _, err := stmt.ExecContext(ctx, t.ID, i, t.Title, t.TotalDuration, t.RemainingTime,
				nullableInt(t.UserBaseline), string(t.Color),
				util.BoolToInt(t.TitleAlwaysVisible), util.BoolToInt(t.TicksAlwaysVisible),
				util.BoolToInt(t.Muted), util.BoolToInt(t.RepeatEnabled)); err != nil {
				return wrapTimerErr("save", t.ID, err)
			}
		}
		return setSetting(ctx, tx, settingSelectedIndex, strconv.Itoa(selected))
	})
}
