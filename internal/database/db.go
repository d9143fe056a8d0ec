package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/akyairhashvil/dialtimer/internal/logger"
	_ "github.com/mattn/go-sqlite3"
)

// Database wraps the sqlite handle holding the timer list.
type Database struct {
	DB     *sql.DB
	dbFile string
}

// Open opens (creating if needed) the database at path and applies the schema.
func Open(ctx context.Context, path string) (*Database, error) {
	if path == "" {
		return nil, &OpError{Op: "open", Resource: "database", Err: fmt.Errorf("empty path")}
	}
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, &OpError{Op: "open", Resource: "database", Err: err}
		}
	}
	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000&_foreign_keys=on")
	if err != nil {
		return nil, &OpError{Op: "open", Resource: "database", Err: err}
	}
	// sqlite serializes writers; one connection keeps :memory: databases shared.
	db.SetMaxOpenConns(1)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		if isNotADatabase(err) {
			return nil, &OpError{Op: "open", Resource: "database", Err: ErrDatabaseCorrupted}
		}
		return nil, &OpError{Op: "open", Resource: "database", Err: err}
	}
	d := &Database{DB: db, dbFile: path}
	if err := d.createTables(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := d.migrate(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	logger.Debugf("opened database %s", path)
	return d, nil
}

// Path returns the file the database was opened from.
func (d *Database) Path() string {
	return d.dbFile
}

// Close releases the underlying handle.
func (d *Database) Close() error {
	if d == nil || d.DB == nil {
		return nil
	}
	return d.DB.Close()
}

// WithTx runs fn inside a transaction, rolling back when fn fails.
func (d *Database) WithTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := d.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			logger.Warnf("rollback failed: %v", rbErr)
		}
		return err
	}
	return tx.Commit()
}

func (d *Database) createTables(ctx context.Context) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS timers (
			id TEXT PRIMARY KEY,
			position INTEGER NOT NULL,
			title TEXT NOT NULL DEFAULT '',
			total_seconds INTEGER NOT NULL DEFAULT 0,
			remaining_seconds INTEGER NOT NULL DEFAULT 0,
			baseline_seconds INTEGER,
			color TEXT NOT NULL DEFAULT 'blue',
			title_always_visible INTEGER NOT NULL DEFAULT 0,
			ticks_always_visible INTEGER NOT NULL DEFAULT 0,
			muted INTEGER NOT NULL DEFAULT 0
		);`,
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT
		);`,
	}
	for _, query := range queries {
		if _, err := d.DB.ExecContext(ctx, query); err != nil {
			return &OpError{Op: "create", Resource: "schema", Err: err}
		}
	}
	return nil
}

// migrate adds columns introduced after the first schema. Each step is
// idempotent so it can run on every open.
func (d *Database) migrate(ctx context.Context) error {
	columns := []struct {
		name string
		ddl  string
	}{
		{"repeat_enabled", "ALTER TABLE timers ADD COLUMN repeat_enabled INTEGER NOT NULL DEFAULT 0"},
	}
	for _, c := range columns {
		ok, err := d.hasColumn(ctx, "timers", c.name)
		if err != nil {
			return &OpError{Op: "migrate", Resource: "schema", Err: err}
		}
		if ok {
			continue
		}
		if _, err := d.DB.ExecContext(ctx, c.ddl); err != nil {
			return &OpError{Op: "migrate", Resource: "schema", Err: err}
		}
	}
	if _, err := d.DB.ExecContext(ctx, "CREATE INDEX IF NOT EXISTS idx_timers_position ON timers(position)"); err != nil {
		return &OpError{Op: "migrate", Resource: "schema", Err: err}
	}
	return nil
}

func (d *Database) hasColumn(ctx context.Context, table, column string) (bool, error) {
	rows, err := d.DB.QueryContext(ctx, "PRAGMA table_info("+table+")")
	if err != nil {
		return false, err
	}
	defer rows.Close()
	for rows.Next() {
		var (
			cid       int
			name      string
			colType   string
			notNull   int
			dfltValue sql.NullString
			pk        int
		)
		if err := rows.Scan(&cid, &name, &colType, &notNull, &dfltValue, &pk); err != nil {
			return false, err
		}
		if strings.EqualFold(name, column) {
			return true, nil
		}
	}
	return false, rows.Err()
}

func isNotADatabase(err error) bool {
	return err != nil && strings.Contains(err.Error(), "file is not a database")
}
