package database

import (
	"context"

	"github.com/akyairhashvil/dialtimer/internal/engine"
)

// SettingsRepository defines key/value setting operations.
type SettingsRepository interface {
	GetSetting(ctx context.Context, key string) (string, error)
	SetSetting(ctx context.Context, key, value string) error
}

// Repository combines the timer store with settings access.
type Repository interface {
	engine.Store
	SettingsRepository
	Close() error
}

var _ Repository = (*Database)(nil)
