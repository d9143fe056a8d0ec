package engine

import (
	"context"

	"github.com/akyairhashvil/dialtimer/internal/models"
)

// Store persists the timer list and selection. Save failures are logged by
// the engine and otherwise ignored.
//
//go:generate mockgen -source=store.go -destination=mock_store_test.go -package=engine
type Store interface {
	Load(ctx context.Context) ([]models.Timer, int, error)
	Save(ctx context.Context, timers []models.Timer, selected int) error
}
