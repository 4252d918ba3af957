package factory

import (
	"context"
	"fmt"

	"github.com/shopapp/shopapp-backend/internal/config"
	"github.com/shopapp/shopapp-backend/internal/store"
	"github.com/shopapp/shopapp-backend/internal/store/memstore"
	"github.com/shopapp/shopapp-backend/internal/store/postgres"
	"github.com/shopapp/shopapp-backend/internal/store/sqlite"
)

// NewStore selects the store driver based on cfg.DBDriver.
func NewStore(ctx context.Context, cfg *config.Config) (store.Store, error) {
	switch cfg.DBDriver {
	case "memory":
		return memstore.New(), nil
	case "sqlite":
		return sqlite.New(cfg.SQLitePath)
	case "postgres":
		db, err := postgres.Open(cfg.PostgresDSN)
		if err != nil {
			return nil, err
		}
		if err := postgres.Bootstrap(ctx, db); err != nil {
			_ = db.Close()
			return nil, err
		}
		return postgres.NewWithDB(db), nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER: %s", cfg.DBDriver)
	}
}
