package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"pet-health-log/internal/adapters/storage/memory"
	pg "pet-health-log/internal/adapters/storage/postgres"
	"pet-health-log/internal/adapters/storage/rest"
	"pet-health-log/internal/adapters/storage/sqlite"
	"pet-health-log/internal/config"
	"pet-health-log/internal/platform/logger"
	"pet-health-log/internal/ports/store"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// OpenStore arma el store.Client según STORE_BACKEND.
// El Closer libera la conexión (no-op para memory/rest).
func OpenStore(ctx context.Context, cfg *config.Config, log logger.Logger) (store.Client, io.Closer, error) {
	if log == nil {
		log = logger.Nop()
	}
	log = log.With(map[string]any{"backend": cfg.StoreBackend})

	switch cfg.StoreBackend {
	case config.BackendMemory:
		st := memory.NewStore()
		if cfg.SeedDemo {
			if err := st.SeedDemo(time.Now()); err != nil {
				return nil, nil, fmt.Errorf("seed memory store: %w", err)
			}
		}
		log.Info("store ready", map[string]any{"seed_demo": cfg.SeedDemo})
		return st, nopCloser{}, nil

	case config.BackendPostgres:
		st, err := pg.OpenStore(cfg.DBDSN)
		if err != nil {
			return nil, nil, fmt.Errorf("open postgres: %w", err)
		}
		log.Info("store ready", nil)
		return st, st.DB(), nil

	case config.BackendSQLite:
		st, err := sqlite.Open(ctx, sqlite.Options{Path: cfg.SQLiteDBPath, Seed: cfg.SeedDemo})
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite: %w", err)
		}
		log.Info("store ready", map[string]any{"path": cfg.SQLiteDBPath, "seed_demo": cfg.SeedDemo})
		return st, st.DB(), nil

	case config.BackendREST:
		st, err := rest.New(rest.Config{
			BaseURL: cfg.StoreURL,
			APIKey:  cfg.StoreAPIKey,
			Timeout: cfg.StoreTimeout,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("open rest store: %w", err)
		}
		log.Info("store ready", map[string]any{"url": cfg.StoreURL})
		return st, nopCloser{}, nil

	default:
		return nil, nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
}
