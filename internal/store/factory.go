// internal/store/factory.go
package store

import (
	"context"
	"fmt"

	"acadgrant/internal/common/config"
	"acadgrant/internal/common/database"
	"acadgrant/internal/common/logger"
)

// Open builds the backend named by cfg.Store.Backend and checks it is
// reachable.
func Open(ctx context.Context, cfg *config.Config, log logger.Logger) (KeyValueStore, error) {
	backend := cfg.Store.Backend
	if backend == "" {
		backend = config.BackendMemory
	}

	var kv KeyValueStore
	switch backend {
	case config.BackendMemory:
		kv = NewMemoryStore()

	case config.BackendRedis:
		client, err := database.NewRedis(cfg.Database.Redis)
		if err != nil {
			return nil, err
		}
		if err := client.Ping(ctx); err != nil {
			client.Close()
			return nil, err
		}
		kv = NewRedisStore(client.Client, cfg.Store.KeyPrefix)

	case config.BackendBadger:
		db, err := database.NewBadger(cfg.Database.Badger, log)
		if err != nil {
			return nil, err
		}
		kv = NewBadgerStore(db)

	case config.BackendPostgres:
		client, err := database.NewPostgres(cfg.Database.Postgres)
		if err != nil {
			return nil, err
		}
		if err := client.Ping(ctx); err != nil {
			client.Close()
			return nil, fmt.Errorf("postgres ping failed: %w", err)
		}
		pg := NewPostgresStore(client.DB, cfg.Store.KeyPrefix)
		if err := pg.EnsureSchema(ctx); err != nil {
			pg.Close()
			return nil, err
		}
		kv = pg

	default:
		return nil, fmt.Errorf("unsupported store backend %q", backend)
	}

	log.Info("Record store opened", map[string]interface{}{
		"backend": backend,
		"prefix":  cfg.Store.KeyPrefix,
	})
	return Instrument(kv, backend), nil
}
