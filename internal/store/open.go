package store

import (
	"context"
	"fmt"

	"skyvoyager/internal/config"
	"skyvoyager/internal/database"
	"skyvoyager/internal/logger"
)

// Open builds the store selected by cfg.StoreDriver. The returned close
// function releases the backing connection and is never nil.
func Open(ctx context.Context, cfg *config.Config) (Store, func() error, error) {
	noop := func() error { return nil }

	switch cfg.StoreDriver {
	case config.StoreDriverMemory:
		logger.Get().Info("Using in-memory store")
		return NewMemoryStore(), noop, nil

	case config.StoreDriverSQLite, config.StoreDriverPostgres:
		dbConfig, err := database.NewConfig(cfg)
		if err != nil {
			return nil, noop, err
		}
		mgr, err := database.NewManager(dbConfig)
		if err != nil {
			return nil, noop, err
		}
		if err := mgr.Migrate(); err != nil {
			_ = mgr.Close()
			return nil, noop, fmt.Errorf("failed to run database migrations: %w", err)
		}
		logger.Get().Infow("Using SQL store", "driver", cfg.StoreDriver)
		return NewGormStore(mgr.DB()), mgr.Close, nil

	case config.StoreDriverRedis:
		client, err := DialRedis(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return nil, noop, err
		}
		logger.Get().Infow("Using Redis store", "addr", cfg.RedisAddr, "prefix", cfg.RedisPrefix)
		return NewRedisStore(client, cfg.RedisPrefix), client.Close, nil

	default:
		return nil, noop, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}
