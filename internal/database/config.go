package database

import (
	"fmt"

	"skyvoyager/internal/config"
)

// Config holds database configuration
type Config struct {
	Driver      string
	SQLitePath  string
	PostgresDSN string
	MigrateURL  string
}

// NewConfig derives the database configuration from the application config.
// Only the sqlite and postgres store drivers use a database.
func NewConfig(cfg *config.Config) (*Config, error) {
	switch cfg.StoreDriver {
	case config.StoreDriverSQLite:
		return &Config{Driver: cfg.StoreDriver, SQLitePath: cfg.SQLitePath}, nil
	case config.StoreDriverPostgres:
		return &Config{
			Driver:      cfg.StoreDriver,
			PostgresDSN: cfg.PostgresDSN(),
			MigrateURL:  cfg.PostgresURL(),
		}, nil
	default:
		return nil, fmt.Errorf("store driver %q does not use a database", cfg.StoreDriver)
	}
}
