package database

import (
	"context"
	"fmt"

	"prospera-go-be/config"
)

// Backend is durable key/value storage for serialized state slices.
type Backend interface {
	// Load returns the raw value for key and whether it was present.
	Load(ctx context.Context, key string) ([]byte, bool, error)
	Save(ctx context.Context, key string, value []byte) error
	Close() error
}

// Open selects the backend named by the configuration.
func Open(cfg config.Config) (Backend, error) {
	switch cfg.StoreDriver {
	case config.DriverSQLite:
		return OpenSQLite(cfg.SQLitePath)
	case config.DriverPostgres:
		return OpenPostgres(cfg.DatabaseURL)
	case config.DriverMemory:
		return NewMemory(), nil
	}
	return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
}
