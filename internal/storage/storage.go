// Package storage picks the persistence gateway named by the configuration.
package storage

import (
	"context"
	"fmt"

	"github.com/AmanBeast/Sotre-Ledgger/internal/config"
	interfaces "github.com/AmanBeast/Sotre-Ledgger/internal/interfaces"
	"github.com/AmanBeast/Sotre-Ledgger/internal/storage/memory"
	"github.com/AmanBeast/Sotre-Ledgger/internal/storage/postgres"
	"github.com/AmanBeast/Sotre-Ledgger/internal/storage/sqlite"
)

func Open(ctx context.Context, cfg *config.Config) (interfaces.Gateway, error) {
	switch cfg.StorageDriver {
	case "memory":
		return memory.NewMemoryGateway(), nil
	case "sqlite", "":
		return sqlite.Open(ctx, cfg.SQLitePath)
	case "postgres":
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is not set")
		}
		return postgres.Open(ctx, cfg.DatabaseURL)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}
