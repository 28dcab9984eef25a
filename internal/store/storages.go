package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/dcms-sync/internal/config"
	"github.com/MKhiriev/dcms-sync/internal/logger"
)

// Storages groups the server-side repositories.
type Storages struct {
	CollectionRepository CollectionRepository
}

// NewStorages opens the server store selected by cfg.Driver. The postgres
// driver runs pending migrations before returning.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Str("driver", cfg.Driver).Msg("creating new storages...")

	var repo CollectionRepository

	switch cfg.Driver {
	case config.DriverMemory:
		repo = NewMemoryCollectionRepository(logger)

	case config.DriverPostgres:
		db, err := NewConnectPostgres(ctx, cfg.DB, logger)
		if err != nil {
			return nil, fmt.Errorf("postgres connection error: %w", err)
		}
		if err = db.Migrate(); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}
		repo = NewPostgresCollectionRepository(db, logger)

	case config.DriverRedis:
		client, err := NewConnectRedis(ctx, cfg.Redis.URL, logger)
		if err != nil {
			return nil, fmt.Errorf("redis connection error: %w", err)
		}
		repo = NewRedisCollectionRepository(client, logger)

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}

	return &Storages{CollectionRepository: repo}, nil
}

// Close releases the underlying connections.
func (s *Storages) Close() error {
	if s == nil || s.CollectionRepository == nil {
		return nil
	}
	return s.CollectionRepository.Close()
}
