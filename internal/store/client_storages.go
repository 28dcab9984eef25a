// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/dcms-sync/internal/config"
	"github.com/MKhiriev/dcms-sync/internal/logger"
)

// NewClientStorages opens the device-local [LocalStorage] selected by
// cfg.Driver. The SQLite driver creates the database file when missing and
// runs pending migrations.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (LocalStorage, error) {
	logger.Info().Str("driver", cfg.Driver).Str("path", cfg.Path).Msg("creating local storage...")

	switch cfg.Driver {
	case config.LocalDriverSQLite:
		db, err := NewConnectSQLite(ctx, cfg.Path, logger)
		if err != nil {
			return nil, fmt.Errorf("sqlite connection error: %w", err)
		}
		if err = db.Migrate(); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}
		return NewSQLiteLocalStorage(db, logger), nil

	case config.LocalDriverBolt:
		return NewBoltLocalStorage(cfg.Path, logger)

	case config.LocalDriverMemory:
		return NewMemoryLocalStorage(), nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
}
