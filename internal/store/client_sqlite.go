// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/dcms-sync/internal/logger"
	"github.com/MKhiriev/dcms-sync/models"
)

// sqliteLocalStorage keeps every collection array as one TEXT row keyed by
// its storage key.
type sqliteLocalStorage struct {
	db     *DB
	logger *logger.Logger
}

// NewSQLiteLocalStorage wraps an already migrated SQLite connection.
func NewSQLiteLocalStorage(db *DB, logger *logger.Logger) LocalStorage {
	return &sqliteLocalStorage{db: db, logger: logger}
}

func (s *sqliteLocalStorage) Read(ctx context.Context, c models.Collection) ([]models.Record, bool, error) {
	var data string
	err := s.db.QueryRowContext(ctx, getLocalCollection, c.StorageKey()).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "sqliteLocalStorage.Read").
			Str("key", c.StorageKey()).
			Msg("failed to read collection")
		return nil, false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	records, err := decodeStoredCollection(c, []byte(data))
	if err != nil {
		return nil, true, err
	}
	return records, true, nil
}

func (s *sqliteLocalStorage) Write(ctx context.Context, c models.Collection, records []models.Record) error {
	data, err := models.EncodeRecords(records)
	if err != nil {
		return err
	}

	if _, err = s.db.ExecContext(ctx, saveLocalCollection, c.StorageKey(), string(data), time.Now().UTC()); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "sqliteLocalStorage.Write").
			Str("key", c.StorageKey()).
			Int("count", len(records)).
			Msg("failed to write collection")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (s *sqliteLocalStorage) EnsureCollections(ctx context.Context, collections ...models.Collection) error {
	now := time.Now().UTC()
	return s.db.inTx(ctx, func(tx *sql.Tx) error {
		for _, c := range collections {
			if _, err := tx.ExecContext(ctx, ensureLocalCollection, c.StorageKey(), now); err != nil {
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}
		}
		return nil
	})
}

func (s *sqliteLocalStorage) GetSyncState(ctx context.Context, c models.Collection) (models.CollectionSyncState, error) {
	var data string
	err := s.db.QueryRowContext(ctx, getLocalSyncState, syncStateKey(c)).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return models.NewCollectionSyncState(), nil
	}
	if err != nil {
		return models.NewCollectionSyncState(), fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return decodeSyncState(c, []byte(data))
}

func (s *sqliteLocalStorage) SaveSyncState(ctx context.Context, c models.Collection, state models.CollectionSyncState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return err
	}
	if _, err = s.db.ExecContext(ctx, saveLocalSyncState, syncStateKey(c), string(data), time.Now().UTC()); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (s *sqliteLocalStorage) Close() error {
	return s.db.Close()
}
