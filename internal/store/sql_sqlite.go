package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/dcms-sync/internal/logger"
	"github.com/MKhiriev/dcms-sync/migrations"
)

// sqliteOptions keeps readers off the writer's back: WAL plus a busy timeout
// instead of immediate SQLITE_BUSY.
const sqliteOptions = "?_busy_timeout=5000&_journal_mode=WAL"

// NewConnectSQLite opens the origin's local database file, creating it and
// its directory when missing.
func NewConnectSQLite(ctx context.Context, path string, log *logger.Logger) (*DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Err(err).Str("func", "NewConnectSQLite").Msg("cannot create database directory")
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	conn, err := openSQL(ctx, "sqlite3", path+sqliteOptions)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("cannot open local database")
		return nil, err
	}
	// one writer at a time
	conn.SetMaxOpenConns(1)

	log.Debug().Str("func", "NewConnectSQLite").Str("path", path).Msg("local database opened")
	return &DB{
		DB:      conn,
		dialect: migrations.SQLite,
		logger:  log,
	}, nil
}
