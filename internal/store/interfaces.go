package store

import (
	"context"
	"time"

	"github.com/MKhiriev/dcms-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// CollectionRepository is the authoritative server-side copy of every
// collection.
//
// All drivers keep one row per record with a server version, array position,
// tombstone flag and writing origin, so full-array replacement and per-record
// upserts operate on the same state.
type CollectionRepository interface {
	// GetCollection returns live records in array order. A collection that
	// was never written yields an empty slice.
	GetCollection(ctx context.Context, c models.Collection) ([]models.Record, error)

	// ReplaceCollection makes records the complete content of c. Records
	// whose content changed get a new version; live records absent from the
	// array become tombstones. It returns the new last-update time.
	ReplaceCollection(ctx context.Context, c models.Collection, records []models.Record, origin string) (time.Time, error)

	// LastUpdate returns the time of the latest write to c, or the zero time.
	LastUpdate(ctx context.Context, c models.Collection) (time.Time, error)

	// GetAll returns every known collection.
	GetAll(ctx context.Context) (models.Snapshot, error)

	// UpsertRecords applies per-record changes with last-write-wins semantics.
	UpsertRecords(ctx context.Context, c models.Collection, changes []models.RecordChange, origin string) ([]models.UpsertResult, error)

	// GetRecordsSince returns records, tombstones included, whose version is
	// greater than since, ordered by version.
	GetRecordsSince(ctx context.Context, c models.Collection, since int64) ([]models.VersionedRecord, error)

	// PurgeTombstones hard-deletes tombstones last written before olderThan.
	PurgeTombstones(ctx context.Context, olderThan time.Time) (int64, error)

	Close() error
}
