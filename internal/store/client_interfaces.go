package store

import (
	"context"

	"github.com/MKhiriev/dcms-sync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// ResourceStore is the client's durable key/value store: one JSON array per
// collection, addressed by [models.Collection.StorageKey].
type ResourceStore interface {
	// Read returns the stored array. found is false when the collection was
	// never written; records is then nil.
	Read(ctx context.Context, c models.Collection) (records []models.Record, found bool, err error)

	// Write replaces the stored array.
	Write(ctx context.Context, c models.Collection, records []models.Record) error

	// EnsureCollections stores an empty array for every collection that has
	// none yet. Existing arrays are left untouched.
	EnsureCollections(ctx context.Context, collections ...models.Collection) error
}

// SyncStateRepository persists per-collection cursors and known record
// versions used by the record protocol.
type SyncStateRepository interface {
	// GetSyncState returns the stored state or a fresh one.
	GetSyncState(ctx context.Context, c models.Collection) (models.CollectionSyncState, error)
	SaveSyncState(ctx context.Context, c models.Collection, state models.CollectionSyncState) error
}

// LocalStorage is everything the sync engine needs from the device.
type LocalStorage interface {
	ResourceStore
	SyncStateRepository
	Close() error
}
