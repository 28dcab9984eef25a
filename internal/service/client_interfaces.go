package service

import (
	"context"
	"time"

	"github.com/MKhiriev/dcms-sync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// EventBus delivers in-process notifications per collection. Delivery is
// synchronous and at-most-once: there is no queue and no replay.
type EventBus interface {
	// Subscribe registers handler for events of c and returns a function
	// that removes it.
	Subscribe(c models.Collection, handler models.EventHandler) (unsubscribe func())

	// Publish calls every handler subscribed to the event's collection.
	Publish(event models.Event)
}

// ConnectionManager owns the connection state of the origin.
type ConnectionManager interface {
	// EnsureConnection returns true when the server is reachable. A
	// disconnected engine probes the server once; concurrent callers share
	// the probe. On success every collection with local data is pushed,
	// followed by the dirty ones. On failure a single reconnect is scheduled.
	EnsureConnection(ctx context.Context) bool

	// State returns the current connection state.
	State() models.ConnectionState
}

// ChangeTracker records collections with unflushed local writes.
type ChangeTracker interface {
	// MarkChanged adds c to the dirty set and starts flushing it in the
	// background.
	MarkChanged(c models.Collection)
}

// PushEngine sends local collections to the server.
type PushEngine interface {
	// PushCollection sends the local copy of c. The dirty mark of c is
	// cleared only on success.
	PushCollection(ctx context.Context, c models.Collection) error

	// PushAllCollections pushes every known collection holding local data.
	PushAllCollections(ctx context.Context)

	// PushPendingChanges drains the dirty set and pushes each entry; failed
	// entries are marked dirty again.
	PushPendingChanges(ctx context.Context)
}

// PullEngine fetches server state and merges it into the local store.
type PullEngine interface {
	// PullCollection returns the server copy of c, or false when it could
	// not be fetched or failed validation.
	PullCollection(ctx context.Context, c models.Collection) ([]models.Record, bool)

	// PullAllCollections pulls and merges every known collection in turn.
	PullAllCollections(ctx context.Context)
}

// ClientSyncEngine is the replication engine of one origin.
type ClientSyncEngine interface {
	ConnectionManager
	ChangeTracker
	PushEngine
	PullEngine

	// Start creates empty local collections where none exist and connects
	// in the background.
	Start(ctx context.Context) error

	// Stop cancels timers and background work and waits for it to finish.
	Stop()

	// Refresh pushes all collections, then pending changes, then pulls all
	// collections.
	Refresh(ctx context.Context)

	// SaveCollection persists records locally, publishes kind for c and
	// marks c changed.
	SaveCollection(ctx context.Context, c models.Collection, records []models.Record, kind models.EventKind) error

	// Collection reads the local copy of c.
	Collection(ctx context.Context, c models.Collection) ([]models.Record, error)

	// LastServerUpdate asks the server when c was last written.
	LastServerUpdate(ctx context.Context, c models.Collection) (time.Time, error)

	// ServerSnapshot fetches every collection from the server without
	// touching local data.
	ServerSnapshot(ctx context.Context) (models.Snapshot, error)

	// Subscribe registers handler on the engine's event bus.
	Subscribe(c models.Collection, handler models.EventHandler) (unsubscribe func())

	// Status returns a snapshot of the connection state, the dirty set and
	// the last successful push time per collection.
	Status() models.SyncStatus
}
