package store

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/dcms-sync/internal/logger"
	"github.com/MKhiriev/dcms-sync/models"
)

// memoryCollectionRepository keeps every collection in process memory. It is
// the default driver and loses its state on restart.
type memoryCollectionRepository struct {
	mu          sync.RWMutex
	collections map[models.Collection]*memoryCollection
	now         func() time.Time
	logger      *logger.Logger
}

type memoryCollection struct {
	state      collectionState
	lastUpdate time.Time
}

// NewMemoryCollectionRepository constructs an empty in-memory [CollectionRepository].
func NewMemoryCollectionRepository(logger *logger.Logger) CollectionRepository {
	logger.Debug().Msg("creating in-memory collection repository")
	return &memoryCollectionRepository{
		collections: make(map[models.Collection]*memoryCollection),
		now:         time.Now,
		logger:      logger,
	}
}

func (m *memoryCollectionRepository) GetCollection(ctx context.Context, c models.Collection) ([]models.Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	col, ok := m.collections[c]
	if !ok {
		return []models.Record{}, nil
	}
	return liveRecords(col.state), nil
}

func (m *memoryCollectionRepository) ReplaceCollection(ctx context.Context, c models.Collection, records []models.Record, origin string) (time.Time, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	col := m.collection(c)
	plan := planReplace(col.state, records, origin, now)
	col.state.apply(plan)
	col.lastUpdate = now

	logger.FromContext(ctx).Debug().
		Str("func", "memoryCollectionRepository.ReplaceCollection").
		Str("collection", c.String()).
		Int("count", len(records)).
		Int("writes", len(plan.Writes)).
		Int64("version", plan.Version).
		Msg("collection replaced")

	return now, nil
}

func (m *memoryCollectionRepository) LastUpdate(ctx context.Context, c models.Collection) (time.Time, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if col, ok := m.collections[c]; ok {
		return col.lastUpdate, nil
	}
	return time.Time{}, nil
}

func (m *memoryCollectionRepository) GetAll(ctx context.Context) (models.Snapshot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	snapshot := make(models.Snapshot, len(models.KnownCollections))
	for _, c := range models.KnownCollections {
		if col, ok := m.collections[c]; ok {
			snapshot[c] = liveRecords(col.state)
			continue
		}
		snapshot[c] = []models.Record{}
	}
	return snapshot, nil
}

func (m *memoryCollectionRepository) UpsertRecords(ctx context.Context, c models.Collection, changes []models.RecordChange, origin string) ([]models.UpsertResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	col := m.collection(c)
	plan, results := planUpsert(col.state, changes, origin, now)
	col.state.apply(plan)
	col.lastUpdate = now

	return results, nil
}

func (m *memoryCollectionRepository) GetRecordsSince(ctx context.Context, c models.Collection, since int64) ([]models.VersionedRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	col, ok := m.collections[c]
	if !ok {
		return []models.VersionedRecord{}, nil
	}
	return rowsSince(col.state, since), nil
}

func (m *memoryCollectionRepository) PurgeTombstones(ctx context.Context, olderThan time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var purged int64
	for _, col := range m.collections {
		for _, id := range expiredTombstones(col.state, olderThan) {
			delete(col.state.Rows, id)
			purged++
		}
	}
	return purged, nil
}

func (m *memoryCollectionRepository) Close() error {
	return nil
}

// collection returns the entry for c, creating it. Callers hold mu.
func (m *memoryCollectionRepository) collection(c models.Collection) *memoryCollection {
	col, ok := m.collections[c]
	if !ok {
		col = &memoryCollection{state: newCollectionState()}
		m.collections[c] = col
	}
	return col
}
