package store

import (
	"context"
	"sync"

	"github.com/MKhiriev/dcms-sync/models"
)

// memoryLocalStorage is a process-local [LocalStorage]. Arrays are stored in
// their encoded form so callers never share backing memory with the store.
type memoryLocalStorage struct {
	mu          sync.RWMutex
	collections map[string][]byte
	states      map[string]models.CollectionSyncState
}

// NewMemoryLocalStorage returns an empty in-memory [LocalStorage].
func NewMemoryLocalStorage() LocalStorage {
	return &memoryLocalStorage{
		collections: make(map[string][]byte),
		states:      make(map[string]models.CollectionSyncState),
	}
}

func (m *memoryLocalStorage) Read(ctx context.Context, c models.Collection) ([]models.Record, bool, error) {
	m.mu.RLock()
	data, ok := m.collections[c.StorageKey()]
	m.mu.RUnlock()

	if !ok {
		return nil, false, nil
	}
	records, err := decodeStoredCollection(c, data)
	return records, true, err
}

func (m *memoryLocalStorage) Write(ctx context.Context, c models.Collection, records []models.Record) error {
	data, err := models.EncodeRecords(records)
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.collections[c.StorageKey()] = data
	m.mu.Unlock()
	return nil
}

func (m *memoryLocalStorage) EnsureCollections(ctx context.Context, collections ...models.Collection) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, c := range collections {
		if _, ok := m.collections[c.StorageKey()]; !ok {
			m.collections[c.StorageKey()] = []byte("[]")
		}
	}
	return nil
}

func (m *memoryLocalStorage) GetSyncState(ctx context.Context, c models.Collection) (models.CollectionSyncState, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	st, ok := m.states[syncStateKey(c)]
	if !ok {
		return models.NewCollectionSyncState(), nil
	}
	return cloneSyncState(st), nil
}

func (m *memoryLocalStorage) SaveSyncState(ctx context.Context, c models.Collection, state models.CollectionSyncState) error {
	m.mu.Lock()
	m.states[syncStateKey(c)] = cloneSyncState(state)
	m.mu.Unlock()
	return nil
}

func (m *memoryLocalStorage) Close() error {
	return nil
}

func cloneSyncState(st models.CollectionSyncState) models.CollectionSyncState {
	out := st
	out.Known = make(map[string]models.KnownRecord, len(st.Known))
	for k, v := range st.Known {
		out.Known[k] = v
	}
	return out
}
