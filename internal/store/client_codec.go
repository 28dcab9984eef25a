package store

import (
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/dcms-sync/models"
)

// syncStateKey is the storage key of the record-protocol state of c.
func syncStateKey(c models.Collection) string {
	return c.StorageKey() + "_sync"
}

func decodeStoredCollection(c models.Collection, b []byte) ([]models.Record, error) {
	records, err := models.DecodeRecords(b)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrCorruptedData, c.StorageKey(), err)
	}
	return records, nil
}

func decodeSyncState(c models.Collection, b []byte) (models.CollectionSyncState, error) {
	state := models.NewCollectionSyncState()
	if err := json.Unmarshal(b, &state); err != nil {
		return models.NewCollectionSyncState(), fmt.Errorf("%w: %s: %w", ErrCorruptedData, syncStateKey(c), err)
	}
	if state.Known == nil {
		state.Known = make(map[string]models.KnownRecord)
	}
	return state, nil
}
