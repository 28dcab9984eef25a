package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.etcd.io/bbolt"

	"github.com/MKhiriev/dcms-sync/internal/logger"
	"github.com/MKhiriev/dcms-sync/models"
)

var (
	bucketCollections = []byte("collections")
	bucketSyncState   = []byte("sync_state")
)

// boltLocalStorage keeps every collection array under its storage key in a
// single bbolt bucket.
type boltLocalStorage struct {
	db     *bbolt.DB
	logger *logger.Logger
}

// NewBoltLocalStorage opens (or creates) the bbolt file at path.
func NewBoltLocalStorage(path string, logger *logger.Logger) (LocalStorage, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create boltdb dir: %w", err)
		}
	}

	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open boltdb: %w", err)
	}

	s := &boltLocalStorage{db: db, logger: logger}
	if err = s.initBuckets(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize buckets: %w", err)
	}

	return s, nil
}

func (s *boltLocalStorage) initBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		for _, b := range [][]byte{bucketCollections, bucketSyncState} {
			if _, err := tx.CreateBucketIfNotExists(b); err != nil {
				return fmt.Errorf("failed to create %s bucket: %w", b, err)
			}
		}
		return nil
	})
}

func (s *boltLocalStorage) Read(ctx context.Context, c models.Collection) ([]models.Record, bool, error) {
	var data []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		// values are only valid inside the transaction
		if v := tx.Bucket(bucketCollections).Get([]byte(c.StorageKey())); v != nil {
			data = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	if data == nil {
		return nil, false, nil
	}

	records, err := decodeStoredCollection(c, data)
	if err != nil {
		return nil, true, err
	}
	return records, true, nil
}

func (s *boltLocalStorage) Write(ctx context.Context, c models.Collection, records []models.Record) error {
	data, err := models.EncodeRecords(records)
	if err != nil {
		return err
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketCollections).Put([]byte(c.StorageKey()), data)
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "boltLocalStorage.Write").
			Str("key", c.StorageKey()).
			Msg("failed to write collection")
		return fmt.Errorf("failed to write %s: %w", c.StorageKey(), err)
	}
	return nil
}

func (s *boltLocalStorage) EnsureCollections(ctx context.Context, collections ...models.Collection) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketCollections)
		for _, c := range collections {
			key := []byte(c.StorageKey())
			if b.Get(key) != nil {
				continue
			}
			if err := b.Put(key, []byte("[]")); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *boltLocalStorage) GetSyncState(ctx context.Context, c models.Collection) (models.CollectionSyncState, error) {
	var data []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		if v := tx.Bucket(bucketSyncState).Get([]byte(syncStateKey(c))); v != nil {
			data = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil {
		return models.NewCollectionSyncState(), err
	}
	if data == nil {
		return models.NewCollectionSyncState(), nil
	}
	return decodeSyncState(c, data)
}

func (s *boltLocalStorage) SaveSyncState(ctx context.Context, c models.Collection, state models.CollectionSyncState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketSyncState).Put([]byte(syncStateKey(c)), data)
	})
}

func (s *boltLocalStorage) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
