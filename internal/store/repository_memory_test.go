// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/dcms-sync/internal/logger"
	"github.com/MKhiriev/dcms-sync/models"
)

func TestMemoryCollectionRepository(t *testing.T) {
	runCollectionRepositoryContract(t, func(t *testing.T) CollectionRepository {
		return NewMemoryCollectionRepository(logger.Nop())
	})
}

func TestMemoryCollectionRepository_ConcurrentUpserts(t *testing.T) {
	repo := NewMemoryCollectionRepository(logger.Nop())
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := string(rune('a' + i))
			_, err := repo.UpsertRecords(ctx, models.Bookings, []models.RecordChange{
				{ID: id, Data: []byte(`{"id":"` + id + `"}`)},
			}, "public")
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	all, err := repo.GetRecordsSince(ctx, models.Bookings, 0)
	require.NoError(t, err)
	require.Len(t, all, 20)

	seen := make(map[int64]bool)
	for _, r := range all {
		assert.False(t, seen[r.Version], "version %d assigned twice", r.Version)
		seen[r.Version] = true
	}
}
