// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/dcms-sync/models"
)

func rec(t *testing.T, raw string) models.Record {
	t.Helper()
	var r models.Record
	require.NoError(t, r.UnmarshalJSON([]byte(raw)))
	return r
}

func versionsByID(records []models.VersionedRecord) map[string]models.VersionedRecord {
	out := make(map[string]models.VersionedRecord, len(records))
	for _, r := range records {
		out[r.ID] = r
	}
	return out
}

// runCollectionRepositoryContract checks the behaviour every server driver
// must share.
func runCollectionRepositoryContract(t *testing.T, newRepo func(t *testing.T) CollectionRepository) {
	ctx := context.Background()

	t.Run("never written collection is empty", func(t *testing.T) {
		repo := newRepo(t)

		records, err := repo.GetCollection(ctx, models.Bookings)
		require.NoError(t, err)
		assert.NotNil(t, records)
		assert.Empty(t, records)

		last, err := repo.LastUpdate(ctx, models.Bookings)
		require.NoError(t, err)
		assert.True(t, last.IsZero())
	})

	t.Run("replace keeps order and bytes", func(t *testing.T) {
		repo := newRepo(t)
		in := []models.Record{
			rec(t, `{"id":"b2", "diver":"Bo"}`),
			rec(t, `{"id":"b1","diver":"Ana","depth":18.50}`),
		}

		last, err := repo.ReplaceCollection(ctx, models.Bookings, in, "public")
		require.NoError(t, err)
		assert.False(t, last.IsZero())

		got, err := repo.GetCollection(ctx, models.Bookings)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, []string{"b2", "b1"}, models.IDs(got))
		assert.Equal(t, string(in[0].Raw), string(got[0].Raw))
		assert.Equal(t, string(in[1].Raw), string(got[1].Raw))

		stored, err := repo.LastUpdate(ctx, models.Bookings)
		require.NoError(t, err)
		assert.Equal(t, last.UnixMilli(), stored.UnixMilli())
	})

	t.Run("unchanged records keep their version", func(t *testing.T) {
		repo := newRepo(t)
		in := []models.Record{rec(t, `{"id":"c1","name":"Ana"}`), rec(t, `{"id":"c2","name":"Bo"}`)}

		_, err := repo.ReplaceCollection(ctx, models.Customers, in, "public")
		require.NoError(t, err)
		before, err := repo.GetRecordsSince(ctx, models.Customers, 0)
		require.NoError(t, err)

		reordered := []models.Record{rec(t, `{"name":"Ana","id":"c1"}`), rec(t, `{"id":"c2","name":"Bob"}`)}
		_, err = repo.ReplaceCollection(ctx, models.Customers, reordered, "admin")
		require.NoError(t, err)
		after, err := repo.GetRecordsSince(ctx, models.Customers, 0)
		require.NoError(t, err)

		b, a := versionsByID(before), versionsByID(after)
		assert.Equal(t, b["c1"].Version, a["c1"].Version)
		assert.Greater(t, a["c2"].Version, b["c2"].Version)
		assert.Equal(t, "admin", a["c2"].Origin)

		since, err := repo.GetRecordsSince(ctx, models.Customers, b["c2"].Version)
		require.NoError(t, err)
		assert.Equal(t, []string{"c2"}, idsOf(since))
	})

	t.Run("missing records become tombstones", func(t *testing.T) {
		repo := newRepo(t)
		_, err := repo.ReplaceCollection(ctx, models.Locations, []models.Record{
			rec(t, `{"id":"l1"}`), rec(t, `{"id":"l2"}`),
		}, "admin")
		require.NoError(t, err)

		_, err = repo.ReplaceCollection(ctx, models.Locations, []models.Record{rec(t, `{"id":"l2"}`)}, "admin")
		require.NoError(t, err)

		live, err := repo.GetCollection(ctx, models.Locations)
		require.NoError(t, err)
		assert.Equal(t, []string{"l2"}, models.IDs(live))

		all, err := repo.GetRecordsSince(ctx, models.Locations, 0)
		require.NoError(t, err)
		byID := versionsByID(all)
		require.Contains(t, byID, "l1")
		assert.True(t, byID["l1"].Deleted)
		assert.Empty(t, byID["l1"].Data)
		assert.Equal(t, "l1", all[len(all)-1].ID)
	})

	t.Run("concurrent replace loses the earlier write", func(t *testing.T) {
		repo := newRepo(t)
		_, err := repo.ReplaceCollection(ctx, models.Bookings, []models.Record{rec(t, `{"id":"b1"}`), rec(t, `{"id":"b2"}`)}, "public")
		require.NoError(t, err)
		_, err = repo.ReplaceCollection(ctx, models.Bookings, []models.Record{rec(t, `{"id":"b1"}`)}, "admin")
		require.NoError(t, err)

		got, err := repo.GetCollection(ctx, models.Bookings)
		require.NoError(t, err)
		assert.Equal(t, []string{"b1"}, models.IDs(got))
	})

	t.Run("upsert records", func(t *testing.T) {
		repo := newRepo(t)
		_, err := repo.ReplaceCollection(ctx, models.Equipment, []models.Record{rec(t, `{"id":"e1","size":"M"}`)}, "admin")
		require.NoError(t, err)

		results, err := repo.UpsertRecords(ctx, models.Equipment, []models.RecordChange{
			{ID: "e1", Data: []byte(`{"size":"M","id":"e1"}`)},
			{ID: "e2", Data: []byte(`{"id":"e2","size":"L"}`)},
			{ID: "e9", Deleted: true},
		}, "public")
		require.NoError(t, err)
		require.Len(t, results, 3)

		assert.True(t, results[0].Unchanged)
		assert.Equal(t, int64(1), results[0].Version)
		assert.Equal(t, int64(2), results[1].Version)
		assert.False(t, results[1].Unchanged)
		assert.True(t, results[2].Unchanged)
		assert.True(t, results[2].Deleted)

		got, err := repo.GetCollection(ctx, models.Equipment)
		require.NoError(t, err)
		assert.Equal(t, []string{"e1", "e2"}, models.IDs(got))

		results, err = repo.UpsertRecords(ctx, models.Equipment, []models.RecordChange{{ID: "e1", Deleted: true}}, "public")
		require.NoError(t, err)
		assert.Equal(t, int64(3), results[0].Version)

		got, err = repo.GetCollection(ctx, models.Equipment)
		require.NoError(t, err)
		assert.Equal(t, []string{"e2"}, models.IDs(got))
	})

	t.Run("get all lists every known collection", func(t *testing.T) {
		repo := newRepo(t)
		_, err := repo.ReplaceCollection(ctx, models.Customers, []models.Record{rec(t, `{"id":"c1"}`)}, "public")
		require.NoError(t, err)

		all, err := repo.GetAll(ctx)
		require.NoError(t, err)
		assert.Len(t, all, len(models.KnownCollections))
		assert.Equal(t, []string{"c1"}, models.IDs(all[models.Customers]))
		assert.Empty(t, all[models.Bookings])
	})

	t.Run("purge tombstones", func(t *testing.T) {
		repo := newRepo(t)
		_, err := repo.ReplaceCollection(ctx, models.Bookings, []models.Record{rec(t, `{"id":"b1"}`), rec(t, `{"id":"b2"}`)}, "public")
		require.NoError(t, err)
		_, err = repo.ReplaceCollection(ctx, models.Bookings, []models.Record{}, "public")
		require.NoError(t, err)

		n, err := repo.PurgeTombstones(ctx, time.Now().Add(-time.Hour))
		require.NoError(t, err)
		assert.Zero(t, n)

		n, err = repo.PurgeTombstones(ctx, time.Now().Add(time.Hour))
		require.NoError(t, err)
		assert.Equal(t, int64(2), n)

		rest, err := repo.GetRecordsSince(ctx, models.Bookings, 0)
		require.NoError(t, err)
		assert.Empty(t, rest)
	})
}

func idsOf(records []models.VersionedRecord) []string {
	ids := make([]string, 0, len(records))
	for _, r := range records {
		ids = append(ids, r.ID)
	}
	return ids
}
