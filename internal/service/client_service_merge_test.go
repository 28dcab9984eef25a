package service

import (
	"testing"

	"github.com/MKhiriev/dcms-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rec(t *testing.T, raw string) models.Record {
	t.Helper()
	var r models.Record
	require.NoError(t, r.UnmarshalJSON([]byte(raw)))
	return r
}

func recs(t *testing.T, raws ...string) []models.Record {
	t.Helper()
	out := make([]models.Record, 0, len(raws))
	for _, raw := range raws {
		out = append(out, rec(t, raw))
	}
	return out
}

func rawOf(records []models.Record) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, string(r.Raw))
	}
	return out
}

func TestMergeResolver_Merge(t *testing.T) {
	tests := []struct {
		name        string
		server      []string
		local       []string
		want        []string
		wantChanged bool
	}{
		{
			name:        "server update and new record",
			local:       []string{`{"id":"1","status":"pending"}`},
			server:      []string{`{"id":"1","status":"confirmed"}`, `{"id":"2","status":"pending"}`},
			want:        []string{`{"id":"1","status":"confirmed"}`, `{"id":"2","status":"pending"}`},
			wantChanged: true,
		},
		{
			name:   "empty server keeps local",
			local:  []string{`{"id":"a"}`},
			server: nil,
			want:   []string{`{"id":"a"}`},
		},
		{
			name:   "key order and whitespace are not changes",
			local:  []string{`{"id":"1","a":1,"b":[1,2]}`},
			server: []string{`{"b": [1, 2], "a": 1, "id": "1"}`},
			want:   []string{`{"id":"1","a":1,"b":[1,2]}`},
		},
		{
			name:        "local only records survive",
			local:       []string{`{"id":"x"}`, `{"id":"1","v":1}`, `{"id":"y"}`},
			server:      []string{`{"id":"1","v":2}`},
			want:        []string{`{"id":"x"}`, `{"id":"1","v":2}`, `{"id":"y"}`},
			wantChanged: true,
		},
		{
			name:        "new records appended in server order",
			local:       []string{`{"id":"1"}`},
			server:      []string{`{"id":"3"}`, `{"id":"1"}`, `{"id":"2"}`},
			want:        []string{`{"id":"1"}`, `{"id":"3"}`, `{"id":"2"}`},
			wantChanged: true,
		},
		{
			name:        "empty local takes server",
			local:       nil,
			server:      []string{`{"id":"1"}`},
			want:        []string{`{"id":"1"}`},
			wantChanged: true,
		},
	}

	m := newMergeResolver(false)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			merged, changed := m.Merge(models.Bookings, recs(t, tt.server...), recs(t, tt.local...))

			assert.Equal(t, tt.wantChanged, changed)
			assert.Equal(t, tt.want, rawOf(merged))
		})
	}
}

// Merge never drops a local record because the server lacks it.
func TestMergeResolver_Merge_MonotonicAdditive(t *testing.T) {
	m := newMergeResolver(false)
	local := recs(t, `{"id":"a"}`, `{"id":"b"}`, `{"id":"c"}`)
	server := recs(t, `{"id":"b","x":1}`, `{"id":"d"}`)

	merged, changed := m.Merge(models.Bookings, server, local)

	require.True(t, changed)
	assert.Equal(t, []string{"a", "b", "c", "d"}, models.IDs(merged))
}

func TestMergeResolver_PreserveAdminFields(t *testing.T) {
	local := recs(t, `{"id":"c1","name":"Ana","customerType":"local","centerSkillLevel":"advanced"}`)
	server := recs(t, `{"id":"c1","name":"Ana Silva","customerType":"tourist","centerSkillLevel":"beginner"}`)

	t.Run("enabled keeps local admin fields", func(t *testing.T) {
		merged, changed := newMergeResolver(true).Merge(models.Customers, server, local)

		require.True(t, changed)
		require.Len(t, merged, 1)
		fields, err := merged[0].Fields()
		require.NoError(t, err)
		assert.Equal(t, "Ana Silva", fields["name"])
		assert.Equal(t, "local", fields["customerType"])
		assert.Equal(t, "advanced", fields["centerSkillLevel"])
	})

	t.Run("enabled only touches customers", func(t *testing.T) {
		merged, changed := newMergeResolver(true).Merge(models.Bookings, server, local)

		require.True(t, changed)
		assert.Equal(t, string(server[0].Raw), string(merged[0].Raw))
	})

	t.Run("only admin field differs means no change", func(t *testing.T) {
		srv := recs(t, `{"id":"c1","name":"Ana","customerType":"tourist","centerSkillLevel":"advanced"}`)

		_, changed := newMergeResolver(true).Merge(models.Customers, srv, local)
		assert.False(t, changed)
	})

	t.Run("disabled takes server values", func(t *testing.T) {
		merged, changed := newMergeResolver(false).Merge(models.Customers, server, local)

		require.True(t, changed)
		assert.Equal(t, string(server[0].Raw), string(merged[0].Raw))
	})

	t.Run("missing on both sides gets defaults", func(t *testing.T) {
		bare := recs(t, `{"id":"c1","name":"Ana"}`)
		srv := recs(t, `{"id":"c1","name":"Ana","centerSkillLevel":"intermediate"}`)

		merged, changed := newMergeResolver(true).Merge(models.Customers, srv, bare)

		require.True(t, changed)
		fields, err := merged[0].Fields()
		require.NoError(t, err)
		assert.Equal(t, "tourist", fields["customerType"])
		assert.Equal(t, "intermediate", fields["centerSkillLevel"])
	})

	t.Run("disabled leaves missing fields unset", func(t *testing.T) {
		bare := recs(t, `{"id":"c1","name":"Ana"}`)

		_, changed := newMergeResolver(false).Merge(models.Customers, bare, bare)
		assert.False(t, changed)
	})
}

func versioned(id string, version int64, data string) models.VersionedRecord {
	v := models.VersionedRecord{ID: id, Version: version}
	if data == "" {
		v.Deleted = true
		return v
	}
	v.Data = []byte(data)
	return v
}

func knownState(t *testing.T, cursor int64, known map[string]models.Record, versions map[string]int64) models.CollectionSyncState {
	t.Helper()
	st := models.NewCollectionSyncState()
	st.Cursor = cursor
	for id, r := range known {
		st.Known[id] = models.KnownRecord{Version: versions[id], Hash: recordHash(r)}
	}
	return st
}

func TestMergeVersioned_AppliesNewerAndAppends(t *testing.T) {
	r1 := rec(t, `{"id":"1","v":1}`)
	local := []models.Record{r1}
	state := knownState(t, 3, map[string]models.Record{"1": r1}, map[string]int64{"1": 3})

	merged, next, changed := MergeVersioned(local, []models.VersionedRecord{
		versioned("1", 4, `{"id":"1","v":2}`),
		versioned("2", 5, `{"id":"2"}`),
	}, state)

	require.True(t, changed)
	assert.Equal(t, []string{`{"id":"1","v":2}`, `{"id":"2"}`}, rawOf(merged))
	assert.EqualValues(t, 5, next.Cursor)
	assert.EqualValues(t, 4, next.Known["1"].Version)
	assert.Equal(t, recordHash(rec(t, `{"id":"2"}`)), next.Known["2"].Hash)
}

func TestMergeVersioned_TombstoneRemovesLocalCopy(t *testing.T) {
	r1 := rec(t, `{"id":"1"}`)
	r2 := rec(t, `{"id":"2"}`)
	state := knownState(t, 2, map[string]models.Record{"1": r1, "2": r2}, map[string]int64{"1": 1, "2": 2})

	merged, next, changed := MergeVersioned([]models.Record{r1, r2}, []models.VersionedRecord{versioned("1", 3, "")}, state)

	require.True(t, changed)
	assert.Equal(t, []string{"2"}, models.IDs(merged))
	assert.True(t, next.Known["1"].Deleted)
	assert.EqualValues(t, 3, next.Cursor)
}

func TestMergeVersioned_StaleVersionIgnored(t *testing.T) {
	r1 := rec(t, `{"id":"1","v":"mine"}`)
	state := knownState(t, 0, map[string]models.Record{"1": r1}, map[string]int64{"1": 7})

	merged, next, changed := MergeVersioned([]models.Record{r1}, []models.VersionedRecord{versioned("1", 7, `{"id":"1","v":"echo"}`)}, state)

	assert.False(t, changed)
	assert.Equal(t, rawOf([]models.Record{r1}), rawOf(merged))
	assert.EqualValues(t, 7, next.Cursor)
}

// A record edited locally since the last exchange is kept; the push that
// follows makes it the later write.
func TestMergeVersioned_UnpushedLocalEditKept(t *testing.T) {
	pushed := rec(t, `{"id":"1","v":1}`)
	edited := rec(t, `{"id":"1","v":"local edit"}`)
	state := knownState(t, 1, map[string]models.Record{"1": pushed}, map[string]int64{"1": 1})

	merged, next, changed := MergeVersioned([]models.Record{edited}, []models.VersionedRecord{
		versioned("1", 2, `{"id":"1","v":"remote edit"}`),
		versioned("9", 3, `{"id":"9"}`),
	}, state)

	require.True(t, changed)
	assert.Equal(t, []string{`{"id":"1","v":"local edit"}`, `{"id":"9"}`}, rawOf(merged))
	assert.EqualValues(t, 1, next.Known["1"].Version)
	assert.EqualValues(t, 3, next.Cursor)
}

func TestMergeVersioned_SameContentIsNotAChange(t *testing.T) {
	r1 := rec(t, `{"id":"1","a":1}`)

	merged, next, changed := MergeVersioned([]models.Record{r1}, []models.VersionedRecord{versioned("1", 4, `{"a":1,"id":"1"}`)}, models.CollectionSyncState{})

	assert.False(t, changed)
	assert.Len(t, merged, 1)
	assert.EqualValues(t, 4, next.Known["1"].Version)
}

func TestDiffKnown(t *testing.T) {
	same := rec(t, `{"id":"same"}`)
	edited := rec(t, `{"id":"edited","v":2}`)
	fresh := rec(t, `{"id":"fresh"}`)

	state := models.NewCollectionSyncState()
	state.Known["same"] = models.KnownRecord{Version: 1, Hash: recordHash(same)}
	state.Known["edited"] = models.KnownRecord{Version: 2, Hash: recordHash(rec(t, `{"id":"edited","v":1}`))}
	state.Known["gone"] = models.KnownRecord{Version: 3, Hash: "x"}
	state.Known["dead"] = models.KnownRecord{Version: 4, Deleted: true}

	changes, hashes := diffKnown([]models.Record{same, edited, fresh}, state)

	require.Len(t, changes, 3)
	assert.Equal(t, "edited", changes[0].ID)
	assert.Equal(t, "fresh", changes[1].ID)
	assert.Equal(t, models.RecordChange{ID: "gone", Deleted: true}, changes[2])
	assert.Equal(t, recordHash(fresh), hashes["fresh"])
	assert.NotContains(t, hashes, "same")
}
