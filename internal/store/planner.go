package store

import (
	"bytes"
	"encoding/json"
	"sort"
	"time"

	"github.com/MKhiriev/dcms-sync/models"
)

// storedRecord is the driver-neutral row kept for every record.
type storedRecord struct {
	models.VersionedRecord
	Position int
}

// collectionState is the slice of a collection a planner needs.
type collectionState struct {
	Rows    map[string]storedRecord
	Version int64
}

func newCollectionState() collectionState {
	return collectionState{Rows: make(map[string]storedRecord)}
}

// writePlan lists rows to insert or overwrite and the collection version
// after they are applied.
type writePlan struct {
	Writes  []storedRecord
	Version int64
}

// planReplace computes the rows that turn state into exactly the live
// records given, in the given order.
//
// A record keeps its version when its canonical JSON is unchanged; only its
// bytes and position are refreshed. Every live row missing from records is
// tombstoned with a fresh version.
func planReplace(state collectionState, records []models.Record, origin string, now time.Time) writePlan {
	plan := writePlan{Version: state.Version}
	seen := make(map[string]struct{}, len(records))

	for i, r := range records {
		seen[r.ID] = struct{}{}

		cur, ok := state.Rows[r.ID]
		if ok && !cur.Deleted && sameContent(cur.Data, r.Raw) {
			if cur.Position == i && bytes.Equal(cur.Data, r.Raw) {
				continue
			}
			cur.Position = i
			cur.Data = cloneRaw(r.Raw)
			plan.Writes = append(plan.Writes, cur)
			continue
		}

		plan.Version++
		plan.Writes = append(plan.Writes, storedRecord{
			VersionedRecord: models.VersionedRecord{
				ID:        r.ID,
				Version:   plan.Version,
				Origin:    origin,
				UpdatedAt: now,
				Data:      cloneRaw(r.Raw),
			},
			Position: i,
		})
	}

	for _, cur := range liveRows(state) {
		if _, ok := seen[cur.ID]; ok {
			continue
		}
		plan.Version++
		plan.Writes = append(plan.Writes, tombstone(cur, plan.Version, origin, now))
	}

	return plan
}

// planUpsert applies per-record changes on top of state. New records are
// appended after the last known position.
func planUpsert(state collectionState, changes []models.RecordChange, origin string, now time.Time) (writePlan, []models.UpsertResult) {
	plan := writePlan{Version: state.Version}
	results := make([]models.UpsertResult, 0, len(changes))
	nextPosition := maxPosition(state) + 1

	for _, ch := range changes {
		cur, ok := state.Rows[ch.ID]

		if ch.Deleted {
			if !ok || cur.Deleted {
				results = append(results, models.UpsertResult{ID: ch.ID, Version: cur.Version, Deleted: true, Unchanged: true})
				continue
			}
			plan.Version++
			plan.Writes = append(plan.Writes, tombstone(cur, plan.Version, origin, now))
			results = append(results, models.UpsertResult{ID: ch.ID, Version: plan.Version, Deleted: true})
			continue
		}

		if ok && !cur.Deleted && sameContent(cur.Data, ch.Data) {
			results = append(results, models.UpsertResult{ID: ch.ID, Version: cur.Version, Unchanged: true})
			continue
		}

		position := cur.Position
		if !ok {
			position = nextPosition
			nextPosition++
		}

		plan.Version++
		plan.Writes = append(plan.Writes, storedRecord{
			VersionedRecord: models.VersionedRecord{
				ID:        ch.ID,
				Version:   plan.Version,
				Origin:    origin,
				UpdatedAt: now,
				Data:      cloneRaw(ch.Data),
			},
			Position: position,
		})
		results = append(results, models.UpsertResult{ID: ch.ID, Version: plan.Version})
	}

	return plan, results
}

// apply writes plan into state in place.
func (s *collectionState) apply(plan writePlan) {
	for _, w := range plan.Writes {
		s.Rows[w.ID] = w
	}
	s.Version = plan.Version
}

// liveRows returns non-deleted rows ordered by position.
func liveRows(state collectionState) []storedRecord {
	rows := make([]storedRecord, 0, len(state.Rows))
	for _, r := range state.Rows {
		if !r.Deleted {
			rows = append(rows, r)
		}
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Position != rows[j].Position {
			return rows[i].Position < rows[j].Position
		}
		return rows[i].ID < rows[j].ID
	})
	return rows
}

// liveRecords returns live rows as records in array order.
func liveRecords(state collectionState) []models.Record {
	rows := liveRows(state)
	records := make([]models.Record, 0, len(rows))
	for _, r := range rows {
		records = append(records, r.Record())
	}
	return records
}

// rowsSince returns rows with a version above since, ordered by version.
func rowsSince(state collectionState, since int64) []models.VersionedRecord {
	out := make([]models.VersionedRecord, 0)
	for _, r := range state.Rows {
		if r.Version > since {
			v := r.VersionedRecord
			v.Data = cloneRaw(r.Data)
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Version < out[j].Version })
	return out
}

// expiredTombstones returns ids of tombstones written before olderThan.
func expiredTombstones(state collectionState, olderThan time.Time) []string {
	var ids []string
	for id, r := range state.Rows {
		if r.Deleted && r.UpdatedAt.Before(olderThan) {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

func tombstone(cur storedRecord, version int64, origin string, now time.Time) storedRecord {
	cur.Version = version
	cur.Deleted = true
	cur.Origin = origin
	cur.UpdatedAt = now
	cur.Data = nil
	return cur
}

func maxPosition(state collectionState) int {
	m := -1
	for _, r := range state.Rows {
		if r.Position > m {
			m = r.Position
		}
	}
	return m
}

// sameContent compares two JSON payloads structurally.
func sameContent(a, b json.RawMessage) bool {
	return models.Record{Raw: a}.Equal(models.Record{Raw: b})
}

func cloneRaw(b json.RawMessage) json.RawMessage {
	if b == nil {
		return nil
	}
	return append(json.RawMessage(nil), b...)
}
