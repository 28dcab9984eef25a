package service

import (
	"encoding/json"

	"github.com/MKhiriev/dcms-sync/models"
)

// preservedField is a field owned by the admin origin. With preservation
// enabled the local value wins over the pulled one whenever it is set; when
// neither side has it, fallback is written.
type preservedField struct {
	name     string
	fallback string
}

var adminCustomerFields = []preservedField{
	{name: "customerType", fallback: "tourist"},
	{name: "centerSkillLevel", fallback: "beginner"},
}

type mergeResolver struct {
	preserve map[models.Collection][]preservedField
}

func newMergeResolver(preserveAdminFields bool) mergeResolver {
	m := mergeResolver{preserve: make(map[models.Collection][]preservedField)}
	if preserveAdminFields {
		m.preserve[models.Customers] = adminCustomerFields
	}
	return m
}

// Merge reconciles a pulled server array with the local one. Server records
// with an unknown id are appended in server order; server records whose
// content differs from the local copy replace it in place; every other local
// record is kept as is. changed is false when nothing was added or replaced,
// in which case merged is local.
func (m mergeResolver) Merge(c models.Collection, server, local []models.Record) (merged []models.Record, changed bool) {
	localIndex := make(map[string]int, len(local))
	for i, r := range local {
		localIndex[r.ID] = i
	}

	updated := make(map[string]models.Record)
	var added []models.Record

	for _, s := range server {
		i, ok := localIndex[s.ID]
		if !ok {
			added = append(added, s)
			continue
		}
		s = m.preserveFields(c, s, local[i])
		if !s.Equal(local[i]) {
			updated[s.ID] = s
		}
	}

	if len(added) == 0 && len(updated) == 0 {
		return local, false
	}

	merged = make([]models.Record, 0, len(local)+len(added))
	for _, r := range local {
		if u, ok := updated[r.ID]; ok {
			merged = append(merged, u)
			continue
		}
		merged = append(merged, r)
	}
	merged = append(merged, added...)

	return merged, true
}

// preserveFields copies the preserved fields of local onto server, filling
// the fallback when both copies lack a field. Records that cannot be decoded
// are returned unchanged.
func (m mergeResolver) preserveFields(c models.Collection, server, local models.Record) models.Record {
	fields := m.preserve[c]
	if len(fields) == 0 {
		return server
	}

	localFields, err := local.Fields()
	if err != nil {
		return server
	}
	serverFields, err := server.Fields()
	if err != nil {
		return server
	}

	touched := false
	for _, f := range fields {
		if v := localFields[f.name]; v != nil {
			serverFields[f.name] = v
			touched = true
			continue
		}
		if serverFields[f.name] == nil {
			serverFields[f.name] = f.fallback
			touched = true
		}
	}
	if !touched {
		return server
	}

	raw, err := json.Marshal(serverFields)
	if err != nil {
		return server
	}
	return models.Record{ID: server.ID, Raw: raw}
}

// MergeVersioned applies pulled versioned records to the local array.
//
// A record is applied only when its version is newer than the one in
// state.Known. A local record whose content no longer matches the known hash
// carries unpushed edits and is kept; it will be pushed as the later write.
// Tombstones remove the local copy. The returned state has its cursor moved
// to the highest version seen.
func MergeVersioned(local []models.Record, incoming []models.VersionedRecord, state models.CollectionSyncState) ([]models.Record, models.CollectionSyncState, bool) {
	if state.Known == nil {
		state.Known = make(map[string]models.KnownRecord)
	}

	merged := make([]models.Record, len(local))
	copy(merged, local)

	index := make(map[string]int, len(merged))
	for i, r := range merged {
		index[r.ID] = i
	}

	changed := false
	removed := make(map[string]struct{})

	for _, v := range incoming {
		if v.Version > state.Cursor {
			state.Cursor = v.Version
		}

		known, isKnown := state.Known[v.ID]
		if isKnown && known.Version >= v.Version {
			continue
		}

		i, isLocal := index[v.ID]
		if _, gone := removed[v.ID]; gone {
			isLocal = false
		}

		if isLocal && isKnown && !known.Deleted && recordHash(merged[i]) != known.Hash {
			continue
		}
		if isLocal && !isKnown && !v.Deleted && recordHash(merged[i]) != recordHash(v.Record()) {
			continue
		}

		if v.Deleted {
			state.Known[v.ID] = models.KnownRecord{Version: v.Version, Deleted: true}
			if isLocal {
				removed[v.ID] = struct{}{}
				changed = true
			}
			continue
		}

		r := v.Record()
		h := recordHash(r)
		state.Known[v.ID] = models.KnownRecord{Version: v.Version, Hash: h}

		switch {
		case isLocal && recordHash(merged[i]) == h:
		case isLocal:
			merged[i] = r
			changed = true
		default:
			index[v.ID] = len(merged)
			merged = append(merged, r)
			changed = true
		}
	}

	if len(removed) > 0 {
		kept := merged[:0]
		for _, r := range merged {
			if _, gone := removed[r.ID]; !gone {
				kept = append(kept, r)
			}
		}
		merged = kept
	}

	return merged, state, changed
}
