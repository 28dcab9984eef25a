// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"time"
)

// VersionedRecord is the server-side state of a single record as served by
// the record-level protocol.
//
// Version is assigned by the server and grows monotonically within a
// collection. A record with Deleted set is a tombstone: Data is empty and the
// record must be removed by every origin that still holds it.
type VersionedRecord struct {
	ID        string          `json:"id"`
	Version   int64           `json:"version"`
	Deleted   bool            `json:"deleted"`
	Origin    string          `json:"origin,omitempty"`
	UpdatedAt time.Time       `json:"updated_at"`
	Data      json.RawMessage `json:"data,omitempty"`
}

// Record converts a live versioned record to a plain [Record].
func (v VersionedRecord) Record() Record {
	return Record{ID: v.ID, Raw: append(json.RawMessage(nil), v.Data...)}
}

// RecordChange is a single client-side mutation sent with the record-level
// protocol: either an upsert carrying the full record, or a tombstone.
type RecordChange struct {
	ID      string          `json:"id"`
	Deleted bool            `json:"deleted,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// UpsertResult reports the version the server assigned to an accepted change.
// Unchanged is set when the payload matched the stored record and no new
// version was allocated.
type UpsertResult struct {
	ID        string `json:"id"`
	Version   int64  `json:"version"`
	Deleted   bool   `json:"deleted"`
	Unchanged bool   `json:"unchanged,omitempty"`
}

// KnownRecord is what an origin remembers about a record after the last
// successful exchange with the server.
type KnownRecord struct {
	Version int64  `json:"version"`
	Hash    string `json:"hash"`
	Deleted bool   `json:"deleted,omitempty"`
}

// CollectionSyncState is the per-collection bookkeeping of the record-level
// protocol kept in origin-local storage.
type CollectionSyncState struct {
	// Cursor is the highest server version already merged locally.
	Cursor int64 `json:"cursor"`

	// Known maps record id to its last exchanged version and content hash.
	Known map[string]KnownRecord `json:"known"`

	// LastPush is the time of the last successful push, zero if none.
	LastPush time.Time `json:"last_push"`
}

// NewCollectionSyncState returns an empty state ready for use.
func NewCollectionSyncState() CollectionSyncState {
	return CollectionSyncState{Known: make(map[string]KnownRecord)}
}
