// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// EventKind classifies an in-process collection notification.
type EventKind string

const (
	// EventSynced is emitted by the engine after a pull changed local data.
	EventSynced EventKind = "synced"

	// EventCreated and EventUpdated are emitted by application writes.
	EventCreated EventKind = "created"
	EventUpdated EventKind = "updated"
)

// Event is delivered to subscribers of a collection. Records holds the full
// collection as it was persisted when the event fired.
type Event struct {
	Kind       EventKind
	Collection Collection
	Records    []Record
	At         time.Time
}

// Name returns the legacy event name, e.g. "dcms_bookings_synced".
func (e Event) Name() string {
	return e.Collection.StorageKey() + "_" + string(e.Kind)
}

// EventHandler receives collection notifications. It runs on the publishing
// goroutine and must not block.
type EventHandler func(event Event)
