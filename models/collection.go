// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Collection is the name of a replicated resource collection.
//
// The vocabulary is fixed: every "all collections" loop in the module walks
// [KnownCollections] and nothing else.
type Collection string

const (
	Bookings  Collection = "bookings"
	Customers Collection = "customers"
	Locations Collection = "locations"
	Equipment Collection = "equipment"
)

// KnownCollections lists every collection in the fixed iteration order
// used by push-all and pull-all passes.
var KnownCollections = []Collection{Bookings, Customers, Locations, Equipment}

// storageKeyPrefix is prepended to a collection name to build its key
// in origin-local storage.
const storageKeyPrefix = "dcms_"

// Valid reports whether c belongs to the known vocabulary.
func (c Collection) Valid() bool {
	for _, known := range KnownCollections {
		if c == known {
			return true
		}
	}
	return false
}

// StorageKey returns the origin-local storage key, e.g. "dcms_bookings".
func (c Collection) StorageKey() string {
	return storageKeyPrefix + string(c)
}

func (c Collection) String() string {
	return string(c)
}
