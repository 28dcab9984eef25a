// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// PushResponse is returned by the server after a whole-collection replace.
type PushResponse struct {
	Success bool `json:"success"`

	// Count is the number of records in the accepted array.
	Count int `json:"count"`

	// LastUpdate is the server time of the replace in Unix milliseconds.
	LastUpdate int64 `json:"lastUpdate"`
}

// LastUpdateResponse carries the time of the latest write to a collection in
// Unix milliseconds, or nil if the collection was never written.
type LastUpdateResponse struct {
	LastUpdate *int64 `json:"lastUpdate"`
}

// HealthResponse is the body of the health endpoint.
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// Snapshot maps every known collection to its current records.
type Snapshot map[Collection][]Record

// UnixMilli converts t to milliseconds, returning nil for the zero time.
func UnixMilli(t time.Time) *int64 {
	if t.IsZero() {
		return nil
	}
	ms := t.UnixMilli()
	return &ms
}
