// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ConnectionState is the state of an origin's link to the sync server.
type ConnectionState int

const (
	Disconnected ConnectionState = iota
	Connecting
	Connected
)

func (s ConnectionState) String() string {
	switch s {
	case Disconnected:
		return "disconnected"
	case Connecting:
		return "connecting"
	case Connected:
		return "connected"
	default:
		return "unknown"
	}
}

// SyncStatus is a point-in-time snapshot of the engine, used for
// diagnostics and the status dashboard.
type SyncStatus struct {
	State ConnectionState

	// Dirty lists collections with unflushed local writes, sorted.
	Dirty []Collection

	// LastSync holds the last successful push time per collection.
	LastSync map[Collection]time.Time

	// ReconnectScheduled is true while a reconnect timer is pending.
	ReconnectScheduled bool

	Protocol string
}
