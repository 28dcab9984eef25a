// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to the dcms sync server on behalf of one origin.
//
// [SyncServerAdapter] hides the transport from the sync engine. The package
// ships a resty-based HTTP implementation ([NewHTTPSyncAdapter]). Replies are
// validated at this boundary, so the engine only ever sees well-formed
// collections; anything else wraps [ErrMalformedPayload]. Failures to reach
// the server wrap [ErrServerUnavailable], which the engine treats as a lost
// connection.
package adapter

import (
	"context"
	"time"

	"github.com/MKhiriev/dcms-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// SyncServerAdapter is the client side of the sync HTTP API.
type SyncServerAdapter interface {
	// Health probes GET /health.
	Health(ctx context.Context) (models.HealthResponse, error)

	// PullCollection fetches the server's copy of c.
	PullCollection(ctx context.Context, c models.Collection) ([]models.Record, error)

	// PushCollection sends records as the complete replacement of c.
	PushCollection(ctx context.Context, c models.Collection, records []models.Record) (models.PushResponse, error)

	// LastUpdate returns the server time of the latest write to c, or the
	// zero time when c was never written.
	LastUpdate(ctx context.Context, c models.Collection) (time.Time, error)

	// PullAll fetches every collection in one request.
	PullAll(ctx context.Context) (models.Snapshot, error)

	// UpsertRecords sends per-record changes of c.
	UpsertRecords(ctx context.Context, c models.Collection, changes []models.RecordChange) ([]models.UpsertResult, error)

	// PullRecordsSince fetches versioned records of c newer than since.
	PullRecordsSince(ctx context.Context, c models.Collection, since int64) ([]models.VersionedRecord, error)
}
