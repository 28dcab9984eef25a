package service

import (
	"context"
	"time"

	"github.com/MKhiriev/dcms-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// SyncService is the server side of the sync protocol. The origin of a
// write is taken from the request context (see utils.WithOrigin).
type SyncService interface {
	GetCollection(ctx context.Context, c models.Collection) ([]models.Record, error)
	ReplaceCollection(ctx context.Context, c models.Collection, records []models.Record) (models.PushResponse, error)
	LastUpdate(ctx context.Context, c models.Collection) (models.LastUpdateResponse, error)
	GetAll(ctx context.Context) (models.Snapshot, error)

	UpsertRecords(ctx context.Context, c models.Collection, changes []models.RecordChange) ([]models.UpsertResult, error)
	GetRecordsSince(ctx context.Context, c models.Collection, since int64) ([]models.VersionedRecord, error)

	// PurgeTombstones drops tombstones older than ttl.
	PurgeTombstones(ctx context.Context, ttl time.Duration) (int64, error)
}

// AuthService issues and checks origin tokens.
type AuthService interface {
	// Enabled reports whether a sign key is configured. Without one the sync
	// API accepts anonymous requests.
	Enabled() bool
	CreateToken(ctx context.Context, origin string) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// SyncServiceWrapper defines middleware composition for SyncService.
// Implementations wrap an existing SyncService to add behavior such as
// validation.
type SyncServiceWrapper interface {
	Wrap(SyncService) SyncService
}
