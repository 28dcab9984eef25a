package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/dcms-sync/internal/logger"
	"github.com/MKhiriev/dcms-sync/internal/store"
	"github.com/MKhiriev/dcms-sync/internal/utils"
	"github.com/MKhiriev/dcms-sync/models"
)

// AnonymousOrigin is recorded on writes made without an origin token.
const AnonymousOrigin = "anonymous"

// syncService is the concrete implementation of SyncService. It is a thin
// layer over a CollectionRepository that resolves the writing origin and
// shapes repository results into protocol replies.
type syncService struct {
	repository store.CollectionRepository

	now func() time.Time

	logger *logger.Logger
}

// NewSyncService constructs a SyncService backed by repository.
func NewSyncService(repository store.CollectionRepository, logger *logger.Logger) SyncService {
	logger.Debug().Msg("creating sync service")

	return &syncService{
		repository: repository,
		now:        time.Now,
		logger:     logger,
	}
}

func (s *syncService) GetCollection(ctx context.Context, c models.Collection) ([]models.Record, error) {
	records, err := s.repository.GetCollection(ctx, c)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "syncService.GetCollection").Str("collection", c.String()).Msg("reading collection failed")
		return nil, fmt.Errorf("reading collection %s failed: %w", c, err)
	}
	return records, nil
}

// ReplaceCollection stores records as the complete content of c on behalf of
// the origin carried by ctx.
func (s *syncService) ReplaceCollection(ctx context.Context, c models.Collection, records []models.Record) (models.PushResponse, error) {
	origin := originFromContext(ctx)
	log := logger.FromContext(ctx)

	lastUpdate, err := s.repository.ReplaceCollection(ctx, c, records, origin)
	if err != nil {
		log.Err(err).Str("func", "syncService.ReplaceCollection").
			Str("collection", c.String()).
			Str("origin", origin).
			Int("count", len(records)).
			Msg("replacing collection failed")
		return models.PushResponse{}, fmt.Errorf("replacing collection %s failed: %w", c, err)
	}

	log.Info().Str("collection", c.String()).Str("origin", origin).Int("count", len(records)).Msg("collection replaced")

	return models.PushResponse{
		Success:    true,
		Count:      len(records),
		LastUpdate: lastUpdate.UnixMilli(),
	}, nil
}

func (s *syncService) LastUpdate(ctx context.Context, c models.Collection) (models.LastUpdateResponse, error) {
	lastUpdate, err := s.repository.LastUpdate(ctx, c)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "syncService.LastUpdate").Str("collection", c.String()).Msg("reading last update failed")
		return models.LastUpdateResponse{}, fmt.Errorf("reading last update of %s failed: %w", c, err)
	}
	return models.LastUpdateResponse{LastUpdate: models.UnixMilli(lastUpdate)}, nil
}

func (s *syncService) GetAll(ctx context.Context) (models.Snapshot, error) {
	snapshot, err := s.repository.GetAll(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "syncService.GetAll").Msg("reading all collections failed")
		return nil, fmt.Errorf("reading all collections failed: %w", err)
	}
	return snapshot, nil
}

func (s *syncService) UpsertRecords(ctx context.Context, c models.Collection, changes []models.RecordChange) ([]models.UpsertResult, error) {
	origin := originFromContext(ctx)

	results, err := s.repository.UpsertRecords(ctx, c, changes, origin)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "syncService.UpsertRecords").
			Str("collection", c.String()).
			Str("origin", origin).
			Int("changes", len(changes)).
			Msg("upserting records failed")
		return nil, fmt.Errorf("upserting records of %s failed: %w", c, err)
	}
	return results, nil
}

func (s *syncService) GetRecordsSince(ctx context.Context, c models.Collection, since int64) ([]models.VersionedRecord, error) {
	records, err := s.repository.GetRecordsSince(ctx, c, since)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "syncService.GetRecordsSince").
			Str("collection", c.String()).
			Int64("since", since).
			Msg("reading versioned records failed")
		return nil, fmt.Errorf("reading records of %s since %d failed: %w", c, since, err)
	}
	return records, nil
}

func (s *syncService) PurgeTombstones(ctx context.Context, ttl time.Duration) (int64, error) {
	olderThan := s.now().Add(-ttl)

	purged, err := s.repository.PurgeTombstones(ctx, olderThan)
	if err != nil {
		return 0, fmt.Errorf("purging tombstones failed: %w", err)
	}
	return purged, nil
}

func originFromContext(ctx context.Context) string {
	if origin, ok := utils.GetOriginFromContext(ctx); ok {
		return origin
	}
	return AnonymousOrigin
}
