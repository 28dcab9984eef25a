package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/dcms-sync/internal/validators"
	"github.com/MKhiriev/dcms-sync/models"
)

// SyncValidationService rejects malformed input before it reaches the
// wrapped SyncService. Validator errors stay in the returned chain so
// transports can tell an unknown collection from a bad payload.
type SyncValidationService struct {
	inner     SyncService
	validator validators.Validator
}

func NewSyncValidationService() SyncServiceWrapper {
	return &SyncValidationService{
		validator: validators.NewCollectionValidator(),
	}
}

func (v *SyncValidationService) GetCollection(ctx context.Context, c models.Collection) ([]models.Record, error) {
	if err := v.validator.Validate(ctx, c); err != nil {
		return nil, err
	}
	return v.inner.GetCollection(ctx, c)
}

func (v *SyncValidationService) ReplaceCollection(ctx context.Context, c models.Collection, records []models.Record) (models.PushResponse, error) {
	if err := v.validator.Validate(ctx, c); err != nil {
		return models.PushResponse{}, err
	}
	if err := v.validator.Validate(ctx, records); err != nil {
		return models.PushResponse{}, fmt.Errorf("error during records validation before saving: %w", err)
	}
	return v.inner.ReplaceCollection(ctx, c, records)
}

func (v *SyncValidationService) LastUpdate(ctx context.Context, c models.Collection) (models.LastUpdateResponse, error) {
	if err := v.validator.Validate(ctx, c); err != nil {
		return models.LastUpdateResponse{}, err
	}
	return v.inner.LastUpdate(ctx, c)
}

func (v *SyncValidationService) GetAll(ctx context.Context) (models.Snapshot, error) {
	return v.inner.GetAll(ctx)
}

func (v *SyncValidationService) UpsertRecords(ctx context.Context, c models.Collection, changes []models.RecordChange) ([]models.UpsertResult, error) {
	if err := v.validator.Validate(ctx, c); err != nil {
		return nil, err
	}
	if len(changes) == 0 {
		return nil, ErrValidationNoChangesProvided
	}
	if err := v.validator.Validate(ctx, changes); err != nil {
		return nil, fmt.Errorf("error during changes validation before saving: %w", err)
	}
	return v.inner.UpsertRecords(ctx, c, changes)
}

func (v *SyncValidationService) GetRecordsSince(ctx context.Context, c models.Collection, since int64) ([]models.VersionedRecord, error) {
	if err := v.validator.Validate(ctx, c); err != nil {
		return nil, err
	}
	if since < 0 {
		return nil, ErrValidationInvalidCursor
	}
	return v.inner.GetRecordsSince(ctx, c, since)
}

func (v *SyncValidationService) PurgeTombstones(ctx context.Context, ttl time.Duration) (int64, error) {
	if ttl < 0 {
		return 0, fmt.Errorf("%w: negative tombstone ttl", ErrInvalidDataProvided)
	}
	return v.inner.PurgeTombstones(ctx, ttl)
}

func (v *SyncValidationService) Wrap(wrapper SyncService) SyncService {
	v.inner = wrapper
	return v
}
