package grpc

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/dcms-sync/internal/app"
	"github.com/MKhiriev/dcms-sync/internal/logger"
	"github.com/MKhiriev/dcms-sync/models"
)

// Health reports liveness. It is the only method callable without a token.
func (h *Handler) Health(ctx context.Context, _ *HealthRequest) (*models.HealthResponse, error) {
	return &models.HealthResponse{Status: "ok", Timestamp: h.now().UTC()}, nil
}

// GetCollection returns the stored array of req.Collection, or an empty one.
func (h *Handler) GetCollection(ctx context.Context, req *CollectionRequest) (*CollectionResponse, error) {
	c, err := collectionFromRequest(ctx, req.Collection)
	if err != nil {
		return nil, err
	}

	records, err := h.services.SyncService.GetCollection(ctx, c)
	if err != nil {
		return nil, h.serviceError(ctx, err, "*Handler.GetCollection")
	}
	if records == nil {
		records = []models.Record{}
	}

	return &CollectionResponse{Records: records}, nil
}

// ReplaceCollection overwrites the stored array. A nil record list is
// rejected the same way the HTTP transport rejects a non-array body.
func (h *Handler) ReplaceCollection(ctx context.Context, req *ReplaceCollectionRequest) (*models.PushResponse, error) {
	c, err := collectionFromRequest(ctx, req.Collection)
	if err != nil {
		return nil, err
	}
	if req.Records == nil {
		return nil, status.Error(codes.InvalidArgument, app.MsgNotAnArray)
	}

	resp, err := h.services.SyncService.ReplaceCollection(ctx, c, req.Records)
	if err != nil {
		return nil, h.serviceError(ctx, err, "*Handler.ReplaceCollection")
	}

	return &resp, nil
}

func (h *Handler) GetRecordsSince(ctx context.Context, req *RecordsSinceRequest) (*RecordsSinceResponse, error) {
	c, err := collectionFromRequest(ctx, req.Collection)
	if err != nil {
		return nil, err
	}
	if req.Since < 0 {
		return nil, status.Error(codes.InvalidArgument, app.MsgInvalidCursor)
	}

	records, err := h.services.SyncService.GetRecordsSince(ctx, c, req.Since)
	if err != nil {
		return nil, h.serviceError(ctx, err, "*Handler.GetRecordsSince")
	}
	if records == nil {
		records = []models.VersionedRecord{}
	}

	return &RecordsSinceResponse{Records: records}, nil
}

func (h *Handler) UpsertRecords(ctx context.Context, req *UpsertRecordsRequest) (*UpsertRecordsResponse, error) {
	c, err := collectionFromRequest(ctx, req.Collection)
	if err != nil {
		return nil, err
	}

	results, err := h.services.SyncService.UpsertRecords(ctx, c, req.Changes)
	if err != nil {
		return nil, h.serviceError(ctx, err, "*Handler.UpsertRecords")
	}

	return &UpsertRecordsResponse{Results: results}, nil
}

func collectionFromRequest(ctx context.Context, name string) (models.Collection, error) {
	c := models.Collection(name)
	if !c.Valid() {
		logger.FromContext(ctx).Warn().Str("resource", name).Msg("unknown collection requested")
		return "", status.Error(codes.NotFound, app.MsgUnknownCollection)
	}
	return c, nil
}

func (h *Handler) serviceError(ctx context.Context, err error, fn string) error {
	st := statusFromError(err)

	log := logger.FromContext(ctx)
	event := log.Warn()
	if status.Code(st) == codes.Internal {
		event = log.Error()
	}
	event.Err(err).Str("func", fn).Msg("request failed")

	return st
}
