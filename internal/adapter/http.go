package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/dcms-sync/internal/config"
	"github.com/MKhiriev/dcms-sync/internal/logger"
	"github.com/MKhiriev/dcms-sync/internal/utils"
	"github.com/MKhiriev/dcms-sync/internal/validators"
	"github.com/MKhiriev/dcms-sync/models"
)

// tokenRefreshMargin renews the origin token slightly before it expires.
const tokenRefreshMargin = time.Minute

// contentHashHeader lets the server reject pushes damaged in transit.
const contentHashHeader = "X-Content-Hash"

// httpSyncAdapter implements [SyncServerAdapter] over the HTTP API.
type httpSyncAdapter struct {
	// client is the resty client bound to the server base URL.
	client    *utils.HTTPClient
	// validator checks pulled arrays before they reach the engine.
	validator validators.Validator

	// app carries the origin name and token signing key.
	app config.ClientApp

	// mu guards the cached origin token and its expiry.
	mu        sync.Mutex
	token     string
	expiresAt time.Time

	logger *logger.Logger
}

// NewHTTPSyncAdapter builds a [SyncServerAdapter] for the server at
// adapterCfg.HTTPAddress. When appCfg.TokenSignKey is set every sync request
// carries a bearer token naming appCfg.Origin.
//
// Parameters:
//   - adapterCfg: server address, with or without a scheme, and the
//     per-request timeout.
//   - appCfg: origin identity; TokenSignKey enables authentication.
//   - logger: structured logger for adapter diagnostics.
//
// An empty or unparsable address is returned as an error.
func NewHTTPSyncAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (SyncServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpSyncAdapter{
		client:    utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		validator: validators.NewCollectionValidator(),
		app:       appCfg,
		logger:    logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpSyncAdapter) Health(ctx context.Context) (models.HealthResponse, error) {
	var health models.HealthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&health).
		Get("/health")
	if err != nil {
		return health, fmt.Errorf("%w: health request: %w", ErrServerUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return health, err
	}

	return health, nil
}

func (h *httpSyncAdapter) PullCollection(ctx context.Context, c models.Collection) ([]models.Record, error) {
	req, err := h.syncRequest(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := req.
		SetPathParam("resource", c.String()).
		Get("/api/sync/{resource}")
	if err != nil {
		return nil, fmt.Errorf("%w: pull %s: %w", ErrServerUnavailable, c, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return h.decodeCollection(ctx, c, resp.Body())
}

func (h *httpSyncAdapter) PushCollection(ctx context.Context, c models.Collection, records []models.Record) (models.PushResponse, error) {
	var result models.PushResponse

	body, err := models.EncodeRecords(records)
	if err != nil {
		return result, fmt.Errorf("encode %s: %w", c, err)
	}

	req, err := h.syncRequest(ctx)
	if err != nil {
		return result, err
	}

	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetHeader(contentHashHeader, utils.HashString(body)).
		SetPathParam("resource", c.String()).
		SetBody(body).
		SetResult(&result).
		Post("/api/sync/{resource}")
	if err != nil {
		return result, fmt.Errorf("%w: push %s: %w", ErrServerUnavailable, c, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return result, err
	}

	return result, nil
}

func (h *httpSyncAdapter) LastUpdate(ctx context.Context, c models.Collection) (time.Time, error) {
	var result models.LastUpdateResponse

	req, err := h.syncRequest(ctx)
	if err != nil {
		return time.Time{}, err
	}

	resp, err := req.
		SetPathParam("resource", c.String()).
		SetResult(&result).
		Get("/api/sync/{resource}/lastUpdate")
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: last update %s: %w", ErrServerUnavailable, c, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return time.Time{}, err
	}

	if result.LastUpdate == nil {
		return time.Time{}, nil
	}
	return time.UnixMilli(*result.LastUpdate), nil
}

func (h *httpSyncAdapter) PullAll(ctx context.Context) (models.Snapshot, error) {
	req, err := h.syncRequest(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := req.Get("/api/sync/all")
	if err != nil {
		return nil, fmt.Errorf("%w: pull all: %w", ErrServerUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var raw map[models.Collection]json.RawMessage
	if err = json.Unmarshal(resp.Body(), &raw); err != nil {
		return nil, fmt.Errorf("%w: decode all: %w", ErrMalformedPayload, err)
	}

	snapshot := make(models.Snapshot, len(raw))
	for c, body := range raw {
		if !c.Valid() {
			h.logger.Warn().Str("func", "httpSyncAdapter.PullAll").Str("collection", c.String()).Msg("skipping unknown collection")
			continue
		}
		records, err := h.decodeCollection(ctx, c, body)
		if err != nil {
			return nil, err
		}
		snapshot[c] = records
	}
	return snapshot, nil
}

func (h *httpSyncAdapter) UpsertRecords(ctx context.Context, c models.Collection, changes []models.RecordChange) ([]models.UpsertResult, error) {
	var results []models.UpsertResult

	body, err := json.Marshal(changes)
	if err != nil {
		return nil, fmt.Errorf("encode %s changes: %w", c, err)
	}

	req, err := h.syncRequest(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetHeader(contentHashHeader, utils.HashString(body)).
		SetPathParam("resource", c.String()).
		SetBody(body).
		SetResult(&results).
		Put("/api/sync/{resource}/records")
	if err != nil {
		return nil, fmt.Errorf("%w: upsert %s: %w", ErrServerUnavailable, c, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	if len(results) != len(changes) {
		return nil, fmt.Errorf("%w: upsert %s: %d results for %d changes", ErrMalformedPayload, c, len(results), len(changes))
	}
	return results, nil
}

func (h *httpSyncAdapter) PullRecordsSince(ctx context.Context, c models.Collection, since int64) ([]models.VersionedRecord, error) {
	req, err := h.syncRequest(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := req.
		SetPathParam("resource", c.String()).
		SetQueryParam("since", strconv.FormatInt(since, 10)).
		Get("/api/sync/{resource}/records")
	if err != nil {
		return nil, fmt.Errorf("%w: pull records %s: %w", ErrServerUnavailable, c, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var records []models.VersionedRecord
	if err = json.Unmarshal(resp.Body(), &records); err != nil {
		return nil, fmt.Errorf("%w: decode records %s: %w", ErrMalformedPayload, c, err)
	}
	if err = h.validator.Validate(ctx, records); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrMalformedPayload, c, err)
	}
	if records == nil {
		records = []models.VersionedRecord{}
	}
	return records, nil
}

func (h *httpSyncAdapter) decodeCollection(ctx context.Context, c models.Collection, body []byte) ([]models.Record, error) {
	records, err := models.DecodeRecords(body)
	if err != nil {
		return nil, fmt.Errorf("%w: decode %s: %w", ErrMalformedPayload, c, err)
	}
	if err = h.validator.Validate(ctx, records); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrMalformedPayload, c, err)
	}
	return records, nil
}

// syncRequest returns a request carrying the origin bearer token, if any.
func (h *httpSyncAdapter) syncRequest(ctx context.Context) (*resty.Request, error) {
	req := h.client.R().SetContext(ctx)

	token, err := h.originToken()
	if err != nil {
		return nil, err
	}
	if token != "" {
		req.SetAuthToken(token)
	}
	return req, nil
}

func (h *httpSyncAdapter) originToken() (string, error) {
	if h.app.TokenSignKey == "" {
		return "", nil
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.token != "" && time.Until(h.expiresAt) > tokenRefreshMargin {
		return h.token, nil
	}

	token, err := utils.GenerateOriginToken(h.app.TokenIssuer, h.app.Origin, h.app.TokenDuration, h.app.TokenSignKey)
	if err != nil {
		return "", fmt.Errorf("generate origin token: %w", err)
	}

	h.token = token.String()
	h.expiresAt = time.Now().Add(h.app.TokenDuration)
	return h.token, nil
}
