// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/MKhiriev/dcms-sync/internal/adapter"
	"github.com/MKhiriev/dcms-sync/internal/config"
	"github.com/MKhiriev/dcms-sync/internal/logger"
	"github.com/MKhiriev/dcms-sync/internal/store"
	"github.com/MKhiriev/dcms-sync/internal/validators"
	"github.com/MKhiriev/dcms-sync/models"
)

// clientSyncEngine implements ClientSyncEngine.
//
// Engine state (connection state, dirty set, timers, last-sync times) is
// guarded by mu. Local read-modify-write sequences (merge, save, record
// bookkeeping) are serialized by localMu. Network calls never run under mu.
type clientSyncEngine struct {
	// storage is the origin's local collection cache.
	storage   store.LocalStorage
	// adapter talks to the sync server.
	adapter   adapter.SyncServerAdapter
	bus       EventBus
	validator validators.Validator
	merger    mergeResolver

	cfg config.ClientSync

	// probes collapses concurrent health probes into one request.
	probes singleflight.Group
	// jobs tracks background pushes and pulls so Stop can wait for them.
	jobs   *clientSyncJob

	mu             sync.Mutex
	state          models.ConnectionState
	// dirty maps a collection to the sequence number of its latest mark.
	// A push clears the entry only if no newer mark arrived meanwhile.
	dirty          map[models.Collection]uint64
	markSeq        uint64
	lastSync       map[models.Collection]time.Time
	reconnectTimer *time.Timer
	pushTimer      *time.Timer

	localMu sync.Mutex

	now       func() time.Time
	afterFunc func(d time.Duration, f func()) *time.Timer

	logger *logger.Logger
}

// NewClientSyncEngine builds an idle engine. Nothing runs until Start or the
// first MarkChanged.
//
// Parameters:
//   - storage: local collection cache of the origin.
//   - serverAdapter: client of the sync server, usually from
//     [adapter.NewHTTPSyncAdapter].
//   - bus: event bus for synced notifications; nil creates a private one.
//   - cfg: delays, protocol and merge options. An empty protocol selects
//     whole-collection replace.
//   - logger: structured logger for engine diagnostics.
func NewClientSyncEngine(storage store.LocalStorage, serverAdapter adapter.SyncServerAdapter, bus EventBus, cfg config.ClientSync, logger *logger.Logger) ClientSyncEngine {
	logger.Debug().Str("protocol", cfg.Protocol).Msg("creating client sync engine")

	if cfg.Protocol == "" {
		cfg.Protocol = config.ProtocolReplace
	}
	if bus == nil {
		bus = NewEventBus()
	}

	return &clientSyncEngine{
		storage:   storage,
		adapter:   serverAdapter,
		bus:       bus,
		validator: validators.NewCollectionValidator(),
		merger:    newMergeResolver(cfg.PreserveAdminFields),
		cfg:       cfg,
		jobs:      newClientSyncJob(),
		state:     models.Disconnected,
		dirty:     make(map[models.Collection]uint64),
		lastSync:  make(map[models.Collection]time.Time),
		now:       time.Now,
		afterFunc: time.AfterFunc,
		logger:    logger,
	}
}

func (e *clientSyncEngine) Start(ctx context.Context) error {
	if e.jobs.Stopped() {
		return ErrEngineStopped
	}

	if err := e.storage.EnsureCollections(ctx, models.KnownCollections...); err != nil {
		e.logger.Err(err).Str("func", "clientSyncEngine.Start").Msg("initializing local collections failed")
		return fmt.Errorf("initializing local collections: %w", err)
	}

	e.jobs.Go(func(ctx context.Context) {
		e.EnsureConnection(ctx)
	})

	e.logger.Info().Str("protocol", e.cfg.Protocol).Msg("sync engine started")
	return nil
}

func (e *clientSyncEngine) Stop() {
	e.mu.Lock()
	if e.reconnectTimer != nil {
		e.reconnectTimer.Stop()
		e.reconnectTimer = nil
	}
	if e.pushTimer != nil {
		e.pushTimer.Stop()
		e.pushTimer = nil
	}
	e.mu.Unlock()

	e.jobs.Stop()
	e.logger.Info().Msg("sync engine stopped")
}

func (e *clientSyncEngine) Refresh(ctx context.Context) {
	e.PushAllCollections(ctx)
	e.PushPendingChanges(ctx)
	e.PullAllCollections(ctx)
}

// SaveCollection is the write path for application code.
func (e *clientSyncEngine) SaveCollection(ctx context.Context, c models.Collection, records []models.Record, kind models.EventKind) error {
	if err := e.validator.Validate(ctx, c); err != nil {
		return err
	}
	if err := e.validator.Validate(ctx, records); err != nil {
		return fmt.Errorf("error during records validation before saving: %w", err)
	}

	e.localMu.Lock()
	err := e.storage.Write(ctx, c, records)
	e.localMu.Unlock()
	if err != nil {
		e.logger.Err(err).Str("func", "clientSyncEngine.SaveCollection").Str("collection", c.String()).Msg("local write failed")
		return fmt.Errorf("saving %s locally: %w", c, err)
	}

	if kind != "" {
		e.bus.Publish(models.Event{Kind: kind, Collection: c, Records: records, At: e.now()})
	}

	e.MarkChanged(c)
	return nil
}

func (e *clientSyncEngine) Collection(ctx context.Context, c models.Collection) ([]models.Record, error) {
	records, found, err := e.storage.Read(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("reading %s locally: %w", c, err)
	}
	if !found {
		return []models.Record{}, nil
	}
	return records, nil
}

func (e *clientSyncEngine) LastServerUpdate(ctx context.Context, c models.Collection) (time.Time, error) {
	t, err := e.adapter.LastUpdate(ctx, c)
	if err != nil {
		e.handleRequestError(err)
		return time.Time{}, mapAdapterError(err)
	}
	return t, nil
}

func (e *clientSyncEngine) ServerSnapshot(ctx context.Context) (models.Snapshot, error) {
	snapshot, err := e.adapter.PullAll(ctx)
	if err != nil {
		e.handleRequestError(err)
		return nil, mapAdapterError(err)
	}
	return snapshot, nil
}

func (e *clientSyncEngine) Subscribe(c models.Collection, handler models.EventHandler) func() {
	return e.bus.Subscribe(c, handler)
}

func (e *clientSyncEngine) Status() models.SyncStatus {
	e.mu.Lock()
	defer e.mu.Unlock()

	dirty := make([]models.Collection, 0, len(e.dirty))
	for c := range e.dirty {
		dirty = append(dirty, c)
	}
	slices.Sort(dirty)

	lastSync := make(map[models.Collection]time.Time, len(e.lastSync))
	for c, t := range e.lastSync {
		lastSync[c] = t
	}

	return models.SyncStatus{
		State:              e.state,
		Dirty:              dirty,
		LastSync:           lastSync,
		ReconnectScheduled: e.reconnectTimer != nil,
		Protocol:           e.cfg.Protocol,
	}
}

func (e *clientSyncEngine) recordProtocol() bool {
	return e.cfg.Protocol == config.ProtocolRecord
}
