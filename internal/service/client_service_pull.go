package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/dcms-sync/internal/adapter"
	"github.com/MKhiriev/dcms-sync/models"
)

func (e *clientSyncEngine) PullCollection(ctx context.Context, c models.Collection) ([]models.Record, bool) {
	records, err := e.adapter.PullCollection(ctx, c)
	if err != nil {
		e.logPullError(err, c)
		e.handleRequestError(err)
		return nil, false
	}
	return records, true
}

func (e *clientSyncEngine) PullAllCollections(ctx context.Context) {
	for _, c := range models.KnownCollections {
		if ctx.Err() != nil {
			return
		}

		if e.recordProtocol() {
			e.pullRecords(ctx, c)
			continue
		}

		server, ok := e.PullCollection(ctx, c)
		if !ok {
			continue
		}
		e.mergeCollection(ctx, c, server)
	}
}

// mergeCollection merges a pulled array into the local store and publishes
// a synced event when the local array changed. A server that came back empty
// while the origin holds data is reseeded from the local copy instead.
func (e *clientSyncEngine) mergeCollection(ctx context.Context, c models.Collection, server []models.Record) {
	e.localMu.Lock()

	local, _, err := e.storage.Read(ctx, c)
	if err != nil {
		e.localMu.Unlock()
		e.logger.Err(err).Str("func", "clientSyncEngine.mergeCollection").Str("collection", c.String()).Msg("reading local collection failed")
		return
	}

	if len(server) == 0 && len(local) > 0 {
		e.localMu.Unlock()
		e.logger.Info().Str("collection", c.String()).Int("local", len(local)).Msg("server copy is empty, reseeding from local data")
		if err = e.PushCollection(ctx, c); err != nil {
			e.logger.Warn().Err(err).Str("collection", c.String()).Msg("reseed push failed")
		}
		return
	}

	merged, changed := e.merger.Merge(c, server, local)
	if !changed {
		e.localMu.Unlock()
		return
	}

	err = e.storage.Write(ctx, c, merged)
	e.localMu.Unlock()
	if err != nil {
		e.logger.Err(err).Str("func", "clientSyncEngine.mergeCollection").Str("collection", c.String()).Msg("saving merged collection failed")
		return
	}

	e.logger.Debug().Str("collection", c.String()).Int("count", len(merged)).Msg("merged server changes")
	e.bus.Publish(models.Event{Kind: models.EventSynced, Collection: c, Records: merged, At: e.now()})
}

// pullRecords fetches versioned changes since the stored cursor and applies
// them with MergeVersioned.
func (e *clientSyncEngine) pullRecords(ctx context.Context, c models.Collection) {
	state, err := e.storage.GetSyncState(ctx, c)
	if err != nil {
		e.logger.Err(err).Str("func", "clientSyncEngine.pullRecords").Str("collection", c.String()).Msg("reading sync state failed")
		return
	}

	incoming, err := e.adapter.PullRecordsSince(ctx, c, state.Cursor)
	if err != nil {
		e.logPullError(err, c)
		e.handleRequestError(err)
		return
	}
	if len(incoming) == 0 {
		return
	}

	e.localMu.Lock()

	local, _, err := e.storage.Read(ctx, c)
	if err == nil {
		state, err = e.storage.GetSyncState(ctx, c)
	}
	if err != nil {
		e.localMu.Unlock()
		e.logger.Err(err).Str("func", "clientSyncEngine.pullRecords").Str("collection", c.String()).Msg("reading local state failed")
		return
	}

	merged, state, changed := MergeVersioned(local, incoming, state)
	if changed {
		err = e.storage.Write(ctx, c, merged)
	}
	if err == nil {
		err = e.storage.SaveSyncState(ctx, c, state)
	}
	e.localMu.Unlock()

	if err != nil {
		e.logger.Err(err).Str("func", "clientSyncEngine.pullRecords").Str("collection", c.String()).Msg("saving merged records failed")
		return
	}

	e.logger.Debug().Str("collection", c.String()).Int("incoming", len(incoming)).Int64("cursor", state.Cursor).Msg("pulled versioned records")

	if changed {
		e.bus.Publish(models.Event{Kind: models.EventSynced, Collection: c, Records: merged, At: e.now()})
	}
}

// logPullError reports malformed payloads loudly; other failures are
// expected while offline.
func (e *clientSyncEngine) logPullError(err error, c models.Collection) {
	if errors.Is(err, adapter.ErrMalformedPayload) {
		e.logger.Error().Err(err).Str("collection", c.String()).Msg("server sent malformed data, treating it as no data")
		return
	}
	e.logger.Warn().Err(mapAdapterError(err)).Str("collection", c.String()).Msg("pull failed")
}
