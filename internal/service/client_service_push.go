package service

import (
	"context"
	"fmt"
	"slices"

	"github.com/MKhiriev/dcms-sync/internal/utils"
	"github.com/MKhiriev/dcms-sync/models"
)

func (e *clientSyncEngine) PushCollection(ctx context.Context, c models.Collection) error {
	mark := e.dirtyMark(c)

	var err error
	if e.recordProtocol() {
		err = e.pushRecords(ctx, c)
	} else {
		err = e.pushReplace(ctx, c)
	}
	if err != nil {
		return err
	}

	e.markSynced(c, mark)
	return nil
}

func (e *clientSyncEngine) pushReplace(ctx context.Context, c models.Collection) error {
	records, _, err := e.storage.Read(ctx, c)
	if err != nil {
		return fmt.Errorf("reading %s locally: %w", c, err)
	}
	if records == nil {
		records = []models.Record{}
	}

	resp, err := e.adapter.PushCollection(ctx, c, records)
	if err != nil {
		e.handleRequestError(err)
		return mapAdapterError(err)
	}

	e.logger.Debug().Str("collection", c.String()).Int("count", resp.Count).Int64("last_update", resp.LastUpdate).Msg("collection pushed")
	return nil
}

// pushRecords sends the difference between the local array and the records
// last exchanged with the server: new and edited records as upserts, known
// records missing locally as tombstones.
func (e *clientSyncEngine) pushRecords(ctx context.Context, c models.Collection) error {
	e.localMu.Lock()
	records, _, err := e.storage.Read(ctx, c)
	if err != nil {
		e.localMu.Unlock()
		return fmt.Errorf("reading %s locally: %w", c, err)
	}
	state, err := e.storage.GetSyncState(ctx, c)
	e.localMu.Unlock()
	if err != nil {
		return fmt.Errorf("reading sync state of %s: %w", c, err)
	}

	changes, hashes := diffKnown(records, state)
	if len(changes) == 0 {
		return nil
	}

	results, err := e.adapter.UpsertRecords(ctx, c, changes)
	if err != nil {
		e.handleRequestError(err)
		return mapAdapterError(err)
	}

	e.localMu.Lock()
	defer e.localMu.Unlock()

	state, err = e.storage.GetSyncState(ctx, c)
	if err != nil {
		return fmt.Errorf("reading sync state of %s: %w", c, err)
	}
	if state.Known == nil {
		state.Known = make(map[string]models.KnownRecord, len(results))
	}
	for _, r := range results {
		if known, ok := state.Known[r.ID]; ok && known.Version > r.Version {
			continue
		}
		state.Known[r.ID] = models.KnownRecord{Version: r.Version, Hash: hashes[r.ID], Deleted: r.Deleted}
	}
	state.LastPush = e.now()

	if err = e.storage.SaveSyncState(ctx, c, state); err != nil {
		return fmt.Errorf("saving sync state of %s: %w", c, err)
	}

	e.logger.Debug().Str("collection", c.String()).Int("changes", len(changes)).Msg("records pushed")
	return nil
}

// diffKnown returns the changes to send and the content hash of every
// upserted record.
func diffKnown(records []models.Record, state models.CollectionSyncState) ([]models.RecordChange, map[string]string) {
	var changes []models.RecordChange
	hashes := make(map[string]string, len(records))
	present := make(map[string]struct{}, len(records))

	for _, r := range records {
		present[r.ID] = struct{}{}

		h := recordHash(r)
		if known, ok := state.Known[r.ID]; ok && !known.Deleted && known.Hash == h {
			continue
		}
		hashes[r.ID] = h
		changes = append(changes, models.RecordChange{ID: r.ID, Data: r.Raw})
	}

	var gone []string
	for id, known := range state.Known {
		if _, ok := present[id]; !ok && !known.Deleted {
			gone = append(gone, id)
		}
	}
	slices.Sort(gone)
	for _, id := range gone {
		changes = append(changes, models.RecordChange{ID: id, Deleted: true})
	}

	return changes, hashes
}

// recordHash is the blake2b digest of the canonical encoding of r.
func recordHash(r models.Record) string {
	canonical, err := r.Canonical()
	if err != nil {
		canonical = r.Raw
	}
	return utils.HashString(canonical)
}

func (e *clientSyncEngine) PushAllCollections(ctx context.Context) {
	for _, c := range models.KnownCollections {
		if ctx.Err() != nil {
			return
		}

		records, found, err := e.storage.Read(ctx, c)
		if err != nil {
			e.logger.Err(err).Str("func", "clientSyncEngine.PushAllCollections").Str("collection", c.String()).Msg("reading local collection failed")
			continue
		}
		if !found || len(records) == 0 {
			continue
		}

		if err = e.PushCollection(ctx, c); err != nil {
			e.logger.Warn().Err(err).Str("func", "clientSyncEngine.PushAllCollections").Str("collection", c.String()).Msg("push failed")
		}
	}
}

func (e *clientSyncEngine) PushPendingChanges(ctx context.Context) {
	if !e.hasDirty() {
		return
	}
	if !e.EnsureConnection(ctx) {
		return
	}
	e.pushPending(ctx)
}

// pushPending flushes the dirty set on an established connection.
func (e *clientSyncEngine) pushPending(ctx context.Context) {
	if e.State() != models.Connected {
		return
	}

	pending, marks := e.drainDirty()
	for _, c := range pending {
		if err := e.PushCollection(ctx, c); err != nil {
			e.logger.Warn().Err(err).Str("func", "clientSyncEngine.pushPending").Str("collection", c.String()).Msg("push failed, collection stays dirty")
			e.requeue(c, marks[c])
		}
	}
}
