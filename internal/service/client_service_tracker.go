package service

import (
	"context"
	"slices"

	"github.com/MKhiriev/dcms-sync/models"
)

func (e *clientSyncEngine) MarkChanged(c models.Collection) {
	e.mu.Lock()
	e.markSeq++
	e.dirty[c] = e.markSeq
	connected := e.state == models.Connected
	if connected {
		e.schedulePushLocked()
	}
	e.mu.Unlock()

	e.logger.Debug().Str("collection", c.String()).Bool("connected", connected).Msg("collection marked changed")

	e.jobs.Go(func(ctx context.Context) {
		e.EnsureConnection(ctx)
	})
}

// schedulePushLocked arms the pending-push timer. Marks arriving while it is
// armed are flushed by the same push.
func (e *clientSyncEngine) schedulePushLocked() {
	if e.pushTimer != nil || e.jobs.Stopped() {
		return
	}

	e.pushTimer = e.afterFunc(e.cfg.PushDelay, func() {
		e.mu.Lock()
		e.pushTimer = nil
		e.mu.Unlock()

		e.jobs.Go(e.PushPendingChanges)
	})
}

// drainDirty empties the dirty set and returns its entries with their mark
// sequence, ordered by collection name.
func (e *clientSyncEngine) drainDirty() ([]models.Collection, map[models.Collection]uint64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	marks := make(map[models.Collection]uint64, len(e.dirty))
	pending := make([]models.Collection, 0, len(e.dirty))
	for c, seq := range e.dirty {
		marks[c] = seq
		pending = append(pending, c)
	}
	slices.Sort(pending)
	clear(e.dirty)

	return pending, marks
}

// requeue marks c dirty again after a failed push, keeping a newer mark if
// one arrived meanwhile.
func (e *clientSyncEngine) requeue(c models.Collection, seq uint64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if cur, ok := e.dirty[c]; !ok || cur < seq {
		e.dirty[c] = seq
	}
}

func (e *clientSyncEngine) hasDirty() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.dirty) > 0
}

// dirtyMark returns the current mark of c, zero when c is clean.
func (e *clientSyncEngine) dirtyMark(c models.Collection) uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.dirty[c]
}

// markSynced clears c unless it was marked again after mark was read, and
// records the push time.
func (e *clientSyncEngine) markSynced(c models.Collection, mark uint64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if cur, ok := e.dirty[c]; ok && cur <= mark {
		delete(e.dirty, c)
	}
	e.lastSync[c] = e.now()
}
