package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/dcms-sync/internal/adapter"
	"github.com/MKhiriev/dcms-sync/models"
)

const probeKey = "health"

func (e *clientSyncEngine) State() models.ConnectionState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

func (e *clientSyncEngine) EnsureConnection(ctx context.Context) bool {
	if ctx.Err() != nil {
		return false
	}

	e.mu.Lock()
	if e.state == models.Connected {
		e.mu.Unlock()
		return true
	}
	e.state = models.Connecting
	e.mu.Unlock()

	connected, _, _ := e.probes.Do(probeKey, func() (any, error) {
		return e.probe(), nil
	})
	return connected.(bool)
}

// probe runs one health check on the engine context. Callers that arrive
// while it runs share its result, including the pushes made on success.
func (e *clientSyncEngine) probe() bool {
	ctx := e.jobs.Context()

	probeCtx, cancel := context.WithTimeout(ctx, e.cfg.ProbeTimeout)
	_, err := e.adapter.Health(probeCtx)
	cancel()

	if err != nil {
		e.logger.Warn().Err(err).Str("func", "clientSyncEngine.probe").Msg("sync server is not reachable")
		e.markDisconnected()
		return false
	}

	e.mu.Lock()
	e.state = models.Connected
	if e.reconnectTimer != nil {
		e.reconnectTimer.Stop()
		e.reconnectTimer = nil
	}
	e.mu.Unlock()

	e.logger.Info().Msg("connected to sync server")

	e.PushAllCollections(ctx)
	e.pushPending(ctx)
	return true
}

// markDisconnected moves to Disconnected and schedules a reconnect unless
// one is already pending.
func (e *clientSyncEngine) markDisconnected() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.state = models.Disconnected
	e.scheduleReconnectLocked()
}

func (e *clientSyncEngine) scheduleReconnectLocked() {
	if e.reconnectTimer != nil || e.jobs.Stopped() {
		return
	}

	e.reconnectTimer = e.afterFunc(e.cfg.ReconnectDelay, func() {
		e.mu.Lock()
		e.reconnectTimer = nil
		e.mu.Unlock()

		e.jobs.Go(func(ctx context.Context) {
			e.EnsureConnection(ctx)
		})
	})
	e.logger.Debug().Dur("delay", e.cfg.ReconnectDelay).Msg("reconnect scheduled")
}

// handleRequestError drops the connection when err is a transport failure.
// Non-2xx replies leave the connection state alone.
func (e *clientSyncEngine) handleRequestError(err error) {
	if errors.Is(err, adapter.ErrServerUnavailable) {
		e.markDisconnected()
	}
}
