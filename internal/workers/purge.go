package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/dcms-sync/internal/logger"
	"github.com/MKhiriev/dcms-sync/internal/service"
)

// PurgeWorker drops server tombstones older than ttl every interval.
type PurgeWorker struct {
	sync     service.SyncService
	interval time.Duration
	ttl      time.Duration
	logger   *logger.Logger
}

func NewPurgeWorker(sync service.SyncService, interval, ttl time.Duration, logger *logger.Logger) *PurgeWorker {
	return &PurgeWorker{
		sync:     sync,
		interval: interval,
		ttl:      ttl,
		logger:   logger.WithComponent("purge-worker"),
	}
}

func (p *PurgeWorker) Run(ctx context.Context) error {
	p.logger.Info().Dur("interval", p.interval).Dur("ttl", p.ttl).Msg("purge worker started")

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.logger.Info().Msg("purge worker stopped")
			return nil
		case <-ticker.C:
			p.purge(ctx)
		}
	}
}

// purge failures are logged and retried on the next tick.
func (p *PurgeWorker) purge(ctx context.Context) {
	n, err := p.sync.PurgeTombstones(ctx, p.ttl)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		p.logger.Err(err).Str("func", "*PurgeWorker.purge").Msg("purging tombstones failed")
		return
	}
	if n > 0 {
		p.logger.Info().Int64("purged", n).Msg("tombstones purged")
	}
}
