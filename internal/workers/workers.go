package workers

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/dcms-sync/internal/config"
	"github.com/MKhiriev/dcms-sync/internal/logger"
	"github.com/MKhiriev/dcms-sync/internal/service"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the jobs enabled by cfg. A zero purge interval leaves
// tombstones in place forever.
func NewWorkers(services *service.Services, cfg config.Workers, logger *logger.Logger) *Workers {
	w := &Workers{}
	if cfg.PurgeInterval > 0 {
		w.workers = append(w.workers, NewPurgeWorker(services.SyncService, cfg.PurgeInterval, cfg.TombstoneTTL, logger))
	}
	logger.Debug().Int("count", len(w.workers)).Msg("workers created")
	return w
}

// Run starts every worker and waits for all of them. The first failure
// cancels the rest.
func (w *Workers) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, worker := range w.workers {
		worker := worker
		g.Go(func() error {
			return worker.Run(ctx)
		})
	}
	return g.Wait()
}
