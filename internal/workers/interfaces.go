// Package workers runs the sync server's background jobs.
//
// A Worker blocks in Run until its context is cancelled. Workers groups the
// configured jobs and runs them side by side.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Run blocks until ctx is cancelled or the worker fails. Returning nil after
// cancellation is a clean stop.
type Worker interface {
	Run(ctx context.Context) error
}
