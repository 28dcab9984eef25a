package service

import (
	"context"
	"sync"
)

// clientSyncJob tracks the engine's background goroutines: connection
// attempts started by MarkChanged, timer callbacks and the initial connect.
// Stop cancels their shared context and waits for them to return.
type clientSyncJob struct {
	mu      sync.Mutex
	ctx     context.Context
	cancel  context.CancelFunc
	stopped bool
	wg      sync.WaitGroup
}

func newClientSyncJob() *clientSyncJob {
	ctx, cancel := context.WithCancel(context.Background())
	return &clientSyncJob{ctx: ctx, cancel: cancel}
}

// Go runs fn on a new goroutine with the job context. It reports false and
// does nothing once the job is stopped.
func (j *clientSyncJob) Go(fn func(ctx context.Context)) bool {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.stopped {
		return false
	}

	j.wg.Add(1)
	go func() {
		defer j.wg.Done()
		fn(j.ctx)
	}()
	return true
}

// Context is cancelled by Stop.
func (j *clientSyncJob) Context() context.Context {
	return j.ctx
}

func (j *clientSyncJob) Stopped() bool {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.stopped
}

// Stop cancels the job context and blocks until every goroutine started by
// Go has exited. Safe to call more than once.
func (j *clientSyncJob) Stop() {
	j.mu.Lock()
	j.stopped = true
	j.mu.Unlock()

	j.cancel()
	j.wg.Wait()
}
