// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface, the ticker-driven SyncJob and a Workers
// aggregate that starts and stops several workers in a unified way.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Start must not block: implementations spawn their own goroutines, which
// exit when ctx is cancelled or Stop is called. Stop blocks until the
// worker has fully exited and is safe to call on a worker that never
// started.
//
// Example implementation:
//
//	type MyWorker struct{ cancel context.CancelFunc }
//
//	func (w *MyWorker) Start(ctx context.Context) {
//	    ctx, w.cancel = context.WithCancel(ctx)
//	    go process(ctx)
//	}
//
//	func (w *MyWorker) Stop() { w.cancel() }
type Worker interface {
	Start(ctx context.Context)
	Stop()
}

// Job is one unit of periodic work.
type Job func(ctx context.Context) error
