package workers

import "context"

// Workers aggregates workers so the CLI can manage them as one.
type Workers struct {
	workers []Worker
}

// NewWorkers returns an aggregate of workers; nil workers are skipped.
func NewWorkers(workers ...Worker) *Workers {
	w := &Workers{workers: make([]Worker, 0, len(workers))}
	for _, worker := range workers {
		if worker != nil {
			w.workers = append(w.workers, worker)
		}
	}
	return w
}

// Start starts every worker in order.
func (w *Workers) Start(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Start(ctx)
	}
}

// Stop stops the workers in reverse order.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}

// Len returns the number of workers.
func (w *Workers) Len() int {
	return len(w.workers)
}
