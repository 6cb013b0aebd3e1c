// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-space-sync/internal/logger"
)

// DefaultInterval is used when a SyncJob is created with a non-positive
// interval.
const DefaultInterval = 5 * time.Minute

// SyncJob calls a Job on a ticker. Runs never overlap: a run that outlasts
// the interval delays the next tick.
type SyncJob struct {
	name     string
	interval time.Duration
	job      Job
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSyncJob creates a SyncJob that runs job every interval. The job is idle
// until Start is called.
func NewSyncJob(name string, interval time.Duration, job Job, logger *logger.Logger) *SyncJob {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &SyncJob{
		name:     name,
		interval: interval,
		job:      job,
		logger:   logger,
	}
}

// Interval returns the effective tick interval.
func (j *SyncJob) Interval() time.Duration {
	return j.interval
}

// Start implements Worker. It stops any previously running job, then
// launches a background goroutine that calls the job every interval. The
// goroutine exits when ctx is cancelled or Stop is called. Job errors are
// logged and do not stop the ticker.
func (j *SyncJob) Start(ctx context.Context) {
	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	j.logger.Info().Str("job", j.name).Dur("interval", j.interval).Msg("sync job started")

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(j.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if err := j.job(jobCtx); err != nil && jobCtx.Err() == nil {
					j.logger.Error().Err(err).Str("job", j.name).Msg("sync job run failed")
				}
			}
		}
	}()
}

// Stop implements Worker. It cancels the background goroutine's context and
// blocks until the goroutine has fully exited. Safe to call when the job is
// not running (no-op in that case).
func (j *SyncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
		j.logger.Info().Str("job", j.name).Msg("sync job stopped")
	}
	j.wg.Wait()
}
