package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-space-sync/internal/adapter"
	"github.com/MKhiriev/go-space-sync/internal/errbuffer"
	"github.com/MKhiriev/go-space-sync/internal/logger"
	"github.com/MKhiriev/go-space-sync/internal/store"
	"github.com/MKhiriev/go-space-sync/internal/utils"
	"github.com/MKhiriev/go-space-sync/models"
	"golang.org/x/sync/errgroup"
)

// RunConfig is the input of one sync run.
type RunConfig struct {
	// Opts is handed to the client factory as is.
	Opts adapter.Options

	// PreviousToken resumes the sync; empty starts an initial sync.
	PreviousToken string

	// SyncTokenFile receives the next sync token.
	SyncTokenFile string

	// ErrorLogFile receives the drained error buffer when it is not empty.
	ErrorLogFile string
}

// RunnerDeps are the collaborators of a Runner.
type RunnerDeps struct {
	Factory     ClientFactory
	Source      SourceDeltaFetcher
	Destination DestinationSnapshotFetcher
	Transformer ContentTransformer
	Pusher      Pusher
	TokenStore  store.TokenStore
	ErrorLog    store.ErrorLog
	Buffer      *errbuffer.Buffer
	Logger      *logger.Logger
}

// Runner executes sync runs. A Runner can be reused for sequential runs; it
// is not meant to run twice at the same time.
type Runner struct {
	deps RunnerDeps

	mu    sync.RWMutex
	state models.RunState
}

// NewRunner returns a Runner using deps.
func NewRunner(deps RunnerDeps) *Runner {
	return &Runner{deps: deps, state: models.RunInitializing}
}

// State returns the state of the current or last run.
func (r *Runner) State() models.RunState {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.state
}

// Run performs one sync:
//  1. build the space clients;
//  2. fetch the source delta and the destination snapshot concurrently;
//  3. reconcile them;
//  4. transform the source content;
//  5. push the merged content, item failures going to the error buffer;
//  6. save the next sync token;
//  7. drain the error buffer into the error log.
//
// Nothing is written to the token file unless steps 1 to 5 succeed. Once the
// push has started the error buffer is flushed even when the run fails. A
// failed run returns a *RunError.
func (r *Runner) Run(ctx context.Context, cfg RunConfig) error {
	ctx, runID := utils.EnsureRunID(ctx)
	log := r.deps.Logger.WithRunID(runID)
	start := time.Now()

	r.transition(log, models.RunInitializing)
	clients, err := r.deps.Factory.NewClients(ctx, cfg.Opts)
	if err != nil {
		return r.failed(log, ErrFatalConfig, err)
	}

	r.transition(log, models.RunFetchingBoth)
	delta, snapshot, err := r.fetchBoth(ctx, clients, cfg.PreviousToken)
	if err != nil {
		return r.failed(log, ErrFetch, err)
	}

	r.transition(log, models.RunReconciling)
	merged, err := Reconcile(delta, snapshot)
	if err != nil {
		return r.failed(log, ErrMalformedContent, err)
	}

	r.transition(log, models.RunTransforming)
	transformed, err := r.deps.Transformer.Transform(ctx, merged.SourceContent)
	if err != nil {
		return r.failed(log, ErrTransform, err)
	}
	merged.SourceContent = transformed

	r.transition(log, models.RunPushing)
	result, err := r.deps.Pusher.Push(ctx, clients.Destination, merged)
	if err != nil {
		return r.failedAfterPush(ctx, log, cfg, ErrPush, err)
	}

	r.transition(log, models.RunPersisting)
	if err = r.deps.TokenStore.Save(ctx, cfg.SyncTokenFile, merged.SourceContent.NextSyncToken); err != nil {
		return r.failedAfterPush(ctx, log, cfg, ErrPersistence, fmt.Errorf("save sync token: %w", err))
	}

	r.transition(log, models.RunFlushing)
	records, err := r.flush(ctx, cfg.ErrorLogFile)
	if err != nil {
		return r.failed(log, ErrPersistence, err)
	}

	r.transition(log, models.RunDone)
	event := log.Info()
	if result != nil {
		event = event.Interface("stats", result.Stats())
	}
	event.
		Int("item_errors", records).
		Dur("took", time.Since(start)).
		Msg("space sync finished")

	return nil
}

// fetchBoth fetches the delta and the snapshot in parallel. The first failure
// cancels the other fetch.
func (r *Runner) fetchBoth(ctx context.Context, clients *adapter.Clients, token string) (models.SourceDelta, models.DestinationSnapshot, error) {
	var (
		delta    models.SourceDelta
		snapshot models.DestinationSnapshot
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if delta, err = r.deps.Source.Fetch(gctx, clients.Source, token); err != nil {
			return fmt.Errorf("fetch source delta: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if snapshot, err = r.deps.Destination.Fetch(gctx, clients.Destination); err != nil {
			return fmt.Errorf("fetch destination snapshot: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return models.SourceDelta{}, models.DestinationSnapshot{}, err
	}
	return delta, snapshot, nil
}

// flush drains the error buffer into the error log and returns the number of
// records. Records are put back into the buffer when the dump fails.
func (r *Runner) flush(ctx context.Context, path string) (int, error) {
	records := r.deps.Buffer.Drain()
	if err := r.deps.ErrorLog.Dump(ctx, path, records); err != nil {
		r.deps.Buffer.Push(records...)
		return len(records), fmt.Errorf("dump error log: %w", err)
	}
	return len(records), nil
}

// failedAfterPush flushes the item failures recorded so far, then fails the
// run with kind. The flush outlives a cancelled ctx; a dump error is joined
// to err.
func (r *Runner) failedAfterPush(ctx context.Context, log *logger.Logger, cfg RunConfig, kind, err error) error {
	if _, dumpErr := r.flush(context.WithoutCancel(ctx), cfg.ErrorLogFile); dumpErr != nil {
		err = errors.Join(err, dumpErr)
	}
	return r.failed(log, kind, err)
}

func (r *Runner) transition(log *logger.Logger, next models.RunState) {
	r.mu.Lock()
	prev := r.state
	r.state = next
	r.mu.Unlock()

	log.Debug().Stringer("from", prev).Stringer("to", next).Msg("run state")
}

func (r *Runner) failed(log *logger.Logger, kind, err error) error {
	r.mu.Lock()
	state := r.state
	r.state = models.RunFailed
	r.mu.Unlock()

	runErr := &RunError{Kind: kind, State: state, Err: err}

	event := log.Error()
	if errors.Is(err, context.Canceled) {
		event = log.Warn()
	}
	event.Err(err).Stringer("state", state).Msg("space sync failed")

	return runErr
}
