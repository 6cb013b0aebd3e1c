package app

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-space-sync/internal/adapter"
	"github.com/MKhiriev/go-space-sync/internal/config"
	"github.com/MKhiriev/go-space-sync/internal/logger"
	"github.com/MKhiriev/go-space-sync/internal/service"
	"github.com/MKhiriev/go-space-sync/internal/store"
	"github.com/MKhiriev/go-space-sync/internal/workers"
	"github.com/MKhiriev/go-space-sync/models"
)

const jobName = "space-sync"

// App runs space-sync once or in watch mode.
type App struct {
	runner service.SyncRunner
	tokens store.TokenStore
	sync   config.Sync
	opts   adapter.Options
	logger *logger.Logger

	mu           sync.Mutex
	initialToken string
}

// NewApp wires an App from the service and storage layers.
func NewApp(services *service.Services, storages *store.Storages, cfg *config.StructuredConfig,
	buildInfo models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	if services == nil || services.Runner == nil {
		return nil, fmt.Errorf("%w: services", ErrMissingDependency)
	}
	if storages == nil || storages.TokenStore == nil {
		return nil, fmt.Errorf("%w: storages", ErrMissingDependency)
	}
	if cfg == nil {
		return nil, fmt.Errorf("%w: config", ErrMissingDependency)
	}

	return &App{
		runner:       services.Runner,
		tokens:       storages.TokenStore,
		sync:         cfg.Sync,
		opts:         adapter.OptionsFromConfig(cfg, userAgent(buildInfo)),
		logger:       logger,
		initialToken: cfg.Sync.InitialToken,
	}, nil
}

// Run implements Application.
//
// The first run happens immediately. Without a watch interval its error is
// returned as is. In watch mode only a fatal configuration error of the
// first run is returned; other failures are logged and retried on the next
// tick. Run returns nil once ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	err := a.runOnce(ctx)
	if a.sync.Interval <= 0 {
		return err
	}

	if err != nil {
		if errors.Is(err, service.ErrFatalConfig) {
			return err
		}
		a.logger.Error().Err(err).Msg(MsgRunFailed)
	}

	jobs := workers.NewWorkers(workers.NewSyncJob(jobName, a.sync.Interval, a.runOnce, a.logger))
	jobs.Start(ctx)
	a.logger.Info().Dur("interval", a.sync.Interval).Msg(MsgWatchStarted)

	<-ctx.Done()
	jobs.Stop()
	a.logger.Info().Msg(MsgWatchStopped)

	return nil
}

func (a *App) runOnce(ctx context.Context) error {
	token, err := a.previousToken(ctx)
	if err != nil {
		return err
	}

	return a.runner.Run(ctx, service.RunConfig{
		Opts:          a.opts,
		PreviousToken: token,
		SyncTokenFile: a.sync.TokenFile,
		ErrorLogFile:  a.sync.ErrorLogFile,
	})
}

// previousToken returns the configured initial token once, then the content
// of the token file.
func (a *App) previousToken(ctx context.Context) (string, error) {
	a.mu.Lock()
	initial := a.initialToken
	a.initialToken = ""
	a.mu.Unlock()

	if initial != "" {
		a.logger.Info().Msg(MsgInitialTokenUsed)
		return initial, nil
	}

	token, err := a.tokens.Load(ctx, a.sync.TokenFile)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrLoadingToken, err)
	}
	return token, nil
}

func userAgent(info models.AppBuildInfo) string {
	return "space-sync/" + info.Version()
}
