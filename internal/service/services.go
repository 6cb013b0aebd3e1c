package service

import (
	"github.com/MKhiriev/go-space-sync/internal/config"
	"github.com/MKhiriev/go-space-sync/internal/errbuffer"
	"github.com/MKhiriev/go-space-sync/internal/logger"
	"github.com/MKhiriev/go-space-sync/internal/store"
)

// Services is the service layer of space-sync.
type Services struct {
	Runner SyncRunner
	Buffer *errbuffer.Buffer
}

// NewServices wires the production runner: HTTP clients built by factory,
// file stores from storages and one shared error buffer.
func NewServices(factory ClientFactory, storages *store.Storages, cfg config.Sync, logger *logger.Logger) *Services {
	buffer := errbuffer.New()

	runner := NewRunner(RunnerDeps{
		Factory:     factory,
		Source:      NewSourceDeltaFetcher(logger),
		Destination: NewDestinationSnapshotFetcher(logger),
		Transformer: NewContentTransformer(),
		Pusher:      NewPusher(buffer, cfg.Concurrency, logger),
		TokenStore:  storages.TokenStore,
		ErrorLog:    storages.ErrorLog,
		Buffer:      buffer,
		Logger:      logger,
	})

	return &Services{Runner: runner, Buffer: buffer}
}
