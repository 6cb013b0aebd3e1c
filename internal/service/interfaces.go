package service

import (
	"context"

	"github.com/MKhiriev/go-space-sync/internal/adapter"
	"github.com/MKhiriev/go-space-sync/models"
)

// ClientFactory builds the pair of space clients for one run.
type ClientFactory interface {
	// NewClients validates opts and returns ready-to-use clients. Any error
	// is fatal for the run.
	NewClients(ctx context.Context, opts adapter.Options) (*adapter.Clients, error)
}

// SourceDeltaFetcher reads the change set of the source space.
type SourceDeltaFetcher interface {
	// Fetch returns every change since token; an empty token fetches the
	// whole space. Content types and locales are always complete lists.
	Fetch(ctx context.Context, source adapter.SourceAdapter, token string) (models.SourceDelta, error)
}

// DestinationSnapshotFetcher reads the current state of the destination space.
type DestinationSnapshotFetcher interface {
	// Fetch lists every content type, locale, entry and asset.
	Fetch(ctx context.Context, destination adapter.DestinationAdapter) (models.DestinationSnapshot, error)
}

// ContentTransformer converts source content to destination shape.
type ContentTransformer interface {
	// Transform fills Transformed on every item and returns the result. The
	// input is not modified.
	Transform(ctx context.Context, content models.SourceContent) (models.SourceContent, error)
}

// Pusher applies merged content to the destination.
type Pusher interface {
	// Push applies content item by item. Item failures are recorded and do
	// not fail the push; an error means the push as a whole failed.
	Push(ctx context.Context, destination adapter.DestinationAdapter, content models.MergedContent) (*models.PushResult, error)
}

// SyncRunner runs one complete sync.
type SyncRunner interface {
	Run(ctx context.Context, cfg RunConfig) error
	State() models.RunState
}
