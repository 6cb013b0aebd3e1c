package adapter

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-space-sync/internal/logger"
)

// HTTPClientFactory builds HTTP adapters for both spaces.
type HTTPClientFactory struct {
	logger *logger.Logger
}

// NewHTTPClientFactory returns a factory whose adapters log through logger.
func NewHTTPClientFactory(logger *logger.Logger) *HTTPClientFactory {
	return &HTTPClientFactory{logger: logger}
}

// NewClients validates opts, builds both adapters and fetches each space once
// to verify the credentials. Any failure is fatal for the run.
func (f *HTTPClientFactory) NewClients(ctx context.Context, opts Options) (*Clients, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	source, err := NewHTTPSourceAdapter(opts, f.logger)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidOptions, err)
	}
	destination, err := NewHTTPDestinationAdapter(opts, f.logger)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidOptions, err)
	}

	if _, err = source.Space(ctx); err != nil {
		return nil, fmt.Errorf("source space %q: %w", opts.Source.SpaceID, err)
	}
	if _, err = destination.Space(ctx); err != nil {
		return nil, fmt.Errorf("destination space %q: %w", opts.Destination.SpaceID, err)
	}

	f.logger.Info().
		Str("source_space", opts.Source.SpaceID).
		Str("destination_space", opts.Destination.SpaceID).
		Msg("space clients ready")

	return &Clients{Source: source, Destination: destination}, nil
}
