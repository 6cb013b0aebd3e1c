package app

import "context"

// Application defines the minimal lifecycle contract for runnable
// applications.
type Application interface {
	// Run starts the application and blocks until it is done or ctx is
	// cancelled.
	Run(ctx context.Context) error
}
