package store

import (
	"context"

	"github.com/MKhiriev/go-space-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// TokenStore persists the sync token between runs.
type TokenStore interface {
	// Save overwrites path with exactly token.
	Save(ctx context.Context, path, token string) error
	// Load returns the stored token, or "" when path does not exist.
	Load(ctx context.Context, path string) (string, error)
}

// ErrorLog receives the error records drained at the end of a run.
type ErrorLog interface {
	// Dump writes records to path. An empty slice writes nothing.
	Dump(ctx context.Context, path string, records []models.ErrorRecord) error
}
