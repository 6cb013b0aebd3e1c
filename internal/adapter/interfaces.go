// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for talking to the
// source and destination content spaces.
//
// [SourceAdapter] is the read-only, delta-capable delivery side;
// [DestinationAdapter] is the read/write management side. Both ship with an
// HTTP/REST implementation built on resty, and [HTTPClientFactory] builds a
// matching pair from [Options].
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
// Every request failure is a *[RequestError] carrying the request line.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-space-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// Collection names a destination collection endpoint.
type Collection string

const (
	CollectionContentTypes Collection = "content_types"
	CollectionLocales      Collection = "locales"
	CollectionEntries      Collection = "entries"
	CollectionAssets       Collection = "assets"
)

// SyncPage is one page of the source sync endpoint. Exactly one of
// NextPageToken and NextSyncToken is set on a well-formed page.
type SyncPage struct {
	Items []models.Entity

	// NextPageToken continues the current sync; more pages follow.
	NextPageToken string

	// NextSyncToken marks the end of the delta and is the cursor for the
	// next run.
	NextSyncToken string
}

// SourceAdapter reads from the source space.
type SourceAdapter interface {
	// Sync fetches one page of the delta. An empty token starts an initial
	// sync; otherwise token is a page or sync token from a previous page.
	Sync(ctx context.Context, token string) (SyncPage, error)

	// ContentTypes lists every content type of the source environment.
	ContentTypes(ctx context.Context) ([]models.Entity, error)

	// Locales lists every locale of the source environment.
	Locales(ctx context.Context) ([]models.Entity, error)

	// Space fetches the space itself. Used to verify credentials.
	Space(ctx context.Context) (models.Entity, error)
}

// DestinationAdapter reads and writes the destination space.
type DestinationAdapter interface {
	// Space fetches the space itself. Used to verify credentials.
	Space(ctx context.Context) (models.Entity, error)

	// List returns every item of collection, following skip/limit paging.
	List(ctx context.Context, collection Collection) ([]models.Entity, error)

	// Put creates or updates the item id. version is the current version
	// of an existing item and zero for a new one. Entries carry their
	// content type in sys.contentType.
	Put(ctx context.Context, collection Collection, id string, body models.Entity, version int64) (models.Entity, error)

	// Create posts a new item and lets the server assign its id. Locales are
	// created this way.
	Create(ctx context.Context, collection Collection, body models.Entity) (models.Entity, error)

	// Publish publishes version of the item id.
	Publish(ctx context.Context, collection Collection, id string, version int64) (models.Entity, error)

	// Unpublish withdraws the published version of the item id.
	Unpublish(ctx context.Context, collection Collection, id string) (models.Entity, error)

	// Delete removes the item id.
	Delete(ctx context.Context, collection Collection, id string, version int64) error

	// ProcessAsset asks the destination to fetch and process the upload of
	// one asset file locale.
	ProcessAsset(ctx context.Context, id, locale string, version int64) error
}

// Clients is the pair of adapters a sync run works with.
type Clients struct {
	Source      SourceAdapter
	Destination DestinationAdapter
}
