package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/MKhiriev/go-space-sync/internal/logger"
	"github.com/MKhiriev/go-space-sync/internal/utils"
	"github.com/MKhiriev/go-space-sync/models"
)

type httpDestinationAdapter struct {
	restClient

	spaceID     string
	environment string
	pageSize    int
}

// NewHTTPDestinationAdapter constructs an HTTP/REST implementation of
// [DestinationAdapter] talking to the management API of opts.Destination.
//
// Returns an error if the destination host cannot be parsed as a valid URL.
func NewHTTPDestinationAdapter(opts Options, logger *logger.Logger) (DestinationAdapter, error) {
	baseURL, err := normalizeBaseURL(opts.Destination.Host)
	if err != nil {
		return nil, fmt.Errorf("invalid destination host: %w", err)
	}

	client := utils.NewHTTPClient(utils.HTTPClientOptions{
		BaseURL:    baseURL,
		Token:      opts.Destination.ManagementToken,
		Timeout:    opts.Transport.RequestTimeout,
		RetryCount: opts.Transport.RetryCount,
		ProxyURL:   opts.Transport.ProxyURL,
		UserAgent:  opts.UserAgent,
	})
	client.SetHeader("Content-Type", managementMediaType)

	return &httpDestinationAdapter{
		restClient:  restClient{client: client, logger: logger},
		spaceID:     opts.Destination.SpaceID,
		environment: environmentOrDefault(opts.Destination.Environment),
		pageSize:    pageSizeOrDefault(opts.Transport.PageSize),
	}, nil
}

func (h *httpDestinationAdapter) collectionPath(collection Collection) string {
	return fmt.Sprintf("/spaces/%s/environments/%s/%s",
		url.PathEscape(h.spaceID), url.PathEscape(h.environment), collection)
}

func (h *httpDestinationAdapter) itemPath(collection Collection, id string) string {
	return h.collectionPath(collection) + "/" + url.PathEscape(id)
}

// Space implements [DestinationAdapter]. GET /spaces/{space}.
func (h *httpDestinationAdapter) Space(ctx context.Context) (models.Entity, error) {
	var space models.Entity
	path := "/spaces/" + url.PathEscape(h.spaceID)
	if err := h.execute(ctx, h.client.R(), http.MethodGet, path, &space); err != nil {
		return nil, err
	}
	return space, nil
}

// List implements [DestinationAdapter].
func (h *httpDestinationAdapter) List(ctx context.Context, collection Collection) ([]models.Entity, error) {
	return h.listAll(ctx, h.collectionPath(collection), h.pageSize)
}

// Put implements [DestinationAdapter]. PUT .../{collection}/{id} with the
// version header for updates and the content type header for entries.
func (h *httpDestinationAdapter) Put(ctx context.Context, collection Collection, id string, body models.Entity, version int64) (models.Entity, error) {
	req := withVersion(h.client.R(), version).SetBody(body)
	if collection == CollectionEntries {
		if ct := body.ContentTypeID(); ct != "" {
			req.SetHeader(headerContentType, ct)
		}
	}

	var saved models.Entity
	if err := h.execute(ctx, req, http.MethodPut, h.itemPath(collection, id), &saved); err != nil {
		return nil, err
	}
	return saved, nil
}

// Create implements [DestinationAdapter]. POST .../{collection}.
func (h *httpDestinationAdapter) Create(ctx context.Context, collection Collection, body models.Entity) (models.Entity, error) {
	var saved models.Entity
	req := h.client.R().SetBody(body)
	if err := h.execute(ctx, req, http.MethodPost, h.collectionPath(collection), &saved); err != nil {
		return nil, err
	}
	return saved, nil
}

// Publish implements [DestinationAdapter]. PUT .../{collection}/{id}/published.
func (h *httpDestinationAdapter) Publish(ctx context.Context, collection Collection, id string, version int64) (models.Entity, error) {
	var published models.Entity
	req := withVersion(h.client.R(), version)
	if err := h.execute(ctx, req, http.MethodPut, h.itemPath(collection, id)+"/published", &published); err != nil {
		return nil, err
	}
	return published, nil
}

// Unpublish implements [DestinationAdapter]. DELETE .../{collection}/{id}/published.
func (h *httpDestinationAdapter) Unpublish(ctx context.Context, collection Collection, id string) (models.Entity, error) {
	var unpublished models.Entity
	if err := h.execute(ctx, h.client.R(), http.MethodDelete, h.itemPath(collection, id)+"/published", &unpublished); err != nil {
		return nil, err
	}
	return unpublished, nil
}

// Delete implements [DestinationAdapter]. DELETE .../{collection}/{id}.
func (h *httpDestinationAdapter) Delete(ctx context.Context, collection Collection, id string, version int64) error {
	req := withVersion(h.client.R(), version)
	return h.execute(ctx, req, http.MethodDelete, h.itemPath(collection, id), nil)
}

// ProcessAsset implements [DestinationAdapter].
// PUT .../assets/{id}/files/{locale}/process.
func (h *httpDestinationAdapter) ProcessAsset(ctx context.Context, id, locale string, version int64) error {
	path := fmt.Sprintf("%s/files/%s/process", h.itemPath(CollectionAssets, id), url.PathEscape(locale))
	return h.execute(ctx, withVersion(h.client.R(), version), http.MethodPut, path, nil)
}
