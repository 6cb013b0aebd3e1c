package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-space-sync/internal/logger"
	"github.com/MKhiriev/go-space-sync/internal/utils"
	"github.com/MKhiriev/go-space-sync/models"
)

type httpSourceAdapter struct {
	restClient

	spaceID     string
	environment string
	pageSize    int
}

// syncResponse is one page of the sync endpoint.
type syncResponse struct {
	Items       []models.Entity `json:"items"`
	NextPageURL string          `json:"nextPageUrl"`
	NextSyncURL string          `json:"nextSyncUrl"`
}

// NewHTTPSourceAdapter constructs an HTTP/REST implementation of
// [SourceAdapter] talking to the delivery API of opts.Source.
//
// Returns an error if the source host cannot be parsed as a valid URL.
func NewHTTPSourceAdapter(opts Options, logger *logger.Logger) (SourceAdapter, error) {
	baseURL, err := normalizeBaseURL(opts.Source.Host)
	if err != nil {
		return nil, fmt.Errorf("invalid source host: %w", err)
	}

	client := utils.NewHTTPClient(utils.HTTPClientOptions{
		BaseURL:    baseURL,
		Token:      opts.Source.DeliveryToken,
		Timeout:    opts.Transport.RequestTimeout,
		RetryCount: opts.Transport.RetryCount,
		ProxyURL:   opts.Transport.ProxyURL,
		UserAgent:  opts.UserAgent,
	})

	return &httpSourceAdapter{
		restClient:  restClient{client: client, logger: logger},
		spaceID:     opts.Source.SpaceID,
		environment: environmentOrDefault(opts.Source.Environment),
		pageSize:    pageSizeOrDefault(opts.Transport.PageSize),
	}, nil
}

func (h *httpSourceAdapter) environmentPath(suffix string) string {
	return fmt.Sprintf("/spaces/%s/environments/%s/%s",
		url.PathEscape(h.spaceID), url.PathEscape(h.environment), suffix)
}

// Space implements [SourceAdapter]. GET /spaces/{space}.
func (h *httpSourceAdapter) Space(ctx context.Context) (models.Entity, error) {
	var space models.Entity
	path := "/spaces/" + url.PathEscape(h.spaceID)
	if err := h.execute(ctx, h.client.R(), http.MethodGet, path, &space); err != nil {
		return nil, err
	}
	return space, nil
}

// Sync implements [SourceAdapter]. It GETs one page of
// /spaces/{space}/environments/{env}/sync, either with initial=true or with
// the given sync_token, and extracts the continuation token of the page.
func (h *httpSourceAdapter) Sync(ctx context.Context, token string) (SyncPage, error) {
	req := h.client.R()
	if token == "" {
		req.SetQueryParam("initial", "true")
	} else {
		req.SetQueryParam("sync_token", token)
	}

	var resp syncResponse
	path := h.environmentPath("sync")
	if err := h.execute(ctx, req, http.MethodGet, path, &resp); err != nil {
		return SyncPage{}, err
	}

	page := SyncPage{Items: resp.Items}
	switch {
	case resp.NextPageURL != "":
		next, err := syncTokenFromURL(resp.NextPageURL)
		if err != nil {
			return SyncPage{}, err
		}
		page.NextPageToken = next
	case resp.NextSyncURL != "":
		next, err := syncTokenFromURL(resp.NextSyncURL)
		if err != nil {
			return SyncPage{}, err
		}
		page.NextSyncToken = next
	default:
		return SyncPage{}, fmt.Errorf("%w: neither nextPageUrl nor nextSyncUrl present", ErrInvalidSyncResponse)
	}

	return page, nil
}

// ContentTypes implements [SourceAdapter].
func (h *httpSourceAdapter) ContentTypes(ctx context.Context) ([]models.Entity, error) {
	return h.listAll(ctx, h.environmentPath(string(CollectionContentTypes)), h.pageSize)
}

// Locales implements [SourceAdapter].
func (h *httpSourceAdapter) Locales(ctx context.Context) ([]models.Entity, error) {
	return h.listAll(ctx, h.environmentPath(string(CollectionLocales)), h.pageSize)
}

// syncTokenFromURL returns the sync_token query value of a next page or next
// sync url.
func syncTokenFromURL(raw string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidSyncResponse, err)
	}
	token := u.Query().Get("sync_token")
	if token == "" {
		return "", fmt.Errorf("%w: no sync_token in %q", ErrInvalidSyncResponse, raw)
	}
	return token, nil
}
