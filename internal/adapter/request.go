package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/go-space-sync/internal/logger"
	"github.com/MKhiriev/go-space-sync/internal/utils"
	"github.com/go-resty/resty/v2"
)

const (
	headerVersion     = "X-Contentful-Version"
	headerContentType = "X-Contentful-Content-Type"

	managementMediaType = "application/vnd.contentful.management.v1+json"
)

// restClient is the request plumbing shared by the source and destination
// adapters.
type restClient struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// execute sends req and decodes a 2xx body into out when out is non-nil.
// Transport failures wrap ErrUnreachable; non-2xx statuses are mapped by
// mapHTTPError.
func (c *restClient) execute(ctx context.Context, req *resty.Request, method, path string, out any) error {
	start := time.Now()
	resp, err := req.SetContext(ctx).Execute(method, path)
	if err != nil {
		c.logger.Debug().Err(err).Str("method", method).Str("path", path).Msg("request failed")
		return transportError(method, path, err)
	}

	c.logger.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode()).
		Dur("took", time.Since(start)).
		Msg("request done")

	if err = mapHTTPError(resp); err != nil {
		return err
	}

	if out == nil || len(resp.Body()) == 0 {
		return nil
	}
	if err = json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}

// withVersion sets the optimistic locking header when version is known.
func withVersion(req *resty.Request, version int64) *resty.Request {
	if version > 0 {
		req.SetHeader(headerVersion, strconv.FormatInt(version, 10))
	}
	return req
}
