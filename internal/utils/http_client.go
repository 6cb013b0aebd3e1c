package utils

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// retryWaitTime is the initial backoff between retried requests; resty
// doubles it up to retryMaxWaitTime.
const (
	retryWaitTime    = 500 * time.Millisecond
	retryMaxWaitTime = 10 * time.Second
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient(utils.HTTPClientOptions{BaseURL: "https://cdn.example.com"})
//	resp, err := client.R().Get("/spaces/abc/locales")
type HTTPClient struct {
	*resty.Client
}

// HTTPClientOptions configures a new [HTTPClient]. Zero values leave the
// corresponding resty default in place.
type HTTPClientOptions struct {
	BaseURL    string
	Token      string
	Timeout    time.Duration
	RetryCount int
	ProxyURL   string
	UserAgent  string
}

// NewHTTPClient creates and returns a new HTTPClient instance configured
// from opts.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state. When opts.RetryCount is
// positive, requests answered with 429 or a 5xx status are retried with
// exponential backoff (resty honours Retry-After headers on 429).
func NewHTTPClient(opts HTTPClientOptions) *HTTPClient {
	client := resty.New()

	if opts.BaseURL != "" {
		client.SetBaseURL(opts.BaseURL)
	}
	if opts.Token != "" {
		client.SetAuthToken(opts.Token)
	}
	if opts.Timeout > 0 {
		client.SetTimeout(opts.Timeout)
	}
	if strings.TrimSpace(opts.ProxyURL) != "" {
		client.SetProxy(opts.ProxyURL)
	}
	if opts.UserAgent != "" {
		client.SetHeader("User-Agent", opts.UserAgent)
	}
	if opts.RetryCount > 0 {
		client.
			SetRetryCount(opts.RetryCount).
			SetRetryWaitTime(retryWaitTime).
			SetRetryMaxWaitTime(retryMaxWaitTime).
			AddRetryCondition(IsRetryableResponse)
	}

	return &HTTPClient{Client: client}
}

// IsRetryableResponse reports whether a response should be retried:
// transport failures, rate limits and server-side failures.
func IsRetryableResponse(resp *resty.Response, err error) bool {
	if err != nil {
		return true
	}
	if resp == nil {
		return false
	}
	code := resp.StatusCode()
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}
