package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// mapHTTPError converts a non-2xx response into a *RequestError wrapping the
// matching sentinel. It returns nil for 2xx responses.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	var err error
	switch resp.StatusCode() {
	case http.StatusBadRequest:
		err = fmt.Errorf("%w: %s", ErrBadRequest, body)
	case http.StatusUnauthorized:
		err = fmt.Errorf("%w: %s", ErrUnauthorized, body)
	case http.StatusForbidden:
		err = fmt.Errorf("%w: %s", ErrForbidden, body)
	case http.StatusNotFound:
		err = fmt.Errorf("%w: %s", ErrNotFound, body)
	case http.StatusConflict:
		err = fmt.Errorf("%w: %s", ErrConflict, body)
	case http.StatusUnprocessableEntity:
		err = fmt.Errorf("%w: %s", ErrUnprocessable, body)
	case http.StatusTooManyRequests:
		err = fmt.Errorf("%w: %s", ErrRateLimited, body)
	case http.StatusBadGateway:
		err = fmt.Errorf("%w: %s", ErrBadGateway, body)
	case http.StatusInternalServerError:
		err = fmt.Errorf("%w: %s", ErrInternalServerError, body)
	default:
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		err = fmt.Errorf("%w: http %d: %s", ErrUnexpectedStatus, resp.StatusCode(), body)
	}

	return &RequestError{
		Method: resp.Request.Method,
		URL:    resp.Request.URL,
		Status: resp.StatusCode(),
		Err:    err,
	}
}

// transportError wraps a resty transport failure.
func transportError(method, url string, err error) error {
	return &RequestError{
		Method: method,
		URL:    url,
		Err:    fmt.Errorf("%w: %w", ErrUnreachable, err),
	}
}
