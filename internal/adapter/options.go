package adapter

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-space-sync/internal/config"
)

// Options are the client settings forwarded verbatim from the run
// configuration to the client factory.
type Options struct {
	Source      config.Source
	Destination config.Destination
	Transport   config.Adapter
	UserAgent   string
}

// OptionsFromConfig extracts client options from the merged configuration.
func OptionsFromConfig(cfg *config.StructuredConfig, userAgent string) Options {
	return Options{
		Source:      cfg.Source,
		Destination: cfg.Destination,
		Transport:   cfg.Adapter,
		UserAgent:   userAgent,
	}
}

// validate reports every missing credential at once.
func (o Options) validate() error {
	var errs []error
	if strings.TrimSpace(o.Source.SpaceID) == "" {
		errs = append(errs, errors.New("source space id is empty"))
	}
	if strings.TrimSpace(o.Source.DeliveryToken) == "" {
		errs = append(errs, errors.New("source delivery token is empty"))
	}
	if strings.TrimSpace(o.Destination.SpaceID) == "" {
		errs = append(errs, errors.New("destination space id is empty"))
	}
	if strings.TrimSpace(o.Destination.ManagementToken) == "" {
		errs = append(errs, errors.New("destination management token is empty"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidOptions, errors.Join(errs...))
	}
	return nil
}

func environmentOrDefault(env string) string {
	if strings.TrimSpace(env) == "" {
		return config.DefaultEnvironment
	}
	return strings.TrimSpace(env)
}

// normalizeBaseURL turns a host with or without scheme into a base URL.
// Hosts without a scheme default to https.
func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func pageSizeOrDefault(size int) int {
	if size <= 0 {
		return config.DefaultPageSize
	}
	return size
}
