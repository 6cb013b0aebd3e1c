// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"strings"
)

var validLogLevels = map[string]struct{}{
	"trace": {}, "debug": {}, "info": {}, "warn": {}, "error": {}, "fatal": {}, "panic": {}, "disabled": {},
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup. Every failing group
// is reported; the result matches each sentinel via errors.Is.
func (cfg *StructuredConfig) validate() error {
	var errs []error

	if strings.TrimSpace(cfg.Source.SpaceID) == "" || strings.TrimSpace(cfg.Source.DeliveryToken) == "" {
		errs = append(errs, fmt.Errorf("%w: space id and delivery token are required", ErrInvalidSourceConfigs))
	}

	if strings.TrimSpace(cfg.Destination.SpaceID) == "" || strings.TrimSpace(cfg.Destination.ManagementToken) == "" {
		errs = append(errs, fmt.Errorf("%w: space id and management token are required", ErrInvalidDestinationConfigs))
	}

	if cfg.Adapter.RequestTimeout <= 0 || cfg.Adapter.RetryCount < 0 || cfg.Adapter.PageSize <= 0 {
		errs = append(errs, ErrInvalidAdapterConfigs)
	}

	if cfg.Sync.TokenFile == "" || cfg.Sync.ErrorLogFile == "" || cfg.Sync.Concurrency < 1 || cfg.Sync.Interval < 0 {
		errs = append(errs, ErrInvalidSyncConfigs)
	}

	if _, ok := validLogLevels[strings.ToLower(cfg.Log.Level)]; !ok {
		errs = append(errs, fmt.Errorf("%w: unknown level %q", ErrInvalidLogConfigs, cfg.Log.Level))
	}

	return errors.Join(errs...)
}
