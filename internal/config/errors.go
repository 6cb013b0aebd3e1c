package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidSourceConfigs indicates missing source space credentials.
	ErrInvalidSourceConfigs = errors.New("invalid source configuration")
	// ErrInvalidDestinationConfigs indicates missing destination space
	// credentials.
	ErrInvalidDestinationConfigs = errors.New("invalid destination configuration")
	// ErrInvalidAdapterConfigs indicates invalid transport settings
	// (for example, zero request timeout or page size).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidSyncConfigs indicates invalid run settings
	// (for example, empty token file path or zero concurrency).
	ErrInvalidSyncConfigs = errors.New("invalid sync configuration")
	// ErrInvalidLogConfigs indicates an unknown log level.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
)
