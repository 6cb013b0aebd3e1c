package config

import (
	"flag"
	"fmt"
	"io"
)

// ParseFlags parses all configuration flags from args.
//
// Flags:
//
//	-source-space source space id
//	-source-environment source environment id
//	-source-token source delivery token
//	-source-host source delivery API host
//	-destination-space destination space id
//	-destination-environment destination environment id
//	-destination-token destination management token
//	-destination-host destination management API host
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-retries retry count for failed requests
//	-proxy proxy URL
//	-page-size page size for destination listings
//	-sync-token-file path of the sync token file
//	-error-log-file path of the error log
//	-sync-token initial sync token, overrides the token file
//	-concurrency parallel entry/asset pushes
//	-interval repeat the sync on this interval (e.g., "5m")
//	-log-file application log file
//	-log-level application log level
//	-c/-config json file path with configs
func ParseFlags(args []string) (*StructuredConfig, error) {
	cfg := &StructuredConfig{}

	fs := flag.NewFlagSet("space-sync", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.Source.SpaceID, "source-space", "", "Source space id")
	fs.StringVar(&cfg.Source.Environment, "source-environment", "", "Source environment id")
	fs.StringVar(&cfg.Source.DeliveryToken, "source-token", "", "Source delivery token")
	fs.StringVar(&cfg.Source.Host, "source-host", "", "Source delivery API host")

	fs.StringVar(&cfg.Destination.SpaceID, "destination-space", "", "Destination space id")
	fs.StringVar(&cfg.Destination.Environment, "destination-environment", "", "Destination environment id")
	fs.StringVar(&cfg.Destination.ManagementToken, "destination-token", "", "Destination management token")
	fs.StringVar(&cfg.Destination.Host, "destination-host", "", "Destination management API host")

	fs.DurationVar(&cfg.Adapter.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.IntVar(&cfg.Adapter.RetryCount, "retries", 0, "Retry count for failed requests")
	fs.StringVar(&cfg.Adapter.ProxyURL, "proxy", "", "Proxy URL")
	fs.IntVar(&cfg.Adapter.PageSize, "page-size", 0, "Page size for destination listings")

	fs.StringVar(&cfg.Sync.TokenFile, "sync-token-file", "", "Sync token file path")
	fs.StringVar(&cfg.Sync.ErrorLogFile, "error-log-file", "", "Error log file path")
	fs.StringVar(&cfg.Sync.InitialToken, "sync-token", "", "Initial sync token")
	fs.IntVar(&cfg.Sync.Concurrency, "concurrency", 0, "Parallel entry/asset pushes")
	fs.DurationVar(&cfg.Sync.Interval, "interval", 0, "Repeat interval (e.g., 5m); zero runs once")

	fs.StringVar(&cfg.Log.File, "log-file", "", "Log file path")
	fs.StringVar(&cfg.Log.Level, "log-level", "", "Log level")

	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return cfg, nil
}
