// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app implements the space-sync process lifecycle.
//
// It loads the previous sync token, runs the sync once and, in watch mode,
// keeps re-running it on an interval until the process is asked to stop.
//
// All Msg* constants are the human-readable log messages the lifecycle
// emits. Keeping them in one place ensures consistent wording in log
// queries and alerts.
package app

const (
	// MsgRunFailed is logged when a run fails in watch mode; the next tick
	// retries from the last saved token.
	MsgRunFailed = "space sync run failed"

	// MsgWatchStarted is logged once watch mode has scheduled the next runs.
	MsgWatchStarted = "watch mode started"

	// MsgWatchStopped is logged when the watch loop exits on shutdown.
	MsgWatchStopped = "watch mode stopped"

	// MsgInitialTokenUsed is logged when the configured initial token
	// replaces the token file for the first run.
	MsgInitialTokenUsed = "using configured initial sync token"
)
