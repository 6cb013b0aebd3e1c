// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ErrorRecord describes one failed request made while pushing content to the
// destination. Records are buffered during a run and dumped to the error log
// at the end, so they carry enough detail to retry the request by hand.
type ErrorRecord struct {
	// Time is when the failure was observed.
	Time time.Time `json:"time"`

	// RunID identifies the sync run that produced the record.
	RunID string `json:"runId,omitempty"`

	// Family is the content family of the failed item (see Family* constants).
	Family string `json:"family"`

	// Operation is the push step that failed, e.g. "create", "publish", "delete".
	Operation string `json:"operation"`

	// EntityID is the sys.id of the item, or the code for locales.
	EntityID string `json:"entityId"`

	// Message is the error text.
	Message string `json:"message"`

	// Request holds the failed HTTP request when one was issued.
	Request *RequestDetail `json:"request,omitempty"`
}

// RequestDetail is the request part of an [ErrorRecord].
type RequestDetail struct {
	Method string `json:"method"`
	URL    string `json:"url"`
	Status int    `json:"status,omitempty"`
}
