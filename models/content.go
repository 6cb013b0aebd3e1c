// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Content families handled by a sync run. They are used as labels in logs,
// error records and push results.
const (
	FamilyContentTypes   = "contentTypes"
	FamilyLocales        = "locales"
	FamilyEntries        = "entries"
	FamilyAssets         = "assets"
	FamilyDeletedEntries = "deletedEntries"
	FamilyDeletedAssets  = "deletedAssets"
)

// SourceItem wraps one item of the source delta.
//
// Original is the raw representation fetched from the source space and is
// never modified. Transformed is filled by the content transformer with the
// shape the destination expects; it is nil until the transform step runs.
type SourceItem struct {
	Original    Entity `json:"original"`
	Transformed Entity `json:"transformed,omitempty"`
}

// Payload returns the transformed entity when present, the original otherwise.
func (i SourceItem) Payload() Entity {
	if i.Transformed != nil {
		return i.Transformed
	}
	return i.Original
}

// SourceDelta is the incremental change set read from the source space.
//
// Content types and locales are always complete listings, because the sync
// API does not report them; entries and assets are incremental and their
// deletions arrive explicitly in DeletedEntries/DeletedAssets.
type SourceDelta struct {
	// NextSyncToken is the cursor for the next run. Required.
	NextSyncToken string `json:"nextSyncToken"`

	ContentTypes []SourceItem `json:"contentTypes"`
	Locales      []SourceItem `json:"locales"`
	Entries      []SourceItem `json:"entries"`
	Assets       []SourceItem `json:"assets"`

	DeletedEntries []SourceItem `json:"deletedEntries,omitempty"`
	DeletedAssets  []SourceItem `json:"deletedAssets,omitempty"`
}

// DestinationSnapshot is the full current listing of the destination space.
type DestinationSnapshot struct {
	ContentTypes []Entity `json:"contentTypes"`
	Locales      []Entity `json:"locales"`
	Entries      []Entity `json:"entries"`
	Assets       []Entity `json:"assets"`
}

// SourceContent is the source delta enriched with the deletions that were
// inferred by comparing it against the destination snapshot.
type SourceContent struct {
	SourceDelta

	DeletedContentTypes []Entity `json:"deletedContentTypes"`
	DeletedLocales      []Entity `json:"deletedLocales"`
}

// MergedContent is the single directive handed to the pusher.
type MergedContent struct {
	SourceContent      SourceContent       `json:"sourceContent"`
	DestinationContent DestinationSnapshot `json:"destinationContent"`
}
