package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-space-sync/internal/adapter"
	"github.com/MKhiriev/go-space-sync/internal/logger"
	"github.com/MKhiriev/go-space-sync/models"
)

// maxSyncPages stops a sync that never reports its end.
const maxSyncPages = 10000

type sourceFetcher struct {
	logger *logger.Logger
}

// NewSourceDeltaFetcher returns a SourceDeltaFetcher that pages the sync
// endpoint and lists content types and locales in full.
func NewSourceDeltaFetcher(logger *logger.Logger) SourceDeltaFetcher {
	return &sourceFetcher{logger: logger}
}

// Fetch implements SourceDeltaFetcher.
func (f *sourceFetcher) Fetch(ctx context.Context, source adapter.SourceAdapter, token string) (models.SourceDelta, error) {
	var delta models.SourceDelta

	nextSyncToken, err := f.syncItems(ctx, source, token, &delta)
	if err != nil {
		return models.SourceDelta{}, err
	}
	delta.NextSyncToken = nextSyncToken

	contentTypes, err := source.ContentTypes(ctx)
	if err != nil {
		return models.SourceDelta{}, fmt.Errorf("list source content types: %w", err)
	}
	delta.ContentTypes = wrapItems(contentTypes)

	locales, err := source.Locales(ctx)
	if err != nil {
		return models.SourceDelta{}, fmt.Errorf("list source locales: %w", err)
	}
	delta.Locales = wrapItems(locales)

	f.logger.Info().
		Bool("initial", token == "").
		Int(models.FamilyContentTypes, len(delta.ContentTypes)).
		Int(models.FamilyLocales, len(delta.Locales)).
		Int(models.FamilyEntries, len(delta.Entries)).
		Int(models.FamilyAssets, len(delta.Assets)).
		Int(models.FamilyDeletedEntries, len(delta.DeletedEntries)).
		Int(models.FamilyDeletedAssets, len(delta.DeletedAssets)).
		Msg("source delta fetched")

	return delta, nil
}

// syncItems follows sync pages from token until the next sync token shows up,
// sorting items into delta by sys.type.
func (f *sourceFetcher) syncItems(ctx context.Context, source adapter.SourceAdapter, token string, delta *models.SourceDelta) (string, error) {
	pageToken := token
	for page := 0; page < maxSyncPages; page++ {
		p, err := source.Sync(ctx, pageToken)
		if err != nil {
			return "", fmt.Errorf("sync page %d: %w", page, err)
		}

		for _, item := range p.Items {
			f.classify(item, delta)
		}

		if p.NextSyncToken != "" {
			return p.NextSyncToken, nil
		}
		if p.NextPageToken == "" {
			return "", fmt.Errorf("sync page %d: %w", page, adapter.ErrInvalidSyncResponse)
		}
		pageToken = p.NextPageToken
	}

	return "", fmt.Errorf("sync did not finish after %d pages: %w", maxSyncPages, adapter.ErrInvalidSyncResponse)
}

func (f *sourceFetcher) classify(item models.Entity, delta *models.SourceDelta) {
	wrapped := models.SourceItem{Original: item}
	switch item.Type() {
	case models.TypeEntry:
		delta.Entries = append(delta.Entries, wrapped)
	case models.TypeAsset:
		delta.Assets = append(delta.Assets, wrapped)
	case models.TypeDeletedEntry:
		delta.DeletedEntries = append(delta.DeletedEntries, wrapped)
	case models.TypeDeletedAsset:
		delta.DeletedAssets = append(delta.DeletedAssets, wrapped)
	default:
		f.logger.Warn().Str("type", item.Type()).Str("id", item.ID()).Msg("skipping unknown sync item")
	}
}

func wrapItems(entities []models.Entity) []models.SourceItem {
	out := make([]models.SourceItem, 0, len(entities))
	for _, e := range entities {
		out = append(out, models.SourceItem{Original: e})
	}
	return out
}
