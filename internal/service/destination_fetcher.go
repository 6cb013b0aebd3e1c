package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-space-sync/internal/adapter"
	"github.com/MKhiriev/go-space-sync/internal/logger"
	"github.com/MKhiriev/go-space-sync/models"
)

type destinationFetcher struct {
	logger *logger.Logger
}

// NewDestinationSnapshotFetcher returns a DestinationSnapshotFetcher listing
// all four families of the destination.
func NewDestinationSnapshotFetcher(logger *logger.Logger) DestinationSnapshotFetcher {
	return &destinationFetcher{logger: logger}
}

// Fetch implements DestinationSnapshotFetcher. Families are listed one after
// another; the first failure aborts the fetch.
func (f *destinationFetcher) Fetch(ctx context.Context, destination adapter.DestinationAdapter) (models.DestinationSnapshot, error) {
	var snapshot models.DestinationSnapshot

	lists := []struct {
		collection adapter.Collection
		target     *[]models.Entity
	}{
		{adapter.CollectionContentTypes, &snapshot.ContentTypes},
		{adapter.CollectionLocales, &snapshot.Locales},
		{adapter.CollectionEntries, &snapshot.Entries},
		{adapter.CollectionAssets, &snapshot.Assets},
	}

	for _, l := range lists {
		got, err := destination.List(ctx, l.collection)
		if err != nil {
			return models.DestinationSnapshot{}, fmt.Errorf("list destination %s: %w", l.collection, err)
		}
		*l.target = got
	}

	f.logger.Info().
		Int(models.FamilyContentTypes, len(snapshot.ContentTypes)).
		Int(models.FamilyLocales, len(snapshot.Locales)).
		Int(models.FamilyEntries, len(snapshot.Entries)).
		Int(models.FamilyAssets, len(snapshot.Assets)).
		Msg("destination snapshot fetched")

	return snapshot, nil
}
