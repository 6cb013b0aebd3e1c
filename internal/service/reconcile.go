package service

import (
	"github.com/MKhiriev/go-space-sync/models"
)

// Reconcile merges the source delta and the destination snapshot into the
// change set the pusher applies.
//
// Content types (keyed by sys.id) and locales (keyed by code) are complete
// lists on both sides, so every destination item whose key is missing from
// the delta is marked for deletion, in snapshot order. Entries and assets are
// incremental: they and their explicit deletions pass through untouched.
//
// Reconcile has no side effects. It fails with *MalformedContentError when
// an item of either input cannot be keyed or the delta has no sync token.
func Reconcile(delta models.SourceDelta, snapshot models.DestinationSnapshot) (models.MergedContent, error) {
	if err := validateDelta(delta); err != nil {
		return models.MergedContent{}, err
	}
	if err := validateSnapshot(snapshot); err != nil {
		return models.MergedContent{}, err
	}

	deletedContentTypes := absentFrom(snapshot.ContentTypes, sourceKeys(delta.ContentTypes, idKey), idKey)
	deletedLocales := absentFrom(snapshot.Locales, sourceKeys(delta.Locales, codeKey), codeKey)

	return models.MergedContent{
		SourceContent: models.SourceContent{
			SourceDelta:         delta,
			DeletedContentTypes: deletedContentTypes,
			DeletedLocales:      deletedLocales,
		},
		DestinationContent: snapshot,
	}, nil
}

type keyFunc func(models.Entity) string

func idKey(e models.Entity) string   { return e.ID() }
func codeKey(e models.Entity) string { return e.Code() }

func sourceKeys(items []models.SourceItem, key keyFunc) map[string]struct{} {
	keys := make(map[string]struct{}, len(items))
	for _, item := range items {
		keys[key(item.Original)] = struct{}{}
	}
	return keys
}

// absentFrom returns the items whose key is not in keys, preserving order.
// The result is never nil.
func absentFrom(items []models.Entity, keys map[string]struct{}, key keyFunc) []models.Entity {
	out := make([]models.Entity, 0)
	for _, item := range items {
		if _, ok := keys[key(item)]; !ok {
			out = append(out, item)
		}
	}
	return out
}

func validateDelta(delta models.SourceDelta) error {
	if delta.NextSyncToken == "" {
		return &MalformedContentError{Side: SideSource, Family: "nextSyncToken", Index: -1}
	}

	families := []struct {
		name  string
		items []models.SourceItem
		key   keyFunc
	}{
		{models.FamilyContentTypes, delta.ContentTypes, idKey},
		{models.FamilyLocales, delta.Locales, codeKey},
		{models.FamilyEntries, delta.Entries, idKey},
		{models.FamilyAssets, delta.Assets, idKey},
		{models.FamilyDeletedEntries, delta.DeletedEntries, idKey},
		{models.FamilyDeletedAssets, delta.DeletedAssets, idKey},
	}
	for _, f := range families {
		for i, item := range f.items {
			if item.Original == nil || f.key(item.Original) == "" {
				return &MalformedContentError{Side: SideSource, Family: f.name, Index: i}
			}
		}
	}
	return nil
}

func validateSnapshot(snapshot models.DestinationSnapshot) error {
	families := []struct {
		name  string
		items []models.Entity
		key   keyFunc
	}{
		{models.FamilyContentTypes, snapshot.ContentTypes, idKey},
		{models.FamilyLocales, snapshot.Locales, codeKey},
		{models.FamilyEntries, snapshot.Entries, idKey},
		{models.FamilyAssets, snapshot.Assets, idKey},
	}
	for _, f := range families {
		for i, item := range f.items {
			if item == nil || f.key(item) == "" {
				return &MalformedContentError{Side: SideDestination, Family: f.name, Index: i}
			}
		}
	}
	return nil
}
