package service

import (
	"github.com/MKhiriev/go-space-sync/models"
)

// ct, loc, entry and asset are shorthand constructors used only in tests.
func ct(id string) models.Entity {
	return models.NewLinkedEntity(models.TypeContentType, id)
}

func loc(code string) models.Entity {
	return models.Entity{"code": code}
}

func entry(id string) models.Entity {
	return models.NewLinkedEntity(models.TypeEntry, id)
}

func asset(id string) models.Entity {
	return models.NewLinkedEntity(models.TypeAsset, id)
}

func items(entities ...models.Entity) []models.SourceItem {
	out := make([]models.SourceItem, 0, len(entities))
	for _, e := range entities {
		out = append(out, models.SourceItem{Original: e})
	}
	return out
}

// scenarioDelta and scenarioSnapshot reproduce a source space with one
// content type and one locale synced into a destination that has one extra
// of each.
func scenarioDelta() models.SourceDelta {
	return models.SourceDelta{
		NextSyncToken: "nextsynctoken",
		ContentTypes:  items(ct("exists")),
		Locales:       items(loc("en-US")),
	}
}

func scenarioSnapshot() models.DestinationSnapshot {
	return models.DestinationSnapshot{
		ContentTypes: []models.Entity{ct("exists"), ct("doesntexist")},
		Locales:      []models.Entity{loc("en-US"), loc("en-GB")},
	}
}
