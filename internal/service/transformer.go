package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-space-sync/models"
)

// Keys kept when a source item is reshaped for the management API.
var (
	contentTypeKeys = []string{"name", "description", "displayField", "fields"}
	localeKeys      = []string{"code", "name", "fallbackCode", "default", "optional", "contentManagementApi", "contentDeliveryApi"}
)

type contentTransformer struct{}

// NewContentTransformer returns the ContentTransformer used by sync runs.
func NewContentTransformer() ContentTransformer {
	return &contentTransformer{}
}

// Transform implements ContentTransformer. Deletion lists are left as they
// are; every other item gets a Transformed payload built from a deep copy of
// its Original.
func (t *contentTransformer) Transform(ctx context.Context, content models.SourceContent) (models.SourceContent, error) {
	out := content

	steps := []struct {
		items *[]models.SourceItem
		fn    func(models.Entity) models.Entity
	}{
		{&out.ContentTypes, transformContentType},
		{&out.Locales, transformLocale},
		{&out.Entries, transformEntry},
		{&out.Assets, transformAsset},
	}

	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return models.SourceContent{}, err
		}
		*step.items = transformItems(*step.items, step.fn)
	}

	return out, nil
}

// transformItems returns a new slice so the caller's backing array is never
// written to.
func transformItems(items []models.SourceItem, fn func(models.Entity) models.Entity) []models.SourceItem {
	if items == nil {
		return nil
	}
	out := make([]models.SourceItem, len(items))
	for i, item := range items {
		out[i] = models.SourceItem{
			Original:    item.Original,
			Transformed: fn(item.Original.Clone()),
		}
	}
	return out
}

func transformContentType(e models.Entity) models.Entity {
	out := pick(e, contentTypeKeys)
	out["sys"] = reducedSys(e, "id", "type")
	return out
}

func transformLocale(e models.Entity) models.Entity {
	return pick(e, localeKeys)
}

func transformEntry(e models.Entity) models.Entity {
	out := pick(e, []string{"fields"})
	out["sys"] = reducedSys(e, "id", "type", "contentType")
	return out
}

// transformAsset turns delivered file urls into upload urls the destination
// can fetch and drops the processed file details.
func transformAsset(e models.Entity) models.Entity {
	out := pick(e, []string{"fields"})
	out["sys"] = reducedSys(e, "id", "type")

	fields, _ := out["fields"].(map[string]any)
	files, _ := fields["file"].(map[string]any)
	for _, v := range files {
		file, ok := v.(map[string]any)
		if !ok {
			continue
		}
		if u, ok := file["url"].(string); ok {
			if strings.HasPrefix(u, "//") {
				u = "https:" + u
			}
			file["upload"] = u
			delete(file, "url")
		}
		delete(file, "details")
	}

	return out
}

func pick(e models.Entity, keys []string) models.Entity {
	out := make(models.Entity, len(keys)+1)
	for _, k := range keys {
		if v, ok := e[k]; ok {
			out[k] = v
		}
	}
	return out
}

func reducedSys(e models.Entity, keys ...string) map[string]any {
	sys := e.Sys()
	out := make(map[string]any, len(keys))
	for _, k := range keys {
		if v, ok := sys[k]; ok {
			out[k] = v
		}
	}
	return out
}
