// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// Entity types reported in sys.type by the space APIs.
const (
	TypeContentType  = "ContentType"
	TypeLocale       = "Locale"
	TypeEntry        = "Entry"
	TypeAsset        = "Asset"
	TypeDeletedEntry = "DeletedEntry"
	TypeDeletedAsset = "DeletedAsset"
	TypeLink         = "Link"
)

// Entity is a raw content object exactly as a space API returned it.
// The engine only reads a handful of well-known keys (sys.id, code, versions);
// everything else is carried through opaquely.
type Entity map[string]any

// Sys returns the entity's sys block or nil when it has none.
func (e Entity) Sys() map[string]any {
	sys, _ := e["sys"].(map[string]any)
	return sys
}

// ID returns sys.id.
func (e Entity) ID() string {
	id, _ := e.Sys()["id"].(string)
	return id
}

// Code returns the locale code. Only locales carry one.
func (e Entity) Code() string {
	code, _ := e["code"].(string)
	return code
}

// Type returns sys.type.
func (e Entity) Type() string {
	t, _ := e.Sys()["type"].(string)
	return t
}

// Version returns sys.version, or zero when the entity was never stored in a
// management API.
func (e Entity) Version() int64 {
	return toInt64(e.Sys()["version"])
}

// PublishedVersion returns sys.publishedVersion for management API entities.
// Delivery API entities are published by definition and report sys.revision
// instead, which is treated as a published version.
func (e Entity) PublishedVersion() int64 {
	sys := e.Sys()
	if v := toInt64(sys["publishedVersion"]); v > 0 {
		return v
	}
	return toInt64(sys["revision"])
}

// IsPublished reports whether the entity has a published version.
func (e Entity) IsPublished() bool {
	return e.PublishedVersion() > 0
}

// IsDefaultLocale reports whether a locale entity is flagged as default.
func (e Entity) IsDefaultLocale() bool {
	d, _ := e["default"].(bool)
	return d
}

// ContentTypeID returns the id linked from sys.contentType.
func (e Entity) ContentTypeID() string {
	link, _ := e.Sys()["contentType"].(map[string]any)
	linkSys, _ := link["sys"].(map[string]any)
	id, _ := linkSys["id"].(string)
	return id
}

// Clone returns a deep copy of the entity. Nested maps and slices are copied
// so the clone can be mutated without touching the original.
func (e Entity) Clone() Entity {
	if e == nil {
		return nil
	}
	return Entity(cloneMap(e))
}

// NewLinkedEntity builds a minimal entity carrying only a sys block with id and
// type. It is mostly useful for tests and for deletion payloads.
func NewLinkedEntity(sysType, id string) Entity {
	return Entity{"sys": map[string]any{"id": id, "type": sysType}}
}

func cloneMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return cloneMap(t)
	case Entity:
		return Entity(cloneMap(t))
	case []any:
		out := make([]any, len(t))
		for i := range t {
			out[i] = cloneValue(t[i])
		}
		return out
	default:
		return v
	}
}

func toInt64(v any) int64 {
	switch n := v.(type) {
	case float64:
		return int64(n)
	case int64:
		return n
	case int:
		return int64(n)
	case json.Number:
		i, _ := n.Int64()
		return i
	default:
		return 0
	}
}
