package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/MKhiriev/go-space-sync/internal/adapter"
	"github.com/MKhiriev/go-space-sync/internal/errbuffer"
	"github.com/MKhiriev/go-space-sync/internal/logger"
	"github.com/MKhiriev/go-space-sync/internal/utils"
	"github.com/MKhiriev/go-space-sync/models"
	"golang.org/x/sync/errgroup"
)

// Operations named in error records.
const (
	opCreate    = "create"
	opUpdate    = "update"
	opPublish   = "publish"
	opUnpublish = "unpublish"
	opDelete    = "delete"
	opProcess   = "process"
)

// errDefaultLocale is recorded when the destination default locale would
// have to be deleted.
var errDefaultLocale = errors.New("the default locale cannot be deleted")

type pusher struct {
	buffer      *errbuffer.Buffer
	concurrency int
	logger      *logger.Logger
}

// NewPusher returns a Pusher that records item failures into buffer and runs
// at most concurrency entry, asset and deletion operations at once.
func NewPusher(buffer *errbuffer.Buffer, concurrency int, logger *logger.Logger) Pusher {
	if concurrency <= 0 {
		concurrency = 1
	}
	return &pusher{buffer: buffer, concurrency: concurrency, logger: logger}
}

// pushRun is the state of one Push call.
type pushRun struct {
	*pusher

	destination adapter.DestinationAdapter
	result      *models.PushResult
	runID       string

	contentTypes map[string]models.Entity
	locales      map[string]models.Entity
	entries      map[string]models.Entity
	assets       map[string]models.Entity
}

// Push implements Pusher.
//
// Order: deleted content types, deleted locales, locales, content types,
// assets, entries, then deleted entries and assets. The last three steps run
// item operations concurrently. The push stops early only when the
// destination is unreachable, rejects the credentials or ctx is done.
func (p *pusher) Push(ctx context.Context, destination adapter.DestinationAdapter, content models.MergedContent) (*models.PushResult, error) {
	runID, _ := utils.GetRunIDFromContext(ctx)
	r := &pushRun{
		pusher:       p,
		destination:  destination,
		result:       models.NewPushResult(),
		runID:        runID,
		contentTypes: indexBy(content.DestinationContent.ContentTypes, idKey),
		locales:      indexBy(content.DestinationContent.Locales, codeKey),
		entries:      indexBy(content.DestinationContent.Entries, idKey),
		assets:       indexBy(content.DestinationContent.Assets, idKey),
	}
	src := content.SourceContent

	steps := []struct {
		name string
		fn   func(context.Context) error
	}{
		{"delete content types", func(ctx context.Context) error {
			return r.sequential(ctx, src.DeletedContentTypes, r.deleteContentType)
		}},
		{"delete locales", func(ctx context.Context) error {
			return r.sequential(ctx, src.DeletedLocales, r.deleteLocale)
		}},
		{"push locales", func(ctx context.Context) error {
			return r.sequential(ctx, payloads(src.Locales), r.upsertLocale)
		}},
		{"push content types", func(ctx context.Context) error {
			return r.sequential(ctx, payloads(src.ContentTypes), r.upsertContentType)
		}},
		{"push assets", func(ctx context.Context) error {
			return r.concurrent(ctx, src.Assets, r.upsertAsset)
		}},
		{"push entries", func(ctx context.Context) error {
			return r.concurrent(ctx, src.Entries, r.upsertEntry)
		}},
		{"delete entries and assets", func(ctx context.Context) error {
			deletions := make([]models.SourceItem, 0, len(src.DeletedEntries)+len(src.DeletedAssets))
			deletions = append(deletions, src.DeletedEntries...)
			deletions = append(deletions, src.DeletedAssets...)
			return r.concurrent(ctx, deletions, r.deleteEntryOrAsset)
		}},
	}

	for _, step := range steps {
		start := time.Now()
		if err := step.fn(ctx); err != nil {
			return r.result, fmt.Errorf("%s: %w", step.name, err)
		}
		p.logger.Debug().Str("step", step.name).Dur("took", time.Since(start)).Msg("push step done")
	}

	p.logger.Info().
		Interface("stats", r.result.Stats()).
		Int("failed", r.result.TotalFailed()).
		Msg("push finished")

	return r.result, nil
}

func (r *pushRun) sequential(ctx context.Context, items []models.Entity, fn func(context.Context, models.Entity) error) error {
	for _, item := range items {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := fn(ctx, item); err != nil {
			return err
		}
	}
	return nil
}

func (r *pushRun) concurrent(ctx context.Context, items []models.SourceItem, fn func(context.Context, models.SourceItem) error) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)

	for _, item := range items {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			return fn(gctx, item)
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

// ── content types ────────────────────────────────────────────────────────────

func (r *pushRun) deleteContentType(ctx context.Context, ct models.Entity) error {
	id := ct.ID()
	version := ct.Version()

	if ct.IsPublished() {
		unpublished, err := r.destination.Unpublish(ctx, adapter.CollectionContentTypes, id)
		if err != nil && !errors.Is(err, adapter.ErrNotFound) {
			return r.fail(models.FamilyContentTypes, opUnpublish, id, err)
		}
		if v := unpublished.Version(); v > 0 {
			version = v
		}
	}

	if err := r.destination.Delete(ctx, adapter.CollectionContentTypes, id, version); err != nil {
		if errors.Is(err, adapter.ErrNotFound) {
			return nil
		}
		return r.fail(models.FamilyContentTypes, opDelete, id, err)
	}

	r.count(models.FamilyContentTypes, func(s *models.FamilyStats) { s.Deleted++ })
	return nil
}

func (r *pushRun) upsertContentType(ctx context.Context, payload models.Entity) error {
	id := payload.ID()
	existing := r.contentTypes[id]

	saved, err := r.destination.Put(ctx, adapter.CollectionContentTypes, id, payload, existing.Version())
	if err != nil {
		return r.fail(models.FamilyContentTypes, upsertOp(existing), id, err)
	}
	r.countUpsert(models.FamilyContentTypes, existing)

	if _, err = r.destination.Publish(ctx, adapter.CollectionContentTypes, id, saved.Version()); err != nil {
		return r.fail(models.FamilyContentTypes, opPublish, id, err)
	}
	r.count(models.FamilyContentTypes, func(s *models.FamilyStats) { s.Published++ })
	return nil
}

// ── locales ──────────────────────────────────────────────────────────────────

func (r *pushRun) deleteLocale(ctx context.Context, locale models.Entity) error {
	code := locale.Code()
	if locale.IsDefaultLocale() {
		return r.fail(models.FamilyLocales, opDelete, code, errDefaultLocale)
	}

	if err := r.destination.Delete(ctx, adapter.CollectionLocales, locale.ID(), locale.Version()); err != nil {
		if errors.Is(err, adapter.ErrNotFound) {
			return nil
		}
		return r.fail(models.FamilyLocales, opDelete, code, err)
	}

	r.count(models.FamilyLocales, func(s *models.FamilyStats) { s.Deleted++ })
	return nil
}

// upsertLocale matches destination locales by code: their ids differ between
// spaces.
func (r *pushRun) upsertLocale(ctx context.Context, payload models.Entity) error {
	code := payload.Code()
	existing, ok := r.locales[code]

	var err error
	if ok {
		_, err = r.destination.Put(ctx, adapter.CollectionLocales, existing.ID(), withoutSys(payload), existing.Version())
	} else {
		_, err = r.destination.Create(ctx, adapter.CollectionLocales, withoutSys(payload))
	}
	if err != nil {
		return r.fail(models.FamilyLocales, upsertOp(existing), code, err)
	}

	r.countUpsert(models.FamilyLocales, existing)
	return nil
}

// ── assets ───────────────────────────────────────────────────────────────────

func (r *pushRun) upsertAsset(ctx context.Context, item models.SourceItem) error {
	payload := item.Payload()
	id := payload.ID()
	existing := r.assets[id]

	saved, err := r.destination.Put(ctx, adapter.CollectionAssets, id, payload, existing.Version())
	if err != nil {
		return r.fail(models.FamilyAssets, upsertOp(existing), id, err)
	}
	r.countUpsert(models.FamilyAssets, existing)

	// Every processed file bumps the asset version by one.
	version := saved.Version()
	for _, locale := range fileLocales(payload) {
		if err = r.destination.ProcessAsset(ctx, id, locale, version); err != nil {
			return r.fail(models.FamilyAssets, opProcess, id, err)
		}
		version++
	}

	if !item.Original.IsPublished() {
		return nil
	}
	if _, err = r.destination.Publish(ctx, adapter.CollectionAssets, id, version); err != nil {
		return r.fail(models.FamilyAssets, opPublish, id, err)
	}
	r.count(models.FamilyAssets, func(s *models.FamilyStats) { s.Published++ })
	return nil
}

// ── entries ──────────────────────────────────────────────────────────────────

func (r *pushRun) upsertEntry(ctx context.Context, item models.SourceItem) error {
	payload := item.Payload()
	id := payload.ID()
	existing := r.entries[id]

	saved, err := r.destination.Put(ctx, adapter.CollectionEntries, id, payload, existing.Version())
	if err != nil {
		return r.fail(models.FamilyEntries, upsertOp(existing), id, err)
	}
	r.countUpsert(models.FamilyEntries, existing)

	if !item.Original.IsPublished() {
		return nil
	}
	if _, err = r.destination.Publish(ctx, adapter.CollectionEntries, id, saved.Version()); err != nil {
		return r.fail(models.FamilyEntries, opPublish, id, err)
	}
	r.count(models.FamilyEntries, func(s *models.FamilyStats) { s.Published++ })
	return nil
}

// ── deletions ────────────────────────────────────────────────────────────────

// deleteEntryOrAsset unpublishes and deletes one item of the explicit
// deletion lists. Items already gone from the destination are skipped.
func (r *pushRun) deleteEntryOrAsset(ctx context.Context, item models.SourceItem) error {
	collection, family, index := adapter.CollectionEntries, models.FamilyDeletedEntries, r.entries
	if item.Original.Type() == models.TypeDeletedAsset {
		collection, family, index = adapter.CollectionAssets, models.FamilyDeletedAssets, r.assets
	}

	id := item.Original.ID()
	existing := index[id]

	if existing.IsPublished() {
		if _, err := r.destination.Unpublish(ctx, collection, id); err != nil && !errors.Is(err, adapter.ErrNotFound) {
			return r.fail(family, opUnpublish, id, err)
		}
	}

	if err := r.destination.Delete(ctx, collection, id, 0); err != nil {
		if errors.Is(err, adapter.ErrNotFound) {
			return nil
		}
		return r.fail(family, opDelete, id, err)
	}

	r.count(family, func(s *models.FamilyStats) { s.Deleted++ })
	return nil
}

// ── bookkeeping ──────────────────────────────────────────────────────────────

// fail records an item failure and returns nil, unless err means the push
// as a whole cannot go on, in which case err is returned unrecorded.
func (r *pushRun) fail(family, operation, id string, err error) error {
	if isTotalFailure(err) {
		return err
	}

	record := models.ErrorRecord{
		Time:      time.Now().UTC(),
		RunID:     r.runID,
		Family:    family,
		Operation: operation,
		EntityID:  id,
		Message:   err.Error(),
	}
	var reqErr *adapter.RequestError
	if errors.As(err, &reqErr) {
		record.Request = &models.RequestDetail{Method: reqErr.Method, URL: reqErr.URL, Status: reqErr.Status}
	}
	r.buffer.Push(record)
	r.count(family, func(s *models.FamilyStats) { s.Failed++ })

	r.logger.Warn().
		Err(err).
		Str("family", family).
		Str("operation", operation).
		Str("id", id).
		Msg("item push failed")

	return nil
}

func (r *pushRun) count(family string, fn func(*models.FamilyStats)) {
	r.result.Add(family, fn)
}

func (r *pushRun) countUpsert(family string, existing models.Entity) {
	if existing == nil {
		r.count(family, func(s *models.FamilyStats) { s.Created++ })
		return
	}
	r.count(family, func(s *models.FamilyStats) { s.Updated++ })
}

// isTotalFailure reports errors no further request can recover from.
func isTotalFailure(err error) bool {
	return errors.Is(err, adapter.ErrUnreachable) ||
		errors.Is(err, adapter.ErrUnauthorized) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}

func upsertOp(existing models.Entity) string {
	if existing == nil {
		return opCreate
	}
	return opUpdate
}

func indexBy(entities []models.Entity, key keyFunc) map[string]models.Entity {
	out := make(map[string]models.Entity, len(entities))
	for _, e := range entities {
		out[key(e)] = e
	}
	return out
}

func payloads(items []models.SourceItem) []models.Entity {
	out := make([]models.Entity, 0, len(items))
	for _, item := range items {
		out = append(out, item.Payload())
	}
	return out
}

// fileLocales returns the locales of fields.file in sorted order.
func fileLocales(asset models.Entity) []string {
	fields, _ := asset["fields"].(map[string]any)
	files, _ := fields["file"].(map[string]any)

	locales := make([]string, 0, len(files))
	for locale := range files {
		locales = append(locales, locale)
	}
	sort.Strings(locales)
	return locales
}

// withoutSys drops the source sys block; locale ids are assigned by the
// destination.
func withoutSys(e models.Entity) models.Entity {
	out := make(models.Entity, len(e))
	for k, v := range e {
		if k != "sys" {
			out[k] = v
		}
	}
	return out
}
