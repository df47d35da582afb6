// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/MKhiriev/go-media-mirror/internal/adapter"
	"github.com/MKhiriev/go-media-mirror/internal/logger"
	"github.com/MKhiriev/go-media-mirror/internal/store"
	"github.com/MKhiriev/go-media-mirror/models"
	"github.com/jonboulle/clockwork"
)

type syncService struct {
	adapter  adapter.MediaServerAdapter
	registry RegistryService
	mirror   store.MirrorRepository
	clock    clockwork.Clock

	// mu serialises passes; an overlapping pass is refused.
	mu sync.Mutex

	logger *logger.Logger
}

// NewSyncService constructs a [SyncService].
func NewSyncService(
	serverAdapter adapter.MediaServerAdapter,
	registry RegistryService,
	mirror store.MirrorRepository,
	clock clockwork.Clock,
	logger *logger.Logger,
) SyncService {
	return &syncService{
		adapter:  serverAdapter,
		registry: registry,
		mirror:   mirror,
		clock:    clock,
		logger:   logger,
	}
}

// Sync runs one pass: list the online servers, read the sync state of the
// tracked ones, classify each of them and bring the mirrors up to date.
// A failure of one server never stops the others.
func (s *syncService) Sync(ctx context.Context) (models.SyncReport, error) {
	if !s.mu.TryLock() {
		return models.SyncReport{}, ErrSyncInProgress
	}
	defer s.mu.Unlock()

	log := logger.FromContext(ctx)

	start := s.clock.Now()
	report := models.SyncReport{StartedAt: start}

	handles, err := s.adapter.ListServers(ctx)
	if err != nil {
		log.Err(err).Str("func", "syncService.Sync").Msg("failed to list servers")
		return report, transportError(err)
	}

	snapshots, results := s.snapshots(ctx, handles)
	for _, d := range s.registry.NeedsSync(ctx, snapshots) {
		results = append(results, s.syncServer(ctx, d))
	}

	sort.Slice(results, func(i, j int) bool { return results[i].ServerID < results[j].ServerID })
	report.Results = results
	report.Duration = s.clock.Since(start)

	log.Info().
		Int("servers", len(results)).
		Int("failed", len(report.Failed())).
		Dur("duration", report.Duration).
		Msg("sync pass finished")

	return report, nil
}

// snapshots reads the sync state of every online tracked server. Servers
// whose state cannot be read, and tracked servers that are offline, get a
// result right away.
func (s *syncService) snapshots(ctx context.Context, handles []models.ServerHandle) ([]models.RemoteSnapshot, []models.ServerSyncResult) {
	log := logger.FromContext(ctx)

	var (
		snapshots []models.RemoteSnapshot
		results   []models.ServerSyncResult
	)
	online := make(map[string]struct{}, len(handles))

	for _, h := range handles {
		id, err := readServerID(ctx, s.adapter, h)
		if err != nil {
			log.Warn().Err(err).Str("path", h.Path).Msg("skipping server without identity")
			continue
		}

		rec, tracked := s.registry.Lookup(id)
		if !tracked {
			continue
		}
		if _, dup := online[id]; dup {
			continue
		}
		online[id] = struct{}{}

		snap, err := s.readSnapshot(ctx, id, h)
		if err != nil {
			log.Err(err).Str("func", "syncService.snapshots").Str("server_id", id).Msg("failed to read sync state")
			results = append(results, models.ServerSyncResult{
				ServerID: id,
				Mode:     models.SyncSkip,
				From:     rec.LastUpdateID,
				To:       rec.LastUpdateID,
				Err:      err,
			})
			continue
		}
		snapshots = append(snapshots, snap)
	}

	for _, rec := range s.registry.Tracked() {
		if _, ok := online[rec.ServerID]; ok {
			continue
		}
		results = append(results, models.ServerSyncResult{
			ServerID: rec.ServerID,
			Mode:     models.SyncSkip,
			From:     rec.LastUpdateID,
			To:       rec.LastUpdateID,
			Offline:  true,
		})
	}

	return snapshots, results
}

func (s *syncService) readSnapshot(ctx context.Context, serverID string, h models.ServerHandle) (models.RemoteSnapshot, error) {
	snap := models.RemoteSnapshot{ServerID: serverID, Handle: h}

	p, err := s.adapter.GetProperty(ctx, h.Path, models.PropertyServiceResetToken)
	if err != nil {
		return snap, transportError(err)
	}
	if snap.ResetToken, err = p.String(); err != nil {
		return snap, transportError(err)
	}

	p, err = s.adapter.GetProperty(ctx, h.Path, models.PropertySystemUpdateID)
	if err != nil {
		return snap, transportError(err)
	}
	if snap.SystemUpdateID, err = p.Int64(); err != nil {
		return snap, transportError(err)
	}

	return snap, nil
}

func (s *syncService) syncServer(ctx context.Context, d models.SyncDecision) models.ServerSyncResult {
	log := logger.FromContext(ctx).WithServer(d.ServerID)
	ctx = log.WithContext(ctx)

	res := models.ServerSyncResult{
		ServerID: d.ServerID,
		Mode:     d.Mode,
		From:     d.From,
		To:       d.To,
	}

	switch d.Mode {
	case models.SyncFull:
		res.Err = s.fullSync(ctx, d, &res)
	case models.SyncIncremental:
		res.Err = s.incrementalSync(ctx, d, &res)
	default:
		log.Debug().Int64("update_id", d.From).Msg("server up to date")
		return res
	}

	if res.Err != nil {
		log.Err(res.Err).Str("func", "syncService.syncServer").Str("mode", d.Mode.String()).Msg("server sync failed")
		return res
	}

	log.Info().
		Str("mode", d.Mode.String()).
		Int64("from", d.From).
		Int64("to", d.To).
		Int("containers", res.Containers).
		Int("added", res.Added).
		Int("removed", res.Removed).
		Int("updated", res.Updated).
		Msg("server synced")
	return res
}

// fullSync rebuilds the mirror from scratch. Every container is committed as
// soon as it is reconciled; the cursor only advances once all of them are.
func (s *syncService) fullSync(ctx context.Context, d models.SyncDecision, res *models.ServerSyncResult) error {
	rec, err := s.registry.Revalidate(ctx, d.ServerID, d.Handle)
	if err != nil {
		return err
	}

	root := models.RemoteObject{
		ID:   models.ObjectIDFromPath(d.Handle.Path),
		Type: models.TypeContainer,
		Path: d.Handle.Path,
	}

	found, err := s.adapter.SearchObjects(ctx, d.Handle.Path, QueryContainers, containerFields)
	if err != nil {
		return transportError(err)
	}

	containers := []models.RemoteObject{root}
	seen := map[string]struct{}{root.ID: {}}
	for _, c := range found {
		if _, ok := seen[c.ID]; ok || !c.IsContainer() {
			continue
		}
		seen[c.ID] = struct{}{}
		containers = append(containers, c)
	}

	forest := models.NewForest()
	for _, c := range containers {
		children, err := s.adapter.ListChildren(ctx, c.Path, childFields)
		if err != nil {
			return transportError(err)
		}

		diff := ReconcileContainer(c.ID, forest.Children(c.ID), children)
		forest.Apply(diff)
		res.Containers++
		res.Added += len(diff.Added)
		res.Removed += len(diff.Removed)
		res.Updated += len(diff.Changed)

		if err = s.mirror.Commit(ctx, d.ServerID, forest); err != nil {
			return persistenceError(err)
		}
	}

	return s.registry.Advance(ctx, d.ServerID, d.To, rec.ResetToken)
}

// incrementalSync applies every object changed since the stored cursor. The
// mirror is committed once, then the cursor advances.
func (s *syncService) incrementalSync(ctx context.Context, d models.SyncDecision, res *models.ServerSyncResult) error {
	log := logger.FromContext(ctx)

	forest, err := s.mirror.Load(ctx, d.ServerID)
	if err != nil {
		return persistenceError(err)
	}

	changed, err := s.adapter.SearchObjects(ctx, d.Handle.Path, DeltaQuery(d.From), deltaFields)
	if err != nil {
		return transportError(err)
	}

	// Containers first and shallowest first, so children land under
	// containers created by the same delta.
	sort.SliceStable(changed, func(i, j int) bool {
		ci, cj := changed[i].IsContainer(), changed[j].IsContainer()
		if ci != cj {
			return ci
		}
		return pathDepth(changed[i].Path) < pathDepth(changed[j].Path)
	})

	for _, obj := range changed {
		if !obj.IsContainer() {
			if !forest.HasContainer(obj.ParentID) {
				log.Warn().Str("object_id", obj.ID).Str("parent_id", obj.ParentID).Msg("skipping item under unknown container")
				continue
			}
			countUpsert(forest, obj, res)
			continue
		}

		if obj.ParentID != "" && forest.HasContainer(obj.ParentID) {
			countUpsert(forest, obj, res)
		} else {
			log.Warn().Str("object_id", obj.ID).Str("parent_id", obj.ParentID).Msg("container parent is not mirrored")
		}
		forest.EnsureContainer(obj.ID)

		children, err := s.adapter.ListChildren(ctx, obj.Path, childFields)
		if err != nil {
			return transportError(err)
		}

		diff := ReconcileContainer(obj.ID, forest.Children(obj.ID), children)
		forest.Apply(diff)
		res.Containers++
		res.Added += len(diff.Added)
		res.Removed += len(diff.Removed)
		res.Updated += len(diff.Changed)
	}

	if err = s.mirror.Commit(ctx, d.ServerID, forest); err != nil {
		return persistenceError(err)
	}

	return s.registry.Advance(ctx, d.ServerID, d.To, d.ResetToken)
}

// countUpsert writes obj under its parent and counts it as added when new or
// updated when its name or kind changed.
func countUpsert(forest *models.Forest, obj models.RemoteObject, res *models.ServerSyncResult) {
	entry := obj.Entry(obj.ParentID)
	prev, existed := forest.Entry(obj.ParentID, obj.ID)
	forest.Upsert(entry)

	switch {
	case !existed:
		res.Added++
	case prev.DisplayName != entry.DisplayName || prev.Kind != entry.Kind:
		res.Updated++
	}
}

func pathDepth(p string) int {
	return strings.Count(strings.TrimRight(p, "/"), "/")
}
