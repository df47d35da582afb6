// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/MKhiriev/go-media-mirror/internal/adapter"
	"github.com/MKhiriev/go-media-mirror/internal/logger"
	"github.com/MKhiriev/go-media-mirror/internal/store"
	"github.com/MKhiriev/go-media-mirror/models"
)

// registryService keeps the registry in memory and writes the whole document
// back on every change. A change is applied to a copy first and only becomes
// visible once it was saved.
type registryService struct {
	registry  store.RegistryRepository
	mirror    store.MirrorRepository
	adapter   adapter.MediaServerAdapter
	validator CapabilityValidator

	mu      sync.RWMutex
	current models.Registry

	logger *logger.Logger
}

// NewRegistryService loads the registry and constructs a [RegistryService].
func NewRegistryService(
	ctx context.Context,
	registry store.RegistryRepository,
	mirror store.MirrorRepository,
	serverAdapter adapter.MediaServerAdapter,
	validator CapabilityValidator,
	logger *logger.Logger,
) (RegistryService, error) {
	current, err := registry.Load(ctx)
	if err != nil {
		return nil, persistenceError(err)
	}
	if current.Servers == nil {
		current.Servers = make(map[string]models.TrackedServer)
	}

	logger.Debug().Int("tracked", len(current.Servers)).Msg("registry loaded")

	return &registryService{
		registry:  registry,
		mirror:    mirror,
		adapter:   serverAdapter,
		validator: validator,
		current:   current,
		logger:    logger,
	}, nil
}

func (s *registryService) Track(ctx context.Context, server string) (models.TrackedServer, error) {
	log := logger.FromContext(ctx)

	serverID, handle, err := s.resolve(ctx, server)
	if err != nil {
		return models.TrackedServer{}, err
	}

	if rec, ok := s.Lookup(serverID); ok {
		log.Info().Str("server_id", serverID).Msg("server already tracked")
		return rec, nil
	}

	token, err := s.validator.Validate(ctx, serverID, handle)
	if err != nil {
		return models.TrackedServer{}, err
	}

	rec := models.TrackedServer{
		ServerID:     serverID,
		LastUpdateID: models.NeverSynced,
		ResetToken:   token,
		Trackable:    true,
	}

	err = s.update(ctx, func(r *models.Registry) error {
		r.Servers[serverID] = rec
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "registryService.Track").Str("server_id", serverID).Msg("failed to record tracked server")
		return models.TrackedServer{}, err
	}

	log.Info().Str("server_id", serverID).Str("path", handle.Path).Msg("server tracked")
	return rec, nil
}

func (s *registryService) Untrack(ctx context.Context, server string) error {
	log := logger.FromContext(ctx)

	serverID := server
	if isServerPath(server) {
		id, err := s.serverID(ctx, models.ServerHandle{Path: server})
		if err != nil {
			return err
		}
		serverID = id
	}

	if _, ok := s.Lookup(serverID); !ok {
		log.Info().Str("server_id", serverID).Msg("server is not tracked")
		return nil
	}

	err := s.update(ctx, func(r *models.Registry) error {
		delete(r.Servers, serverID)
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "registryService.Untrack").Str("server_id", serverID).Msg("failed to drop tracked server")
		return err
	}

	// A leftover mirror of an untracked server is never read and a later
	// Track starts from a full sync.
	if err = s.mirror.Purge(ctx, serverID); err != nil {
		log.Err(err).Str("func", "registryService.Untrack").Str("server_id", serverID).Msg("failed to purge mirror")
	}

	log.Info().Str("server_id", serverID).Msg("server untracked")
	return nil
}

func (s *registryService) TrackReset(ctx context.Context, server string) (models.TrackedServer, error) {
	serverID, handle, err := s.resolve(ctx, server)
	if err != nil {
		return models.TrackedServer{}, err
	}

	if err = s.Untrack(ctx, serverID); err != nil {
		return models.TrackedServer{}, err
	}

	return s.Track(ctx, handle.Path)
}

func (s *registryService) Reset(ctx context.Context) error {
	log := logger.FromContext(ctx)

	ids := s.snapshot().IDs()

	err := s.update(ctx, func(r *models.Registry) error {
		r.Servers = make(map[string]models.TrackedServer)
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "registryService.Reset").Msg("failed to clear registry")
		return err
	}

	for _, id := range ids {
		if err = s.mirror.Purge(ctx, id); err != nil {
			log.Err(err).Str("func", "registryService.Reset").Str("server_id", id).Msg("failed to purge mirror")
		}
	}

	log.Info().Msg("registry reset")
	return nil
}

func (s *registryService) Tracked() []models.TrackedServer {
	r := s.snapshot()

	out := make([]models.TrackedServer, 0, len(r.Servers))
	for _, id := range r.IDs() {
		out = append(out, r.Servers[id])
	}
	return out
}

func (s *registryService) Lookup(serverID string) (models.TrackedServer, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.current.Servers[serverID]
	return rec, ok
}

func (s *registryService) Servers(ctx context.Context) ([]models.ServerInfo, error) {
	log := logger.FromContext(ctx)

	handles, err := s.adapter.ListServers(ctx)
	if err != nil {
		log.Err(err).Str("func", "registryService.Servers").Msg("failed to list servers")
		return nil, transportError(err)
	}

	infos := make([]models.ServerInfo, 0, len(handles))
	for _, h := range handles {
		id, err := s.serverID(ctx, h)
		if err != nil {
			log.Warn().Err(err).Str("path", h.Path).Msg("skipping server without identity")
			continue
		}

		_, tracked := s.Lookup(id)
		infos = append(infos, models.ServerInfo{
			Handle:  h,
			ID:      id,
			Name:    s.serverName(ctx, h),
			Tracked: tracked,
		})
	}

	sort.Slice(infos, func(i, j int) bool { return infos[i].Handle.Path < infos[j].Handle.Path })
	return infos, nil
}

func (s *registryService) NeedsSync(ctx context.Context, snapshots []models.RemoteSnapshot) []models.SyncDecision {
	log := logger.FromContext(ctx)

	decisions := make([]models.SyncDecision, 0, len(snapshots))
	for _, snap := range snapshots {
		rec, ok := s.Lookup(snap.ServerID)
		if !ok {
			continue
		}

		d := ClassifySync(rec, snap)
		if d.Mode == models.SyncSkip && snap.SystemUpdateID < rec.LastUpdateID {
			log.Warn().
				Str("server_id", snap.ServerID).
				Int64("stored", rec.LastUpdateID).
				Int64("remote", snap.SystemUpdateID).
				Msg("remote update id went backwards under the same reset token")
		}
		decisions = append(decisions, d)
	}

	sort.Slice(decisions, func(i, j int) bool { return decisions[i].ServerID < decisions[j].ServerID })
	return decisions
}

func (s *registryService) Revalidate(ctx context.Context, serverID string, handle models.ServerHandle) (models.TrackedServer, error) {
	log := logger.FromContext(ctx)

	token, err := s.validator.Validate(ctx, serverID, handle)
	if err != nil {
		return models.TrackedServer{}, err
	}

	rec := models.TrackedServer{
		ServerID:     serverID,
		LastUpdateID: models.NeverSynced,
		ResetToken:   token,
		Trackable:    true,
	}
	err = s.update(ctx, func(r *models.Registry) error {
		if _, ok := r.Servers[serverID]; !ok {
			return fmt.Errorf("%w: %s is not tracked", ErrServerNotFound, serverID)
		}
		r.Servers[serverID] = rec
		return nil
	})
	if err != nil {
		return models.TrackedServer{}, err
	}

	// The cursor is already NeverSynced, so a failed purge is retried by the
	// next full sync.
	if err = s.mirror.Purge(ctx, serverID); err != nil {
		log.Err(err).Str("func", "registryService.Revalidate").Str("server_id", serverID).Msg("failed to purge mirror")
		return models.TrackedServer{}, persistenceError(err)
	}

	return rec, nil
}

func (s *registryService) Advance(ctx context.Context, serverID string, updateID int64, resetToken string) error {
	return s.update(ctx, func(r *models.Registry) error {
		rec, ok := r.Servers[serverID]
		if !ok {
			return fmt.Errorf("%w: %s is not tracked", ErrServerNotFound, serverID)
		}
		rec.LastUpdateID = updateID
		rec.ResetToken = resetToken
		r.Servers[serverID] = rec
		return nil
	})
}

func (s *registryService) Replica(ctx context.Context, serverID string) (*models.Forest, error) {
	if _, ok := s.Lookup(serverID); !ok {
		return nil, fmt.Errorf("%w: %s is not tracked", ErrServerNotFound, serverID)
	}

	forest, err := s.mirror.Load(ctx, serverID)
	if err != nil {
		return nil, persistenceError(err)
	}
	return forest, nil
}

func (s *registryService) DataPath() string {
	return s.snapshot().DataPath
}

func (s *registryService) snapshot() models.Registry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Clone()
}

// update applies fn to a copy of the registry, saves it and swaps it in.
func (s *registryService) update(ctx context.Context, fn func(r *models.Registry) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.current.Clone()
	if err := fn(&next); err != nil {
		return err
	}

	if err := s.registry.Save(ctx, next); err != nil {
		return persistenceError(err)
	}

	s.current = next
	return nil
}

// resolve finds the handle and id of server, given either its UDN or its
// object path.
func (s *registryService) resolve(ctx context.Context, server string) (string, models.ServerHandle, error) {
	server = strings.TrimSpace(server)
	if server == "" {
		return "", models.ServerHandle{}, fmt.Errorf("%w: empty server", ErrServerNotFound)
	}

	if isServerPath(server) {
		h := models.ServerHandle{Path: server}
		id, err := s.serverID(ctx, h)
		if err != nil {
			return "", models.ServerHandle{}, err
		}
		return id, h, nil
	}

	handles, err := s.adapter.ListServers(ctx)
	if err != nil {
		return "", models.ServerHandle{}, transportError(err)
	}
	for _, h := range handles {
		id, err := s.serverID(ctx, h)
		if err != nil {
			continue
		}
		if id == server {
			return id, h, nil
		}
	}

	return "", models.ServerHandle{}, fmt.Errorf("%w: %s is not online", ErrServerNotFound, server)
}

func (s *registryService) serverID(ctx context.Context, h models.ServerHandle) (string, error) {
	return readServerID(ctx, s.adapter, h)
}

// serverName prefers the friendly name and falls back to the display name.
func (s *registryService) serverName(ctx context.Context, h models.ServerHandle) string {
	for _, name := range []string{models.PropertyFriendlyName, models.PropertyDisplayName} {
		p, err := s.adapter.GetProperty(ctx, h.Path, name)
		if err != nil {
			continue
		}
		if v, err := p.String(); err == nil && v != "" {
			return v
		}
	}
	return ""
}

func isServerPath(server string) bool {
	return strings.HasPrefix(server, "/")
}

func readServerID(ctx context.Context, serverAdapter adapter.MediaServerAdapter, h models.ServerHandle) (string, error) {
	p, err := serverAdapter.GetProperty(ctx, h.Path, models.PropertyUDN)
	if errors.Is(err, adapter.ErrPropertyUnavailable) {
		return "", fmt.Errorf("%w: %s has no UDN", ErrServerNotFound, h.Path)
	}
	if err != nil {
		return "", transportError(err)
	}

	id, err := p.String()
	if err != nil || id == "" {
		return "", fmt.Errorf("%w: %s has no UDN", ErrServerNotFound, h.Path)
	}
	return id, nil
}
