// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"path"
	"slices"
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/MKhiriev/go-media-mirror/internal/adapter"
	"github.com/MKhiriev/go-media-mirror/internal/logger"
	"github.com/MKhiriev/go-media-mirror/internal/store"
	"github.com/MKhiriev/go-media-mirror/models"
	"github.com/jonboulle/clockwork"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// fakeServer is an in-memory media server reachable through fakeRemote.
type fakeServer struct {
	path    string
	props   map[string]json.RawMessage
	objects map[string]fakeObject
}

type fakeObject struct {
	models.RemoteObject
	updateID int64
}

func newFakeServer(path, udn, token string, updateID int64) *fakeServer {
	s := &fakeServer{
		path:    path,
		props:   make(map[string]json.RawMessage),
		objects: make(map[string]fakeObject),
	}
	s.set(models.PropertyUDN, udn)
	s.set(models.PropertyFriendlyName, "Server "+udn)
	s.set(models.PropertyServiceResetToken, token)
	s.set(models.PropertySystemUpdateID, updateID)
	s.set(models.PropertyDLNACaps, []string{"av-upload", models.CapContentSynchronization})
	s.set(models.PropertySearchCaps, []string{"Path", "Type", "upnp:objectUpdateID", "upnp:containerUpdateID"})
	return s
}

func (s *fakeServer) set(name string, v any) {
	raw, _ := json.Marshal(v)
	s.props[name] = raw
}

func (s *fakeServer) unset(name string) {
	delete(s.props, name)
}

func (s *fakeServer) add(parentPath, id, name, typ string, updateID int64) string {
	p := parentPath + "/" + id
	s.objects[p] = fakeObject{
		RemoteObject: models.RemoteObject{
			ID:          id,
			ParentID:    models.ObjectIDFromPath(parentPath),
			DisplayName: name,
			Type:        typ,
			Path:        p,
			ParentPath:  parentPath,
		},
		updateID: updateID,
	}
	return p
}

func (s *fakeServer) addContainer(parentPath, id, name string, updateID int64) string {
	return s.add(parentPath, id, name, models.TypeContainer, updateID)
}

func (s *fakeServer) addItem(parentPath, id, name string, updateID int64) string {
	return s.add(parentPath, id, name, "music", updateID)
}

func (s *fakeServer) rename(p, name string, updateID int64) {
	o := s.objects[p]
	o.DisplayName = name
	o.updateID = updateID
	s.objects[p] = o
}

func (s *fakeServer) touch(p string, updateID int64) {
	o := s.objects[p]
	o.updateID = updateID
	s.objects[p] = o
}

func (s *fakeServer) remove(p string) {
	for op := range s.objects {
		if op == p || strings.HasPrefix(op, p+"/") {
			delete(s.objects, op)
		}
	}
}

// fakeRemote implements adapter.MediaServerAdapter over fakeServers.
type fakeRemote struct {
	mu      sync.Mutex
	servers []*fakeServer

	listErr     error
	childrenErr map[string]error

	// deepestFirst returns search results in reverse path order.
	deepestFirst bool

	searches int
	listings int
}

func newFakeRemote(servers ...*fakeServer) *fakeRemote {
	return &fakeRemote{servers: servers, childrenErr: make(map[string]error)}
}

func (r *fakeRemote) server(p string) *fakeServer {
	for _, s := range r.servers {
		if p == s.path || strings.HasPrefix(p, s.path+"/") {
			return s
		}
	}
	return nil
}

func (r *fakeRemote) ListServers(ctx context.Context) ([]models.ServerHandle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.listErr != nil {
		return nil, r.listErr
	}
	handles := make([]models.ServerHandle, 0, len(r.servers))
	for _, s := range r.servers {
		handles = append(handles, models.ServerHandle{Path: s.path})
	}
	return handles, nil
}

func (r *fakeRemote) GetProperty(ctx context.Context, objectPath, name string) (models.Property, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := r.server(objectPath)
	if s == nil {
		return models.Property{}, adapter.ErrNotFound
	}
	v, ok := s.props[name]
	if !ok {
		return models.Property{}, fmt.Errorf("%w: %s", adapter.ErrPropertyUnavailable, name)
	}
	return models.Property{Name: name, Value: v}, nil
}

func (r *fakeRemote) SearchObjects(ctx context.Context, containerPath, query string, fields []string) ([]models.RemoteObject, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.searches++

	s := r.server(containerPath)
	if s == nil {
		return nil, adapter.ErrNotFound
	}

	var match func(o fakeObject) bool
	if query == QueryContainers {
		match = func(o fakeObject) bool { return o.IsContainer() }
	} else {
		var after int64
		if _, err := fmt.Sscanf(query, `ObjectUpdateID > "%d"`, &after); err != nil {
			return nil, fmt.Errorf("%w: %s", adapter.ErrBadRequest, query)
		}
		match = func(o fakeObject) bool { return o.updateID > after }
	}

	var out []models.RemoteObject
	for _, o := range s.objects {
		if strings.HasPrefix(o.Path, containerPath+"/") && match(o) {
			out = append(out, o.RemoteObject)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	if r.deepestFirst {
		slices.Reverse(out)
	}
	return out, nil
}

func (r *fakeRemote) ListChildren(ctx context.Context, containerPath string, fields []string) ([]models.RemoteObject, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listings++

	if err := r.childrenErr[containerPath]; err != nil {
		return nil, err
	}
	s := r.server(containerPath)
	if s == nil {
		return nil, adapter.ErrNotFound
	}

	var out []models.RemoteObject
	for _, o := range s.objects {
		if path.Dir(o.Path) == containerPath {
			out = append(out, o.RemoteObject)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out, nil
}

func (r *fakeRemote) queries() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.searches + r.listings
}

// remoteForest builds the replica a complete mirror of s must hold.
func remoteForest(s *fakeServer) *models.Forest {
	f := models.NewForest()
	f.EnsureContainer(models.ObjectIDFromPath(s.path))
	for _, o := range s.objects {
		f.Upsert(o.Entry(o.ParentID))
	}
	return f
}

type testEnv struct {
	remote   *fakeRemote
	fs       afero.Fs
	repo     store.RegistryRepository
	mirror   store.MirrorRepository
	registry RegistryService
	sync     SyncService
}

func newTestEnv(t *testing.T, servers ...*fakeServer) *testEnv {
	t.Helper()

	log := logger.Nop()
	fs := afero.NewMemMapFs()
	remote := newFakeRemote(servers...)

	repo := store.NewRegistryRepository(store.NewFileDocumentStore(fs, "/cfg", "", log), "registry.json", log)
	require.NoError(t, repo.Save(context.Background(), models.NewRegistry("/data")))
	mirror := store.NewMirrorRepository(store.NewFileDocumentStore(fs, "/data", store.DocumentExt, log), log)

	registry, err := NewRegistryService(context.Background(), repo, mirror, remote, NewCapabilityValidator(remote, log), log)
	require.NoError(t, err)

	return &testEnv{
		remote:   remote,
		fs:       fs,
		repo:     repo,
		mirror:   mirror,
		registry: registry,
		sync:     NewSyncService(remote, registry, mirror, clockwork.NewFakeClock(), log),
	}
}

func (e *testEnv) track(t *testing.T, s *fakeServer) models.TrackedServer {
	t.Helper()
	rec, err := e.registry.Track(context.Background(), s.path)
	require.NoError(t, err)
	return rec
}

func (e *testEnv) replica(t *testing.T, serverID string) *models.Forest {
	t.Helper()
	f, err := e.mirror.Load(context.Background(), serverID)
	require.NoError(t, err)
	return f
}
