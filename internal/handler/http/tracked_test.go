// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"github.com/MKhiriev/go-media-mirror/internal/adapter"
	"github.com/MKhiriev/go-media-mirror/internal/service"
	"github.com/MKhiriev/go-media-mirror/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const serverPath = "/com/intel/dLeynaServer/server/0"

func TestListServers(t *testing.T) {
	api := newTestAPI(t)
	servers := []models.ServerInfo{
		{Handle: models.ServerHandle{Path: serverPath}, ID: "uuid:a", Name: "NAS", Tracked: true},
	}
	api.registry.EXPECT().Servers(gomock.Any()).Return(servers, nil)

	rec := api.do(t, http.MethodGet, "/api/servers")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, servers, decodeBody[[]models.ServerInfo](t, rec.Body))
}

func TestListServers_BridgeDown(t *testing.T) {
	api := newTestAPI(t)
	api.registry.EXPECT().Servers(gomock.Any()).
		Return(nil, fmt.Errorf("%w: %w", service.ErrTransport, adapter.ErrServiceUnavailable))

	rec := api.do(t, http.MethodGet, "/api/servers")

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestListTracked(t *testing.T) {
	api := newTestAPI(t)
	tracked := []models.TrackedServer{
		{ServerID: "uuid:a", LastUpdateID: 12, ResetToken: "T1", Trackable: true},
	}
	api.registry.EXPECT().Tracked().Return(tracked)

	rec := api.do(t, http.MethodGet, "/api/tracked")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, tracked, decodeBody[[]models.TrackedServer](t, rec.Body))
}

func TestTrack(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		server     string
		err        error
		wantStatus int
	}{
		{
			name:       "by udn",
			target:     "/api/tracked/uuid:a",
			server:     "uuid:a",
			wantStatus: http.StatusCreated,
		},
		{
			name:       "by escaped path",
			target:     "/api/tracked/" + url.PathEscape(serverPath),
			server:     serverPath,
			wantStatus: http.StatusCreated,
		},
		{
			name:       "unsupported server",
			target:     "/api/tracked/uuid:a",
			server:     "uuid:a",
			err:        &service.UnsupportedServerError{ServerID: "uuid:a", Reason: service.ReasonNoResetToken},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "offline server",
			target:     "/api/tracked/uuid:a",
			server:     "uuid:a",
			err:        fmt.Errorf("%w: uuid:a is not online", service.ErrServerNotFound),
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "registry write failure",
			target:     "/api/tracked/uuid:a",
			server:     "uuid:a",
			err:        fmt.Errorf("%w: %w", service.ErrPersistence, errors.New("disk full")),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newTestAPI(t)
			record := models.TrackedServer{ServerID: "uuid:a", LastUpdateID: models.NeverSynced, ResetToken: "T1", Trackable: true}
			if tt.err != nil {
				record = models.TrackedServer{}
			}
			api.registry.EXPECT().Track(gomock.Any(), tt.server).Return(record, tt.err)

			rec := api.do(t, http.MethodPost, tt.target)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.err == nil {
				assert.Equal(t, record, decodeBody[models.TrackedServer](t, rec.Body))
				return
			}
			body := decodeBody[errorResponse](t, rec.Body)
			assert.Equal(t, tt.err.Error(), body.Error)
			assert.NotEmpty(t, body.TraceID)
		})
	}
}

func TestTrack_BlankServer(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodPost, "/api/tracked/%20")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUntrack(t *testing.T) {
	api := newTestAPI(t)
	api.registry.EXPECT().Untrack(gomock.Any(), "uuid:a").Return(nil)

	rec := api.do(t, http.MethodDelete, "/api/tracked/uuid:a")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestTrackReset(t *testing.T) {
	api := newTestAPI(t)
	record := models.TrackedServer{ServerID: "uuid:a", LastUpdateID: models.NeverSynced, ResetToken: "T2", Trackable: true}
	api.registry.EXPECT().TrackReset(gomock.Any(), "uuid:a").Return(record, nil)

	rec := api.do(t, http.MethodPost, "/api/tracked/uuid:a/reset")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, record, decodeBody[models.TrackedServer](t, rec.Body))
}

func TestReset(t *testing.T) {
	api := newTestAPI(t)
	api.registry.EXPECT().Reset(gomock.Any()).Return(nil)

	rec := api.do(t, http.MethodPost, "/api/reset")

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestGetMirror(t *testing.T) {
	api := newTestAPI(t)
	forest := models.NewForest()
	forest.Upsert(models.ReplicaEntry{ID: "1", ParentID: "0", DisplayName: "Music", Kind: models.KindContainer})
	forest.Upsert(models.ReplicaEntry{ID: "11", ParentID: "1", DisplayName: "a.mp3", Kind: models.KindItem})
	api.registry.EXPECT().Replica(gomock.Any(), "uuid:a").Return(forest, nil)

	rec := api.do(t, http.MethodGet, "/api/mirror/uuid:a")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, forest.Sections(), decodeBody[models.Sections](t, rec.Body))
}

func TestGetMirror_NotTracked(t *testing.T) {
	api := newTestAPI(t)
	api.registry.EXPECT().Replica(gomock.Any(), "uuid:x").
		Return(nil, fmt.Errorf("%w: uuid:x is not tracked", service.ErrServerNotFound))

	rec := api.do(t, http.MethodGet, "/api/mirror/uuid:x")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
