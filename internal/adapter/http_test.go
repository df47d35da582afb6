// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-media-mirror/internal/config"
	"github.com/MKhiriev/go-media-mirror/internal/logger"
	"github.com/MKhiriev/go-media-mirror/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T, serverURL string) MediaServerAdapter {
	t.Helper()
	a, err := NewHTTPMediaServerAdapter(config.Adapter{HTTPAddress: serverURL, RequestTimeout: 2 * time.Second}, logger.Nop())
	require.NoError(t, err)
	return a
}

// ── constructor ─────────────────────────────────────────────────────────────

func TestNewHTTPMediaServerAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPMediaServerAdapter(config.Adapter{HTTPAddress: "  "}, logger.Nop())
	assert.Error(t, err)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "localhost:8200", want: "http://localhost:8200"},
		{raw: "https://bridge.lan/", want: "https://bridge.lan"},
		{raw: "", wantErr: true},
		{raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ── ListServers ─────────────────────────────────────────────────────────────

func TestListServers_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/servers", r.URL.Path)
		_, _ = w.Write([]byte(`{"servers":[{"path":"/com/intel/dLeynaServer/server/0"},{"path":"/com/intel/dLeynaServer/server/1"}]}`))
	}))
	defer srv.Close()

	handles, err := newTestAdapter(t, srv.URL).ListServers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []models.ServerHandle{
		{Path: "/com/intel/dLeynaServer/server/0"},
		{Path: "/com/intel/dLeynaServer/server/1"},
	}, handles)
}

func TestListServers_BadGateway(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).ListServers(context.Background())
	assert.ErrorIs(t, err, ErrBadGateway)
}

func TestListServers_BadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"servers":`))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).ListServers(context.Background())
	assert.ErrorIs(t, err, ErrDecodeResponse)
}

func TestListServers_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := newTestAdapter(t, url).ListServers(context.Background())
	assert.Error(t, err)
}

// ── GetProperty ─────────────────────────────────────────────────────────────

func TestGetProperty_String(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/objects/properties", r.URL.Path)
		assert.Equal(t, "/server/0", r.URL.Query().Get("path"))
		assert.Equal(t, models.PropertyServiceResetToken, r.URL.Query().Get("name"))
		_, _ = w.Write([]byte(`{"name":"ServiceResetToken","value":"42"}`))
	}))
	defer srv.Close()

	p, err := newTestAdapter(t, srv.URL).GetProperty(context.Background(), "/server/0", models.PropertyServiceResetToken)
	require.NoError(t, err)

	token, err := p.String()
	require.NoError(t, err)
	assert.Equal(t, "42", token)
}

func TestGetProperty_List(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"value":["dc:title","upnp:class","ObjectUpdateID"]}`))
	}))
	defer srv.Close()

	p, err := newTestAdapter(t, srv.URL).GetProperty(context.Background(), "/server/0", models.PropertySearchCaps)
	require.NoError(t, err)
	assert.Equal(t, models.PropertySearchCaps, p.Name)

	caps, err := p.Strings()
	require.NoError(t, err)
	assert.Contains(t, caps, "ObjectUpdateID")
}

func TestGetProperty_Unavailable(t *testing.T) {
	for _, status := range []int{http.StatusNotFound, http.StatusNotImplemented} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		}))

		_, err := newTestAdapter(t, srv.URL).GetProperty(context.Background(), "/server/0", models.PropertyServiceResetToken)
		assert.ErrorIs(t, err, ErrPropertyUnavailable, status)
		srv.Close()
	}
}

func TestGetProperty_NullValue(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"name":"DLNACaps","value":null}`))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).GetProperty(context.Background(), "/server/0", models.PropertyDLNACaps)
	assert.ErrorIs(t, err, ErrPropertyUnavailable)
}

func TestGetProperty_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("dbus failure"))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).GetProperty(context.Background(), "/server/0", models.PropertyUDN)
	assert.ErrorIs(t, err, ErrInternalServerError)
	assert.NotErrorIs(t, err, ErrPropertyUnavailable)
}

// ── SearchObjects / ListChildren ────────────────────────────────────────────

func TestSearchObjects_DerivesIDsFromPaths(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/objects/search", r.URL.Path)

		var req models.SearchRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "/server/0", req.Path)
		assert.Equal(t, `ObjectUpdateID > "7"`, req.Query)
		assert.Equal(t, []string{"DisplayName", "Path", "Type", "Parent"}, req.Fields)

		_, _ = w.Write([]byte(`{"objects":[
			{"DisplayName":"song.mp3","Path":"/server/0/a1","Type":"music","Parent":"/server/0/c7"},
			{"DisplayName":"broken","Type":"music"}
		]}`))
	}))
	defer srv.Close()

	objects, err := newTestAdapter(t, srv.URL).SearchObjects(context.Background(), "/server/0", `ObjectUpdateID > "7"`,
		[]string{models.FieldDisplayName, models.FieldPath, models.FieldType, models.FieldParent})
	require.NoError(t, err)
	require.Len(t, objects, 1, "objects without a path are skipped")

	assert.Equal(t, models.RemoteObject{
		ID:          "a1",
		ParentID:    "c7",
		DisplayName: "song.mp3",
		Type:        "music",
		Path:        "/server/0/a1",
		ParentPath:  "/server/0/c7",
	}, objects[0])
}

func TestListChildren_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/objects/children", r.URL.Path)

		var req models.ChildrenRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "/server/0/c7", req.Path)

		_, _ = w.Write([]byte(`{"objects":[{"DisplayName":"Albums","Path":"/server/0/c9","Type":"container","Parent":"/server/0/c7"}]}`))
	}))
	defer srv.Close()

	objects, err := newTestAdapter(t, srv.URL).ListChildren(context.Background(), "/server/0/c7",
		[]string{models.FieldDisplayName, models.FieldPath, models.FieldParent, models.FieldType})
	require.NoError(t, err)
	require.Len(t, objects, 1)
	assert.True(t, objects[0].IsContainer())
	assert.Equal(t, "c9", objects[0].ID)
}

func TestListChildren_UnexpectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).ListChildren(context.Background(), "/server/0", nil)
	assert.ErrorIs(t, err, ErrUnexpectedStatus)
}

func TestRequests_HonourContextCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestAdapter(t, srv.URL).SearchObjects(ctx, "/server/0", "", nil)
	assert.Error(t, err)
}
