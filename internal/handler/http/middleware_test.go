// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-media-mirror/internal/logger"
	"github.com/MKhiriev/go-media-mirror/internal/utils"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferedHandler(buf *bytes.Buffer) *Handler {
	return &Handler{
		traceIDs: utils.NewUUIDGenerator(),
		logger:   &logger.Logger{Logger: zerolog.New(buf)},
	}
}

func TestWithTraceID(t *testing.T) {
	tests := []struct {
		name          string
		incoming      string
		wantSame      bool
		wantGenerated bool
	}{
		{name: "incoming trace id is reused", incoming: "my-trace", wantSame: true},
		{name: "missing trace id is generated", wantGenerated: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newBufferedHandler(&bytes.Buffer{})

			var ctxTraceID string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				ctxTraceID, _ = utils.GetTraceIDFromContext(r.Context())
				w.WriteHeader(http.StatusTeapot)
			})

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.incoming != "" {
				req.Header.Set(traceIDHeader, tt.incoming)
			}
			rec := httptest.NewRecorder()
			h.withTraceID(next).ServeHTTP(rec, req)

			got := rec.Header().Get(traceIDHeader)
			require.NotEmpty(t, got)
			assert.Equal(t, got, ctxTraceID)
			assert.Equal(t, http.StatusTeapot, rec.Code)

			if tt.wantSame {
				assert.Equal(t, tt.incoming, got)
			}
			if tt.wantGenerated {
				_, err := uuid.Parse(got)
				assert.NoError(t, err)
			}
		})
	}
}

func TestWithTraceID_LoggerCarriesTraceID(t *testing.T) {
	buf := &bytes.Buffer{}
	h := newBufferedHandler(buf)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.FromRequest(r).Info().Msg("inside")
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set(traceIDHeader, "trace-42")
	h.withTraceID(next).ServeHTTP(httptest.NewRecorder(), req)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "trace-42", entry["trace_id"])
}

func TestWithLogging(t *testing.T) {
	tests := []struct {
		name       string
		handler    http.HandlerFunc
		wantStatus float64
		wantSize   float64
	}{
		{
			name: "explicit status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusCreated)
				_, _ = w.Write([]byte("created"))
			},
			wantStatus: http.StatusCreated,
			wantSize:   7,
		},
		{
			name: "implicit 200 on write",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("ok"))
			},
			wantStatus: http.StatusOK,
			wantSize:   2,
		},
		{
			name:       "nothing written",
			handler:    func(w http.ResponseWriter, r *http.Request) {},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			h := newBufferedHandler(buf)

			req := httptest.NewRequest(http.MethodPost, "/api/sync", nil)
			req = req.WithContext(h.logger.WithContext(req.Context()))
			h.withLogging(tt.handler).ServeHTTP(httptest.NewRecorder(), req)

			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			assert.Equal(t, "/api/sync", entry["uri"])
			assert.Equal(t, http.MethodPost, entry["method"])
			assert.Equal(t, tt.wantStatus, entry["status"])
			assert.Equal(t, tt.wantSize, entry["size"])
		})
	}
}

func TestResponseWriter_WriteHeaderOnce(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	w.WriteHeader(http.StatusAccepted)
	w.WriteHeader(http.StatusInternalServerError)

	assert.Equal(t, http.StatusAccepted, w.Status())
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Same(t, rec, w.Unwrap())
}
