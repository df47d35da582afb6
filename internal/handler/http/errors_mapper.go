// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-media-mirror/internal/adapter"
	"github.com/MKhiriev/go-media-mirror/internal/logger"
	"github.com/MKhiriev/go-media-mirror/internal/service"
	"github.com/MKhiriev/go-media-mirror/internal/store"
	"github.com/MKhiriev/go-media-mirror/internal/utils"
)

// errorStatuses is checked in order, so more specific errors come before the
// kinds that wrap them.
var errorStatuses = []struct {
	err    error
	status int
}{
	{ErrInvalidServerParam, http.StatusBadRequest},
	{service.ErrServerNotFound, http.StatusNotFound},
	{service.ErrUnsupportedServer, http.StatusUnprocessableEntity},
	{service.ErrSyncInProgress, http.StatusConflict},

	{adapter.ErrServiceUnavailable, http.StatusServiceUnavailable},
	{adapter.ErrNotFound, http.StatusNotFound},
	{service.ErrTransport, http.StatusBadGateway},

	{store.ErrInvalidDocumentName, http.StatusBadRequest},
	{service.ErrPersistence, http.StatusInternalServerError},
}

func statusFromError(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.err) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// writeError logs err and answers with its mapped status.
func writeError(w http.ResponseWriter, r *http.Request, fn string, err error) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	event := log.Warn()
	if status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).Str("func", fn).Int("status", status).Msg("request failed")

	traceID, _ := utils.GetTraceIDFromContext(r.Context())
	utils.WriteJSON(w, errorResponse{Error: err.Error(), TraceID: traceID}, status)
}
