// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-media-mirror/internal/utils"
	"github.com/rs/zerolog"
)

const traceIDHeader = "X-Trace-ID"

func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" {
			traceID = h.traceIDs.Generate()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})
		ctx = utils.WithTraceID(l.WithContext(ctx), traceID)
		r = r.WithContext(ctx)

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r)
	})
}
