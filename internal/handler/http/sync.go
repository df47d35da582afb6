// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-media-mirror/internal/utils"
)

// sync runs one pass and answers with its report. Per-server failures are
// part of the report; the status only reflects whether the pass ran.
func (h *Handler) sync(w http.ResponseWriter, r *http.Request) {
	report, err := h.services.Sync.Sync(r.Context())
	if err != nil {
		writeError(w, r, "*Handler.sync", err)
		return
	}

	utils.WriteJSON(w, report, http.StatusOK)
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	traceID, _ := utils.GetTraceIDFromContext(r.Context())
	utils.WriteJSON(w, errorResponse{Error: "not found", TraceID: traceID}, http.StatusNotFound)
}

func (h *Handler) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	traceID, _ := utils.GetTraceIDFromContext(r.Context())
	utils.WriteJSON(w, errorResponse{Error: "method not allowed", TraceID: traceID}, http.StatusMethodNotAllowed)
}
