// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-media-mirror/internal/utils"
)

// getMirror answers with the committed replica of a tracked server: one
// object per container mapping child ids to display names.
func (h *Handler) getMirror(w http.ResponseWriter, r *http.Request) {
	serverID, err := serverParam(r)
	if err != nil {
		writeError(w, r, "*Handler.getMirror", err)
		return
	}

	forest, err := h.services.Registry.Replica(r.Context(), serverID)
	if err != nil {
		writeError(w, r, "*Handler.getMirror", err)
		return
	}

	utils.WriteJSON(w, forest.Sections(), http.StatusOK)
}
