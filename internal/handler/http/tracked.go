// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-media-mirror/internal/logger"
	"github.com/MKhiriev/go-media-mirror/internal/utils"
)

func (h *Handler) listTracked(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.Registry.Tracked(), http.StatusOK)
}

func (h *Handler) track(w http.ResponseWriter, r *http.Request) {
	server, err := serverParam(r)
	if err != nil {
		writeError(w, r, "*Handler.track", err)
		return
	}

	record, err := h.services.Registry.Track(r.Context(), server)
	if err != nil {
		writeError(w, r, "*Handler.track", err)
		return
	}

	utils.WriteJSON(w, record, http.StatusCreated)
}

func (h *Handler) untrack(w http.ResponseWriter, r *http.Request) {
	server, err := serverParam(r)
	if err != nil {
		writeError(w, r, "*Handler.untrack", err)
		return
	}

	if err = h.services.Registry.Untrack(r.Context(), server); err != nil {
		writeError(w, r, "*Handler.untrack", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) trackReset(w http.ResponseWriter, r *http.Request) {
	server, err := serverParam(r)
	if err != nil {
		writeError(w, r, "*Handler.trackReset", err)
		return
	}

	record, err := h.services.Registry.TrackReset(r.Context(), server)
	if err != nil {
		writeError(w, r, "*Handler.trackReset", err)
		return
	}

	utils.WriteJSON(w, record, http.StatusOK)
}

func (h *Handler) reset(w http.ResponseWriter, r *http.Request) {
	if err := h.services.Registry.Reset(r.Context()); err != nil {
		writeError(w, r, "*Handler.reset", err)
		return
	}

	logger.FromRequest(r).Info().Msg("registry reset through api")
	w.WriteHeader(http.StatusNoContent)
}
