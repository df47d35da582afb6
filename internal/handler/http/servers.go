// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-media-mirror/internal/utils"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listServers(w http.ResponseWriter, r *http.Request) {
	servers, err := h.services.Registry.Servers(r.Context())
	if err != nil {
		writeError(w, r, "*Handler.listServers", err)
		return
	}

	utils.WriteJSON(w, servers, http.StatusOK)
}

// serverParam returns the unescaped {server} path parameter. Server paths
// contain slashes and must be sent URL-escaped.
func serverParam(r *http.Request) (string, error) {
	raw := chi.URLParam(r, "server")

	server, err := url.PathUnescape(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidServerParam, err)
	}
	if strings.TrimSpace(server) == "" {
		return "", ErrInvalidServerParam
	}
	return server, nil
}
