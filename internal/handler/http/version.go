// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
)

func (h *Handler) getVersion(w http.ResponseWriter, r *http.Request) {
	version := h.services.AppInfo.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(version))
}
