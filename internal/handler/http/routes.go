// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Route("/api", func(r chi.Router) {
		r.Get("/version", h.getVersion)
		r.Get("/servers", h.listServers)

		r.Route("/tracked", func(r chi.Router) {
			r.Get("/", h.listTracked)
			r.Post("/{server}", h.track)
			r.Delete("/{server}", h.untrack)
			r.Post("/{server}/reset", h.trackReset)
		})

		r.Get("/mirror/{server}", h.getMirror)

		r.Post("/sync", h.sync)
		r.Post("/reset", h.reset)
	})

	router.NotFound(h.notFound)
	router.MethodNotAllowed(h.methodNotAllowed)

	return router
}
