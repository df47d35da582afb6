// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/go-media-mirror/internal/logger"
	"github.com/MKhiriev/go-media-mirror/internal/service"
	"github.com/MKhiriev/go-media-mirror/internal/utils"
)

type Handler struct {
	services *service.Services
	traceIDs *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		traceIDs: utils.NewUUIDGenerator(),
		logger:   logger,
	}
}
