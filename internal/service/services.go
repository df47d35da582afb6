// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-media-mirror/internal/adapter"
	"github.com/MKhiriev/go-media-mirror/internal/logger"
	"github.com/MKhiriev/go-media-mirror/internal/store"
	"github.com/MKhiriev/go-media-mirror/models"
	"github.com/jonboulle/clockwork"
)

type Services struct {
	Validator CapabilityValidator
	Registry  RegistryService
	Sync      SyncService
	SyncJob   SyncJob
	AppInfo   AppInfoService
}

func NewServices(
	ctx context.Context,
	storages *store.Storages,
	serverAdapter adapter.MediaServerAdapter,
	buildInfo models.AppBuildInfo,
	logger *logger.Logger,
) (*Services, error) {
	clock := clockwork.NewRealClock()

	validator := NewCapabilityValidator(serverAdapter, logger)

	registry, err := NewRegistryService(ctx, storages.Registry, storages.Mirror, serverAdapter, validator, logger)
	if err != nil {
		return nil, err
	}

	appInfo, err := NewAppInfoService(buildInfo, logger)
	if err != nil {
		return nil, err
	}

	syncService := NewSyncService(serverAdapter, registry, storages.Mirror, clock, logger)

	return &Services{
		Validator: validator,
		Registry:  registry,
		Sync:      syncService,
		SyncJob:   NewSyncJob(syncService, clock, logger),
		AppInfo:   appInfo,
	}, nil
}
