// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-media-mirror/internal/logger"
	"github.com/MKhiriev/go-media-mirror/models"
)

type appInfoService struct {
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

func NewAppInfoService(buildInfo models.AppBuildInfo, logger *logger.Logger) (AppInfoService, error) {
	if buildInfo.BuildVersion() == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		buildInfo: buildInfo,
		logger:    logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.buildInfo.BuildVersion()
}

func (s *appInfoService) GetBuildInfo(ctx context.Context) models.AppBuildInfo {
	return s.buildInfo
}
