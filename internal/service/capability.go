// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"slices"
	"strings"

	"github.com/MKhiriev/go-media-mirror/internal/adapter"
	"github.com/MKhiriev/go-media-mirror/internal/logger"
	"github.com/MKhiriev/go-media-mirror/models"
)

// Reasons reported by [CheckCapabilities].
const (
	ReasonNoResetToken      = "'ServiceResetToken' variable not supported"
	ReasonNoContentSync     = "'content-synchronization' cap not supported"
	ReasonNoObjectUpdateIDs = "'objectUpdateID' search cap not supported"
)

type capabilityValidator struct {
	adapter adapter.MediaServerAdapter
	logger  *logger.Logger
}

// NewCapabilityValidator constructs a [CapabilityValidator] reading
// properties through serverAdapter.
func NewCapabilityValidator(serverAdapter adapter.MediaServerAdapter, logger *logger.Logger) CapabilityValidator {
	return &capabilityValidator{adapter: serverAdapter, logger: logger}
}

func (v *capabilityValidator) Probe(ctx context.Context, handle models.ServerHandle) (models.ServerCapabilities, error) {
	var caps models.ServerCapabilities

	token, err := v.optionalProperty(ctx, handle, models.PropertyServiceResetToken)
	if err != nil {
		return caps, err
	}
	if token != nil {
		if s, err := token.String(); err == nil {
			caps.ResetToken = &s
		} else {
			v.malformed(ctx, handle, err)
		}
	}

	if caps.DLNACaps, err = v.optionalList(ctx, handle, models.PropertyDLNACaps); err != nil {
		return caps, err
	}
	if caps.SearchCaps, err = v.optionalList(ctx, handle, models.PropertySearchCaps); err != nil {
		return caps, err
	}

	return caps, nil
}

func (v *capabilityValidator) Validate(ctx context.Context, serverID string, handle models.ServerHandle) (string, error) {
	log := logger.FromContext(ctx)

	caps, err := v.Probe(ctx, handle)
	if err != nil {
		log.Err(err).Str("func", "capabilityValidator.Validate").Str("server_id", serverID).Msg("failed to probe capabilities")
		return "", err
	}

	token, err := CheckCapabilities(serverID, caps)
	if err != nil {
		log.Warn().Str("func", "capabilityValidator.Validate").Str("server_id", serverID).Err(err).Msg("server is not trackable")
		return "", err
	}

	return token, nil
}

func (v *capabilityValidator) optionalProperty(ctx context.Context, handle models.ServerHandle, name string) (*models.Property, error) {
	p, err := v.adapter.GetProperty(ctx, handle.Path, name)
	if errors.Is(err, adapter.ErrPropertyUnavailable) {
		return nil, nil
	}
	if err != nil {
		return nil, transportError(err)
	}
	return &p, nil
}

func (v *capabilityValidator) optionalList(ctx context.Context, handle models.ServerHandle, name string) ([]string, error) {
	p, err := v.optionalProperty(ctx, handle, name)
	if err != nil || p == nil {
		return nil, err
	}

	list, err := p.Strings()
	if err != nil {
		v.malformed(ctx, handle, err)
		return nil, nil
	}
	return list, nil
}

// malformed logs a property that cannot be decoded. Such a property counts
// as not exposed, so the server fails the capability checks.
func (v *capabilityValidator) malformed(ctx context.Context, handle models.ServerHandle, err error) {
	logger.FromContext(ctx).Warn().
		Str("func", "capabilityValidator.Probe").
		Str("path", handle.Path).
		Err(err).
		Msg("ignoring malformed capability property")
}

// CheckCapabilities applies the trackability rules to probed capabilities
// and returns the reset token. The checks run in a fixed order and the first
// failure is reported.
func CheckCapabilities(serverID string, caps models.ServerCapabilities) (string, error) {
	if caps.ResetToken == nil {
		return "", &UnsupportedServerError{ServerID: serverID, Reason: ReasonNoResetToken}
	}

	if !slices.Contains(caps.DLNACaps, models.CapContentSynchronization) {
		return "", &UnsupportedServerError{ServerID: serverID, Reason: ReasonNoContentSync}
	}

	if !containsSubstring(caps.SearchCaps, models.SearchCapObjectUpdateID) ||
		!containsSubstring(caps.SearchCaps, models.SearchCapContainerUpdateID) {
		return "", &UnsupportedServerError{ServerID: serverID, Reason: ReasonNoObjectUpdateIDs}
	}

	return *caps.ResetToken, nil
}

// containsSubstring matches sub case-insensitively so that both the plain
// form ("ObjectUpdateID") and the UPnP form ("upnp:objectUpdateID") count.
func containsSubstring(list []string, sub string) bool {
	sub = strings.ToLower(sub)
	return slices.ContainsFunc(list, func(s string) bool {
		return strings.Contains(strings.ToLower(s), sub)
	})
}
