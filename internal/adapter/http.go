// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-media-mirror/internal/config"
	"github.com/MKhiriev/go-media-mirror/internal/logger"
	"github.com/MKhiriev/go-media-mirror/internal/utils"
	"github.com/MKhiriev/go-media-mirror/models"
)

// Bridge API routes.
const (
	routeServers    = "/api/servers"
	routeProperties = "/api/objects/properties"
	routeSearch     = "/api/objects/search"
	routeChildren   = "/api/objects/children"
)

type httpMediaServerAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPMediaServerAdapter constructs an HTTP/JSON implementation of
// [MediaServerAdapter]. It normalises and validates the bridge base URL from
// cfg.HTTPAddress and applies cfg.RequestTimeout to every request.
//
// Returns an error if cfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPMediaServerAdapter(cfg config.Adapter, logger *logger.Logger) (MediaServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, cfg.RequestTimeout)

	logger.Debug().Str("base_url", baseURL).Msg("creating media server adapter")
	return &httpMediaServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// ListServers implements [MediaServerAdapter] via GET /api/servers.
func (h *httpMediaServerAdapter) ListServers(ctx context.Context) ([]models.ServerHandle, error) {
	log := logger.FromContext(ctx)

	resp, err := h.client.R().
		SetContext(ctx).
		Get(routeServers)
	if err != nil {
		log.Err(err).Str("func", "httpMediaServerAdapter.ListServers").Msg("bridge request failed")
		return nil, fmt.Errorf("list servers request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var sr models.ServersResponse
	if err = json.Unmarshal(resp.Body(), &sr); err != nil {
		return nil, fmt.Errorf("%w: servers: %w", ErrDecodeResponse, err)
	}

	return sr.Servers, nil
}

// GetProperty implements [MediaServerAdapter] via
// GET /api/objects/properties?path=&name=.
func (h *httpMediaServerAdapter) GetProperty(ctx context.Context, objectPath, name string) (models.Property, error) {
	log := logger.FromContext(ctx)

	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParam("path", objectPath).
		SetQueryParam("name", name).
		Get(routeProperties)
	if err != nil {
		log.Err(err).
			Str("func", "httpMediaServerAdapter.GetProperty").
			Str("path", objectPath).
			Str("property", name).
			Msg("bridge request failed")
		return models.Property{}, fmt.Errorf("get property %s request: %w", name, err)
	}
	if err = mapPropertyError(resp); err != nil {
		return models.Property{}, err
	}

	var p models.Property
	if err = json.Unmarshal(resp.Body(), &p); err != nil {
		return models.Property{}, fmt.Errorf("%w: property %s: %w", ErrDecodeResponse, name, err)
	}
	if p.Name == "" {
		p.Name = name
	}
	if len(p.Value) == 0 || string(p.Value) == "null" {
		return models.Property{}, fmt.Errorf("%w: %s has no value", ErrPropertyUnavailable, name)
	}

	return p, nil
}

// SearchObjects implements [MediaServerAdapter] via POST /api/objects/search.
func (h *httpMediaServerAdapter) SearchObjects(ctx context.Context, containerPath, query string, fields []string) ([]models.RemoteObject, error) {
	return h.postObjects(ctx, "httpMediaServerAdapter.SearchObjects", routeSearch, models.SearchRequest{
		Path:   containerPath,
		Query:  query,
		Fields: fields,
	})
}

// ListChildren implements [MediaServerAdapter] via POST /api/objects/children.
func (h *httpMediaServerAdapter) ListChildren(ctx context.Context, containerPath string, fields []string) ([]models.RemoteObject, error) {
	return h.postObjects(ctx, "httpMediaServerAdapter.ListChildren", routeChildren, models.ChildrenRequest{
		Path:   containerPath,
		Fields: fields,
	})
}

func (h *httpMediaServerAdapter) postObjects(ctx context.Context, fn, route string, body any) ([]models.RemoteObject, error) {
	log := logger.FromContext(ctx)

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(route)
	if err != nil {
		log.Err(err).Str("func", fn).Msg("bridge request failed")
		return nil, fmt.Errorf("%s request: %w", route, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var or models.ObjectsResponse
	if err = json.Unmarshal(resp.Body(), &or); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDecodeResponse, route, err)
	}

	objects := make([]models.RemoteObject, 0, len(or.Objects))
	for _, o := range or.Objects {
		obj := o.RemoteObject()
		if obj.ID == "" {
			log.Warn().Str("func", fn).Interface("object", o).Msg("skipping object without path")
			continue
		}
		objects = append(objects, obj)
	}

	return objects, nil
}
