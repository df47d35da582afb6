// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case http.StatusBadGateway:
		return fmt.Errorf("%w: %s", ErrBadGateway, body)
	case http.StatusServiceUnavailable:
		return fmt.Errorf("%w: %s", ErrServiceUnavailable, body)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, body)
	default:
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("%w: http %d: %s", ErrUnexpectedStatus, resp.StatusCode(), body)
	}
}

// mapPropertyError treats a missing or unimplemented property as
// [ErrPropertyUnavailable].
func mapPropertyError(resp *resty.Response) error {
	switch resp.StatusCode() {
	case http.StatusNotFound, http.StatusNotImplemented:
		body := strings.TrimSpace(string(resp.Body()))
		return fmt.Errorf("%w: %s", ErrPropertyUnavailable, body)
	}
	return mapHTTPError(resp)
}
