// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import "errors"

var (
	ErrSyncFailed = errors.New("sync pass finished with failed servers")
)
