// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

//go:build windows

package globalenv

import (
	"log/slog"

	"github.com/stacklok/globalenv/env"
)

// NewPlatformStore returns the registry-backed store.
func NewPlatformStore(_ env.Reader, logger *slog.Logger) Store {
	return NewRegistryStore(nil, logger)
}
