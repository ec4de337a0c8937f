// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

//go:build !windows

package globalenv

import (
	"log/slog"

	"github.com/stacklok/globalenv/env"
)

// NewPlatformStore returns the startup-file store. $HOME and $SHELL are read
// from envReader.
func NewPlatformStore(envReader env.Reader, logger *slog.Logger) Store {
	return NewProfileStore(envReader, nil, logger)
}
