// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package globalenv

import (
	"github.com/adrg/xdg"

	"github.com/stacklok/globalenv/env"
)

// HomeDirFunc resolves the current user's home directory. It returns
// [ErrHomeUnavailable] when there is none.
type HomeDirFunc func() (string, error)

// DefaultHomeDir returns a HomeDirFunc that prefers $HOME from envReader and
// falls back to the XDG home directory.
func DefaultHomeDir(envReader env.Reader) HomeDirFunc {
	return func() (string, error) {
		if home := envReader.Getenv("HOME"); home != "" {
			return home, nil
		}
		if xdg.Home != "" {
			return xdg.Home, nil
		}
		return "", ErrHomeUnavailable
	}
}

// StaticHomeDir returns a HomeDirFunc that always resolves to dir. An empty
// dir resolves to [ErrHomeUnavailable].
func StaticHomeDir(dir string) HomeDirFunc {
	return func() (string, error) {
		if dir == "" {
			return "", ErrHomeUnavailable
		}
		return dir, nil
	}
}
