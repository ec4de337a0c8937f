// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package envkey

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidKey is returned for keys the process environment cannot hold.
var ErrInvalidKey = errors.New("invalid environment variable key")

// ValidateKey checks that key is non-empty and contains neither '=' nor null bytes.
func ValidateKey(key string) error {
	if key == "" {
		return fmt.Errorf("%w: key cannot be empty", ErrInvalidKey)
	}

	if strings.Contains(key, "\x00") {
		return fmt.Errorf("%w: key cannot contain null bytes: %q", ErrInvalidKey, key)
	}

	if strings.Contains(key, "=") {
		return fmt.Errorf("%w: key cannot contain '=': %q", ErrInvalidKey, key)
	}

	return nil
}
