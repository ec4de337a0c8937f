// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package globalenv

import (
	"errors"
	"fmt"

	"github.com/stacklok/globalenv/validation/envkey"
)

var (
	// ErrHomeUnavailable is returned when the current user's home directory
	// cannot be determined. It is a precondition failure, not an I/O failure.
	ErrHomeUnavailable = errors.New("home directory unavailable")

	// ErrInvalidKey is returned for empty keys or keys containing '=' or NUL.
	ErrInvalidKey = envkey.ErrInvalidKey
)

// IOError is a failure to read or write a persistent store or the process
// environment.
type IOError struct {
	// Op is the operation that failed, e.g. "open", "write", "setenv".
	Op string
	// Path is the file, registry key or variable the operation targeted.
	Path string
	Err  error
}

// Error implements the error interface.
func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *IOError) Unwrap() error {
	return e.Err
}

// IsIOError reports whether err wraps an *IOError.
func IsIOError(err error) bool {
	var ioErr *IOError
	return errors.As(err, &ioErr)
}
