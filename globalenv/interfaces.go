// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package globalenv

//go:generate mockgen -copyright_file=../.github/license-header.txt -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

// Store is a persistent environment store that outlives the current process.
type Store interface {
	// Set persists key=value.
	Set(key, value string) error

	// Get returns the persisted value for key. Read failures are reported as
	// not found.
	Get(key string) (string, bool)
}
