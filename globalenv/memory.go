// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package globalenv

import "github.com/stacklok/globalenv/env"

// MemoryStore is a Store that keeps variables in memory. Set replaces any
// previous value.
type MemoryStore struct {
	vars *env.MapEnv
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{vars: env.NewMapEnv(nil)}
}

// Set stores key=value.
func (s *MemoryStore) Set(key, value string) error {
	return s.vars.Setenv(key, value)
}

// Get returns the stored value for key.
func (s *MemoryStore) Get(key string) (string, bool) {
	return s.vars.LookupEnv(key)
}
