// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package env

//go:generate mockgen -copyright_file=../.github/license-header.txt -source=env.go -destination=mocks/mock_env.go -package=mocks

import (
	"maps"
	"os"
	"sync"
)

// Reader defines an interface for environment variable access
type Reader interface {
	Getenv(key string) string
	LookupEnv(key string) (string, bool)
}

// Writer defines an interface for mutating the environment table
type Writer interface {
	Setenv(key, value string) error
}

// ReadWriter groups Reader and Writer
type ReadWriter interface {
	Reader
	Writer
}

// OSEnv implements ReadWriter using the standard os package
type OSEnv struct{}

// Getenv returns the value of the environment variable named by the key
func (*OSEnv) Getenv(key string) string {
	return os.Getenv(key)
}

// LookupEnv returns the value of the environment variable named by the key
// and whether it was present
func (*OSEnv) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

// Setenv sets the environment variable in the current process
func (*OSEnv) Setenv(key, value string) error {
	return os.Setenv(key, value)
}

// MapEnv is an isolated in-memory environment table.
type MapEnv struct {
	mu   sync.RWMutex
	vars map[string]string
}

// NewMapEnv returns a MapEnv seeded with a copy of vars.
func NewMapEnv(vars map[string]string) *MapEnv {
	m := &MapEnv{vars: make(map[string]string, len(vars))}
	maps.Copy(m.vars, vars)
	return m
}

// Getenv returns the value for key, or "" if unset.
func (m *MapEnv) Getenv(key string) string {
	v, _ := m.LookupEnv(key)
	return v
}

// LookupEnv returns the value for key and whether it was present.
func (m *MapEnv) LookupEnv(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.vars[key]
	return v, ok
}

// Setenv sets key to value.
func (m *MapEnv) Setenv(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.vars == nil {
		m.vars = make(map[string]string)
	}
	m.vars[key] = value
	return nil
}

// Unsetenv removes key.
func (m *MapEnv) Unsetenv(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.vars, key)
}
