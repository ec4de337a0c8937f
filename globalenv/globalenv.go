// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package globalenv

import (
	"fmt"
	"log/slog"
	"sync"
	"unicode/utf8"

	"github.com/stacklok/globalenv/env"
	"github.com/stacklok/globalenv/logging"
	"github.com/stacklok/globalenv/validation/envkey"
)

// options holds the resolved configuration for a Manager.
type options struct {
	store   Store
	procEnv env.ReadWriter
	logger  *slog.Logger
}

// Option configures a Manager created by [New].
type Option func(*options)

// WithStore sets the persistent store.
// The default is [NewPlatformStore].
func WithStore(s Store) Option {
	return func(o *options) {
		o.store = s
	}
}

// WithProcessEnv sets the process environment table.
// The default is [env.OSEnv].
func WithProcessEnv(e env.ReadWriter) Option {
	return func(o *options) {
		o.procEnv = e
	}
}

// WithLogger sets the logger.
// The default is a [logging.New] logger configured from the process environment.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// Manager sets and looks up global environment variables.
//
// Manager holds no state of its own; concurrent use is only as safe as the
// process environment table it was given.
type Manager struct {
	store   Store
	procEnv env.ReadWriter
	logger  *slog.Logger
}

// New creates a Manager.
func New(opts ...Option) *Manager {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	if o.procEnv == nil {
		o.procEnv = &env.OSEnv{}
	}
	if o.logger == nil {
		o.logger = logging.New(logging.WithEnv(o.procEnv))
	}
	if o.store == nil {
		o.store = NewPlatformStore(o.procEnv, o.logger)
	}

	return &Manager{store: o.store, procEnv: o.procEnv, logger: o.logger}
}

// Set persists key=value to the store and then sets it in the process
// environment.
//
// Errors wrap [ErrInvalidKey], [ErrHomeUnavailable] or an [*IOError]. The two
// writes are not transactional: on a process environment failure the value
// has already been persisted.
func (m *Manager) Set(key, value string) error {
	if err := envkey.ValidateKey(key); err != nil {
		return err
	}

	if err := m.store.Set(key, value); err != nil {
		return fmt.Errorf("persisting %s: %w", key, err)
	}

	if err := m.procEnv.Setenv(key, value); err != nil {
		return &IOError{Op: "setenv", Path: key, Err: err}
	}

	m.logger.Debug("global environment variable set", "key", key)
	return nil
}

// Get returns the value of key from the process environment, or else from the
// persistent store. Absence is reported with ok == false and is not an error.
func (m *Manager) Get(key string) (string, bool) {
	if value, ok := m.procEnv.LookupEnv(key); ok && utf8.ValidString(value) {
		m.logger.Debug("resolved from process environment", "key", key)
		return value, true
	}

	if value, ok := m.store.Get(key); ok {
		m.logger.Debug("resolved from persistent store", "key", key)
		return value, true
	}

	return "", false
}

var defaultManager = sync.OnceValue(func() *Manager {
	return New()
})

// Set persists key=value for future processes and applies it to the current
// process, using the platform store and the real process environment.
func Set(key, value string) error {
	return defaultManager().Set(key, value)
}

// Get looks key up in the current process environment and then in the
// platform store.
func Get(key string) (string, bool) {
	return defaultManager().Get(key)
}
