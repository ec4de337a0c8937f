// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

//go:build windows

package globalenv

import (
	"fmt"
	"log/slog"
	"time"
	"unsafe"

	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"
)

const (
	userEnvironmentKey   = `Environment`
	systemEnvironmentKey = `SYSTEM\CurrentControlSet\Control\Session Manager\Environment`

	// BroadcastTimeout bounds how long SendMessageTimeoutW waits for each
	// top-level window.
	BroadcastTimeout = 5000 * time.Millisecond
)

const (
	hwndBroadcast   = 0xffff
	wmSettingChange = 0x001A
	smtoAbortIfHung = 0x0002
)

var (
	user32                  = windows.NewLazySystemDLL("user32.dll")
	procSendMessageTimeoutW = user32.NewProc("SendMessageTimeoutW")
)

// Broadcaster notifies running processes that the environment changed.
type Broadcaster func() error

// BroadcastSettingChange sends WM_SETTINGCHANGE with the "Environment"
// parameter to all top-level windows.
func BroadcastSettingChange() error {
	if err := procSendMessageTimeoutW.Find(); err != nil {
		return err
	}

	param, err := windows.UTF16PtrFromString("Environment")
	if err != nil {
		return err
	}

	var result uintptr
	ret, _, callErr := procSendMessageTimeoutW.Call(
		hwndBroadcast,
		wmSettingChange,
		0,
		uintptr(unsafe.Pointer(param)),
		smtoAbortIfHung,
		uintptr(BroadcastTimeout.Milliseconds()),
		uintptr(unsafe.Pointer(&result)),
	)
	if ret == 0 {
		return fmt.Errorf("broadcasting WM_SETTINGCHANGE: %w", callErr)
	}
	return nil
}

// RegistryStore persists variables as string values under HKCU\Environment.
type RegistryStore struct {
	broadcast Broadcaster
	logger    *slog.Logger
}

// NewRegistryStore creates a RegistryStore. A nil broadcast uses
// [BroadcastSettingChange]; a nil logger discards output.
func NewRegistryStore(broadcast Broadcaster, logger *slog.Logger) *RegistryStore {
	if broadcast == nil {
		broadcast = BroadcastSettingChange
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &RegistryStore{broadcast: broadcast, logger: logger}
}

// Set writes key as a REG_SZ value under HKCU\Environment and broadcasts the
// change. A failed broadcast is logged and does not fail Set.
func (s *RegistryStore) Set(key, value string) error {
	k, err := registry.OpenKey(registry.CURRENT_USER, userEnvironmentKey, registry.QUERY_VALUE|registry.SET_VALUE)
	if err != nil {
		return &IOError{Op: "open", Path: `HKCU\` + userEnvironmentKey, Err: err}
	}
	defer k.Close()

	if err := k.SetStringValue(key, value); err != nil {
		return &IOError{Op: "set", Path: `HKCU\` + userEnvironmentKey + `\` + key, Err: err}
	}

	if err := s.broadcast(); err != nil {
		s.logger.Warn("environment change broadcast failed", "key", key, "error", err)
	}
	return nil
}

// Get reads key from HKCU\Environment, then from the machine-wide
// environment key.
func (s *RegistryStore) Get(key string) (string, bool) {
	if value, ok := s.readValue(registry.CURRENT_USER, userEnvironmentKey, key); ok {
		return value, true
	}
	return s.readValue(registry.LOCAL_MACHINE, systemEnvironmentKey, key)
}

func (s *RegistryStore) readValue(root registry.Key, path, key string) (string, bool) {
	k, err := registry.OpenKey(root, path, registry.QUERY_VALUE)
	if err != nil {
		s.logger.Debug("cannot open registry key", "path", path, "error", err)
		return "", false
	}
	defer k.Close()

	value, _, err := k.GetStringValue(key)
	if err != nil {
		return "", false
	}
	return value, true
}
