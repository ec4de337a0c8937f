// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package globalenv

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/stacklok/globalenv/env"
)

// ProfileStore persists variables as export lines in shell startup files.
//
// Set appends `export KEY="VALUE"` to ~/.profile. Get scans the startup file
// of the current shell and then ~/.profile for the first line starting with
// `export KEY=`.
type ProfileStore struct {
	envReader env.Reader
	homeDir   HomeDirFunc
	logger    *slog.Logger
}

// NewProfileStore creates a ProfileStore. $SHELL is read from envReader.
// A nil homeDir uses [DefaultHomeDir]; a nil logger discards output.
func NewProfileStore(envReader env.Reader, homeDir HomeDirFunc, logger *slog.Logger) *ProfileStore {
	if homeDir == nil {
		homeDir = DefaultHomeDir(envReader)
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &ProfileStore{envReader: envReader, homeDir: homeDir, logger: logger}
}

// Set appends an export line for key to ~/.profile, creating the file if
// needed. Earlier lines for the same key are left in place.
func (s *ProfileStore) Set(key, value string) error {
	home, err := s.homeDir()
	if err != nil {
		return err
	}

	path := filepath.Join(home, ProfileFile)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return &IOError{Op: "open", Path: path, Err: err}
	}

	// Single write so concurrent appenders cannot split the line.
	_, writeErr := f.WriteString(exportLine(key, value))
	closeErr := f.Close()
	if err := errors.Join(writeErr, closeErr); err != nil {
		return &IOError{Op: "write", Path: path, Err: err}
	}

	s.logger.Debug("appended export line", "key", key, "path", path)
	return nil
}

// Get returns the value of the first export line for key.
func (s *ProfileStore) Get(key string) (string, bool) {
	home, err := s.homeDir()
	if err != nil {
		s.logger.Debug("skipping startup files", "error", err)
		return "", false
	}

	for _, rel := range s.lookupFiles() {
		path := filepath.Join(home, rel)
		if value, ok := s.readExport(path, key); ok {
			s.logger.Debug("found export line", "key", key, "path", path)
			return value, true
		}
	}
	return "", false
}

// lookupFiles lists the startup files to scan, in order.
func (s *ProfileStore) lookupFiles() []string {
	shell := ShellFromPath(s.envReader.Getenv("SHELL"))
	file := ShellConfigFile(shell)
	if file == ProfileFile {
		return []string{ProfileFile}
	}
	return []string{file, ProfileFile}
}

func (s *ProfileStore) readExport(path, key string) (string, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.logger.Debug("unreadable startup file", "path", path, "error", err)
		}
		return "", false
	}
	if !utf8.Valid(data) {
		s.logger.Debug("startup file is not valid UTF-8", "path", path)
		return "", false
	}
	return parseExport(string(data), key)
}

func exportLine(key, value string) string {
	return "export " + key + `="` + value + "\"\n"
}

// parseExport scans content for the first `export KEY=` line and returns the
// text after '=' with one surrounding double quote removed from each end.
func parseExport(content, key string) (string, bool) {
	prefix := "export " + key + "="
	for line := range strings.Lines(content) {
		line = strings.TrimRight(line, "\r\n")
		if !strings.HasPrefix(line, prefix) {
			continue
		}
		value := line[len(prefix):]
		value = strings.TrimPrefix(value, `"`)
		value = strings.TrimSuffix(value, `"`)
		return value, true
	}
	return "", false
}
