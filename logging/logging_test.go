// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/stacklok/globalenv/env"
	"github.com/stacklok/globalenv/env/mocks"
)

func TestNew_Defaults(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := New(WithOutput(&buf))

	logger.Debug("filtered")
	assert.Empty(t, buf.String(), "DEBUG should be filtered at INFO level")

	logger.Info("variable persisted", "key", "MY_TOOL_HOME")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "variable persisted", entry["msg"])
	assert.Equal(t, "MY_TOOL_HOME", entry["key"])

	ts, ok := entry["time"].(string)
	require.True(t, ok, "time field should be a string")
	_, err := time.Parse(time.RFC3339, ts)
	assert.NoError(t, err, "timestamp should be valid RFC3339")
}

func TestNew_WithFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		format Format
		check  func(t *testing.T, output string)
	}{
		{
			name:   "JSON format produces valid JSON",
			format: FormatJSON,
			check: func(t *testing.T, output string) {
				t.Helper()
				var entry map[string]any
				require.NoError(t, json.Unmarshal([]byte(output), &entry))
				assert.Equal(t, "hello", entry["msg"])
			},
		},
		{
			name:   "text format produces key=value output",
			format: FormatText,
			check: func(t *testing.T, output string) {
				t.Helper()
				assert.Contains(t, output, "level=INFO")
				assert.Contains(t, output, "msg=hello")
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			New(WithFormat(tc.format), WithOutput(&buf)).Info("hello")
			tc.check(t, buf.String())
		})
	}
}

func TestNewHandler_WithLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		level       slog.Level
		logLevel    slog.Level
		shouldWrite bool
	}{
		{"debug logger writes debug", slog.LevelDebug, slog.LevelDebug, true},
		{"info logger filters debug", slog.LevelInfo, slog.LevelDebug, false},
		{"warn logger filters info", slog.LevelWarn, slog.LevelInfo, false},
		{"warn logger writes warn", slog.LevelWarn, slog.LevelWarn, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			logger := slog.New(NewHandler(WithLevel(tc.level), WithOutput(&buf)))

			logger.Log(context.TODO(), tc.logLevel, "test")

			if tc.shouldWrite {
				assert.NotEmpty(t, buf.String())
			} else {
				assert.Empty(t, buf.String())
			}
		})
	}
}

func TestNew_DynamicLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	var lvl slog.LevelVar
	lvl.Set(slog.LevelWarn)

	logger := New(WithLevel(&lvl), WithOutput(&buf))

	logger.Info("should not appear")
	assert.Empty(t, buf.String())

	lvl.Set(slog.LevelInfo)
	logger.Info("should appear")
	assert.NotEmpty(t, buf.String())
}

func TestWithEnv(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		vars      map[string]string
		wantDebug bool
		wantText  bool
	}{
		{
			name: "unset keeps defaults",
			vars: nil,
		},
		{
			name:      "debug level",
			vars:      map[string]string{LevelEnvVar: "debug"},
			wantDebug: true,
		},
		{
			name:      "level is case-insensitive",
			vars:      map[string]string{LevelEnvVar: "DEBUG"},
			wantDebug: true,
		},
		{
			name: "unparsable level is ignored",
			vars: map[string]string{LevelEnvVar: "chatty"},
		},
		{
			name:     "unstructured logs select text",
			vars:     map[string]string{UnstructuredEnvVar: "true"},
			wantText: true,
		},
		{
			name: "structured logs keep JSON",
			vars: map[string]string{UnstructuredEnvVar: "false"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			logger := New(WithOutput(&buf), WithEnv(env.NewMapEnv(tc.vars)))

			logger.Debug("debug line")
			if tc.wantDebug {
				assert.NotEmpty(t, buf.String())
			} else {
				assert.Empty(t, buf.String())
			}

			buf.Reset()
			logger.Info("info line")
			var entry map[string]any
			isJSON := json.Unmarshal(buf.Bytes(), &entry) == nil
			assert.Equal(t, !tc.wantText, isJSON)
		})
	}
}

func TestWithEnv_ReadsThroughReader(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	reader := mocks.NewMockReader(ctrl)
	reader.EXPECT().Getenv(LevelEnvVar).Return("warn")
	reader.EXPECT().Getenv(UnstructuredEnvVar).Return("")

	var buf bytes.Buffer
	logger := New(WithOutput(&buf), WithEnv(reader))

	logger.Info("filtered")
	assert.Empty(t, buf.String())
	logger.Warn("kept")
	assert.NotEmpty(t, buf.String())
}

func TestReplaceAttr(t *testing.T) {
	t.Parallel()

	t.Run("formats time attribute to RFC3339", func(t *testing.T) {
		t.Parallel()
		now := time.Date(2026, 2, 17, 10, 30, 0, 0, time.UTC)

		result := replaceAttr(nil, slog.Time(slog.TimeKey, now))

		assert.Equal(t, slog.TimeKey, result.Key)
		assert.Equal(t, "2026-02-17T10:30:00Z", result.Value.String())
	})

	t.Run("passes non-time attributes unchanged", func(t *testing.T) {
		t.Parallel()
		attr := slog.String("key", "value")
		assert.Equal(t, attr, replaceAttr(nil, attr))
	})
}
