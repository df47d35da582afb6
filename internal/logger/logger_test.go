// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNewLogger_RoleField(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("test-role", "")
	l.Logger = l.Output(&buf)

	l.Info().Msg("hello")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "test-role", entry["role"])
	_, hasTime := entry["time"]
	assert.True(t, hasTime, "expected 'time' field in log entry")
}

func TestNewLogger_CallerFieldName(t *testing.T) {
	NewLogger("caller-role", "info")
	assert.Equal(t, "func", zerolog.CallerFieldName)
}

func TestNewLogger_Level(t *testing.T) {
	tests := []struct {
		name  string
		level string
		want  zerolog.Level
	}{
		{name: "empty means debug", level: "", want: zerolog.DebugLevel},
		{name: "unknown means debug", level: "loud", want: zerolog.DebugLevel},
		{name: "warn", level: "warn", want: zerolog.WarnLevel},
		{name: "error", level: "error", want: zerolog.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLogger("level-role", tt.level)
			assert.Equal(t, tt.want, l.GetLevel())
		})
	}
}

func TestNewFileLogger_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "mirror.log")

	l := NewFileLogger("file-role", "info", path)
	l.Info().Msg("to file")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"role":"file-role"`)
	assert.Contains(t, string(data), "to file")
}

func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Info().Msg("should be discarded")

	assert.Empty(t, buf.String(), "Nop logger should produce no output")
}

func TestGetChildLogger_InheritsFields(t *testing.T) {
	var buf bytes.Buffer
	parent := NewLogger("inherited-role", "")
	parent.Logger = parent.Output(&buf)

	child := parent.GetChildLogger()
	assert.NotSame(t, parent, child)

	child.Info().Msg("child message")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "inherited-role", entry["role"])
}

func TestWithServer_AddsServerID(t *testing.T) {
	var buf bytes.Buffer
	parent := NewLogger("server-role", "")
	parent.Logger = parent.Output(&buf)

	parent.WithServer("uuid:1234").Info().Msg("tagged")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "uuid:1234", entry["server_id"])
}

func TestFromContext_NotNil(t *testing.T) {
	l := FromContext(context.Background())
	require.NotNil(t, l)
}

func TestFromContext_ReturnsAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("ctx-key", "ctx-value").Logger()
	ctx := zl.WithContext(context.Background())

	FromContext(ctx).Info().Msg("from context")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "ctx-value", entry["ctx-key"])
}

func TestFromRequest_ReturnsAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("req-key", "req-value").Logger()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(zl.WithContext(req.Context()))

	FromRequest(req).Info().Msg("from request")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "req-value", entry["req-key"])
}
