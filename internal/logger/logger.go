// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger that adds
// convenience constructors and context-aware helpers used throughout
// go-media-mirror.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
// Application code passes *Logger by pointer and obtains scoped loggers via
// FromContext, FromRequest or WithServer.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

func init() {
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"
}

// NewLogger constructs a JSON *Logger writing to os.Stdout for the given role
// label (e.g. "mirror-daemon").
//
// Every entry carries a "role" field, a timestamp and a "func" caller field
// holding the fully-qualified function name. level is parsed with
// zerolog.ParseLevel; an empty or unknown level means debug.
func NewLogger(role, level string) *Logger {
	return newLogger(os.Stdout, role, level)
}

// NewFileLogger is like NewLogger but appends to the file at path so that
// command output on stdout stays readable. It falls back to stdout when the
// file cannot be opened.
func NewFileLogger(role, level, path string) *Logger {
	var out io.Writer = os.Stdout

	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err == nil {
			f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
			if err == nil {
				out = f
			}
		}
	}

	return newLogger(out, role, level)
}

func newLogger(out io.Writer, role, level string) *Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.DebugLevel
	}

	logger := zerolog.New(out).Level(lvl).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// Nop returns a *Logger that discards all log output.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// WithServer returns a child logger tagged with the server id.
func (l *Logger) WithServer(serverID string) *Logger {
	return &Logger{l.With().Str("server_id", serverID).Logger()}
}

// FromRequest extracts the logger attached to the request context.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext extracts the zerolog.Logger stored in ctx by zerolog's log.Ctx
// helper and returns it as a *Logger.
//
// If no logger has been attached to ctx, zerolog returns its default logger,
// so this function never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
