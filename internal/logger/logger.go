// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog for the admin configuration server and
// adminctl.
//
// [Logger] embeds zerolog.Logger, so the whole zerolog API is available on
// it. Loggers are passed by pointer. Request handlers read the request
// scoped logger back with [FromRequest].
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Field names shared by every logger of the application.
const (
	RoleField      = "role"
	ComponentField = "component"
	TraceIDField   = "trace_id"
)

type Logger struct {
	zerolog.Logger
}

// NewLogger returns the JSON logger of a long running process. Every entry
// carries role, a timestamp and the calling function under "func".
func NewLogger(role string) *Logger {
	return newJSONLogger(role, os.Stdout)
}

func newJSONLogger(role string, w io.Writer) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerFieldName = "func"
	zerolog.CallerMarshalFunc = func(pc uintptr, _ string, _ int) string {
		return runtime.FuncForPC(pc).Name()
	}

	return &Logger{zerolog.New(w).With().
		Str(RoleField, role).
		Timestamp().
		Caller().
		Logger()}
}

// NewConsoleLogger returns a human readable logger for command-line tools,
// at Info level, or Debug when verbose is set.
func NewConsoleLogger(role string, w io.Writer, verbose bool) *Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	return &Logger{zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}).
		Level(level).
		With().
		Str(RoleField, role).
		Timestamp().
		Logger()}
}

// Nop discards everything. Used in tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// Component returns a child logger tagged with the name of the package or
// service writing through it. The receiver is not modified.
func (l *Logger) Component(name string) *Logger {
	return &Logger{l.With().Str(ComponentField, name).Logger()}
}

// WithTraceID stores a child logger tagged with traceID in ctx.
func (l *Logger) WithTraceID(ctx context.Context, traceID string) context.Context {
	child := l.With().Str(TraceIDField, traceID).Logger()
	return child.WithContext(ctx)
}

// FromRequest returns the logger stored in the request context.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger stored in ctx, or a disabled logger when
// there is none. It never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
