// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog for the blog API server.
//
// A single root *Logger is built in main and handed to every layer. Request
// handling code never holds that root directly: the HTTP middleware stores a
// per-request child carrying trace_id (and user_id once the session is
// verified) in the request context, and handlers, services and repositories
// pull it back out with FromContext or FromRequest.
package logger

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	callerFieldName = "func"
	traceIDField    = "trace_id"
	userIDField     = "user_id"
)

// Logger embeds zerolog.Logger so the full zerolog API is available on it.
type Logger struct {
	zerolog.Logger
}

// NewLogger returns a JSON logger writing to stdout. See New.
func NewLogger(role string) *Logger {
	return New(role, os.Stdout)
}

// New returns a JSON logger writing to w. Every entry carries the role label
// ("server", "migrator"), a timestamp and the name of the calling function
// under "func". The global level is reset to debug; narrow it with SetLevel
// once configuration is loaded.
func New(role string, w io.Writer) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerFieldName = callerFieldName
	zerolog.CallerMarshalFunc = func(pc uintptr, _ string, _ int) string {
		return runtime.FuncForPC(pc).Name()
	}

	return &Logger{zerolog.New(w).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()}
}

// SetLevel applies a textual level ("debug", "info", "warn", ...) globally.
// An empty level keeps the current one.
func SetLevel(level string) error {
	if level == "" {
		return nil
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	zerolog.SetGlobalLevel(lvl)

	return nil
}

// Nop returns a logger that discards everything. Used by tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// WithTraceID derives a child of l tagged with traceID and stores it in ctx.
func (l *Logger) WithTraceID(ctx context.Context, traceID string) context.Context {
	child := l.With().Str(traceIDField, traceID).Logger()
	return child.WithContext(ctx)
}

// WithUserID tags the logger already stored in ctx with the authenticated
// user's id. If ctx holds no logger the context is returned unchanged.
func WithUserID(ctx context.Context, userID string) context.Context {
	current := log.Ctx(ctx)
	if current.GetLevel() == zerolog.Disabled {
		return ctx
	}

	child := current.With().Str(userIDField, userID).Logger()
	return child.WithContext(ctx)
}

// FromRequest returns the request-scoped logger stored by the middleware.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger stored in ctx. When none was stored zerolog
// falls back to its default context logger, so the result is never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
