// Copyright The AtlanticWave-SDX contributors.
// SPDX-License-Identifier: MIT

package log

import (
	"context"
	"log/slog"
	"os"
)

type ctxKey string

const slogFields ctxKey = "slog_fields"

type contextHandler struct {
	slog.Handler
}

// Handle adds contextual attributes to the Record before calling the underlying handler
func (h contextHandler) Handle(ctx context.Context, r slog.Record) error {
	if attrs, ok := ctx.Value(slogFields).([]slog.Attr); ok {
		for _, v := range attrs {
			r.AddAttrs(v)
		}
	}

	return h.Handler.Handle(ctx, r)
}

// AppendCtx adds an slog attribute to the provided context so that it will be
// included in any Record created with such context
func AppendCtx(parent context.Context, attr slog.Attr) context.Context {
	if parent == nil {
		parent = context.Background()
	}

	if v, ok := parent.Value(slogFields).([]slog.Attr); ok {
		v = append(v, attr)
		return context.WithValue(parent, slogFields, v)
	}

	return context.WithValue(parent, slogFields, []slog.Attr{attr})
}

// InitStructuredLogging sets the process-wide slog default to a JSON handler
// that honors SDX_LOG_LEVEL (debug, info, warn, error) and SDX_LOG_ADD_SOURCE.
func InitStructuredLogging() {
	opts := &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}

	switch os.Getenv("SDX_LOG_LEVEL") {
	case "debug":
		opts.Level = slog.LevelDebug
	case "warn":
		opts.Level = slog.LevelWarn
	case "error":
		opts.Level = slog.LevelError
	}

	if os.Getenv("SDX_LOG_ADD_SOURCE") == "true" {
		opts.AddSource = true
	}

	handler := contextHandler{slog.NewJSONHandler(os.Stderr, opts)}
	slog.SetDefault(slog.New(handler))
}
