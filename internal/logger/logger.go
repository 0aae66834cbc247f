package logger

import (
	"context"
	"log/slog"
	"os"

	"github.com/google/uuid"
)

type ctxKey string

const sessionIDKey ctxKey = "sessionID"

// GenerateSessionID creates a new UUID for correlating one player
// session's log lines.
func GenerateSessionID() string {
	return uuid.NewString()
}

// WithSessionID returns a new context containing the session ID.
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, sessionIDKey, sessionID)
}

// SessionIDFromContext extracts the session ID from the context, if present.
func SessionIDFromContext(ctx context.Context) (string, bool) {
	v := ctx.Value(sessionIDKey)
	if v == nil {
		return "", false
	}
	if id, ok := v.(string); ok {
		return id, true
	}
	return "", false
}

// FromContext returns a logger that includes the session_id attribute when present.
func FromContext(ctx context.Context) *slog.Logger {
	if id, ok := SessionIDFromContext(ctx); ok {
		return slog.Default().With("session_id", id)
	}
	return slog.Default()
}

// Init installs the default slog logger per the given config.
func Init(cfg Config) {
	opts := &slog.HandlerOptions{
		Level:     cfg.LogLevel(),
		AddSource: cfg.AddSource,
	}

	var handler slog.Handler
	if cfg.IsJSON() {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	logger := slog.New(handler.WithAttrs(cfg.BaseAttributes()))
	slog.SetDefault(logger)
}
