package app

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/heartmarshall/petmemorial-backend/internal/config"
)

const serviceName = "petmemorial"

// NewLogger builds the process logger on stderr and installs it as the slog
// default. Every record carries the service name and build version so logs
// from several deployments can share one sink.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	logger := newLogger(os.Stderr, cfg).With(
		slog.String("service", serviceName),
		slog.String("version", Version),
	)
	slog.SetDefault(logger)
	return logger
}

// newLogger picks the handler: "text" is for local development and includes
// source locations, anything else is JSON.
func newLogger(w io.Writer, cfg config.LogConfig) *slog.Logger {
	text := strings.EqualFold(strings.TrimSpace(cfg.Format), "text")

	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: text,
	}
	if text {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
