package logs

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"danawa-backend/internal/config"

	"gopkg.in/natefinch/lumberjack.v2"
)

// New builds the application logger and returns the writer it logs to, so
// the HTTP access log can share it.
func New(cfg *config.Config) (*slog.Logger, io.Writer) {
	w := Writer(cfg.Log)

	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Log.Level),
		AddSource: strings.EqualFold(cfg.Env, "development"),
	}

	var h slog.Handler
	if cfg.Log.Format == "json" {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}

	return slog.New(h).With(slog.String("env", cfg.Env)), w
}

// Writer fans out to stdout and, when configured, a rotated log file.
func Writer(cfg config.LogConfig) io.Writer {
	if cfg.File.Path == "" {
		return os.Stdout
	}
	return io.MultiWriter(os.Stdout, &lumberjack.Logger{
		Filename:   cfg.File.Path,
		MaxSize:    cfg.File.MaxSizeMB,
		MaxBackups: cfg.File.MaxBackups,
	})
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
