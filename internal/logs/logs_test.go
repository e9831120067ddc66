package logs

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"danawa-backend/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, parseLevel("warn"))
	assert.Equal(t, slog.LevelError, parseLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLevel("verbose"))
}

func TestNew_WritesToRotatedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	cfg := &config.Config{
		Env: "production",
		Log: config.LogConfig{
			Level:  "info",
			Format: "json",
			File:   config.FileConfig{Path: path, MaxSizeMB: 1, MaxBackups: 1},
		},
	}

	logger, _ := New(cfg)
	logger.Info("contact received", slog.String("name", "김민준"))
	assert.False(t, logger.Enabled(context.Background(), slog.LevelDebug))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"contact received"`)
	assert.Contains(t, string(data), `"env":"production"`)
}
