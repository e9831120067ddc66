package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port    int
	Env     string
	DistDir string
	Log     LogConfig
}

type LogConfig struct {
	Level  string
	Format string
	File   FileConfig
}

// FileConfig enables rotated file output when Path is set.
type FileConfig struct {
	Path       string
	MaxSizeMB  int
	MaxBackups int
}

// Addr is the listen address; the server binds all interfaces.
func (c *Config) Addr() string {
	return fmt.Sprintf("0.0.0.0:%d", c.Port)
}

// Load reads an optional .env file and then the process environment.
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil {
		log.Printf("Warning: .env file not found or error loading, using system environment variables")
	}

	port, err := intEnv("PORT", 8000)
	if err != nil {
		return nil, err
	}
	if port < 1 || port > 65535 {
		return nil, fmt.Errorf("PORT out of range: %d", port)
	}

	maxSize, err := intEnv("LOG_FILE_MAX_SIZE_MB", 10)
	if err != nil {
		return nil, err
	}
	maxBackups, err := intEnv("LOG_FILE_MAX_BACKUPS", 3)
	if err != nil {
		return nil, err
	}

	return &Config{
		Port:    port,
		Env:     stringEnv("APP_ENV", "development"),
		DistDir: stringEnv("DIST_DIR", "dist"),
		Log: LogConfig{
			Level:  strings.ToLower(stringEnv("LOG_LEVEL", "info")),
			Format: strings.ToLower(stringEnv("LOG_FORMAT", "text")),
			File: FileConfig{
				Path:       os.Getenv("LOG_FILE"),
				MaxSizeMB:  maxSize,
				MaxBackups: maxBackups,
			},
		},
	}, nil
}

func stringEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func intEnv(key string, def int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return v, nil
}
