package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	EnvLogLevel     = "CARGO_LOG_LEVEL"
	EnvLogFormat    = "CARGO_LOG_FORMAT"
	EnvManifestPath = "CARGO_MANIFEST"
)

const (
	LogFormatText = "text"
	LogFormatJSON = "json"

	DefaultManifestPath = "fleet.yaml"
)

type Config struct {
	LogLevel     slog.Level
	LogFormat    string
	ManifestPath string
}

// LoadConfig reads the process environment after merging envFile into it.
// A missing envFile is not an error. Variables already set in the
// environment win over the file.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	config := Config{
		LogLevel:     slog.LevelInfo,
		LogFormat:    LogFormatText,
		ManifestPath: DefaultManifestPath,
	}

	if path := os.Getenv(EnvManifestPath); path != "" {
		config.ManifestPath = path
	}

	if level := os.Getenv(EnvLogLevel); level != "" {
		if err := config.LogLevel.UnmarshalText([]byte(level)); err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvLogLevel, err)
		}
	}

	if format := strings.ToLower(os.Getenv(EnvLogFormat)); format != "" {
		if format != LogFormatText && format != LogFormatJSON {
			return Config{}, fmt.Errorf("%s: %q is neither %q nor %q", EnvLogFormat, format, LogFormatText, LogFormatJSON)
		}
		config.LogFormat = format
	}

	return config, nil
}

// NewLogger builds the process logger described by the config.
func (c Config) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.LogLevel}
	if c.LogFormat == LogFormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
