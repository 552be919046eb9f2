package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/averycrespi/misc-mcp/pkg/types"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

// Environment variables that override file configuration
const (
	EnvWorkspaceRoot    = "MISC_MCP_WORKSPACE_ROOT"
	EnvLogLevel         = "MISC_MCP_LOG_LEVEL"
	EnvStringsPath      = "MISC_MCP_STRINGS_PATH"
	EnvStringsTimeout   = "MISC_MCP_STRINGS_TIMEOUT"
	EnvDefaultMinLength = "MISC_MCP_DEFAULT_MIN_LENGTH"
	EnvContextLines     = "MISC_MCP_CONTEXT_LINES"
	EnvContextBytes     = "MISC_MCP_CONTEXT_BYTES"
)

var validLogLevels = []string{"debug", "info", "warn", "error"}

// Defaults returns the built-in configuration
func Defaults() types.Config {
	return types.Config{
		WorkspaceRoot:    ".",
		LogLevel:         "info",
		StringsPath:      "strings",
		StringsTimeout:   30 * time.Second,
		DefaultMinLength: 4,
		ContextLines:     2,
		ContextBytes:     50,
	}
}

// Load builds the configuration from defaults, an optional YAML file, an
// optional .env file in the working directory and MISC_MCP_* variables.
func Load(path string) (types.Config, error) {
	cfg := Defaults()

	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return types.Config{}, err
		}
	}

	// A missing .env is the common case.
	_ = godotenv.Load()

	if err := applyEnv(&cfg); err != nil {
		return types.Config{}, err
	}

	return cfg, nil
}

func loadFile(path string, cfg *types.Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *types.Config) error {
	if v, ok := os.LookupEnv(EnvWorkspaceRoot); ok {
		cfg.WorkspaceRoot = v
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok {
		cfg.LogLevel = v
	}
	if v, ok := os.LookupEnv(EnvStringsPath); ok {
		cfg.StringsPath = v
	}
	if v, ok := os.LookupEnv(EnvStringsTimeout); ok {
		d, err := cast.ToDurationE(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvStringsTimeout, v, err)
		}
		cfg.StringsTimeout = d
	}

	ints := []struct {
		name   string
		target *int
	}{
		{EnvDefaultMinLength, &cfg.DefaultMinLength},
		{EnvContextLines, &cfg.ContextLines},
		{EnvContextBytes, &cfg.ContextBytes},
	}
	for _, e := range ints {
		v, ok := os.LookupEnv(e.name)
		if !ok {
			continue
		}
		n, err := cast.ToIntE(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", e.name, v, err)
		}
		*e.target = n
	}

	return nil
}

// Validate checks the configuration for values the tools cannot work with
func Validate(cfg types.Config) error {
	if cfg.WorkspaceRoot == "" {
		return fmt.Errorf("workspace_root must not be empty")
	}
	if !isValidLogLevel(cfg.LogLevel) {
		return fmt.Errorf("invalid log_level %q, expected one of: %s", cfg.LogLevel, strings.Join(validLogLevels, ", "))
	}
	if cfg.StringsPath == "" {
		return fmt.Errorf("strings_path must not be empty")
	}
	if cfg.StringsTimeout <= 0 {
		return fmt.Errorf("strings_timeout must be positive, got %s", cfg.StringsTimeout)
	}
	if cfg.DefaultMinLength < 1 {
		return fmt.Errorf("default_min_length must be at least 1, got %d", cfg.DefaultMinLength)
	}
	if cfg.ContextLines < 0 {
		return fmt.Errorf("context_lines must not be negative, got %d", cfg.ContextLines)
	}
	if cfg.ContextBytes < 0 {
		return fmt.Errorf("context_bytes must not be negative, got %d", cfg.ContextBytes)
	}
	return nil
}

func isValidLogLevel(level string) bool {
	for _, l := range validLogLevels {
		if strings.EqualFold(level, l) {
			return true
		}
	}
	return false
}

// SlogLevel maps a configured log level to its slog equivalent
func SlogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
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
