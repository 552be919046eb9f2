package types

import "time"

// Config represents the configuration for the misc-mcp server
type Config struct {
	WorkspaceRoot    string        `yaml:"workspace_root"`
	LogLevel         string        `yaml:"log_level,omitempty"`
	StringsPath      string        `yaml:"strings_path,omitempty"`
	StringsTimeout   time.Duration `yaml:"strings_timeout,omitempty"`
	DefaultMinLength int           `yaml:"default_min_length,omitempty"`
	ContextLines     int           `yaml:"context_lines"`
	ContextBytes     int           `yaml:"context_bytes"`
}
