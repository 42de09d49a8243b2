package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all shell configuration.
type Config struct {
	History HistoryConfig
	Copy    CopyConfig
	UI      UIConfig
}

// HistoryConfig holds activity log configuration.
type HistoryConfig struct {
	Path string `envconfig:"FSX_HISTORY_FILE" default:"activity_log.txt"`
}

// CopyConfig holds file copy configuration.
type CopyConfig struct {
	ChunkSize int `envconfig:"FSX_COPY_CHUNK_SIZE" default:"4096"`
}

// UIConfig holds output configuration.
type UIConfig struct {
	NoColor bool `envconfig:"FSX_NO_COLOR" default:"false"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		History: HistoryConfig{
			Path: "activity_log.txt",
		},
		Copy: CopyConfig{
			ChunkSize: 4096,
		},
	}
}
