package config

import (
	"fmt"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// Config holds the application configuration
type Config struct {
	DataDir         string `env:"WEDDING_DATA_DIR" envDefault:"data"`
	PrefsFile       string `env:"WEDDING_PREFS_FILE" envDefault:"preferences.yaml"`
	LogLevel        string `env:"WEDDING_LOG_LEVEL" envDefault:"info"`
	LogFormat       string `env:"WEDDING_LOG_FORMAT" envDefault:"console"`
	HTTPAddr        string `env:"WEDDING_HTTP_ADDR"`
	WhatsAppEnabled bool   `env:"WHATSAPP_ENABLED" envDefault:"false"`
	WhatsAppDataDir string `env:"WHATSAPP_DATA_DIR" envDefault:"data"`
	CountryCode     string `env:"WHATSAPP_COUNTRY_CODE"`
}

// LoadConfig loads configuration from environment variables or defaults
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects unknown log levels and formats.
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "trace", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q: must be trace, debug, info, warn or error", c.LogLevel)
	}
	switch c.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("invalid log format %q: must be console or json", c.LogFormat)
	}
	return nil
}

// PrefsPath resolves the preferences file against the data directory unless
// it is absolute.
func (c *Config) PrefsPath() string {
	if filepath.IsAbs(c.PrefsFile) {
		return c.PrefsFile
	}
	return filepath.Join(c.DataDir, c.PrefsFile)
}
