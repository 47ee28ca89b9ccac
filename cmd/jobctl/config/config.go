package config

import (
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

const (
	defaultServerURL   = "http://localhost:8080"
	envVarServerURL    = "JOBHOST_SERVER_URL"
	envVarShutdownFile = "JOBHOST_SHUTDOWN_FILE"
	configFileName     = ".jobhost/config.yml"
)

// Config holds the jobctl configuration
type Config struct {
	ServerURL    string `yaml:"server"`
	ShutdownFile string `yaml:"shutdown_file"`
}

// Load loads configuration from file and environment
func Load() (*Config, error) {
	cfg := &Config{}

	// File is optional; missing config falls back to defaults.
	_ = loadFromFile(cfg)

	return cfg, nil
}

// GetServerURL returns the server URL with priority: env var > config file > default
func (c *Config) GetServerURL() string {
	if url := os.Getenv(envVarServerURL); url != "" {
		return url
	}
	if c.ServerURL != "" {
		return c.ServerURL
	}
	return defaultServerURL
}

// GetShutdownFile returns the marker file path with priority: env var > config file.
// Empty means the host was not configured for file-based shutdown.
func (c *Config) GetShutdownFile() string {
	if path := os.Getenv(envVarShutdownFile); path != "" {
		return path
	}
	return c.ShutdownFile
}

func loadFromFile(cfg *Config) error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return err
	}

	data, err := os.ReadFile(filepath.Join(homeDir, configFileName))
	if err != nil {
		return err
	}

	return yaml.Unmarshal(data, cfg)
}
