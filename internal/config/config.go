// Package config loads process configuration: the search API base URL,
// the default API key and the chat transport token. Values come from a
// YAML file with environment variables taking precedence; a .env file
// is honored when present.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Env variable names.
const (
	EnvAPIURL   = "SLEUTH_API_URL"
	EnvAPIKey   = "SLEUTH_API_KEY"
	EnvBotToken = "SLEUTH_BOT_TOKEN"
	EnvLogLevel = "SLEUTH_LOG_LEVEL"
)

// Config holds process-wide settings. The API key here is only the
// default seed; each session may override its own key at runtime.
type Config struct {
	APIURL   string `yaml:"api_url"`
	APIKey   string `yaml:"api_key"`
	BotToken string `yaml:"bot_token"`
	LogLevel string `yaml:"log_level"`
}

// DefaultPath returns the default config file location,
// ~/.sleuthbot/config.yaml.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.yaml"
	}
	return filepath.Join(home, ".sleuthbot", "config.yaml")
}

// Load reads path (optional) and applies environment overrides. A
// missing file is not an error; a malformed one is.
func Load(path string) (*Config, error) {
	cfg := &Config{
		LogLevel: "info",
	}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// no file, env and defaults only
		case err != nil:
			return nil, fmt.Errorf("read config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	applyEnv(cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv(EnvAPIURL); v != "" {
		cfg.APIURL = v
	}
	if v := os.Getenv(EnvAPIKey); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv(EnvBotToken); v != "" {
		cfg.BotToken = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
}

// Validate checks the settings needed to reach the search API.
func (c *Config) Validate() error {
	if c.APIURL == "" {
		return fmt.Errorf("api_url is required (set %s or api_url in the config file)", EnvAPIURL)
	}
	return nil
}
