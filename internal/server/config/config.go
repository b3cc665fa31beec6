// Package config handles configuration for the dev notes server: defaults,
// a JSON config file overlay and command-line flags.
package config

import (
	"fmt"
	"time"
)

// Config holds runtime settings for the dev server.
//
// Fields:
//   - ListenAddr: bind address of the HTTP endpoint.
//   - SecretKey: HMAC secret for signing JWTs (HS256). Do not use the default outside development.
//   - TokenValidity: lifetime of issued tokens.
//   - Folders / Tags: names seeded for every new user.
//   - LogFormat / LogLevel: logging.New settings; logs go to stdout.
type Config struct {
	ListenAddr    string
	SecretKey     string
	TokenValidity time.Duration
	Folders       []string
	Tags          []string
	LogFormat     string
	LogLevel      string
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.ListenAddr = ":8000"
	c.SecretKey = "secretKey"
	c.TokenValidity = 24 * time.Hour
	c.Folders = []string{"Personal", "Work"}
	c.Tags = []string{"ideas", "todo"}
	c.LogFormat = "json"
	c.LogLevel = "info"
}

func (c *Config) Validate() error {
	if c.ListenAddr == "" {
		return fmt.Errorf("listen address is empty")
	}
	if c.SecretKey == "" {
		return fmt.Errorf("secret key is empty")
	}
	if c.TokenValidity <= 0 {
		return fmt.Errorf("token validity must be positive, got %s", c.TokenValidity)
	}
	return nil
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJSON(cfg); err != nil {
		return nil, fmt.Errorf("config file: %w", err)
	}
	if err := parseFlags(cfg); err != nil {
		return nil, fmt.Errorf("flags: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
