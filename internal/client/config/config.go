package config

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophnotes/internal/client/models"
)

const (
	UIRepl = "repl"
	UITUI  = "tui"
)

// Config holds runtime settings for the notes client.
type Config struct {
	APIBaseURL     string
	DatabaseDSN    string
	RequestTimeout time.Duration
	UI             string
	LogFile        string
	LogFormat      string
	LogLevel       string
	Theme          models.Theme
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8000"
	c.DatabaseDSN = "notes.db"
	c.RequestTimeout = 10 * time.Second
	c.UI = UIRepl
	c.LogFile = "notes.log"
	c.LogFormat = "text"
	c.LogLevel = "info"
	c.Theme = models.ThemeDark
}

// Validate rejects values the client cannot start with.
func (c *Config) Validate() error {
	if c.APIBaseURL == "" {
		return fmt.Errorf("api base url is empty")
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be positive, got %s", c.RequestTimeout)
	}
	if c.UI != UIRepl && c.UI != UITUI {
		return fmt.Errorf("unknown ui %q (want %s or %s)", c.UI, UIRepl, UITUI)
	}
	if _, err := models.ParseTheme(string(c.Theme)); err != nil {
		return err
	}
	return nil
}

// LoadConfig builds a Config from defaults, then the config file, then the
// environment, then command-line flags. Later sources take precedence.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseFile(cfg); err != nil {
		return nil, fmt.Errorf("config file: %w", err)
	}
	if err := parseEnv(cfg); err != nil {
		return nil, fmt.Errorf("environment: %w", err)
	}
	if err := parseFlags(cfg); err != nil {
		return nil, fmt.Errorf("flags: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
