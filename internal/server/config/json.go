package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/gophnotes/internal/flagx"
	"github.com/dmitrijs2005/gophnotes/internal/timex"
)

// JSONConfig is the on-disk form of Config. TokenValidity accepts "30m" as
// well as integer nanoseconds. Zero values leave the current setting alone.
type JSONConfig struct {
	ListenAddr    string         `json:"listen_addr"`
	SecretKey     string         `json:"secret_key"`
	TokenValidity timex.Duration `json:"token_validity"`
	Folders       []string       `json:"folders"`
	Tags          []string       `json:"tags"`
	LogFormat     string         `json:"log_format"`
	LogLevel      string         `json:"log_level"`
}

// parseJSON loads the file named by -c/-config, if any.
func parseJSON(cfg *Config) error {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return nil
	}
	return loadJSON(cfg, path)
}

func loadJSON(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var c JSONConfig
	if err := json.Unmarshal(data, &c); err != nil {
		return err
	}

	if c.ListenAddr != "" {
		cfg.ListenAddr = c.ListenAddr
	}
	if c.SecretKey != "" {
		cfg.SecretKey = c.SecretKey
	}
	if c.TokenValidity.Duration > 0 {
		cfg.TokenValidity = c.TokenValidity.Duration
	}
	if c.Folders != nil {
		cfg.Folders = c.Folders
	}
	if c.Tags != nil {
		cfg.Tags = c.Tags
	}
	if c.LogFormat != "" {
		cfg.LogFormat = c.LogFormat
	}
	if c.LogLevel != "" {
		cfg.LogLevel = c.LogLevel
	}
	return nil
}
