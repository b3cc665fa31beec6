package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/gophnotes/internal/client/models"
	"github.com/dmitrijs2005/gophnotes/internal/flagx"
	"github.com/dmitrijs2005/gophnotes/internal/timex"
	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk form of Config. Durations are timex.Duration so
// files may use "5s" as well as integer nanoseconds. Empty fields leave the
// current value alone.
type FileConfig struct {
	APIBaseURL     string         `json:"api_base_url" yaml:"api_base_url"`
	DatabaseDSN    string         `json:"database_dsn" yaml:"database_dsn"`
	RequestTimeout timex.Duration `json:"request_timeout" yaml:"request_timeout"`
	UI             string         `json:"ui" yaml:"ui"`
	LogFile        string         `json:"log_file" yaml:"log_file"`
	LogFormat      string         `json:"log_format" yaml:"log_format"`
	LogLevel       string         `json:"log_level" yaml:"log_level"`
	Theme          string         `json:"theme" yaml:"theme"`
}

// parseFile overlays cfg with the file named by -c/-config, if any. Files
// ending in .yaml or .yml are YAML, everything else JSON.
func parseFile(cfg *Config) error {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return nil
	}
	return loadFile(cfg, path)
}

func loadFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var fc FileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		return err
	}

	fc.apply(cfg)
	return nil
}

func (fc FileConfig) apply(cfg *Config) {
	setString(&cfg.APIBaseURL, fc.APIBaseURL)
	setString(&cfg.DatabaseDSN, fc.DatabaseDSN)
	setString(&cfg.UI, fc.UI)
	setString(&cfg.LogFile, fc.LogFile)
	setString(&cfg.LogFormat, fc.LogFormat)
	setString(&cfg.LogLevel, fc.LogLevel)
	if fc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = fc.RequestTimeout.Duration
	}
	if fc.Theme != "" {
		cfg.Theme = models.Theme(fc.Theme)
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
