package config

import (
	"os"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophnotes/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://localhost:8000", c.APIBaseURL)
	assert.Equal(t, "notes.db", c.DatabaseDSN)
	assert.Equal(t, 10*time.Second, c.RequestTimeout)
	assert.Equal(t, UIRepl, c.UI)
	assert.Equal(t, "notes.log", c.LogFile)
	assert.Equal(t, "text", c.LogFormat)
	assert.Equal(t, models.ThemeDark, c.Theme)
	require.NoError(t, c.Validate())
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"notes"}
	t.Setenv(EnvAPIBaseURL, "")
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8000", cfg.APIBaseURL)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
}

func TestLoadConfig_Precedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	t.Chdir(t.TempDir())

	path := writeFile(t, "cfg.yaml", "api_base_url: http://file:1\nrequest_timeout: 3s\nui: tui\n")
	t.Setenv(EnvAPIBaseURL, "http://env:2")
	os.Args = []string{"notes", "-c", path, "-t", "7"}

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "http://env:2", cfg.APIBaseURL, "env beats file")
	assert.Equal(t, 7*time.Second, cfg.RequestTimeout, "flag beats file")
	assert.Equal(t, UITUI, cfg.UI)

	os.Args = []string{"notes", "-c", path, "-a", "http://flag:3"}
	cfg, err = LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "http://flag:3", cfg.APIBaseURL, "flag beats env")
}

func TestLoadConfig_Invalid(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	t.Chdir(t.TempDir())
	t.Setenv(EnvAPIBaseURL, "")

	os.Args = []string{"notes", "-u", "gui"}
	_, err := LoadConfig()
	require.Error(t, err)

	os.Args = []string{"notes", "-t", "0"}
	_, err = LoadConfig()
	require.Error(t, err)
}

func TestValidate_Theme(t *testing.T) {
	var c Config
	c.LoadDefaults()
	c.Theme = "sepia"
	require.Error(t, c.Validate())
}
