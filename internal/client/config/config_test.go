package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolateEnv(t *testing.T) {
	t.Helper()
	t.Setenv(EnvBaseURL, "")
	t.Setenv(EnvDBPath, "")
	t.Setenv(EnvLogLevel, "")
	orig := dotenvFile
	dotenvFile = filepath.Join(t.TempDir(), "missing.env")
	t.Cleanup(func() { dotenvFile = orig })
}

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://127.0.0.1:8000", c.BaseURL)
	assert.Equal(t, "safety_tracker.db", c.DBPath)
	assert.Equal(t, 10*time.Second, c.RequestTimeout)
	assert.Equal(t, "info", c.LogLevel)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	isolateEnv(t)
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}

	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "http://127.0.0.1:8000", cfg.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
}

func TestLoadConfig_FlagsBeatEnvironment(t *testing.T) {
	isolateEnv(t)
	t.Setenv(EnvBaseURL, "http://env:8000")
	t.Setenv(EnvLogLevel, "warn")

	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin", "-a", "http://flag:9000"}

	cfg := LoadConfig()

	assert.Equal(t, "http://flag:9000", cfg.BaseURL)
	assert.Equal(t, "warn", cfg.LogLevel)
}
