package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	svc := NewConfigService(filepath.Join(t.TempDir(), "absent.toml"))

	cfg, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultBaseURL, cfg.API.BaseURL)
	assert.Equal(t, DefaultTimeout, cfg.API.Timeout.Duration)
	assert.Equal(t, DefaultOutputPath, cfg.Output.Path)
	assert.Equal(t, DefaultTickInterval, cfg.UI.TickInterval.Duration)
	assert.Equal(t, DefaultErrorTimeout, cfg.UI.ErrorTimeout.Duration)
	assert.True(t, cfg.UI.AltScreen)
	assert.Contains(t, cfg.API.UserAgent, "GitIgnore-TUI/")
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	svc := NewConfigService(path)

	cfg := DefaultConfig()
	cfg.API.BaseURL = "http://127.0.0.1:9999/api"
	cfg.API.Timeout = Duration{3 * time.Second}
	cfg.Output.Path = "out/.gitignore"
	cfg.Logging.Trace = true
	require.NoError(t, svc.Save(cfg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "3s")

	loaded, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, cfg.API.BaseURL, loaded.API.BaseURL)
	assert.Equal(t, 3*time.Second, loaded.API.Timeout.Duration)
	assert.Equal(t, "out/.gitignore", loaded.Output.Path)
	assert.True(t, loaded.Logging.Trace)
}

func TestPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[output]\npath = \"custom.ignore\"\n"), 0644))

	cfg, err := NewConfigService(path).Load()
	require.NoError(t, err)
	assert.Equal(t, "custom.ignore", cfg.Output.Path)
	assert.Equal(t, DefaultBaseURL, cfg.API.BaseURL)
	assert.Equal(t, DefaultTimeout, cfg.API.Timeout.Duration)
}

func TestZeroDurationsAreNormalized(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[api]\ntimeout = \"0s\"\nbase_url = \"\"\n"), 0644))

	cfg, err := NewConfigService(path).Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultTimeout, cfg.API.Timeout.Duration)
	assert.Equal(t, DefaultBaseURL, cfg.API.BaseURL)
}

func TestInvalidFileIsAnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[api\ntimeout = "), 0644))

	_, err := NewConfigService(path).Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestInvalidDurationIsAnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[ui]\nerror_timeout = \"soon\"\n"), 0644))

	_, err := NewConfigService(path).Load()
	require.Error(t, err)
}
