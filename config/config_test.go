package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points every source of configuration to an empty place.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	t.Setenv("SPOT_CONFIG", "")
	t.Setenv("GEMINI_API_KEY", "")
	t.Chdir(dir)
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "file", cfg.Store.Driver)
	assert.Equal(t, "spot.json", filepath.Base(cfg.Store.Path))
	assert.Equal(t, "https://api.binance.com", cfg.Quote.BaseURL)
	assert.Equal(t, 20*time.Second, cfg.Quote.Interval)
	assert.Equal(t, "gemini-3-flash-preview", cfg.Insight.Model)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Empty(t, cfg.Language)
}

func TestLoad_File(t *testing.T) {
	dir := isolate(t)
	file := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(file, []byte(`
language: zh
store:
  driver: sqlite
quote:
  interval: 5s
insight:
  api_key: from-file
`), 0644))

	cfg, err := Load(file)
	require.NoError(t, err)

	assert.Equal(t, "zh", cfg.Language)
	assert.Equal(t, "sqlite", cfg.Store.Driver)
	assert.Equal(t, "spot.db", filepath.Base(cfg.Store.Path))
	assert.Equal(t, 5*time.Second, cfg.Quote.Interval)
	assert.Equal(t, "from-file", cfg.Insight.APIKey)
}

func TestLoad_Env(t *testing.T) {
	dir := isolate(t)
	t.Setenv("SPOT_STORE_PATH", filepath.Join(dir, "state.json"))
	t.Setenv("SPOT_QUOTE_INTERVAL", "1m")
	t.Setenv("GEMINI_API_KEY", "from-env")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "state.json"), cfg.Store.Path)
	assert.Equal(t, time.Minute, cfg.Quote.Interval)
	assert.Equal(t, "from-env", cfg.Insight.APIKey)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("SPOT_LOG_LEVEL=debug\n"), 0644))
	t.Cleanup(func() { os.Unsetenv("SPOT_LOG_LEVEL") })

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_Invalid(t *testing.T) {
	testCases := []struct {
		name string
		env  map[string]string
	}{
		{name: "driver", env: map[string]string{"SPOT_STORE_DRIVER": "postgres"}},
		{name: "interval", env: map[string]string{"SPOT_QUOTE_INTERVAL": "0s"}},
		{name: "language", env: map[string]string{"SPOT_LANGUAGE": "fr"}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			isolate(t)
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			_, err := Load("")
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	dir := isolate(t)
	_, err := Load(filepath.Join(dir, "nope.yaml"))
	assert.Error(t, err)
}
