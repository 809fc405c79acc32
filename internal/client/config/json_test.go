package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	if name == "" {
		name = "cfg.json"
	}
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson(t *testing.T) {
	dir := t.TempDir()
	full := writeTempJSON(t, dir, "full.json", map[string]any{
		"user_service_url":      "http://users.example:9000",
		"cat_api_url":           "https://cats.example/v1",
		"cat_api_key":           "k",
		"database_path":         "/var/lib/catcli.db",
		"online_check_interval": "10s",
		"demo_delay":            0,
		"log_level":             "debug",
		"log_backend":           "zap",
		"log_file":              "/var/log/catcli.log",
	})

	t.Run("loads every key", func(t *testing.T) {
		cfg := defaults()
		require.NoError(t, parseJson(cfg, []string{"-config", full}))

		assert.Equal(t, &Config{
			UserServiceURL:      "http://users.example:9000",
			CatAPIURL:           "https://cats.example/v1",
			CatAPIKey:           "k",
			DatabasePath:        "/var/lib/catcli.db",
			OnlineCheckInterval: 10 * time.Second,
			DemoDelay:           0,
			LogLevel:            "debug",
			LogBackend:          "zap",
			LogFile:             "/var/log/catcli.log",
		}, cfg)
	})

	t.Run("absent keys keep current values", func(t *testing.T) {
		partial := writeTempJSON(t, dir, "partial.json", map[string]any{"cat_api_key": "only-key"})

		cfg := defaults()
		require.NoError(t, parseJson(cfg, []string{"-c", partial}))

		want := defaults()
		want.CatAPIKey = "only-key"
		assert.Equal(t, want, cfg)
	})

	t.Run("no flag, no changes", func(t *testing.T) {
		cfg := &Config{UserServiceURL: "http://defaults:1234", OnlineCheckInterval: 42 * time.Second}
		require.NoError(t, parseJson(cfg, []string{"-a", "http://x"}))

		assert.Equal(t, "http://defaults:1234", cfg.UserServiceURL)
		assert.Equal(t, 42*time.Second, cfg.OnlineCheckInterval)
	})

	t.Run("invalid JSON", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

		require.Error(t, parseJson(defaults(), []string{"-config", bad}))
	})
}
