package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		expected *Config
		preset   *Config
		name     string
		args     []string
		wantErr  bool
	}{
		{
			name: "all flags",
			args: []string{"-a", "http://127.0.0.1:9090", "-b", "https://cats", "-k", "key", "-d", "x.db", "-i", "10", "-l", "debug"},
			expected: &Config{
				UserServiceURL: "http://127.0.0.1:9090", CatAPIURL: "https://cats", CatAPIKey: "key",
				DatabasePath: "x.db", OnlineCheckInterval: 10 * time.Second, LogLevel: "debug",
			},
		},
		{
			name:     "foreign flags ignored",
			args:     []string{"-c", "cfg.json", "-a=http://h", "--verbose"},
			expected: &Config{UserServiceURL: "http://h"},
		},
		{
			name:     "interval kept without -i",
			preset:   &Config{OnlineCheckInterval: 1500 * time.Millisecond},
			args:     []string{"-l", "warn"},
			expected: &Config{OnlineCheckInterval: 1500 * time.Millisecond, LogLevel: "warn"},
		},
		{
			name:     "-i replaces earlier interval",
			preset:   &Config{OnlineCheckInterval: 1500 * time.Millisecond},
			args:     []string{"-i", "2"},
			expected: &Config{OnlineCheckInterval: 2 * time.Second},
		},
		{name: "incorrect check interval", args: []string{"-a", "http://127.0.0.1:9090", "-i", "abc"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := &Config{}
			if tt.preset != nil {
				*config = *tt.preset
			}

			err := parseFlags(config, tt.args)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Empty(t, cmp.Diff(tt.expected, config))
		})
	}
}

func TestLoadConfig_SubSecondInterval(t *testing.T) {
	t.Run("from env", func(t *testing.T) {
		t.Setenv("CATCLI_ONLINE_CHECK_INTERVAL", "1500ms")

		cfg, err := LoadConfig(nil)
		require.NoError(t, err)
		assert.Equal(t, 1500*time.Millisecond, cfg.OnlineCheckInterval)
	})

	t.Run("below one second from env", func(t *testing.T) {
		t.Setenv("CATCLI_ONLINE_CHECK_INTERVAL", "500ms")

		cfg, err := LoadConfig([]string{"-l", "debug"})
		require.NoError(t, err)
		assert.Equal(t, 500*time.Millisecond, cfg.OnlineCheckInterval)
	})

	t.Run("from json", func(t *testing.T) {
		path := writeTempJSON(t, "", "", map[string]any{"online_check_interval": "750ms"})

		cfg, err := LoadConfig([]string{"-c", path})
		require.NoError(t, err)
		assert.Equal(t, 750*time.Millisecond, cfg.OnlineCheckInterval)
	})
}
