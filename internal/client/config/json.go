package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/AndresYusty/cat-frontend/internal/flagx"
	"github.com/AndresYusty/cat-frontend/internal/timex"
)

// JsonConfig is the on-disk shape of the config file. Intervals use
// timex.Duration so they may be written as "3s" or as nanoseconds.
type JsonConfig struct {
	UserServiceURL      string          `json:"user_service_url"`
	CatAPIURL           string          `json:"cat_api_url"`
	CatAPIKey           string          `json:"cat_api_key"`
	DatabasePath        string          `json:"database_path"`
	OnlineCheckInterval timex.Duration  `json:"online_check_interval"`
	DemoDelay           *timex.Duration `json:"demo_delay"`
	LogLevel            string          `json:"log_level"`
	LogBackend          string          `json:"log_backend"`
	LogFile             string          `json:"log_file"`
}

// parseJson overlays cfg with the file named by -c/-config in args. Keys
// that are absent or empty in the file keep their current value. Without
// the flag nothing is read.
func parseJson(cfg *Config, args []string) error {
	path := flagx.JsonConfigFlags(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("decode config file %s: %w", path, err)
	}

	setString(&cfg.UserServiceURL, jc.UserServiceURL)
	setString(&cfg.CatAPIURL, jc.CatAPIURL)
	setString(&cfg.CatAPIKey, jc.CatAPIKey)
	setString(&cfg.DatabasePath, jc.DatabasePath)
	setString(&cfg.LogLevel, jc.LogLevel)
	setString(&cfg.LogBackend, jc.LogBackend)
	setString(&cfg.LogFile, jc.LogFile)

	if jc.OnlineCheckInterval.Duration != 0 {
		cfg.OnlineCheckInterval = jc.OnlineCheckInterval.Duration
	}
	// zero is a meaningful demo delay, so only absence keeps the old value
	if jc.DemoDelay != nil {
		cfg.DemoDelay = jc.DemoDelay.Duration
	}
	return nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
