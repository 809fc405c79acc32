package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// DotEnvFile is read, when present in the working directory, before the
// process environment.
const DotEnvFile = ".env"

// Config holds runtime settings for the cat CLI.
//
// Units: OnlineCheckInterval and DemoDelay are time.Duration values.
type Config struct {
	UserServiceURL      string        `env:"CATCLI_USER_SERVICE_URL"`
	CatAPIURL           string        `env:"CATCLI_CAT_API_URL"`
	CatAPIKey           string        `env:"CATCLI_CAT_API_KEY"`
	DatabasePath        string        `env:"CATCLI_DB"`
	OnlineCheckInterval time.Duration `env:"CATCLI_ONLINE_CHECK_INTERVAL"`
	DemoDelay           time.Duration `env:"CATCLI_DEMO_DELAY"`
	LogLevel            string        `env:"CATCLI_LOG_LEVEL"`
	LogBackend          string        `env:"CATCLI_LOG_BACKEND"`
	LogFile             string        `env:"CATCLI_LOG_FILE"`
}

// LoadDefaults populates c with the built-in defaults.
func (c *Config) LoadDefaults() {
	c.UserServiceURL = "http://localhost:8080"
	c.CatAPIURL = "https://api.thecatapi.com/v1"
	c.CatAPIKey = ""
	c.DatabasePath = "catcli.db"
	c.OnlineCheckInterval = 3 * time.Second
	c.DemoDelay = time.Second
	c.LogLevel = "info"
	c.LogBackend = "slog"
	c.LogFile = ""
}

// LoadConfig builds a Config from defaults, the .env file and environment,
// the JSON file named by -c/-config, and finally the flags in args (usually
// os.Args[1:]). Later sources take precedence over earlier ones.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseEnv(cfg, DotEnvFile); err != nil {
		return nil, err
	}
	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports the first setting that cannot be used.
func (c *Config) Validate() error {
	for name, raw := range map[string]string{
		"user service url": c.UserServiceURL,
		"cat api url":      c.CatAPIURL,
	} {
		u, err := url.Parse(raw)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", name, raw, err)
		}
		if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("invalid %s %q: want http(s)://host", name, raw)
		}
	}

	if c.DatabasePath == "" {
		return fmt.Errorf("database path is empty")
	}
	if c.OnlineCheckInterval <= 0 {
		return fmt.Errorf("online check interval must be positive, got %s", c.OnlineCheckInterval)
	}
	if c.DemoDelay < 0 {
		return fmt.Errorf("demo delay must not be negative, got %s", c.DemoDelay)
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	switch strings.ToLower(c.LogBackend) {
	case "slog", "zap":
	default:
		return fmt.Errorf("unknown log backend %q", c.LogBackend)
	}
	return nil
}
