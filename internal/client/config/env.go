package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// parseEnv overlays cfg with CATCLI_* variables. Variables from dotEnvPath,
// if that file exists, are used unless the process environment sets the same
// name. Unset variables leave the current value in place.
func parseEnv(cfg *Config, dotEnvPath string) error {
	vars := map[string]string{}

	if dotEnvPath != "" {
		if _, err := os.Stat(dotEnvPath); err == nil {
			fileVars, err := godotenv.Read(dotEnvPath)
			if err != nil {
				return fmt.Errorf("read %s: %w", dotEnvPath, err)
			}
			for k, v := range fileVars {
				vars[k] = v
			}
		}
	}

	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			vars[k] = v
		}
	}

	if err := env.ParseWithOptions(cfg, env.Options{Environment: vars}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
