package config

import (
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/AndresYusty/cat-frontend/internal/flagx"
)

// parseFlags overlays cfg with command-line flags.
//
//	-a string   user service base URL
//	-b string   cat API base URL
//	-k string   cat API key
//	-d string   SQLite database file
//	-i int      online check interval (seconds)
//	-l string   log level
//
// Only these flags are picked out of args, so -c/-config and anything else
// on the command line does not make parsing fail. The interval from earlier
// layers is kept unless -i is given.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-b", "-k", "-d", "-i", "-l"})

	fs := flag.NewFlagSet("catcli", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.UserServiceURL, "a", cfg.UserServiceURL, "user service base URL")
	fs.StringVar(&cfg.CatAPIURL, "b", cfg.CatAPIURL, "cat API base URL")
	fs.StringVar(&cfg.CatAPIKey, "k", cfg.CatAPIKey, "cat API key")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the local database")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")
	onlineCheckInterval := fs.Int("i", int(cfg.OnlineCheckInterval.Seconds()), "online check interval (in seconds)")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "i" {
			cfg.OnlineCheckInterval = time.Duration(*onlineCheckInterval) * time.Second
		}
	})
	return nil
}
