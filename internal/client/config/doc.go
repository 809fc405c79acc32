// Package config loads runtime configuration for the cat CLI.
//
// Sources and precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. CATCLI_* environment variables, with a .env file in the working
//     directory as a fallback for names the environment does not set.
//  3. Optional JSON file selected with -c or -config.
//  4. Command-line flags.
//
// Supported flags
//
//	-a string   user service base URL          (CATCLI_USER_SERVICE_URL)
//	-b string   cat API base URL               (CATCLI_CAT_API_URL)
//	-k string   cat API key                    (CATCLI_CAT_API_KEY)
//	-d string   SQLite database file           (CATCLI_DB)
//	-i int      online check interval, seconds (CATCLI_ONLINE_CHECK_INTERVAL)
//	-l string   log level                      (CATCLI_LOG_LEVEL)
//
// CATCLI_DEMO_DELAY, CATCLI_LOG_BACKEND and CATCLI_LOG_FILE have no flag.
//
// # JSON schema
//
//	{
//	  "user_service_url": "http://localhost:8080",
//	  "cat_api_url": "https://api.thecatapi.com/v1",
//	  "cat_api_key": "",
//	  "database_path": "catcli.db",
//	  "online_check_interval": "3s",
//	  "demo_delay": "1s",
//	  "log_level": "info",
//	  "log_backend": "slog",
//	  "log_file": ""
//	}
package config
