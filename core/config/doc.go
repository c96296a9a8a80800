// Package config loads the service configuration.
//
// Values come from the process environment, optionally seeded from a .env file
// via godotenv, and are decoded with Viper. Every leaf field declares its key
// with a `mapstructure` tag and its fallback with a `default` tag; bindValues
// walks the struct by reflection so each key is known to Viper's AutomaticEnv.
//
// # Configuration Structure
//
//   - Server: port, API key, timezone (SERVER_PORT, SERVER_API_KEY, SERVER_TIMEZONE)
//   - Database: driver (mysql or sqlite) and connection details (DATABASE_DRIVER, ...)
//   - Storage: Minio endpoint, credentials and snapshot bucket (STORAGE_BUCKET, ...)
//   - Log: level and format (LOG_LEVEL, LOG_FORMAT)
//   - Snapshot: archive prefix and cache TTL (SNAPSHOT_CACHE_TTL_SECONDS, ...)
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
