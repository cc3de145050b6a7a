// Package config provides configuration management for aoe4-sync.
//
// Values come from environment variables, optionally seeded from a .env file.
// Every key has a default declared with a `default:"..."` struct tag.
//
// # Configuration Structure
//
// The Config struct is divided into subsections, each mapped from SECTION_KEY variables:
//   - Log: level and format (LOG_LEVEL, LOG_FORMAT)
//   - Database: driver and connection details (DATABASE_DRIVER, DATABASE_HOST, DATABASE_PASSWORD, ...)
//   - API: AoE4 World base URL, user agent and request spacing (API_RATE_LIMIT_DELAY, ...)
//   - Storage: optional S3/MinIO snapshot archive (STORAGE_ENABLED, STORAGE_ENDPOINT, ...)
//   - Server: HTTP port, API key and shutdown grace period
//   - Sync: default leaderboards, rank levels, player count and schedule
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := cfg.Validate(); err != nil {
//	    log.Fatal(err)
//	}
package config
