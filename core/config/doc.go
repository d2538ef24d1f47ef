// Package config provides configuration management for particle-audit.
//
// Settings come from environment variables, optionally seeded from a .env
// file in the working directory. Nested keys map to upper-case variables
// joined by underscores, so tables.cache_ttl_seconds is read from
// TABLES_CACHE_TTL_SECONDS. Defaults live next to each field in a `default`
// struct tag.
//
// # Configuration Structure
//
//   - Server: HTTP port and API key for the serve command
//   - Storage: S3/MinIO credentials and bucket settings
//   - Log: logging level and format
//   - Tables: where the RapidSim and EvtGen tables are read from
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(cfg.Tables.Simulation)
package config
