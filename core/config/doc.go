// Package config provides configuration management for the segment audit.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file. Defaults live in `default` struct tags next to
// each field.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Audit: scan roots, metadata source, segment size, page verification
//   - Server: HTTP port and API key for the serve command
//   - Database: connection details for the database metadata source
//   - Storage: S3/MinIO credentials and bucket for the storage metadata source
//   - Log: Logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Audit.HierarchicalRoot)
package config
