// Package config provides configuration management for the importer.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file, with defaults declared on the section structs via
// `default:` struct tags.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings,
// divided into subsections:
//   - Importer: pipeline policy (site origin, placeholder image, thresholds)
//   - Database: MySQL/SQLite connection details
//   - Storage: S3/MinIO credentials and export bucket settings
//   - Log: Logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Importer.SiteOrigin)
package config
