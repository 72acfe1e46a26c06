// Package config provides configuration management for the Model Binder.
//
// It utilizes Viper for loading configuration from a .env file, an optional
// config.yaml and environment variables. The merged values are then bound
// into Config by the binding engine, so a malformed value is reported as a
// problem instead of failing the whole load.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key, body limit, read timeout)
//   - Database: MySQL connection details
//   - Storage: S3/MinIO credentials and the document bucket
//   - Log: Logging level and format
//
// # Usage
//
//	cfg, problems, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, p := range problems {
//	    fmt.Println(p)
//	}
package config
