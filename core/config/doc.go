// Package config provides configuration management for the bot backend.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file. Defaults come from the `default` struct tags of
// each partial configuration.
//
// # Configuration Structure
//
//   - Server: HTTP port and default response format
//   - API: game API base URL, design source (http or storage), cache TTL
//   - Storage: S3/MinIO credentials and bucket for snapshots and exports
//   - Database: MySQL (or sqlite) connection for the export history
//   - Log: logging level and format
//   - Wiki: export directory, upload switch and access lists
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.API.BaseURL)
package config
